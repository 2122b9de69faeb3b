package match

// Reduce selects the best-scoring match of every overlapping run,
// keeping the engine's output order. The engine itself reports all
// threshold-clearing spans; callers that want one match per text region
// apply this post-filter. Input must be in engine order (start
// ascending); ties keep the earlier, shorter match.
func Reduce(matches []Match) []Match {
	if len(matches) == 0 {
		return nil
	}

	var out []Match
	best := matches[0]
	for _, m := range matches[1:] {
		switch {
		case m.Begin >= best.End:
			// Past the current overlap run.
			out = append(out, best)
			best = m
		case m.Score > best.Score:
			best = m
		}
	}
	return append(out, best)
}
