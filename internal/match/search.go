package match

import "math"

// Match is one approximate occurrence of a pattern in a text. Span
// boundaries are carried by value; a Match stays valid however the
// source text is queried afterwards.
type Match struct {
	Begin      int     // byte offset of the first matched token
	End        int     // byte offset just past the last matched token
	Sentence   int     // ordinal of the sentence containing the span
	TokenBegin int     // first token index within that sentence
	TokenEnd   int     // one past the last token index
	Score      float64 // Sørensen–Dice similarity against the pattern
	Text       string  // matched source slice, Source()[Begin:End]
}

// Match finds every contiguous token span whose similarity to the
// pattern meets or exceeds the threshold. Spans never start or end on a
// stop-word token; interior stop words are permitted and contribute to
// the score. Overlapping matches are all returned; results are ordered
// by start, then by span length, and are deterministic for identical
// inputs. An empty text yields no matches and no error.
func (t *Text) Match(p *Pattern, threshold float64) ([]Match, error) {
	if p == nil || len(p.tokens) == 0 {
		return nil, ErrEmptyPattern
	}
	if math.IsNaN(threshold) || threshold <= 0 || threshold > 1 {
		return nil, ErrThreshold
	}

	var out []Match
	for si := range t.sentences {
		found, err := t.matchSentence(si, p, threshold)
		if err != nil {
			return nil, err
		}
		out = append(out, found...)
	}
	return out, nil
}

func (t *Text) matchSentence(si int, p *Pattern, threshold float64) ([]Match, error) {
	sent := &t.sentences[si]
	n := len(sent.tokens)
	if n == 0 {
		return nil, nil
	}

	// Bounds on candidate span mass, derived from the threshold and the
	// pattern mass P: dice = 2·min(S,P)/(S+P), so a span of mass S can
	// only reach t when t·P/(2−t) ≤ S ≤ P·(2−t)/t. The epsilons round
	// the bounds outward so float error never excludes a valid span.
	patternMass := float64(p.bigrams.Total())
	maxMass := int(math.Floor(patternMass*(2-threshold)/threshold + 1e-9))
	minMass := int(math.Ceil(threshold*patternMass/(2-threshold) - 1e-9))

	var out []Match
	for i := 0; i < n; i++ {
		if sent.tokens[i].Stop {
			continue // spans never start on a stop word
		}
		for j := i + 1; j <= n; j++ {
			mass, err := sent.index.SpanTotal(i, j)
			if err != nil {
				return nil, err
			}
			if mass > maxMass {
				break // span mass is nondecreasing in j
			}
			if sent.tokens[j-1].Stop || mass < minMass {
				continue
			}
			score, err := sent.index.Score(p.bigrams, i, j)
			if err != nil {
				return nil, err
			}
			if score < threshold {
				continue
			}
			begin, end := sent.tokens[i].Begin, sent.tokens[j-1].End
			out = append(out, Match{
				Begin:      begin,
				End:        end,
				Sentence:   si,
				TokenBegin: i,
				TokenEnd:   j,
				Score:      score,
				Text:       t.source[begin:end],
			})
		}
	}
	return out, nil
}
