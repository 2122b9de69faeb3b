// Package bigram implements character-bigram multisets and the
// Sørensen–Dice similarity coefficient over them, plus a cumulative
// span index that lets any contiguous token span be scored against a
// fixed pattern without re-encoding the span.
package bigram

import (
	"sort"
	"strings"
)

// Multiset is a multiset of adjacent-character pairs. It records the
// text it was encoded from so that the degenerate case (two empty
// multisets) can fall back to exact text comparison.
type Multiset struct {
	counts map[string]int
	total  int
	text   string
}

// Encode slides a two-rune window over text, one rune at a time, and
// counts every adjacent pair. An empty or single-rune text produces an
// empty multiset: single-character tokens carry no pair and therefore
// contribute no similarity mass on their own.
func Encode(text string) Multiset {
	m := Multiset{text: text}
	runes := []rune(text)
	if len(runes) < 2 {
		return m
	}
	m.counts = make(map[string]int, len(runes)-1)
	for i := 0; i+1 < len(runes); i++ {
		m.counts[string(runes[i:i+2])]++
	}
	m.total = len(runes) - 1
	return m
}

// Sum aggregates the per-token multisets of a token sequence. The
// aggregate is the plain multiset sum: tokens contribute their own
// pairs only, never pairs spanning token boundaries.
func Sum(tokens []string) Multiset {
	m := Multiset{
		counts: make(map[string]int),
		text:   strings.Join(tokens, " "),
	}
	for _, tok := range tokens {
		runes := []rune(tok)
		for i := 0; i+1 < len(runes); i++ {
			m.counts[string(runes[i:i+2])]++
			m.total++
		}
	}
	return m
}

// Count returns the number of occurrences of the given pair.
func (m Multiset) Count(pair string) int {
	return m.counts[pair]
}

// Total returns the total element count (sum of all pair counts).
func (m Multiset) Total() int {
	return m.total
}

// Text returns the source text the multiset was encoded from.
func (m Multiset) Text() string {
	return m.text
}

// Pairs returns the distinct pairs in the multiset, sorted.
func (m Multiset) Pairs() []string {
	pairs := make([]string, 0, len(m.counts))
	for p := range m.counts {
		pairs = append(pairs, p)
	}
	sort.Strings(pairs)
	return pairs
}

// Dice computes the Sørensen–Dice coefficient between two multisets:
//
//	dice(A, B) = 2·|A∩B| / (|A| + |B|)
//
// where the intersection counts min(countA(x), countB(x)) per distinct
// pair and |·| is the total element count. When both multisets are
// empty the formula is undefined; the coefficient is then 1.0 if the
// underlying texts are identical and 0.0 otherwise.
func Dice(a, b Multiset) float64 {
	if a.total+b.total == 0 {
		if a.text == b.text {
			return 1.0
		}
		return 0.0
	}

	// Iterate the smaller map.
	small, large := a, b
	if len(b.counts) < len(a.counts) {
		small, large = b, a
	}

	inter := 0
	for pair, n := range small.counts {
		if o := large.counts[pair]; o < n {
			inter += o
		} else {
			inter += n
		}
	}
	return 2 * float64(inter) / float64(a.total+b.total)
}
