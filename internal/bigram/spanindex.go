package bigram

import (
	"errors"
	"strings"
)

// ErrSpanBounds reports an aggregate lookup with indices outside the
// indexed token sequence. Unreachable from the public matching surface;
// kept as a defensive contract on the index itself.
var ErrSpanBounds = errors.New("span indices out of range")

// SpanIndex precomputes cumulative bigram counts over an ordered token
// sequence. After O(n·k) construction (n tokens, k distinct pairs per
// token) the aggregate mass of any span [i, j) and its intersection
// with a fixed pattern are available via O(1) array lookups, so span
// enumeration never re-encodes token text.
type SpanIndex struct {
	norms  []string
	totals []int // totals[i] = bigram mass of tokens[:i]; len n+1
	// cum[pair][i] = occurrences of pair within tokens[:i]; len n+1
	cum map[string][]int32
}

// NewSpanIndex builds the cumulative index for the given normalized
// token texts.
func NewSpanIndex(norms []string) *SpanIndex {
	n := len(norms)
	x := &SpanIndex{
		norms:  norms,
		totals: make([]int, n+1),
		cum:    make(map[string][]int32),
	}
	for i, tok := range norms {
		x.totals[i+1] = x.totals[i]
		runes := []rune(tok)
		for k := 0; k+1 < len(runes); k++ {
			pair := string(runes[k : k+2])
			counts, ok := x.cum[pair]
			if !ok {
				counts = make([]int32, n+1)
				x.cum[pair] = counts
			}
			counts[i+1]++
			x.totals[i+1]++
		}
	}
	// Convert per-token counts into running sums.
	for _, counts := range x.cum {
		for i := 1; i <= n; i++ {
			counts[i] += counts[i-1]
		}
	}
	return x
}

// Len returns the number of indexed tokens.
func (x *SpanIndex) Len() int {
	return len(x.norms)
}

// SpanTotal returns the aggregate bigram mass of the span [i, j).
func (x *SpanIndex) SpanTotal(i, j int) (int, error) {
	if err := x.check(i, j); err != nil {
		return 0, err
	}
	return x.totals[j] - x.totals[i], nil
}

// Aggregate returns the aggregate multiset of the span [i, j).
func (x *SpanIndex) Aggregate(i, j int) (Multiset, error) {
	if err := x.check(i, j); err != nil {
		return Multiset{}, err
	}
	return Sum(x.norms[i:j]), nil
}

// Score computes the Dice coefficient between the span [i, j) and the
// pattern multiset. Cost is O(distinct pattern pairs): the span's side
// of every min() comes from the cumulative arrays.
func (x *SpanIndex) Score(pattern Multiset, i, j int) (float64, error) {
	if err := x.check(i, j); err != nil {
		return 0, err
	}

	spanTotal := x.totals[j] - x.totals[i]
	if spanTotal+pattern.total == 0 {
		if strings.Join(x.norms[i:j], " ") == pattern.text {
			return 1.0, nil
		}
		return 0.0, nil
	}

	inter := 0
	for pair, want := range pattern.counts {
		counts, ok := x.cum[pair]
		if !ok {
			continue
		}
		have := int(counts[j] - counts[i])
		if have < want {
			inter += have
		} else {
			inter += want
		}
	}
	return 2 * float64(inter) / float64(spanTotal+pattern.total), nil
}

func (x *SpanIndex) check(i, j int) error {
	if i < 0 || j < i || j > len(x.norms) {
		return ErrSpanBounds
	}
	return nil
}
