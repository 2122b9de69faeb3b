package match

import (
	"reflect"
	"testing"
)

func TestReduce(t *testing.T) {
	tests := []struct {
		name    string
		matches []Match
		want    []string // expected Text fields
	}{
		{
			"empty",
			nil,
			nil,
		},
		{
			"single",
			[]Match{{Begin: 0, End: 5, Score: 0.9, Text: "alpha"}},
			[]string{"alpha"},
		},
		{
			"disjoint kept",
			[]Match{
				{Begin: 0, End: 5, Score: 0.9, Text: "alpha"},
				{Begin: 10, End: 15, Score: 0.7, Text: "beta"},
			},
			[]string{"alpha", "beta"},
		},
		{
			"overlap keeps best",
			[]Match{
				{Begin: 0, End: 8, Score: 0.7, Text: "low"},
				{Begin: 4, End: 12, Score: 0.9, Text: "high"},
				{Begin: 20, End: 25, Score: 0.8, Text: "tail"},
			},
			[]string{"high", "tail"},
		},
		{
			"overlap tie keeps earlier",
			[]Match{
				{Begin: 0, End: 8, Score: 0.8, Text: "first"},
				{Begin: 4, End: 12, Score: 0.8, Text: "second"},
			},
			[]string{"first"},
		},
		{
			"chained overlaps",
			[]Match{
				{Begin: 0, End: 6, Score: 0.6, Text: "a"},
				{Begin: 3, End: 9, Score: 0.9, Text: "b"},
				{Begin: 8, End: 14, Score: 0.7, Text: "c"},
			},
			[]string{"b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reduce(tt.matches)
			var texts []string
			for _, m := range got {
				texts = append(texts, m.Text)
			}
			if !reflect.DeepEqual(texts, tt.want) {
				t.Errorf("Reduce = %v, want %v", texts, tt.want)
			}
		})
	}
}

func TestReduce_EngineOutput(t *testing.T) {
	opts := DefaultOptions()
	opts.StripStopwords = false
	loose := mustMatcher(t, opts)

	text := loose.Sentence("How to tell which cat is dominant in the house?")
	all := mustMatch(t, text, mustPattern(t, loose, "dominant man"), 0.8)
	if len(all) < 2 {
		t.Fatalf("want overlapping matches to reduce, got %+v", all)
	}

	got := Reduce(all)
	if len(got) != 1 || got[0].Text != "dominant" {
		t.Errorf("Reduce = %+v, want the single best span %q", got, "dominant")
	}
}
