package bigram

import (
	"math"
	"testing"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		pairs map[string]int
		total int
	}{
		{"empty", "", nil, 0},
		{"single char", "a", nil, 0},
		{"two chars", "ab", map[string]int{"ab": 1}, 1},
		{"word", "worl", map[string]int{"wo": 1, "or": 1, "rl": 1}, 3},
		{"repeats", "aaa", map[string]int{"aa": 2}, 2},
		{"unicode", "šíma", map[string]int{"ší": 1, "ím": 1, "ma": 1}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Encode(tt.input)
			if m.Total() != tt.total {
				t.Errorf("Total() = %d, want %d", m.Total(), tt.total)
			}
			for pair, want := range tt.pairs {
				if got := m.Count(pair); got != want {
					t.Errorf("Count(%q) = %d, want %d", pair, got, want)
				}
			}
			if got := m.Count("zz"); got != 0 {
				t.Errorf("Count(absent) = %d, want 0", got)
			}
			if m.Text() != tt.input {
				t.Errorf("Text() = %q, want %q", m.Text(), tt.input)
			}
		})
	}
}

func TestEncode_TotalInvariant(t *testing.T) {
	// Total count equals max(len(runes)-1, 0).
	for _, input := range []string{"", "x", "ab", "hello", "čeština"} {
		m := Encode(input)
		want := len([]rune(input)) - 1
		if want < 0 {
			want = 0
		}
		if m.Total() != want {
			t.Errorf("Encode(%q).Total() = %d, want %d", input, m.Total(), want)
		}
	}
}

func TestSum(t *testing.T) {
	m := Sum([]string{"test", "sentence"})

	// "test" contributes 3 pairs, "sentence" contributes 7; no pair
	// crosses the token boundary.
	if m.Total() != 10 {
		t.Errorf("Total() = %d, want 10", m.Total())
	}
	if got := m.Count("ts"); got != 0 {
		t.Errorf("boundary pair counted: Count(\"ts\") = %d, want 0", got)
	}
	if got := m.Count("en"); got != 2 {
		t.Errorf("Count(\"en\") = %d, want 2", got)
	}
	if m.Text() != "test sentence" {
		t.Errorf("Text() = %q, want %q", m.Text(), "test sentence")
	}
}

func TestSum_SingleCharTokens(t *testing.T) {
	m := Sum([]string{"a", "b"})
	if m.Total() != 0 {
		t.Errorf("Total() = %d, want 0", m.Total())
	}
	if m.Text() != "a b" {
		t.Errorf("Text() = %q, want %q", m.Text(), "a b")
	}
}

func TestDice(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		// bigrams("world") = {wo or rl ld}, bigrams("worl") = {wo or rl};
		// intersection 3, dice = 2*3/(4+3).
		{"near match", "world", "worl", 2.0 * 3 / (4 + 3)},
		{"identical", "hello", "hello", 1.0},
		{"disjoint", "abc", "xyz", 0.0},
		{"empty vs word", "", "word", 0.0},
		{"repeated pairs", "aaa", "aa", 2.0 * 1 / (2 + 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dice(Encode(tt.a), Encode(tt.b))
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Dice(%q, %q) = %f, want %f", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDice_DegenerateEmpty(t *testing.T) {
	// Both multisets empty: score is defined by text identity, not by
	// the (division-by-zero) formula.
	if got := Dice(Encode("a"), Encode("a")); got != 1.0 {
		t.Errorf("Dice(a, a) = %f, want 1.0", got)
	}
	if got := Dice(Encode("a"), Encode("b")); got != 0.0 {
		t.Errorf("Dice(a, b) = %f, want 0.0", got)
	}
	if got := Dice(Encode(""), Encode("")); got != 1.0 {
		t.Errorf("Dice(empty, empty) = %f, want 1.0", got)
	}
}

func TestDice_Symmetry(t *testing.T) {
	inputs := []string{"", "a", "ab", "world", "worl", "sentence", "sentnece"}
	for _, s1 := range inputs {
		for _, s2 := range inputs {
			a, b := Encode(s1), Encode(s2)
			if Dice(a, b) != Dice(b, a) {
				t.Errorf("Dice(%q, %q) != Dice(%q, %q)", s1, s2, s2, s1)
			}
		}
	}
}

func TestDice_Bounds(t *testing.T) {
	inputs := []string{"", "a", "hello", "world", "aaa", "čau"}
	for _, s1 := range inputs {
		for _, s2 := range inputs {
			got := Dice(Encode(s1), Encode(s2))
			if got < 0 || got > 1 {
				t.Errorf("Dice(%q, %q) = %f, out of [0, 1]", s1, s2, got)
			}
		}
		if s1 != "" {
			m := Encode(s1)
			if got := Dice(m, m); got != 1.0 {
				t.Errorf("Dice(%q, %q) = %f, want 1.0", s1, s1, got)
			}
		}
	}
}
