package benchmark

import (
	"testing"

	"DiceMatch/internal/match"
	"DiceMatch/internal/testutil"
)

func BenchmarkMatcher_Text(b *testing.B) {
	m, err := match.New(match.DefaultOptions())
	if err != nil {
		b.Fatal(err)
	}
	text := testutil.SampleText(20, 15)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Text(text)
	}
}

func BenchmarkText_Match_Exact(b *testing.B) {
	benchmarkMatch(b, 1.0)
}

func BenchmarkText_Match_Fuzzy(b *testing.B) {
	benchmarkMatch(b, 0.7)
}

func benchmarkMatch(b *testing.B, threshold float64) {
	m, err := match.New(match.DefaultOptions())
	if err != nil {
		b.Fatal(err)
	}
	text := m.Text(testutil.SampleText(20, 15))
	pattern, err := m.Pattern("similarity score")
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := text.Match(pattern, threshold); err != nil {
			b.Fatal(err)
		}
	}
}
