package benchmark

import (
	"testing"

	"DiceMatch/internal/bigram"
)

func BenchmarkBigram_Encode(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bigram.Encode("approximately")
	}
}

func BenchmarkBigram_Dice(b *testing.B) {
	left := bigram.Sum([]string{"approximate", "pattern", "matching"})
	right := bigram.Sum([]string{"aproximate", "patern", "matching"})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bigram.Dice(left, right)
	}
}

func BenchmarkSpanIndex_New(b *testing.B) {
	norms := sentenceNorms(50)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bigram.NewSpanIndex(norms)
	}
}

func BenchmarkSpanIndex_Score(b *testing.B) {
	norms := sentenceNorms(50)
	idx := bigram.NewSpanIndex(norms)
	pattern := bigram.Sum([]string{"similarity", "score"})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := idx.Score(pattern, 10, 14); err != nil {
			b.Fatal(err)
		}
	}
}

func sentenceNorms(n int) []string {
	words := []string{"similarity", "score", "bigram", "window", "token", "pattern", "engine", "threshold"}
	norms := make([]string, n)
	for i := range norms {
		norms[i] = words[i%len(words)]
	}
	return norms
}
