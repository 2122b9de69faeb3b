// Package testutil provides deterministic sample inputs shared by
// tests and benchmarks.
package testutil

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
)

var vocabulary = []string{
	"approximate", "matching", "engine", "pattern", "token", "window",
	"bigram", "similarity", "score", "threshold", "sentence", "language",
	"transform", "pipeline", "dictionary", "record", "extract", "search",
	"document", "corpus", "overlap", "boundary", "offset", "normalize",
	"the", "a", "is", "in", "of", "and", "to", "with",
}

// SampleText generates a deterministic multi-sentence text of roughly
// wordsPerSentence words per sentence. The same arguments always yield
// the same text, keeping benchmark runs comparable.
func SampleText(sentences, wordsPerSentence int) string {
	rng := rand.New(rand.NewSource(42))
	var sb strings.Builder
	for s := 0; s < sentences; s++ {
		for w := 0; w < wordsPerSentence; w++ {
			if w > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(vocabulary[rng.Intn(len(vocabulary))])
		}
		sb.WriteString(". ")
	}
	return sb.String()
}

// SampleDictionary generates n two-word terms with small JSON records,
// suitable for extractor tests and benchmarks. Terms draw from the
// content-word part of the vocabulary only, so none of them reduces to
// stop words alone.
func SampleDictionary(n int) map[string]json.RawMessage {
	rng := rand.New(rand.NewSource(7))
	dict := make(map[string]json.RawMessage, n)
	for len(dict) < n {
		term := vocabulary[rng.Intn(24)] + " " + vocabulary[rng.Intn(24)]
		dict[term] = json.RawMessage(fmt.Sprintf(`{"id": %d}`, len(dict)))
	}
	return dict
}
