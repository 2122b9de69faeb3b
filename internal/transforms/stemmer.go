package transforms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kljensen/snowball"
)

// ErrNoStemmer reports a Stemmer requested for a language snowball does
// not cover.
var ErrNoStemmer = errors.New("no stemmer for language")

// Stemmer reduces tokens to their snowball (Porter2) stem, folding
// inflected forms ("running", "runs") onto a common representation
// before bigram encoding.
type Stemmer struct {
	language string
}

// NewStemmer creates a stemmer for the given language. The language is
// validated once here; Normalize itself never fails.
func NewStemmer(language string) (*Stemmer, error) {
	lang := strings.ToLower(language)
	if _, err := snowball.Stem("stemmer", lang, false); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoStemmer, language)
	}
	return &Stemmer{language: lang}, nil
}

// Normalize returns the token's stem. Snowball lowercases as part of
// stemming; tokens it cannot process are returned unchanged.
func (st *Stemmer) Normalize(token string) string {
	stem, err := snowball.Stem(token, st.language, false)
	if err != nil || stem == "" {
		return token
	}
	return stem
}
