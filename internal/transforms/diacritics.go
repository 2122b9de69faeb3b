package transforms

import (
	"unicode"

	"golang.org/x/text/runes"
	xtransform "golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StripDiacritics removes combining marks from token text ("šíma" →
// "sima"), so patterns written without diacritics still match text that
// carries them and vice versa.
type StripDiacritics struct{}

// NewStripDiacritics creates the transform.
func NewStripDiacritics() *StripDiacritics {
	return &StripDiacritics{}
}

// Normalize decomposes the token, drops nonspacing marks and recomposes.
// A fresh transformer chain is built per call: chains carry state and
// preprocessed texts must stay safe to share across goroutines.
func (*StripDiacritics) Normalize(token string) string {
	if isASCII(token) {
		return token
	}
	chain := xtransform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := xtransform.String(chain, token)
	if err != nil {
		return token
	}
	return out
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
