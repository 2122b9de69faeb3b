// Package tokenize bridges UAX#29 text segmentation into the token and
// sentence model the matching engine consumes. Word and sentence
// boundary detection is delegated to the uax29 segmenter; this package
// only classifies segments and tracks byte offsets.
package tokenize

import (
	"sort"
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/sentences"
	"github.com/clipperhouse/uax29/v2/words"
)

// DefaultLanguage is used when the caller does not pick one and as the
// fallback under non-strict language resolution.
const DefaultLanguage = "english"

// catalog lists the languages this module claims segmentation support
// for. UAX#29 segmentation itself is script-driven rather than
// language-driven; the catalog exists so that language resolution can
// fail fast on languages whose stop-word data and casing conventions
// were never vetted.
var catalog = map[string]struct{}{
	"czech":      {},
	"dutch":      {},
	"english":    {},
	"french":     {},
	"german":     {},
	"italian":    {},
	"portuguese": {},
	"russian":    {},
	"spanish":    {},
	"swedish":    {},
}

// Supported reports whether the language is in the segmentation catalog.
func Supported(language string) bool {
	_, ok := catalog[strings.ToLower(language)]
	return ok
}

// Languages returns the segmentation catalog, sorted.
func Languages() []string {
	langs := make([]string, 0, len(catalog))
	for l := range catalog {
		langs = append(langs, l)
	}
	sort.Strings(langs)
	return langs
}

// Token is a word token: a contiguous character span within the input
// holding at least one letter or digit. Whitespace and punctuation
// segments are dropped.
type Token struct {
	Text  string
	Begin int // byte offset into the input
	End   int // exclusive
}

// Words tokenizes the input into word tokens with byte offsets. The
// uax29 iterator yields every segment (words, whitespace, punctuation)
// contiguously, so offsets are recovered by accumulation.
func Words(input string) []Token {
	var tokens []Token
	offset := 0
	segs := words.FromString(input)
	for segs.Next() {
		seg := segs.Value()
		end := offset + len(seg)
		if isWord(seg) {
			tokens = append(tokens, Token{Text: seg, Begin: offset, End: end})
		}
		offset = end
	}
	return tokens
}

// Sentence is one sentence segment of a text, with the byte offset of
// its start. Segments are contiguous and cover the whole input.
type Sentence struct {
	Text  string
	Begin int
}

// Sentences splits the text into sentence segments with byte offsets.
func Sentences(text string) []Sentence {
	var out []Sentence
	offset := 0
	segs := sentences.FromString(text)
	for segs.Next() {
		seg := segs.Value()
		out = append(out, Sentence{Text: seg, Begin: offset})
		offset += len(seg)
	}
	return out
}

func isWord(seg string) bool {
	for _, r := range seg {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
