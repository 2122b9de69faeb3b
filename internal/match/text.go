package match

import "DiceMatch/internal/bigram"

// Token is one word token of a preprocessed text or pattern. Immutable
// once created.
type Token struct {
	Raw   string // text as it appears in the source
	Norm  string // after the transform pipeline
	Begin int    // byte offset into the source string
	End   int    // exclusive
	Stop  bool   // normalized form is a stop word
}

// Text is a preprocessed text: per sentence, the ordered token sequence
// and the cumulative bigram index the span search runs on. Construction
// cost and index space are quadratic-equivalent in sentence token count;
// the structure exists so the text can be matched against many patterns
// without re-preprocessing.
type Text struct {
	source    string
	sentences []sentenceIndex
}

type sentenceIndex struct {
	tokens []Token
	index  *bigram.SpanIndex
}

// Source returns the raw text the structure was built from.
func (t *Text) Source() string {
	return t.source
}

// SentenceCount returns the number of sentences.
func (t *Text) SentenceCount() int {
	return len(t.sentences)
}

// Tokens returns a copy of the token sequence of one sentence.
func (t *Text) Tokens(sentence int) []Token {
	if sentence < 0 || sentence >= len(t.sentences) {
		return nil
	}
	src := t.sentences[sentence].tokens
	out := make([]Token, len(src))
	copy(out, src)
	return out
}

// Pattern is a preprocessed match pattern: its token sequence (boundary
// stop words already trimmed) and the single aggregate bigram multiset
// it is always matched as a whole with.
type Pattern struct {
	source  string
	tokens  []Token
	bigrams bigram.Multiset
}

// Source returns the raw pattern string.
func (p *Pattern) Source() string {
	return p.source
}

// Tokens returns a copy of the pattern's token sequence.
func (p *Pattern) Tokens() []Token {
	out := make([]Token, len(p.tokens))
	copy(out, p.tokens)
	return out
}

// Bigrams returns the pattern's aggregate bigram multiset.
func (p *Pattern) Bigrams() bigram.Multiset {
	return p.bigrams
}
