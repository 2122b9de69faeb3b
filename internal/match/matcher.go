// Package match implements approximate matching of token patterns
// against tokenized text using the Sørensen–Dice coefficient over
// character-bigram multisets. Texts and patterns are preprocessed once
// into immutable structures that can be queried repeatedly and shared
// across goroutines.
package match

import (
	"errors"
	"fmt"

	"DiceMatch/internal/bigram"
	"DiceMatch/internal/stopwords"
	"DiceMatch/internal/tokenize"
	"DiceMatch/internal/transforms"
)

var (
	// ErrUnknownLanguage reports a language outside the segmentation
	// catalog (or without stop-word data) under strict resolution.
	ErrUnknownLanguage = errors.New("unsupported language")

	// ErrEmptyPattern reports a pattern with no tokens. A zero-token
	// pattern has no bigrams and cannot be meaningfully scored.
	ErrEmptyPattern = errors.New("pattern has no tokens")

	// ErrThreshold reports a matching threshold outside (0, 1].
	ErrThreshold = errors.New("threshold must be in (0, 1]")
)

// Options configures a Matcher.
type Options struct {
	// Language selects the tokenizer catalog entry and stop-word list.
	// Empty means tokenize.DefaultLanguage.
	Language string

	// StrictLanguage makes construction fail on an unknown language.
	// When disabled, the matcher falls back to the default language's
	// tokenizer with an empty stop-word set; stop words are never taken
	// from a mismatched language.
	StrictLanguage bool

	// StripStopwords forbids matches from starting or ending on a stop
	// word. Disabled, no tokens are flagged and the boundary policy is
	// inert.
	StripStopwords bool

	// Transforms is the token normalization pipeline, applied in order
	// to every token of both texts and patterns.
	Transforms []transforms.Transform
}

// DefaultOptions returns Options with the original defaults: default
// language, strict resolution, stop-word boundary stripping on.
func DefaultOptions() Options {
	return Options{
		Language:       tokenize.DefaultLanguage,
		StrictLanguage: true,
		StripStopwords: true,
	}
}

// Matcher preprocesses texts and patterns under one fixed language and
// transform configuration. Language resolution happens once, here;
// preprocessing never re-decides it.
type Matcher struct {
	language   string
	stop       stopwords.Set
	transforms []transforms.Transform
}

// New resolves the language and stop-word set per opts and returns the
// matcher. Resolution is the only fallible step: preprocessing itself
// is pure computation.
func New(opts Options) (*Matcher, error) {
	language := opts.Language
	if language == "" {
		language = tokenize.DefaultLanguage
	}

	stop := stopwords.None
	switch {
	case !tokenize.Supported(language):
		if opts.StrictLanguage {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, language)
		}
		language = tokenize.DefaultLanguage
	case opts.StripStopwords:
		set, err := stopwords.Load(language)
		if err != nil {
			if opts.StrictLanguage {
				return nil, fmt.Errorf("%w: %q: %v", ErrUnknownLanguage, language, err)
			}
			set = stopwords.None
		}
		stop = set
	}

	return &Matcher{
		language:   language,
		stop:       stop,
		transforms: opts.Transforms,
	}, nil
}

// Language returns the resolved language.
func (m *Matcher) Language() string {
	return m.language
}

// Text preprocesses a whole text: sentence splitting, tokenization,
// transform pipeline, stop-word flagging and bigram index construction
// per sentence. The result is immutable and reusable across match calls.
func (m *Matcher) Text(text string) *Text {
	t := &Text{source: text}
	for _, s := range tokenize.Sentences(text) {
		t.sentences = append(t.sentences, m.buildSentence(s.Text, s.Begin))
	}
	return t
}

// Sentence preprocesses input that is already a single sentence,
// skipping the sentence splitter.
func (m *Matcher) Sentence(text string) *Text {
	return &Text{
		source:    text,
		sentences: []sentenceIndex{m.buildSentence(text, 0)},
	}
}

// Pattern preprocesses a match pattern. Leading and trailing stop-word
// tokens are trimmed (they could never be match boundaries); a pattern
// with no tokens left is rejected.
func (m *Matcher) Pattern(pattern string) (*Pattern, error) {
	tokens := m.tokenize(pattern, 0)
	trimmed := tokens
	for len(trimmed) > 0 && trimmed[0].Stop {
		trimmed = trimmed[1:]
	}
	for len(trimmed) > 0 && trimmed[len(trimmed)-1].Stop {
		trimmed = trimmed[:len(trimmed)-1]
	}
	if len(trimmed) == 0 {
		if len(tokens) > 0 {
			return nil, fmt.Errorf("%w: only stop words", ErrEmptyPattern)
		}
		return nil, ErrEmptyPattern
	}

	norms := make([]string, len(trimmed))
	for i, tok := range trimmed {
		norms[i] = tok.Norm
	}
	return &Pattern{
		source:  pattern,
		tokens:  trimmed,
		bigrams: bigram.Sum(norms),
	}, nil
}

func (m *Matcher) buildSentence(sentence string, base int) sentenceIndex {
	tokens := m.tokenize(sentence, base)
	norms := make([]string, len(tokens))
	for i, tok := range tokens {
		norms[i] = tok.Norm
	}
	return sentenceIndex{
		tokens: tokens,
		index:  bigram.NewSpanIndex(norms),
	}
}

// tokenize produces the package's Token model for one sentence or
// pattern: word tokens with offsets shifted by base, normalized through
// the transform pipeline and flagged against the stop-word set.
func (m *Matcher) tokenize(text string, base int) []Token {
	words := tokenize.Words(text)
	if len(words) == 0 {
		return nil
	}
	tokens := make([]Token, len(words))
	for i, w := range words {
		norm := transforms.Apply(m.transforms, w.Text)
		tokens[i] = Token{
			Raw:   w.Text,
			Norm:  norm,
			Begin: base + w.Begin,
			End:   base + w.End,
			Stop:  m.stop.Contains(norm),
		}
	}
	return tokens
}
