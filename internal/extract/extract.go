// Package extract identifies dictionary terms in free text using the
// approximate matching core: dictionary-based named-entity recognition.
// Terms map to schemaless JSON records that ride along on matches; a
// record may override the default matching threshold for its term via
// the reserved "matching_threshold" field.
package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/tidwall/gjson"

	"DiceMatch/internal/match"
)

// ThresholdField is the reserved record field holding a per-term
// matching threshold.
const ThresholdField = "matching_threshold"

// ErrNilDictionary reports extractor construction without a dictionary.
var ErrNilDictionary = errors.New("dictionary must not be nil")

// Entry is one dictionary item: the term to match and its record.
type Entry struct {
	Term   string
	Record json.RawMessage
}

// Dictionary supplies the terms to extract. Implementations may sit on
// top of anything (a map, a database); the extractor only ever sees
// term strings and opaque records.
type Dictionary interface {
	Items() []Entry
}

// MapDictionary is the simplest Dictionary: an in-memory term → record
// map. Items are returned sorted by term, keeping extraction
// deterministic.
type MapDictionary map[string]json.RawMessage

// Items returns the entries sorted by term.
func (d MapDictionary) Items() []Entry {
	terms := make([]string, 0, len(d))
	for term := range d {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	entries := make([]Entry, len(terms))
	for i, term := range terms {
		entries[i] = Entry{Term: term, Record: d[term]}
	}
	return entries
}

// Match is one occurrence of a dictionary term in the text.
type Match struct {
	Term   string          `json:"term"`
	Begin  int             `json:"begin"`
	End    int             `json:"end"`
	Score  float64         `json:"score"`
	Text   string          `json:"text"`
	Record json.RawMessage `json:"record,omitempty"`
}

// Options configures an Extractor.
type Options struct {
	// DefaultThreshold applies to terms without their own
	// matching_threshold record field. The default is 1.0 (exact match):
	// matching cost grows as the threshold drops, so the conservative
	// default is also the fastest.
	DefaultThreshold float64

	// Matcher configures text/pattern preprocessing.
	Matcher match.Options
}

// DefaultOptions returns Options with exact-match threshold and the
// matcher defaults.
func DefaultOptions() Options {
	return Options{
		DefaultThreshold: 1.0,
		Matcher:          match.DefaultOptions(),
	}
}

type compiledTerm struct {
	term      string
	record    json.RawMessage
	pattern   *match.Pattern
	threshold float64
}

// Extractor matches a fixed dictionary against texts. Terms are
// preprocessed once at construction; construction fails fast on terms
// that cannot form a pattern or carry an invalid threshold override.
type Extractor struct {
	matcher *match.Matcher
	options Options
	dict    Dictionary
	terms   []compiledTerm
}

// New compiles the dictionary into an extractor.
func New(dict Dictionary, opts Options) (*Extractor, error) {
	if dict == nil {
		return nil, ErrNilDictionary
	}
	if opts.DefaultThreshold <= 0 || opts.DefaultThreshold > 1 {
		return nil, fmt.Errorf("default threshold %v: %w", opts.DefaultThreshold, match.ErrThreshold)
	}

	matcher, err := match.New(opts.Matcher)
	if err != nil {
		return nil, err
	}

	e := &Extractor{
		matcher: matcher,
		options: opts,
		dict:    dict,
	}
	for _, entry := range dict.Items() {
		pattern, err := matcher.Pattern(entry.Term)
		if err != nil {
			return nil, fmt.Errorf("term %q: %w", entry.Term, err)
		}
		threshold := opts.DefaultThreshold
		if field := gjson.GetBytes(entry.Record, ThresholdField); field.Exists() {
			threshold = field.Float()
			if threshold <= 0 || threshold > 1 {
				return nil, fmt.Errorf("term %q: %s %v: %w",
					entry.Term, ThresholdField, field.Value(), match.ErrThreshold)
			}
		}
		e.terms = append(e.terms, compiledTerm{
			term:      entry.Term,
			record:    entry.Record,
			pattern:   pattern,
			threshold: threshold,
		})
	}
	return e, nil
}

// TermCount returns the number of compiled dictionary terms.
func (e *Extractor) TermCount() int {
	return len(e.terms)
}

// Extract finds all dictionary term matches in the text. The text is
// preprocessed once and queried per term; results are ordered by start
// offset, then end offset, then term.
func (e *Extractor) Extract(text string) ([]Match, error) {
	prepared := e.matcher.Text(text)

	var out []Match
	for _, ct := range e.terms {
		found, err := prepared.Match(ct.pattern, ct.threshold)
		if err != nil {
			return nil, fmt.Errorf("term %q: %w", ct.term, err)
		}
		for _, m := range found {
			out = append(out, Match{
				Term:   ct.term,
				Begin:  m.Begin,
				End:    m.End,
				Score:  m.Score,
				Text:   m.Text,
				Record: ct.record,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Begin != out[j].Begin {
			return out[i].Begin < out[j].Begin
		}
		if out[i].End != out[j].End {
			return out[i].End < out[j].End
		}
		return out[i].Term < out[j].Term
	})
	return out, nil
}
