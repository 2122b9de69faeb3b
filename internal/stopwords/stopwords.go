// Package stopwords ships per-language stop-word lists and the
// case-insensitive set used to flag low-information tokens. Stop words
// are excluded from match boundaries only; they still score inside a
// match.
package stopwords

import (
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"
)

//go:embed data/*.txt
var dataFS embed.FS

// ErrUnavailable reports a language without an embedded stop-word list.
var ErrUnavailable = errors.New("no stop-word list for language")

// Set is a stop-word set. Membership is case-insensitive; the nil Set
// contains nothing and is the "no stop words" value.
type Set map[string]struct{}

// None is the empty stop-word set used when stop-word stripping is
// disabled or a non-strict fallback is in effect.
var None Set

// Load reads the embedded list for the given language. One word per
// line; blank lines and lines starting with '#' are skipped.
func Load(language string) (Set, error) {
	lang := strings.ToLower(language)
	raw, err := dataFS.ReadFile("data/" + lang + ".txt")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, language)
	}

	set := make(Set)
	for _, line := range strings.Split(string(raw), "\n") {
		word := strings.TrimSpace(line)
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		set[strings.ToLower(word)] = struct{}{}
	}
	return set, nil
}

// Available returns the languages with embedded lists, sorted.
func Available() []string {
	entries, err := dataFS.ReadDir("data")
	if err != nil {
		return nil
	}
	langs := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if strings.HasSuffix(name, ".txt") {
			langs = append(langs, strings.TrimSuffix(name, ".txt"))
		}
	}
	sort.Strings(langs)
	return langs
}

// Contains reports membership, folding the word's case first.
func (s Set) Contains(word string) bool {
	if len(s) == 0 {
		return false
	}
	_, ok := s[strings.ToLower(word)]
	return ok
}
