package transforms

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrNegativeMinLength reports a Lowercase configured with a negative
// minimum length.
var ErrNegativeMinLength = errors.New("minimum length must not be negative")

// Lowercase folds token case, with an escape hatch for short all-caps
// acronyms: lowercasing a token like "AMI" would otherwise fold it into
// the common word "ami". A token is lowercased when its rune length is
// at least minLen, or when it is shorter but not entirely uppercase and
// exceptCaps is enabled. Everything else is left unchanged.
//
// The zero configuration (minLen 0) lowercases every token.
type Lowercase struct {
	minLen     int
	exceptCaps bool
}

// NewLowercase creates the transform. minLen must not be negative.
func NewLowercase(minLen int, exceptCaps bool) (*Lowercase, error) {
	if minLen < 0 {
		return nil, ErrNegativeMinLength
	}
	return &Lowercase{minLen: minLen, exceptCaps: exceptCaps}, nil
}

// Normalize lowercases the token per the configured policy.
func (l *Lowercase) Normalize(token string) string {
	if l.minLen > 0 && utf8.RuneCountInString(token) < l.minLen {
		if !l.exceptCaps {
			return token
		}
		if token == strings.ToUpper(token) {
			return token // short all-caps, keep as is
		}
	}
	return strings.ToLower(token)
}
