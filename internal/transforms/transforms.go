// Package transforms provides the token normalization pipeline applied
// to every token before bigram encoding. A pipeline is an ordered list
// of transforms; each is a total, deterministic, side-effect-free
// function from one token text to another.
package transforms

// Transform normalizes a single token's text.
type Transform interface {
	Normalize(token string) string
}

// Func adapts an ordinary function to the Transform interface.
type Func func(string) string

// Normalize applies the function.
func (f Func) Normalize(token string) string {
	return f(token)
}

// Apply runs the pipeline left to right over the token text.
func Apply(pipeline []Transform, token string) string {
	for _, t := range pipeline {
		token = t.Normalize(token)
	}
	return token
}
