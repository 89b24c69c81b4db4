// Package types contains shared data structures used across the application.
package types

// Span is a matched region of a haystack. Start and End are zero-based
// character (rune) offsets and both are inclusive, so a one-character match
// has Start == End.
type Span struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}
