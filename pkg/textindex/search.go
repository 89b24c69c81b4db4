// Package textindex locates every occurrence of a pattern in a text and
// reports each one as an inclusive character span.
//
// The pattern is compiled as a regular expression, not searched for as a
// literal: "a.c" matches "abc" during the scan. Each regex match only
// nominates a start position; the end is then found by growing the text from
// that start and comparing it with the pattern string itself. A span is
// therefore only reported where the pattern's literal text occurs at a
// position the regex scan visited. Escaping the pattern with
// regexp.QuoteMeta does not turn this into substring search: the comparison
// uses the escaped text, which the haystack never contains, so nothing is
// reported.
package textindex

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/Veraticus/textindices/pkg/types"
)

// Search returns the spans at which pattern occurs in haystack, in the order
// they are found. A nil opts uses the defaults. Finding nothing is not an
// error; the result is then empty.
func Search(haystack, pattern string, opts *Options) ([]types.Span, error) {
	return search(haystack, pattern, opts.resolve())
}

func search(haystack, pattern string, s settings) ([]types.Span, error) {
	re, err := compile(pattern, s.caseSensitive)
	if err != nil {
		return nil, err
	}

	spans := make([]types.Span, 0)
	locs := re.FindAllStringIndex(haystack, -1)
	if len(locs) == 0 {
		return spans, nil
	}

	runes := []rune(haystack)
	want := fold(pattern, s.caseSensitive)
	// Lower-casing maps rune to rune, so only candidates of the pattern's
	// rune length can ever compare equal.
	wantLen := utf8.RuneCountInString(pattern)

	cursor := runeCursor{s: haystack}
	for _, loc := range locs {
		start := cursor.advance(loc[0])

		var candidate strings.Builder
		for i := start; i < len(runes) && i-start < wantLen; i++ {
			candidate.WriteRune(runes[i])
			if fold(candidate.String(), s.caseSensitive) == want {
				spans = append(spans, types.Span{Start: start, End: i})
			}
		}
	}

	return spans, nil
}

func compile(pattern string, caseSensitive bool) (*regexp.Regexp, error) {
	expr := pattern
	if !caseSensitive {
		expr = "(?i)" + pattern
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.WithStack(&PatternError{Pattern: pattern, Err: err})
	}
	return re, nil
}

func fold(s string, caseSensitive bool) string {
	if caseSensitive {
		return s
	}
	return strings.ToLower(s)
}

// runeCursor converts ascending byte offsets into rune offsets without
// rescanning the text from the beginning each time.
type runeCursor struct {
	s       string
	byteOff int
	runeOff int
}

func (c *runeCursor) advance(byteOff int) int {
	c.runeOff += utf8.RuneCountInString(c.s[c.byteOff:byteOff])
	c.byteOff = byteOff
	return c.runeOff
}

// Extract returns the text each span covers. Spans that fall outside the
// haystack yield an empty string.
func Extract(haystack string, spans ...types.Span) []string {
	runes := []rune(haystack)
	out := make([]string, len(spans))
	for i, s := range spans {
		if s.Start < 0 || s.End < s.Start || s.End >= len(runes) {
			continue
		}
		out[i] = string(runes[s.Start : s.End+1])
	}
	return out
}
