package textindex

import (
	"math/rand"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/textindices/pkg/types"
)

func TestSearch(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		pattern  string
		opts     *Options
		expected []types.Span
	}{
		{
			name:     "case insensitive finds differently cased word",
			haystack: "Hello World",
			pattern:  "world",
			opts:     &Options{CaseSensitive: Bool(false)},
			expected: []types.Span{{Start: 6, End: 10}},
		},
		{
			name:     "case sensitive rejects differently cased word",
			haystack: "Hello World",
			pattern:  "world",
			opts:     &Options{CaseSensitive: Bool(true)},
			expected: []types.Span{},
		},
		{
			name:     "defaults are case sensitive",
			haystack: "Hello World",
			pattern:  "world",
			expected: []types.Span{},
		},
		{
			name:     "every single character occurrence",
			haystack: "aaa",
			pattern:  "a",
			expected: []types.Span{{Start: 0, End: 0}, {Start: 1, End: 1}, {Start: 2, End: 2}},
		},
		{
			name:     "multiple occurrences in order",
			haystack: "one two one",
			pattern:  "one",
			expected: []types.Span{{Start: 0, End: 2}, {Start: 8, End: 10}},
		},
		{
			name:     "occurrences do not overlap",
			haystack: "aaa",
			pattern:  "aa",
			expected: []types.Span{{Start: 0, End: 1}},
		},
		{
			name:     "upper case pattern without case sensitivity",
			haystack: "hello HELLO",
			pattern:  "HELLO",
			opts:     &Options{CaseSensitive: Bool(false)},
			expected: []types.Span{{Start: 0, End: 4}, {Start: 6, End: 10}},
		},
		{
			name:     "dot is a regex wildcard so the literal text must still be present",
			haystack: "abc",
			pattern:  "a.c",
			expected: []types.Span{},
		},
		{
			name:     "dot wildcard skips over a non-literal match",
			haystack: "abc a.c",
			pattern:  "a.c",
			expected: []types.Span{{Start: 4, End: 6}},
		},
		{
			name:     "single dot only reports a literal dot",
			haystack: "a.b",
			pattern:  ".",
			expected: []types.Span{{Start: 1, End: 1}},
		},
		{
			name:     "greedy regex match hides the literal occurrence",
			haystack: "ab a.*c",
			pattern:  "a.*c",
			expected: []types.Span{},
		},
		{
			name:     "anchor is regex syntax",
			haystack: "ab",
			pattern:  "^ab",
			expected: []types.Span{},
		},
		{
			name:     "empty pattern never produces a span",
			haystack: "abc",
			pattern:  "",
			expected: []types.Span{},
		},
		{
			name:     "empty haystack",
			haystack: "",
			pattern:  "a",
			expected: []types.Span{},
		},
		{
			name:     "offsets count characters not bytes",
			haystack: "héllo wörld wörld",
			pattern:  "wörld",
			expected: []types.Span{{Start: 6, End: 10}, {Start: 12, End: 16}},
		},
		{
			name:     "non ascii case folding",
			haystack: "ÄBC äbc",
			pattern:  "äbc",
			opts:     &Options{CaseSensitive: Bool(false)},
			expected: []types.Span{{Start: 0, End: 2}, {Start: 4, End: 6}},
		},
		{
			name:     "pattern longer than haystack",
			haystack: "ab",
			pattern:  "abc",
			expected: []types.Span{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans, err := Search(tt.haystack, tt.pattern, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, spans)
		})
	}
}

func TestSearchMultipleDoesNotTruncate(t *testing.T) {
	haystack := "one two one two one"

	single, err := Search(haystack, "one", &Options{Multiple: Bool(false)})
	require.NoError(t, err)
	multiple, err := Search(haystack, "one", &Options{Multiple: Bool(true)})
	require.NoError(t, err)

	assert.Len(t, single, 3)
	assert.Equal(t, single, multiple)
}

func TestSearchInvalidPattern(t *testing.T) {
	spans, err := Search("abc", "a(", nil)
	require.Error(t, err)
	assert.Nil(t, spans)
	assert.ErrorIs(t, err, ErrInvalidPattern)
	assert.NotErrorIs(t, err, ErrInvalidArgument)

	var perr *PatternError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "a(", perr.Pattern)
	assert.Contains(t, err.Error(), `invalid pattern "a("`)
}

func TestSearchUnsupportedSyntax(t *testing.T) {
	// RE2 has no backreferences.
	_, err := Search("aa", `(a)\1`, nil)
	assert.ErrorIs(t, err, ErrInvalidPattern)
}

// literalScan is a non-overlapping left to right substring scan, the
// behavior Search must reproduce for patterns without metacharacters.
func literalScan(haystack, pattern string) []types.Span {
	spans := []types.Span{}
	off := 0
	for {
		idx := strings.Index(haystack[off:], pattern)
		if idx < 0 {
			return spans
		}
		start := off + idx
		spans = append(spans, types.Span{Start: start, End: start + len(pattern) - 1})
		off = start + len(pattern)
	}
}

func TestSearchProperties(t *testing.T) {
	const alphabet = "abAB"
	rng := rand.New(rand.NewSource(1))
	randomString := func(n int) string {
		var b strings.Builder
		for i := 0; i < n; i++ {
			b.WriteByte(alphabet[rng.Intn(len(alphabet))])
		}
		return b.String()
	}

	for i := 0; i < 500; i++ {
		haystack := randomString(rng.Intn(24))
		pattern := randomString(1 + rng.Intn(3))
		caseSensitive := rng.Intn(2) == 0

		spans, err := Search(haystack, pattern, &Options{CaseSensitive: Bool(caseSensitive)})
		require.NoError(t, err)

		want := literalScan(haystack, pattern)
		if !caseSensitive {
			want = literalScan(strings.ToLower(haystack), strings.ToLower(pattern))
		}
		require.Equal(t, want, spans, "haystack=%q pattern=%q caseSensitive=%v", haystack, pattern, caseSensitive)

		texts := Extract(haystack, spans...)
		for j, s := range spans {
			require.LessOrEqual(t, s.Start, s.End)
			if caseSensitive {
				require.Equal(t, pattern, texts[j])
			} else {
				require.Equal(t, strings.ToLower(pattern), strings.ToLower(texts[j]))
			}
		}
	}
}

func TestSearchQuotedPatternFindsNothing(t *testing.T) {
	// The escaped text "a\.c" is what candidates are compared with.
	spans, err := Search("a.c abc a.c", regexp.QuoteMeta("a.c"), nil)
	require.NoError(t, err)
	assert.Equal(t, []types.Span{}, spans)
}

func TestSearchSkipsEmptyMatchAfterMatch(t *testing.T) {
	// "[a]*" matches "a" at 0; the empty match at 1 abuts it and is dropped,
	// so the literal "[a]*" starting at 1 is never a candidate.
	spans, err := Search("a[a]*", "[a]*", nil)
	require.NoError(t, err)
	assert.Equal(t, []types.Span{}, spans)

	// Without a preceding match the same literal is found.
	spans, err = Search("b[a]*", "[a]*", nil)
	require.NoError(t, err)
	assert.Equal(t, []types.Span{{Start: 1, End: 4}}, spans)
}

func TestExtract(t *testing.T) {
	haystack := "héllo wörld"
	texts := Extract(haystack,
		types.Span{Start: 6, End: 10},
		types.Span{Start: 1, End: 1},
		types.Span{Start: 9, End: 40},
		types.Span{Start: 3, End: 2},
	)
	assert.Equal(t, []string{"wörld", "é", "", ""}, texts)
}

func TestOptionsResolve(t *testing.T) {
	var nilOpts *Options
	assert.Equal(t, settings{caseSensitive: true, multiple: false}, nilOpts.resolve())
	assert.Equal(t, settings{caseSensitive: true, multiple: false}, (&Options{}).resolve())
	assert.Equal(t, settings{caseSensitive: false, multiple: false}, (&Options{CaseSensitive: Bool(false)}).resolve())
	assert.Equal(t, settings{caseSensitive: true, multiple: true}, (&Options{Multiple: Bool(true)}).resolve())
}
