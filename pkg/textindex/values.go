package textindex

import (
	"math"

	"github.com/Veraticus/textindices/pkg/types"
)

// Option keys understood by GetTextIndices.
const (
	OptionCaseSensitive = "caseSensitive"
	OptionMultiple      = "multiple"
)

// GetTextIndices is Search for values whose types are not known until run
// time, such as fields decoded from a YAML or JSON request.
//
// options is merged over the defaults key by key. A key that is present wins
// even when its value is nil. Arguments are checked in order (fullStr,
// searchText, multiple) and the first failure is returned as an
// *ArgumentError. caseSensitive is never rejected: nil, false, zero and ""
// select case-insensitive matching, any other value case-sensitive. Unknown
// option keys are ignored.
func GetTextIndices(fullStr, searchText any, options map[string]any) ([]types.Span, error) {
	merged := map[string]any{
		OptionCaseSensitive: defaultSettings.caseSensitive,
		OptionMultiple:      defaultSettings.multiple,
	}
	for k, v := range options {
		merged[k] = v
	}

	haystack, ok := fullStr.(string)
	if !ok {
		return nil, invalidArgument("fullStr", "string")
	}
	pattern, ok := searchText.(string)
	if !ok {
		return nil, invalidArgument("searchText", "a string")
	}
	multiple, ok := merged[OptionMultiple].(bool)
	if !ok {
		return nil, invalidArgument(OptionMultiple, "a boolean")
	}

	return search(haystack, pattern, settings{
		caseSensitive: truthy(merged[OptionCaseSensitive]),
		multiple:      multiple,
	})
}

// truthy reports whether a decoded value counts as set.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	case int64:
		return x != 0
	case uint64:
		return x != 0
	case float64:
		return x != 0 && !math.IsNaN(x)
	default:
		return true
	}
}

// Matcher exposes Search and GetTextIndices as methods so callers can depend
// on an interface. The zero value is ready to use.
type Matcher struct{}

// Search calls the package-level Search.
func (Matcher) Search(haystack, pattern string, opts *Options) ([]types.Span, error) {
	return Search(haystack, pattern, opts)
}

// GetTextIndices calls the package-level GetTextIndices.
func (Matcher) GetTextIndices(fullStr, searchText any, options map[string]any) ([]types.Span, error) {
	return GetTextIndices(fullStr, searchText, options)
}
