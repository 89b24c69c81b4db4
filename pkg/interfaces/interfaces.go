// Package interfaces defines the core interfaces used throughout the application.
package interfaces

import (
	"github.com/Veraticus/textindices/pkg/textindex"
	"github.com/Veraticus/textindices/pkg/types"
)

// Searcher locates pattern occurrences in text.
type Searcher interface {
	Search(haystack, pattern string, opts *textindex.Options) ([]types.Span, error)
	GetTextIndices(fullStr, searchText any, options map[string]any) ([]types.Span, error)
}

// Renderer writes search results.
type Renderer interface {
	Render(haystack string, spans []types.Span) error
}
