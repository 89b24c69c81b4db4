package testutil

import (
	"sync"

	"github.com/Veraticus/textindices/pkg/interfaces"
	"github.com/Veraticus/textindices/pkg/textindex"
	"github.com/Veraticus/textindices/pkg/types"
)

// SearchCall records the arguments of one Search or GetTextIndices call.
type SearchCall struct {
	Haystack string
	Pattern  string
	Options  *textindex.Options

	// Set for GetTextIndices calls.
	Values     bool
	RawOptions map[string]any
}

// MockSearcher is a thread-safe mock implementation of interfaces.Searcher for testing
type MockSearcher struct {
	mu        sync.Mutex
	calls     []SearchCall
	spans     []types.Span
	searchErr error
}

var _ interfaces.Searcher = (*MockSearcher)(nil)

// NewMockSearcher creates a new mock searcher returning spans
func NewMockSearcher(spans []types.Span) *MockSearcher {
	return &MockSearcher{
		calls: []SearchCall{},
		spans: spans,
	}
}

// Search implements the Searcher interface
func (m *MockSearcher) Search(haystack, pattern string, opts *textindex.Options) ([]types.Span, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, SearchCall{Haystack: haystack, Pattern: pattern, Options: opts})
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	return m.spans, nil
}

// GetTextIndices implements the Searcher interface. Non-string arguments are
// recorded as empty strings.
func (m *MockSearcher) GetTextIndices(fullStr, searchText any, options map[string]any) ([]types.Span, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	haystack, _ := fullStr.(string)
	pattern, _ := searchText.(string)
	m.calls = append(m.calls, SearchCall{Haystack: haystack, Pattern: pattern, Values: true, RawOptions: options})
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	return m.spans, nil
}

// GetCalls returns a copy of all recorded calls
func (m *MockSearcher) GetCalls() []SearchCall {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]SearchCall, len(m.calls))
	copy(result, m.calls)
	return result
}

// SetError sets the error to return on every call
func (m *MockSearcher) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.searchErr = err
}

// MockRenderer is a mock implementation of interfaces.Renderer for testing
type MockRenderer struct {
	mu        sync.Mutex
	rendered  [][]types.Span
	haystacks []string
	renderErr error
}

var _ interfaces.Renderer = (*MockRenderer)(nil)

// NewMockRenderer creates a new mock renderer
func NewMockRenderer() *MockRenderer {
	return &MockRenderer{}
}

// Render implements the Renderer interface
func (m *MockRenderer) Render(haystack string, spans []types.Span) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.haystacks = append(m.haystacks, haystack)
	m.rendered = append(m.rendered, spans)
	return m.renderErr
}

// GetRendered returns a copy of every span list passed to Render
func (m *MockRenderer) GetRendered() [][]types.Span {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([][]types.Span, len(m.rendered))
	copy(result, m.rendered)
	return result
}

// GetHaystacks returns a copy of every haystack passed to Render
func (m *MockRenderer) GetHaystacks() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]string, len(m.haystacks))
	copy(result, m.haystacks)
	return result
}

// SetError sets the error to return on Render calls
func (m *MockRenderer) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.renderErr = err
}
