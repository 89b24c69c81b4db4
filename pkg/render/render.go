// Package render writes search results for humans and for other programs.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Veraticus/textindices/pkg/config"
	"github.com/Veraticus/textindices/pkg/interfaces"
	"github.com/Veraticus/textindices/pkg/textindex"
	"github.com/Veraticus/textindices/pkg/types"
)

const (
	highlightStart = "\033[1;33m" // Bold yellow
	highlightEnd   = "\033[0m"
)

var controlEscaper = strings.NewReplacer("\n", `\n`, "\r", `\r`, "\t", `\t`)

// Renderer writes spans in one of the config formats.
type Renderer struct {
	w      io.Writer
	format string
	color  bool
}

// Ensure Renderer implements interfaces.Renderer
var _ interfaces.Renderer = (*Renderer)(nil)

// New creates a renderer. color only affects the text format.
func New(w io.Writer, format string, color bool) (*Renderer, error) {
	switch format {
	case config.FormatText, config.FormatJSON, config.FormatYAML:
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
	return &Renderer{w: w, format: format, color: color}, nil
}

// Render writes spans found in haystack.
func (r *Renderer) Render(haystack string, spans []types.Span) error {
	if spans == nil {
		spans = []types.Span{}
	}

	switch r.format {
	case config.FormatJSON:
		return json.NewEncoder(r.w).Encode(spans)
	case config.FormatYAML:
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(spans); err != nil {
			return err
		}
		return enc.Close()
	default:
		return r.renderText(haystack, spans)
	}
}

// renderText writes one "start<TAB>end<TAB>text" line per span.
func (r *Renderer) renderText(haystack string, spans []types.Span) error {
	texts := textindex.Extract(haystack, spans...)
	for i, s := range spans {
		text := controlEscaper.Replace(texts[i])
		if r.color {
			text = highlightStart + text + highlightEnd
		}
		if _, err := fmt.Fprintf(r.w, "%d\t%d\t%s\n", s.Start, s.End, text); err != nil {
			return err
		}
	}
	return nil
}
