package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Veraticus/textindices/pkg/config"
	"github.com/Veraticus/textindices/pkg/interfaces"
	"github.com/Veraticus/textindices/pkg/logging"
	"github.com/Veraticus/textindices/pkg/render"
	"github.com/Veraticus/textindices/pkg/textindex"
	"github.com/Veraticus/textindices/pkg/types"
)

// Ensure the real matcher satisfies what the application depends on
var _ interfaces.Searcher = textindex.Matcher{}

// Dependencies holds all the dependencies for the application
type Dependencies struct {
	Config   *config.Config
	Logger   *zap.Logger
	Searcher interfaces.Searcher
	Renderer interfaces.Renderer
}

// NewDependencies creates all dependencies with the given configuration.
// Results go to stdout and logs to stderr.
func NewDependencies(cfg *config.Config, stdout, stderr io.Writer) (*Dependencies, error) {
	renderer, err := render.New(stdout, cfg.Format, useColor(cfg.Color, stdout))
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	return &Dependencies{
		Config:   cfg,
		Logger:   logging.New(stderr, cfg.Debug),
		Searcher: textindex.Matcher{},
		Renderer: renderer,
	}, nil
}

// Close flushes the logger
func (d *Dependencies) Close() {
	if d.Logger != nil {
		_ = d.Logger.Sync() // Best effort
	}
}

// useColor resolves a color mode against the output writer
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

// Input is one search to run. When Request is set the haystack, pattern and
// options come from it instead of Haystack and Pattern.
type Input struct {
	Haystack string
	Pattern  string
	Request  map[string]any
}

// ParseRequest decodes a YAML or JSON request document of the form
// {fullStr, searchText, options}. Values are left untyped so the matcher can
// check them.
func ParseRequest(data []byte) (map[string]any, error) {
	var req map[string]any
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}
	if req == nil {
		return nil, fmt.Errorf("request is empty")
	}
	return req, nil
}

// Application represents the main application
type Application struct {
	deps *Dependencies
}

// NewApplication creates a new application with the given dependencies
func NewApplication(deps *Dependencies) *Application {
	return &Application{
		deps: deps,
	}
}

// Run performs the search, renders the result and returns the number of
// spans found.
func (a *Application) Run(in Input) (int, error) {
	log := a.deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	started := time.Now()

	haystack := in.Haystack
	var (
		spans []types.Span
		err   error
	)
	if in.Request != nil {
		options, ok := in.Request["options"].(map[string]any)
		if !ok && in.Request["options"] != nil {
			return 0, fmt.Errorf("request options must be a mapping")
		}
		log.Debug("searching request",
			zap.Any("searchText", in.Request["searchText"]),
			zap.Any("options", options))

		spans, err = a.deps.Searcher.GetTextIndices(in.Request["fullStr"], in.Request["searchText"], options)
		haystack, _ = in.Request["fullStr"].(string)
	} else {
		opts := a.deps.Config.SearchOptions()
		log.Debug("searching",
			zap.String("pattern", in.Pattern),
			zap.Int("haystack_bytes", len(in.Haystack)),
			zap.Boolp("case_sensitive", opts.CaseSensitive),
			zap.Boolp("multiple", opts.Multiple))

		spans, err = a.deps.Searcher.Search(in.Haystack, in.Pattern, opts)
	}
	if err != nil {
		log.Debug("search failed", zap.Error(err))
		return 0, err
	}

	log.Debug("search finished",
		zap.Int("spans", len(spans)),
		zap.Duration("elapsed", time.Since(started)))

	if err := a.deps.Renderer.Render(haystack, spans); err != nil {
		return 0, fmt.Errorf("failed to write results: %w", err)
	}
	return len(spans), nil
}
