package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/Veraticus/textindices/pkg/config"
)

// Exit codes, grep style.
const (
	exitFound   = 0
	exitNoMatch = 1
	exitError   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("textindices", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath    string
		ignoreCase    bool
		caseSensitive bool
		multiple      bool
		format        string
		color         string
		requestPath   string
		debug         bool
		help          bool
	)
	fs.StringVar(&configPath, "config", "", "Path to config file")
	fs.BoolVarP(&ignoreCase, "ignore-case", "i", false, "Match without regard to case")
	fs.BoolVar(&caseSensitive, "case-sensitive", true, "Match case exactly")
	fs.BoolVar(&multiple, "multiple", false, "Request every match (results are never truncated)")
	fs.StringVar(&format, "format", "", "Output format: text, json or yaml")
	fs.StringVar(&color, "color", "", "Highlight matches: auto, always or never")
	fs.StringVar(&requestPath, "request", "", "Read a YAML or JSON search request from file")
	fs.BoolVar(&debug, "debug", false, "Log debug output to stderr")
	fs.BoolVarP(&help, "help", "h", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	if help {
		printUsage(stdout, fs)
		return exitFound
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return exitError
	}

	// Flags win over the config file and environment, but only when given
	if fs.Changed("case-sensitive") {
		cfg.CaseSensitive = caseSensitive
	}
	if fs.Changed("ignore-case") && ignoreCase {
		cfg.CaseSensitive = false
	}
	if fs.Changed("multiple") {
		cfg.Multiple = multiple
	}
	if fs.Changed("format") {
		cfg.Format = format
	}
	if fs.Changed("color") {
		cfg.Color = color
	}
	if fs.Changed("debug") {
		cfg.Debug = debug
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	in, err := readInput(fs.Args(), requestPath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	deps, err := NewDependencies(cfg, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error creating dependencies: %v\n", err)
		return exitError
	}
	defer deps.Close()

	n, err := NewApplication(deps).Run(in)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	if n == 0 {
		return exitNoMatch
	}
	return exitFound
}

// readInput builds the search input from positional arguments or a request file
func readInput(args []string, requestPath string, stdin io.Reader) (Input, error) {
	if requestPath != "" {
		if len(args) > 0 {
			return Input{}, fmt.Errorf("--request does not take positional arguments")
		}
		// #nosec G304 - The request path is supplied by the user
		data, err := os.ReadFile(requestPath)
		if err != nil {
			return Input{}, fmt.Errorf("failed to read request: %w", err)
		}
		req, err := ParseRequest(data)
		if err != nil {
			return Input{}, err
		}
		return Input{Request: req}, nil
	}

	if len(args) < 1 || len(args) > 2 {
		return Input{}, fmt.Errorf("expected PATTERN [FILE], got %d arguments", len(args))
	}

	var (
		data []byte
		err  error
	)
	if len(args) == 1 || args[1] == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		// #nosec G304 - The haystack path is supplied by the user
		data, err = os.ReadFile(args[1])
	}
	if err != nil {
		return Input{}, fmt.Errorf("failed to read haystack: %w", err)
	}

	return Input{Haystack: string(data), Pattern: args[0]}, nil
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "textindices - find the start and end offsets of every occurrence of a pattern")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: textindices [OPTIONS] PATTERN [FILE]")
	fmt.Fprintln(w, "       textindices [OPTIONS] --request FILE")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "PATTERN is a regular expression. Offsets are inclusive character positions.")
	fmt.Fprintln(w, "FILE defaults to standard input.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprint(w, fs.FlagUsages())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment Variables:")
	fmt.Fprintln(w, "  TEXTINDEX_CONFIG          Path to config file")
	fmt.Fprintln(w, "  TEXTINDEX_CASE_SENSITIVE  Default case sensitivity (true/false)")
	fmt.Fprintln(w, "  TEXTINDEX_MULTIPLE        Default multiple flag (true/false)")
	fmt.Fprintln(w, "  TEXTINDEX_FORMAT          Output format (text, json, yaml)")
	fmt.Fprintln(w, "  TEXTINDEX_COLOR           Color mode (auto, always, never)")
	fmt.Fprintln(w, "  TEXTINDEX_DEBUG           Debug logging (true/false)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration file: ~/.config/textindices/config.yaml")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit status is 0 when a match is found, 1 when none is, 2 on error.")
}
