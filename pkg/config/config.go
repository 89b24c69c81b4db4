package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Veraticus/textindices/pkg/textindex"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds all configuration for textindices
type Config struct {
	// Search defaults
	CaseSensitive bool `yaml:"case_sensitive" env:"TEXTINDEX_CASE_SENSITIVE"`
	Multiple      bool `yaml:"multiple" env:"TEXTINDEX_MULTIPLE"`

	// Output settings
	Format string `yaml:"format" env:"TEXTINDEX_FORMAT"`
	Color  string `yaml:"color" env:"TEXTINDEX_COLOR"`

	Debug bool `yaml:"debug" env:"TEXTINDEX_DEBUG"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		CaseSensitive: true,
		Multiple:      false,
		Format:        FormatText,
		Color:         ColorAuto,
	}
}

// SearchOptions returns the search defaults as matcher options.
func (c *Config) SearchOptions() *textindex.Options {
	return &textindex.Options{
		CaseSensitive: textindex.Bool(c.CaseSensitive),
		Multiple:      textindex.Bool(c.Multiple),
	}
}

// Load loads configuration from file and environment. An empty path falls
// back to TEXTINDEX_CONFIG and then the standard locations. A missing file is
// not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	configPath := path
	if configPath == "" {
		configPath = getConfigPath()
	}
	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// getConfigPath returns the config file path
func getConfigPath() string {
	if path := os.Getenv("TEXTINDEX_CONFIG"); path != "" {
		return path
	}

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "textindices", "config.yaml")
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "textindices", "config.yaml")
	}

	return ""
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(cfg *Config, path string) error {
	// #nosec G304 - The config file path comes from the user (flag, env var or standard locations)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// loadFromEnv loads configuration from environment variables
func loadFromEnv(cfg *Config) error {
	if v := os.Getenv("TEXTINDEX_CASE_SENSITIVE"); v != "" {
		b, err := parseBool("TEXTINDEX_CASE_SENSITIVE", v)
		if err != nil {
			return err
		}
		cfg.CaseSensitive = b
	}

	if v := os.Getenv("TEXTINDEX_MULTIPLE"); v != "" {
		b, err := parseBool("TEXTINDEX_MULTIPLE", v)
		if err != nil {
			return err
		}
		cfg.Multiple = b
	}

	if format := os.Getenv("TEXTINDEX_FORMAT"); format != "" {
		cfg.Format = format
	}

	if color := os.Getenv("TEXTINDEX_COLOR"); color != "" {
		cfg.Color = color
	}

	if v := os.Getenv("TEXTINDEX_DEBUG"); v != "" {
		b, err := parseBool("TEXTINDEX_DEBUG", v)
		if err != nil {
			return err
		}
		cfg.Debug = b
	}

	return nil
}

func parseBool(name, value string) (bool, error) {
	switch value {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("invalid %s value: %q (use true/false)", name, value)
	}
}

// Validate checks the output settings.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("format must be one of text, json, yaml (got %q)", c.Format)
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be one of auto, always, never (got %q)", c.Color)
	}

	return nil
}
