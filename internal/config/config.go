// Package config provides configuration management for mdoc.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Unknown card policies.
const (
	UnknownCardsFail    = "fail"
	UnknownCardsSkip    = "skip"
	UnknownCardsComment = "comment"
)

// Document output formats.
var validOutputFormats = []string{"html", "markdown", "text", "json"}

var validUnknownCardPolicies = []string{UnknownCardsFail, UnknownCardsSkip, UnknownCardsComment}

// Config holds the mdoc configuration.
type Config struct {
	OutputFormat string            `yaml:"output_format,omitempty"`
	UnknownCards string            `yaml:"unknown_cards,omitempty"`
	Cards        []string          `yaml:"cards,omitempty"`
	CardOptions  map[string]string `yaml:"card_options,omitempty"`
}

// Validate checks that the configured values are recognized.
// Empty values are valid and mean "use the default".
func (c *Config) Validate() error {
	if c.OutputFormat != "" && !contains(validOutputFormats, c.OutputFormat) {
		return fmt.Errorf("output_format must be one of %s, got %q", strings.Join(validOutputFormats, ", "), c.OutputFormat)
	}
	if c.UnknownCards != "" && !contains(validUnknownCardPolicies, c.UnknownCards) {
		return fmt.Errorf("unknown_cards must be one of %s, got %q", strings.Join(validUnknownCardPolicies, ", "), c.UnknownCards)
	}
	return nil
}

// ApplyDefaults fills in defaults for unset fields.
func (c *Config) ApplyDefaults() {
	if c.OutputFormat == "" {
		c.OutputFormat = "html"
	}
	if c.UnknownCards == "" {
		c.UnknownCards = UnknownCardsFail
	}
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
func (c *Config) LoadFromEnv() {
	if format := os.Getenv("MDOC_OUTPUT_FORMAT"); format != "" {
		c.OutputFormat = format
	}
	if policy := os.Getenv("MDOC_UNKNOWN_CARDS"); policy != "" {
		c.UnknownCards = policy
	}
	if cards := os.Getenv("MDOC_CARDS"); cards != "" {
		c.Cards = splitList(cards)
	}
}

// EnvVars lists the environment variables read by LoadFromEnv.
func EnvVars() []string {
	return []string{"MDOC_OUTPUT_FORMAT", "MDOC_UNKNOWN_CARDS", "MDOC_CARDS"}
}

// ValidOutputFormats returns the accepted output_format values.
func ValidOutputFormats() []string {
	return append([]string(nil), validOutputFormats...)
}

// ValidUnknownCardPolicies returns the accepted unknown_cards values.
func ValidUnknownCardPolicies() []string {
	return append([]string(nil), validUnknownCardPolicies...)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "mdoc", "config.yml")
	}

	// Fall back to ~/.config/mdoc/config.yml
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".mdoc", "config.yml")
	}

	return filepath.Join(home, ".config", "mdoc", "config.yml")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		// A missing file is fine; a broken one is not
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	return cfg, nil
}
