// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/content-validator/internal/patterns"
)

// Environment variables that override file values
const (
	EnvLanguage           = "CONTENT_VALIDATOR_LANGUAGE"
	EnvDatabaseURL        = "CONTENT_VALIDATOR_DATABASE_URL"
	EnvDatabaseURLDefault = "DATABASE_URL"
)

// Defaults applied by MergeWithDefaults
const (
	DefaultFailOn = "error"
	DefaultFormat = "text"
)

// Config represents the CLI configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Content
	Language    string  `json:"language,omitempty" yaml:"language,omitempty"`                             // ISO code or language name
	TargetWords int     `json:"target_words,omitempty" yaml:"target_words,omitempty" validate:"gte=0"`    // Article word target, 0 skips the total check
	Tolerance   float64 `json:"tolerance,omitempty" yaml:"tolerance,omitempty" validate:"gte=0,lte=1"`     // Allowed deviation from target_words
	SeedKeyword string  `json:"seed_keyword,omitempty" yaml:"seed_keyword,omitempty"`                     // Central entity when the input has none

	// Validator selection
	Enabled  []string `json:"enabled,omitempty" yaml:"enabled,omitempty"`   // Only run these validators
	Disabled []string `json:"disabled,omitempty" yaml:"disabled,omitempty"` // Never run these validators

	// Behavior
	FailOn      string `json:"fail_on,omitempty" yaml:"fail_on,omitempty" validate:"omitempty,oneof=error warning info never"` // Lowest severity that fails the run
	Format      string `json:"format,omitempty" yaml:"format,omitempty" validate:"omitempty,oneof=text json"`                  // Output format
	Concurrency int    `json:"concurrency,omitempty" yaml:"concurrency,omitempty" validate:"gte=0,lte=64"`                     // Parallel validators
	Verbose     bool   `json:"verbose,omitempty" yaml:"verbose,omitempty"`                                                     // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty" yaml:"database_url,omitempty"`                                           // PostgreSQL connection URL
}

// Error describes one invalid configuration field
type Error struct {
	Field   string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("config error: %s", e.Message)
	}
	return fmt.Sprintf("config error: '%s' %s", e.Field, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// ApplyEnv overrides fields from the environment. An empty variable changes nothing.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvLanguage)); v != "" {
		c.Language = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvDatabaseURL)); v != "" {
		c.DatabaseURL = v
	} else if c.DatabaseURL == "" {
		c.DatabaseURL = strings.TrimSpace(os.Getenv(EnvDatabaseURLDefault))
	}
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return &Error{Field: jsonName(fe.Field()), Message: fmt.Sprintf("failed '%s' check (got %v)", fe.Tag(), fe.Value()), Cause: err}
		}
		return &Error{Message: "invalid configuration", Cause: err}
	}

	if c.Language != "" {
		if _, ok := patterns.Lookup(c.Language); !ok {
			return &Error{Field: "language", Message: fmt.Sprintf("unsupported language %q", c.Language)}
		}
	}

	enabled := make(map[string]bool, len(c.Enabled))
	for _, name := range c.Enabled {
		enabled[strings.ToLower(strings.TrimSpace(name))] = true
	}
	for _, name := range c.Disabled {
		if enabled[strings.ToLower(strings.TrimSpace(name))] {
			return &Error{Field: "disabled", Message: fmt.Sprintf("validator %q is both enabled and disabled", name)}
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Language == "" {
		result.Language = defaults.Language
	}
	if result.SeedKeyword == "" {
		result.SeedKeyword = defaults.SeedKeyword
	}
	if result.FailOn == "" {
		result.FailOn = defaults.FailOn
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Slice fields
	if len(result.Enabled) == 0 {
		result.Enabled = defaults.Enabled
	}
	if len(result.Disabled) == 0 {
		result.Disabled = defaults.Disabled
	}

	// Numeric fields: use default if zero
	if result.TargetWords == 0 {
		result.TargetWords = defaults.TargetWords
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}
	if result.Tolerance == 0 {
		if defaults.Tolerance > 0 {
			result.Tolerance = defaults.Tolerance
		} else {
			result.Tolerance = 0.10 // Default to 10% either side of the target
		}
	}

	// Final fallbacks
	if result.FailOn == "" {
		result.FailOn = DefaultFailOn
	}
	if result.Format == "" {
		result.Format = DefaultFormat
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// jsonName maps a struct field name to its snake_case config key
func jsonName(field string) string {
	var sb strings.Builder
	for i, r := range field {
		if i > 0 && r >= 'A' && r <= 'Z' {
			sb.WriteByte('_')
		}
		sb.WriteRune(r)
	}
	return strings.ToLower(sb.String())
}
