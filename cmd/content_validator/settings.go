package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jonathan/content-validator/internal/audit"
	"github.com/jonathan/content-validator/internal/config"
	"github.com/jonathan/content-validator/internal/observability"
	"github.com/jonathan/content-validator/internal/types"
	"github.com/jonathan/content-validator/internal/validators"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	globalConfigPath  string
	globalLanguage    string
	globalFormat      string
	globalFailOn      string
	globalDatabaseURL string
	globalEnable      []string
	globalDisable     []string
	globalConcurrency int
	globalVerbose     bool
)

// settings is the effective configuration after file, environment and flags are merged
var settings config.Config

// setup merges configuration and configures logging before any command runs
func setup(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(globalConfigPath, config.Config{
		Language:    globalLanguage,
		Format:      globalFormat,
		FailOn:      globalFailOn,
		DatabaseURL: globalDatabaseURL,
		Enabled:     globalEnable,
		Disabled:    globalDisable,
		Concurrency: globalConcurrency,
		Verbose:     globalVerbose,
	})
	if err != nil {
		return err
	}
	settings = cfg

	logCfg := observability.DefaultLogConfig()
	if settings.Verbose {
		logCfg.Level = "debug"
	}
	if _, err := observability.SetupLogger(logCfg); err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	return nil
}

// resolveConfig layers flags over environment over the config file, then fills defaults.
// Flag values are the ones that are set in flags; anything empty falls through.
func resolveConfig(path string, flags config.Config) (config.Config, error) {
	fileCfg := &config.Config{}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return config.Config{}, err
		}
		fileCfg = loaded
	}
	fileCfg.ApplyEnv()

	merged := flags.MergeWithDefaults(*fileCfg)
	merged.Verbose = flags.Verbose || fileCfg.Verbose
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// newRunner builds an audit runner for the effective configuration
func newRunner() (*audit.Runner, error) {
	selected, err := validators.Select(validators.Default(), settings.Enabled, settings.Disabled)
	if err != nil {
		return nil, err
	}
	logger := observability.GetLogger("audit")
	return audit.NewRunner(audit.Options{
		Validators:  selected,
		Tolerance:   settings.Tolerance,
		Concurrency: settings.Concurrency,
		Logger:      &logger,
	}), nil
}

// logger returns the command logger
func logger() zerolog.Logger {
	return observability.GetLogger("cli")
}

// readInput reads a file, or stdin when path is "-"
func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", fmt.Errorf("input file not found: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}

// writeJSON prints v as indented JSON
func writeJSON(out io.Writer, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}
	_, err = fmt.Fprintln(out, string(jsonBytes))
	return err
}

// jsonOutput reports whether the effective format is JSON
func jsonOutput() bool {
	return strings.EqualFold(settings.Format, "json")
}

// gate returns an error when the report holds a violation at or above the fail-on severity
func gate(report *types.Report) error {
	threshold := types.Severity(strings.ToLower(settings.FailOn))
	if !report.Blocking(threshold) {
		return nil
	}
	count := 0
	for _, v := range report.Violations {
		if v.Severity.AtLeast(threshold) {
			count++
		}
	}
	return fmt.Errorf("validation found %d violation(s) at or above %s", count, threshold)
}
