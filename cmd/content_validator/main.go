// Package main provides the entry point for the content validator CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "content_validator",
	Short: "Rule-based quality checks for generated article content",
	Long: "Content Validator inspects generated article text in English, Dutch, German, French and Spanish " +
		"and reports prohibited language, uncertain modality, missing definitions, weak entity-attribute-value " +
		"density, word count problems, output language mismatches and missing internal links.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&globalConfigPath, "config", "c", "", "Path to a JSON or YAML config file")
	flags.StringVarP(&globalLanguage, "language", "l", "", "Content language (ISO code or name)")
	flags.StringVar(&globalFormat, "format", "", "Output format: text or json (default text)")
	flags.StringVar(&globalFailOn, "fail-on", "", "Lowest severity that fails the run: error, warning, info or never (default error)")
	flags.StringVar(&globalDatabaseURL, "database-url", "", "PostgreSQL URL for storing reports")
	flags.StringSliceVar(&globalEnable, "enable", nil, "Only run these validators")
	flags.StringSliceVar(&globalDisable, "disable", nil, "Never run these validators")
	flags.IntVar(&globalConcurrency, "concurrency", 0, "Validators run in parallel (default 4)")
	flags.BoolVarP(&globalVerbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
