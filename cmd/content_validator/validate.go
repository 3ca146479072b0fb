package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/content-validator/internal/audit"
	"github.com/jonathan/content-validator/internal/config"
	"github.com/jonathan/content-validator/internal/db"
	"github.com/jonathan/content-validator/internal/observability"
	"github.com/jonathan/content-validator/internal/schemas"
	"github.com/jonathan/content-validator/internal/types"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a full article",
	Long: "Validates every section of an article (JSON or YAML) with its derived context, then runs the " +
		"article-wide checks once: total word count, output language, internal links and query ordering.",
	RunE: runValidate,
}

var (
	validateInput       string
	validateOutput      string
	validateTargetWords int
	validateSeedKeyword string
	validateSave        bool
)

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to article JSON or YAML file (required)")
	validateCmd.Flags().StringVarP(&validateOutput, "out", "o", "", "Path to write the report JSON (optional)")
	validateCmd.Flags().IntVar(&validateTargetWords, "target-words", 0, "Article word target, overrides the article and config")
	validateCmd.Flags().StringVar(&validateSeedKeyword, "seed-keyword", "", "Central entity when the article has none")
	validateCmd.Flags().BoolVar(&validateSave, "save", false, "Store the report in PostgreSQL (requires a database URL)")

	if err := validateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	article, err := loadArticle(validateInput)
	if err != nil {
		return err
	}
	applyArticleDefaults(article)

	runner, err := newRunner()
	if err != nil {
		return err
	}
	report, err := runner.ValidateArticle(cmd.Context(), article)
	if err != nil {
		var inputErr *audit.InputError
		if errors.As(err, &inputErr) {
			return fmt.Errorf("invalid article: %w", err)
		}
		return fmt.Errorf("failed to validate article: %w", err)
	}
	report.Title = article.Title

	if err := emitReport(cmd, report, validateOutput); err != nil {
		return err
	}
	if validateSave {
		if err := saveReport(cmd, report); err != nil {
			return err
		}
	}
	return gate(report)
}

// loadArticle decodes an article file by extension and checks it against the article schema
func loadArticle(path string) (*types.Article, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("article file not found: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read article file: %w", err)
	}

	var article types.Article
	var raw any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &article); err != nil {
			return nil, fmt.Errorf("failed to parse article YAML: %w", err)
		}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse article YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &article); err != nil {
			return nil, fmt.Errorf("failed to unmarshal article JSON: %w", err)
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to unmarshal article JSON: %w", err)
		}
	}

	if schemaPath := schemas.ResolveSchemaPath(schemas.ArticleSchema); schemaPath != "" {
		if err := schemas.ValidateDocument(schemaPath, raw); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				return nil, fmt.Errorf("article does not match schema: %w", err)
			}
			log := logger()
			log.Warn().Err(err).Msg("Could not validate article against schema")
		}
	}
	return &article, nil
}

// applyArticleDefaults fills missing article settings from flags and configuration
func applyArticleDefaults(article *types.Article) {
	if article.Language == "" {
		article.Language = settings.Language
	}
	if validateTargetWords > 0 {
		article.TargetWords = validateTargetWords
	} else if article.TargetWords == 0 {
		article.TargetWords = settings.TargetWords
	}
	seed := firstNonEmpty(validateSeedKeyword, settings.SeedKeyword)
	if seed == "" {
		return
	}
	if article.BusinessInfo == nil {
		article.BusinessInfo = &types.BusinessInfo{}
	}
	if article.BusinessInfo.SeedKeyword == "" {
		article.BusinessInfo.SeedKeyword = seed
	}
}

// emitReport prints the report in the configured format and optionally writes it to a file.
// Written reports are checked against the report schema; a mismatch is only a warning.
func emitReport(cmd *cobra.Command, report *types.Report, outPath string) error {
	if outPath != "" {
		if err := writeReportFile(report, outPath); err != nil {
			return err
		}
	}

	if jsonOutput() {
		return writeJSON(cmd.OutOrStdout(), report)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintReport(report)
	if outPath != "" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", outPath)
	}
	return nil
}

func writeReportFile(report *types.Report, outPath string) error {
	// Ensure output directory exists
	outputDir := filepath.Dir(outPath)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	jsonBytes, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report to JSON: %w", err)
	}

	// Validate output against schema before writing (non-fatal)
	if err := checkReportSchema(jsonBytes); err != nil {
		log := logger()
		var validationErr *schemas.ValidationError
		var schemaLoadErr *schemas.SchemaLoadError
		if errors.As(err, &validationErr) {
			log.Warn().Err(err).Msg("Generated report does not validate against schema")
		} else if errors.As(err, &schemaLoadErr) {
			log.Warn().Err(err).Msg("Could not validate report against schema (schema loading failed)")
		} else {
			log.Warn().Err(err).Msg("Could not validate report against schema")
		}
	}

	if err := os.WriteFile(outPath, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write report to output file: %w", err)
	}
	return nil
}

// checkReportSchema validates marshalled report JSON against the report schema.
// A missing schema file is not an error.
func checkReportSchema(jsonBytes []byte) error {
	schemaPath := schemas.ResolveSchemaPath(schemas.ReportSchema)
	if schemaPath == "" {
		return nil
	}
	schemaBytes, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to read report schema: %w", err)
	}
	return schemas.ValidateJSONString(string(schemaBytes), string(jsonBytes))
}

// saveReport stores the report in PostgreSQL
func saveReport(cmd *cobra.Command, report *types.Report) error {
	if settings.DatabaseURL == "" {
		return fmt.Errorf("--save requires a database URL (--database-url, %s or %s)", config.EnvDatabaseURL, config.EnvDatabaseURLDefault)
	}
	database, err := db.Connect(cmd.Context(), settings.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.EnsureSchema(cmd.Context()); err != nil {
		return err
	}
	if err := database.SaveReport(cmd.Context(), report); err != nil {
		return err
	}
	log := logger()
	log.Info().Str("report_id", report.ID.String()).Msg("Report saved")
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
