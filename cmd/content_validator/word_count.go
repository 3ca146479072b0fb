package main

import (
	"fmt"

	"github.com/jonathan/content-validator/internal/observability"
	"github.com/jonathan/content-validator/internal/types"
	"github.com/jonathan/content-validator/internal/validators"
	"github.com/spf13/cobra"
)

var wordCountCmd = &cobra.Command{
	Use:   "word-count",
	Short: "Check the word count of an article against a target",
	Long:  "Counts the words of content with markup stripped and checks the total against a target and tolerance.",
	RunE:  runWordCount,
}

var (
	wordCountInput     string
	wordCountTarget    int
	wordCountTolerance float64
)

func init() {
	wordCountCmd.Flags().StringVarP(&wordCountInput, "in", "i", "", "Path to content, or - for stdin (required)")
	wordCountCmd.Flags().IntVarP(&wordCountTarget, "target", "t", 0, "Target word count (default from config; 0 only counts)")
	wordCountCmd.Flags().Float64Var(&wordCountTolerance, "tolerance", 0, "Allowed deviation as a fraction of the target (default from config)")

	if err := wordCountCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(wordCountCmd)
}

func runWordCount(cmd *cobra.Command, _ []string) error {
	content, err := readInput(cmd, wordCountInput)
	if err != nil {
		return err
	}

	target := wordCountTarget
	if target == 0 {
		target = settings.TargetWords
	}
	tolerance := wordCountTolerance
	if tolerance == 0 {
		tolerance = settings.Tolerance
	}

	result, violations := validators.ValidateArticleTotal(content, target, tolerance)
	if jsonOutput() {
		if err := writeJSON(cmd.OutOrStdout(), struct {
			types.WordCountResult
			Violations []types.Violation `json:"violations"`
		}{result, nonNil(violations)}); err != nil {
			return err
		}
	} else {
		p := observability.NewPrinter(cmd.OutOrStdout())
		p.PrintWordCount(&result)
		if len(violations) > 0 {
			p.PrintViolations(violations)
		}
	}

	if !result.IsValid {
		return fmt.Errorf("word count %d outside %d-%d", result.WordCount, result.MinAllowed, result.MaxAllowed)
	}
	return nil
}

func nonNil(violations []types.Violation) []types.Violation {
	if violations == nil {
		return []types.Violation{}
	}
	return violations
}
