package main

import (
	"fmt"

	"github.com/jonathan/content-validator/internal/observability"
	"github.com/jonathan/content-validator/internal/validators"
	"github.com/spf13/cobra"
)

var detectLanguageCmd = &cobra.Command{
	Use:   "detect-language",
	Short: "Detect the language of content",
	Long:  "Scores content against the marker words and diacritics of each known language and compares the best match with the expected language.",
	RunE:  runDetectLanguage,
}

var detectLanguageInput string

func init() {
	detectLanguageCmd.Flags().StringVarP(&detectLanguageInput, "in", "i", "", "Path to content, or - for stdin (required)")

	if err := detectLanguageCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(detectLanguageCmd)
}

func runDetectLanguage(cmd *cobra.Command, _ []string) error {
	content, err := readInput(cmd, detectLanguageInput)
	if err != nil {
		return err
	}

	detection := validators.DetectLanguage(content, settings.Language)
	if jsonOutput() {
		if err := writeJSON(cmd.OutOrStdout(), detection); err != nil {
			return err
		}
	} else {
		observability.NewPrinter(cmd.OutOrStdout()).PrintLanguageDetection(&detection)
	}

	if !detection.IsValid {
		return fmt.Errorf("expected %s content, detected %s", detection.Expected, detection.Detected)
	}
	return nil
}
