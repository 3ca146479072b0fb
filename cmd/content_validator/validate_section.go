package main

import (
	"fmt"

	"github.com/jonathan/content-validator/internal/types"
	"github.com/spf13/cobra"
)

var validateSectionCmd = &cobra.Command{
	Use:   "validate-section",
	Short: "Validate a single section of content",
	Long:  "Runs the validators over one section of content (a markdown file, or - for stdin) with the given section context.",
	RunE:  runValidateSection,
}

var (
	sectionInput           string
	sectionOutput          string
	sectionHeading         string
	sectionLevel           int
	sectionZone            string
	sectionKey             string
	sectionPreviousHeading string
	sectionSeedKeyword     string
	sectionIndex           int
	sectionTotal           int
)

func init() {
	validateSectionCmd.Flags().StringVarP(&sectionInput, "in", "i", "", "Path to section content, or - for stdin (required)")
	validateSectionCmd.Flags().StringVarP(&sectionOutput, "out", "o", "", "Path to write the report JSON (optional)")
	validateSectionCmd.Flags().StringVar(&sectionHeading, "heading", "", "Section heading")
	validateSectionCmd.Flags().IntVar(&sectionLevel, "level", 2, "Heading level (1 marks the introduction)")
	validateSectionCmd.Flags().StringVar(&sectionZone, "zone", "", "Content zone: MAIN, CORE or SUPPLEMENTARY")
	validateSectionCmd.Flags().StringVar(&sectionKey, "section-key", "", "Section key (defaults to a slug of the heading)")
	validateSectionCmd.Flags().StringVar(&sectionPreviousHeading, "previous-heading", "", "Heading of the section before this one")
	validateSectionCmd.Flags().StringVar(&sectionSeedKeyword, "seed-keyword", "", "Central entity of the article")
	validateSectionCmd.Flags().IntVar(&sectionIndex, "index", 0, "Zero-based position of the section in the article")
	validateSectionCmd.Flags().IntVar(&sectionTotal, "total", 0, "Number of sections in the article")

	if err := validateSectionCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateSectionCmd)
}

func runValidateSection(cmd *cobra.Command, _ []string) error {
	content, err := readInput(cmd, sectionInput)
	if err != nil {
		return err
	}

	runner, err := newRunner()
	if err != nil {
		return err
	}
	report, err := runner.ValidateSection(cmd.Context(), content, sectionContext())
	if err != nil {
		return fmt.Errorf("failed to validate section: %w", err)
	}

	if err := emitReport(cmd, report, sectionOutput); err != nil {
		return err
	}
	return gate(report)
}

// sectionContext builds the validation context from the section flags
func sectionContext() *types.ValidationContext {
	vctx := &types.ValidationContext{
		Language:      settings.Language,
		SectionIndex:  sectionIndex,
		TotalSections: sectionTotal,
		Section: &types.SectionInfo{
			Heading:     sectionHeading,
			Level:       sectionLevel,
			ContentZone: sectionZone,
			SectionKey:  sectionKey,
		},
	}
	if sectionPreviousHeading != "" {
		vctx.PreviousSection = &types.PreviousSection{Heading: sectionPreviousHeading}
	}
	if seed := firstNonEmpty(sectionSeedKeyword, settings.SeedKeyword); seed != "" {
		vctx.BusinessInfo = &types.BusinessInfo{SeedKeyword: seed}
	}
	return vctx
}
