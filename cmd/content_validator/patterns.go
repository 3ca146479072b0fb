package main

import (
	"strings"

	"github.com/jonathan/content-validator/internal/observability"
	"github.com/jonathan/content-validator/internal/patterns"
	"github.com/jonathan/content-validator/internal/validators"
	"github.com/spf13/cobra"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List validators, rule families and the languages they support",
	Long:  "Lists every validator and, per rule family, the languages that carry their own tables. Other languages fall back to English.",
	Args:  cobra.NoArgs,
	RunE:  runPatterns,
}

func init() {
	rootCmd.AddCommand(patternsCmd)
}

// patternsListing is the JSON shape of the patterns command
type patternsListing struct {
	Validators []string            `json:"validators"`
	Families   map[string][]string `json:"families"`
	Languages  map[string]string   `json:"languages"`
}

func runPatterns(cmd *cobra.Command, _ []string) error {
	listing := patternsListing{
		Validators: validators.Names(validators.Default()),
		Families:   make(map[string][]string),
		Languages:  make(map[string]string),
	}
	for _, lang := range patterns.Languages() {
		listing.Languages[string(lang)] = lang.Code()
	}
	for _, f := range patterns.Families() {
		listing.Families[string(f)] = languageCodes(patterns.Supported(f))
	}

	if jsonOutput() {
		return writeJSON(cmd.OutOrStdout(), listing)
	}

	p := observability.NewPrinter(cmd.OutOrStdout())
	rows := make([][2]string, 0, len(patterns.Families()))
	for _, f := range patterns.Families() {
		rows = append(rows, [2]string{string(f), strings.Join(listing.Families[string(f)], ", ")})
	}
	p.PrintTable("RULE FAMILIES", rows)

	rows = rows[:0]
	for _, name := range listing.Validators {
		rows = append(rows, [2]string{name, ""})
	}
	p.PrintTable("VALIDATORS", rows)
	return nil
}

func languageCodes(langs []patterns.Language) []string {
	out := make([]string, 0, len(langs))
	for _, l := range langs {
		out = append(out, l.Code())
	}
	return out
}
