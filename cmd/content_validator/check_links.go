package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/content-validator/internal/observability"
	"github.com/jonathan/content-validator/internal/types"
	"github.com/jonathan/content-validator/internal/validators"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var checkLinksCmd = &cobra.Command{
	Use:   "check-links",
	Short: "Check that the internal links a brief asks for were inserted",
	Long:  "Compares the anchor texts of markdown and HTML links in content with the contextual bridge and suggested links of a brief.",
	RunE:  runCheckLinks,
}

var (
	checkLinksInput string
	checkLinksBrief string
)

func init() {
	checkLinksCmd.Flags().StringVarP(&checkLinksInput, "in", "i", "", "Path to content, or - for stdin (required)")
	checkLinksCmd.Flags().StringVarP(&checkLinksBrief, "brief", "b", "", "Path to brief JSON or YAML file (required)")

	if err := checkLinksCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	if err := checkLinksCmd.MarkFlagRequired("brief"); err != nil {
		panic(fmt.Sprintf("failed to mark brief flag as required: %v", err))
	}

	rootCmd.AddCommand(checkLinksCmd)
}

func runCheckLinks(cmd *cobra.Command, _ []string) error {
	content, err := readInput(cmd, checkLinksInput)
	if err != nil {
		return err
	}
	brief, err := loadBrief(checkLinksBrief)
	if err != nil {
		return err
	}

	result := validators.ValidateLinkInsertion(brief, content)
	if jsonOutput() {
		if err := writeJSON(cmd.OutOrStdout(), result); err != nil {
			return err
		}
	} else {
		observability.NewPrinter(cmd.OutOrStdout()).PrintLinkInsertion(&result)
	}

	if !result.Passed {
		return fmt.Errorf("only %d of %d expected links inserted", result.Found, result.Expected)
	}
	return nil
}

// loadBrief decodes a brief file by extension
func loadBrief(path string) (*types.Brief, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("brief file not found: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read brief file: %w", err)
	}

	var brief types.Brief
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &brief); err != nil {
			return nil, fmt.Errorf("failed to parse brief YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &brief); err != nil {
			return nil, fmt.Errorf("failed to unmarshal brief JSON: %w", err)
		}
	}
	return &brief, nil
}
