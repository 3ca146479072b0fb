// Package observability provides formatted output and logging setup for the CLI.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/content-validator/internal/textutil"
	"github.com/jonathan/content-validator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for text mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	for _, line := range lines {
		// Truncate long lines
		if utf8.RuneCountInString(line) > boxWidth-4 {
			line = textutil.Truncate(line, boxWidth-7)
		}
		fmt.Fprintf(p.out, "│ %s │\n", pad(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// pad right-pads s with spaces to n runes
func pad(s string, n int) string {
	if c := utf8.RuneCountInString(s); c < n {
		return s + strings.Repeat(" ", n-c)
	}
	return s
}

// PrintReport outputs a summary of the report followed by its violations
func (p *Printer) PrintReport(report *types.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	status := "PASSED"
	if !report.Passed {
		status = "FAILED"
	}
	if report.Title != "" {
		sb.WriteString(fmt.Sprintf("Title:     %s\n", report.Title))
	}
	sb.WriteString(fmt.Sprintf("Language:  %s\n", report.Language))
	sb.WriteString(fmt.Sprintf("Status:    %s\n", status))
	sb.WriteString(fmt.Sprintf("Errors:    %d\n", report.Counts[types.SeverityError]))
	sb.WriteString(fmt.Sprintf("Warnings:  %d\n", report.Counts[types.SeverityWarning]))
	sb.WriteString(fmt.Sprintf("Info:      %d\n", report.Counts[types.SeverityInfo]))

	if len(report.EAVDensity) > 0 {
		sb.WriteString("\nEAV density:\n")
		keys := make([]string, 0, len(report.EAVDensity))
		for k := range report.EAVDensity {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("  • %s: %d%%\n", k, report.EAVDensity[k]))
		}
	}

	if len(report.Skipped) > 0 {
		sb.WriteString("\nSkipped validators:\n")
		for _, s := range report.Skipped {
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", s.Validator, s.Reason))
		}
	}

	p.printBox(fmt.Sprintf("VALIDATION REPORT %s", report.ID.String()[:8]), sb.String())
	p.PrintWordCount(report.WordCount)
	p.PrintLanguageDetection(report.Detection)
	p.PrintLinkInsertion(report.Links)
	p.PrintViolations(report.Violations)
}

// PrintViolations outputs the violations grouped by severity, most serious first.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintViolations(violations []types.Violation) {
	if len(violations) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %s │\n", pad("✅ NO VIOLATIONS FOUND", boxWidth-4))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	sorted := make([]types.Violation, len(violations))
	copy(sorted, violations)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Severity.Rank() > sorted[j].Severity.Rank()
	})

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d violations:\n\n", len(sorted)))
	for i, v := range sorted {
		where := v.Rule
		if v.Section != "" {
			where = fmt.Sprintf("%s [%s]", v.Rule, v.Section)
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", severityIcon(v.Severity), where))
		if v.Text != "" {
			sb.WriteString(fmt.Sprintf("  %q\n", v.Text))
		}
		sb.WriteString(fmt.Sprintf("  → %s\n", v.Suggestion))
		if i < len(sorted)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CONTENT VIOLATIONS", sb.String())
}

// PrintWordCount outputs the article word count against its target
func (p *Printer) PrintWordCount(result *types.WordCountResult) {
	if result == nil {
		return
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Words:     %d\n", result.WordCount))
	sb.WriteString(fmt.Sprintf("Target:    %d (allowed %d-%d)\n", result.Target, result.MinAllowed, result.MaxAllowed))
	sb.WriteString(fmt.Sprintf("Within:    %s\n", yesNo(result.IsValid)))
	p.printBox("WORD COUNT", sb.String())
}

// PrintLanguageDetection outputs detected versus expected language and the score per language
func (p *Printer) PrintLanguageDetection(result *types.LanguageDetection) {
	if result == nil {
		return
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Expected:   %s\n", result.Expected))
	sb.WriteString(fmt.Sprintf("Detected:   %s\n", result.Detected))
	sb.WriteString(fmt.Sprintf("Confidence: %.2f\n", result.Confidence))
	if result.Abstained {
		sb.WriteString("Too little text to judge; treated as valid\n")
	}

	if len(result.Scores) > 0 {
		langs := make([]string, 0, len(result.Scores))
		for l := range result.Scores {
			langs = append(langs, l)
		}
		sort.Slice(langs, func(i, j int) bool {
			return result.Scores[langs[i]] > result.Scores[langs[j]]
		})
		sb.WriteString("\nScores:\n")
		count := min(len(langs), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %-12s %.3f\n", langs[i], result.Scores[langs[i]]))
		}
	}
	p.printBox("LANGUAGE DETECTION", sb.String())
}

// PrintLinkInsertion outputs which expected internal links were found
func (p *Printer) PrintLinkInsertion(result *types.LinkInsertionResult) {
	if result == nil {
		return
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Inserted:  %d of %d (%d%%)\n", result.Found, result.Expected, result.InsertionRate))
	sb.WriteString(fmt.Sprintf("Passed:    %s\n", yesNo(result.Passed)))
	if len(result.MissingLinks) > 0 {
		sb.WriteString("\nMissing:\n")
		count := min(len(result.MissingLinks), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.MissingLinks[i]))
		}
		if len(result.MissingLinks) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.MissingLinks)-maxItemsToShow))
		}
	}
	p.printBox("INTERNAL LINKS", sb.String())
}

// PrintTable outputs rows of label and value pairs in one box
func (p *Printer) PrintTable(title string, rows [][2]string) {
	width := 0
	for _, r := range rows {
		width = max(width, utf8.RuneCountInString(r[0]))
	}
	var sb strings.Builder
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%s  %s\n", pad(r[0], width), r[1]))
	}
	p.printBox(title, sb.String())
}

func severityIcon(s types.Severity) string {
	switch s {
	case types.SeverityError:
		return "✖"
	case types.SeverityWarning:
		return "⚠"
	default:
		return "ℹ"
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
