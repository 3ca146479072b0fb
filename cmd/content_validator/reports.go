package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/content-validator/internal/db"
	"github.com/jonathan/content-validator/internal/observability"
	"github.com/jonathan/content-validator/internal/types"
	"github.com/spf13/cobra"
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Browse reports stored in PostgreSQL",
}

var reportsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent reports",
	Args:  cobra.NoArgs,
	RunE:  runReportsList,
}

var reportsShowCmd = &cobra.Command{
	Use:   "show <report-id>",
	Short: "Show one stored report",
	Args:  cobra.ExactArgs(1),
	RunE:  runReportsShow,
}

var reportsViolationsCmd = &cobra.Command{
	Use:   "violations",
	Short: "List stored violations",
	Args:  cobra.NoArgs,
	RunE:  runReportsViolations,
}

var (
	reportsLimit    int
	reportsReportID string
	reportsRule     string
	reportsSeverity string
	reportsSection  string
)

func init() {
	reportsListCmd.Flags().IntVar(&reportsLimit, "limit", db.DefaultListLimit, "Maximum number of reports")

	reportsViolationsCmd.Flags().StringVar(&reportsReportID, "report", "", "Only violations of this report id")
	reportsViolationsCmd.Flags().StringVar(&reportsRule, "rule", "", "Only violations of this rule")
	reportsViolationsCmd.Flags().StringVar(&reportsSeverity, "severity", "", "Only violations of this severity")
	reportsViolationsCmd.Flags().StringVar(&reportsSection, "section", "", "Only violations of this section key")
	reportsViolationsCmd.Flags().IntVar(&reportsLimit, "limit", db.DefaultListLimit, "Maximum number of violations")

	reportsCmd.AddCommand(reportsListCmd, reportsShowCmd, reportsViolationsCmd)
	rootCmd.AddCommand(reportsCmd)
}

// connectDB opens the configured database
func connectDB(cmd *cobra.Command) (*db.DB, error) {
	if settings.DatabaseURL == "" {
		return nil, fmt.Errorf("no database URL configured")
	}
	return db.Connect(cmd.Context(), settings.DatabaseURL)
}

func runReportsList(cmd *cobra.Command, _ []string) error {
	database, err := connectDB(cmd)
	if err != nil {
		return err
	}
	defer database.Close()

	summaries, err := database.ListReports(cmd.Context(), reportsLimit)
	if err != nil {
		return err
	}
	if jsonOutput() {
		if summaries == nil {
			summaries = []db.ReportSummary{}
		}
		return writeJSON(cmd.OutOrStdout(), summaries)
	}

	rows := make([][2]string, 0, len(summaries))
	for _, s := range summaries {
		status := "passed"
		if !s.Passed {
			status = "failed"
		}
		rows = append(rows, [2]string{s.ID.String()[:8], fmt.Sprintf("%s %s E%d W%d %s", s.CreatedAt.Format("2006-01-02"), status, s.ErrorCount, s.WarningCount, s.Title)})
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintTable("STORED REPORTS", rows)
	return nil
}

func runReportsShow(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid report id %q: %w", args[0], err)
	}
	database, err := connectDB(cmd)
	if err != nil {
		return err
	}
	defer database.Close()

	report, err := database.GetReport(cmd.Context(), id)
	if err != nil {
		return err
	}
	if report == nil {
		return fmt.Errorf("report not found: %s", id)
	}
	if jsonOutput() {
		return writeJSON(cmd.OutOrStdout(), report)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintReport(report)
	return nil
}

func runReportsViolations(cmd *cobra.Command, _ []string) error {
	filters := db.ViolationFilters{
		Rule:     reportsRule,
		Severity: types.Severity(reportsSeverity),
		Section:  reportsSection,
		Limit:    reportsLimit,
	}
	if reportsReportID != "" {
		id, err := uuid.Parse(reportsReportID)
		if err != nil {
			return fmt.Errorf("invalid report id %q: %w", reportsReportID, err)
		}
		filters.ReportID = id
	}

	database, err := connectDB(cmd)
	if err != nil {
		return err
	}
	defer database.Close()

	records, err := database.ListViolations(cmd.Context(), filters)
	if err != nil {
		return err
	}
	if jsonOutput() {
		if records == nil {
			records = []db.ViolationRecord{}
		}
		return writeJSON(cmd.OutOrStdout(), records)
	}

	violations := make([]types.Violation, 0, len(records))
	for _, r := range records {
		violations = append(violations, r.Violation)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintViolations(violations)
	return nil
}
