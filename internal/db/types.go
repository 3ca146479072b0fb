package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/content-validator/internal/types"
)

// DefaultListLimit caps list queries that do not set a limit
const DefaultListLimit = 50

// ReportSummary is a lightweight view of a stored report for listing
type ReportSummary struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title,omitempty"`
	Language     string    `json:"language"`
	Passed       bool      `json:"passed"`
	ErrorCount   int       `json:"error_count"`
	WarningCount int       `json:"warning_count"`
	InfoCount    int       `json:"info_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// ViolationRecord is one stored violation together with its report
type ViolationRecord struct {
	ReportID uuid.UUID `json:"report_id"`
	Ordinal  int       `json:"ordinal"`
	types.Violation
}

// ViolationFilters holds optional filters for listing violations
type ViolationFilters struct {
	ReportID uuid.UUID
	Rule     string
	Severity types.Severity
	Section  string
	Limit    int
}

// summaryOf builds the listing row of a report
func summaryOf(report *types.Report) ReportSummary {
	return ReportSummary{
		ID:           report.ID,
		Title:        report.Title,
		Language:     report.Language,
		Passed:       report.Passed,
		ErrorCount:   report.Counts[types.SeverityError],
		WarningCount: report.Counts[types.SeverityWarning],
		InfoCount:    report.Counts[types.SeverityInfo],
		CreatedAt:    report.CreatedAt,
	}
}
