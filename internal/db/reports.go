package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/content-validator/internal/types"
)

// -----------------------------------------------------------------------------
// Validation Reports
// -----------------------------------------------------------------------------

// SaveReport stores a report and its violations in one transaction.
// Saving the same report id again replaces the earlier copy.
func (db *DB) SaveReport(ctx context.Context, report *types.Report) error {
	if report == nil {
		return errors.New("report is nil")
	}
	if report.ID == uuid.Nil {
		return errors.New("report has no id")
	}
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	s := summaryOf(report)

	err = pgx.BeginFunc(ctx, db.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO validation_reports (id, title, language, passed, error_count, warning_count, info_count, report, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			 ON CONFLICT (id) DO UPDATE SET title = $2, language = $3, passed = $4,
			     error_count = $5, warning_count = $6, info_count = $7, report = $8`,
			s.ID, s.Title, s.Language, s.Passed, s.ErrorCount, s.WarningCount, s.InfoCount, reportJSON, s.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM report_violations WHERE report_id = $1`, report.ID); err != nil {
			return fmt.Errorf("failed to clear violations: %w", err)
		}
		if len(report.Violations) == 0 {
			return nil
		}

		batch := &pgx.Batch{}
		for i, v := range report.Violations {
			batch.Queue(
				`INSERT INTO report_violations (report_id, ordinal, rule, severity, section, text, position, suggestion)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				report.ID, i, v.Rule, string(v.Severity), v.Section, v.Text, v.Position, v.Suggestion,
			)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to save violations: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save report %s: %w", report.ID, err)
	}
	return nil
}

// GetReport retrieves a report by ID. It returns nil when no report exists.
func (db *DB) GetReport(ctx context.Context, id uuid.UUID) (*types.Report, error) {
	var reportJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT report FROM validation_reports WHERE id = $1`,
		id,
	).Scan(&reportJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	var report types.Report
	if err := json.Unmarshal(reportJSON, &report); err != nil {
		return nil, fmt.Errorf("failed to decode report %s: %w", id, err)
	}
	return &report, nil
}

// ListReports retrieves the most recent reports
func (db *DB) ListReports(ctx context.Context, limit int) ([]ReportSummary, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, language, passed, error_count, warning_count, info_count, created_at
		 FROM validation_reports ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var reports []ReportSummary
	for rows.Next() {
		var r ReportSummary
		if err := rows.Scan(&r.ID, &r.Title, &r.Language, &r.Passed, &r.ErrorCount, &r.WarningCount, &r.InfoCount, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}

// ListViolations retrieves stored violations with optional filters,
// in report order when filtered by report
func (db *DB) ListViolations(ctx context.Context, filters ViolationFilters) ([]ViolationRecord, error) {
	query, args := violationQuery(filters)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list violations: %w", err)
	}
	defer rows.Close()

	var out []ViolationRecord
	for rows.Next() {
		var r ViolationRecord
		var severity string
		if err := rows.Scan(&r.ReportID, &r.Ordinal, &r.Rule, &severity, &r.Section, &r.Text, &r.Position, &r.Suggestion); err != nil {
			return nil, fmt.Errorf("failed to scan violation: %w", err)
		}
		r.Severity = types.Severity(severity)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list violations: %w", err)
	}
	return out, nil
}

// DeleteReport deletes a report and its violations (via cascade)
func (db *DB) DeleteReport(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM validation_reports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("report not found: %s", id)
	}
	return nil
}

// violationQuery builds the filtered violation listing query
func violationQuery(filters ViolationFilters) (string, []any) {
	if filters.Limit <= 0 {
		filters.Limit = DefaultListLimit
	}

	query := `SELECT report_id, ordinal, rule, severity, section, text, position, suggestion
		FROM report_violations WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.ReportID != uuid.Nil {
		query += fmt.Sprintf(" AND report_id = $%d", argNum)
		args = append(args, filters.ReportID)
		argNum++
	}
	if filters.Rule != "" {
		query += fmt.Sprintf(" AND rule = $%d", argNum)
		args = append(args, filters.Rule)
		argNum++
	}
	if filters.Severity != "" {
		query += fmt.Sprintf(" AND severity = $%d", argNum)
		args = append(args, string(filters.Severity))
		argNum++
	}
	if filters.Section != "" {
		query += fmt.Sprintf(" AND section = $%d", argNum)
		args = append(args, filters.Section)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY report_id, ordinal LIMIT $%d", argNum)
	args = append(args, filters.Limit)
	return query, args
}
