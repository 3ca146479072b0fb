// Package db provides PostgreSQL storage for validation reports.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaSQL creates the report tables when they do not exist yet
const schemaSQL = `
CREATE TABLE IF NOT EXISTS validation_reports (
	id            UUID PRIMARY KEY,
	title         TEXT NOT NULL DEFAULT '',
	language      TEXT NOT NULL,
	passed        BOOLEAN NOT NULL,
	error_count   INTEGER NOT NULL DEFAULT 0,
	warning_count INTEGER NOT NULL DEFAULT 0,
	info_count    INTEGER NOT NULL DEFAULT 0,
	report        JSONB NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS report_violations (
	id         BIGSERIAL PRIMARY KEY,
	report_id  UUID NOT NULL REFERENCES validation_reports(id) ON DELETE CASCADE,
	ordinal    INTEGER NOT NULL,
	rule       TEXT NOT NULL,
	severity   TEXT NOT NULL,
	section    TEXT NOT NULL DEFAULT '',
	text       TEXT NOT NULL DEFAULT '',
	position   INTEGER NOT NULL DEFAULT 0,
	suggestion TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_report_violations_report ON report_violations(report_id, ordinal);
CREATE INDEX IF NOT EXISTS idx_report_violations_rule ON report_violations(rule);
`

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// EnsureSchema creates the report tables if needed
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
