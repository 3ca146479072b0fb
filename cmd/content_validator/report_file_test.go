package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/content-validator/internal/observability"
	"github.com/jonathan/content-validator/internal/schemas"
	"github.com/jonathan/content-validator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	_, err := observability.SetupLogger(observability.LogConfig{Level: "warn", Format: "json", Out: &buf})
	require.NoError(t, err)
	t.Cleanup(func() { _, _ = observability.SetupLogger(observability.DefaultLogConfig()) })
	return &buf
}

func TestCheckReportSchema(t *testing.T) {
	report := types.NewReport("en")
	report.Add(types.Violation{Rule: "WORD_COUNT", Severity: types.SeverityWarning, Text: "too short", Suggestion: "Add a paragraph."})
	valid, err := json.Marshal(report)
	require.NoError(t, err)

	assert.NoError(t, checkReportSchema(valid))

	err = checkReportSchema([]byte(`{"language": "en"}`))
	var validationErr *schemas.ValidationError
	assert.True(t, errors.As(err, &validationErr), "expected ValidationError, got %v", err)
}

func TestWriteReportFile(t *testing.T) {
	logs := captureLogs(t)
	outPath := filepath.Join(t.TempDir(), "nested", "report.json")

	require.NoError(t, writeReportFile(types.NewReport("nl"), outPath))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var got types.Report
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "nl", got.Language)
	assert.Empty(t, logs.String())
}

func TestWriteReportFile_SchemaMismatchOnlyWarns(t *testing.T) {
	logs := captureLogs(t)
	outPath := filepath.Join(t.TempDir(), "report.json")

	// an empty language breaks the schema's minLength
	require.NoError(t, writeReportFile(types.NewReport(""), outPath))

	assert.FileExists(t, outPath)
	assert.Contains(t, logs.String(), "does not validate against schema")
}
