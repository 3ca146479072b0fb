package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverity_Rank(t *testing.T) {
	testCases := []struct {
		name      string
		severity  Severity
		threshold Severity
		atLeast   bool
	}{
		{name: "error meets warning", severity: SeverityError, threshold: SeverityWarning, atLeast: true},
		{name: "warning meets warning", severity: SeverityWarning, threshold: SeverityWarning, atLeast: true},
		{name: "info below warning", severity: SeverityInfo, threshold: SeverityWarning, atLeast: false},
		{name: "unknown never counts", severity: Severity("fatal"), threshold: SeverityInfo, atLeast: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.atLeast, tc.severity.AtLeast(tc.threshold))
		})
	}
	assert.False(t, Severity("").Valid())
	assert.True(t, SeverityInfo.Valid())
}

func TestViolation_JSONShape(t *testing.T) {
	v := Violation{Rule: "OPINIONS", Severity: SeverityError, Text: "I think", Position: 4, Suggestion: "Replace the opinion."}

	jsonBytes, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Contains(t, string(jsonBytes), `"rule":"OPINIONS"`)
	assert.Contains(t, string(jsonBytes), `"severity":"error"`)
	assert.Contains(t, string(jsonBytes), `"position":4`)
	assert.NotContains(t, string(jsonBytes), `"section"`)
}

func TestViolations_Helpers(t *testing.T) {
	v := &Violations{Violations: []Violation{
		{Rule: "STOP_WORDS", Severity: SeverityWarning},
		{Rule: "STOP_WORDS", Severity: SeverityWarning},
		{Rule: "OPINIONS", Severity: SeverityError},
	}}

	assert.True(t, v.HasBlocking())
	assert.Equal(t, map[Severity]int{SeverityError: 1, SeverityWarning: 2, SeverityInfo: 0}, v.CountBySeverity())
	assert.Len(t, v.ByRule("STOP_WORDS"), 2)

	var nilViolations *Violations
	assert.False(t, nilViolations.HasBlocking())
	assert.Nil(t, nilViolations.ByRule("OPINIONS"))
}

func TestReport_AddAndBlocking(t *testing.T) {
	report := NewReport("english")
	assert.True(t, report.Passed)
	assert.False(t, report.Blocking(SeverityInfo))

	report.Add(Violation{Rule: "STOP_WORDS", Severity: SeverityWarning})
	assert.True(t, report.Passed)
	assert.True(t, report.Blocking(SeverityWarning))
	assert.False(t, report.Blocking(SeverityError))

	report.Add(Violation{Rule: "OPINIONS", Severity: SeverityError})
	assert.False(t, report.Passed)
	assert.Equal(t, 1, report.Counts[SeverityError])
	assert.Equal(t, 1, report.Counts[SeverityWarning])
	assert.True(t, report.Blocking(SeverityError))
	assert.False(t, report.Blocking(Severity("never")))
}
