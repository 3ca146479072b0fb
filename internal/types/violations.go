// Package types provides type definitions for structured data used throughout the content-validator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Severity classifies how serious a content defect is
type Severity string

const (
	// SeverityError blocks publishing
	SeverityError Severity = "error"
	// SeverityWarning should be fixed before publishing
	SeverityWarning Severity = "warning"
	// SeverityInfo is advisory only
	SeverityInfo Severity = "info"
)

// Rank orders severities so that higher is more serious. Unknown values rank 0.
func (s Severity) Rank() int {
	switch s {
	case SeverityError:
		return 3
	case SeverityWarning:
		return 2
	case SeverityInfo:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether s is as serious as threshold or more.
func (s Severity) AtLeast(threshold Severity) bool {
	return s.Rank() > 0 && s.Rank() >= threshold.Rank()
}

// Valid reports whether s is one of the known severities
func (s Severity) Valid() bool {
	return s.Rank() > 0
}

// Violation represents a single content defect reported by a validator
type Violation struct {
	Rule       string   `json:"rule"`
	Severity   Severity `json:"severity"`
	Text       string   `json:"text"`
	Position   int      `json:"position"`
	Suggestion string   `json:"suggestion"`

	// Section is filled in by the audit runner with the section key the violation came from
	Section string `json:"section,omitempty"`
}

// Violations represents a collection of content defects
type Violations struct {
	Violations []Violation `json:"violations"`
}

// HasBlocking reports whether any violation has error severity
func (v *Violations) HasBlocking() bool {
	if v == nil {
		return false
	}
	for _, violation := range v.Violations {
		if violation.Severity == SeverityError {
			return true
		}
	}
	return false
}

// CountBySeverity returns how many violations exist per severity
func (v *Violations) CountBySeverity() map[Severity]int {
	counts := map[Severity]int{
		SeverityError:   0,
		SeverityWarning: 0,
		SeverityInfo:    0,
	}
	if v == nil {
		return counts
	}
	for _, violation := range v.Violations {
		counts[violation.Severity]++
	}
	return counts
}

// ByRule returns the violations whose rule matches
func (v *Violations) ByRule(rule string) []Violation {
	if v == nil {
		return nil
	}
	var out []Violation
	for _, violation := range v.Violations {
		if violation.Rule == rule {
			out = append(out, violation)
		}
	}
	return out
}
