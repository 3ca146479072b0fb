package types

import (
	"time"

	"github.com/google/uuid"
)

// LanguageDetection is the outcome of frequency based language identification
type LanguageDetection struct {
	IsValid    bool               `json:"is_valid"`
	Expected   string             `json:"expected"`
	Detected   string             `json:"detected"`
	Confidence float64            `json:"confidence"`
	Scores     map[string]float64 `json:"scores,omitempty"`
	Abstained  bool               `json:"abstained,omitempty"`
}

// LinkInsertionResult reports how many of the brief's expected links made it into the content
type LinkInsertionResult struct {
	Expected      int      `json:"expected"`
	Found         int      `json:"found"`
	InsertionRate int      `json:"insertion_rate"`
	Passed        bool     `json:"passed"`
	FoundAnchors  []string `json:"found_anchors,omitempty"`
	MissingLinks  []string `json:"missing_links,omitempty"`
}

// WordCountResult reports a whole-article word count against its target band
type WordCountResult struct {
	WordCount  int  `json:"word_count"`
	Target     int  `json:"target"`
	MinAllowed int  `json:"min_allowed"`
	MaxAllowed int  `json:"max_allowed"`
	IsValid    bool `json:"is_valid"`
	Difference int  `json:"difference"`
}

// SkippedValidator records a validator that could not complete
type SkippedValidator struct {
	Validator string `json:"validator"`
	Section   string `json:"section,omitempty"`
	Reason    string `json:"reason"`
}

// Report aggregates the output of one validation run
type Report struct {
	ID         uuid.UUID            `json:"id"`
	CreatedAt  time.Time            `json:"created_at"`
	Title      string               `json:"title,omitempty"`
	Language   string               `json:"language"`
	Passed     bool                 `json:"passed"`
	Counts     map[Severity]int     `json:"counts"`
	Violations []Violation          `json:"violations"`
	Skipped    []SkippedValidator   `json:"skipped,omitempty"`
	EAVDensity map[string]int       `json:"eav_density,omitempty"`
	WordCount  *WordCountResult     `json:"word_count,omitempty"`
	Detection  *LanguageDetection   `json:"language_detection,omitempty"`
	Links      *LinkInsertionResult `json:"link_insertion,omitempty"`
}

// NewReport creates an empty report stamped with a fresh id
func NewReport(language string) *Report {
	return &Report{
		ID:         uuid.New(),
		CreatedAt:  time.Now().UTC(),
		Language:   language,
		Passed:     true,
		Counts:     map[Severity]int{SeverityError: 0, SeverityWarning: 0, SeverityInfo: 0},
		Violations: []Violation{},
	}
}

// Add appends violations and keeps counts and the pass flag current
func (r *Report) Add(violations ...Violation) {
	for _, v := range violations {
		r.Violations = append(r.Violations, v)
		r.Counts[v.Severity]++
		if v.Severity == SeverityError {
			r.Passed = false
		}
	}
}

// Blocking reports whether the report contains a violation at or above threshold.
// An empty or unknown threshold never blocks.
func (r *Report) Blocking(threshold Severity) bool {
	if !threshold.Valid() {
		return false
	}
	for _, v := range r.Violations {
		if v.Severity.AtLeast(threshold) {
			return true
		}
	}
	return false
}
