package validators

import (
	"math"
	"strings"

	"github.com/jonathan/content-validator/internal/patterns"
	"github.com/jonathan/content-validator/internal/textutil"
	"github.com/jonathan/content-validator/internal/types"
)

const (
	eavMinWords       = 4
	eavMinStrongWords = 6
)

// EAVDensity flags sentences that assert no entity-attribute-value fact
type EAVDensity struct{}

// Name implements Validator
func (EAVDensity) Name() string { return "eav_density" }

// Validate implements Validator
func (EAVDensity) Validate(content string, ctx *types.ValidationContext) []types.Violation {
	set := patterns.EAV(ctx.LanguageOrDefault())
	var out []types.Violation
	for _, s := range textutil.SplitSentences(content) {
		words := len(strings.Fields(s.Text))
		if words < eavMinWords {
			continue
		}
		if isWeakSentence(set, s.Text) {
			out = append(out, violation(RuleEAVDensity, types.SeverityWarning, s.Text, s.Start,
				"Replace this vague sentence with a concrete fact: entity, attribute and value."))
			continue
		}
		if words >= eavMinStrongWords && !hasEAV(set, s.Text) {
			out = append(out, violation(RuleEAVDensity, types.SeverityWarning, s.Text, s.Start,
				"State a measurable attribute of the entity, e.g. \"German Shepherds require 60 minutes of exercise.\""))
		}
	}
	return out
}

// CalculateDensity returns the share of sentences carrying an EAV structure, 0 to 100.
// It reports a metric only and never produces violations.
func CalculateDensity(content, language string) int {
	sentences := textutil.SplitSentences(content)
	if len(sentences) == 0 {
		return 0
	}
	set := patterns.EAV(language)
	matching := 0
	for _, s := range sentences {
		if hasEAV(set, s.Text) {
			matching++
		}
	}
	return int(math.Round(float64(matching) / float64(len(sentences)) * 100))
}

func isWeakSentence(set *patterns.EAVSet, sentence string) bool {
	for _, w := range set.Weak {
		if w.MatchString(sentence) {
			return true
		}
	}
	return false
}

func hasEAV(set *patterns.EAVSet, sentence string) bool {
	return set.EntityVerb.MatchString(sentence) ||
		set.AttributeOf.MatchString(sentence) ||
		set.Measurement.MatchString(sentence)
}
