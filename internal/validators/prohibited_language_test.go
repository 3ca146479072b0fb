package validators

import (
	"testing"

	"github.com/jonathan/content-validator/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestProhibitedLanguage_FamilyOrder(t *testing.T) {
	got := ProhibitedLanguage{}.Validate("Actually, the product is amazing.", sectionContext("en", "Pricing", 2, ""))

	assert.Equal(t, []string{RuleStopWords, RuleOpinions}, rulesOf(got))
	assert.Equal(t, types.SeverityWarning, got[0].Severity)
	assert.Equal(t, 0, got[0].Position)
	assert.Equal(t, types.SeverityError, got[1].Severity)
	assert.Contains(t, got[1].Suggestion, "amazing")
}

func TestProhibitedLanguage_Rules(t *testing.T) {
	testCases := []struct {
		name     string
		language string
		content  string
		rule     string
		want     int
		severity types.Severity
	}{
		{
			name:     "fluff opener reported once",
			language: "en",
			content:  "In this article we explain pricing. In this guide we compare brands.",
			rule:     RuleFluffOpeners,
			want:     1,
			severity: types.SeverityError,
		},
		{
			name:     "fluff opener only at the start",
			language: "en",
			content:  "Panels convert light. Welcome to the future of energy.",
			rule:     RuleFluffOpeners,
			want:     0,
		},
		{
			name:     "ambiguous pronoun per sentence",
			language: "en",
			content:  "Solar panels convert light. It is efficient. This helps households.",
			rule:     RuleAmbiguousPronouns,
			want:     2,
			severity: types.SeverityWarning,
		},
		{
			name:     "analogy",
			language: "en",
			content:  "A battery works just like a water tank.",
			rule:     RuleAnalogies,
			want:     1,
			severity: types.SeverityError,
		},
		{
			name:     "future for facts",
			language: "en",
			content:  "The inverter will convert direct current.",
			rule:     RuleFutureForFacts,
			want:     1,
			severity: types.SeverityWarning,
		},
		{
			name:     "no match inside a longer word",
			language: "en",
			content:  "Justice matters to every citizen.",
			rule:     RuleStopWords,
			want:     0,
		},
		{
			name:     "dutch stop word",
			language: "nl",
			content:  "Dit is eigenlijk een goede keuze.",
			rule:     RuleStopWords,
			want:     1,
			severity: types.SeverityWarning,
		},
		{
			name:     "dutch stop word ignored by english patterns",
			language: "en",
			content:  "Dit is eigenlijk een goede keuze.",
			rule:     RuleStopWords,
			want:     0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ProhibitedLanguage{}.Validate(tc.content, sectionContext(tc.language, "Overview of costs", 2, ""))
			matching := byRule(got, tc.rule)
			assert.Len(t, matching, tc.want)
			for _, v := range matching {
				assert.Equal(t, tc.severity, v.Severity)
			}
		})
	}
}

func TestProhibitedLanguage_EmptyAndNilContext(t *testing.T) {
	assert.Empty(t, ProhibitedLanguage{}.Validate("", nil))
	assert.NotEmpty(t, ProhibitedLanguage{}.Validate("I think this is great.", nil))
}
