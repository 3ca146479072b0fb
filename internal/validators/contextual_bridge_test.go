package validators

import (
	"testing"

	"github.com/jonathan/content-validator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func supplementaryContext(language string) *types.ValidationContext {
	ctx := sectionContext(language, "Battery storage", 2, "Solar panels")
	ctx.Section.ContentZone = types.ZoneSupplementary
	return ctx
}

func TestContextualBridge_Supplementary(t *testing.T) {
	testCases := []struct {
		name     string
		language string
		content  string
		want     int
	}{
		{name: "bridge phrase", language: "en", content: "Building on the basics, batteries store surplus energy.", want: 0},
		{name: "bridge verb", language: "en", content: "Homeowners should consider battery storage. It adds resilience.", want: 0},
		{name: "no bridge", language: "en", content: "Battery storage stores energy at night. It adds resilience.", want: 1},
		{name: "dutch bridge", language: "nl", content: "Daarnaast slaan batterijen overtollige energie op.", want: 0},
		{name: "empty content", language: "en", content: "", want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ContextualBridge{}.Validate(tc.content, supplementaryContext(tc.language))
			assert.Len(t, byRule(got, RuleContextualBridgeMissing), tc.want)
		})
	}
}

func TestContextualBridge_SupplementarySkipsTransitionCheck(t *testing.T) {
	ctx := supplementaryContext("en")
	ctx.PreviousSection = &types.PreviousSection{Heading: "Solar Panel Installation Costs"}

	got := ContextualBridge{}.Validate("Building on the basics, batteries store surplus energy.", ctx)

	assert.Empty(t, got)
}

func TestContextualBridge_NoPreviousSectionNeverFires(t *testing.T) {
	for _, content := range []string{
		"Maintenance keeps systems running.",
		"Unrelated text about gardening and cooking.",
		"x",
	} {
		got := ContextualBridge{}.Validate(content, sectionContext("en", "Maintenance", 2, "Solar panels"))
		assert.Empty(t, byRule(got, RuleCrossSectionTransition))
	}
}

func TestContextualBridge_CrossSection(t *testing.T) {
	testCases := []struct {
		name     string
		previous string
		content  string
		want     int
	}{
		{
			name:     "no link to previous heading",
			previous: "Solar Panel Installation Costs",
			content:  "Maintenance keeps systems running.\n\nCleaning twice a year is enough.",
			want:     1,
		},
		{
			name:     "picks up previous heading",
			previous: "Solar Panel Installation Costs",
			content:  "After installation, solar panel maintenance is cheap.",
			want:     0,
		},
		{
			name:     "only the first paragraph counts",
			previous: "Solar Panel Installation Costs",
			content:  "Maintenance keeps systems running.\n\nSolar panel installation costs are covered above.",
			want:     1,
		},
		{
			name:     "previous heading without key terms",
			previous: "What is it?",
			content:  "Maintenance keeps systems running.",
			want:     0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := sectionContext("en", "Maintenance", 2, "Solar panels")
			ctx.PreviousSection = &types.PreviousSection{Heading: tc.previous}

			got := ContextualBridge{}.Validate(tc.content, ctx)
			matching := byRule(got, RuleCrossSectionTransition)
			require.Len(t, matching, tc.want)
			for _, v := range matching {
				assert.Equal(t, types.SeverityWarning, v.Severity)
			}
		})
	}
}

func TestTransitionQuality(t *testing.T) {
	assert.Equal(t, 1.0, TransitionQuality("What is it?", "anything"))
	assert.Equal(t, 0.0, TransitionQuality("Solar Panel Costs", "Maintenance is cheap."))
	assert.InDelta(t, 2.0/3.0, TransitionQuality("Solar Panel Costs", "Solar panel upkeep is cheap."), 1e-9)
}
