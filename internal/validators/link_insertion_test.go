package validators

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jonathan/content-validator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func briefWith(anchors ...string) *types.Brief {
	b := &types.Brief{}
	for _, a := range anchors {
		b.SuggestedInternalLinks = append(b.SuggestedInternalLinks, types.InternalLink{AnchorText: a})
	}
	return b
}

func TestValidateLinkInsertion_NoExpectedLinks(t *testing.T) {
	for _, brief := range []*types.Brief{nil, {}, briefWith(" ")} {
		for _, content := range []string{"", "No links here.", "[solar](/solar)"} {
			got := ValidateLinkInsertion(brief, content)
			assert.True(t, got.Passed)
			assert.Equal(t, 100, got.InsertionRate)
		}
	}
}

func TestValidateLinkInsertion(t *testing.T) {
	testCases := []struct {
		name    string
		brief   *types.Brief
		content string
		found   int
		rate    int
		passed  bool
	}{
		{
			name:    "half inserted",
			brief:   briefWith("solar panel costs", "battery storage"),
			content: "Read about [solar panel costs](/costs) first.",
			found:   1, rate: 50, passed: true,
		},
		{
			name:    "none inserted",
			brief:   briefWith("solar panel costs", "battery storage"),
			content: "No links at all.",
			found:   0, rate: 0, passed: false,
		},
		{
			name:    "substring in either direction",
			brief:   briefWith("battery storage", "Solar Panel Costs"),
			content: "See [battery storage systems](/b) and [costs](/c).",
			found:   2, rate: 100, passed: true,
		},
		{
			name:    "html anchors count",
			brief:   briefWith("battery storage"),
			content: `<p>See <a href="/b">Battery Storage</a>.</p>`,
			found:   1, rate: 100, passed: true,
		},
		{
			name:    "one of three rounds down",
			brief:   briefWith("alpha", "beta", "gamma"),
			content: "[alpha](/a)",
			found:   1, rate: 33, passed: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ValidateLinkInsertion(tc.brief, tc.content)
			assert.Equal(t, tc.found, got.Found)
			assert.Equal(t, tc.rate, got.InsertionRate)
			assert.Equal(t, tc.passed, got.Passed)
		})
	}
}

func TestValidateLinkInsertion_DeduplicatesBridgeAndSuggestions(t *testing.T) {
	brief := briefWith("Battery storage")
	brief.ContextualBridge = &types.ContextualBridge{Links: []types.InternalLink{{AnchorText: "battery storage"}}}

	got := ValidateLinkInsertion(brief, "")

	assert.Equal(t, 1, got.Expected)
	assert.Equal(t, []string{"battery storage"}, got.MissingLinks)
}

func TestLinkInsertion_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "all inserted", content: "[solar panel costs](/a) and [battery storage](/b)", want: []string{}},
		{name: "partial", content: "[solar panel costs](/a)", want: []string{RuleLinksPartiallyInserted}},
		{name: "none", content: "plain text", want: []string{RuleLinksPartiallyInserted, RuleLinksNotInserted}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := &types.ValidationContext{Brief: briefWith("solar panel costs", "battery storage")}
			got := LinkInsertion{}.Validate(tc.content, ctx)
			assert.Equal(t, tc.want, rulesOf(got))
		})
	}
}

func TestLinkInsertion_ListsAtMostFiveMissing(t *testing.T) {
	ctx := &types.ValidationContext{Brief: briefWith("a1", "b2", "c3", "d4", "e5", "f6")}

	got := LinkInsertion{}.Validate("", ctx)

	require.Len(t, got, 2)
	assert.Contains(t, got[0].Suggestion, "e5")
	assert.NotContains(t, got[0].Suggestion, "f6")
	assert.Equal(t, types.SeverityError, got[1].Severity)
}

func TestLinkInsertion_OneMissingOfManyStillReported(t *testing.T) {
	var anchors []string
	var content strings.Builder
	for i := 0; i < 200; i++ {
		anchor := fmt.Sprintf("topic %03d", i)
		anchors = append(anchors, anchor)
		if i < 199 {
			fmt.Fprintf(&content, "[%s](/t/%03d) ", anchor, i)
		}
	}
	ctx := &types.ValidationContext{Brief: briefWith(anchors...)}

	result := ValidateLinkInsertion(ctx.Brief, content.String())
	require.Equal(t, 199, result.Found)
	assert.Equal(t, 100, result.InsertionRate)
	assert.Equal(t, []string{"topic 199"}, result.MissingLinks)

	got := LinkInsertion{}.Validate(content.String(), ctx)
	require.Len(t, got, 1)
	assert.Equal(t, RuleLinksPartiallyInserted, got[0].Rule)
	assert.Contains(t, got[0].Suggestion, "topic 199")
}
