package validators

import (
	"strings"
	"testing"

	"github.com/jonathan/content-validator/internal/textutil"
	"github.com/jonathan/content-validator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountWords(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want int
	}{
		{name: "empty", text: "", want: 0},
		{name: "whitespace only", text: " \n\t ", want: 0},
		{name: "plain", text: "Solar panels convert light.", want: 4},
		{name: "markdown", text: "## Heading\n\n**Solar** panels [convert](/convert) light.", want: 5},
		{name: "html", text: "<p>Solar <b>panels</b></p><p>convert light</p>", want: 4},
		{name: "script ignored", text: "<p>Solar panels</p><script>var x = 1;</script>", want: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CountWords(tc.text))
		})
	}
}

func TestCountWords_IdempotentUnderRestripping(t *testing.T) {
	for _, text := range []string{
		"## Heading\n\n**Solar** panels [convert](/convert) light.",
		"<div><p>One <em>two</em></p> three</div>",
		"> quoted `code` | table | cell",
	} {
		once := textutil.StripMarkup(text)
		assert.Equal(t, CountWords(text), CountWords(once))
		assert.Equal(t, CountWords(once), CountWords(textutil.StripMarkup(once)))
	}
}

func TestClassifySection(t *testing.T) {
	testCases := []struct {
		name    string
		heading string
		level   int
		zone    string
		want    SectionType
	}{
		{name: "introduction heading", heading: "Introduction", level: 2, want: SectionIntroduction},
		{name: "level one", heading: "Solar panels", level: 1, want: SectionIntroduction},
		{name: "conclusion", heading: "Conclusion", level: 2, want: SectionConclusion},
		{name: "summary", heading: "Summary of costs", level: 2, want: SectionConclusion},
		{name: "final thoughts", heading: "Final thoughts", level: 2, want: SectionConclusion},
		{name: "supplementary zone", heading: "Battery storage", level: 2, zone: types.ZoneSupplementary, want: SectionSupplementary},
		{name: "core", heading: "Installation", level: 2, zone: types.ZoneMain, want: SectionCore},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := sectionContext("en", tc.heading, tc.level, "")
			ctx.Section.ContentZone = tc.zone
			assert.Equal(t, tc.want, ClassifySection(ctx))
		})
	}
	assert.Equal(t, SectionCore, ClassifySection(nil))
}

func TestWordCount_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		heading string
		level   int
		words   int
		want    []string
	}{
		{name: "core too short", heading: "Installation", level: 2, words: 50, want: []string{RuleCoreWordCount}},
		{name: "core in band", heading: "Installation", level: 2, words: 300, want: []string{}},
		{name: "core lower bound", heading: "Installation", level: 2, words: 200, want: []string{}},
		{name: "intro too long", heading: "Introduction", level: 2, words: 300, want: []string{RuleIntroWordCount}},
		{name: "conclusion too long", heading: "Conclusion", level: 2, words: 201, want: []string{RuleConclusionWordCount}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := WordCount{}.Validate(words(tc.words), sectionContext("en", tc.heading, tc.level, ""))
			assert.Equal(t, tc.want, rulesOf(got))
		})
	}
}

func TestWordCount_SupplementaryUsesCoreRule(t *testing.T) {
	ctx := supplementaryContext("en")

	got := WordCount{}.Validate(words(20), ctx)

	require.Len(t, got, 1)
	assert.Equal(t, RuleCoreWordCount, got[0].Rule)
	assert.Contains(t, got[0].Suggestion, "supplementary")
}

func TestValidateArticleTotal(t *testing.T) {
	result, violations := ValidateArticleTotal(words(900), 1000, DefaultTolerance)

	assert.True(t, result.IsValid)
	assert.Equal(t, 900, result.MinAllowed)
	assert.Equal(t, 1100, result.MaxAllowed)
	assert.Equal(t, -100, result.Difference)
	assert.Empty(t, violations)
}

func TestValidateArticleTotal_Boundaries(t *testing.T) {
	testCases := []struct {
		name   string
		count  int
		target int
		valid  bool
	}{
		{name: "exactly min", count: 900, target: 1000, valid: true},
		{name: "one below min", count: 899, target: 1000, valid: false},
		{name: "exactly max", count: 1100, target: 1000, valid: true},
		{name: "one above max", count: 1101, target: 1000, valid: false},
		{name: "odd target floor", count: 1349, target: 1499, valid: true},
		{name: "odd target ceil", count: 1649, target: 1499, valid: true},
		{name: "odd target past ceil", count: 1650, target: 1499, valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, violations := ValidateArticleTotal(words(tc.count), tc.target, 0.10)
			assert.Equal(t, tc.valid, result.IsValid)
			assert.Equal(t, !tc.valid, len(violations) == 1)
		})
	}
}

func TestValidateArticleTotal_Suggestions(t *testing.T) {
	_, over := ValidateArticleTotal(words(2500), 2000, DefaultTolerance)
	require.Len(t, over, 1)
	assert.Equal(t, RuleArticleWordCount, over[0].Rule)
	assert.Contains(t, over[0].Suggestion, "Remove")

	_, under := ValidateArticleTotal(words(800), 1000, DefaultTolerance)
	require.Len(t, under, 1)
	assert.True(t, strings.HasPrefix(under[0].Suggestion, "Add 100 words"))
}

func TestValidateArticleTotal_DefaultTolerance(t *testing.T) {
	result, _ := ValidateArticleTotal(words(10), 1000, 0)

	assert.Equal(t, 900, result.MinAllowed)
	assert.Equal(t, 1100, result.MaxAllowed)
	assert.False(t, result.IsValid)
}
