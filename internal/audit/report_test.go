package audit

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/jonathan/content-validator/internal/types"
	"github.com/jonathan/content-validator/internal/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleArticle() *types.Article {
	return &types.Article{
		Title:        "Solar panels",
		Language:     "en",
		TargetWords:  1000,
		BusinessInfo: &types.BusinessInfo{SeedKeyword: "Solar panels"},
		Brief: &types.Brief{SuggestedInternalLinks: []types.InternalLink{
			{AnchorText: "battery storage"},
			{AnchorText: "installation costs"},
		}},
		Sections: []types.ArticleSection{
			{
				Heading: "Introduction",
				Level:   2,
				Content: "Solar panels are the devices that convert sunlight into electricity for the home. " +
					"They are installed on the roof and they last for 25 years.",
			},
			{
				Heading: "Installation costs",
				Level:   2,
				Content: "In this article the installation of solar panels is explained and it is clear that [battery storage](/battery) adds value.",
			},
			{
				Heading: "Conclusion",
				Level:   2,
				Content: "Solar panels are a sound investment for most homes with a roof facing south.",
			},
		},
	}
}

func TestValidateArticle_InputErrors(t *testing.T) {
	runner := NewRunner(Options{})

	_, err := runner.ValidateArticle(context.Background(), nil)
	var inputErr *InputError
	require.True(t, errors.As(err, &inputErr))

	_, err = runner.ValidateArticle(context.Background(), &types.Article{Language: "en"})
	require.True(t, errors.As(err, &inputErr))
	assert.NotNil(t, inputErr.Unwrap())
}

func TestValidateArticle_ArticleLevelRunsOnce(t *testing.T) {
	calls := &atomic.Int32{}
	runner := NewRunner(Options{Validators: []validators.Validator{articleStub{calls: calls}}})

	_, err := runner.ValidateArticle(context.Background(), sampleArticle())

	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestValidateArticle_Report(t *testing.T) {
	report, err := NewRunner(Options{}).ValidateArticle(context.Background(), sampleArticle())
	require.NoError(t, err)

	assert.Equal(t, "English", report.Language)
	assert.Equal(t, "Solar panels", report.Title)

	require.NotNil(t, report.WordCount)
	assert.False(t, report.WordCount.IsValid)
	assert.Equal(t, 900, report.WordCount.MinAllowed)

	require.NotNil(t, report.Detection)
	assert.Equal(t, "English", report.Detection.Detected)
	assert.True(t, report.Detection.IsValid)

	require.NotNil(t, report.Links)
	assert.Equal(t, 2, report.Links.Expected)
	assert.Equal(t, 1, report.Links.Found)
	assert.Equal(t, []string{"installation costs"}, report.Links.MissingLinks)

	costsKey := (&types.SectionInfo{Heading: "Installation costs"}).Key()
	assert.Len(t, report.EAVDensity, 3)
	assert.Contains(t, report.EAVDensity, costsKey)

	var fluff, total int
	for _, v := range report.Violations {
		switch v.Rule {
		case validators.RuleFluffOpeners:
			fluff++
			assert.Equal(t, costsKey, v.Section)
		case validators.RuleArticleWordCount:
			total++
			assert.Empty(t, v.Section)
			assert.True(t, strings.HasPrefix(v.Suggestion, "Add"))
		}
	}
	assert.Equal(t, 1, fluff)
	assert.Equal(t, 1, total)
	assert.False(t, report.Passed)
	assert.Equal(t, len(report.Violations), report.Counts[types.SeverityError]+report.Counts[types.SeverityWarning]+report.Counts[types.SeverityInfo])
}

func TestValidateArticle_CrossSectionOnlyAfterFirst(t *testing.T) {
	runner := NewRunner(Options{Validators: []validators.Validator{validators.ContextualBridge{}}})

	report, err := runner.ValidateArticle(context.Background(), sampleArticle())

	require.NoError(t, err)
	introKey := (&types.SectionInfo{Heading: "Introduction"}).Key()
	for _, v := range report.Violations {
		if v.Rule == validators.RuleCrossSectionTransition {
			assert.NotEqual(t, introKey, v.Section)
		}
	}
}

func TestValidateArticle_DisabledWordCountSkipsTotal(t *testing.T) {
	runner := NewRunner(Options{Validators: []validators.Validator{validators.Modality{}}})

	report, err := runner.ValidateArticle(context.Background(), sampleArticle())

	require.NoError(t, err)
	assert.Nil(t, report.WordCount)
	assert.Nil(t, report.Detection)
	assert.Nil(t, report.Links)
}
