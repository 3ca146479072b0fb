package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeSections() *Article {
	return &Article{
		Language:     "nl",
		BusinessInfo: &BusinessInfo{SeedKeyword: " thuisbatterij "},
		Sections: []ArticleSection{
			{Heading: "Wat is een thuisbatterij?", Level: 1, Content: "Een thuisbatterij is een accu."},
			{Heading: "Kosten", Level: 2, SectionKey: "costs", QueryPriority: 2, Content: "De kosten zijn hoog."},
			{Heading: "Meer lezen", Level: 2, ContentZone: "supplementary", Content: "Lees verder."},
		},
	}
}

func TestArticle_Validate(t *testing.T) {
	require.NoError(t, threeSections().Validate())

	empty := &Article{}
	assert.Error(t, empty.Validate())

	noHeading := threeSections()
	noHeading.Sections[1].Heading = ""
	assert.Error(t, noHeading.Validate())

	badLevel := threeSections()
	badLevel.Sections[0].Level = 9
	assert.Error(t, badLevel.Validate())
}

func TestArticle_ContextFor(t *testing.T) {
	article := threeSections()

	first := article.ContextFor(0)
	assert.Nil(t, first.PreviousSection)
	assert.Equal(t, "thuisbatterij", first.CentralEntity())
	assert.Equal(t, 3, first.TotalSections)
	assert.Len(t, first.AllSections, 3)

	second := article.ContextFor(1)
	require.NotNil(t, second.PreviousSection)
	assert.Equal(t, "Wat is een thuisbatterij?", second.PreviousSection.Heading)
	assert.Equal(t, "costs", second.SectionKey())
	assert.Equal(t, 1, second.SectionIndex)

	third := article.ContextFor(2)
	assert.True(t, third.IsSupplementary())
	assert.Equal(t, "meer-lezen", third.SectionKey())
}

func TestArticle_Text(t *testing.T) {
	article := threeSections()

	assert.Equal(t, "Een thuisbatterij is een accu.\n\nDe kosten zijn hoog.\n\nLees verder.", article.BodyText())
	assert.Contains(t, article.FullText(), "# Wat is een thuisbatterij?\n\nEen thuisbatterij")
	assert.Contains(t, article.FullText(), "## Kosten\n\nDe kosten")
}

func TestValidationContext_NilSafe(t *testing.T) {
	var ctx *ValidationContext

	assert.Equal(t, "", ctx.Heading())
	assert.Equal(t, 0, ctx.Level())
	assert.False(t, ctx.IsSupplementary())
	assert.Equal(t, "", ctx.CentralEntity())
	assert.Equal(t, "", ctx.SectionKey())
}
