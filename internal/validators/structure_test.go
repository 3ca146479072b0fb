package validators

import (
	"testing"

	"github.com/jonathan/content-validator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructure(t *testing.T) {
	testCases := []struct {
		name    string
		entity  string
		content string
		want    int
	}{
		{
			name:    "entity never mentioned",
			entity:  "Solar panels",
			content: "Energy prices rise every year. Homeowners look for savings. Installers offer financing. Grants cover part of the cost.",
			want:    1,
		},
		{
			name:    "entity leads half the sentences",
			entity:  "Solar panels",
			content: "Solar panels convert light. Homeowners look for savings. The solar panels last decades. Grants cover part of the cost.",
			want:    0,
		},
		{
			name:    "mention anywhere counts",
			entity:  "Solar panels",
			content: "Installers mount solar panels on roofs. Homeowners look for savings. Grants cover part of the cost.",
			want:    0,
		},
		{
			name:    "too few sentences",
			entity:  "Solar panels",
			content: "Energy prices rise. Homeowners look for savings.",
			want:    0,
		},
		{
			name:    "no entity",
			content: "Energy prices rise every year. Homeowners look for savings. Installers offer financing.",
			want:    0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Structure{}.Validate(tc.content, sectionContext("en", "Costs", 2, tc.entity))
			assert.Len(t, got, tc.want)
		})
	}
}

func TestStructure_ReportsRatio(t *testing.T) {
	content := "Solar panels convert light. Homeowners look for savings. Installers offer financing. Grants cover part of the cost."

	got := Structure{}.Validate(content, sectionContext("en", "Costs", 2, "Solar panels"))

	require.Len(t, got, 1)
	assert.Equal(t, RuleEntityAsSubject, got[0].Rule)
	assert.Equal(t, types.SeverityWarning, got[0].Severity)
	assert.Contains(t, got[0].Suggestion, "1 of 4")
	assert.Contains(t, got[0].Suggestion, "25%")
}

func TestEntityLeads_ArticlePrefix(t *testing.T) {
	assert.True(t, entityLeads("de zonnepanelen liggen op het dak", "zonnepanelen", []string{"de", "het", "een"}))
	assert.True(t, entityLeads("l'énergie solaire est propre", "énergie solaire", []string{"l'"}))
	assert.False(t, entityLeads("het dak is plat", "zonnepanelen", []string{"de", "het", "een"}))
}
