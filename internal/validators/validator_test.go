package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_NamesAreUnique(t *testing.T) {
	names := Names(Default())
	seen := make(map[string]bool)
	for _, n := range names {
		assert.False(t, seen[n], "duplicate validator name %s", n)
		seen[n] = true
	}
	assert.Len(t, names, 10)
}

func TestIsArticleLevel(t *testing.T) {
	assert.True(t, IsArticleLevel(QueryOrdering{}))
	assert.True(t, IsArticleLevel(LanguageOutput{}))
	assert.True(t, IsArticleLevel(LinkInsertion{}))
	assert.False(t, IsArticleLevel(Modality{}))
	assert.False(t, IsArticleLevel(WordCount{}))
}

func TestSelect(t *testing.T) {
	testCases := []struct {
		name     string
		enabled  []string
		disabled []string
		want     []string
	}{
		{
			name: "everything by default",
			want: Names(Default()),
		},
		{
			name:    "enabled subset keeps audit order",
			enabled: []string{"word_count", "Modality"},
			want:    []string{"modality", "word_count"},
		},
		{
			name:     "disabled wins over enabled",
			enabled:  []string{"modality", "structure"},
			disabled: []string{"structure"},
			want:     []string{"modality"},
		},
		{
			name:    "blank names are ignored",
			enabled: []string{" "},
			want:    Names(Default()),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Select(Default(), tc.enabled, tc.disabled)
			require.NoError(t, err)
			assert.Equal(t, tc.want, Names(got))
		})
	}
}

func TestSelect_UnknownName(t *testing.T) {
	_, err := Select(Default(), []string{"grammar"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "grammar")
}

func TestViolation_TruncatesExcerpt(t *testing.T) {
	v := violation(RuleOpinions, "error", words(60), 3, "fix it")
	assert.LessOrEqual(t, len([]rune(v.Text)), excerptLength+3)
	assert.Equal(t, 3, v.Position)
	assert.Equal(t, "fix it", v.Suggestion)
}
