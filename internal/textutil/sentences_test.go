package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSentences(t *testing.T) {
	text := "First one. Second one!\n\nThird"

	sentences := SplitSentences(text)
	require.Len(t, sentences, 3)
	assert.Equal(t, Sentence{Text: "First one.", Start: 0}, sentences[0])
	assert.Equal(t, Sentence{Text: "Second one!", Start: 11}, sentences[1])
	assert.Equal(t, Sentence{Text: "Third", Start: 24}, sentences[2])

	for _, s := range sentences {
		assert.Equal(t, s.Text, text[s.Start:s.Start+len(s.Text)])
	}
}

func TestSplitSentences_Empty(t *testing.T) {
	assert.Nil(t, SplitSentences(""))
	assert.Nil(t, SplitSentences(" \n\t "))
}

func TestFirstSentence(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want string
	}{
		{name: "terminal punctuation", text: "  Solar panels are cheap. They last.", want: "Solar panels are cheap."},
		{name: "question", text: "Is it worth it? Yes.", want: "Is it worth it?"},
		{name: "no punctuation uses first line", text: "A list intro\n- item", want: "A list intro"},
		{name: "empty", text: "   ", want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FirstSentence(tc.text))
		})
	}
}

func TestFirstParagraph(t *testing.T) {
	assert.Equal(t, "One. Two.", FirstParagraph("\nOne. Two.\n\nThree."))
	assert.Equal(t, "Only.", FirstParagraph("Only."))
}

func TestPrefixAndTruncate(t *testing.T) {
	assert.Equal(t, "hé", Prefix("héllo", 2))
	assert.Equal(t, "", Prefix("héllo", 0))
	assert.Equal(t, "héllo", Prefix("héllo", 10))

	assert.Equal(t, "abc...", Truncate("abcdef", 3))
	assert.Equal(t, "abc", Truncate("abc", 3))
}
