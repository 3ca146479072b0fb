// Package textutil provides the language-agnostic text primitives the validators share.
package textutil

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Sentence is one segment of a text together with its byte offset in the original
type Sentence struct {
	Text  string
	Start int
}

var (
	// sentenceEnd matches terminal punctuation followed by whitespace or the end of text
	sentenceEnd = regexp.MustCompile(`[.!?]+(?:["'”’)\]]*)(?:\s+|$)`)
	// paragraphBreak matches a blank line
	paragraphBreak = regexp.MustCompile(`\n[ \t\r]*\n`)
	// firstSentence is the first run of characters up to . ! or ?
	firstSentence = regexp.MustCompile(`^[^.!?]+[.!?]`)
)

// SplitSentences segments text into trimmed sentences. Blank lines also end a sentence.
// Empty segments are dropped.
func SplitSentences(text string) []Sentence {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var out []Sentence
	paraStart := 0
	for _, loc := range append(paragraphBreak.FindAllStringIndex(text, -1), []int{len(text), len(text)}) {
		para := text[paraStart:loc[0]]
		out = append(out, splitParagraph(para, paraStart)...)
		paraStart = loc[1]
	}
	return out
}

func splitParagraph(para string, offset int) []Sentence {
	var out []Sentence
	start := 0
	for _, loc := range sentenceEnd.FindAllStringIndex(para, -1) {
		if s, ok := makeSentence(para, start, loc[1], offset); ok {
			out = append(out, s)
		}
		start = loc[1]
	}
	if s, ok := makeSentence(para, start, len(para), offset); ok {
		out = append(out, s)
	}
	return out
}

func makeSentence(para string, start, end, offset int) (Sentence, bool) {
	raw := para[start:end]
	trimmedLeft := strings.TrimLeftFunc(raw, unicode.IsSpace)
	text := strings.TrimRightFunc(trimmedLeft, unicode.IsSpace)
	if text == "" {
		return Sentence{}, false
	}
	return Sentence{Text: text, Start: offset + start + (len(raw) - len(trimmedLeft))}, true
}

// FirstSentence returns the first run of characters up to . ! or ?, or the first line when
// the text has no terminal punctuation
func FirstSentence(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}
	if m := firstSentence.FindString(trimmed); m != "" {
		return strings.TrimSpace(m)
	}
	if i := strings.IndexByte(trimmed, '\n'); i >= 0 {
		return strings.TrimSpace(trimmed[:i])
	}
	return trimmed
}

// FirstParagraph returns the text up to the first blank line
func FirstParagraph(text string) string {
	trimmed := strings.TrimSpace(text)
	if loc := paragraphBreak.FindStringIndex(trimmed); loc != nil {
		return strings.TrimSpace(trimmed[:loc[0]])
	}
	return trimmed
}

// Prefix returns at most n characters (runes) from the start of text
func Prefix(text string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	count := 0
	for i := range text {
		if count == n {
			return text[:i]
		}
		count++
	}
	return text
}

// Truncate shortens text to n runes, marking the cut with "..."
func Truncate(text string, n int) string {
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	return Prefix(text, n) + "..."
}
