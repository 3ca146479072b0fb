package textutil

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/goliatone/go-slug"
	"golang.org/x/net/html"
)

var (
	// markdownLink matches [text](url) and ![alt](src); the label is kept
	markdownLink = regexp.MustCompile(`!?\[([^\]]*)\]\([^)]*\)`)
	// markdownSyntax are the characters markdown uses for emphasis, headings, quotes, code and tables
	markdownSyntax = regexp.MustCompile("[#*_~`>|<]")
	whitespace     = regexp.MustCompile(`\s+`)
)

// StripHTML removes tags and keeps only text, separating adjacent elements with spaces
func StripHTML(text string) string {
	if !strings.ContainsAny(text, "<&") {
		return text
	}
	var sb strings.Builder
	z := html.NewTokenizer(strings.NewReader(text))
	skip := 0
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			// io.EOF or a malformed tail; either way the text so far is all there is
			return sb.String()
		case html.StartTagToken:
			name, _ := z.TagName()
			if isRawTextTag(string(name)) {
				skip++
			}
			sb.WriteByte(' ')
		case html.EndTagToken:
			name, _ := z.TagName()
			if isRawTextTag(string(name)) && skip > 0 {
				skip--
			}
			sb.WriteByte(' ')
		case html.SelfClosingTagToken:
			sb.WriteByte(' ')
		case html.TextToken:
			if skip == 0 {
				sb.Write(z.Text())
			}
		}
	}
}

func isRawTextTag(name string) bool {
	return name == "script" || name == "style"
}

// StripMarkup removes HTML tags and markdown syntax and collapses whitespace
func StripMarkup(text string) string {
	out := StripHTML(text)
	out = markdownLink.ReplaceAllString(out, "$1")
	out = markdownSyntax.ReplaceAllString(out, "")
	out = whitespace.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}

// CountWords counts whitespace separated words after stripping markup
func CountWords(text string) int {
	stripped := StripMarkup(text)
	if stripped == "" {
		return 0
	}
	count := 0
	for _, w := range strings.Fields(stripped) {
		if w != "" {
			count++
		}
	}
	return count
}

// Tokens splits text on whitespace and lower-cases each token, trimming punctuation
// from both ends. Tokens that end up empty are dropped, so "(the)," yields "the"
// and a lone "--" yields nothing.
func Tokens(text string) []string {
	fields := strings.Fields(text)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		t := strings.TrimFunc(strings.ToLower(f), func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// ContainsWordPrefix reports whether term occurs in text at the start of a word.
// Both arguments are compared case-insensitively; the term may be followed by
// more letters so plurals and inflections still match.
func ContainsWordPrefix(text, term string) bool {
	text = strings.ToLower(text)
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return false
	}
	from := 0
	for {
		i := strings.Index(text[from:], term)
		if i < 0 {
			return false
		}
		at := from + i
		if at == 0 || !isWordRuneBefore(text, at) {
			return true
		}
		from = at + len(term)
	}
}

func isWordRuneBefore(s string, i int) bool {
	last, size := utf8.DecodeLastRuneInString(s[:i])
	if size == 0 {
		return false
	}
	return unicode.IsLetter(last) || unicode.IsDigit(last)
}

// Slugify turns a heading into a stable key. It returns "" when nothing usable remains.
func Slugify(text string) string {
	s, err := slug.Normalize(text)
	if err != nil {
		return ""
	}
	return s
}
