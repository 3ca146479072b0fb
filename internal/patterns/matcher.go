// Package patterns holds the per-language rule tables the validators draw on.
// Every table is built once at package init and never written afterwards.
package patterns

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Match is one occurrence of a pattern in a text
type Match struct {
	Start int
	End   int
	Text  string
}

// Matcher is a compiled case-insensitive pattern.
// Bounded matchers only accept matches whose edges are not inside a word,
// which unlike RE2's \b also works for accented letters.
type Matcher struct {
	expr    string
	re      *regexp.Regexp
	prefix  *regexp.Regexp
	bounded bool
}

// Words compiles a whole-word matcher from literal phrases.
// Whitespace inside a phrase matches any run of whitespace.
func Words(phrases ...string) *Matcher {
	alts := make([]string, 0, len(phrases))
	seen := make(map[string]bool)
	for _, p := range phrases {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		alts = append(alts, p)
	}
	// longest first so that "it is clear" wins over "it"
	sort.SliceStable(alts, func(i, j int) bool {
		return utf8.RuneCountInString(alts[i]) > utf8.RuneCountInString(alts[j])
	})
	for i, a := range alts {
		parts := strings.Fields(a)
		for k := range parts {
			parts[k] = strings.ReplaceAll(regexp.QuoteMeta(parts[k]), "'", `['’]`)
		}
		alts[i] = strings.Join(parts, `\s+`)
	}
	return compile("(?:"+strings.Join(alts, "|")+")", true)
}

// Regex compiles a raw expression. Word edges are checked like Words.
func Regex(expr string) *Matcher {
	return compile(expr, true)
}

// Unbounded compiles a raw expression without any word-edge check
func Unbounded(expr string) *Matcher {
	return compile(expr, false)
}

func compile(expr string, bounded bool) *Matcher {
	return &Matcher{
		expr:    expr,
		re:      regexp.MustCompile(`(?i)` + expr),
		prefix:  regexp.MustCompile(`(?i)^\s*(?:` + expr + `)`),
		bounded: bounded,
	}
}

// String returns the source expression
func (m *Matcher) String() string {
	if m == nil {
		return ""
	}
	return m.expr
}

// FindAll returns every non-overlapping occurrence in s, in order
func (m *Matcher) FindAll(s string) []Match {
	if m == nil || s == "" {
		return nil
	}
	var out []Match
	pos := 0
	for pos <= len(s) {
		loc := m.re.FindStringIndex(s[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		if end == start {
			// empty match, step forward one rune
			_, size := utf8.DecodeRuneInString(s[start:])
			if size == 0 {
				break
			}
			pos = start + size
			continue
		}
		if !m.bounded || onWordEdges(s, start, end) {
			out = append(out, Match{Start: start, End: end, Text: s[start:end]})
			pos = end
			continue
		}
		_, size := utf8.DecodeRuneInString(s[start:])
		pos = start + size
	}
	return out
}

// Find returns the first occurrence in s
func (m *Matcher) Find(s string) (Match, bool) {
	if m == nil || s == "" {
		return Match{}, false
	}
	if !m.bounded {
		loc := m.re.FindStringIndex(s)
		if loc == nil {
			return Match{}, false
		}
		return Match{Start: loc[0], End: loc[1], Text: s[loc[0]:loc[1]]}, true
	}
	all := m.FindAll(s)
	if len(all) == 0 {
		return Match{}, false
	}
	return all[0], true
}

// MatchString reports whether s contains the pattern anywhere
func (m *Matcher) MatchString(s string) bool {
	_, ok := m.Find(s)
	return ok
}

// MatchPrefix matches the pattern anchored at the start of s, ignoring leading whitespace
func (m *Matcher) MatchPrefix(s string) (Match, bool) {
	if m == nil || s == "" {
		return Match{}, false
	}
	loc := m.prefix.FindStringIndex(s)
	if loc == nil {
		return Match{}, false
	}
	start := loc[0]
	for start < loc[1] {
		r, size := utf8.DecodeRuneInString(s[start:])
		if !unicode.IsSpace(r) {
			break
		}
		start += size
	}
	if m.bounded && !onWordEdges(s, start, loc[1]) {
		return Match{}, false
	}
	return Match{Start: start, End: loc[1], Text: s[start:loc[1]]}, true
}

// onWordEdges reports whether s[start:end] neither starts nor ends in the middle of a word.
// The check only applies to edges where the match itself is a word character.
func onWordEdges(s string, start, end int) bool {
	if start > 0 {
		first, _ := utf8.DecodeRuneInString(s[start:])
		before, _ := utf8.DecodeLastRuneInString(s[:start])
		if isWordRune(first) && isWordRune(before) {
			return false
		}
	}
	if end < len(s) {
		last, _ := utf8.DecodeLastRuneInString(s[:end])
		after, _ := utf8.DecodeRuneInString(s[end:])
		if isWordRune(last) && isWordRune(after) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
