package validators

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jonathan/content-validator/internal/patterns"
	"github.com/jonathan/content-validator/internal/textutil"
	"github.com/jonathan/content-validator/internal/types"
)

const (
	// centerpieceWindow is a reading-position limit, the same in every language
	centerpieceWindow = 400
	// headingAnswerThreshold is the share of heading terms the first sentence must repeat
	headingAnswerThreshold = 0.4
)

// Centerpiece checks that the central entity is defined early and that every
// section opens with a definitive sentence answering its heading
type Centerpiece struct{}

// Name implements Validator
func (Centerpiece) Name() string { return "centerpiece" }

// Validate implements Validator.
// An intro section that never names the entity in its opening window yields
// CENTERPIECE_DELAYED alone; nothing else is worth reporting until that is fixed.
func (Centerpiece) Validate(content string, ctx *types.ValidationContext) []types.Violation {
	body := strings.TrimLeftFunc(content, unicode.IsSpace)
	if strings.TrimSpace(body) == "" {
		return nil
	}
	set := patterns.Centerpiece(ctx.LanguageOrDefault())
	heading := strings.TrimSpace(ctx.Heading())
	entity := ctx.CentralEntity()
	isIntro := ctx.Level() == 1 || (heading != "" && set.IntroHeadings.MatchString(heading))

	window := textutil.Prefix(body, centerpieceWindow)
	if isIntro && entity != "" && !strings.Contains(strings.ToLower(window), strings.ToLower(entity)) {
		return []types.Violation{violation(RuleCenterpieceDelayed, types.SeverityError, window, 0,
			fmt.Sprintf("The central entity %q must appear within the first %d characters of the introduction.", entity, centerpieceWindow))}
	}

	var out []types.Violation
	first := textutil.FirstSentence(body)
	if first != "" && !set.DefinitiveVerbs.MatchString(first) {
		severity := types.SeverityWarning
		if isIntro {
			severity = types.SeverityError
		}
		out = append(out, violation(RuleFirstSentenceNoDefinitiveVerb, severity, first, positionOf(content, first),
			"Open with a definitive statement (is/are/means/represents) that answers the heading directly."))
	}

	if !isIntro && heading != "" && entity != "" {
		if v, ok := headingAnswer(heading, first, set); ok {
			v.Position = positionOf(content, first)
			out = append(out, v)
		}
	}

	if isIntro && entity != "" && !hasAnchoredDefinition(window, entity, set) {
		out = append(out, violation(RuleCenterpieceNoDefinition, types.SeverityError, window, 0,
			fmt.Sprintf("Define %q explicitly near the start, e.g. \"%s is a ...\" or \"%s refers to ...\".", entity, entity, entity)))
	}
	return out
}

// headingAnswer reports HEADING_ANSWER_MISSING when the first sentence repeats
// too few of the heading's key terms. Headings without key terms are skipped.
func headingAnswer(heading, first string, set *patterns.CenterpieceSet) (types.Violation, bool) {
	terms := headingKeyTerms(heading, set.HeadingStopwords)
	if len(terms) == 0 {
		return types.Violation{}, false
	}
	var missing []string
	for _, term := range terms {
		if !textutil.ContainsWordPrefix(first, term) {
			missing = append(missing, term)
		}
	}
	ratio := float64(len(terms)-len(missing)) / float64(len(terms))
	if ratio >= headingAnswerThreshold {
		return types.Violation{}, false
	}
	return violation(RuleHeadingAnswerMissing, types.SeverityWarning, first, 0,
		fmt.Sprintf("The first sentence does not answer the heading %q; it is missing the key terms: %s.", heading, strings.Join(missing, ", "))), true
}

// headingKeyTerms lower-cases the heading, strips punctuation, and drops short words and stopwords
func headingKeyTerms(heading string, stopwords map[string]bool) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			return unicode.ToLower(r)
		case unicode.IsSpace(r), r == '-', r == '/':
			return ' '
		default:
			return -1
		}
	}, heading)

	seen := make(map[string]bool)
	var terms []string
	for _, w := range strings.Fields(cleaned) {
		if len([]rune(w)) <= 2 || stopwords[w] || seen[w] {
			continue
		}
		seen[w] = true
		terms = append(terms, w)
	}
	return terms
}

// hasAnchoredDefinition reports whether a definition pattern in window is tied
// to the entity: either the text before the match names it, or the matched
// span contains the entity's first word
func hasAnchoredDefinition(window, entity string, set *patterns.CenterpieceSet) bool {
	lowerEntity := strings.ToLower(entity)
	firstWord := lowerEntity
	if fields := strings.Fields(lowerEntity); len(fields) > 0 {
		firstWord = fields[0]
	}
	for _, def := range set.Definitions {
		for _, m := range def.FindAll(window) {
			if strings.Contains(strings.ToLower(window[:m.Start]), lowerEntity) {
				return true
			}
			if strings.Contains(strings.ToLower(m.Text), firstWord) {
				return true
			}
		}
	}
	return false
}

// positionOf returns the byte offset of excerpt in content, or 0 when absent
func positionOf(content, excerpt string) int {
	if excerpt == "" {
		return 0
	}
	if i := strings.Index(content, excerpt); i >= 0 {
		return i
	}
	return 0
}
