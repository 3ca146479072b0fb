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
	transitionMinQuality = 0.3
	transitionMinTermLen = 4
)

// ContextualBridge checks that supplementary sections bridge back to the main
// topic and that other sections pick up the previous section's subject
type ContextualBridge struct{}

// Name implements Validator
func (ContextualBridge) Name() string { return "contextual_bridge" }

// Validate implements Validator. The two checks are independent.
func (ContextualBridge) Validate(content string, ctx *types.ValidationContext) []types.Violation {
	if strings.TrimSpace(content) == "" {
		return nil
	}
	var out []types.Violation
	if ctx.IsSupplementary() {
		sentences := textutil.SplitSentences(content)
		if len(sentences) > 0 {
			first := sentences[0]
			if !patterns.Bridge(ctx.LanguageOrDefault()).Transitions.MatchString(first.Text) {
				out = append(out, violation(RuleContextualBridgeMissing, types.SeverityWarning, first.Text, first.Start,
					"Open this supplementary section with a bridge back to the main topic, e.g. \"Building on ...\" or \"To ensure ...\"."))
			}
		}
		return out
	}

	if ctx == nil || ctx.PreviousSection == nil {
		return out
	}
	prev := ctx.PreviousSection.Heading
	quality := TransitionQuality(prev, content)
	if quality < transitionMinQuality {
		out = append(out, violation(RuleCrossSectionTransition, types.SeverityWarning, textutil.FirstParagraph(content), 0,
			fmt.Sprintf("The opening paragraph does not connect to the previous section %q (transition quality %.0f%%). Refer back to it before moving on.", prev, quality*100)))
	}
	return out
}

// TransitionQuality is the share of the previous heading's key terms repeated
// in the first paragraph of content. A heading without key terms scores 1.
func TransitionQuality(previousHeading, content string) float64 {
	terms := transitionTerms(previousHeading)
	if len(terms) == 0 {
		return 1
	}
	para := strings.ToLower(textutil.FirstParagraph(content))
	found := 0
	for _, t := range terms {
		if strings.Contains(para, t) {
			found++
		}
	}
	return float64(found) / float64(len(terms))
}

func transitionTerms(heading string) []string {
	words := strings.FieldsFunc(strings.ToLower(heading), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	seen := make(map[string]bool)
	var out []string
	for _, w := range words {
		if len([]rune(w)) < transitionMinTermLen || patterns.IsCrossSectionStopword(w) || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}
