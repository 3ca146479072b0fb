package validators

import (
	"fmt"
	"math"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/jonathan/content-validator/internal/patterns"
	"github.com/jonathan/content-validator/internal/textutil"
	"github.com/jonathan/content-validator/internal/types"
)

const (
	// detectionMinTokens is the least signal worth judging; below it detection abstains
	detectionMinTokens   = 10
	abstainConfidence    = 0.5
	diacriticWeight      = 10
	confidenceScale      = 5
	mismatchMinConfident = 0.6
)

// LanguageOutput checks that content is written in the expected language
type LanguageOutput struct{}

// Name implements Validator
func (LanguageOutput) Name() string { return "language_output" }

// ArticleLevel implements ArticleScoped
func (LanguageOutput) ArticleLevel() bool { return true }

// Validate implements Validator. Low confidence mismatches are suppressed.
func (LanguageOutput) Validate(content string, ctx *types.ValidationContext) []types.Violation {
	result := DetectLanguage(content, ctx.LanguageOrDefault())
	if result.IsValid || result.Confidence <= mismatchMinConfident {
		return nil
	}
	return []types.Violation{violation(RuleLanguageOutput, types.SeverityError, textutil.FirstSentence(content), 0,
		fmt.Sprintf("Content appears to be %s (confidence %.0f%%) but %s was expected. Regenerate it in %s.",
			result.Detected, result.Confidence*100, result.Expected, result.Expected))}
}

// DetectLanguage scores content against every language's function-word markers
// and diacritics and compares the best match with expected. Content with fewer
// than ten usable tokens abstains as valid. Tokens come from textutil.Tokens,
// so edge punctuation is trimmed before both the marker lookup and the count.
func DetectLanguage(content, expected string) types.LanguageDetection {
	want := string(patterns.Canonical(expected))
	var tokens []string
	for _, t := range textutil.Tokens(content) {
		if utf8.RuneCountInString(t) > 1 {
			tokens = append(tokens, t)
		}
	}
	if len(tokens) < detectionMinTokens {
		return types.LanguageDetection{
			IsValid:    true,
			Expected:   want,
			Detected:   want,
			Confidence: abstainConfidence,
			Abstained:  true,
		}
	}

	normalized := norm.NFC.String(content)
	length := utf8.RuneCountInString(normalized)
	scores := make(map[string]float64)
	best, bestScore := "", -1.0
	for _, lm := range patterns.Detection() {
		hits := 0
		for _, t := range tokens {
			if lm.Set.Markers[t] {
				hits++
			}
		}
		score := float64(hits) / float64(len(tokens))
		if lm.Set.Diacritics != nil && length > 0 {
			score += float64(len(lm.Set.Diacritics.FindAll(normalized))) / float64(length) * diacriticWeight
		}
		scores[string(lm.Language)] = score
		if score > bestScore {
			best, bestScore = string(lm.Language), score
		}
	}

	confidence := math.Min(bestScore*confidenceScale, 1)
	return types.LanguageDetection{
		IsValid:    best == want,
		Expected:   want,
		Detected:   best,
		Confidence: confidence,
		Scores:     scores,
	}
}
