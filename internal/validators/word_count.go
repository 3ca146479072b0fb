package validators

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/content-validator/internal/textutil"
	"github.com/jonathan/content-validator/internal/types"
)

// SectionType classifies a section for word-count banding
type SectionType string

const (
	SectionIntroduction  SectionType = "introduction"
	SectionCore          SectionType = "core"
	SectionConclusion    SectionType = "conclusion"
	SectionSupplementary SectionType = "supplementary"
)

// DefaultTolerance is the allowed deviation from an article's target word count
const DefaultTolerance = 0.10

// boundEpsilon absorbs float error so 1000*0.9 floors to 900, not 899
const boundEpsilon = 1e-9

// Band is an inclusive word-count range
type Band struct {
	Min  int
	Max  int
	Rule string
}

var bands = map[SectionType]Band{
	SectionIntroduction:  {Min: 150, Max: 250, Rule: RuleIntroWordCount},
	SectionCore:          {Min: 200, Max: 400, Rule: RuleCoreWordCount},
	SectionConclusion:    {Min: 100, Max: 200, Rule: RuleConclusionWordCount},
	SectionSupplementary: {Min: 100, Max: 300, Rule: RuleCoreWordCount},
}

// BandFor returns the word-count band of a section type
func BandFor(t SectionType) Band {
	if b, ok := bands[t]; ok {
		return b
	}
	return bands[SectionCore]
}

// WordCount checks section length against the band for its section type
type WordCount struct{}

// Name implements Validator
func (WordCount) Name() string { return "word_count" }

// Validate implements Validator. Too short and too long are reported separately.
func (WordCount) Validate(content string, ctx *types.ValidationContext) []types.Violation {
	sectionType := ClassifySection(ctx)
	band := BandFor(sectionType)
	count := CountWords(content)

	var out []types.Violation
	if count < band.Min {
		out = append(out, violation(band.Rule, types.SeverityWarning, ctx.Heading(), 0,
			fmt.Sprintf("The %s section has %d words; add at least %d to reach the %d-%d range.", sectionType, count, band.Min-count, band.Min, band.Max)))
	}
	if count > band.Max {
		out = append(out, violation(band.Rule, types.SeverityWarning, ctx.Heading(), 0,
			fmt.Sprintf("The %s section has %d words; remove at least %d to stay within the %d-%d range.", sectionType, count, count-band.Max, band.Min, band.Max)))
	}
	return out
}

// CountWords counts words after stripping HTML tags and markdown syntax
func CountWords(text string) int {
	return textutil.CountWords(text)
}

// ClassifySection derives the section type from heading, level and content zone
func ClassifySection(ctx *types.ValidationContext) SectionType {
	heading := strings.ToLower(ctx.Heading())
	switch {
	case strings.Contains(heading, "introduction") || strings.Contains(heading, "intro") || ctx.Level() == 1:
		return SectionIntroduction
	case strings.Contains(heading, "conclusion") || strings.Contains(heading, "summary") || strings.Contains(heading, "final"):
		return SectionConclusion
	case ctx.IsSupplementary():
		return SectionSupplementary
	default:
		return SectionCore
	}
}

// ValidateArticleTotal checks the whole article against target words within
// tolerance. Both bounds are inclusive. A non-positive tolerance uses DefaultTolerance.
func ValidateArticleTotal(content string, target int, tolerance float64) (types.WordCountResult, []types.Violation) {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	count := CountWords(content)
	result := types.WordCountResult{
		WordCount:  count,
		Target:     target,
		MinAllowed: int(math.Floor(float64(target)*(1-tolerance) + boundEpsilon)),
		MaxAllowed: int(math.Ceil(float64(target)*(1+tolerance) - boundEpsilon)),
		Difference: count - target,
	}
	result.IsValid = count >= result.MinAllowed && count <= result.MaxAllowed
	if result.IsValid || target <= 0 {
		result.IsValid = true
		return result, nil
	}

	var suggestion string
	if result.Difference < 0 {
		suggestion = fmt.Sprintf("Add %d words to reach the target of %d (allowed %d-%d).", result.MinAllowed-count, target, result.MinAllowed, result.MaxAllowed)
	} else {
		suggestion = fmt.Sprintf("Remove %d words to reach the target of %d (allowed %d-%d).", count-result.MaxAllowed, target, result.MinAllowed, result.MaxAllowed)
	}
	return result, []types.Violation{{
		Rule:       RuleArticleWordCount,
		Severity:   types.SeverityWarning,
		Text:       fmt.Sprintf("Article has %d words (target %d)", count, target),
		Position:   0,
		Suggestion: suggestion,
	}}
}
