// Package validators implements the rule-based content checks run over generated article text.
//
// Every validator is a stateless value: Validate is a pure function of its
// arguments, so one instance may be shared by any number of goroutines.
package validators

import (
	"fmt"
	"strings"

	"github.com/jonathan/content-validator/internal/textutil"
	"github.com/jonathan/content-validator/internal/types"
)

// Rule identifiers. Consumers key on these; never rename one.
const (
	RuleStopWords         = "STOP_WORDS"
	RuleOpinions          = "OPINIONS"
	RuleAnalogies         = "ANALOGIES"
	RulePassiveVoice      = "PASSIVE_VOICE"
	RuleFutureForFacts    = "FUTURE_FOR_FACTS"
	RuleAmbiguousPronouns = "AMBIGUOUS_PRONOUNS"
	RuleFluffOpeners      = "FLUFF_OPENERS"

	RuleModalityUncertainty = "MODALITY_UNCERTAINTY"

	RuleFirstSentenceNoDefinitiveVerb = "FIRST_SENTENCE_NO_DEFINITIVE_VERB"
	RuleHeadingAnswerMissing          = "HEADING_ANSWER_MISSING"
	RuleCenterpieceDelayed            = "CENTERPIECE_DELAYED"
	RuleCenterpieceNoDefinition       = "CENTERPIECE_NO_DEFINITION"

	RuleEntityAsSubject = "ENTITY_AS_SUBJECT"

	RuleContextualBridgeMissing = "CONTEXTUAL_BRIDGE_MISSING"
	RuleCrossSectionTransition  = "CROSS_SECTION_TRANSITION"

	RuleEAVDensity = "EAV_DENSITY"

	RuleArticleWordCount    = "G1_ARTICLE_WORD_COUNT"
	RuleIntroWordCount      = "G2_INTRO_WORD_COUNT"
	RuleCoreWordCount       = "G3_CORE_WORD_COUNT"
	RuleConclusionWordCount = "G4_CONCLUSION_WORD_COUNT"

	RuleQueryOrdering         = "QUERY_ORDERING"
	RuleQueryOrderingCategory = "QUERY_ORDERING_CATEGORY"

	RuleLanguageOutput = "S1_LANGUAGE_OUTPUT"

	RuleLinksPartiallyInserted = "IL-01"
	RuleLinksNotInserted       = "IL-02"
)

// excerptLength bounds the offending text copied into a violation
const excerptLength = 100

// Validator is one independent content check
type Validator interface {
	// Name is the stable identifier used to enable or disable the validator
	Name() string
	// Validate returns the defects found in content. It never mutates ctx.
	Validate(content string, ctx *types.ValidationContext) []types.Violation
}

// ArticleScoped is implemented by validators that judge the article as a whole.
// An article audit runs them once over the full text instead of once per section.
type ArticleScoped interface {
	ArticleLevel() bool
}

// IsArticleLevel reports whether v should run once per article
func IsArticleLevel(v Validator) bool {
	scoped, ok := v.(ArticleScoped)
	return ok && scoped.ArticleLevel()
}

// Default returns every validator in the order an audit runs them
func Default() []Validator {
	return []Validator{
		ProhibitedLanguage{},
		Modality{},
		Centerpiece{},
		Structure{},
		ContextualBridge{},
		EAVDensity{},
		WordCount{},
		QueryOrdering{},
		LanguageOutput{},
		LinkInsertion{},
	}
}

// Names returns the names of the given validators
func Names(vs []Validator) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Name())
	}
	return out
}

// Select filters vs by name. An empty enabled list keeps everything;
// names in disabled are always dropped. Matching ignores case.
func Select(vs []Validator, enabled, disabled []string) ([]Validator, error) {
	known := make(map[string]bool, len(vs))
	for _, v := range vs {
		known[strings.ToLower(v.Name())] = true
	}
	for _, name := range append(append([]string{}, enabled...), disabled...) {
		n := strings.ToLower(strings.TrimSpace(name))
		if n != "" && !known[n] {
			return nil, fmt.Errorf("unknown validator %q (known: %s)", name, strings.Join(Names(vs), ", "))
		}
	}

	want := toSet(enabled)
	drop := toSet(disabled)
	var out []Validator
	for _, v := range vs {
		name := strings.ToLower(v.Name())
		if len(want) > 0 && !want[name] {
			continue
		}
		if drop[name] {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		if n = strings.ToLower(strings.TrimSpace(n)); n != "" {
			set[n] = true
		}
	}
	return set
}

// violation builds a violation with the excerpt truncated
func violation(rule string, severity types.Severity, text string, position int, suggestion string) types.Violation {
	return types.Violation{
		Rule:       rule,
		Severity:   severity,
		Text:       textutil.Truncate(strings.TrimSpace(text), excerptLength),
		Position:   position,
		Suggestion: suggestion,
	}
}
