package validators

import (
	"fmt"

	"github.com/jonathan/content-validator/internal/patterns"
	"github.com/jonathan/content-validator/internal/textutil"
	"github.com/jonathan/content-validator/internal/types"
)

// ProhibitedLanguage flags filler words, opinions, analogies, passive and
// future constructions, unresolved pronouns and fluff openers
type ProhibitedLanguage struct{}

// Name implements Validator
func (ProhibitedLanguage) Name() string { return "prohibited_language" }

// Validate implements Validator. Output follows family order, then occurrence order.
func (ProhibitedLanguage) Validate(content string, ctx *types.ValidationContext) []types.Violation {
	if content == "" {
		return nil
	}
	set := patterns.Prohibited(ctx.LanguageOrDefault())
	var out []types.Violation

	for _, m := range set.StopWords.FindAll(content) {
		out = append(out, violation(RuleStopWords, types.SeverityWarning, m.Text, m.Start,
			fmt.Sprintf("Remove the filler word %q; it adds no information.", m.Text)))
	}
	for _, m := range set.Opinions.FindAll(content) {
		out = append(out, violation(RuleOpinions, types.SeverityError, m.Text, m.Start,
			fmt.Sprintf("Replace the opinion %q with a verifiable statement of fact.", m.Text)))
	}
	for _, m := range set.Analogies.FindAll(content) {
		out = append(out, violation(RuleAnalogies, types.SeverityError, m.Text, m.Start,
			fmt.Sprintf("Drop the analogy %q and describe the entity directly.", m.Text)))
	}
	for _, m := range set.PassiveVoice.FindAll(content) {
		out = append(out, violation(RulePassiveVoice, types.SeverityWarning, m.Text, m.Start,
			fmt.Sprintf("Rewrite %q in active voice with the entity as subject.", m.Text)))
	}
	for _, m := range set.FutureForFacts.FindAll(content) {
		out = append(out, violation(RuleFutureForFacts, types.SeverityWarning, m.Text, m.Start,
			fmt.Sprintf("State facts in the present tense instead of %q.", m.Text)))
	}
	for _, s := range textutil.SplitSentences(content) {
		m, ok := set.AmbiguousPronouns.MatchPrefix(s.Text)
		if !ok {
			continue
		}
		out = append(out, violation(RuleAmbiguousPronouns, types.SeverityWarning, s.Text, s.Start+m.Start,
			fmt.Sprintf("Sentence starts with %q; name the entity instead of using a pronoun.", m.Text)))
	}
	if m, ok := set.FluffOpeners.MatchPrefix(content); ok {
		out = append(out, violation(RuleFluffOpeners, types.SeverityError, m.Text, m.Start,
			fmt.Sprintf("Remove the opener %q and start with the answer.", m.Text)))
	}
	return out
}
