package validators

import (
	"fmt"
	"strings"

	"github.com/jonathan/content-validator/internal/patterns"
	"github.com/jonathan/content-validator/internal/textutil"
	"github.com/jonathan/content-validator/internal/types"
)

const (
	structureMinSentences = 3
	entitySubjectMinRatio = 0.3
)

// Structure checks how often the central entity carries the sentence.
// A sentence counts when it opens with the entity, opens with an article and
// the entity, or mentions the entity anywhere. Downstream thresholds are
// calibrated against that broad count.
type Structure struct{}

// Name implements Validator
func (Structure) Name() string { return "structure" }

// Validate implements Validator
func (Structure) Validate(content string, ctx *types.ValidationContext) []types.Violation {
	entity := strings.ToLower(ctx.CentralEntity())
	if entity == "" {
		return nil
	}
	sentences := textutil.SplitSentences(content)
	if len(sentences) < structureMinSentences {
		return nil
	}
	prefixes := patterns.Structure(ctx.LanguageOrDefault()).ArticlePrefixes

	subject := 0
	for _, s := range sentences {
		if entityLeads(strings.ToLower(s.Text), entity, prefixes) {
			subject++
		}
	}
	ratio := float64(subject) / float64(len(sentences))
	if ratio >= entitySubjectMinRatio {
		return nil
	}
	return []types.Violation{violation(RuleEntityAsSubject, types.SeverityWarning, sentences[0].Text, 0,
		fmt.Sprintf("Only %d of %d sentences (%.0f%%) use %q as the subject; aim for at least %.0f%%.",
			subject, len(sentences), ratio*100, ctx.CentralEntity(), entitySubjectMinRatio*100))}
}

func entityLeads(sentence, entity string, prefixes []string) bool {
	if strings.HasPrefix(sentence, entity) {
		return true
	}
	for _, p := range prefixes {
		sep := " "
		if strings.HasSuffix(p, "'") {
			sep = ""
		}
		if strings.HasPrefix(sentence, p+sep+entity) {
			return true
		}
	}
	return strings.Contains(sentence, entity)
}
