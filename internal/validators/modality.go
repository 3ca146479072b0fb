package validators

import (
	"fmt"

	"github.com/jonathan/content-validator/internal/patterns"
	"github.com/jonathan/content-validator/internal/types"
)

// Modality flags uncertain modal language that weakens factual claims.
// Sections whose heading is about risks or possibilities are exempt.
type Modality struct{}

// Name implements Validator
func (Modality) Name() string { return "modality" }

// Validate implements Validator
func (Modality) Validate(content string, ctx *types.ValidationContext) []types.Violation {
	set := patterns.Modality(ctx.LanguageOrDefault())
	if set.IsPossibilityContext(ctx.Heading()) {
		return nil
	}
	var out []types.Violation
	for _, m := range set.Uncertainty.FindAll(content) {
		out = append(out, violation(RuleModalityUncertainty, types.SeverityWarning, m.Text, m.Start,
			fmt.Sprintf("Uncertain modality %q weakens the claim. Use \"is/are\" for facts, and keep \"can/may\" for genuine possibilities.", m.Text)))
	}
	return out
}
