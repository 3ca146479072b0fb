package validators

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/content-validator/internal/markdown"
	"github.com/jonathan/content-validator/internal/types"
)

const (
	linkPassRate       = 50
	missingLinksListed = 5
)

// LinkInsertion checks that the internal links the brief asks for were inserted
type LinkInsertion struct{}

// Name implements Validator
func (LinkInsertion) Name() string { return "link_insertion" }

// ArticleLevel implements ArticleScoped
func (LinkInsertion) ArticleLevel() bool { return true }

// Validate implements Validator
func (LinkInsertion) Validate(content string, ctx *types.ValidationContext) []types.Violation {
	var brief *types.Brief
	if ctx != nil {
		brief = ctx.Brief
	}
	result := ValidateLinkInsertion(brief, content)
	// the rate is rounded, so 199 of 200 reads as 100
	if len(result.MissingLinks) == 0 {
		return nil
	}

	listed := result.MissingLinks
	if len(listed) > missingLinksListed {
		listed = listed[:missingLinksListed]
	}
	out := []types.Violation{violation(RuleLinksPartiallyInserted, types.SeverityWarning,
		fmt.Sprintf("%d of %d expected internal links inserted", result.Found, result.Expected), 0,
		fmt.Sprintf("Insert the missing internal links: %s.", strings.Join(listed, ", ")))}
	if result.Found == 0 {
		out = append(out, violation(RuleLinksNotInserted, types.SeverityError,
			fmt.Sprintf("None of the %d expected internal links were inserted", result.Expected), 0,
			"Add the internal links from the brief as markdown links, e.g. [anchor text](/target-page)."))
	}
	return out
}

// ValidateLinkInsertion compares the brief's expected links with the anchors in content.
// An anchor matches when either text contains the other, ignoring case.
// A brief without expected links always passes with rate 100.
func ValidateLinkInsertion(brief *types.Brief, content string) types.LinkInsertionResult {
	expected := brief.ExpectedLinks()
	if len(expected) == 0 {
		return types.LinkInsertionResult{InsertionRate: 100, Passed: true}
	}

	anchors := markdown.AnchorTexts(content)
	result := types.LinkInsertionResult{Expected: len(expected)}
	for _, link := range expected {
		want := strings.ToLower(strings.TrimSpace(link.AnchorText))
		if anchor, ok := findAnchor(anchors, want); ok {
			result.Found++
			result.FoundAnchors = append(result.FoundAnchors, anchor)
			continue
		}
		result.MissingLinks = append(result.MissingLinks, link.AnchorText)
	}
	result.InsertionRate = int(math.Round(float64(result.Found) / float64(result.Expected) * 100))
	result.Passed = result.InsertionRate >= linkPassRate
	return result
}

func findAnchor(anchors []string, want string) (string, bool) {
	for _, a := range anchors {
		if a == want || strings.Contains(a, want) || strings.Contains(want, a) {
			return a, true
		}
	}
	return "", false
}
