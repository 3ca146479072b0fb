package validators

import (
	"fmt"
	"strings"

	"github.com/jonathan/content-validator/internal/types"
)

const (
	queryOrderingMinSections = 3
	// volumeTolerance ignores inversions smaller than this share of the later volume
	volumeTolerance = 0.2
	// categoryInversionLimit is the share of inverted adjacent pairs tolerated
	categoryInversionLimit = 0.3
)

// categoryRank orders attribute categories from most to least distinctive
var categoryRank = map[string]int{
	"UNIQUE": 1,
	"ROOT":   2,
	"RARE":   3,
	"COMMON": 4,
}

// QueryOrdering checks that sections run from the highest search demand down.
// It uses query_priority when any section has one, else attribute categories.
type QueryOrdering struct{}

// Name implements Validator
func (QueryOrdering) Name() string { return "query_ordering" }

// ArticleLevel implements ArticleScoped
func (QueryOrdering) ArticleLevel() bool { return true }

// Validate implements Validator. Content is unused; ordering comes from ctx.AllSections.
func (QueryOrdering) Validate(_ string, ctx *types.ValidationContext) []types.Violation {
	if ctx == nil || len(ctx.AllSections) < queryOrderingMinSections {
		return nil
	}
	if v, ok := priorityOrdering(ctx.AllSections); ok {
		return v
	}
	return categoryOrdering(ctx.AllSections)
}

// priorityOrdering reports false when no section carries a priority
func priorityOrdering(sections []types.SectionRef) ([]types.Violation, bool) {
	type ranked struct {
		index  int
		volume int
	}
	var list []ranked
	for i, s := range sections {
		if s.QueryPriority > 0 {
			list = append(list, ranked{index: i, volume: s.QueryPriority})
		}
	}
	if len(list) == 0 {
		return nil, false
	}

	inversions := 0
	var first string
	for i := 1; i < len(list); i++ {
		prev, cur := list[i-1].volume, list[i].volume
		if cur > prev && float64(cur-prev) > volumeTolerance*float64(cur) {
			if inversions == 0 {
				first = sections[list[i].index].Heading
			}
			inversions++
		}
	}
	if inversions == 0 {
		return nil, true
	}
	return []types.Violation{violation(RuleQueryOrdering, types.SeverityInfo, first, 0,
		fmt.Sprintf("%d section(s) appear after a section with lower search volume. Move higher-volume sections earlier.", inversions))}, true
}

func categoryOrdering(sections []types.SectionRef) []types.Violation {
	var ranks []int
	for _, s := range sections {
		if r, ok := categoryRank[strings.ToUpper(strings.TrimSpace(s.AttributeCategory))]; ok {
			ranks = append(ranks, r)
		}
	}
	if len(ranks) < queryOrderingMinSections {
		return nil
	}
	inversions := 0
	for i := 1; i < len(ranks); i++ {
		if ranks[i] < ranks[i-1] {
			inversions++
		}
	}
	pairs := len(ranks) - 1
	if float64(inversions) <= categoryInversionLimit*float64(pairs) {
		return nil
	}
	return []types.Violation{violation(RuleQueryOrderingCategory, types.SeverityInfo, "", 0,
		fmt.Sprintf("%d of %d adjacent sections are out of category order. Order sections UNIQUE, ROOT, RARE, then COMMON.", inversions, pairs))}
}
