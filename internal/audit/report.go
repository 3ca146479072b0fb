package audit

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/content-validator/internal/patterns"
	"github.com/jonathan/content-validator/internal/types"
	"github.com/jonathan/content-validator/internal/validators"
)

// ValidateSection audits one piece of content and returns its report
func (r *Runner) ValidateSection(ctx context.Context, content string, vctx *types.ValidationContext) (*types.Report, error) {
	if vctx == nil {
		vctx = &types.ValidationContext{}
	}
	found, skipped, err := r.Run(ctx, content, vctx)
	if err != nil {
		return nil, err
	}

	report := types.NewReport(string(patterns.Canonical(vctx.Language)))
	report.Title = vctx.Heading()
	section := vctx.SectionKey()
	for i := range found {
		found[i].Section = section
	}
	report.Add(found...)
	report.Skipped = skipped
	report.EAVDensity = map[string]int{densityKey(section): validators.CalculateDensity(content, vctx.Language)}
	if r.enabled(validators.LanguageOutput{}) {
		detection := validators.DetectLanguage(content, vctx.Language)
		report.Detection = &detection
	}
	if r.enabled(validators.LinkInsertion{}) && vctx.Brief != nil {
		links := validators.ValidateLinkInsertion(vctx.Brief, content)
		report.Links = &links
	}

	r.log.Info().
		Str("report_id", report.ID.String()).
		Str("section", section).
		Int("violations", len(report.Violations)).
		Bool("passed", report.Passed).
		Msg("Section validated")
	return report, nil
}

// ValidateArticle audits every section with its derived context, then runs
// the article-level checks once over the joined body text
func (r *Runner) ValidateArticle(ctx context.Context, article *types.Article) (*types.Report, error) {
	if article == nil {
		return nil, &InputError{Message: "article is required"}
	}
	if err := article.Validate(); err != nil {
		return nil, &InputError{Message: "article failed validation", Cause: err}
	}

	var sectionLevel, articleLevel []validators.Validator
	for _, v := range r.validators {
		if validators.IsArticleLevel(v) {
			articleLevel = append(articleLevel, v)
		} else {
			sectionLevel = append(sectionLevel, v)
		}
	}

	type sectionResult struct {
		violations []types.Violation
		skipped    []types.SkippedValidator
	}
	results := make([]sectionResult, len(article.Sections))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i := range article.Sections {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			vctx := article.ContextFor(i)
			key := vctx.SectionKey()
			var res sectionResult
			for _, v := range sectionLevel {
				found, skip := r.apply(v, article.Sections[i].Content, vctx)
				if skip != nil {
					res.skipped = append(res.skipped, *skip)
					continue
				}
				for j := range found {
					found[j].Section = key
				}
				res.violations = append(res.violations, found...)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("validation cancelled: %w", err)
	}

	report := types.NewReport(string(patterns.Canonical(article.Language)))
	report.Title = article.Title
	report.EAVDensity = make(map[string]int, len(article.Sections))
	for i, res := range results {
		report.Add(res.violations...)
		report.Skipped = append(report.Skipped, res.skipped...)
		key := densityKey(article.Sections[i].Info().Key())
		report.EAVDensity[key] = validators.CalculateDensity(article.Sections[i].Content, article.Language)
	}

	body := article.BodyText()
	actx := article.ArticleContext()
	for _, v := range articleLevel {
		found, skip := r.apply(v, body, actx)
		if skip != nil {
			report.Skipped = append(report.Skipped, *skip)
			continue
		}
		report.Add(found...)
	}

	if article.TargetWords > 0 && r.enabled(validators.WordCount{}) {
		total, found := validators.ValidateArticleTotal(body, article.TargetWords, r.tolerance)
		report.WordCount = &total
		report.Add(found...)
	}
	if r.enabled(validators.LanguageOutput{}) {
		detection := validators.DetectLanguage(body, article.Language)
		report.Detection = &detection
	}
	if r.enabled(validators.LinkInsertion{}) && article.Brief != nil {
		links := validators.ValidateLinkInsertion(article.Brief, body)
		report.Links = &links
	}

	r.log.Info().
		Str("report_id", report.ID.String()).
		Int("sections", len(article.Sections)).
		Int("violations", len(report.Violations)).
		Int("skipped", len(report.Skipped)).
		Bool("passed", report.Passed).
		Msg("Article validated")
	return report, nil
}

func (r *Runner) enabled(target validators.Validator) bool {
	for _, v := range r.validators {
		if strings.EqualFold(v.Name(), target.Name()) {
			return true
		}
	}
	return false
}

func densityKey(section string) string {
	if section == "" {
		return "content"
	}
	return section
}
