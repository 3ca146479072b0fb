package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// ArticleSection is one generated section of an article
type ArticleSection struct {
	Heading           string `json:"heading" yaml:"heading" validate:"required"`
	Level             int    `json:"level" yaml:"level" validate:"gte=0,lte=6"`
	ContentZone       string `json:"content_zone,omitempty" yaml:"content_zone,omitempty"`
	SectionKey        string `json:"section_key,omitempty" yaml:"section_key,omitempty"`
	FormatCode        string `json:"format_code,omitempty" yaml:"format_code,omitempty"`
	QueryPriority     int    `json:"query_priority,omitempty" yaml:"query_priority,omitempty" validate:"gte=0"`
	AttributeCategory string `json:"attribute_category,omitempty" yaml:"attribute_category,omitempty"`
	Content           string `json:"content" yaml:"content"`
}

// Info returns the section metadata as seen by validators
func (s *ArticleSection) Info() *SectionInfo {
	return &SectionInfo{
		Heading:     s.Heading,
		Level:       s.Level,
		ContentZone: s.ContentZone,
		SectionKey:  s.SectionKey,
		FormatCode:  s.FormatCode,
	}
}

// Ref returns the lightweight reference used for article-wide checks
func (s *ArticleSection) Ref() SectionRef {
	return SectionRef{
		Heading:           s.Heading,
		Level:             s.Level,
		ContentZone:       s.ContentZone,
		SectionKey:        s.Info().Key(),
		QueryPriority:     s.QueryPriority,
		AttributeCategory: s.AttributeCategory,
	}
}

// Article is a full generated draft plus the metadata needed to validate it
type Article struct {
	Title        string           `json:"title,omitempty" yaml:"title,omitempty"`
	Language     string           `json:"language,omitempty" yaml:"language,omitempty"`
	TargetWords  int              `json:"target_words,omitempty" yaml:"target_words,omitempty" validate:"gte=0"`
	IsYMYL       bool             `json:"isYMYL,omitempty" yaml:"isYMYL,omitempty"`
	BusinessInfo *BusinessInfo    `json:"businessInfo,omitempty" yaml:"businessInfo,omitempty"`
	Brief        *Brief           `json:"brief,omitempty" yaml:"brief,omitempty"`
	Sections     []ArticleSection `json:"sections" yaml:"sections" validate:"required,min=1,dive"`
}

// Validate checks the structural requirements of the input document
func (a *Article) Validate() error {
	validate := validator.New()
	return validate.Struct(a)
}

// Refs returns the section references in article order
func (a *Article) Refs() []SectionRef {
	refs := make([]SectionRef, 0, len(a.Sections))
	for i := range a.Sections {
		refs = append(refs, a.Sections[i].Ref())
	}
	return refs
}

// FullText joins headings and section bodies as markdown
func (a *Article) FullText() string {
	var sb strings.Builder
	for i, s := range a.Sections {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		level := s.Level
		if level <= 0 {
			level = 2
		}
		if strings.TrimSpace(s.Heading) != "" {
			sb.WriteString(strings.Repeat("#", level))
			sb.WriteString(" ")
			sb.WriteString(s.Heading)
			sb.WriteString("\n\n")
		}
		sb.WriteString(s.Content)
	}
	return sb.String()
}

// BodyText joins the section bodies without headings
func (a *Article) BodyText() string {
	parts := make([]string, 0, len(a.Sections))
	for _, s := range a.Sections {
		parts = append(parts, s.Content)
	}
	return strings.Join(parts, "\n\n")
}

// ContextFor builds the validation context of section i.
// PreviousSection is only set when a predecessor exists.
func (a *Article) ContextFor(i int) *ValidationContext {
	s := &a.Sections[i]
	ctx := &ValidationContext{
		Language:      a.Language,
		Section:       s.Info(),
		BusinessInfo:  a.BusinessInfo,
		Brief:         a.Brief,
		AllSections:   a.Refs(),
		SectionIndex:  i,
		TotalSections: len(a.Sections),
		IsYMYL:        a.IsYMYL,
	}
	if i > 0 {
		prev := a.Sections[i-1]
		ctx.PreviousSection = &PreviousSection{Heading: prev.Heading, Content: prev.Content}
	}
	return ctx
}

// ArticleContext builds a context for checks that run once over the whole article
func (a *Article) ArticleContext() *ValidationContext {
	return &ValidationContext{
		Language:      a.Language,
		BusinessInfo:  a.BusinessInfo,
		Brief:         a.Brief,
		AllSections:   a.Refs(),
		TotalSections: len(a.Sections),
		IsYMYL:        a.IsYMYL,
	}
}
