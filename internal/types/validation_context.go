// Package types provides type definitions for structured data used throughout the content-validator system.
package types

import (
	"strings"

	"github.com/jonathan/content-validator/internal/textutil"
)

// Content zones used by the generation pipeline
const (
	ZoneMain          = "MAIN"
	ZoneSupplementary = "SUPPLEMENTARY"
	ZoneCore          = "CORE"
)

// SectionInfo describes the section being validated
type SectionInfo struct {
	Heading     string `json:"heading" yaml:"heading"`
	Level       int    `json:"level" yaml:"level"`
	ContentZone string `json:"content_zone,omitempty" yaml:"content_zone,omitempty"`
	SectionKey  string `json:"section_key,omitempty" yaml:"section_key,omitempty"`
	FormatCode  string `json:"format_code,omitempty" yaml:"format_code,omitempty"`
}

// Key returns the section key, deriving a slug from the heading when none was assigned
func (s *SectionInfo) Key() string {
	if s == nil {
		return ""
	}
	if s.SectionKey != "" {
		return s.SectionKey
	}
	if strings.TrimSpace(s.Heading) == "" {
		return ""
	}
	return textutil.Slugify(s.Heading)
}

// PreviousSection is the section immediately before the one being validated
type PreviousSection struct {
	Heading string `json:"heading" yaml:"heading"`
	Content string `json:"content,omitempty" yaml:"content,omitempty"`
}

// BusinessInfo carries project level metadata
type BusinessInfo struct {
	SeedKeyword    string `json:"seedKeyword,omitempty" yaml:"seedKeyword,omitempty"`
	ProjectName    string `json:"projectName,omitempty" yaml:"projectName,omitempty"`
	Industry       string `json:"industry,omitempty" yaml:"industry,omitempty"`
	TargetAudience string `json:"targetAudience,omitempty" yaml:"targetAudience,omitempty"`
	Region         string `json:"region,omitempty" yaml:"region,omitempty"`
}

// SectionRef is a lightweight reference to a section used for article-wide checks
type SectionRef struct {
	Heading           string `json:"heading" yaml:"heading"`
	Level             int    `json:"level,omitempty" yaml:"level,omitempty"`
	ContentZone       string `json:"content_zone,omitempty" yaml:"content_zone,omitempty"`
	SectionKey        string `json:"section_key,omitempty" yaml:"section_key,omitempty"`
	QueryPriority     int    `json:"query_priority,omitempty" yaml:"query_priority,omitempty"`
	AttributeCategory string `json:"attribute_category,omitempty" yaml:"attribute_category,omitempty"`
}

// ValidationContext is the read-only input describing where content sits.
// Validators never write to it, so one context may be shared across goroutines.
type ValidationContext struct {
	Language        string           `json:"language,omitempty" yaml:"language,omitempty"`
	Section         *SectionInfo     `json:"section,omitempty" yaml:"section,omitempty"`
	PreviousSection *PreviousSection `json:"previousSection,omitempty" yaml:"previousSection,omitempty"`
	BusinessInfo    *BusinessInfo    `json:"businessInfo,omitempty" yaml:"businessInfo,omitempty"`
	Brief           *Brief           `json:"brief,omitempty" yaml:"brief,omitempty"`
	AllSections     []SectionRef     `json:"allSections,omitempty" yaml:"allSections,omitempty"`
	SectionIndex    int              `json:"sectionIndex,omitempty" yaml:"sectionIndex,omitempty"`
	TotalSections   int              `json:"totalSections,omitempty" yaml:"totalSections,omitempty"`
	IsYMYL          bool             `json:"isYMYL,omitempty" yaml:"isYMYL,omitempty"`
}

// Heading returns the section heading or "" when no section is set
func (c *ValidationContext) Heading() string {
	if c == nil || c.Section == nil {
		return ""
	}
	return c.Section.Heading
}

// Level returns the section heading level or 0
func (c *ValidationContext) Level() int {
	if c == nil || c.Section == nil {
		return 0
	}
	return c.Section.Level
}

// Zone returns the upper-cased content zone or ""
func (c *ValidationContext) Zone() string {
	if c == nil || c.Section == nil {
		return ""
	}
	return strings.ToUpper(strings.TrimSpace(c.Section.ContentZone))
}

// IsSupplementary reports whether the section sits in the supplementary zone
func (c *ValidationContext) IsSupplementary() bool {
	return c.Zone() == ZoneSupplementary
}

// LanguageOrDefault returns the configured language, "" meaning the default
func (c *ValidationContext) LanguageOrDefault() string {
	if c == nil {
		return ""
	}
	return c.Language
}

// CentralEntity returns the seed keyword the article is about, trimmed
func (c *ValidationContext) CentralEntity() string {
	if c == nil || c.BusinessInfo == nil {
		return ""
	}
	return strings.TrimSpace(c.BusinessInfo.SeedKeyword)
}

// SectionKey returns the key of the current section or ""
func (c *ValidationContext) SectionKey() string {
	if c == nil {
		return ""
	}
	return c.Section.Key()
}
