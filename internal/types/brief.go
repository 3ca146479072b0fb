package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// InternalLink is a link the brief expects the writer to insert
type InternalLink struct {
	AnchorText  string `json:"anchorText"`
	TargetTopic string `json:"targetTopic,omitempty"`
	URL         string `json:"url,omitempty"`
	Annotation  string `json:"annotation,omitempty"`
}

// internalLinkWire accepts both camelCase and snake_case keys used by different brief producers
type internalLinkWire struct {
	AnchorText      string `json:"anchorText" yaml:"anchorText"`
	AnchorTextSnake string `json:"anchor_text" yaml:"anchor_text"`
	Anchor          string `json:"anchor" yaml:"anchor"`
	TargetTopic     string `json:"targetTopic" yaml:"targetTopic"`
	TargetSnake     string `json:"target_topic" yaml:"target_topic"`
	URL             string `json:"url" yaml:"url"`
	Annotation      string `json:"annotation" yaml:"annotation"`
}

func (w internalLinkWire) link() InternalLink {
	return InternalLink{
		AnchorText:  firstNonEmpty(w.AnchorText, w.AnchorTextSnake, w.Anchor),
		TargetTopic: firstNonEmpty(w.TargetTopic, w.TargetSnake),
		URL:         w.URL,
		Annotation:  w.Annotation,
	}
}

// UnmarshalJSON accepts anchorText, anchor_text or anchor as the anchor key
func (l *InternalLink) UnmarshalJSON(data []byte) error {
	var w internalLinkWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*l = w.link()
	return nil
}

// UnmarshalYAML accepts anchorText, anchor_text or anchor as the anchor key
func (l *InternalLink) UnmarshalYAML(node *yaml.Node) error {
	var w internalLinkWire
	if err := node.Decode(&w); err != nil {
		return err
	}
	*l = w.link()
	return nil
}

// ContextualBridge holds the links a brief asks to bridge into other topics.
// Producers emit it either as a bare array of links or as a section object with a links field.
type ContextualBridge struct {
	Type    string         `json:"type,omitempty"`
	Content string         `json:"content,omitempty"`
	Links   []InternalLink `json:"links,omitempty"`
}

type contextualBridgeObject struct {
	Type    string         `json:"type" yaml:"type"`
	Content string         `json:"content" yaml:"content"`
	Links   []InternalLink `json:"links" yaml:"links"`
}

// UnmarshalJSON decodes either the array shape or the section-with-links shape
func (b *ContextualBridge) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*b = ContextualBridge{}
		return nil
	}
	if trimmed[0] == '[' {
		var links []InternalLink
		if err := json.Unmarshal(trimmed, &links); err != nil {
			return fmt.Errorf("failed to decode contextual bridge links: %w", err)
		}
		*b = ContextualBridge{Links: links}
		return nil
	}
	var obj contextualBridgeObject
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return fmt.Errorf("failed to decode contextual bridge section: %w", err)
	}
	*b = ContextualBridge{Type: obj.Type, Content: obj.Content, Links: obj.Links}
	return nil
}

// UnmarshalYAML decodes either the sequence shape or the mapping shape
func (b *ContextualBridge) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var links []InternalLink
		if err := node.Decode(&links); err != nil {
			return fmt.Errorf("failed to decode contextual bridge links: %w", err)
		}
		*b = ContextualBridge{Links: links}
		return nil
	case yaml.MappingNode:
		var obj contextualBridgeObject
		if err := node.Decode(&obj); err != nil {
			return fmt.Errorf("failed to decode contextual bridge section: %w", err)
		}
		*b = ContextualBridge{Type: obj.Type, Content: obj.Content, Links: obj.Links}
		return nil
	default:
		*b = ContextualBridge{}
		return nil
	}
}

// Brief is the subset of the content brief the validators read
type Brief struct {
	Title                  string            `json:"title,omitempty" yaml:"title,omitempty"`
	TargetKeyword          string            `json:"targetKeyword,omitempty" yaml:"targetKeyword,omitempty"`
	ContextualBridge       *ContextualBridge `json:"contextualBridge,omitempty" yaml:"contextualBridge,omitempty"`
	SuggestedInternalLinks []InternalLink    `json:"suggested_internal_links,omitempty" yaml:"suggested_internal_links,omitempty"`
}

// ExpectedLinks merges bridge links and suggested links, de-duplicated by anchor text ignoring case.
// Links without anchor text are dropped. Order is bridge links first, then suggestions.
func (b *Brief) ExpectedLinks() []InternalLink {
	if b == nil {
		return nil
	}
	var candidates []InternalLink
	if b.ContextualBridge != nil {
		candidates = append(candidates, b.ContextualBridge.Links...)
	}
	candidates = append(candidates, b.SuggestedInternalLinks...)

	seen := make(map[string]bool)
	var out []InternalLink
	for _, link := range candidates {
		key := strings.ToLower(strings.TrimSpace(link.AnchorText))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, link)
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
