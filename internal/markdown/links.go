// Package markdown extracts internal links from generated article content.
package markdown

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Link is one link found in content
type Link struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// linkSyntax is the literal [text](url) form; images are excluded by the caller
var linkSyntax = regexp.MustCompile(`(!?)\[([^\]]+)\]\(([^)\s]*)[^)]*\)`)

// ScanLinkSyntax finds every literal [text](url) occurrence, including ones a
// markdown parser would not treat as links (inside HTML blocks, for example)
func ScanLinkSyntax(content string) []Link {
	var out []Link
	for _, m := range linkSyntax.FindAllStringSubmatch(content, -1) {
		if m[1] == "!" {
			continue
		}
		out = append(out, Link{Text: m[2], URL: m[3]})
	}
	return out
}

// ExtractMarkdownLinks parses content as markdown and returns its links,
// which also covers reference-style links such as [text][ref]
func ExtractMarkdownLinks(content string) []Link {
	source := []byte(content)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var out []Link
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Link:
			out = append(out, Link{Text: nodeText(node, source), URL: string(node.Destination)})
			return ast.WalkSkipChildren, nil
		case *ast.AutoLink:
			label := string(node.Label(source))
			out = append(out, Link{Text: label, URL: string(node.URL(source))})
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return out
}

func nodeText(n ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}

// ExtractHTMLLinks returns the anchors of rendered HTML content.
// Content without an anchor tag is not parsed.
func ExtractHTMLLinks(content string) []Link {
	if !strings.Contains(strings.ToLower(content), "<a") {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil
	}
	var out []Link
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		out = append(out, Link{Text: s.Text(), URL: href})
	})
	return out
}

// AnchorTexts returns the lower-cased, trimmed anchor texts of every link in
// content, whatever syntax it was written in. Duplicates are removed; order is
// first appearance across markdown, literal and HTML links.
func AnchorTexts(content string) []string {
	var all []Link
	all = append(all, ExtractMarkdownLinks(content)...)
	all = append(all, ScanLinkSyntax(content)...)
	all = append(all, ExtractHTMLLinks(content)...)

	seen := make(map[string]bool)
	var out []string
	for _, l := range all {
		anchor := strings.ToLower(strings.TrimSpace(l.Text))
		if anchor == "" || seen[anchor] {
			continue
		}
		seen[anchor] = true
		out = append(out, anchor)
	}
	return out
}
