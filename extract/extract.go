// Package extract normalizes raw input into plain text suitable for
// tokenization.
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ignoredTags contains HTML tags whose content never feeds the tokenizer.
var ignoredTags = map[string]bool{
	"script":   true,
	"style":    true,
	"code":     true,
	"pre":      true,
	"textarea": true,
	"noscript": true,
	"head":     true,
}

// Plain trims the text and collapses every whitespace run (including
// newlines) into a single space.
func Plain(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// HTMLText extracts the readable text of an HTML document in document
// order, skipping script, style, and other non-content tags, and returns
// it whitespace-normalized.
func HTMLText(content string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	var b strings.Builder
	for _, root := range doc.Nodes {
		collectText(root, &b)
	}
	return Plain(b.String()), nil
}

// collectText walks the node tree appending text content, separating block
// boundaries with spaces.
func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.ElementNode && ignoredTags[strings.ToLower(n.Data)] {
		return
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteByte(' ')
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}
