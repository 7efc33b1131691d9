// Package normalize implements the Normalizer interface.
// It converts an imported HTML fragment into the markdown dialect the
// full-post renderer understands: ATX headings up to level three, **bold**,
// *italic*, `code`, [links](url) and blank-line paragraphs.
package normalize

import (
	"fmt"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/gaurav-prasanna/folio/core"
)

var (
	deepHeadingRegex = regexp.MustCompile(`(?m)^#{4,6} `)
	blankRunRegex    = regexp.MustCompile(`\n{3,}`)
	trailingWSRegex  = regexp.MustCompile(`(?m)[ \t]+$`)
)

var _ core.Normalizer = (*MarkdownNormalizer)(nil)

// MarkdownNormalizer converts HTML to Markdown using html-to-markdown.
type MarkdownNormalizer struct{}

// New creates a MarkdownNormalizer.
func New() *MarkdownNormalizer {
	return &MarkdownNormalizer{}
}

// Normalize converts a cleaned HTML fragment into Markdown.
func (n *MarkdownNormalizer) Normalize(html string) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return Tidy(markdown), nil
}

// Tidy folds headings below level three into "###", strips trailing
// whitespace and collapses runs of blank lines. The result ends in exactly
// one newline, or is empty.
func Tidy(markdown string) string {
	markdown = strings.ReplaceAll(markdown, "\r\n", "\n")
	markdown = deepHeadingRegex.ReplaceAllLiteralString(markdown, "### ")
	markdown = trailingWSRegex.ReplaceAllLiteralString(markdown, "")
	markdown = blankRunRegex.ReplaceAllLiteralString(markdown, "\n\n")
	markdown = strings.TrimSpace(markdown)
	if markdown == "" {
		return ""
	}
	return markdown + "\n"
}
