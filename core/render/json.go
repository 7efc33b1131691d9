package render

// Builds a structured JSON export of a post: the summary card data, the
// rendered HTML, any extra YAML front matter, and the headings and links
// found in the body.

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/folio/core"
	"github.com/gaurav-prasanna/folio/core/frontmatter"
	"github.com/gaurav-prasanna/folio/core/infer"
	"github.com/gaurav-prasanna/folio/logging"
)

// JSONRenderer produces structured JSON output for a post.
type JSONRenderer struct {
	engine core.Engine
	logger logging.Logger
}

// NewJSONRenderer creates a JSONRenderer that renders HTML with engine.
func NewJSONRenderer(engine core.Engine, logger logging.Logger) *JSONRenderer {
	if engine == nil {
		engine = SimpleEngine{}
	}
	return &JSONRenderer{engine: engine, logger: logging.OrNoOp(logger)}
}

// Render converts a document into the PostJSON structure.
func (r *JSONRenderer) Render(doc core.Document) ([]byte, error) {
	html, err := r.engine.Render(doc.Content)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", doc.Slug, err)
	}

	meta, err := frontmatter.Decode(doc.Content)
	if err != nil {
		r.logger.Warn("front matter is not valid YAML, exporting without extra metadata",
			"slug", doc.Slug, "error", err)
	}

	_, body := frontmatter.Extract(doc.Content)
	markdown := strings.Join(body, "\n")

	post := core.PostJSON{
		Summary:   infer.SummarizeDocument(doc),
		PageTitle: infer.PageTitle(doc.Content),
		HTML:      html,
		Meta:      meta,
		Headings:  extractHeadings(markdown),
		Links:     extractLinks(markdown),
	}

	data, err := json.MarshalIndent(post, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

// --- Markdown parsing helpers ---

var headingRegex = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)

func extractHeadings(md string) []core.Heading {
	matches := headingRegex.FindAllStringSubmatch(md, -1)
	headings := make([]core.Heading, 0, len(matches))
	for _, m := range matches {
		headings = append(headings, core.Heading{
			Level: len(m[1]),
			Text:  strings.TrimSpace(m[2]),
		})
	}
	return headings
}

func extractLinks(md string) []core.Link {
	matches := mdLinkRegex.FindAllStringSubmatch(md, -1)
	links := make([]core.Link, 0, len(matches))
	for _, m := range matches {
		links = append(links, core.Link{
			Text: m[1],
			Href: m[2],
		})
	}
	return links
}
