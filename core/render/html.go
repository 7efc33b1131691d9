package render

import (
	"fmt"

	"github.com/gaurav-prasanna/folio/core"
	"github.com/gaurav-prasanna/folio/core/infer"
)

// HTMLRenderer writes the full-post fragment of a document.
type HTMLRenderer struct {
	engine core.Engine
}

// NewHTMLRenderer creates an HTMLRenderer using engine.
func NewHTMLRenderer(engine core.Engine) *HTMLRenderer {
	if engine == nil {
		engine = SimpleEngine{}
	}
	return &HTMLRenderer{engine: engine}
}

// Render returns the rendered post body.
func (r *HTMLRenderer) Render(doc core.Document) ([]byte, error) {
	html, err := r.engine.Render(doc.Content)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", doc.Slug, err)
	}
	return []byte(html), nil
}

// Extension returns the file extension for HTML output.
func (r *HTMLRenderer) Extension() string {
	return ".html"
}

// SummaryRenderer writes the list-view card of a document.
type SummaryRenderer struct {
	PostPage string
}

// NewSummaryRenderer creates a SummaryRenderer linking to postPage.
func NewSummaryRenderer(postPage string) *SummaryRenderer {
	return &SummaryRenderer{PostPage: postPage}
}

// Render returns the summary card for doc.
func (r *SummaryRenderer) Render(doc core.Document) ([]byte, error) {
	return []byte(SummaryCard(infer.SummarizeDocument(doc), r.PostPage)), nil
}

// Extension returns the file extension for card output.
func (r *SummaryRenderer) Extension() string {
	return ".card.html"
}
