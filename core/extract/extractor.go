// Package extract implements the Extractor interface for importing
// articles published elsewhere as posts. It isolates the article body from
// a full HTML page by:
//  1. Finding the best content container (<article>, <main>, or <body>)
//  2. Removing noise elements (nav, footer, scripts, media, etc.)
//
// and reads the post metadata (title, date, description) from the page head.
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/folio/core"
)

// noiseSelectors are HTML elements removed before extraction.
// The full-post renderer has no use for media or interactive elements.
var noiseSelectors = []string{
	"script", "style", "noscript",
	"nav", "footer", "header",
	"img", "picture", "figure", "figcaption",
	"iframe", "video", "audio",
	"svg", "canvas",
	"form", "button", "input", "select", "textarea",
	".sidebar", ".menu", ".navigation", ".ads", ".advertisement",
	".share", ".comments",
}

// Article is an imported page split into post metadata and body HTML.
type Article struct {
	Meta    core.FrontMatter
	Content string
}

var _ core.Extractor = (*HTMLExtractor)(nil)

// HTMLExtractor strips noise from HTML and returns the article fragment.
type HTMLExtractor struct{}

// New creates an HTMLExtractor.
func New() *HTMLExtractor {
	return &HTMLExtractor{}
}

// Extract returns only the article body of html.
func (e *HTMLExtractor) Extract(html string) (string, error) {
	a, err := e.Article(html)
	if err != nil {
		return "", err
	}
	return a.Content, nil
}

// Article parses html once and returns both its metadata and body. The
// article heading is taken as the title and dropped from the content so it
// is not repeated under the front matter.
func (e *HTMLExtractor) Article(html string) (Article, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Article{}, fmt.Errorf("parsing HTML: %w", err)
	}

	meta := core.FrontMatter{
		Title:   firstNonEmpty(metaContent(doc, "og:title"), doc.Find("head title").First().Text()),
		Date:    publishedDate(doc),
		Excerpt: firstNonEmpty(metaContent(doc, "og:description"), metaContent(doc, "description")),
	}

	if h1 := articleHeading(doc); h1 != nil {
		if text := strings.TrimSpace(h1.Text()); text != "" {
			meta.Title = text
		}
		h1.Remove()
	}
	meta.Title = strings.TrimSpace(meta.Title)

	// Remove noise elements (operates on the whole document).
	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	var content *goquery.Selection
	for _, tag := range []string{"article", "main", "body"} {
		sel := doc.Find(tag)
		if sel.Length() > 0 {
			content = sel.First()
			break
		}
	}
	if content == nil {
		return Article{}, fmt.Errorf("no content container found in HTML")
	}

	result, err := content.Html()
	if err != nil {
		return Article{}, fmt.Errorf("serializing content: %w", err)
	}
	return Article{Meta: meta, Content: strings.TrimSpace(result)}, nil
}

// articleHeading returns the heading of the article, preferring one inside
// <article> or <main> over a page-level <h1>.
func articleHeading(doc *goquery.Document) *goquery.Selection {
	for _, sel := range []string{"article h1", "main h1", "h1"} {
		if h1 := doc.Find(sel).First(); h1.Length() > 0 {
			return h1
		}
	}
	return nil
}

// publishedDate looks for the publication date in the usual places and
// keeps only the calendar date of a timestamp.
func publishedDate(doc *goquery.Document) string {
	date := metaContent(doc, "article:published_time")
	if date == "" {
		if dt, ok := doc.Find("time[datetime]").First().Attr("datetime"); ok {
			date = dt
		}
	}
	date = strings.TrimSpace(date)
	if i := strings.IndexByte(date, 'T'); i == len("2006-01-02") {
		date = date[:i]
	}
	return date
}

// metaContent returns the content of a <meta> tag matched by property or name.
func metaContent(doc *goquery.Document, key string) string {
	sel := doc.Find(fmt.Sprintf(`meta[property=%q], meta[name=%q]`, key, key)).First()
	v, _ := sel.Attr("content")
	return strings.TrimSpace(v)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
