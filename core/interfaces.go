// Package core defines the shared types and pipeline interfaces for folio.
// Each stage (fetch, extract, infer, render) is a small, testable unit;
// none of them hold state between calls.
package core

import "context"

// Document is a raw post as fetched from a source.
type Document struct {
	Filename string
	Slug     string
	Content  string
}

// FrontMatter holds the recognized metadata keys of a post.
// Keys that are absent from the document are left empty.
type FrontMatter struct {
	Title   string `json:"title,omitempty" yaml:"title,omitempty"`
	Date    string `json:"date,omitempty" yaml:"date,omitempty"`
	Excerpt string `json:"excerpt,omitempty" yaml:"excerpt,omitempty"`
}

// PostSummary is the data behind a summary card in the list view.
type PostSummary struct {
	Title   string `json:"title"`
	Date    string `json:"date"`
	Excerpt string `json:"excerpt"`
	Slug    string `json:"slug"`
}

// Heading represents a single heading found in a post body.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Link represents a hyperlink found in a post body.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// PostJSON is the structured export of a single post.
type PostJSON struct {
	Summary   PostSummary    `json:"summary"`
	PageTitle string         `json:"page_title,omitempty"`
	HTML      string         `json:"html"`
	Meta      map[string]any `json:"meta,omitempty"`
	Headings  []Heading      `json:"headings"`
	Links     []Link         `json:"links"`
}

// FetchResult holds the raw text and response metadata from a fetch.
type FetchResult struct {
	Name       string
	URL        string
	StatusCode int
	Content    string
}

// Fetcher retrieves the raw text of a post addressed by filename.
type Fetcher interface {
	Fetch(ctx context.Context, name string) (*FetchResult, error)
}

// Lister enumerates the post filenames available from a source.
type Lister interface {
	List(ctx context.Context) ([]string, error)
}

// Engine converts a raw document into a full-post HTML fragment.
type Engine interface {
	Render(content string) (string, error)
}

// Extractor pulls the main content from raw HTML, stripping noise.
type Extractor interface {
	Extract(html string) (string, error)
}

// Normalizer converts cleaned HTML into Markdown.
type Normalizer interface {
	Normalize(html string) (string, error)
}

// Renderer converts a document into a final export format.
type Renderer interface {
	Render(doc Document) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".html", ".pdf").
	Extension() string
}
