// Package infer fills in the post metadata a document leaves out: a title
// from the first heading or the slug, an excerpt from the body, and a date
// placeholder.
package infer

import (
	"path"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gaurav-prasanna/folio/core"
	"github.com/gaurav-prasanna/folio/core/frontmatter"
)

const (
	// Extension is the filename extension of post documents.
	Extension = ".md"
	// ExcerptLength is the maximum number of characters kept in a derived excerpt.
	ExcerptLength = 150
	// Ellipsis is appended to an excerpt that was truncated.
	Ellipsis = "..."
	// DatePlaceholder stands in for a missing date.
	DatePlaceholder = "Recent"
)

// Slug derives a post slug from its filename.
func Slug(filename string) string {
	return strings.TrimSuffix(path.Base(filename), Extension)
}

// Filename is the inverse of Slug.
func Filename(slug string) string {
	return slug + Extension
}

// Summarize builds the summary card data for a post.
func Summarize(meta core.FrontMatter, body []string, slug string) core.PostSummary {
	title := meta.Title
	if title == "" {
		if len(body) > 0 && strings.HasPrefix(body[0], "#") {
			title = stripHeading(body[0])
			body = body[1:]
		}
		if title == "" {
			title = TitleFromSlug(slug)
		}
	}

	excerpt := meta.Excerpt
	if excerpt == "" {
		excerpt = Excerpt(body)
	}

	date := meta.Date
	if date == "" {
		date = DatePlaceholder
	}

	return core.PostSummary{
		Title:   title,
		Date:    date,
		Excerpt: excerpt,
		Slug:    slug,
	}
}

// SummarizeDocument extracts front matter from doc and summarizes it.
func SummarizeDocument(doc core.Document) core.PostSummary {
	meta, body := frontmatter.Extract(doc.Content)
	return Summarize(meta, body, doc.Slug)
}

var titleCaser = cases.Title(language.Und, cases.NoLower)

// TitleFromSlug turns "my-first-post" into "My First Post". Only the first
// letter of each word is touched.
func TitleFromSlug(slug string) string {
	return titleCaser.String(strings.ReplaceAll(slug, "-", " "))
}

var markupStripper = strings.NewReplacer("#", "", "*", "", "`", "")

// Excerpt joins lines into plain text and truncates it to ExcerptLength
// characters, appending Ellipsis when anything was cut.
func Excerpt(lines []string) string {
	text := strings.TrimSpace(markupStripper.Replace(strings.Join(lines, " ")))
	if utf8.RuneCountInString(text) <= ExcerptLength {
		return text
	}
	return string([]rune(text)[:ExcerptLength]) + Ellipsis
}

// PageTitle returns the display title of a full post: the front-matter
// title if there is one, otherwise the first heading of the body. It
// returns "" when neither exists.
func PageTitle(content string) string {
	meta, body := frontmatter.Extract(content)
	if meta.Title != "" {
		return meta.Title
	}
	for _, line := range body {
		if strings.HasPrefix(line, "#") {
			return stripHeading(line)
		}
	}
	return ""
}

// stripHeading removes the leading run of '#' and the whitespace around the
// heading text, including the '\r' of CRLF lines.
func stripHeading(line string) string {
	return strings.TrimFunc(strings.TrimLeft(line, "#"), unicode.IsSpace)
}
