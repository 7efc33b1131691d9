// Package crawl discovers the posts published under an HTTP posts
// directory by reading its index page, so the list of posts does not have
// to be maintained by hand.
package crawl

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/folio/core"
	"github.com/gaurav-prasanna/folio/core/fetch"
)

var _ core.Lister = (*IndexLister)(nil)

// IndexLister lists posts linked from a directory index page.
type IndexLister struct {
	index  *url.URL
	client *http.Client
}

// NewIndexLister creates a lister for the directory index at indexURL.
// A nil client selects the fetch package default.
func NewIndexLister(indexURL *url.URL, client *http.Client) *IndexLister {
	u := *indexURL
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return &IndexLister{index: &u, client: client}
}

// List fetches the index page and returns the linked post filenames in
// document order, without duplicates.
func (l *IndexLister) List(ctx context.Context) ([]string, error) {
	html, err := fetch.GetHTML(ctx, l.client, l.index.String())
	if err != nil {
		return nil, fmt.Errorf("reading posts index: %w", err)
	}

	links, err := extractLinks(html, l.index)
	if err != nil {
		return nil, fmt.Errorf("parsing posts index: %w", err)
	}

	seen := make(map[string]bool)
	var names []string
	for _, link := range links {
		if !IsSameHost(link, l.index.Host) || !IsWithin(link, l.index.Path) || !IsPostFile(link) {
			continue
		}
		name := Filename(NormalizeURL(link))
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names, nil
}

// extractLinks extracts all href values from <a> tags, resolving relative URLs.
func extractLinks(html string, base *url.URL) ([]*url.URL, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var links []*url.URL
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists || href == "" {
			return
		}
		if resolved := resolveURL(href, base); resolved != nil {
			links = append(links, resolved)
		}
	})

	return links, nil
}

// resolveURL resolves a potentially relative URL against a base.
func resolveURL(href string, base *url.URL) *url.URL {
	if strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "tel:") || strings.HasPrefix(href, "#") {
		return nil
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return nil
	}
	return base.ResolveReference(parsed)
}
