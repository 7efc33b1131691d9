package crawl

// Helpers to filter and normalize links found on a posts index page.

import (
	"net/url"
	"path"
	"strings"

	"github.com/gaurav-prasanna/folio/core/infer"
)

// IsSameHost checks if the given URL belongs to the specified host.
func IsSameHost(u *url.URL, host string) bool {
	return u.Host == host
}

// IsPostFile checks if a URL points to a markdown post. The extension is
// matched exactly, as infer.Slug only strips a lowercase ".md".
func IsPostFile(u *url.URL) bool {
	return path.Ext(u.Path) == infer.Extension
}

// IsWithin checks if a URL is directly inside the directory dir (which must
// end in "/"). Links into subdirectories or parents are rejected.
func IsWithin(u *url.URL, dir string) bool {
	if !strings.HasPrefix(u.Path, dir) {
		return false
	}
	return !strings.Contains(strings.TrimPrefix(u.Path, dir), "/")
}

// NormalizeURL strips query strings and fragments for deduplication.
func NormalizeURL(u *url.URL) *url.URL {
	n := *u
	n.Fragment = ""
	n.RawQuery = ""
	return &n
}

// Filename returns the unescaped last path segment of u.
func Filename(u *url.URL) string {
	return path.Base(u.Path)
}
