package render

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gaurav-prasanna/folio/core"
)

// Default page names used in generated links.
const (
	DefaultPostPage = "blog-post.html"
	DefaultListPage = "blog.html"
)

const cardFormat = `
<div class="blog-post">
    <h3><a href="%s">%s</a></h3>
    <div class="blog-meta">%s</div>
    <p class="blog-excerpt">%s</p>
</div>
`

// PostLink returns the href of the full post page for slug.
func PostLink(postPage, slug string) string {
	if postPage == "" {
		postPage = DefaultPostPage
	}
	return postPage + "?post=" + url.QueryEscape(slug)
}

// SummaryCard renders the list-view card for a post. Title, date and
// excerpt are inserted verbatim.
func SummaryCard(s core.PostSummary, postPage string) string {
	return fmt.Sprintf(cardFormat, PostLink(postPage, s.Slug), s.Title, s.Date, s.Excerpt)
}

// List concatenates the cards for summaries in order.
func List(summaries []core.PostSummary, postPage string) string {
	var b strings.Builder
	for _, s := range summaries {
		b.WriteString(SummaryCard(s, postPage))
	}
	return b.String()
}

// Loading is shown in the list container until posts are injected.
func Loading() string {
	return `<div class="loading">Loading posts...</div>`
}

// ComingSoon replaces the list when no post could be loaded.
func ComingSoon() string {
	return `
<div class="blog-post">
    <h3>Welcome to My Blog</h3>
    <div class="blog-meta">Coming Soon</div>
    <p class="blog-excerpt">Blog posts will be available soon. Stay tuned!</p>
</div>
`
}

// Unavailable replaces the list when the post listing itself failed.
func Unavailable() string {
	return `
<div class="blog-post">
    <h3>Blog Coming Soon</h3>
    <div class="blog-meta">Under Development</div>
    <p class="blog-excerpt">The blog functionality is currently being developed. Check back soon!</p>
</div>
`
}

// NotFound replaces the post content when the post could not be fetched.
func NotFound(listPage string) string {
	if listPage == "" {
		listPage = DefaultListPage
	}
	return fmt.Sprintf(`
<h2>Post Not Found</h2>
<p>Sorry, the requested blog post could not be found.</p>
<p><a href="%s">← Back to Blog</a></p>
`, listPage)
}
