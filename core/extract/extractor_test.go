package extract

import (
	"strings"
	"testing"
)

const articlePage = `<!DOCTYPE html>
<html>
<head>
<title>Site Title | Example</title>
<meta property="article:published_time" content="2024-03-05T10:00:00Z">
<meta name="description" content="A short description.">
</head>
<body>
<nav><a href="/">Home</a></nav>
<article>
<header><h1>Why Go</h1><time datetime="2024-01-01">Jan 1</time></header>
<p>Go is <strong>simple</strong>.</p>
<img src="x.png">
<script>alert(1)</script>
</article>
<footer>Copyright</footer>
</body>
</html>`

func TestArticle(t *testing.T) {
	a, err := New().Article(articlePage)
	if err != nil {
		t.Fatalf("Article: %v", err)
	}

	if a.Meta.Title != "Why Go" {
		t.Fatalf("unexpected title %q", a.Meta.Title)
	}
	if a.Meta.Date != "2024-03-05" {
		t.Fatalf("unexpected date %q", a.Meta.Date)
	}
	if a.Meta.Excerpt != "A short description." {
		t.Fatalf("unexpected excerpt %q", a.Meta.Excerpt)
	}

	for _, noise := range []string{"<h1>", "<img", "<script", "Home", "Copyright"} {
		if strings.Contains(a.Content, noise) {
			t.Fatalf("content still contains %q: %s", noise, a.Content)
		}
	}
	if !strings.Contains(a.Content, "<p>Go is <strong>simple</strong>.</p>") {
		t.Fatalf("article body missing: %s", a.Content)
	}
}

func TestArticleFallbacks(t *testing.T) {
	page := `<html><head><title> Plain Page </title></head>
<body><p>Only text.</p><time datetime="2023-12-24">Dec 24</time></body></html>`

	a, err := New().Article(page)
	if err != nil {
		t.Fatalf("Article: %v", err)
	}
	if a.Meta.Title != "Plain Page" {
		t.Fatalf("expected <title> fallback, got %q", a.Meta.Title)
	}
	if a.Meta.Date != "2023-12-24" {
		t.Fatalf("expected <time> fallback, got %q", a.Meta.Date)
	}
	if a.Meta.Excerpt != "" {
		t.Fatalf("expected no excerpt, got %q", a.Meta.Excerpt)
	}
}

func TestExtractReturnsContentOnly(t *testing.T) {
	content, err := New().Extract(`<html><body><main><p>Main</p></main><aside class="sidebar">x</aside></body></html>`)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if content != "<p>Main</p>" {
		t.Fatalf("unexpected content %q", content)
	}
}
