package crawl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"testing"
)

const indexPage = `<html><body>
<a href="../">Parent</a>
<a href="getting-started.md">getting-started.md</a>
<a href="/posts/why-go.md#intro">why-go.md</a>
<a href="getting-started.md?download=1">again</a>
<a href="drafts/wip.md">draft</a>
<a href="notes.txt">notes</a>
<a href="NOTES.MD">shouting</a>
<a href="https://other.example.com/posts/remote.md">remote</a>
<a href="mailto:me@example.com">mail</a>
</body></html>`

func TestIndexListerList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/posts/" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(indexPage))
	}))
	defer srv.Close()

	base, err := url.Parse(srv.URL + "/posts")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	names, err := NewIndexLister(base, srv.Client()).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	want := []string{"getting-started.md", "why-go.md"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("List = %v, want %v", names, want)
	}
}

func TestIndexListerMissingIndex(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	base, _ := url.Parse(srv.URL + "/posts/")
	if _, err := NewIndexLister(base, nil).List(context.Background()); err == nil {
		t.Fatalf("expected error for missing index page")
	}
}

func TestRules(t *testing.T) {
	u, _ := url.Parse("https://example.com/posts/a.md?x=1#top")

	if !IsPostFile(u) {
		t.Fatalf("expected markdown file to match")
	}
	upper, _ := url.Parse("https://example.com/posts/NOTES.MD")
	if IsPostFile(upper) {
		t.Fatalf("expected upper-case extension to be rejected")
	}
	if !IsWithin(u, "/posts/") || IsWithin(u, "/other/") {
		t.Fatalf("IsWithin mismatch")
	}
	n := NormalizeURL(u)
	if n.String() != "https://example.com/posts/a.md" {
		t.Fatalf("NormalizeURL mismatch: %s", n)
	}
	if u.RawQuery == "" {
		t.Fatalf("NormalizeURL must not modify its input")
	}
	if Filename(n) != "a.md" {
		t.Fatalf("Filename mismatch: %s", Filename(n))
	}
}
