package blog

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/gaurav-prasanna/folio/core"
	"github.com/gaurav-prasanna/folio/core/render"
)

type stubFetcher struct {
	mu    sync.Mutex
	posts map[string]string
	calls []string
}

func (f *stubFetcher) Fetch(_ context.Context, name string) (*core.FetchResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()

	content, ok := f.posts[name]
	if !ok {
		return nil, errors.New("404 not found")
	}
	return &core.FetchResult{Name: name, Content: content}, nil
}

type stubLister struct {
	names []string
	err   error
}

func (l stubLister) List(context.Context) ([]string, error) { return l.names, l.err }

var fourPosts = []string{"one.md", "two.md", "three.md", "four.md"}

func TestLoadListSkipsFailedPosts(t *testing.T) {
	fetcher := &stubFetcher{posts: map[string]string{
		"two.md":  "---\ntitle: Second\ndate: 2024-02-01\n---\nBody two",
		"four.md": "# Fourth heading\nBody four",
	}}
	loader := NewLoader(Config{Fetcher: fetcher, Files: fourPosts, Concurrency: 2})

	result := loader.LoadList(context.Background())
	if result.Fallback != FallbackNone {
		t.Fatalf("unexpected fallback %v", result.Fallback)
	}
	if len(result.Posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(result.Posts))
	}
	if result.Posts[0].Slug != "two" || result.Posts[1].Slug != "four" {
		t.Fatalf("posts out of order: %+v", result.Posts)
	}
	if result.Posts[0].Title != "Second" || result.Posts[0].Date != "2024-02-01" {
		t.Fatalf("unexpected first summary: %+v", result.Posts[0])
	}
	if result.Posts[1].Title != "Fourth heading" || result.Posts[1].Date != "Recent" {
		t.Fatalf("unexpected second summary: %+v", result.Posts[1])
	}
	if got := strings.Count(result.HTML, `class="blog-post"`); got != 2 {
		t.Fatalf("expected 2 cards, got %d", got)
	}
	if strings.Index(result.HTML, "Second") > strings.Index(result.HTML, "Fourth heading") {
		t.Fatalf("cards out of order:\n%s", result.HTML)
	}
	if len(fetcher.calls) != 4 {
		t.Fatalf("expected every post to be fetched, got %v", fetcher.calls)
	}
}

func TestLoadListComingSoonWhenNothingLoads(t *testing.T) {
	loader := NewLoader(Config{Fetcher: &stubFetcher{}, Files: fourPosts})

	result := loader.LoadList(context.Background())
	if result.Fallback != FallbackComingSoon {
		t.Fatalf("expected coming soon fallback, got %v", result.Fallback)
	}
	if result.HTML != render.ComingSoon() {
		t.Fatalf("unexpected HTML %q", result.HTML)
	}
	if len(result.Posts) != 0 {
		t.Fatalf("expected no posts, got %+v", result.Posts)
	}
}

func TestLoadListUnavailableWhenListingFails(t *testing.T) {
	loader := NewLoader(Config{
		Fetcher: &stubFetcher{},
		Lister:  stubLister{err: errors.New("index unreachable")},
	})

	result := loader.LoadList(context.Background())
	if result.Fallback != FallbackUnavailable {
		t.Fatalf("expected unavailable fallback, got %v", result.Fallback)
	}
	if result.HTML != render.Unavailable() {
		t.Fatalf("unexpected HTML %q", result.HTML)
	}
}

func TestNamesPrefersLister(t *testing.T) {
	loader := NewLoader(Config{
		Fetcher: &stubFetcher{},
		Files:   []string{"static.md"},
		Lister:  stubLister{names: []string{"listed.md"}},
	})

	names, err := loader.Names(context.Background())
	if err != nil {
		t.Fatalf("Names: %v", err)
	}
	if len(names) != 1 || names[0] != "listed.md" {
		t.Fatalf("unexpected names %v", names)
	}
}

func TestLoadPost(t *testing.T) {
	fetcher := &stubFetcher{posts: map[string]string{
		"hello.md": "---\ntitle: Hello\n---\n# Hello\nSome **bold** text",
	}}
	loader := NewLoader(Config{Fetcher: fetcher, TitleSuffix: "Your Name"})

	result, err := loader.LoadPost(context.Background(), "hello")
	if err != nil {
		t.Fatalf("LoadPost: %v", err)
	}
	if !result.Found {
		t.Fatalf("expected post to be found")
	}
	if result.Title != "Hello - Your Name" {
		t.Fatalf("unexpected title %q", result.Title)
	}
	if !strings.Contains(result.HTML, "<h1>Hello</h1>") || !strings.Contains(result.HTML, "<strong>bold</strong>") {
		t.Fatalf("unexpected HTML %q", result.HTML)
	}
	if strings.Contains(result.HTML, "title:") {
		t.Fatalf("front matter leaked into HTML: %q", result.HTML)
	}
	if fetcher.calls[0] != "hello.md" {
		t.Fatalf("expected hello.md to be fetched, got %v", fetcher.calls)
	}
}

func TestLoadPostTitleFromHeading(t *testing.T) {
	fetcher := &stubFetcher{posts: map[string]string{"plain.md": "# Plain Post\nbody"}}
	loader := NewLoader(Config{Fetcher: fetcher})

	result, err := loader.LoadPost(context.Background(), "plain")
	if err != nil {
		t.Fatalf("LoadPost: %v", err)
	}
	if result.Title != "Plain Post" {
		t.Fatalf("unexpected title %q", result.Title)
	}
}

func TestLoadPostNotFound(t *testing.T) {
	loader := NewLoader(Config{Fetcher: &stubFetcher{}, ListPage: "index.html"})

	result, err := loader.LoadPost(context.Background(), "missing")
	if err != nil {
		t.Fatalf("LoadPost: %v", err)
	}
	if result.Found {
		t.Fatalf("expected post to be missing")
	}
	if result.HTML != render.NotFound("index.html") {
		t.Fatalf("unexpected HTML %q", result.HTML)
	}
	if result.Title != "" {
		t.Fatalf("title must stay empty, got %q", result.Title)
	}
}

func TestLoadPostRequiresSlug(t *testing.T) {
	loader := NewLoader(Config{Fetcher: &stubFetcher{}})

	if _, err := loader.LoadPost(context.Background(), "  "); !errors.Is(err, ErrSlugRequired) {
		t.Fatalf("expected ErrSlugRequired, got %v", err)
	}
}
