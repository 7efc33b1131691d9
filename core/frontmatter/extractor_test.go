package frontmatter

import (
	"reflect"
	"testing"

	"github.com/gaurav-prasanna/folio/core"
)

func TestExtractWithFrontMatter(t *testing.T) {
	input := "---\ntitle: \"Hello, World\"\ndate: 2024-01-15\nexcerpt: 'A short intro'\nauthor: me\n---\n\nFirst paragraph.\n"

	meta, body := Extract(input)

	want := core.FrontMatter{Title: "Hello, World", Date: "2024-01-15", Excerpt: "A short intro"}
	if meta != want {
		t.Fatalf("front matter mismatch: got %#v, want %#v", meta, want)
	}
	wantBody := []string{"", "First paragraph.", ""}
	if !reflect.DeepEqual(body, wantBody) {
		t.Fatalf("body mismatch: got %#v, want %#v", body, wantBody)
	}
}

func TestExtractStripsQuotesFromEveryKey(t *testing.T) {
	meta, _ := Extract("---\ntitle: It's \"quoted\"\ndate: \"2024-02-01\"\n---\n")
	if meta.Title != "Its quoted" {
		t.Fatalf("expected quotes stripped from title, got %q", meta.Title)
	}
	if meta.Date != "2024-02-01" {
		t.Fatalf("expected quotes stripped from date, got %q", meta.Date)
	}
}

func TestExtractWithoutFrontMatter(t *testing.T) {
	input := "# Hello World\nSome text"

	meta, body := Extract(input)

	if meta != (core.FrontMatter{}) {
		t.Fatalf("expected empty front matter, got %#v", meta)
	}
	if !reflect.DeepEqual(body, []string{"# Hello World", "Some text"}) {
		t.Fatalf("expected every line as body, got %#v", body)
	}
}

func TestExtractUnclosedFrontMatterHasNoBody(t *testing.T) {
	meta, body := Extract("---\ntitle: Draft\nno closing delimiter\n")

	if meta.Title != "Draft" {
		t.Fatalf("expected title to be collected, got %q", meta.Title)
	}
	if len(body) != 0 {
		t.Fatalf("expected empty body for unclosed front matter, got %#v", body)
	}
}

func TestExtractKeepsBodyLinesUntrimmed(t *testing.T) {
	_, body := Extract("  ---  \ntitle: x\n---\n   indented\n---\nafter rule")

	want := []string{"   indented", "after rule"}
	if !reflect.DeepEqual(body, want) {
		t.Fatalf("body mismatch: got %#v, want %#v", body, want)
	}
}

func TestExtractKeysAreCaseSensitive(t *testing.T) {
	meta, _ := Extract("---\nTitle: Upper\ntitle : spaced\n---\nbody")
	if meta.Title != "" {
		t.Fatalf("expected unrecognized keys to be ignored, got %q", meta.Title)
	}
}

func TestExtractLastKeyWins(t *testing.T) {
	meta, _ := Extract("---\ntitle: first\ntitle: second\n---\n")
	if meta.Title != "second" {
		t.Fatalf("expected later key to win, got %q", meta.Title)
	}
}

func TestTitle(t *testing.T) {
	if got := Title("---\ntitle: 'Post'\n---\n# Heading"); got != "Post" {
		t.Fatalf("Title mismatch, got %q", got)
	}
	if got := Title("# Heading"); got != "" {
		t.Fatalf("expected no front-matter title, got %q", got)
	}
}

func TestDecode(t *testing.T) {
	meta, err := Decode("---\ntitle: Post\ntags:\n  - go\n  - web\n---\nbody\n")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if meta["title"] != "Post" {
		t.Fatalf("expected title in decoded meta, got %#v", meta)
	}
	tags, ok := meta["tags"].([]any)
	if !ok || len(tags) != 2 || tags[0] != "go" {
		t.Fatalf("expected tags in decoded meta, got %#v", meta["tags"])
	}
}

func TestDecodeInvalidYAML(t *testing.T) {
	meta, err := Decode("---\ntitle: [oops\n---\nbody")
	if err == nil {
		t.Fatalf("expected error for invalid front matter")
	}
	if len(meta) != 0 {
		t.Fatalf("expected empty meta on error, got %#v", meta)
	}
}

func TestExtractDropsRulesAfterFrontMatter(t *testing.T) {
	_, body := Extract("---\ntitle: Rules\n---\nIntro\n---\nMore\n  ---  ")

	want := []string{"Intro", "More"}
	if !reflect.DeepEqual(body, want) {
		t.Fatalf("body mismatch: got %#v, want %#v", body, want)
	}
}

func TestExtractKeepsRulesWithoutFrontMatter(t *testing.T) {
	_, body := Extract("Intro\n---\nMore")

	want := []string{"Intro", "---", "More"}
	if !reflect.DeepEqual(body, want) {
		t.Fatalf("body mismatch: got %#v, want %#v", body, want)
	}
}
