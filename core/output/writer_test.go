package output

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriterWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	w, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	p, err := w.Write("hello", []byte("<h1>Hello</h1>"), ".html")
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if p != filepath.Join(dir, "hello.html") {
		t.Fatalf("unexpected path %q", p)
	}
	data, err := os.ReadFile(p)
	if err != nil || string(data) != "<h1>Hello</h1>" {
		t.Fatalf("unexpected file content %q (%v)", data, err)
	}
	if !w.Exists("hello", ".html") || w.Exists("hello", ".pdf") {
		t.Fatalf("Exists mismatch")
	}

	for _, slug := range []string{"", "..", "../escape", `a\b`} {
		if _, err := w.Write(slug, nil, ".md"); err == nil {
			t.Fatalf("expected %q to be rejected", slug)
		}
	}
}

func TestSlugFromURL(t *testing.T) {
	cases := map[string]string{
		"https://example.com/blog/My_First-Post.html": "my-first-post",
		"https://example.com/blog/why-go/":            "why-go",
		"https://example.com/":                        "example-com",
		"https://example.com/2024/01/Hello%20World":   "hello-world",
	}
	for in, want := range cases {
		if got := SlugFromURL(in); got != want {
			t.Fatalf("SlugFromURL(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSlugFromTitle(t *testing.T) {
	if got := SlugFromTitle("  Why I Love Go! (2024) "); got != "why-i-love-go-2024" {
		t.Fatalf("unexpected slug %q", got)
	}
}
