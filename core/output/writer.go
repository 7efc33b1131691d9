// Package output handles file naming and writing for folio outputs.
// Exports are written as <slug><ext> in the output directory, and imported
// articles become <slug>.md in the posts directory.
package output

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode"
)

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	// Ensure the output directory exists.
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// Write stores data as <slug><ext> and returns the written path.
func (w *Writer) Write(slug string, data []byte, ext string) (string, error) {
	if slug == "" || strings.ContainsAny(slug, `/\`) || slug == "." || slug == ".." {
		return "", fmt.Errorf("invalid slug %q", slug)
	}
	p := filepath.Join(w.OutputDir, slug+ext)

	if err := os.WriteFile(p, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", p, err)
	}
	return p, nil
}

// Exists reports whether <slug><ext> is already present.
func (w *Writer) Exists(slug, ext string) bool {
	_, err := os.Stat(filepath.Join(w.OutputDir, slug+ext))
	return err == nil
}

// SlugFromURL derives a post slug from the last path segment of a URL.
// Example: https://example.com/blog/My_First-Post.html → my-first-post
func SlugFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		// Fallback: sanitize the raw string.
		return sanitize(rawURL)
	}

	seg := path.Base(strings.TrimSuffix(parsed.Path, "/"))
	if seg == "/" || seg == "." || seg == "" {
		return sanitize(parsed.Host)
	}
	seg = strings.TrimSuffix(seg, path.Ext(seg))
	if slug := sanitize(seg); slug != "" {
		return slug
	}
	return sanitize(parsed.Host)
}

// SlugFromTitle derives a post slug from a title.
// Example: "Why I Love Go!" → why-i-love-go
func SlugFromTitle(title string) string {
	return sanitize(title)
}

// sanitize lowercases s and replaces every run of non-alphanumeric
// characters with a single hyphen.
func sanitize(s string) string {
	var b strings.Builder
	hyphen := false
	for _, ch := range strings.ToLower(s) {
		if unicode.IsLetter(ch) || unicode.IsDigit(ch) {
			b.WriteRune(ch)
			hyphen = false
			continue
		}
		if !hyphen && b.Len() > 0 {
			b.WriteByte('-')
			hyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
