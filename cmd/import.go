// Package cmd: import command.
// It turns an article published elsewhere into a post:
// fetch → extract → normalize → compose → write.
package cmd

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/folio/core/extract"
	"github.com/gaurav-prasanna/folio/core/fetch"
	"github.com/gaurav-prasanna/folio/core/frontmatter"
	"github.com/gaurav-prasanna/folio/core/infer"
	"github.com/gaurav-prasanna/folio/core/normalize"
	"github.com/gaurav-prasanna/folio/core/output"
)

var (
	flagImportSlug  string
	flagImportDir   string
	flagImportForce bool
)

var importCmd = &cobra.Command{
	Use:   "import <url>",
	Short: "Import a web article as a markdown post",
	Long: `Import fetches an HTML article, extracts its main content, converts it to
markdown and writes it to the posts directory with front matter taken from
the page (title, publication date and description).

Examples:
  folio import https://example.com/blog/why-go
  folio import https://example.com/post/123 --slug why-go --posts_dir ./posts`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVar(&flagImportSlug, "slug", "", "Post slug (default: derived from the URL)")
	importCmd.Flags().StringVar(&flagImportDir, "posts_dir", "", "Directory to write the post to (default: posts.base for the file source)")
	importCmd.Flags().BoolVar(&flagImportForce, "force", false, "Overwrite an existing post")
}

func runImport(cmd *cobra.Command, args []string) error {
	rawURL := args[0]
	logger := logs.Get("import")

	// Validate URL.
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid URL: %s (must include scheme, e.g. https://example.com)", rawURL)
	}

	dir := flagImportDir
	if dir == "" {
		if appConfig.Posts.Source != "file" {
			return fmt.Errorf("--posts_dir is required when posts.source is %q", appConfig.Posts.Source)
		}
		dir = appConfig.Posts.Base
	}

	slug := flagImportSlug
	if slug == "" {
		slug = output.SlugFromURL(rawURL)
	}

	writer, err := output.New(dir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}
	if writer.Exists(slug, infer.Extension) && !flagImportForce {
		return fmt.Errorf("post %s already exists in %s (use --force to overwrite)", infer.Filename(slug), dir)
	}

	// 1. Fetch
	client := &http.Client{Timeout: appConfig.Fetch.Timeout}
	html, err := fetch.GetHTML(cmd.Context(), client, rawURL)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	// 2. Extract main content and metadata
	article, err := extract.New().Article(html)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	// 3. Normalize to Markdown
	markdown, err := normalize.New().Normalize(article.Content)
	if err != nil {
		return fmt.Errorf("normalize: %w", err)
	}

	// 4. Prepend front matter
	post, err := frontmatter.Compose(article.Meta, markdown)
	if err != nil {
		return fmt.Errorf("compose: %w", err)
	}

	path, err := writer.Write(slug, []byte(post), infer.Extension)
	if err != nil {
		return err
	}
	logger.Info("imported post", "url", rawURL, "slug", slug, "title", article.Meta.Title)
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)

	if !appConfig.Posts.Discover && !slices.Contains(appConfig.Posts.Files, infer.Filename(slug)) {
		fmt.Fprintf(os.Stdout, "  Add %s to posts.files to list it on the blog page.\n", infer.Filename(slug))
	}
	return nil
}
