// Package blog orchestrates fetching and rendering for the two blog views:
// the list of summary cards and the full post page.
//
// The list view fetches every post concurrently and tolerates partial
// failure: a post that cannot be fetched is logged and left out, and when
// nothing loads a static fallback fragment is returned instead of an error.
package blog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/gaurav-prasanna/folio/core"
	"github.com/gaurav-prasanna/folio/core/infer"
	"github.com/gaurav-prasanna/folio/core/render"
	"github.com/gaurav-prasanna/folio/logging"
)

// ErrSlugRequired is returned by LoadPost when no slug was given.
var ErrSlugRequired = errors.New("blog: post slug is required")

// DefaultConcurrency bounds the number of in-flight fetches.
const DefaultConcurrency = 8

// Fallback reports which placeholder, if any, replaced the post list.
type Fallback int

const (
	FallbackNone        Fallback = iota
	FallbackComingSoon           // no post could be loaded
	FallbackUnavailable          // the post listing itself failed
)

// Config wires a Loader.
type Config struct {
	Fetcher core.Fetcher
	// Lister, when set, is asked for the post names instead of Files.
	Lister core.Lister
	// Files is the static list of post filenames, in display order.
	Files       []string
	Concurrency int
	Engine      core.Engine
	ListPage    string
	PostPage    string
	// TitleSuffix is appended to the page title of a full post.
	TitleSuffix string
	Logger      logging.Logger
}

// Loader loads and renders posts for the blog views.
type Loader struct {
	fetcher     core.Fetcher
	lister      core.Lister
	files       []string
	concurrency int
	engine      core.Engine
	listPage    string
	postPage    string
	titleSuffix string
	logger      logging.Logger
}

// NewLoader builds a Loader from cfg.
func NewLoader(cfg Config) *Loader {
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	engine := cfg.Engine
	if engine == nil {
		engine = render.SimpleEngine{}
	}
	return &Loader{
		fetcher:     cfg.Fetcher,
		lister:      cfg.Lister,
		files:       append([]string(nil), cfg.Files...),
		concurrency: concurrency,
		engine:      engine,
		listPage:    cfg.ListPage,
		postPage:    cfg.PostPage,
		titleSuffix: cfg.TitleSuffix,
		logger:      logging.OrNoOp(cfg.Logger),
	}
}

// ListResult is the outcome of loading the post list.
type ListResult struct {
	HTML     string
	Posts    []core.PostSummary
	Fallback Fallback
}

// PostResult is the outcome of loading a single post.
type PostResult struct {
	HTML string
	// Title is the display title for the page, empty when the post has none.
	Title string
	Found bool
}

// Names returns the post filenames to show, in display order.
func (l *Loader) Names(ctx context.Context) ([]string, error) {
	if l.lister == nil {
		return append([]string(nil), l.files...), nil
	}
	names, err := l.lister.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}
	return names, nil
}

// Summaries fetches every named post concurrently and returns the summaries
// of those that loaded, in the order the names were given. Failed fetches
// are logged and skipped.
func (l *Loader) Summaries(ctx context.Context, names []string) []core.PostSummary {
	results := make([]*core.PostSummary, len(names))

	var g errgroup.Group
	g.SetLimit(l.concurrency)
	for i, name := range names {
		g.Go(func() error {
			res, err := l.fetcher.Fetch(ctx, name)
			if err != nil {
				l.logger.Warn("could not load post", "file", name, "error", err)
				return nil
			}
			summary := infer.SummarizeDocument(core.Document{
				Filename: name,
				Slug:     infer.Slug(name),
				Content:  res.Content,
			})
			results[i] = &summary
			return nil
		})
	}
	_ = g.Wait()

	summaries := make([]core.PostSummary, 0, len(names))
	for _, s := range results {
		if s != nil {
			summaries = append(summaries, *s)
		}
	}
	return summaries
}

// LoadList renders the blog list view. It never fails: listing errors and
// empty results are mapped to fallback fragments.
func (l *Loader) LoadList(ctx context.Context) ListResult {
	names, err := l.Names(ctx)
	if err != nil {
		l.logger.Error("error loading blog posts", "error", err)
		return ListResult{HTML: render.Unavailable(), Fallback: FallbackUnavailable}
	}

	posts := l.Summaries(ctx, names)
	if len(posts) == 0 {
		return ListResult{HTML: render.ComingSoon(), Fallback: FallbackComingSoon}
	}

	l.logger.Debug("loaded blog posts", "requested", len(names), "loaded", len(posts))
	return ListResult{
		HTML:  render.List(posts, l.postPage),
		Posts: posts,
	}
}

// LoadPost renders the full post view for slug. A post that cannot be
// fetched or rendered yields the not-found fragment with Found false; the
// only error is ErrSlugRequired.
func (l *Loader) LoadPost(ctx context.Context, slug string) (PostResult, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return PostResult{}, ErrSlugRequired
	}

	doc, err := l.Document(ctx, slug)
	if err != nil {
		l.logger.Error("error loading blog post", "slug", slug, "error", err)
		return PostResult{HTML: render.NotFound(l.listPage)}, nil
	}

	html, err := l.engine.Render(doc.Content)
	if err != nil {
		l.logger.Error("error rendering blog post", "slug", slug, "error", err)
		return PostResult{HTML: render.NotFound(l.listPage)}, nil
	}

	result := PostResult{HTML: html, Found: true}
	if title := infer.PageTitle(doc.Content); title != "" {
		result.Title = l.pageTitle(title)
	}
	return result, nil
}

// Document fetches the raw post addressed by slug.
func (l *Loader) Document(ctx context.Context, slug string) (core.Document, error) {
	name := infer.Filename(slug)
	res, err := l.fetcher.Fetch(ctx, name)
	if err != nil {
		return core.Document{}, err
	}
	return core.Document{Filename: name, Slug: slug, Content: res.Content}, nil
}

func (l *Loader) pageTitle(title string) string {
	if l.titleSuffix == "" {
		return title
	}
	return title + " - " + l.titleSuffix
}
