package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/folio/config"
	"github.com/gaurav-prasanna/folio/core"
	"github.com/gaurav-prasanna/folio/core/blog"
	"github.com/gaurav-prasanna/folio/core/fetch"
	"github.com/gaurav-prasanna/folio/core/render"
	"github.com/gaurav-prasanna/folio/crawl"
)

// newSource builds the fetcher for the configured post source and, when
// discovery is on, the lister that enumerates its posts.
func newSource(ctx context.Context, cfg *config.Config) (core.Fetcher, core.Lister, error) {
	switch cfg.Posts.Source {
	case "http":
		f, err := fetch.NewHTTPFetcher(cfg.Posts.Base, cfg.Fetch.Timeout)
		if err != nil {
			return nil, nil, err
		}
		if !cfg.Posts.Discover {
			return f, nil, nil
		}
		return f, crawl.NewIndexLister(f.Base(), f.Client()), nil

	case "b2":
		prefix := cfg.Posts.Base
		if prefix != "" && !strings.HasSuffix(prefix, "/") {
			prefix += "/"
		}
		f, err := fetch.NewB2Fetcher(ctx, fetch.B2Config{
			BucketName:     cfg.Posts.B2.Bucket,
			Prefix:         prefix,
			KeyID:          cfg.Posts.B2.KeyID,
			ApplicationKey: cfg.Posts.B2.ApplicationKey,
		})
		if err != nil {
			return nil, nil, err
		}
		if !cfg.Posts.Discover {
			return f, nil, nil
		}
		return f, f, nil

	case "file":
		f := fetch.NewDirFetcher(cfg.Posts.Base)
		if !cfg.Posts.Discover {
			return f, nil, nil
		}
		return f, f, nil

	default:
		return nil, nil, fmt.Errorf("unsupported posts source %q", cfg.Posts.Source)
	}
}

// newLoader wires a blog loader from the configuration.
func newLoader(ctx context.Context, cfg *config.Config) (*blog.Loader, error) {
	fetcher, lister, err := newSource(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing post source: %w", err)
	}
	engine, err := render.NewEngine(cfg.Render.Engine)
	if err != nil {
		return nil, err
	}
	return blog.NewLoader(blog.Config{
		Fetcher:     fetcher,
		Lister:      lister,
		Files:       cfg.Posts.Files,
		Concurrency: cfg.Fetch.Concurrency,
		Engine:      engine,
		ListPage:    cfg.Site.ListPage,
		PostPage:    cfg.Site.PostPage,
		TitleSuffix: cfg.Site.TitleSuffix,
		Logger:      logs.Get("blog"),
	}), nil
}
