package fetch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"

	"github.com/gaurav-prasanna/folio/core"
	"github.com/gaurav-prasanna/folio/core/infer"
)

// FileFetcher reads posts from a filesystem, typically the local posts
// directory.
type FileFetcher struct {
	fsys fs.FS
	root string
}

// NewFileFetcher creates a FileFetcher over fsys. root is only used to
// report locations.
func NewFileFetcher(fsys fs.FS, root string) *FileFetcher {
	return &FileFetcher{fsys: fsys, root: root}
}

// NewDirFetcher creates a FileFetcher over a directory on disk.
func NewDirFetcher(dir string) *FileFetcher {
	return NewFileFetcher(os.DirFS(dir), dir)
}

// Fetch reads the named post.
func (f *FileFetcher) Fetch(ctx context.Context, name string) (*core.FetchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("invalid post name %q", name)
	}
	data, err := fs.ReadFile(f.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return &core.FetchResult{
		Name:    name,
		URL:     path.Join(f.root, name),
		Content: string(data),
	}, nil
}

// List returns the post filenames in the root of the filesystem, sorted.
func (f *FileFetcher) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	names, err := fs.Glob(f.fsys, "*"+infer.Extension)
	if err != nil {
		return nil, fmt.Errorf("listing posts in %s: %w", f.root, err)
	}
	sort.Strings(names)
	return names, nil
}
