package fetch

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Backblaze/blazer/b2"

	"github.com/gaurav-prasanna/folio/core"
	"github.com/gaurav-prasanna/folio/core/infer"
)

var (
	_ core.Fetcher = (*B2Fetcher)(nil)
	_ core.Lister  = (*B2Fetcher)(nil)
)

// B2Config identifies the bucket and key prefix posts are stored under.
type B2Config struct {
	BucketName     string
	Prefix         string
	KeyID          string
	ApplicationKey string
}

// B2Fetcher reads posts from a Backblaze B2 bucket.
type B2Fetcher struct {
	prefix string
	bucket *b2.Bucket
}

// NewB2Fetcher connects to B2 and opens the configured bucket.
func NewB2Fetcher(ctx context.Context, cfg B2Config) (*B2Fetcher, error) {
	client, err := b2.NewClient(ctx, cfg.KeyID, cfg.ApplicationKey)
	if err != nil {
		return nil, fmt.Errorf("creating B2 client: %w", err)
	}
	bucket, err := client.Bucket(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("opening B2 bucket %s: %w", cfg.BucketName, err)
	}
	return &B2Fetcher{prefix: cfg.Prefix, bucket: bucket}, nil
}

// Fetch reads the named post object.
func (f *B2Fetcher) Fetch(ctx context.Context, name string) (*core.FetchResult, error) {
	key := f.prefix + name
	obj := f.bucket.Object(key)
	if obj == nil {
		return nil, fmt.Errorf("failed to reference object %s in B2 bucket", key)
	}

	reader := obj.NewReader(ctx)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading B2 object %s: %w", key, err)
	}
	return &core.FetchResult{
		Name:    name,
		URL:     "b2://" + f.bucket.Name() + "/" + key,
		Content: string(data),
	}, nil
}

// List returns the uploaded post objects under the prefix, in bucket order.
func (f *B2Fetcher) List(ctx context.Context) ([]string, error) {
	var names []string

	iter := f.bucket.List(ctx, b2.ListPrefix(f.prefix))
	for iter.Next() {
		obj := iter.Object()
		if obj == nil {
			return nil, fmt.Errorf("failed to reference object in B2 bucket")
		}

		attrs, err := obj.Attrs(ctx)
		if err != nil {
			return nil, fmt.Errorf("get attributes for object: %w", err)
		}
		if attrs.Status != b2.Uploaded {
			continue
		}

		name := strings.TrimPrefix(obj.Name(), f.prefix)
		if strings.Contains(name, "/") || !strings.HasSuffix(name, infer.Extension) {
			continue
		}
		names = append(names, name)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("iterate over B2 objects: %w", err)
	}

	return names, nil
}
