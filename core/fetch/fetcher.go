// Package fetch implements the Fetcher and Lister interfaces for the post
// sources folio can read from: an HTTP base URL, a local directory, or a
// Backblaze B2 bucket.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gaurav-prasanna/folio/core"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "folio/1.0 (https://github.com/gaurav-prasanna/folio)"
)

// ErrStatus is wrapped by errors for non-success HTTP responses.
var ErrStatus = errors.New("unexpected status")

// HTTPFetcher fetches posts via HTTP GET relative to a base URL.
type HTTPFetcher struct {
	base   *url.URL
	client *http.Client
}

// NewHTTPFetcher creates an HTTPFetcher for posts below baseURL. A zero
// timeout selects the default.
func NewHTTPFetcher(baseURL string, timeout time.Duration) (*HTTPFetcher, error) {
	base, err := url.Parse(baseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid posts base URL: %q (must include scheme, e.g. https://example.com/posts)", baseURL)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPFetcher{
		base:   base,
		client: &http.Client{Timeout: timeout},
	}, nil
}

// Base returns the base URL posts are resolved against.
func (f *HTTPFetcher) Base() *url.URL {
	u := *f.base
	return &u
}

// Client returns the HTTP client used for requests.
func (f *HTTPFetcher) Client() *http.Client {
	return f.client
}

// Resolve returns the absolute URL of the named post.
func (f *HTTPFetcher) Resolve(name string) string {
	return f.base.ResolveReference(&url.URL{Path: name}).String()
}

// Fetch retrieves the raw text of the named post.
func (f *HTTPFetcher) Fetch(ctx context.Context, name string) (*core.FetchResult, error) {
	target := f.Resolve(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "text/markdown, text/plain, */*")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w %d for %s", ErrStatus, resp.StatusCode, target)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &core.FetchResult{
		Name:       name,
		URL:        target,
		StatusCode: resp.StatusCode,
		Content:    string(body),
	}, nil
}

// GetHTML retrieves an arbitrary page as HTML. It is used to import
// articles and to read directory index pages.
func GetHTML(ctx context.Context, client *http.Client, rawURL string) (string, error) {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w %d for %s", ErrStatus, resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}
	return string(body), nil
}
