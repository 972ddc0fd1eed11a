// Package http provides HTTP-based implementations of gitbooktext.Fetcher
// and gitbooktext.SitemapService.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/gitbooktext"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// userAgent is a desktop-browser identifying header sent with every request
// to avoid trivial bot-blocking.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Ensure Fetcher implements gitbooktext.Fetcher at compile time.
var _ gitbooktext.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page bodies from URLs using plain HTTP requests.
// GitBook page sources are static markdown, so no JavaScript rendering
// is needed.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the body of the given URL as text.
// Transport errors and non-2xx statuses are reported as ENETWORK.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", gitbooktext.Errorf(gitbooktext.EINVALID, "invalid URL %s: %v", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", gitbooktext.Errorf(gitbooktext.ENETWORK, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return "", gitbooktext.Errorf(gitbooktext.ENETWORK, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", gitbooktext.Errorf(gitbooktext.ENETWORK, "read %s: %v", url, err)
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
