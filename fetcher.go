package gitbooktext

import "context"

// Fetcher retrieves page bodies from URLs over the network.
type Fetcher interface {
	// Fetch performs a single GET request and returns the response body as
	// text. Any transport error or non-2xx status is an error.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
