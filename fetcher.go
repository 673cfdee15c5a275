package tabtalk

import "context"

// Fetcher retrieves the HTML of a single page.
type Fetcher interface {
	// Fetch issues one GET request for url and returns the response body.
	// There is no retry: the first failure is the final answer.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
