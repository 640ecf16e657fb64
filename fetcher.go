package adoc

import "context"

// Fetcher retrieves raw HTML from URLs.
// Implementations must be safe for concurrent use by multiple goroutines.
type Fetcher interface {
	// Fetch issues a GET request for the URL and returns the response body.
	// The context controls timeout and cancellation. A non-success HTTP
	// status is returned as an error.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases client resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
