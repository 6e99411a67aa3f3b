package pagewatch

import "context"

// Fetcher retrieves response bodies from URLs.
type Fetcher interface {
	// Fetch issues a GET request for the URL and returns the response body.
	// The context controls timeout and cancellation. A non-success HTTP
	// status is reported as an EUNAVAILABLE-coded error so callers can
	// treat it as a recoverable no-match rather than a transport failure.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
