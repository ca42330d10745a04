package itinerary

import "context"

// Fetcher retrieves raw markup from URLs.
type Fetcher interface {
	// Fetch returns the markup served at url.
	// Any non-success status, network error or timeout is an error.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// DomainLimiter provides per-host rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the host.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, host string) error
}

// RobotsChecker reports whether a site's robots.txt allows fetching a URL.
type RobotsChecker interface {
	Allowed(ctx context.Context, url string) (bool, error)
}
