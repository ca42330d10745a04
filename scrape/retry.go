package scrape

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/fwojciec/itinerary"
)

// Ensure RetryFetcher implements itinerary.Fetcher at compile time.
var _ itinerary.Fetcher = (*RetryFetcher)(nil)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// temporary is implemented by errors that know whether a retry may help,
// such as http.StatusError.
type temporary interface {
	Temporary() bool
}

// RetryFetcher retries failed fetches with a fixed backoff schedule.
// Errors that report themselves as permanent are returned immediately.
type RetryFetcher struct {
	next   itinerary.Fetcher
	delays []time.Duration
	logger *slog.Logger
}

// RetryOption configures a RetryFetcher.
type RetryOption func(*RetryFetcher)

// WithRetryDelays sets the delays between attempts.
// Defaults to DefaultRetryDelays() if not specified; an empty slice disables retries.
func WithRetryDelays(delays []time.Duration) RetryOption {
	return func(f *RetryFetcher) {
		f.delays = delays
	}
}

// WithRetryLogger logs each retry to logger.
func WithRetryLogger(logger *slog.Logger) RetryOption {
	return func(f *RetryFetcher) {
		f.logger = logger
	}
}

// NewRetryFetcher wraps next with retries.
func NewRetryFetcher(next itinerary.Fetcher, opts ...RetryOption) *RetryFetcher {
	f := &RetryFetcher{
		next:   next,
		delays: DefaultRetryDelays(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch attempts the fetch up to len(delays)+1 times.
func (f *RetryFetcher) Fetch(ctx context.Context, url string) (string, error) {
	var lastErr error
	for attempt := 0; ; attempt++ {
		html, err := f.next.Fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt >= len(f.delays) || ctx.Err() != nil || !retryable(err) {
			break
		}

		f.logger.Warn("retry",
			"url", url,
			"attempt", attempt+2,
			"err", err,
		)

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.delays[attempt]):
		}
	}

	return "", lastErr
}

// Close closes the wrapped fetcher.
func (f *RetryFetcher) Close() error {
	return f.next.Close()
}

func retryable(err error) bool {
	var t temporary
	if errors.As(err, &t) {
		return t.Temporary()
	}
	return true
}
