// Package slog provides log/slog decorators for the itinerary services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/itinerary"
)

// Ensure LoggingFetcher implements itinerary.Fetcher.
var _ itinerary.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging of each page request.
type LoggingFetcher struct {
	next   itinerary.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next itinerary.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		report(f.logger, "fetch", err,
			"url", url,
			"type", itinerary.Classify(url).String(),
			"bytes", len(html),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
