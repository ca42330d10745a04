package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/itinerary"
)

// Ensure LoggingSitemapService implements itinerary.SitemapService.
var _ itinerary.SitemapService = (*LoggingSitemapService)(nil)

// LoggingSitemapService wraps a SitemapService with logging of each discovery.
type LoggingSitemapService struct {
	next   itinerary.SitemapService
	logger *slog.Logger
}

// NewLoggingSitemapService creates a new LoggingSitemapService.
func NewLoggingSitemapService(next itinerary.SitemapService, logger *slog.Logger) *LoggingSitemapService {
	return &LoggingSitemapService{next: next, logger: logger}
}

// DiscoverURLs delegates to the wrapped service and logs the number of
// itinerary URLs found.
func (s *LoggingSitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *itinerary.URLFilter) (urls []string, err error) {
	defer func(begin time.Time) {
		report(s.logger, "sitemap discovery", err,
			"url", baseURL,
			"filtered", filter != nil,
			"count", len(urls),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.DiscoverURLs(ctx, baseURL, filter)
}
