package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/itinerary"
)

// Ensure LoggingExtractor implements itinerary.Extractor.
var _ itinerary.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging of the days found.
type LoggingExtractor struct {
	next   itinerary.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next itinerary.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(pageType itinerary.PageType, html string) (result *itinerary.Result, err error) {
	defer func(begin time.Time) {
		days := 0
		if result != nil {
			days = len(result.Itinerary)
		}
		report(e.logger, "extract", err,
			"type", pageType.String(),
			"days", days,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.Extract(pageType, html)
}
