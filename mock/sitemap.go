package mock

import (
	"context"

	"github.com/fwojciec/itinerary"
)

var _ itinerary.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of itinerary.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *itinerary.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *itinerary.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
