package mock

import (
	"context"

	"github.com/fwojciec/itinerary"
)

var _ itinerary.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of itinerary.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ itinerary.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of itinerary.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, host string) error {
	return l.WaitFn(ctx, host)
}

var _ itinerary.RobotsChecker = (*RobotsChecker)(nil)

// RobotsChecker is a mock implementation of itinerary.RobotsChecker.
type RobotsChecker struct {
	AllowedFn func(ctx context.Context, url string) (bool, error)
}

func (c *RobotsChecker) Allowed(ctx context.Context, url string) (bool, error) {
	return c.AllowedFn(ctx, url)
}
