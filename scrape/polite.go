package scrape

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/itinerary"
	"golang.org/x/time/rate"
)

// Ensure the politeness types implement their interfaces at compile time.
var (
	_ itinerary.Fetcher       = (*PoliteFetcher)(nil)
	_ itinerary.DomainLimiter = (*HostLimiter)(nil)
)

// DefaultHostInterval is the minimum spacing between requests to one host.
const DefaultHostInterval = 1 * time.Second

// HostLimiter spaces requests to each host at least one interval apart.
// Host names are compared case-insensitively. Hosts do not wait on each other.
type HostLimiter struct {
	interval time.Duration

	mu    sync.Mutex
	hosts map[string]*rate.Limiter
}

// NewHostLimiter creates a HostLimiter with the given interval per host.
// A non-positive interval uses DefaultHostInterval.
func NewHostLimiter(interval time.Duration) *HostLimiter {
	if interval <= 0 {
		interval = DefaultHostInterval
	}
	return &HostLimiter{
		interval: interval,
		hosts:    make(map[string]*rate.Limiter),
	}
}

// Wait blocks until host's next slot. The first request to a host does not wait.
func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	return l.forHost(host).Wait(ctx)
}

func (l *HostLimiter) forHost(host string) *rate.Limiter {
	key := strings.ToLower(host)

	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.hosts[key]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(l.interval), 1)
		l.hosts[key] = limiter
	}
	return limiter
}

// PoliteFetcher spaces out requests to each host and consults robots.txt
// the first time it sees a host. A disallowed URL is logged and fetched anyway.
type PoliteFetcher struct {
	next      itinerary.Fetcher
	limiter   itinerary.DomainLimiter
	robots    itinerary.RobotsChecker
	minJitter time.Duration
	maxJitter time.Duration
	logger    *slog.Logger

	mu      sync.Mutex
	checked map[string]bool
}

// PoliteOption configures a PoliteFetcher.
type PoliteOption func(*PoliteFetcher)

// WithJitter adds a random delay in [lo, hi) before every fetch.
// Defaults to 1s to 2s; WithJitter(0, 0) disables it.
func WithJitter(lo, hi time.Duration) PoliteOption {
	return func(f *PoliteFetcher) {
		f.minJitter = lo
		f.maxJitter = hi
	}
}

// WithRobots checks each host's robots.txt before its first fetch.
func WithRobots(robots itinerary.RobotsChecker) PoliteOption {
	return func(f *PoliteFetcher) {
		f.robots = robots
	}
}

// WithPoliteLogger logs robots.txt warnings to logger.
func WithPoliteLogger(logger *slog.Logger) PoliteOption {
	return func(f *PoliteFetcher) {
		f.logger = logger
	}
}

// NewPoliteFetcher wraps next. Requests wait on limiter before jitter is applied.
func NewPoliteFetcher(next itinerary.Fetcher, limiter itinerary.DomainLimiter, opts ...PoliteOption) *PoliteFetcher {
	f := &PoliteFetcher{
		next:      next,
		limiter:   limiter,
		minJitter: 1 * time.Second,
		maxJitter: 2 * time.Second,
		logger:    slog.New(slog.DiscardHandler),
		checked:   make(map[string]bool),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch waits for the host's turn and delegates to the wrapped fetcher.
func (f *PoliteFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", itinerary.Errorf(itinerary.EINVALID, "invalid URL: %v", err)
	}

	if err := f.checkRobots(ctx, u.Host, rawURL); err != nil {
		return "", err
	}

	if err := f.limiter.Wait(ctx, u.Host); err != nil {
		return "", err
	}

	if d := f.jitter(); d > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(d):
		}
	}

	return f.next.Fetch(ctx, rawURL)
}

// Close closes the wrapped fetcher.
func (f *PoliteFetcher) Close() error {
	return f.next.Close()
}

func (f *PoliteFetcher) checkRobots(ctx context.Context, host, rawURL string) error {
	if f.robots == nil {
		return nil
	}

	f.mu.Lock()
	done := f.checked[host]
	f.checked[host] = true
	f.mu.Unlock()
	if done {
		return nil
	}

	allowed, err := f.robots.Allowed(ctx, rawURL)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		f.logger.Warn("robots.txt check failed", "url", rawURL, "err", err)
		return nil
	}
	if !allowed {
		f.logger.Warn("robots.txt disallows url", "url", rawURL)
	}
	return nil
}

func (f *PoliteFetcher) jitter() time.Duration {
	if f.maxJitter <= f.minJitter {
		return f.minJitter
	}
	return f.minJitter + rand.N(f.maxJitter-f.minJitter)
}
