package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/itinerary"
	"github.com/fwojciec/itinerary/bloom"
)

// Ensure SitemapService implements itinerary.SitemapService.
var _ itinerary.SitemapService = (*SitemapService)(nil)

// maxSitemapURLs sizes the de-duplication filter.
const maxSitemapURLs = 100_000

// SitemapService discovers page URLs from a site's sitemaps via HTTP.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a new SitemapService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client}
}

// DiscoverURLs finds all URLs listed in the sitemaps of baseURL's host,
// in sitemap order with duplicates removed.
// Returns an empty slice (not nil) if no sitemaps are found.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *itinerary.URLFilter) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, itinerary.Errorf(itinerary.EINVALID, "invalid base URL: %v", err)
	}
	root := &url.URL{Scheme: base.Scheme, Host: base.Host}

	sitemapURLs, err := s.findSitemapURLs(ctx, root)
	if err != nil {
		return nil, err
	}

	urls := []string{}
	w := &sitemapWalk{
		service:  s,
		sitemaps: make(map[string]bool),
		seen:     bloom.NewFilter(maxSitemapURLs, 0.0001),
		visit: func(u string) {
			if filter.Match(u) {
				urls = append(urls, u)
			}
		},
	}

	for _, sitemapURL := range sitemapURLs {
		if err := w.process(ctx, sitemapURL); err != nil {
			return nil, err
		}
	}

	return urls, nil
}

// sitemapWalk tracks state while resolving a tree of sitemaps.
type sitemapWalk struct {
	service  *SitemapService
	sitemaps map[string]bool
	seen     *bloom.Filter
	visit    func(url string)
}

// process fetches a sitemap and visits its URLs, recursing into sitemap indexes.
func (w *sitemapWalk) process(ctx context.Context, sitemapURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if w.sitemaps[sitemapURL] {
		return nil
	}
	w.sitemaps[sitemapURL] = true

	body, err := w.service.get(ctx, sitemapURL)
	if err != nil {
		return err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return fmt.Errorf("parsing sitemap XML: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return fmt.Errorf("empty sitemap XML at %s", sitemapURL)
	}

	if root.Tag == "sitemapindex" {
		for _, loc := range locs(root, "sitemap") {
			if err := w.process(ctx, loc); err != nil {
				return err
			}
		}
		return nil
	}

	for _, loc := range locs(root, "url") {
		if !w.seen.Seen(loc) {
			w.visit(loc)
		}
	}
	return nil
}

// locs returns the non-empty <loc> values of root's child elements named tag.
func locs(root *etree.Element, tag string) []string {
	var out []string
	for _, el := range root.SelectElements(tag) {
		loc := el.SelectElement("loc")
		if loc == nil {
			continue
		}
		if u := strings.TrimSpace(loc.Text()); u != "" {
			out = append(out, u)
		}
	}
	return out
}

// findSitemapURLs reads Sitemap directives from robots.txt, falling back to /sitemap.xml.
func (s *SitemapService) findSitemapURLs(ctx context.Context, root *url.URL) ([]string, error) {
	if sitemaps, err := s.sitemapsFromRobots(ctx, root); err == nil && len(sitemaps) > 0 {
		return sitemaps, nil
	}

	sitemapURL := root.ResolveReference(&url.URL{Path: "/sitemap.xml"}).String()
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, sitemapURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		// Context errors propagate; anything else means no sitemap.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, nil
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}
	return []string{sitemapURL}, nil
}

func (s *SitemapService) sitemapsFromRobots(ctx context.Context, root *url.URL) ([]string, error) {
	data, err := fetchRobots(ctx, s.client, root)
	if err != nil {
		return nil, fmt.Errorf("reading robots.txt: %w", err)
	}
	if data == nil {
		return nil, nil
	}
	return data.Sitemaps, nil
}

func (s *SitemapService) get(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: targetURL}
	}

	return resp.Body, nil
}
