package itinerary

import (
	"context"
	"regexp"
)

// SitemapService discovers page URLs from a site's sitemaps.
type SitemapService interface {
	// DiscoverURLs finds all URLs listed in a site's sitemaps.
	// It reads Sitemap directives from robots.txt, falling back to
	// /sitemap.xml. Sitemap indexes are resolved recursively.
	//
	// If filter is nil, all URLs are returned.
	DiscoverURLs(ctx context.Context, baseURL string, filter *URLFilter) ([]string, error)
}

// URLFilter specifies patterns for including/excluding URLs.
type URLFilter struct {
	// Include patterns. If set, a URL must match at least one.
	Include []*regexp.Regexp

	// Exclude patterns, applied after Include.
	Exclude []*regexp.Regexp

	// PageTypes restricts URLs to those Classify recognizes as one of these types.
	PageTypes []PageType
}

// Match returns true if the URL passes the filter.
// A nil filter matches every URL.
func (f *URLFilter) Match(url string) bool {
	if f == nil {
		return true
	}

	if len(f.PageTypes) > 0 && !f.matchPageType(url) {
		return false
	}

	if len(f.Include) > 0 && !matchAny(f.Include, url) {
		return false
	}

	return !matchAny(f.Exclude, url)
}

func (f *URLFilter) matchPageType(url string) bool {
	t := Classify(url)
	for _, want := range f.PageTypes {
		if t == want {
			return true
		}
	}
	return false
}

func matchAny(patterns []*regexp.Regexp, s string) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
