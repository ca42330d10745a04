// Package scrape orchestrates itinerary extraction: it classifies a URL,
// fetches its markup and hands it to the extractor for the page type.
package scrape

import (
	"context"

	"github.com/fwojciec/itinerary"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages ScrapeAll fetches at once.
const DefaultConcurrency = 3

// Scraper extracts itineraries from cruise and tour page URLs.
// A Scraper holds no per-call state and is safe for concurrent use.
type Scraper struct {
	Fetcher   itinerary.Fetcher
	Extractor itinerary.Extractor

	// Concurrency limits parallel fetches in ScrapeAll.
	// Defaults to DefaultConcurrency if zero.
	Concurrency int
}

// Outcome is the result of scraping one URL in a batch.
type Outcome struct {
	URL      string
	PageType itinerary.PageType
	Result   *itinerary.Result
	Err      error
}

// Scrape extracts the itinerary at url.
//
// Returns EUNRECOGNIZED without fetching if url is neither a cruise nor a
// tour page, and EFETCH wrapping the cause if the page cannot be retrieved.
// A page without an itinerary is not an error; its result has no days.
func (s *Scraper) Scrape(ctx context.Context, url string) (*itinerary.Result, error) {
	pageType := itinerary.Classify(url)
	if pageType == itinerary.PageTypeUnknown {
		return nil, itinerary.Errorf(itinerary.EUNRECOGNIZED, "URL is not a recognized Flight Centre cruise or tour URL")
	}

	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, itinerary.WrapError(itinerary.EFETCH, err, "failed to fetch page")
	}

	return s.Extractor.Extract(pageType, html)
}

// ScrapeAll scrapes each URL, fetching up to Concurrency pages at once.
// Repeated URLs are scraped once. Outcomes are returned in input order and
// a failed URL does not stop the others.
func (s *Scraper) ScrapeAll(ctx context.Context, urls []string) []Outcome {
	seen := make(map[string]bool, len(urls))
	var unique []string
	for _, u := range urls {
		if !seen[u] {
			seen[u] = true
			unique = append(unique, u)
		}
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	outcomes := make([]Outcome, len(unique))

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, u := range unique {
		g.Go(func() error {
			outcome := Outcome{URL: u, PageType: itinerary.Classify(u)}
			if err := ctx.Err(); err != nil {
				outcome.Err = err
			} else {
				outcome.Result, outcome.Err = s.Scrape(ctx, u)
			}
			outcomes[i] = outcome
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}
