// Package goquery implements itinerary extraction from vendor HTML using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/itinerary"
)

// Ensure Extractor implements itinerary.Extractor at compile time.
var _ itinerary.Extractor = (*Extractor)(nil)

// Extractor parses page markup and extracts its itinerary.
// It holds no state and is safe for concurrent use.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses html and extracts the itinerary for pageType.
// Cruise pages have no summary, so their summary is a single empty string.
func (e *Extractor) Extract(pageType itinerary.PageType, html string) (*itinerary.Result, error) {
	if pageType != itinerary.PageTypeCruise && pageType != itinerary.PageTypeTour {
		return nil, itinerary.Errorf(itinerary.EINVALID, "unsupported page type %q", pageType)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, itinerary.Errorf(itinerary.EINVALID, "failed to parse HTML: %v", err)
	}

	if pageType == itinerary.PageTypeCruise {
		return &itinerary.Result{
			Summary:   []string{""},
			Itinerary: ExtractCruiseDays(doc),
		}, nil
	}
	return &itinerary.Result{
		Summary:   ExtractTourSummary(doc),
		Itinerary: ExtractTourDays(doc),
	}, nil
}
