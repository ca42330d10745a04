package mock

import "github.com/fwojciec/itinerary"

var _ itinerary.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of itinerary.Extractor.
type Extractor struct {
	ExtractFn func(pageType itinerary.PageType, html string) (*itinerary.Result, error)
}

func (e *Extractor) Extract(pageType itinerary.PageType, html string) (*itinerary.Result, error) {
	return e.ExtractFn(pageType, html)
}
