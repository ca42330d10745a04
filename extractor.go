package itinerary

// Extractor parses fetched markup and extracts the itinerary for a page type.
type Extractor interface {
	// Extract parses html and dispatches to the extractor for pageType.
	// Missing itinerary sections yield an empty itinerary, not an error.
	// Returns EINVALID if pageType is unknown or html cannot be parsed.
	Extract(pageType PageType, html string) (*Result, error)
}
