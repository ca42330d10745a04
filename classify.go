package itinerary

import "strings"

// PageType identifies which family of booking page a URL points at.
type PageType string

// PageType constants.
const (
	PageTypeUnknown PageType = ""
	PageTypeCruise  PageType = "cruise"
	PageTypeTour    PageType = "tour"
)

// String returns the page type name, or "unknown".
func (t PageType) String() string {
	if t == PageTypeUnknown {
		return "unknown"
	}
	return string(t)
}

// Title returns the capitalized page type name for display.
func (t PageType) Title() string {
	switch t {
	case PageTypeCruise:
		return "Cruise"
	case PageTypeTour:
		return "Tour"
	}
	return "Unknown"
}

// ParsePageType converts a page type name to a PageType.
func ParsePageType(s string) (PageType, error) {
	switch PageType(strings.ToLower(strings.TrimSpace(s))) {
	case PageTypeCruise:
		return PageTypeCruise, nil
	case PageTypeTour:
		return PageTypeTour, nil
	}
	return PageTypeUnknown, Errorf(EINVALID, "unknown page type %q", s)
}

// Classify returns the page type for a URL by matching the product subdomain
// token. It does not parse the URL.
// Returns PageTypeUnknown if the URL matches neither family.
func Classify(url string) PageType {
	switch {
	case strings.Contains(url, "cruises.flightcentre"):
		return PageTypeCruise
	case strings.Contains(url, "tours.flightcentre"):
		return PageTypeTour
	}
	return PageTypeUnknown
}
