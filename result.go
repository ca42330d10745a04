package itinerary

import (
	"encoding/json"
	"io"
)

// SeaDayBody is the body given to a cruise day spent at sea when the page
// has no description for it.
const SeaDayBody = "Day at sea - enjoy the ship's amenities and relax as you cruise to your next destination."

// SeaDayTitle is the title the vendor uses for cruise days without a port of call.
const SeaDayTitle = "At Sea"

// DefaultBody returns the body given to a cruise day whose page has no description.
func DefaultBody(title string) string {
	return "Explore " + title + " and enjoy the local attractions and culture."
}

// DayRecord is one itinerary day or cruise port of call.
// Field order matches the JSON document consumers depend on.
type DayRecord struct {
	// Icon is reserved and currently always empty.
	Icon string `json:"icon"`

	// Day is the day number exactly as it appears on the page.
	Day string `json:"day"`

	Title string `json:"title"`

	// Image is reserved and currently always empty.
	Image string `json:"image"`

	Body string `json:"body"`
}

// Result is the outcome of extracting a single page.
type Result struct {
	// Summary always holds exactly one element. It is empty for cruises.
	Summary []string `json:"summary"`

	// Itinerary lists days in document order.
	Itinerary []DayRecord `json:"itinerary"`
}

// NewResult returns a Result with the given summary and days.
// A nil days slice becomes an empty one so it encodes as [].
func NewResult(summary string, days []DayRecord) *Result {
	if days == nil {
		days = []DayRecord{}
	}
	return &Result{
		Summary:   []string{summary},
		Itinerary: days,
	}
}

// SummaryText returns the single summary string, or "" if there is none.
func (r *Result) SummaryText() string {
	if len(r.Summary) == 0 {
		return ""
	}
	return r.Summary[0]
}

// WriteJSON writes the result as an indented JSON document.
// Non-ASCII and HTML characters are written as-is.
func (r *Result) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(r)
}
