package goquery

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/itinerary"
)

// Cruise page selectors.
const (
	cruiseContainerSelector         = "div.grid-item-block-dates-accordion"
	cruiseFallbackContainerSelector = "div.accordion-block"
	cruiseDaySelector               = "div.date-list"
	cruiseContentSelector           = "div.content-wrap"
)

var cruiseDayPattern = regexp.MustCompile(`Day\s+(\d+)`)

// bodyStrategy looks for a day's description inside a content wrapper.
// The bool result is false if the strategy found no text.
type bodyStrategy func(content *goquery.Selection) (string, bool)

// cruiseBodyStrategies are tried in order until one finds text.
// Each matches a template generation the vendor has shipped.
var cruiseBodyStrategies = []bodyStrategy{
	nestedSummaryBody,
	summaryBody,
	descrBody,
}

// nestedSummaryBody reads span.text-info > span.text-info-summary.
func nestedSummaryBody(content *goquery.Selection) (string, bool) {
	info, ok := first(content, "span.text-info")
	if !ok {
		return "", false
	}
	summary, ok := first(info, "span.text-info-summary")
	if !ok {
		return "", false
	}
	text := strippedText(summary)
	return text, text != ""
}

// summaryBody reads a span.text-info-summary anywhere in the wrapper.
func summaryBody(content *goquery.Selection) (string, bool) {
	summary, ok := first(content, "span.text-info-summary")
	if !ok {
		return "", false
	}
	text := strippedText(summary)
	return text, text != ""
}

// descrBody reads div.descr without its More/Less toggle labels.
// The toggles are removed from a copy so the document is left intact.
func descrBody(content *goquery.Selection) (string, bool) {
	descr, ok := first(content, "div.descr")
	if !ok {
		return "", false
	}
	descr = descr.Clone()
	descr.Find("span.more, span.less").Remove()
	text := strippedText(descr)
	return text, text != ""
}

func resolveBody(content *goquery.Selection, strategies []bodyStrategy) string {
	for _, strategy := range strategies {
		if text, ok := strategy(content); ok {
			return text
		}
	}
	return ""
}

// ExtractCruiseDays extracts one record per port of call from a cruise page.
// Items without a "Day N" heading or a location title are skipped. Every
// returned record has a body; days without a description get a generated one.
// Returns an empty slice if the page has no itinerary container.
func ExtractCruiseDays(doc *goquery.Document) []itinerary.DayRecord {
	days := []itinerary.DayRecord{}

	container, ok := first(doc.Selection, cruiseContainerSelector)
	if !ok {
		container, ok = first(doc.Selection, cruiseFallbackContainerSelector)
	}
	if !ok {
		return days
	}

	container.Find(cruiseDaySelector).Each(func(_ int, item *goquery.Selection) {
		if day, ok := cruiseDay(item); ok {
			days = append(days, day)
		}
	})

	return days
}

// cruiseDay parses a single date-list item. Its first child div holds the
// day heading; the second holds the location heading and description.
func cruiseDay(item *goquery.Selection) (itinerary.DayRecord, bool) {
	var day itinerary.DayRecord

	blocks := item.ChildrenFiltered("div")
	if blocks.Length() < 2 {
		return day, false
	}

	heading, ok := first(blocks.Eq(0), "h5")
	if !ok {
		return day, false
	}
	match := cruiseDayPattern.FindStringSubmatch(strippedText(heading))
	if match == nil {
		return day, false
	}
	day.Day = match[1]

	location := blocks.Eq(1)
	if title, ok := first(location, "h5"); ok {
		day.Title = itinerary.Normalize(strippedText(title))
	}
	if day.Title == "" {
		return day, false
	}

	if content, ok := first(location, cruiseContentSelector); ok {
		day.Body = itinerary.Normalize(resolveBody(content, cruiseBodyStrategies))
	}

	if day.Body == "" {
		if day.Title == itinerary.SeaDayTitle {
			day.Body = itinerary.SeaDayBody
		} else {
			day.Body = itinerary.DefaultBody(day.Title)
		}
	}

	return day, true
}
