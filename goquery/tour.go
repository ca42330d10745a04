package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/itinerary"
)

// Tour page selectors. The inclusions list on the same page shares the
// accordion markup, so day items are only read from inside the itinerary section.
const (
	tourDescriptionSelector = "div.ao-clp-custom-tdp-itinerary__description"
	tourSectionSelector     = "section.ao-clp-custom-tdp-itinerary"
	tourDaySelector         = "li.js-ao-common-accordion"
	tourTitleSelector       = "div.js-ao-common-accordion__title"
	tourArrowSelector       = "div.ao-common-accordion__arrow"
	tourContentSelector     = "div.ao-common-accordion__bottom-content"
)

var (
	tourDayPattern = regexp.MustCompile(`^Day (\d+):`)
	tourDayPrefix  = regexp.MustCompile(`^Day \d+:\s*`)
)

// ExtractTourSummary returns the tour's itinerary description as a
// single-element slice. Sentence fragments are trimmed and rejoined with ". ".
// Returns a slice holding one empty string if the page has no description.
func ExtractTourSummary(doc *goquery.Document) []string {
	desc, ok := first(doc.Selection, tourDescriptionSelector)
	if !ok {
		return []string{""}
	}

	text := itinerary.Normalize(strippedText(desc))

	var sentences []string
	for _, s := range strings.Split(text, ".") {
		if s = strings.TrimSpace(s); s != "" {
			sentences = append(sentences, s)
		}
	}

	return []string{strings.Join(sentences, ". ")}
}

// ExtractTourDays extracts one record per "Day N:" accordion item from the
// itinerary section of a tour page. Items with any other title, or without
// a body, are skipped.
// Returns an empty slice if the page has no itinerary section.
func ExtractTourDays(doc *goquery.Document) []itinerary.DayRecord {
	days := []itinerary.DayRecord{}

	section, ok := first(doc.Selection, tourSectionSelector)
	if !ok {
		return days
	}

	section.Find(tourDaySelector).Each(func(_ int, item *goquery.Selection) {
		if day, ok := tourDay(item); ok {
			days = append(days, day)
		}
	})

	return days
}

func tourDay(item *goquery.Selection) (itinerary.DayRecord, bool) {
	var day itinerary.DayRecord

	title, ok := first(item, tourTitleSelector)
	if !ok {
		return day, false
	}

	text := strippedText(title)
	// The arrow's label leaks into the title text on some pages.
	if arrow, ok := first(title, tourArrowSelector); ok {
		if label := strippedText(arrow); label != "" {
			text = strings.TrimSpace(strings.ReplaceAll(text, label, ""))
		}
	}
	text = itinerary.Normalize(text)

	match := tourDayPattern.FindStringSubmatch(text)
	if match == nil {
		return day, false
	}
	day.Day = match[1]
	day.Title = tourDayPrefix.ReplaceAllString(text, "")

	if content, ok := first(item, tourContentSelector); ok {
		day.Body = itinerary.Normalize(tourBody(content))
	}

	if day.Title == "" || day.Body == "" {
		return day, false
	}
	return day, true
}

// tourBody joins the content's paragraphs with a space, or returns the
// content's own text when it has no paragraphs.
func tourBody(content *goquery.Selection) string {
	paragraphs := content.Find("p")
	if paragraphs.Length() == 0 {
		return strippedText(content)
	}
	texts := paragraphs.Map(func(_ int, p *goquery.Selection) string {
		return strippedText(p)
	})
	return strings.Join(texts, " ")
}
