// Package markdown renders extraction results as a human-readable
// Markdown preview.
package markdown

import (
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/fwojciec/itinerary"
	"github.com/nao1215/markdown"
)

// Writer renders previews of extraction results to an output stream.
type Writer struct {
	output io.Writer
}

// NewWriter creates a Writer that outputs to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{output: w}
}

// WritePreview renders the result extracted from url: headline figures,
// the summary, and one collapsible section per day.
func (w *Writer) WritePreview(url string, pageType itinerary.PageType, result *itinerary.Result) error {
	md := markdown.NewMarkdown(w.output)

	md.H1(pageType.Title() + " Itinerary")
	md.PlainText("")
	md.PlainTextf("Source: %s", url)
	md.PlainText("")

	writeStats(md, pageType, result)
	writeSummary(md, pageType, result)
	writeDays(md, result)

	return md.Build()
}

func writeStats(md *markdown.Markdown, pageType itinerary.PageType, result *itinerary.Result) {
	stats := []string{
		"Type: " + pageType.Title(),
		"Days Found: " + strconv.Itoa(len(result.Itinerary)),
	}

	days := result.Itinerary
	switch {
	case pageType == itinerary.PageTypeCruise && len(days) > 0:
		stats = append(stats, "Route: "+days[0].Title+" → "+days[len(days)-1].Title)
	case pageType == itinerary.PageTypeTour:
		stats = append(stats, "Summary Length: "+strconv.Itoa(utf8.RuneCountInString(result.SummaryText())))
	default:
		stats = append(stats, "Route: No itinerary found")
	}

	md.BulletList(stats...)
	md.PlainText("")
}

func writeSummary(md *markdown.Markdown, pageType itinerary.PageType, result *itinerary.Result) {
	md.H2("Summary")
	md.PlainText("")

	switch summary := result.SummaryText(); {
	case summary != "":
		md.PlainText(summary)
	case pageType == itinerary.PageTypeCruise:
		md.PlainText("No summary available for cruise itineraries")
	default:
		md.PlainText("No summary found")
	}
	md.PlainText("")
}

func writeDays(md *markdown.Markdown, result *itinerary.Result) {
	md.H2("Itinerary")
	md.PlainText("")

	if len(result.Itinerary) == 0 {
		md.PlainText("No itinerary days found")
		return
	}

	for _, day := range result.Itinerary {
		md.Details("Day "+day.Day+": "+day.Title, day.Body)
	}
}
