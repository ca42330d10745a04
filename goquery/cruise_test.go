package goquery_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/itinerary"
	locgoquery "github.com/fwojciec/itinerary/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

// cruisePage wraps date-list items in the current itinerary container.
func cruisePage(items ...string) string {
	return `<!DOCTYPE html>
<html>
<body>
<div class="grid-item-block-dates-accordion">` + strings.Join(items, "\n") + `</div>
</body>
</html>`
}

func cruiseItem(day, title, content string) string {
	return `<div class="date-list">
	<div class="date"><h5>` + day + `</h5><span>Mon 3 Feb</span></div>
	<div class="location"><h5>` + title + `</h5><div class="content-wrap">` + content + `</div></div>
</div>`
}

func TestExtractCruiseDays(t *testing.T) {
	t.Parallel()

	t.Run("extracts day from nested text-info summary", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, cruisePage(cruiseItem("Day 3", "Nassau",
			`<span class="text-info"><span class="text-info-summary">Explore the beaches.</span></span>`)))

		days := locgoquery.ExtractCruiseDays(doc)

		require.Len(t, days, 1)
		assert.Equal(t, itinerary.DayRecord{
			Icon:  "",
			Day:   "3",
			Title: "Nassau",
			Image: "",
			Body:  "Explore the beaches.",
		}, days[0])
	})

	t.Run("reads top-level text-info summary", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, cruisePage(cruiseItem("Day 1", "Miami, Florida",
			`<div class="descr"><span class="text-info-summary">Board the ship.</span></div>`)))

		days := locgoquery.ExtractCruiseDays(doc)

		require.Len(t, days, 1)
		assert.Equal(t, "Board the ship.", days[0].Body)
	})

	t.Run("reads descr text without more and less toggles", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, cruisePage(cruiseItem("Day 2", "Great Stirrup Cay",
			`<div class="descr">Private island paradise.<span class="more">More</span><span class="less">Less</span></div>`)))

		days := locgoquery.ExtractCruiseDays(doc)

		require.Len(t, days, 1)
		assert.Equal(t, "Private island paradise.", days[0].Body)
	})

	t.Run("prefers nested summary over descr text", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, cruisePage(cruiseItem("Day 4", "Cozumel",
			`<div class="descr">Fallback text</div><span class="text-info"><span class="text-info-summary">Preferred text</span></span>`)))

		days := locgoquery.ExtractCruiseDays(doc)

		require.Len(t, days, 1)
		assert.Equal(t, "Preferred text", days[0].Body)
	})

	t.Run("falls through empty summary to descr", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, cruisePage(cruiseItem("Day 4", "Cozumel",
			`<span class="text-info"><span class="text-info-summary">  </span></span><div class="descr">Snorkel the reef.</div>`)))

		days := locgoquery.ExtractCruiseDays(doc)

		require.Len(t, days, 1)
		assert.Equal(t, "Snorkel the reef.", days[0].Body)
	})

	t.Run("fills sea day body", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, cruisePage(cruiseItem("Day 5", "At Sea", "")))

		days := locgoquery.ExtractCruiseDays(doc)

		require.Len(t, days, 1)
		assert.Equal(t, "Day at sea - enjoy the ship's amenities and relax as you cruise to your next destination.", days[0].Body)
	})

	t.Run("fills generic body when description missing", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, cruisePage(`<div class="date-list">
	<div><h5>Day 6</h5></div>
	<div><h5>Benoa (Bali)</h5></div>
</div>`))

		days := locgoquery.ExtractCruiseDays(doc)

		require.Len(t, days, 1)
		assert.Equal(t, "Explore Benoa (Bali) and enjoy the local attractions and culture.", days[0].Body)
	})

	t.Run("normalizes title and body", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, cruisePage(cruiseItem("Day 7", "Komodo – Indonesia",
			`<span class="text-info-summary">See the island’s “dragons”…</span>`)))

		days := locgoquery.ExtractCruiseDays(doc)

		require.Len(t, days, 1)
		assert.Equal(t, "Komodo - Indonesia", days[0].Title)
		assert.Equal(t, `See the island's "dragons"...`, days[0].Body)
	})

	t.Run("skips items without Day heading", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, cruisePage(
			cruiseItem("Embarkation", "Sydney", ""),
			cruiseItem("Day 2", "Brisbane", ""),
		))

		days := locgoquery.ExtractCruiseDays(doc)

		require.Len(t, days, 1)
		assert.Equal(t, "2", days[0].Day)
	})

	t.Run("skips items with fewer than two child blocks", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, cruisePage(`<div class="date-list"><div><h5>Day 1</h5></div></div>`))

		assert.Empty(t, locgoquery.ExtractCruiseDays(doc))
	})

	t.Run("skips items without location title", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, cruisePage(`<div class="date-list">
	<div><h5>Day 1</h5></div>
	<div><p>No heading here</p></div>
</div>`))

		assert.Empty(t, locgoquery.ExtractCruiseDays(doc))
	})

	t.Run("preserves document order", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, cruisePage(
			cruiseItem("Day 3", "Nassau", ""),
			cruiseItem("Day 1", "Miami", ""),
			cruiseItem("Day 2", "At Sea", ""),
		))

		days := locgoquery.ExtractCruiseDays(doc)

		require.Len(t, days, 3)
		assert.Equal(t, "3", days[0].Day)
		assert.Equal(t, "1", days[1].Day)
		assert.Equal(t, "2", days[2].Day)
	})

	t.Run("falls back to accordion block container", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body><div class="accordion-block">`+
			cruiseItem("Day 1", "Durban", `<span class="text-info-summary">Depart.</span>`)+
			`</div></body></html>`)

		days := locgoquery.ExtractCruiseDays(doc)

		require.Len(t, days, 1)
		assert.Equal(t, "Durban", days[0].Title)
	})

	t.Run("ignores date items outside the container", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body>`+
			cruiseItem("Day 9", "Elsewhere", "")+
			`<div class="grid-item-block-dates-accordion">`+cruiseItem("Day 1", "Durban", "")+`</div>`+
			`</body></html>`)

		days := locgoquery.ExtractCruiseDays(doc)

		require.Len(t, days, 1)
		assert.Equal(t, "Durban", days[0].Title)
	})

	t.Run("returns empty slice without container", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body><div class="date-list"></div></body></html>`)

		days := locgoquery.ExtractCruiseDays(doc)

		require.NotNil(t, days)
		assert.Empty(t, days)
	})
}
