package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/itinerary"
	locgoquery "github.com/fwojciec/itinerary/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tourPage wraps accordion items in the itinerary section, next to an
// inclusions section that uses the same accordion markup.
func tourPage(items ...string) string {
	return `<!DOCTYPE html>
<html>
<body>
<section class="ao-clp-custom-tdp-itinerary">
	<ul>` + strings.Join(items, "\n") + `</ul>
</section>
<section class="ao-clp-custom-tdp-inclusions">
	<ul>` + tourItem("Day 99: Inclusions", "<p>Should never be read.</p>") + `</ul>
</section>
</body>
</html>`
}

func tourItem(title, content string) string {
	return `<li class="js-ao-common-accordion">
	<div class="js-ao-common-accordion__title">` + title + `<div class="ao-common-accordion__arrow"></div></div>
	<div class="ao-common-accordion__bottom-content">` + content + `</div>
</li>`
}

func TestExtractTourDays(t *testing.T) {
	t.Parallel()

	t.Run("joins paragraphs into body", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, tourPage(tourItem("Day 2: Hoi An", "<p>Visit the old town.</p><p>Try local food.</p>")))

		days := locgoquery.ExtractTourDays(doc)

		require.Len(t, days, 1)
		assert.Equal(t, itinerary.DayRecord{
			Day:   "2",
			Title: "Hoi An",
			Body:  "Visit the old town. Try local food.",
		}, days[0])
	})

	t.Run("uses content text without paragraphs", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, tourPage(tourItem("Day 1: Hanoi", "Arrive in Hanoi.")))

		days := locgoquery.ExtractTourDays(doc)

		require.Len(t, days, 1)
		assert.Equal(t, "Arrive in Hanoi.", days[0].Body)
	})

	t.Run("removes arrow text from title", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, tourPage(`<li class="js-ao-common-accordion">
	<div class="js-ao-common-accordion__title">Day 3: Halong Bay<div class="ao-common-accordion__arrow">Expand</div></div>
	<div class="ao-common-accordion__bottom-content"><p>Cruise the bay.</p></div>
</li>`))

		days := locgoquery.ExtractTourDays(doc)

		require.Len(t, days, 1)
		assert.Equal(t, "Halong Bay", days[0].Title)
	})

	t.Run("strips prefix when title is split across elements", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, tourPage(tourItem("<span>Day 4:</span> <span>Hue</span>", "<p>Imperial city.</p>")))

		days := locgoquery.ExtractTourDays(doc)

		require.Len(t, days, 1)
		assert.Equal(t, "4", days[0].Day)
		assert.Equal(t, "Hue", days[0].Title)
	})

	t.Run("normalizes title and body", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, tourPage(tourItem("Day 5: Ho Chi Minh City – Mekong", "<p>Explore the delta’s markets…</p>")))

		days := locgoquery.ExtractTourDays(doc)

		require.Len(t, days, 1)
		assert.Equal(t, "Ho Chi Minh City - Mekong", days[0].Title)
		assert.Equal(t, "Explore the delta's markets...", days[0].Body)
	})

	t.Run("skips items not titled Day N", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, tourPage(
			tourItem("Accommodation", "<p>6 nights in hotels.</p>"),
			tourItem("Day 1: Hanoi", "<p>Arrive.</p>"),
			tourItem("Meals included: Day 2:", "<p>Breakfast.</p>"),
		))

		days := locgoquery.ExtractTourDays(doc)

		require.Len(t, days, 1)
		assert.Equal(t, "1", days[0].Day)
	})

	t.Run("skips items without body", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, tourPage(
			tourItem("Day 1: Hanoi", ""),
			`<li class="js-ao-common-accordion"><div class="js-ao-common-accordion__title">Day 2: Hue</div></li>`,
		))

		assert.Empty(t, locgoquery.ExtractTourDays(doc))
	})

	t.Run("skips items without title block", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, tourPage(`<li class="js-ao-common-accordion"><div class="ao-common-accordion__bottom-content"><p>Orphan.</p></div></li>`))

		assert.Empty(t, locgoquery.ExtractTourDays(doc))
	})

	t.Run("skips items with empty title after prefix", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, tourPage(tourItem("Day 1:", "<p>Arrive.</p>")))

		assert.Empty(t, locgoquery.ExtractTourDays(doc))
	})

	t.Run("does not scan inclusions section", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, tourPage(tourItem("Day 1: Hanoi", "<p>Arrive.</p>")))

		days := locgoquery.ExtractTourDays(doc)

		require.Len(t, days, 1)
		for _, d := range days {
			assert.NotEqual(t, "99", d.Day)
		}
	})

	t.Run("preserves document order", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, tourPage(
			tourItem("Day 2: Hue", "<p>b</p>"),
			tourItem("Day 1: Hanoi", "<p>a</p>"),
		))

		days := locgoquery.ExtractTourDays(doc)

		require.Len(t, days, 2)
		assert.Equal(t, "2", days[0].Day)
		assert.Equal(t, "1", days[1].Day)
	})

	t.Run("returns empty slice without itinerary section", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body><ul>`+tourItem("Day 1: Hanoi", "<p>Arrive.</p>")+`</ul></body></html>`)

		days := locgoquery.ExtractTourDays(doc)

		require.NotNil(t, days)
		assert.Empty(t, days)
	})
}

func TestExtractTourSummary(t *testing.T) {
	t.Parallel()

	t.Run("rejoins trimmed sentences", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body><div class="ao-clp-custom-tdp-itinerary__description">
	<p>Discover Vietnam’s highlights.   </p>
	<p>  Cruise Halong Bay.</p>
</div></body></html>`)

		summary := locgoquery.ExtractTourSummary(doc)

		assert.Equal(t, []string{"Discover Vietnam's highlights. Cruise Halong Bay"}, summary)
	})

	t.Run("drops empty fragments", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body><div class="ao-clp-custom-tdp-itinerary__description">Wait... what. Yes.</div></body></html>`)

		summary := locgoquery.ExtractTourSummary(doc)

		assert.Equal(t, []string{"Wait. what. Yes"}, summary)
	})

	t.Run("returns single empty string without description", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body><p>Nothing here.</p></body></html>`)

		assert.Equal(t, []string{""}, locgoquery.ExtractTourSummary(doc))
	})

	t.Run("returns single empty string for empty description", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body><div class="ao-clp-custom-tdp-itinerary__description"> </div></body></html>`)

		assert.Equal(t, []string{""}, locgoquery.ExtractTourSummary(doc))
	})
}
