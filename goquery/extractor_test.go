package goquery_test

import (
	"testing"

	"github.com/fwojciec/itinerary"
	locgoquery "github.com/fwojciec/itinerary/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("cruise result has empty summary", func(t *testing.T) {
		t.Parallel()

		html := cruisePage(cruiseItem("Day 1", "Sydney", `<span class="text-info-summary">Depart Sydney.</span>`))

		result, err := locgoquery.NewExtractor().Extract(itinerary.PageTypeCruise, html)

		require.NoError(t, err)
		assert.Equal(t, []string{""}, result.Summary)
		require.Len(t, result.Itinerary, 1)
		assert.Equal(t, "Sydney", result.Itinerary[0].Title)
	})

	t.Run("cruise result ignores tour description", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="ao-clp-custom-tdp-itinerary__description">A tour.</div></body></html>`

		result, err := locgoquery.NewExtractor().Extract(itinerary.PageTypeCruise, html)

		require.NoError(t, err)
		assert.Equal(t, []string{""}, result.Summary)
		assert.Empty(t, result.Itinerary)
	})

	t.Run("tour result has summary and days", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="ao-clp-custom-tdp-itinerary__description">Ten days in Vietnam.</div>
<section class="ao-clp-custom-tdp-itinerary"><ul>` + tourItem("Day 1: Hanoi", "<p>Arrive.</p>") + `</ul></section>
</body></html>`

		result, err := locgoquery.NewExtractor().Extract(itinerary.PageTypeTour, html)

		require.NoError(t, err)
		assert.Equal(t, []string{"Ten days in Vietnam"}, result.Summary)
		require.Len(t, result.Itinerary, 1)
		assert.Equal(t, "Hanoi", result.Itinerary[0].Title)
	})

	t.Run("empty page yields empty itinerary", func(t *testing.T) {
		t.Parallel()

		result, err := locgoquery.NewExtractor().Extract(itinerary.PageTypeTour, "")

		require.NoError(t, err)
		assert.Equal(t, []string{""}, result.Summary)
		require.NotNil(t, result.Itinerary)
		assert.Empty(t, result.Itinerary)
	})

	t.Run("rejects unknown page type", func(t *testing.T) {
		t.Parallel()

		_, err := locgoquery.NewExtractor().Extract(itinerary.PageTypeUnknown, "<html></html>")

		require.Error(t, err)
		assert.Equal(t, itinerary.EINVALID, itinerary.ErrorCode(err))
	})
}
