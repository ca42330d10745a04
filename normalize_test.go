package itinerary_test

import (
	"testing"

	"github.com/fwojciec/itinerary"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain ascii unchanged", "Visit the old town.", "Visit the old town."},
		{"en dash", "Hanoi – Halong Bay", "Hanoi - Halong Bay"},
		{"em dash", "Nassau—Bahamas", "Nassau-Bahamas"},
		{"single quotes", "‘the ship’s deck’", "'the ship's deck'"},
		{"double quotes", "“Pearl of the Orient”", `"Pearl of the Orient"`},
		{"ellipsis", "and more…", "and more..."},
		{"whitespace preserved", "  two  spaces\n", "  two  spaces\n"},
		{"other unicode untouched", "Île de la Cité", "Île de la Cité"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, itinerary.Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"Day 1 – Arrive “Saigon”…",
		"It’s ‘a’ — trip",
		"...'\"-",
	}

	for _, s := range inputs {
		once := itinerary.Normalize(s)
		assert.Equal(t, once, itinerary.Normalize(once))
	}
}
