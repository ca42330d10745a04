package itinerary

import "strings"

// typography maps typographic punctuation found in vendor copy to ASCII.
var typography = strings.NewReplacer(
	"\u2013", "-",   // en dash
	"\u2014", "-",   // em dash
	"\u2019", "'",   // right single quotation mark
	"\u2018", "'",   // left single quotation mark
	"\u201c", `"`,   // left double quotation mark
	"\u201d", `"`,   // right double quotation mark
	"\u2026", "...", // horizontal ellipsis
)

// Normalize replaces typographic dashes, quotes and ellipses with their ASCII
// equivalents. No other characters are touched, whitespace included.
func Normalize(text string) string {
	if text == "" {
		return text
	}
	return typography.Replace(text)
}
