package components

import "strings"

const (
	// MaxRating is the largest number of stars a review can show.
	MaxRating = 5
	starGlyph = "★"
)

// ClampRating limits rating to [0, MaxRating].
func ClampRating(rating int) int {
	if rating < 0 {
		return 0
	}
	if rating > MaxRating {
		return MaxRating
	}
	return rating
}

// Stars renders rating as a row of star glyphs.
func Stars(rating int) string {
	return strings.Repeat(starGlyph, ClampRating(rating))
}
