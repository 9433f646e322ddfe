// Package appearance resolves the color palette for the event screen and
// exposes it as a Fyne theme.
package appearance

import (
	"image/color"
)

// Palette is the named set of colors applied across the UI.
type Palette struct {
	Dark bool

	Primary      color.Color
	OnPrimary    color.Color
	Secondary    color.Color
	OnSecondary  color.Color
	Background   color.Color
	OnBackground color.Color
	Surface      color.Color
	OnSurface    color.Color
}

// StarColor is the gold used for rating glyphs in every palette.
var StarColor color.Color = color.NRGBA{R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF}

var (
	white = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	black = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
)

// LightPalette is the fixed palette used when dark mode is off.
var LightPalette = Palette{
	Dark:         false,
	Primary:      color.NRGBA{R: 0x62, G: 0x00, B: 0xEE, A: 0xFF},
	OnPrimary:    white,
	Secondary:    color.NRGBA{R: 0x03, G: 0xDA, B: 0xC6, A: 0xFF},
	OnSecondary:  black,
	Background:   white,
	OnBackground: black,
	Surface:      white,
	OnSurface:    black,
}

// DarkPalette is the fixed palette used when dark mode is on.
var DarkPalette = Palette{
	Dark:         true,
	Primary:      color.NRGBA{R: 0xBB, G: 0x86, B: 0xFC, A: 0xFF},
	OnPrimary:    white,
	Secondary:    color.NRGBA{R: 0x03, G: 0xDA, B: 0xC6, A: 0xFF},
	OnSecondary:  black,
	Background:   color.NRGBA{R: 0x12, G: 0x12, B: 0x12, A: 0xFF},
	OnBackground: white,
	Surface:      color.NRGBA{R: 0x1F, G: 0x1B, B: 0x24, A: 0xFF},
	OnSurface:    white,
}

// Fade returns c with its alpha scaled by alpha (0..1).
func Fade(c color.Color, alpha float64) color.Color {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}

	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A)*alpha + 0.5)
	return n
}
