package appearance

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Theme adapts a Palette to fyne.Theme so stock widgets match the screen.
// The palette's Dark flag wins over the variant Fyne passes in.
type Theme struct {
	palette Palette
}

var _ fyne.Theme = (*Theme)(nil)

// NewTheme creates a Theme for p.
func NewTheme(p Palette) *Theme {
	return &Theme{palette: p}
}

// Palette returns the palette the theme was built from.
func (t *Theme) Palette() Palette {
	return t.palette
}

func (t *Theme) variant() fyne.ThemeVariant {
	if t.palette.Dark {
		return theme.VariantDark
	}
	return theme.VariantLight
}

func (t *Theme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return t.palette.Primary
	case theme.ColorNameBackground:
		return t.palette.Background
	case theme.ColorNameForeground:
		return t.palette.OnBackground
	case theme.ColorNameButton, theme.ColorNameInputBackground, theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		return t.palette.Surface
	}
	return theme.DefaultTheme().Color(name, t.variant())
}

func (t *Theme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *Theme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *Theme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
