package appearance

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/lucasb-eyer/go-colorful"
)

// Options selects the palette variant.
type Options struct {
	Dark    bool // prefer the dark variant
	Dynamic bool // prefer a platform-derived palette when one is available
}

// DynamicSource reports the platform color a dynamic palette is derived from.
type DynamicSource interface {
	SeedColor() (color.Color, bool)
}

// Resolve picks the palette for opts. A dynamic palette is used only when
// requested and src can supply a seed; otherwise the fixed light or dark
// palette is returned.
func Resolve(opts Options, src DynamicSource) Palette {
	if opts.Dynamic && src != nil {
		if seed, ok := src.SeedColor(); ok {
			if p, ok := DynamicPalette(seed, opts.Dark); ok {
				return p
			}
		}
	}

	if opts.Dark {
		return DarkPalette
	}
	return LightPalette
}

// DynamicPalette builds a tonal palette around seed. It reports false when
// the seed has no usable color.
func DynamicPalette(seed color.Color, dark bool) (Palette, bool) {
	if seed == nil {
		return Palette{}, false
	}
	c, ok := colorful.MakeColor(seed)
	if !ok {
		return Palette{}, false
	}

	h, chroma, _ := c.Hcl()
	accentChroma := chroma * 0.6
	secondaryHue := h + 60
	if secondaryHue >= 360 {
		secondaryHue -= 360
	}

	var p Palette
	if dark {
		p = Palette{
			Dark:       true,
			Primary:    colorful.Hcl(h, chroma, 0.80).Clamped(),
			Secondary:  colorful.Hcl(secondaryHue, accentChroma, 0.75).Clamped(),
			Background: colorful.Hcl(h, 0.02, 0.07).Clamped(),
			Surface:    colorful.Hcl(h, 0.04, 0.12).Clamped(),
		}
	} else {
		p = Palette{
			Dark:       false,
			Primary:    colorful.Hcl(h, chroma, 0.40).Clamped(),
			Secondary:  colorful.Hcl(secondaryHue, accentChroma, 0.55).Clamped(),
			Background: colorful.Hcl(h, 0.02, 0.99).Clamped(),
			Surface:    colorful.Hcl(h, 0.04, 0.96).Clamped(),
		}
	}

	p.OnPrimary = contrastOn(p.Primary)
	p.OnSecondary = contrastOn(p.Secondary)
	p.OnBackground = contrastOn(p.Background)
	p.OnSurface = contrastOn(p.Surface)

	return p, true
}

func contrastOn(bg color.Color) color.Color {
	c, _ := colorful.MakeColor(bg)
	l, _, _ := c.Lab()
	if l > 0.6 {
		return black
	}
	return white
}

// SystemPrefersDark reports whether the host is in dark appearance.
func SystemPrefersDark(s fyne.Settings) bool {
	return s.ThemeVariant() == theme.VariantDark
}

// settingsSource seeds dynamic palettes from the user's Fyne primary color.
type settingsSource struct {
	settings fyne.Settings
}

// NewSettingsSource returns a DynamicSource backed by platform settings.
func NewSettingsSource(s fyne.Settings) DynamicSource {
	return settingsSource{settings: s}
}

func (s settingsSource) SeedColor() (color.Color, bool) {
	name := s.settings.PrimaryColor()
	if name == "" {
		return nil, false
	}
	return theme.PrimaryColorNamed(name), true
}
