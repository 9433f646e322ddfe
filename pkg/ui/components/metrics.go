package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

const (
	cardPadding      = 8
	cardCornerRadius = 8
	cardElevation    = 4

	ScheduleCardWidth  = 250
	ScheduleCardHeight = 160
	AvatarSize         = 48
)

var shadowColor color.Color = color.NRGBA{A: 0x40}

// Spacer is a transparent fixed-size gap.
func Spacer(width, height float32) fyne.CanvasObject {
	r := canvas.NewRectangle(color.Transparent)
	r.SetMinSize(fyne.NewSize(width, height))
	return r
}

// newCardBackground returns the shadow and surface rectangles of a card.
func newCardBackground(fill color.Color) (shadow, bg *canvas.Rectangle) {
	shadow = canvas.NewRectangle(shadowColor)
	shadow.CornerRadius = cardCornerRadius
	bg = canvas.NewRectangle(fill)
	bg.CornerRadius = cardCornerRadius
	return shadow, bg
}

// layoutCardBackground sizes the card surface to size, leaving room for the
// shadow offset underneath.
func layoutCardBackground(shadow, bg *canvas.Rectangle, size fyne.Size) {
	inner := size.Subtract(fyne.NewSize(cardElevation/2, cardElevation))
	shadow.Move(fyne.NewPos(cardElevation/2, cardElevation))
	shadow.Resize(inner)
	bg.Move(fyne.NewPos(0, 0))
	bg.Resize(inner)
}
