// Package sections composes cards and text into the blocks of the event screen.
package sections

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
)

const (
	horizontalPadding = 16
	titleTextSize     = 24
	bodyTextSize      = 14
)

func sectionTitle(text string, c color.Color) *canvas.Text {
	title := canvas.NewText(text, c)
	title.TextSize = titleTextSize
	title.TextStyle = fyne.TextStyle{Bold: true}
	return title
}

// inset pads content on the left and right.
func inset(content fyne.CanvasObject, top, bottom float32) *fyne.Container {
	return container.New(layout.NewCustomPaddedLayout(top, bottom, horizontalPadding, horizontalPadding), content)
}
