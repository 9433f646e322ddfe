// Package screen assembles the event detail screen and its app shell.
package screen

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"

	"github.com/borgmon/eventease/pkg/models"
	"github.com/borgmon/eventease/pkg/ui/appearance"
	"github.com/borgmon/eventease/pkg/ui/components"
	"github.com/borgmon/eventease/pkg/ui/sections"
)

const (
	sectionGap    = 16
	bodyTopPad    = 16
	bodyBottomPad = 80 // room for the bottom bar
)

// Assets are the images the screen draws.
type Assets struct {
	Banner fyne.Resource
	Avatar fyne.Resource
}

// DetailScreen is the scrollable stack of header, schedule and reviews.
type DetailScreen struct {
	Header   *sections.Header
	Schedule *sections.Schedule
	Reviews  *sections.Reviews

	palette appearance.Palette
	body    *fyne.Container
}

// NewDetailScreen builds the screen for event. It has no side effects, so
// building twice from the same inputs gives the same tree.
func NewDetailScreen(event models.Event, palette appearance.Palette, assets Assets) *DetailScreen {
	d := &DetailScreen{
		Header:   sections.NewHeader(event.Details, assets.Banner, palette),
		Schedule: sections.NewSchedule(event.Schedule, palette),
		Reviews:  sections.NewReviews(event.Reviews, assets.Avatar, palette),
		palette:  palette,
	}

	d.body = container.NewVBox(
		d.Header,
		components.Spacer(0, sectionGap),
		d.Schedule,
		components.Spacer(0, sectionGap),
		d.Reviews,
	)

	return d
}

// CanvasObject returns the scrollable screen content.
func (d *DetailScreen) CanvasObject() fyne.CanvasObject {
	padded := container.New(layout.NewCustomPaddedLayout(bodyTopPad, bodyBottomPad, 0, 0), d.body)
	return container.NewStack(canvas.NewRectangle(d.palette.Background), container.NewVScroll(padded))
}

// Outline lists the sections top to bottom, e.g. "schedule:3".
func (d *DetailScreen) Outline() []string {
	var outline []string
	for _, o := range d.body.Objects {
		switch v := o.(type) {
		case *sections.Header:
			outline = append(outline, "header")
		case *sections.Schedule:
			outline = append(outline, fmt.Sprintf("schedule:%d", len(v.Cards)))
		case *sections.Reviews:
			outline = append(outline, fmt.Sprintf("reviews:%d", len(v.Cards)))
		case *canvas.Rectangle:
			if v.FillColor == color.Transparent {
				outline = append(outline, "spacer")
			}
		}
	}
	return outline
}
