package screen

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"

	"github.com/borgmon/eventease/pkg/ui/appearance"
	"github.com/borgmon/eventease/pkg/ui/components"
)

const (
	// AppTitle is shown in the top bar.
	AppTitle = "EventEase"

	BuyTicketsLabel    = "Buy Tickets"
	AddToCalendarLabel = "Add to Calendar"

	barPadding = 16
)

// Shell wraps a DetailScreen with the top bar and the action bar.
type Shell struct {
	Title         *canvas.Text
	Screen        *DetailScreen
	BuyTickets    *components.ActionButton
	AddToCalendar *components.ActionButton

	palette appearance.Palette
}

// NewShell assembles the top bar, screen body and bottom buttons.
func NewShell(title string, screen *DetailScreen, actions Actions, palette appearance.Palette) *Shell {
	t := canvas.NewText(title, palette.OnBackground)
	t.TextSize = 22

	return &Shell{
		Title:  t,
		Screen: screen,
		BuyTickets: components.NewActionButton(BuyTicketsLabel,
			palette.Primary, palette.OnPrimary, actions.BuyTickets),
		AddToCalendar: components.NewActionButton(AddToCalendarLabel,
			palette.Secondary, palette.OnSecondary, actions.AddToCalendar),
		palette: palette,
	}
}

// CanvasObject lays the shell out as top bar / body / bottom bar.
func (s *Shell) CanvasObject() fyne.CanvasObject {
	pad := func(o fyne.CanvasObject) fyne.CanvasObject {
		return container.New(layout.NewCustomPaddedLayout(barPadding, barPadding, barPadding, barPadding), o)
	}

	topBar := pad(s.Title)
	bottomBar := pad(container.NewHBox(
		layout.NewSpacer(),
		s.BuyTickets,
		layout.NewSpacer(),
		s.AddToCalendar,
		layout.NewSpacer(),
	))

	return container.NewStack(
		canvas.NewRectangle(s.palette.Background),
		container.NewBorder(topBar, bottomBar, nil, nil, s.Screen.CanvasObject()),
	)
}
