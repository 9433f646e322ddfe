package sections

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/borgmon/eventease/pkg/models"
	"github.com/borgmon/eventease/pkg/ui/appearance"
	"github.com/borgmon/eventease/pkg/ui/components"
)

// ScheduleTitle heads the schedule section.
const ScheduleTitle = "Event Schedule"

// Schedule is the titled, horizontally scrolling row of schedule cards.
type Schedule struct {
	widget.BaseWidget
	Cards []*components.ScheduleCard

	palette appearance.Palette
}

// NewSchedule creates one card per entry, in order.
func NewSchedule(entries []models.ScheduleEntry, palette appearance.Palette) *Schedule {
	s := &Schedule{palette: palette}
	for _, entry := range entries {
		s.Cards = append(s.Cards, components.NewScheduleCard(entry, palette))
	}
	s.ExtendBaseWidget(s)
	return s
}

// CreateRenderer implements fyne.Widget
func (s *Schedule) CreateRenderer() fyne.WidgetRenderer {
	row := container.NewHBox()
	for _, card := range s.Cards {
		row.Add(card)
	}

	content := container.NewVBox(
		sectionTitle(ScheduleTitle, s.palette.OnBackground),
		components.Spacer(0, 8),
		container.NewHScroll(row),
	)

	return widget.NewSimpleRenderer(inset(content, 0, 0))
}
