package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/borgmon/eventease/pkg/models"
	"github.com/borgmon/eventease/pkg/ui/appearance"
)

// ScheduleCard shows one schedule entry: time above name above description.
type ScheduleCard struct {
	widget.BaseWidget
	Entry models.ScheduleEntry

	palette appearance.Palette
}

// NewScheduleCard creates a card for entry drawn with palette.
func NewScheduleCard(entry models.ScheduleEntry, palette appearance.Palette) *ScheduleCard {
	c := &ScheduleCard{Entry: entry, palette: palette}
	c.ExtendBaseWidget(c)
	return c
}

// CreateRenderer implements fyne.Widget
func (c *ScheduleCard) CreateRenderer() fyne.WidgetRenderer {
	shadow, bg := newCardBackground(c.palette.Surface)

	timeText := canvas.NewText(c.Entry.Time, appearance.Fade(c.palette.OnSurface, 0.7))
	timeText.TextSize = 16

	name := canvas.NewText(c.Entry.Name, c.palette.OnSurface)
	name.TextSize = 22
	name.TextStyle = fyne.TextStyle{Bold: true}

	description := widget.NewLabel(c.Entry.Description)
	description.Wrapping = fyne.TextWrapWord

	return &scheduleCardRenderer{
		card:        c,
		shadow:      shadow,
		bg:          bg,
		time:        timeText,
		name:        name,
		description: description,
		content:     container.NewVBox(timeText, name, description),
	}
}

type scheduleCardRenderer struct {
	card        *ScheduleCard
	shadow      *canvas.Rectangle
	bg          *canvas.Rectangle
	time        *canvas.Text
	name        *canvas.Text
	description *widget.Label
	content     *fyne.Container
}

func (r *scheduleCardRenderer) Layout(size fyne.Size) {
	layoutCardBackground(r.shadow, r.bg, size)

	r.content.Move(fyne.NewPos(cardPadding, cardPadding))
	r.content.Resize(r.bg.Size().Subtract(fyne.NewSize(cardPadding*2, cardPadding*2)))
}

func (r *scheduleCardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(ScheduleCardWidth, ScheduleCardHeight)
}

func (r *scheduleCardRenderer) Refresh() {
	p := r.card.palette
	r.bg.FillColor = p.Surface
	r.time.Text = r.card.Entry.Time
	r.time.Color = appearance.Fade(p.OnSurface, 0.7)
	r.name.Text = r.card.Entry.Name
	r.name.Color = p.OnSurface
	r.description.SetText(r.card.Entry.Description)

	r.bg.Refresh()
	r.time.Refresh()
	r.name.Refresh()
}

func (r *scheduleCardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.shadow, r.bg, r.content}
}

func (r *scheduleCardRenderer) Destroy() {}
