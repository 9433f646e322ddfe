package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	buttonMinHeight = 40
	buttonPaddingX  = 24
)

// ActionButton is a filled, rounded button drawn with explicit palette colors
type ActionButton struct {
	widget.BaseWidget
	Text      string
	Fill      color.Color
	TextColor color.Color
	OnTapped  func()

	hovered bool
}

// NewActionButton creates a new ActionButton
func NewActionButton(text string, fill, textColor color.Color, onTapped func()) *ActionButton {
	b := &ActionButton{
		Text:      text,
		Fill:      fill,
		TextColor: textColor,
		OnTapped:  onTapped,
	}
	b.ExtendBaseWidget(b)
	return b
}

// CreateRenderer implements fyne.Widget
func (b *ActionButton) CreateRenderer() fyne.WidgetRenderer {
	text := canvas.NewText(b.Text, b.TextColor)
	text.Alignment = fyne.TextAlignCenter
	text.TextStyle = fyne.TextStyle{Bold: true}

	bg := canvas.NewRectangle(b.Fill)
	bg.CornerRadius = buttonMinHeight / 2

	return &actionButtonRenderer{
		button: b,
		text:   text,
		bg:     bg,
	}
}

// Tapped implements fyne.Tappable
func (b *ActionButton) Tapped(*fyne.PointEvent) {
	if b.OnTapped != nil {
		b.OnTapped()
	}
}

// MouseIn implements desktop.Hoverable
func (b *ActionButton) MouseIn(*desktop.MouseEvent) {
	b.hovered = true
	b.Refresh()
}

// MouseMoved implements desktop.Hoverable
func (b *ActionButton) MouseMoved(*desktop.MouseEvent) {}

// MouseOut implements desktop.Hoverable
func (b *ActionButton) MouseOut() {
	b.hovered = false
	b.Refresh()
}

// Cursor implements desktop.Cursorable
func (b *ActionButton) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

// hoverFill lightens the fill slightly while the pointer is over the button
func hoverFill(fill color.Color) color.Color {
	c, ok := colorful.MakeColor(fill)
	if !ok {
		return fill
	}
	return c.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, 0.15).Clamped()
}

type actionButtonRenderer struct {
	button *ActionButton
	text   *canvas.Text
	bg     *canvas.Rectangle
}

func (r *actionButtonRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)

	textHeight := r.text.MinSize().Height
	r.text.Move(fyne.NewPos(0, (size.Height-textHeight)/2))
	r.text.Resize(fyne.NewSize(size.Width, textHeight))
}

func (r *actionButtonRenderer) MinSize() fyne.Size {
	textSize := r.text.MinSize()
	return fyne.NewSize(textSize.Width+buttonPaddingX*2, fyne.Max(textSize.Height, buttonMinHeight))
}

func (r *actionButtonRenderer) Refresh() {
	r.text.Text = r.button.Text
	r.text.Color = r.button.TextColor

	if r.button.hovered {
		r.bg.FillColor = hoverFill(r.button.Fill)
	} else {
		r.bg.FillColor = r.button.Fill
	}

	r.bg.Refresh()
	r.text.Refresh()
}

func (r *actionButtonRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.text}
}

func (r *actionButtonRenderer) Destroy() {}
