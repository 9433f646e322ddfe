package sections

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/borgmon/eventease/pkg/models"
	"github.com/borgmon/eventease/pkg/ui/appearance"
	"github.com/borgmon/eventease/pkg/ui/components"
)

// BannerHeight is the fixed height of the header image.
const BannerHeight = 200

// Header is the banner, title, location and description block.
type Header struct {
	widget.BaseWidget
	Details models.EventDetails

	banner  fyne.Resource
	palette appearance.Palette
}

// NewHeader creates the header block for details.
func NewHeader(details models.EventDetails, banner fyne.Resource, palette appearance.Palette) *Header {
	h := &Header{Details: details, banner: banner, palette: palette}
	h.ExtendBaseWidget(h)
	return h
}

// CreateRenderer implements fyne.Widget
func (h *Header) CreateRenderer() fyne.WidgetRenderer {
	image := canvas.NewImageFromResource(h.banner)
	image.FillMode = canvas.ImageFillCover
	image.CornerRadius = 8
	image.SetMinSize(fyne.NewSize(0, BannerHeight))

	title := sectionTitle(h.Details.Title, h.palette.OnBackground)

	location := canvas.NewText(h.Details.LocationLine(), appearance.Fade(h.palette.OnBackground, 0.7))
	location.TextSize = bodyTextSize

	description := widget.NewLabel(h.Details.Description)
	description.Wrapping = fyne.TextWrapWord

	content := container.NewVBox(
		image,
		components.Spacer(0, 8),
		title,
		components.Spacer(0, 4),
		location,
		description,
	)

	return widget.NewSimpleRenderer(inset(content, horizontalPadding, horizontalPadding))
}
