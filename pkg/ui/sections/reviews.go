package sections

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/borgmon/eventease/pkg/models"
	"github.com/borgmon/eventease/pkg/ui/appearance"
	"github.com/borgmon/eventease/pkg/ui/components"
)

// ReviewsTitle heads the reviews section.
const ReviewsTitle = "Reviews"

// Reviews is the titled vertical list of review cards.
type Reviews struct {
	widget.BaseWidget
	Cards []*components.ReviewCard

	palette appearance.Palette
}

// NewReviews creates one card per review, in order, all sharing avatar.
func NewReviews(reviews []models.Review, avatar fyne.Resource, palette appearance.Palette) *Reviews {
	r := &Reviews{palette: palette}
	for _, review := range reviews {
		r.Cards = append(r.Cards, components.NewReviewCard(review, avatar, palette))
	}
	r.ExtendBaseWidget(r)
	return r
}

// CreateRenderer implements fyne.Widget
func (r *Reviews) CreateRenderer() fyne.WidgetRenderer {
	list := container.NewVBox()
	for _, card := range r.Cards {
		list.Add(card)
		list.Add(components.Spacer(0, 8))
	}

	content := container.NewVBox(
		sectionTitle(ReviewsTitle, r.palette.OnBackground),
		components.Spacer(0, 8),
		list,
	)

	return widget.NewSimpleRenderer(inset(content, 0, 0))
}
