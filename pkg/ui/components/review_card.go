package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/borgmon/eventease/pkg/models"
	"github.com/borgmon/eventease/pkg/ui/appearance"
)

// ReviewCard shows an avatar next to the author, comment and star rating.
type ReviewCard struct {
	widget.BaseWidget
	Review models.Review

	avatar  fyne.Resource
	palette appearance.Palette
}

// NewReviewCard creates a card for review drawn with palette.
func NewReviewCard(review models.Review, avatar fyne.Resource, palette appearance.Palette) *ReviewCard {
	c := &ReviewCard{Review: review, avatar: avatar, palette: palette}
	c.ExtendBaseWidget(c)
	return c
}

// StarCount is the number of glyphs the card draws for its rating.
func (c *ReviewCard) StarCount() int {
	return ClampRating(c.Review.Rating)
}

// CreateRenderer implements fyne.Widget
func (c *ReviewCard) CreateRenderer() fyne.WidgetRenderer {
	shadow, bg := newCardBackground(c.palette.Surface)

	avatar := canvas.NewImageFromResource(c.avatar)
	avatar.FillMode = canvas.ImageFillCover
	avatar.CornerRadius = AvatarSize / 2
	avatar.SetMinSize(fyne.NewSize(AvatarSize, AvatarSize))

	author := canvas.NewText(c.Review.Author, c.palette.OnSurface)
	author.TextSize = 16

	comment := widget.NewLabel(c.Review.Comment)
	comment.Wrapping = fyne.TextWrapWord

	stars := canvas.NewText(Stars(c.Review.Rating), appearance.StarColor)

	text := container.NewVBox(author, comment, stars)
	content := container.NewBorder(nil, nil, container.NewVBox(avatar), nil,
		container.NewBorder(nil, nil, Spacer(cardPadding, 0), nil, text))

	return &reviewCardRenderer{
		card:    c,
		shadow:  shadow,
		bg:      bg,
		avatar:  avatar,
		author:  author,
		comment: comment,
		stars:   stars,
		content: content,
	}
}

type reviewCardRenderer struct {
	card    *ReviewCard
	shadow  *canvas.Rectangle
	bg      *canvas.Rectangle
	avatar  *canvas.Image
	author  *canvas.Text
	comment *widget.Label
	stars   *canvas.Text
	content *fyne.Container
}

func (r *reviewCardRenderer) Layout(size fyne.Size) {
	layoutCardBackground(r.shadow, r.bg, size)

	r.content.Move(fyne.NewPos(cardPadding, cardPadding))
	r.content.Resize(r.bg.Size().Subtract(fyne.NewSize(cardPadding*2, cardPadding*2)))
}

func (r *reviewCardRenderer) MinSize() fyne.Size {
	return r.content.MinSize().Add(fyne.NewSize(cardPadding*2+cardElevation/2, cardPadding*2+cardElevation))
}

func (r *reviewCardRenderer) Refresh() {
	p := r.card.palette
	r.bg.FillColor = p.Surface
	r.author.Text = r.card.Review.Author
	r.author.Color = p.OnSurface
	r.stars.Text = Stars(r.card.Review.Rating)
	r.comment.SetText(r.card.Review.Comment)

	r.bg.Refresh()
	r.author.Refresh()
	r.stars.Refresh()
	r.avatar.Refresh()
}

func (r *reviewCardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.shadow, r.bg, r.content}
}

func (r *reviewCardRenderer) Destroy() {}
