package sections

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/borgmon/eventease/pkg/assets"
	"github.com/borgmon/eventease/pkg/content"
	"github.com/borgmon/eventease/pkg/ui/appearance"
)

// visibleText walks o and returns every text string it would draw, in order.
func visibleText(o fyne.CanvasObject) []string {
	switch v := o.(type) {
	case *canvas.Text:
		return []string{v.Text}
	case *widget.Label:
		return []string{v.Text}
	case *fyne.Container:
		var out []string
		for _, child := range v.Objects {
			out = append(out, visibleText(child)...)
		}
		return out
	case *container.Scroll:
		return visibleText(v.Content)
	case fyne.Widget:
		var out []string
		for _, child := range v.CreateRenderer().Objects() {
			out = append(out, visibleText(child)...)
		}
		return out
	}
	return nil
}

func TestHeader(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	details := content.StaticProvider{}.Details()
	h := NewHeader(details, assets.Banner(), appearance.LightPalette)

	assert.Equal(t, []string{
		"Tech Conference 2024",
		"Mehsana, Gujarat | 2.5 km away",
		"This is a detailed description of the event...",
	}, visibleText(h))
}

func TestScheduleKeepsEntryOrder(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	entries := content.StaticProvider{}.Schedule()
	s := NewSchedule(entries, appearance.LightPalette)

	require.Len(t, s.Cards, 3)
	for i, card := range s.Cards {
		assert.Equal(t, entries[i], card.Entry)
	}

	text := visibleText(s)
	require.NotEmpty(t, text)
	assert.Equal(t, ScheduleTitle, text[0])
	assert.Equal(t, []string{
		"9:00 AM", "Opening Ceremony", "Kickoff the event with a welcome message and introduction.",
		"10:00 AM", "Keynote Speech", "A renowned speaker will deliver a keynote address.",
		"12:00 PM", "Networking Session", "An opportunity to network with industry professionals.",
	}, text[1:])
}

func TestReviewsKeepOrder(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	reviews := content.StaticProvider{}.Reviews()
	r := NewReviews(reviews, assets.Avatar(), appearance.DarkPalette)

	require.Len(t, r.Cards, 3)
	for i, card := range r.Cards {
		assert.Equal(t, reviews[i], card.Review)
		assert.Equal(t, reviews[i].Rating, card.StarCount())
	}

	text := visibleText(r)
	require.NotEmpty(t, text)
	assert.Equal(t, ReviewsTitle, text[0])
	assert.Contains(t, text, "★★★★★")
	assert.Contains(t, text, "★★★★")
	assert.Contains(t, text, "★★★")
}

func TestEmptySections(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	s := NewSchedule(nil, appearance.LightPalette)
	r := NewReviews(nil, assets.Avatar(), appearance.LightPalette)

	assert.Empty(t, s.Cards)
	assert.Empty(t, r.Cards)
	assert.Equal(t, []string{ScheduleTitle}, visibleText(s))
	assert.Equal(t, []string{ReviewsTitle}, visibleText(r))
}
