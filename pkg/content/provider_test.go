package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/borgmon/eventease/pkg/models"
	"github.com/borgmon/eventease/pkg/validation"
)

func TestStaticProviderSchedule(t *testing.T) {
	entries := StaticProvider{}.Schedule()
	require.Len(t, entries, 3)

	assert.Equal(t, models.ScheduleEntry{
		Name:        "Opening Ceremony",
		Time:        "9:00 AM",
		Description: "Kickoff the event with a welcome message and introduction.",
	}, entries[0])
	assert.Equal(t, "Keynote Speech", entries[1].Name)
	assert.Equal(t, "12:00 PM", entries[2].Time)
}

func TestStaticProviderReviews(t *testing.T) {
	reviews := StaticProvider{}.Reviews()
	require.Len(t, reviews, 3)

	ratings := []int{}
	for _, r := range reviews {
		ratings = append(ratings, r.Rating)
	}
	assert.Equal(t, []int{5, 4, 3}, ratings)
	assert.Equal(t, "Charlie Davis", reviews[2].Author)
}

func TestStaticProviderRecordsAreValid(t *testing.T) {
	p := StaticProvider{}
	assert.NoError(t, validation.Struct(p.Details()))
	for _, e := range p.Schedule() {
		assert.NoError(t, validation.Struct(e))
	}
	for _, r := range p.Reviews() {
		assert.NoError(t, validation.Struct(r))
	}
}

func TestStaticProviderReturnsFreshSlices(t *testing.T) {
	p := StaticProvider{}
	first := p.Schedule()
	first[0].Name = "changed"

	assert.Equal(t, "Opening Ceremony", p.Schedule()[0].Name)
}

func TestSnapshot(t *testing.T) {
	event := Snapshot(StaticProvider{})

	assert.Equal(t, "Tech Conference 2024", event.Details.Title)
	assert.Len(t, event.Schedule, 3)
	assert.Len(t, event.Reviews, 3)
	assert.Equal(t, Snapshot(StaticProvider{}), event)
}

func TestWithScheduleReplacesOnlySchedule(t *testing.T) {
	entries := []models.ScheduleEntry{{Name: "Workshop", Time: "2:00 PM", Description: "Hands-on lab."}}
	p := WithSchedule(StaticProvider{}, entries)

	assert.Equal(t, entries, p.Schedule())
	assert.Equal(t, StaticProvider{}.Reviews(), p.Reviews())
	assert.Equal(t, "Tech Conference 2024", p.Details().Title)
}
