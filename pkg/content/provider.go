// Package content supplies the event data shown on the detail screen.
package content

import "github.com/borgmon/eventease/pkg/models"

// Provider is a read-only source of event content.
type Provider interface {
	Details() models.EventDetails
	Schedule() []models.ScheduleEntry
	Reviews() []models.Review
}

// Snapshot collects everything a provider offers into one Event.
func Snapshot(p Provider) models.Event {
	return models.Event{
		Details:  p.Details(),
		Schedule: p.Schedule(),
		Reviews:  p.Reviews(),
	}
}

// StaticProvider serves the built-in conference content.
type StaticProvider struct{}

var _ Provider = StaticProvider{}

func (StaticProvider) Details() models.EventDetails {
	return models.EventDetails{
		Title:       "Tech Conference 2024",
		Location:    "Mehsana, Gujarat",
		Distance:    "2.5 km away",
		Description: "This is a detailed description of the event...",
	}
}

// Schedule returns a fresh slice on every call so callers can't alias each other.
func (StaticProvider) Schedule() []models.ScheduleEntry {
	return []models.ScheduleEntry{
		{Name: "Opening Ceremony", Time: "9:00 AM", Description: "Kickoff the event with a welcome message and introduction."},
		{Name: "Keynote Speech", Time: "10:00 AM", Description: "A renowned speaker will deliver a keynote address."},
		{Name: "Networking Session", Time: "12:00 PM", Description: "An opportunity to network with industry professionals."},
	}
}

func (StaticProvider) Reviews() []models.Review {
	return []models.Review{
		{Author: "Alice Johnson", Comment: "Great event! Well-organized and informative.", Rating: 5},
		{Author: "Bob Smith", Comment: "Really enjoyed the keynote speaker. Would recommend!", Rating: 4},
		{Author: "Charlie Davis", Comment: "Good overall, but some sessions were too short.", Rating: 3},
	}
}

// WithSchedule wraps base, replacing its schedule with entries.
func WithSchedule(base Provider, entries []models.ScheduleEntry) Provider {
	return &scheduleOverride{Provider: base, entries: entries}
}

type scheduleOverride struct {
	Provider
	entries []models.ScheduleEntry
}

func (s *scheduleOverride) Schedule() []models.ScheduleEntry {
	return append([]models.ScheduleEntry(nil), s.entries...)
}
