package models

// EventDetails is the header information of an event
type EventDetails struct {
	Title       string `yaml:"title" validate:"required"`       // Event name shown under the banner
	Location    string `yaml:"location" validate:"required"`    // City/venue line
	Distance    string `yaml:"distance"`                        // Distance hint, e.g. "2.5 km away"
	Description string `yaml:"description" validate:"required"` // Long description
}

// LocationLine joins location and distance the way the header displays them
func (d EventDetails) LocationLine() string {
	if d.Distance == "" {
		return d.Location
	}
	return d.Location + " | " + d.Distance
}

// ScheduleEntry is a single session in the event schedule
type ScheduleEntry struct {
	Name        string `yaml:"name" validate:"required"`        // Session title
	Time        string `yaml:"time" validate:"required"`        // Display time, e.g. "9:00 AM"
	Description string `yaml:"description" validate:"required"` // Short session summary
}

// Review is an attendee review of the event
type Review struct {
	Author  string `yaml:"author" validate:"required"`    // Reviewer display name
	Comment string `yaml:"comment" validate:"required"`   // Review text
	Rating  int    `yaml:"rating" validate:"min=1,max=5"` // Number of stars
}

// Event bundles everything the detail screen displays
type Event struct {
	Details  EventDetails
	Schedule []ScheduleEntry
	Reviews  []Review
}
