package calendar

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/emersion/go-ical"

	"github.com/borgmon/eventease/pkg/models"
)

// TimeLayout is how schedule times are displayed, e.g. "9:00 AM".
const TimeLayout = "3:04 PM"

var cancelledTitle = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// session is a decoded VEVENT before it is turned into a schedule entry
type session struct {
	title       string
	description string
	location    string
	status      string
	start       time.Time
}

func parseSession(comp *ical.Component, fallback *time.Location) (session, error) {
	s := session{}

	if summaryProp := comp.Props.Get(ical.PropSummary); summaryProp != nil {
		s.title = strings.TrimSpace(summaryProp.Value)
	}

	if descProp := comp.Props.Get(ical.PropDescription); descProp != nil {
		s.description = strings.TrimSpace(descProp.Value)
	}

	if locProp := comp.Props.Get(ical.PropLocation); locProp != nil {
		s.location = strings.TrimSpace(locProp.Value)
	}

	if statusProp := comp.Props.Get(ical.PropStatus); statusProp != nil {
		s.status = strings.ToUpper(statusProp.Value)
	}

	// Some calendars only mark cancellation in the title
	if s.status != "CANCELLED" && isCancelledTitle(s.title) {
		s.status = "CANCELLED"
	}

	startProp := comp.Props.Get(ical.PropDateTimeStart)
	if startProp == nil {
		return s, fmt.Errorf("event %q has no DTSTART", s.title)
	}

	loc := getTimezoneFromComponent(comp, fallback)
	t, err := parseDateTimeProperty(startProp, loc)
	if err != nil {
		return s, err
	}
	s.start = t

	return s, nil
}

// entry converts the session into a display record in loc
func (s session) entry(loc *time.Location) models.ScheduleEntry {
	description := s.description
	if description == "" {
		description = s.location
	}

	return models.ScheduleEntry{
		Name:        s.title,
		Time:        s.start.In(loc).Format(TimeLayout),
		Description: description,
	}
}

func parseDateTimeProperty(prop *ical.Prop, loc *time.Location) (time.Time, error) {
	if t, err := prop.DateTime(loc); err == nil {
		return t, nil
	}

	value := prop.Value
	formats := []string{
		"20060102T150405",     // Basic format: YYYYMMDDTHHMMSS
		"20060102T150405Z",    // UTC format
		time.RFC3339,          // Standard RFC3339
		"2006-01-02T15:04:05", // ISO 8601 without timezone
	}

	for _, format := range formats {
		if t, err := time.ParseInLocation(format, value, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse datetime value: %s", value)
}

func isCancelledTitle(title string) bool {
	cleanTitle := cancelledTitle.ReplaceAllString(strings.ToLower(title), "")
	return strings.HasPrefix(cleanTitle, "canceled") || strings.HasPrefix(cleanTitle, "cancelled")
}
