// Package calendar reads event schedules from iCalendar data.
package calendar

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/emersion/go-ical"

	"github.com/borgmon/eventease/pkg/models"
)

// Result is a parsed schedule plus how many VEVENTs were dropped.
type Result struct {
	Entries []models.ScheduleEntry
	Skipped int
}

// LoadScheduleFile parses the iCalendar file at path, see ParseSchedule.
func LoadScheduleFile(path string, loc *time.Location) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open schedule %s: %w", path, err)
	}
	defer f.Close()

	return ParseSchedule(f, loc)
}

// ParseSchedule converts the VEVENTs in r into schedule entries ordered by
// start time, with times displayed in loc. Cancelled events and events
// missing a title, start or description/location are skipped.
func ParseSchedule(r io.Reader, loc *time.Location) (*Result, error) {
	if loc == nil {
		loc = time.Local
	}

	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read schedule: %w", err)
	}

	if err := validateICalFormat(body); err != nil {
		return nil, err
	}

	type timed struct {
		start time.Time
		entry models.ScheduleEntry
	}

	result := &Result{}
	sessions := []timed{}
	decoder := ical.NewDecoder(bytes.NewReader(body))

	for {
		cal, err := decoder.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode calendar: %w", err)
		}

		for _, comp := range cal.Children {
			if comp.Name != ical.CompEvent {
				continue
			}

			normalizeComponentTimezones(comp)
			s, err := parseSession(comp, loc)
			if err != nil || s.status == "CANCELLED" || s.title == "" {
				result.Skipped++
				continue
			}

			entry := s.entry(loc)
			if entry.Description == "" {
				result.Skipped++
				continue
			}
			sessions = append(sessions, timed{start: s.start, entry: entry})
		}
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].start.Before(sessions[j].start)
	})

	result.Entries = make([]models.ScheduleEntry, 0, len(sessions))
	for _, s := range sessions {
		result.Entries = append(result.Entries, s.entry)
	}

	return result, nil
}

func validateICalFormat(body []byte) error {
	trimmed := strings.TrimSpace(string(body))
	upper := strings.ToUpper(trimmed)
	if strings.HasPrefix(upper, "<!DOCTYPE") || strings.HasPrefix(upper, "<HTML") {
		return fmt.Errorf("received HTML instead of iCalendar data")
	}

	if !strings.HasPrefix(upper, "BEGIN:VCALENDAR") {
		previewLen := 100
		if len(trimmed) < previewLen {
			previewLen = len(trimmed)
		}
		return fmt.Errorf("invalid iCalendar format - expected BEGIN:VCALENDAR, got: %s", trimmed[:previewLen])
	}

	return nil
}
