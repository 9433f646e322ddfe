package calendar

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/borgmon/eventease/pkg/models"
)

func crlf(s string) string {
	return strings.ReplaceAll(s, "\n", "\r\n")
}

var sampleICS = crlf(`BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//EventEase//Test//EN
BEGIN:VEVENT
UID:keynote@example.com
DTSTAMP:20240101T000000Z
DTSTART:20240315T100000Z
SUMMARY:Keynote Speech
DESCRIPTION:A renowned speaker will deliver a keynote address.
END:VEVENT
BEGIN:VEVENT
UID:opening@example.com
DTSTAMP:20240101T000000Z
DTSTART:20240315T090000Z
SUMMARY:Opening Ceremony
DESCRIPTION:Kickoff the event with a welcome message and introduction.
END:VEVENT
BEGIN:VEVENT
UID:lunch@example.com
DTSTAMP:20240101T000000Z
DTSTART:20240315T120000Z
SUMMARY:Networking Session
LOCATION:Main Hall
END:VEVENT
BEGIN:VEVENT
UID:cancelled@example.com
DTSTAMP:20240101T000000Z
DTSTART:20240315T140000Z
SUMMARY:Cancelled: Panel
DESCRIPTION:Nobody showed up.
END:VEVENT
BEGIN:VEVENT
UID:notime@example.com
DTSTAMP:20240101T000000Z
SUMMARY:Floating idea
DESCRIPTION:No start time.
END:VEVENT
END:VCALENDAR
`)

func TestParseScheduleOrdersByStart(t *testing.T) {
	result, err := ParseSchedule(strings.NewReader(sampleICS), time.UTC)
	require.NoError(t, err)

	assert.Equal(t, []models.ScheduleEntry{
		{Name: "Opening Ceremony", Time: "9:00 AM", Description: "Kickoff the event with a welcome message and introduction."},
		{Name: "Keynote Speech", Time: "10:00 AM", Description: "A renowned speaker will deliver a keynote address."},
		{Name: "Networking Session", Time: "12:00 PM", Description: "Main Hall"},
	}, result.Entries)
	assert.Equal(t, 2, result.Skipped)
}

func TestParseScheduleDisplaysInLocation(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	result, err := ParseSchedule(strings.NewReader(sampleICS), kolkata)
	require.NoError(t, err)
	require.NotEmpty(t, result.Entries)
	assert.Equal(t, "2:30 PM", result.Entries[0].Time)
}

func TestParseScheduleRejectsHTML(t *testing.T) {
	_, err := ParseSchedule(strings.NewReader("<!DOCTYPE html><html></html>"), time.UTC)
	assert.ErrorContains(t, err, "HTML")
}

func TestParseScheduleRejectsGarbage(t *testing.T) {
	_, err := ParseSchedule(strings.NewReader("hello"), time.UTC)
	assert.ErrorContains(t, err, "expected BEGIN:VCALENDAR")
}

func TestLoadScheduleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.ics")
	require.NoError(t, os.WriteFile(path, []byte(sampleICS), 0o644))

	result, err := LoadScheduleFile(path, time.UTC)
	require.NoError(t, err)
	assert.Len(t, result.Entries, 3)

	_, err = LoadScheduleFile(filepath.Join(t.TempDir(), "missing.ics"), time.UTC)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestIsCancelledTitle(t *testing.T) {
	assert.True(t, isCancelledTitle("Cancelled: Panel"))
	assert.True(t, isCancelledTitle("[CANCELED] Standup"))
	assert.False(t, isCancelledTitle("Keynote Speech"))
}
