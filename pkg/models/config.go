package models

import (
	"strings"
)

// ThemeMode selects how the light/dark palette is chosen
type ThemeMode string

const (
	ThemeModeSystem ThemeMode = "system" // Follow the platform appearance
	ThemeModeLight  ThemeMode = "light"  // Always light
	ThemeModeDark   ThemeMode = "dark"   // Always dark
)

// Config holds application configuration
type Config struct {
	ThemeMode    ThemeMode `json:"theme_mode"`    // system, light or dark
	DynamicColor bool      `json:"dynamic_color"` // derive palette from the platform accent color
	ContentFile  string    `json:"content_file"`  // optional YAML event document
	ScheduleICS  string    `json:"schedule_ics"`  // optional iCalendar file for the schedule
	LogLevel     string    `json:"log_level"`     // zerolog level name
}

// DefaultConfig returns the configuration used on first launch
func DefaultConfig() *Config {
	return &Config{
		ThemeMode:    ThemeModeSystem,
		DynamicColor: true,
		LogLevel:     "info",
	}
}

// Normalize replaces unknown or empty values with defaults
func (c *Config) Normalize() {
	switch ThemeMode(strings.ToLower(string(c.ThemeMode))) {
	case ThemeModeLight:
		c.ThemeMode = ThemeModeLight
	case ThemeModeDark:
		c.ThemeMode = ThemeModeDark
	default:
		c.ThemeMode = ThemeModeSystem
	}

	switch level := strings.ToLower(strings.TrimSpace(c.LogLevel)); level {
	case "trace", "debug", "info", "warn", "error":
		c.LogLevel = level
	default:
		c.LogLevel = "info"
	}

	c.ContentFile = strings.TrimSpace(c.ContentFile)
	c.ScheduleICS = strings.TrimSpace(c.ScheduleICS)
}

// PrefersDark resolves the theme mode against the platform appearance
func (c *Config) PrefersDark(systemDark bool) bool {
	switch c.ThemeMode {
	case ThemeModeDark:
		return true
	case ThemeModeLight:
		return false
	default:
		return systemDark
	}
}
