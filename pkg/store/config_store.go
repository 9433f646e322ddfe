package store

import (
	"fyne.io/fyne/v2"
	"github.com/borgmon/eventease/pkg/models"
)

const (
	keyThemeMode    = "theme_mode"
	keyDynamicColor = "dynamic_color"
	keyContentFile  = "content_file"
	keyScheduleICS  = "schedule_ics"
	keyLogLevel     = "log_level"
)

// ConfigStore handles configuration persistence using Fyne preferences
type ConfigStore struct {
	prefs fyne.Preferences
}

// NewConfigStore creates a new ConfigStore instance
func NewConfigStore(app fyne.App) *ConfigStore {
	return &ConfigStore{prefs: app.Preferences()}
}

// Load loads configuration from preferences, falling back to defaults
func (cs *ConfigStore) Load() *models.Config {
	defaults := models.DefaultConfig()

	config := &models.Config{
		ThemeMode:    models.ThemeMode(cs.prefs.StringWithFallback(keyThemeMode, string(defaults.ThemeMode))),
		DynamicColor: cs.prefs.BoolWithFallback(keyDynamicColor, defaults.DynamicColor),
		ContentFile:  cs.prefs.String(keyContentFile),
		ScheduleICS:  cs.prefs.String(keyScheduleICS),
		LogLevel:     cs.prefs.StringWithFallback(keyLogLevel, defaults.LogLevel),
	}
	config.Normalize()

	return config
}

// Save saves configuration to preferences
func (cs *ConfigStore) Save(config *models.Config) {
	cs.prefs.SetString(keyThemeMode, string(config.ThemeMode))
	cs.prefs.SetBool(keyDynamicColor, config.DynamicColor)
	cs.prefs.SetString(keyContentFile, config.ContentFile)
	cs.prefs.SetString(keyScheduleICS, config.ScheduleICS)
	cs.prefs.SetString(keyLogLevel, config.LogLevel)
}
