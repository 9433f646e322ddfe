package store

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/borgmon/eventease/pkg/models"
)

func TestConfigStoreLoadDefaults(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	config := NewConfigStore(a).Load()

	assert.Equal(t, models.ThemeModeSystem, config.ThemeMode)
	assert.True(t, config.DynamicColor)
	assert.Equal(t, "info", config.LogLevel)
	assert.Empty(t, config.ContentFile)
	assert.Empty(t, config.ScheduleICS)
}

func TestConfigStoreRoundTrip(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	cs := NewConfigStore(a)
	cs.Save(&models.Config{
		ThemeMode:    models.ThemeModeDark,
		DynamicColor: false,
		ContentFile:  "/tmp/event.yaml",
		ScheduleICS:  "/tmp/schedule.ics",
		LogLevel:     "debug",
	})

	config := cs.Load()
	assert.Equal(t, models.ThemeModeDark, config.ThemeMode)
	assert.False(t, config.DynamicColor)
	assert.Equal(t, "/tmp/event.yaml", config.ContentFile)
	assert.Equal(t, "/tmp/schedule.ics", config.ScheduleICS)
	assert.Equal(t, "debug", config.LogLevel)
}

func TestConfigStoreLoadNormalizesUnknownValues(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	a.Preferences().SetString(keyThemeMode, "sepia")
	a.Preferences().SetString(keyLogLevel, "LOUD")

	config := NewConfigStore(a).Load()
	assert.Equal(t, models.ThemeModeSystem, config.ThemeMode)
	assert.Equal(t, "info", config.LogLevel)
}
