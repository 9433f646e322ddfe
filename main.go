package main

import (
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/google/uuid"

	"github.com/borgmon/eventease/pkg/assets"
	"github.com/borgmon/eventease/pkg/calendar"
	"github.com/borgmon/eventease/pkg/content"
	"github.com/borgmon/eventease/pkg/logging"
	"github.com/borgmon/eventease/pkg/models"
	"github.com/borgmon/eventease/pkg/store"
	"github.com/borgmon/eventease/pkg/ui/appearance"
	"github.com/borgmon/eventease/pkg/ui/screen"
)

const appID = "com.example.eventease"

type EventEase struct {
	app         fyne.App
	window      fyne.Window
	configStore *store.ConfigStore
	config      *models.Config
	logger      *logging.Logger
	provider    content.Provider

	// last platform appearance seen, so our own SetTheme doesn't re-trigger a render
	systemDark   bool
	systemAccent string
}

func main() {
	ee := &EventEase{
		app: app.NewWithID(appID),
	}

	if err := ee.initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "eventease: %v\n", err)
		os.Exit(1)
	}

	ee.run()
}

func (ee *EventEase) initialize() error {
	ee.configStore = store.NewConfigStore(ee.app)
	ee.config = ee.configStore.Load()

	logger, err := logging.New(logging.Options{Level: ee.config.LogLevel, HumanReadable: true})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	ee.logger = logger

	ee.provider = ee.loadProvider()

	ee.window = ee.app.NewWindow(screen.AppTitle)
	ee.window.Resize(fyne.NewSize(420, 860))
	ee.window.SetMaster()

	ee.render()
	ee.watchSystemAppearance()

	return nil
}

func (ee *EventEase) run() {
	ee.window.ShowAndRun()
}

// loadProvider starts from the built-in content and layers the configured
// YAML document and iCalendar schedule on top. Failures keep the previous layer.
func (ee *EventEase) loadProvider() content.Provider {
	var provider content.Provider = content.StaticProvider{}

	if path := ee.config.ContentFile; path != "" {
		doc, err := content.LoadYAML(path)
		if err != nil {
			ee.logger.Error(err, "Failed to load event document, using built-in content")
		} else {
			provider = doc
			ee.logger.WithFields(map[string]any{"path": path}).Info("Loaded event document")
		}
	}

	if path := ee.config.ScheduleICS; path != "" {
		result, err := calendar.LoadScheduleFile(path, time.Local)
		switch {
		case err != nil:
			ee.logger.Error(err, "Failed to load schedule calendar")
		case len(result.Entries) == 0:
			ee.logger.WithFields(map[string]any{"path": path, "skipped": result.Skipped}).Warn("Schedule calendar has no usable events")
		default:
			provider = content.WithSchedule(provider, result.Entries)
			ee.logger.WithFields(map[string]any{
				"path":    path,
				"entries": len(result.Entries),
				"skipped": result.Skipped,
			}).Info("Loaded schedule calendar")
		}
	}

	return provider
}

// palette resolves the colors for the current config and platform state.
func (ee *EventEase) palette() appearance.Palette {
	settings := ee.app.Settings()
	opts := appearance.Options{
		Dark:    ee.config.PrefersDark(appearance.SystemPrefersDark(settings)),
		Dynamic: ee.config.DynamicColor,
	}
	return appearance.Resolve(opts, appearance.NewSettingsSource(settings))
}

func (ee *EventEase) render() {
	settings := ee.app.Settings()
	ee.systemDark = appearance.SystemPrefersDark(settings)
	ee.systemAccent = settings.PrimaryColor()

	palette := ee.palette()
	settings.SetTheme(appearance.NewTheme(palette))

	ee.logger.WithFields(map[string]any{
		"pass":    uuid.NewString(),
		"dark":    palette.Dark,
		"dynamic": ee.config.DynamicColor,
	}).Debug("Rendering event screen")

	detail := screen.NewDetailScreen(content.Snapshot(ee.provider), palette, screen.Assets{
		Banner: assets.Banner(),
		Avatar: assets.Avatar(),
	})
	shell := screen.NewShell(screen.AppTitle, detail, screen.NotImplementedActions(ee.logger), palette)

	ee.window.SetContent(shell.CanvasObject())
	ee.window.SetMainMenu(ee.buildMainMenu())
}

// watchSystemAppearance re-renders when the platform switches light/dark or
// accent color while the config follows it.
func (ee *EventEase) watchSystemAppearance() {
	ee.app.Settings().AddListener(func(s fyne.Settings) {
		dark := appearance.SystemPrefersDark(s)
		accent := s.PrimaryColor()
		if dark == ee.systemDark && accent == ee.systemAccent {
			return
		}

		ee.logger.WithFields(map[string]any{"dark": dark, "accent": accent}).Info("System appearance changed")
		fyne.Do(ee.render)
	})
}
