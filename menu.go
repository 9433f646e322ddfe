package main

import (
	"fyne.io/fyne/v2"

	"github.com/borgmon/eventease/pkg/assets"
	"github.com/borgmon/eventease/pkg/models"
	"github.com/borgmon/eventease/pkg/ui/screen"
)

func (ee *EventEase) buildMainMenu() *fyne.MainMenu {
	themeItem := func(label string, mode models.ThemeMode) *fyne.MenuItem {
		item := fyne.NewMenuItem(label, func() {
			ee.updateConfig(func(c *models.Config) {
				c.ThemeMode = mode
			})
		})
		item.Checked = ee.config.ThemeMode == mode
		return item
	}

	dynamicItem := fyne.NewMenuItem("Dynamic Color", func() {
		ee.updateConfig(func(c *models.Config) {
			c.DynamicColor = !c.DynamicColor
		})
	})
	dynamicItem.Checked = ee.config.DynamicColor

	view := fyne.NewMenu("View",
		themeItem("System Theme", models.ThemeModeSystem),
		themeItem("Light Theme", models.ThemeModeLight),
		themeItem("Dark Theme", models.ThemeModeDark),
		fyne.NewMenuItemSeparator(),
		dynamicItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Preview Light", func() { ee.showPreview(false) }),
		fyne.NewMenuItem("Preview Dark", func() { ee.showPreview(true) }),
	)

	return fyne.NewMainMenu(view)
}

// updateConfig applies change, persists it and rebuilds the window.
func (ee *EventEase) updateConfig(change func(*models.Config)) {
	next := *ee.config
	change(&next)
	next.Normalize()

	ee.config = &next
	ee.configStore.Save(ee.config)
	ee.logger.WithFields(map[string]any{
		"theme_mode":    ee.config.ThemeMode,
		"dynamic_color": ee.config.DynamicColor,
	}).Info("Appearance settings saved")

	ee.render()
}

// showPreview opens the built-in content in a fixed light or dark variant.
func (ee *EventEase) showPreview(dark bool) {
	title := "Preview (Light)"
	if dark {
		title = "Preview (Dark)"
	}

	w := ee.app.NewWindow(title)
	w.SetContent(screen.Preview(dark, screen.Assets{
		Banner: assets.Banner(),
		Avatar: assets.Avatar(),
	}))
	w.Resize(fyne.NewSize(420, 860))
	w.Show()
}
