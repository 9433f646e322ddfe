package screen

import (
	"fyne.io/fyne/v2"

	"github.com/borgmon/eventease/pkg/content"
	"github.com/borgmon/eventease/pkg/ui/appearance"
)

// Preview builds the full shell for a fixed variant from the static content,
// with button handlers that do nothing.
func Preview(dark bool, assets Assets) fyne.CanvasObject {
	palette := appearance.Resolve(appearance.Options{Dark: dark}, nil)
	detail := NewDetailScreen(content.Snapshot(content.StaticProvider{}), palette, assets)
	return NewShell(AppTitle, detail, Actions{}, palette).CanvasObject()
}
