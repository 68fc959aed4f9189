package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// IconSource provides the application icon
type IconSource interface {
	AppIcon() fyne.Resource
}

// LoadAppIcon returns the app icon, or the toolkit's file-audio icon when the
// artwork is missing
func LoadAppIcon(source IconSource) fyne.Resource {
	if source != nil {
		if icon := source.AppIcon(); icon != nil {
			return icon
		}
	}
	return theme.FileAudioIcon()
}
