package assets

import (
	"embed"
	"io/fs"
)

// Subdirectory names shared by the embedded defaults and the external copy
const (
	LogosDirName  = "DAWLogos"
	ThemesDirName = "Themes"
	AppIconName   = "app_icon.png"
)

//go:embed defaults/DAWLogos/*.png defaults/Themes/*.json
var embedded embed.FS

// Defaults returns the bundled assets rooted so that "DAWLogos/fl_studio.png" resolves
func Defaults() fs.FS {
	sub, err := fs.Sub(embedded, "defaults")
	if err != nil {
		// The embed pattern above guarantees the directory exists
		panic(err)
	}
	return sub
}
