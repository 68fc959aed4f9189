package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPlay     = "▶"
	IconPause    = "⏸"
	IconStop     = "⏹"
	IconFolder   = "📁"
	IconReload   = "⟳"
	IconMusic    = "🎵"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	TimeSeparator      = " / "
)

// Layout sizing (ProjectRow / lists)
const (
	LogoSize     float32 = 40
	AppIconSize  float32 = 32
	RowMinWidth  float32 = 420
	RowMinHeight float32 = 56
	WindowWidth  float32 = 820
	WindowHeight float32 = 560
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 100
	ToastMargin   float32 = 20
	ToastAutoHide         = 4 * time.Second
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 460
	SettingsDialogHeight float32 = 360
)

