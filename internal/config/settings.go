package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyThemeName      = "theme_name"
	KeyPollIntervalMs = "position_poll_interval_ms"
	KeyAutoRefresh    = "auto_refresh_on_change"
	KeyLanguage       = "app_language"
)

// DefaultThemeName selects the bundled theme
const DefaultThemeName = "(Default)"

// Default values
const (
	DefaultPollIntervalMs = 100
	MinPollIntervalMs     = 50
	MaxPollIntervalMs     = 1000
	DefaultAutoRefresh    = true
	DefaultLanguage       = "system"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetThemeName returns the selected theme, DefaultThemeName when none was chosen
func (s *Settings) GetThemeName() string {
	return s.app.Preferences().StringWithFallback(KeyThemeName, DefaultThemeName)
}

// SetThemeName persists the selected theme
func (s *Settings) SetThemeName(name string) {
	if name == "" {
		name = DefaultThemeName
	}
	s.app.Preferences().SetString(KeyThemeName, name)
}

// GetPollIntervalMs returns the position telemetry interval in milliseconds
func (s *Settings) GetPollIntervalMs() int {
	value := s.app.Preferences().Int(KeyPollIntervalMs)
	if value <= 0 {
		s.SetPollIntervalMs(DefaultPollIntervalMs)
		return DefaultPollIntervalMs
	}
	return value
}

// SetPollIntervalMs sets the position telemetry interval
func (s *Settings) SetPollIntervalMs(ms int) {
	if ms < MinPollIntervalMs {
		ms = MinPollIntervalMs
	}
	if ms > MaxPollIntervalMs {
		ms = MaxPollIntervalMs
	}
	s.app.Preferences().SetInt(KeyPollIntervalMs, ms)
}

// GetPollInterval returns the position telemetry interval as a duration
func (s *Settings) GetPollInterval() time.Duration {
	return time.Duration(s.GetPollIntervalMs()) * time.Millisecond
}

// GetAutoRefresh returns whether the project list follows folder changes
func (s *Settings) GetAutoRefresh() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRefresh, DefaultAutoRefresh)
}

// SetAutoRefresh sets whether the project list follows folder changes
func (s *Settings) SetAutoRefresh(enabled bool) {
	s.app.Preferences().SetBool(KeyAutoRefresh, enabled)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
	}
}
