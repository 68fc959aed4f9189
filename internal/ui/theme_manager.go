package ui

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/dawbrowser/daw-browser/internal/config"
)

// ThemeFileExtension is the extension of user theme files
const ThemeFileExtension = ".json"

// ThemeManager lists theme files in the user's Themes folder and applies one
// of them, or the bundled DAWTheme, to the app. At most one custom theme is
// active at a time.
type ThemeManager struct {
	app      fyne.App
	dir      string
	settings *config.Settings
	current  string
}

// ErrNoThemeFolder is returned by Apply for a custom theme when no theme folder is configured
var ErrNoThemeFolder = errors.New("no theme folder configured")

// NewThemeManager creates a manager for theme files in dir. An empty dir
// offers the default theme only.
func NewThemeManager(app fyne.App, dir string, settings *config.Settings) *ThemeManager {
	return &ThemeManager{
		app:      app,
		dir:      dir,
		settings: settings,
		current:  config.DefaultThemeName,
	}
}

// Available returns "(Default)" followed by the theme files, sorted by name
func (m *ThemeManager) Available() []string {
	names := []string{config.DefaultThemeName}
	if m.dir == "" {
		return names
	}

	entries, err := os.ReadDir(m.dir)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("[ui] could not list themes in %s: %v", m.dir, err)
		}
		return names
	}

	var custom []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ThemeFileExtension) {
			continue
		}
		custom = append(custom, strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())))
	}
	sort.Strings(custom)
	return append(names, custom...)
}

// Current returns the name of the applied theme
func (m *ThemeManager) Current() string {
	return m.current
}

// Apply switches to the named theme and remembers the choice
func (m *ThemeManager) Apply(name string) error {
	if name == "" || name == config.DefaultThemeName {
		m.app.Settings().SetTheme(NewDAWTheme())
		m.current = config.DefaultThemeName
		m.settings.SetThemeName(config.DefaultThemeName)
		log.Printf("[ui] applied default theme")
		return nil
	}

	if m.dir == "" {
		return fmt.Errorf("failed to read theme %s: %w", name, ErrNoThemeFolder)
	}

	path := filepath.Join(m.dir, name+ThemeFileExtension)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read theme %s: %w", name, err)
	}

	custom, err := theme.FromJSON(string(data))
	if err != nil {
		return fmt.Errorf("failed to parse theme %s: %w", name, err)
	}

	m.app.Settings().SetTheme(custom)
	m.current = name
	m.settings.SetThemeName(name)
	log.Printf("[ui] applied theme %s", name)
	return nil
}

// Restore applies the persisted theme, falling back to the default
func (m *ThemeManager) Restore() {
	name := m.settings.GetThemeName()
	if err := m.Apply(name); err != nil {
		log.Printf("[ui] could not restore theme %q, using default: %v", name, err)
		_ = m.Apply(config.DefaultThemeName)
	}
}
