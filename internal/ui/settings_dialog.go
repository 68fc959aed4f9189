package ui

import (
	"log"
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/dawbrowser/daw-browser/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	themes       *ThemeManager
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	themeSelect      *widget.Select
	languageSelect   *widget.Select
	pollIntervalEdit *widget.Entry
	autoRefreshCheck *widget.Check

	languageCodes map[string]string // display name -> code
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// settings were written.
func NewSettingsDialog(settings *config.Settings, themes *ThemeManager, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		themes:       themes,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, themes *ThemeManager, localization *Localization, onSaved func()) {
	NewSettingsDialog(settings, themes, localization, window, onSaved).Show()
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	sd.themeSelect = widget.NewSelect(sd.themes.Available(), nil)

	sd.languageCodes = make(map[string]string)
	var languageNames []string
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageNames = append(languageNames, name)
	}
	sort.Strings(languageNames)
	sd.languageSelect = widget.NewSelect(languageNames, nil)

	sd.pollIntervalEdit = widget.NewEntry()
	sd.pollIntervalEdit.SetPlaceHolder(strconv.Itoa(config.MinPollIntervalMs) + "-" + strconv.Itoa(config.MaxPollIntervalMs))

	sd.autoRefreshCheck = widget.NewCheck(sd.localization.GetText(KeyAutoRefresh), nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyInterfaceSettings)),
		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyTheme)+":"),
		sd.themeSelect,

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		sd.autoRefreshCheck,

		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(KeyPlaybackSettings)),
		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyPollInterval)+":"),
		sd.pollIntervalEdit,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	sd.themeSelect.Options = sd.themes.Available()
	sd.themeSelect.SetSelected(sd.themes.Current())

	language := sd.settings.GetLanguage()
	for name, code := range sd.languageCodes {
		if code == language {
			sd.languageSelect.SetSelected(name)
		}
	}

	sd.pollIntervalEdit.SetText(strconv.Itoa(sd.settings.GetPollIntervalMs()))
	sd.autoRefreshCheck.SetChecked(sd.settings.GetAutoRefresh())
}

func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if name := sd.themeSelect.Selected; name != "" && name != sd.themes.Current() {
		if err := sd.themes.Apply(name); err != nil {
			log.Printf("[ui] failed to apply theme %s: %v", name, err)
			dialog.ShowError(err, sd.window)
		}
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	// Takes effect for the next engine; the running one keeps its ticker
	if ms, err := strconv.Atoi(sd.pollIntervalEdit.Text); err == nil {
		sd.settings.SetPollIntervalMs(ms)
	}

	sd.settings.SetAutoRefresh(sd.autoRefreshCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
