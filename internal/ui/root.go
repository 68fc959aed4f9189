package ui

import (
	"errors"
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/dawbrowser/daw-browser/internal/audio"
	"github.com/dawbrowser/daw-browser/internal/config"
	"github.com/dawbrowser/daw-browser/internal/controller"
	"github.com/dawbrowser/daw-browser/internal/model"
)

// Options are the collaborators of the main window
type Options struct {
	Controller     *controller.Controller
	Settings       *config.Settings
	Themes         *ThemeManager
	Icons          IconSource
	AudioAvailable bool
}

// listKey identifies what the project list is showing, so position ticks do
// not rebuild every row
type listKey struct {
	count    int
	first    *model.ProjectRecord
	playing  *model.ProjectRecord
	selected *model.ProjectRecord
	state    model.PlaybackState
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	ctrl         *controller.Controller
	settings     *config.Settings
	themes       *ThemeManager
	icons        IconSource
	localization *Localization

	projects []*model.ProjectRecord
	shown    listKey

	folderLabel  *widget.Label
	countLabel   *widget.Label
	chooseBtn    *widget.Button
	reloadBtn    *widget.Button
	projectList  *widget.List
	promptLabel  *widget.Label
	promptBox    *fyne.Container
	emptyLabel   *widget.Label
	transport    *TransportBar
	audioEnabled bool
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, opts Options) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(opts.Settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		ctrl:         opts.Controller,
		settings:     opts.Settings,
		themes:       opts.Themes,
		icons:        opts.Icons,
		localization: localization,
		audioEnabled: opts.AudioAvailable,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.SetIcon(LoadAppIcon(opts.Icons))
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	ui.ctrl.SetUpdateCallback(ui.onControllerUpdate)

	ui.setupUI()
	return ui
}

// Start restores the last folder in the background; without one the window
// stays in the "choose a folder" prompt state.
func (ui *RootUI) Start() {
	go func() {
		if !ui.ctrl.Restore() {
			log.Printf("[ui] no usable last folder, waiting for the user to choose one")
		}
		snapshot := ui.ctrl.Snapshot()
		fyne.Do(func() { ui.render(snapshot) })
	}()
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.chooseBtn = widget.NewButton(IconFolder+" "+ui.localization.GetText(KeyChooseFolder), ui.onChooseFolder)
	ui.chooseBtn.Importance = widget.HighImportance

	ui.reloadBtn = widget.NewButton(IconReload, ui.onReload)
	ui.reloadBtn.Importance = widget.LowImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.folderLabel = widget.NewLabel("")
	ui.folderLabel.Truncation = fyne.TextTruncateEllipsis
	ui.countLabel = widget.NewLabel("")

	icon := canvas.NewImageFromResource(LoadAppIcon(ui.icons))
	icon.FillMode = canvas.ImageFillContain
	icon.SetMinSize(fyne.NewSize(AppIconSize, AppIconSize))

	topPanel := container.NewBorder(nil, nil,
		container.NewHBox(icon, ui.chooseBtn, ui.reloadBtn),
		container.NewHBox(ui.countLabel, settingsBtn),
		ui.folderLabel,
	)

	ui.projectList = widget.NewList(
		func() int { return len(ui.projects) },
		func() fyne.CanvasObject { return ui.createProjectItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateProjectItem(id, obj) },
	)
	ui.projectList.OnSelected = func(id widget.ListItemID) {
		if id >= 0 && id < len(ui.projects) {
			ui.ctrl.Select(ui.projects[id])
		}
	}

	ui.promptLabel = widget.NewLabel(ui.localization.GetText(KeyChooseFolderHint))
	ui.promptLabel.Alignment = fyne.TextAlignCenter
	ui.promptLabel.Wrapping = fyne.TextWrapWord
	ui.promptBox = container.NewCenter(container.NewVBox(
		ui.promptLabel,
		container.NewCenter(widget.NewButton(ui.localization.GetText(KeyChooseFolder), ui.onChooseFolder)),
	))

	ui.emptyLabel = widget.NewLabel(ui.localization.GetText(KeyNoProjects))
	ui.emptyLabel.Alignment = fyne.TextAlignCenter
	ui.emptyLabel.Hide()
	ui.projectList.Hide()

	ui.transport = NewTransportBar(ui.localization, ui.onToggle, ui.ctrl.Pause, ui.ctrl.Stop, ui.onSeek)
	ui.transport.SetAudioAvailable(ui.audioEnabled)

	content := container.NewBorder(
		container.NewVBox(topPanel, widget.NewSeparator()), // top
		container.NewVBox(widget.NewSeparator(), ui.transport.Container()), // bottom
		nil, // left
		nil, // right
		container.NewStack(ui.projectList, ui.promptBox, container.NewCenter(ui.emptyLabel)), // center
	)

	ui.window.SetContent(content)

	// Space drives the same control as the transport's play button
	ui.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeySpace {
			ui.onToggle()
		}
	})

	log.Printf("[ui] setup completed")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	chooseItem := fyne.NewMenuItem(ui.localization.GetText(KeyChooseFolder), ui.onChooseFolder)
	reloadItem := fyne.NewMenuItem(ui.localization.GetText(KeyReload), ui.onReload)
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	themeMenu := fyne.NewMenu(ui.localization.GetText(KeyTheme))
	for _, name := range ui.themes.Available() {
		themeName := name // Capture for closure
		item := fyne.NewMenuItem(themeName, func() {
			ui.onThemeChange(themeName)
		})
		item.Checked = ui.themes.Current() == themeName
		themeMenu.Items = append(themeMenu.Items, item)
	}

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		item := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		item.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, item)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), chooseItem, reloadItem, fyne.NewMenuItemSeparator(), settingsItem),
		themeMenu,
		languageMenu,
	))
}

// onControllerUpdate runs on background goroutines and hops to the UI thread
func (ui *RootUI) onControllerUpdate(snapshot controller.Snapshot) {
	fyne.Do(func() {
		ui.render(snapshot)
	})
}

// render updates the window from a controller snapshot. Must run on the UI thread.
func (ui *RootUI) render(s controller.Snapshot) {
	ui.projects = s.Projects

	if s.Folder == "" {
		ui.folderLabel.SetText(ui.localization.GetText(KeyChooseFolderHint))
		ui.countLabel.SetText("")
		ui.reloadBtn.Disable()
		ui.promptBox.Show()
		ui.projectList.Hide()
		ui.emptyLabel.Hide()
	} else {
		ui.folderLabel.SetText(s.Folder)
		ui.countLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyProjectsFound), len(s.Projects)))
		ui.reloadBtn.Enable()
		ui.promptBox.Hide()
		if len(s.Projects) == 0 {
			ui.projectList.Hide()
			ui.emptyLabel.Show()
		} else {
			ui.emptyLabel.Hide()
			ui.projectList.Show()
		}
	}

	key := listKey{
		count:    len(s.Projects),
		playing:  s.NowPlaying,
		selected: s.Selected,
		state:    s.State,
	}
	if len(s.Projects) > 0 {
		key.first = s.Projects[0]
	}
	if key != ui.shown {
		if key.count != ui.shown.count || key.first != ui.shown.first {
			ui.projectList.UnselectAll()
		}
		ui.shown = key
		ui.projectList.Refresh()
	}

	ui.transport.Update(s)
}

// createProjectItem creates a new project row widget
func (ui *RootUI) createProjectItem() fyne.CanvasObject {
	row := NewProjectRow(ui.localization)
	row.SetCallbacks(ui.onRowPlay, ui.onOpenProject, ui.onRevealProject)
	return row
}

// updateProjectItem binds a row to the project at id
func (ui *RootUI) updateProjectItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id >= len(ui.projects) {
		return
	}
	project := ui.projects[id]

	if row, ok := item.(*ProjectRow); ok {
		row.Update(project, ui.ctrl.LogoFor(project))
	}
}

// onRowPlay starts the row's clip, or stops it when it is the one playing
func (ui *RootUI) onRowPlay(project *model.ProjectRecord) {
	if project.IsPlaying() {
		ui.ctrl.Stop()
		return
	}
	// Opening a clip does file I/O; keep it off the UI thread
	go func() {
		ui.reportPlayError(ui.ctrl.PlayOrToggle(project))
	}()
}

// onToggle drives the single play/pause control
func (ui *RootUI) onToggle() {
	if !ui.audioEnabled {
		return
	}
	go func() {
		err := ui.ctrl.PlayOrToggle(nil)
		if errors.Is(err, controller.ErrNoProject) {
			return
		}
		ui.reportPlayError(err)
	}()
}

func (ui *RootUI) reportPlayError(err error) {
	switch {
	case err == nil, errors.Is(err, audio.ErrSuperseded):
		return
	case errors.Is(err, controller.ErrNoDemoClip):
		ui.showToast(ui.localization.GetText(KeyNoDemoClip))
	case errors.Is(err, audio.ErrBackendUnavailable):
		ui.showToast(ui.localization.GetText(KeyAudioUnavailable))
	default:
		ui.showToast(ui.localization.GetText(KeyErrorPlaying) + ": " + err.Error())
	}
}

func (ui *RootUI) onSeek(pos time.Duration) {
	if err := ui.ctrl.Seek(pos); err != nil {
		log.Printf("[ui] seek failed: %v", err)
	}
}

// onOpenProject opens the project in its DAW
func (ui *RootUI) onOpenProject(project *model.ProjectRecord) {
	go func() {
		if err := ui.ctrl.OpenInOwningApplication(project); err != nil {
			ui.showToast(ui.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error())
		}
	}()
}

// onRevealProject shows the project in the system file manager
func (ui *RootUI) onRevealProject(project *model.ProjectRecord) {
	if err := ui.ctrl.RevealInFileManager(project); err != nil {
		ui.showToast(ui.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error())
	}
}

// onChooseFolder asks for a root folder and loads it
func (ui *RootUI) onChooseFolder() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			log.Printf("[ui] folder dialog failed: %v", err)
			return
		}
		if uri == nil {
			return // cancelled
		}
		path := uri.Path()
		go func() {
			if err := ui.ctrl.LoadFolder(path); err != nil {
				ui.showToast(ui.localization.GetText(KeyErrorLoading) + ": " + err.Error())
			}
		}()
	}, ui.window)
}

func (ui *RootUI) onReload() {
	go ui.ctrl.Reload()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.themes, ui.localization, ui.onSettingsSaved)
}

func (ui *RootUI) onSettingsSaved() {
	ui.ctrl.EnableAutoRefresh(ui.settings.GetAutoRefresh())
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()
	ui.showToast(ui.localization.GetText(KeySettingsSaved))
}

func (ui *RootUI) onThemeChange(name string) {
	if err := ui.themes.Apply(name); err != nil {
		log.Printf("[ui] failed to apply theme %s: %v", name, err)
		dialog.ShowError(err, ui.window)
		return
	}
	ui.createMenu()
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.chooseBtn.SetText(IconFolder + " " + ui.localization.GetText(KeyChooseFolder))
	ui.promptLabel.SetText(ui.localization.GetText(KeyChooseFolderHint))
	ui.emptyLabel.SetText(ui.localization.GetText(KeyNoProjects))
	ui.render(ui.ctrl.Snapshot())
	ui.projectList.Refresh()
}

// showToast shows a short message in the top-right corner. Safe from any goroutine.
func (ui *RootUI) showToast(message string) {
	fyne.Do(func() {
		label := widget.NewLabel(message)
		label.Wrapping = fyne.TextWrapWord

		var toastPopup *widget.PopUp
		closeBtn := widget.NewButton("×", func() {
			if toastPopup != nil {
				toastPopup.Hide()
			}
		})
		closeBtn.Importance = widget.LowImportance

		content := container.NewBorder(nil, nil, nil, container.NewVBox(closeBtn), label)
		toastPopup = widget.NewPopUp(content, ui.window.Canvas())

		canvasSize := ui.window.Canvas().Size()
		toastSize := fyne.NewSize(ToastWidth, ToastHeight)
		toastPopup.Resize(toastSize)
		toastPopup.Move(fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin))
		toastPopup.Show()

		time.AfterFunc(ToastAutoHide, func() {
			fyne.Do(toastPopup.Hide)
		})
	})
}
