package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2/app"

	"github.com/dawbrowser/daw-browser/internal/assets"
	"github.com/dawbrowser/daw-browser/internal/audio"
	"github.com/dawbrowser/daw-browser/internal/config"
	"github.com/dawbrowser/daw-browser/internal/controller"
	"github.com/dawbrowser/daw-browser/internal/platform"
	"github.com/dawbrowser/daw-browser/internal/scanner"
	"github.com/dawbrowser/daw-browser/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.dawbrowser.daw-browser"
	AppName = "DAW Project Browser"

	lastFolderFallback = "daw-browser-last-folder.txt"
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewDAWTheme())
	myWindow := myApp.NewWindow(AppName)

	// Copy bundled logos and themes out so the user can replace them
	assetsDir, err := platform.AssetsDir()
	if err != nil {
		log.Printf("[main] failed to resolve assets directory: %v", err)
	} else {
		result, err := assets.EnsureExternal(assetsDir, assets.Defaults())
		if err != nil {
			log.Printf("[main] asset initialisation failed: %v", err)
		} else if !result.OK() {
			log.Printf("[main] %d bundled assets could not be copied to %s", len(result.Failed), assetsDir)
		}
	}
	resolver := assets.NewResolver(assetsDir, assets.Defaults())

	settings := config.NewSettings(myApp)
	var themesDir string
	if assetsDir != "" {
		themesDir = filepath.Join(assetsDir, assets.ThemesDirName)
	}
	themes := ui.NewThemeManager(myApp, themesDir, settings)
	themes.Restore()

	// Without an output device the engine runs degraded and the transport is disabled
	var backend audio.Backend
	beepBackend, err := audio.NewBeepBackend()
	if err != nil {
		log.Printf("[main] audio disabled: %v", err)
	} else {
		backend = beepBackend
		defer beepBackend.Close()
	}
	engine := audio.NewEngine(backend, settings.GetPollInterval())
	defer engine.Close()

	folders, err := config.DefaultLastFolderStore()
	if err != nil {
		log.Printf("[main] no user config directory, keeping last folder in %s: %v", os.TempDir(), err)
		folders = config.NewLastFolderStore(filepath.Join(os.TempDir(), lastFolderFallback))
	}

	projectScanner := scanner.NewDefault()
	deps := controller.Deps{
		Scanner:       projectScanner,
		Watcher:       projectScanner,
		Player:        engine,
		Folders:       folders,
		Logos:         resolver,
		WatchDebounce: scanner.DefaultWatchDebounce,
	}
	ctrl := controller.New(deps)
	defer ctrl.Close()
	ctrl.EnableAutoRefresh(settings.GetAutoRefresh())

	root := ui.NewRootUI(myWindow, ui.Options{
		Controller:     ctrl,
		Settings:       settings,
		Themes:         themes,
		Icons:          resolver,
		AudioAvailable: engine.Available(),
	})
	root.Start()

	myWindow.ShowAndRun()
}
