package controller

import (
	"context"
	"time"

	"fyne.io/fyne/v2"

	"github.com/dawbrowser/daw-browser/internal/model"
)

// ProjectScanner discovers projects below a root folder
type ProjectScanner interface {
	Scan(root string) []*model.ProjectRecord
}

// FolderWatcher reports changes below a root folder until ctx is cancelled
type FolderWatcher interface {
	Watch(ctx context.Context, root string, debounce time.Duration, onChange func()) error
}

// Player is the part of the playback engine the controller drives
type Player interface {
	SetEventCallback(func(model.PlaybackEvent))
	Play(path string) error
	Pause()
	Resume()
	Stop()
	Seek(pos time.Duration) error
	State() model.PlaybackState
	CurrentPath() string
}

// FolderStore persists the last-used root folder
type FolderStore interface {
	Load() (string, error)
	Save(folder string) error
}

// LogoResolver returns artwork for a DAW, nil if none is available
type LogoResolver interface {
	Resolve(kind model.DAWKind) fyne.Resource
}

// Launcher hands a path to the operating system
type Launcher func(path string) error
