package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"fyne.io/fyne/v2"

	"github.com/dawbrowser/daw-browser/internal/audio"
	"github.com/dawbrowser/daw-browser/internal/model"
	"github.com/dawbrowser/daw-browser/internal/platform"
)

var (
	// ErrNoProject is returned when an operation needs a project and none is given or selected
	ErrNoProject = errors.New("no project selected")

	// ErrNoDemoClip is returned when playback is requested for a project without a clip
	ErrNoDemoClip = errors.New("project has no demo clip")

	// ErrNotDirectory is returned by LoadFolder for paths that are not directories
	ErrNotDirectory = errors.New("not a directory")
)

// Deps are the collaborators of a Controller. Watcher, Logos, Open and Reveal
// are optional; Open and Reveal default to the platform launchers.
type Deps struct {
	Scanner ProjectScanner
	Watcher FolderWatcher
	Player  Player
	Folders FolderStore
	Logos   LogoResolver
	Open    Launcher
	Reveal  Launcher

	// WatchDebounce is the quiet period before a change triggers a reload
	WatchDebounce time.Duration
}

// Snapshot is a consistent view of the controller for rendering
type Snapshot struct {
	Folder     string
	Projects   []*model.ProjectRecord
	Selected   *model.ProjectRecord
	NowPlaying *model.ProjectRecord
	Clip       audio.ClipInfo
	State      model.PlaybackState
	Position   time.Duration
	Duration   time.Duration
}

// Controller owns the current folder, the scanned project list and the selection
type Controller struct {
	deps     Deps
	clipInfo func(path string) audio.ClipInfo

	mu        sync.Mutex
	folder    string
	projects  []*model.ProjectRecord
	selected  *model.ProjectRecord
	owner     *model.ProjectRecord // record whose clip the engine has open
	starting  int                  // Play calls in flight
	clip      audio.ClipInfo
	state     model.PlaybackState
	position  time.Duration
	duration  time.Duration
	autoWatch bool
	cancel    context.CancelFunc
	onUpdate  func(Snapshot)
}

// New creates a controller and subscribes it to the player's events
func New(deps Deps) *Controller {
	if deps.Open == nil {
		deps.Open = platform.OpenFileWithDefaultApp
	}
	if deps.Reveal == nil {
		deps.Reveal = platform.OpenFileInManager
	}
	c := &Controller{
		deps:     deps,
		clipInfo: audio.ReadClipInfo,
		projects: []*model.ProjectRecord{},
		state:    model.PlaybackStopped,
	}
	deps.Player.SetEventCallback(c.handleEvent)
	return c
}

// SetUpdateCallback sets the function called after every change.
// It may be called from a background goroutine.
func (c *Controller) SetUpdateCallback(callback func(Snapshot)) {
	c.mu.Lock()
	c.onUpdate = callback
	c.mu.Unlock()
}

// Snapshot returns the current view
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Folder returns the current root folder, "" before the first load
func (c *Controller) Folder() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.folder
}

// Projects returns the records from the last scan
func (c *Controller) Projects() []*model.ProjectRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*model.ProjectRecord(nil), c.projects...)
}

// Selected returns the selected record, nil if none
func (c *Controller) Selected() *model.ProjectRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

// Restore loads the last-used folder. It reports false when there is nothing
// usable to restore and the user should be asked for a folder.
func (c *Controller) Restore() bool {
	folder, err := c.deps.Folders.Load()
	if err != nil {
		log.Printf("[controller] could not read last folder: %v", err)
		return false
	}
	if folder == "" {
		return false
	}
	// A stale folder just leaves the window in the prompt state
	if !platform.IsDirectory(folder) {
		return false
	}
	return c.LoadFolder(folder) == nil
}

// LoadFolder scans path, replaces the project list, remembers path as the
// last-used folder and clears the selection.
func (c *Controller) LoadFolder(path string) error {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	if !platform.IsDirectory(path) {
		log.Printf("[controller] cannot load %s: %v", path, ErrNotDirectory)
		return fmt.Errorf("%w: %s", ErrNotDirectory, path)
	}

	projects := c.deps.Scanner.Scan(path)
	log.Printf("[controller] loaded %d projects from %s", len(projects), path)

	if err := c.deps.Folders.Save(path); err != nil {
		log.Printf("[controller] could not persist last folder: %v", err)
	}

	c.mu.Lock()
	c.folder = path
	c.replaceLocked(projects)
	c.selected = nil
	c.restartWatchLocked()
	c.mu.Unlock()

	c.notify()
	return nil
}

// Reload rescans the current folder, keeping the selection when its project survived
func (c *Controller) Reload() {
	folder := c.Folder()
	if folder == "" {
		return
	}
	projects := c.deps.Scanner.Scan(folder)

	c.mu.Lock()
	if c.folder != folder {
		// a LoadFolder won the race
		c.mu.Unlock()
		return
	}
	var selectedPath string
	if c.selected != nil {
		selectedPath = c.selected.FilePath
	}
	c.replaceLocked(projects)
	c.selected = c.findLocked(selectedPath)
	c.mu.Unlock()

	log.Printf("[controller] reloaded %d projects from %s", len(projects), folder)
	c.notify()
}

// Select makes rec the selected record without starting playback
func (c *Controller) Select(rec *model.ProjectRecord) {
	c.mu.Lock()
	c.selected = rec
	c.mu.Unlock()
	c.notify()
}

// PlayOrToggle drives the single play/pause control.
//
// With a record: it becomes the selection and its clip plays from the start
// whatever the engine is doing. Without one: Playing stops, Paused resumes,
// and Stopped replays the selected record if there is one.
func (c *Controller) PlayOrToggle(rec *model.ProjectRecord) error {
	if rec != nil {
		c.Select(rec)
		return c.play(rec)
	}

	switch c.deps.Player.State() {
	case model.PlaybackPlaying:
		c.deps.Player.Stop()
		return nil
	case model.PlaybackPaused:
		c.deps.Player.Resume()
		return nil
	default:
		selected := c.Selected()
		if selected == nil {
			return ErrNoProject
		}
		return c.play(selected)
	}
}

func (c *Controller) play(rec *model.ProjectRecord) error {
	if !rec.HasDemoClip() {
		log.Printf("[controller] %s has no demo clip", rec.Name)
		return fmt.Errorf("%w: %s", ErrNoDemoClip, rec.Name)
	}

	clip := c.clipInfo(rec.DemoClipPath)

	c.mu.Lock()
	c.setOwnerLocked(rec)
	c.clip = clip
	c.starting++
	c.mu.Unlock()

	err := c.deps.Player.Play(rec.DemoClipPath)

	c.mu.Lock()
	c.starting--
	c.mu.Unlock()
	if err != nil && !errors.Is(err, audio.ErrSuperseded) {
		log.Printf("[controller] failed to play %s: %v", rec.DemoClipPath, err)
	}
	c.reconcile()
	return err
}

// Pause pauses playback
func (c *Controller) Pause() {
	c.deps.Player.Pause()
}

// Stop stops playback
func (c *Controller) Stop() {
	c.deps.Player.Stop()
}

// Seek moves the playhead of the active clip
func (c *Controller) Seek(pos time.Duration) error {
	return c.deps.Player.Seek(pos)
}

// OpenInOwningApplication stops playback and opens the project with its DAW
func (c *Controller) OpenInOwningApplication(rec *model.ProjectRecord) error {
	if rec == nil {
		return ErrNoProject
	}
	c.deps.Player.Stop()

	if err := c.deps.Open(rec.FilePath); err != nil {
		log.Printf("[controller] failed to open %s: %v", rec.FilePath, err)
		return fmt.Errorf("failed to open %s: %w", rec.Name, err)
	}
	log.Printf("[controller] opened %s in %s", rec.Name, rec.Kind)
	return nil
}

// RevealInFileManager shows the project in the system file manager
func (c *Controller) RevealInFileManager(rec *model.ProjectRecord) error {
	if rec == nil {
		return ErrNoProject
	}
	if err := c.deps.Reveal(rec.FilePath); err != nil {
		log.Printf("[controller] failed to reveal %s: %v", rec.FilePath, err)
		return fmt.Errorf("failed to reveal %s: %w", rec.Name, err)
	}
	return nil
}

// LogoFor returns the record's logo, resolving and attaching it on first use
func (c *Controller) LogoFor(rec *model.ProjectRecord) fyne.Resource {
	if rec == nil || c.deps.Logos == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if rec.Logo == nil {
		rec.Logo = c.deps.Logos.Resolve(rec.Kind)
	}
	return rec.Logo
}

// Close stops watching the folder and stops playback
func (c *Controller) Close() {
	c.mu.Lock()
	c.stopWatchLocked()
	c.mu.Unlock()
	c.deps.Player.Stop()
}

// handleEvent runs on the engine's event goroutine
func (c *Controller) handleEvent(ev model.PlaybackEvent) {
	c.mu.Lock()
	switch ev.Kind {
	case model.EventPosition:
		c.position = ev.Position
		c.duration = ev.Duration
	case model.EventStopped:
		c.position = 0
	}
	c.mu.Unlock()

	c.reconcile()
}

// reconcile derives the playing flags from the engine's current state
func (c *Controller) reconcile() {
	state := c.deps.Player.State()
	path := c.deps.Player.CurrentPath()

	c.mu.Lock()
	c.state = state
	if c.owner != nil {
		playing := state == model.PlaybackPlaying && c.owner.DemoClipPath == path
		c.owner.SetPlaying(playing)
		// while a Play is opening its stream the engine reports Stopped
		if state == model.PlaybackStopped && c.starting == 0 {
			c.owner = nil
			c.position = 0
			c.duration = 0
		}
	}
	c.mu.Unlock()

	c.notify()
}

// setOwnerLocked moves the playing flag to rec
func (c *Controller) setOwnerLocked(rec *model.ProjectRecord) {
	if c.owner != nil && c.owner != rec {
		c.owner.SetPlaying(false)
	}
	c.owner = rec
	c.position = 0
	c.duration = 0
}

// replaceLocked swaps in a new project list, carrying the playing record over
func (c *Controller) replaceLocked(projects []*model.ProjectRecord) {
	if projects == nil {
		projects = []*model.ProjectRecord{}
	}
	c.projects = projects

	if c.owner == nil {
		return
	}
	old := c.owner
	old.SetPlaying(false)
	c.owner = c.findLocked(old.FilePath)
	if c.owner != nil && c.owner.DemoClipPath == old.DemoClipPath {
		c.owner.SetPlaying(c.state == model.PlaybackPlaying)
	} else {
		// the clip stays open but no longer belongs to a listed project
		c.owner = nil
	}
}

func (c *Controller) findLocked(path string) *model.ProjectRecord {
	if path == "" {
		return nil
	}
	for _, p := range c.projects {
		if p.FilePath == path {
			return p
		}
	}
	return nil
}

func (c *Controller) snapshotLocked() Snapshot {
	s := Snapshot{
		Folder:     c.folder,
		Projects:   append([]*model.ProjectRecord(nil), c.projects...),
		Selected:   c.selected,
		NowPlaying: c.owner,
		State:      c.state,
		Position:   c.position,
		Duration:   c.duration,
	}
	if c.owner != nil {
		s.Clip = c.clip
	}
	return s
}

func (c *Controller) notify() {
	c.mu.Lock()
	callback := c.onUpdate
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	if callback != nil {
		callback(snapshot)
	}
}
