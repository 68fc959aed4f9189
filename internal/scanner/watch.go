package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultWatchDebounce coalesces bursts of file events (DAW autosaves, renders)
const DefaultWatchDebounce = 750 * time.Millisecond

// Watch observes the non-excluded directory tree under root and calls onChange once
// per burst of changes, after debounce of quiet time. It blocks until ctx is done.
func (s *Scanner) Watch(ctx context.Context, root string, debounce time.Duration, onChange func()) error {
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", root, err)
	}

	if s.hasExcludedSegment(absRoot) {
		log.Printf("[scanner] not watching %s: it lies inside an excluded folder", absRoot)
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := s.addTree(watcher, absRoot, absRoot); err != nil {
		return err
	}
	log.Printf("[scanner] watching %s for changes", absRoot)

	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	schedule := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(debounce, onChange)
	}
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !s.isRelevant(absRoot, event) {
				continue
			}
			if event.Has(fsnotify.Create) {
				// New subfolders must be watched too
				if isDir(event.Name) {
					if err := s.addTree(watcher, absRoot, event.Name); err != nil {
						log.Printf("[scanner] failed to watch %s: %v", event.Name, err)
					}
				}
			}
			schedule()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("[scanner] watcher error: %v", err)
		}
	}
}

// addTree registers dir and every non-excluded directory below it
func (s *Scanner) addTree(watcher *fsnotify.Watcher, root, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return fmt.Errorf("failed to watch %s: %w", dir, err)
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && s.isExcluded(d.Name()) {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			log.Printf("[scanner] cannot watch %s: %v", path, err)
		}
		return nil
	})
}

// isRelevant filters out chmod noise and events inside excluded folders
func (s *Scanner) isRelevant(root string, event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	return !s.IsExcludedPath(root, event.Name)
}
