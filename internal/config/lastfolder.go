package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dawbrowser/daw-browser/internal/platform"
)

// LastFolderStore persists the last-used root folder as a single UTF-8 line
type LastFolderStore struct {
	path string
}

// NewLastFolderStore creates a store backed by the file at path
func NewLastFolderStore(path string) *LastFolderStore {
	return &LastFolderStore{path: path}
}

// DefaultLastFolderStore returns the store at the per-user default location
func DefaultLastFolderStore() (*LastFolderStore, error) {
	path, err := platform.LastFolderFile()
	if err != nil {
		return nil, err
	}
	return NewLastFolderStore(path), nil
}

// Path returns the backing file path
func (s *LastFolderStore) Path() string {
	return s.path
}

// Load returns the stored folder. A missing file yields "" and no error.
func (s *LastFolderStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save writes folder, creating the parent directory when needed
func (s *LastFolderStore) Save(folder string) error {
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(folder), platform.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}
