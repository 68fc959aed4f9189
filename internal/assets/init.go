package assets

import (
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"

	"github.com/dawbrowser/daw-browser/internal/platform"
)

// InitResult reports what EnsureExternal did with every bundled file
type InitResult struct {
	Root    string
	Copied  []string
	Skipped []string
	Failed  map[string]error
}

// OK reports whether every bundled file is now present externally
func (r InitResult) OK() bool {
	return len(r.Failed) == 0
}

// EnsureExternal copies bundled logos and themes into root so users can replace
// them. Existing files are never overwritten, so calling it again is harmless.
// Per-file failures are collected in the result; only a failure to create the
// directory layout is returned as an error.
func EnsureExternal(root string, bundled fs.FS) (InitResult, error) {
	result := InitResult{
		Root:   root,
		Failed: make(map[string]error),
	}

	for _, dir := range []string{LogosDirName, ThemesDirName} {
		if err := platform.CreateDirectoryIfNotExists(filepath.Join(root, dir)); err != nil {
			return result, fmt.Errorf("failed to create asset directory %s: %w", dir, err)
		}
	}

	for _, dir := range []string{LogosDirName, ThemesDirName} {
		entries, err := fs.ReadDir(bundled, dir)
		if err != nil {
			result.Failed[dir] = err
			log.Printf("[assets] failed to list bundled %s: %v", dir, err)
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name := path.Join(dir, entry.Name())
			target := filepath.Join(root, dir, entry.Name())

			if _, err := os.Stat(target); err == nil {
				result.Skipped = append(result.Skipped, name)
				continue
			}

			if err := copyOut(bundled, name, target); err != nil {
				result.Failed[name] = err
				log.Printf("[assets] failed to copy %s: %v", name, err)
				continue
			}
			result.Copied = append(result.Copied, name)
			log.Printf("[assets] copied default %s to %s", name, target)
		}
	}

	return result, nil
}

// copyOut writes one bundled file to target
func copyOut(bundled fs.FS, name, target string) error {
	src, err := bundled.Open(name)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, platform.DefaultFilePermissions)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(target)
		return err
	}
	return dst.Close()
}
