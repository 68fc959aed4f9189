package assets

import (
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"sync"

	"fyne.io/fyne/v2"

	"github.com/dawbrowser/daw-browser/internal/model"
)

// Resolver maps a DAW kind to its logo. A file in the external directory always
// shadows the bundled default of the same name.
type Resolver struct {
	externalDir string
	bundled     fs.FS

	mu    sync.Mutex
	cache map[model.DAWKind]fyne.Resource
}

// NewResolver creates a resolver. externalDir is the writable asset root
// (the one EnsureExternal fills); it may be empty to use bundled logos only.
func NewResolver(externalDir string, bundled fs.FS) *Resolver {
	return &Resolver{
		externalDir: externalDir,
		bundled:     bundled,
		cache:       make(map[model.DAWKind]fyne.Resource),
	}
}

// Resolve returns the logo for kind, or nil when neither tier has one
func (r *Resolver) Resolve(kind model.DAWKind) fyne.Resource {
	r.mu.Lock()
	defer r.mu.Unlock()

	if res, ok := r.cache[kind]; ok {
		return res
	}

	name := AppIconName
	if kind.IsValid() {
		name = kind.LogoFileName()
	}

	res := r.load(name)
	if res != nil {
		r.cache[kind] = res
	}
	return res
}

// Invalidate forgets loaded logos so edited artwork is picked up
func (r *Resolver) Invalidate() {
	r.mu.Lock()
	r.cache = make(map[model.DAWKind]fyne.Resource)
	r.mu.Unlock()
}

func (r *Resolver) load(name string) fyne.Resource {
	if r.externalDir != "" {
		externalPath := filepath.Join(r.externalDir, LogosDirName, name)
		if _, err := os.Stat(externalPath); err == nil {
			res, err := fyne.LoadResourceFromPath(externalPath)
			if err == nil {
				return res
			}
			log.Printf("[assets] failed to load external logo %s, falling back: %v", externalPath, err)
		}
	}

	if r.bundled != nil {
		data, err := fs.ReadFile(r.bundled, path.Join(LogosDirName, name))
		if err == nil {
			return fyne.NewStaticResource(name, data)
		}
		log.Printf("[assets] no bundled logo %s: %v", name, err)
	}

	return nil
}

// AppIcon returns the application icon, nil if it is missing from both tiers
func (r *Resolver) AppIcon() fyne.Resource {
	return r.Resolve("")
}
