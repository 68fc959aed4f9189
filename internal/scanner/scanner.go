package scanner

import (
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dawbrowser/daw-browser/internal/model"
)

// DefaultAudioExtensions lists the clip formats considered as demo clips
var DefaultAudioExtensions = []string{".mp3", ".wav", ".flac", ".m4a"}

// DefaultExcludedFolders lists directory names that are never scanned
var DefaultExcludedFolders = []string{"backup", "backups", ".git", ".svn", "render"}

// Options configures a Scanner
type Options struct {
	ProjectExtensions map[string]model.DAWKind
	AudioExtensions   []string
	ExcludedFolders   []string

	// OnVisit is called for every file the walk looks at. Optional.
	OnVisit func(path string)
}

// DefaultOptions returns the extension and exclusion tables used by the app
func DefaultOptions() Options {
	return Options{
		ProjectExtensions: model.DefaultProjectExtensions,
		AudioExtensions:   DefaultAudioExtensions,
		ExcludedFolders:   DefaultExcludedFolders,
	}
}

// Scanner discovers DAW projects below a root folder
type Scanner struct {
	projectExts map[string]model.DAWKind
	audioExts   map[string]struct{}
	excluded    map[string]struct{}
	onVisit     func(string)
}

// New creates a scanner with the given options
func New(opts Options) *Scanner {
	s := &Scanner{
		projectExts: make(map[string]model.DAWKind, len(opts.ProjectExtensions)),
		audioExts:   make(map[string]struct{}, len(opts.AudioExtensions)),
		excluded:    make(map[string]struct{}, len(opts.ExcludedFolders)),
		onVisit:     opts.OnVisit,
	}
	for ext, kind := range opts.ProjectExtensions {
		s.projectExts[strings.ToLower(ext)] = kind
	}
	for _, ext := range opts.AudioExtensions {
		s.audioExts[strings.ToLower(ext)] = struct{}{}
	}
	for _, name := range opts.ExcludedFolders {
		s.excluded[strings.ToLower(name)] = struct{}{}
	}
	return s
}

// NewDefault creates a scanner with DefaultOptions
func NewDefault() *Scanner {
	return New(DefaultOptions())
}

// Scan walks root recursively and returns every project found. It never fails:
// a missing or unreadable root yields an empty slice, and unreadable subtrees
// are skipped.
func (s *Scanner) Scan(root string) []*model.ProjectRecord {
	projects := []*model.ProjectRecord{}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		log.Printf("[scanner] cannot resolve %q: %v", root, err)
		return projects
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		log.Printf("[scanner] base path is not accessible: %v", err)
		return projects
	}
	if !info.IsDir() {
		log.Printf("[scanner] base path is not a directory: %s", absRoot)
		return projects
	}

	if s.hasExcludedSegment(absRoot) {
		log.Printf("[scanner] base path lies inside an excluded folder: %s", absRoot)
		return projects
	}

	log.Printf("[scanner] starting recursive scan in %s", absRoot)
	started := time.Now()
	clips := make(map[string]string)

	walkErr := filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Permission denied or the entry vanished mid-scan
			log.Printf("[scanner] skipping %s: %v", path, err)
			if d != nil && d.IsDir() && path != absRoot {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != absRoot && s.isExcluded(d.Name()) {
				return filepath.SkipDir
			}
			// Logic Pro projects are bundles (directories) on macOS
			if kind, ok := s.kindFor(path); ok && path != absRoot {
				projects = append(projects, s.newRecord(path, kind, d, clips))
				return filepath.SkipDir
			}
			return nil
		}

		if s.onVisit != nil {
			s.onVisit(path)
		}

		kind, ok := s.kindFor(path)
		if !ok {
			return nil
		}
		projects = append(projects, s.newRecord(path, kind, d, clips))
		return nil
	})
	if walkErr != nil {
		log.Printf("[scanner] scan of %s stopped early: %v", absRoot, walkErr)
	}

	log.Printf("[scanner] scan complete in %v, %d projects", time.Since(started).Round(time.Millisecond), len(projects))
	return projects
}

// newRecord builds a record and resolves its demo clip
func (s *Scanner) newRecord(path string, kind model.DAWKind, d fs.DirEntry, clips map[string]string) *model.ProjectRecord {
	dir := filepath.Dir(path)
	clip, seen := clips[dir]
	if !seen {
		clip = s.FindDemoClip(dir)
		clips[dir] = clip
	}

	var modTime time.Time
	if info, err := d.Info(); err == nil {
		modTime = info.ModTime()
	}

	record := model.NewProjectRecord(path, kind, clip, modTime)
	demo := "not found"
	if record.HasDemoClip() {
		demo = record.DemoClipName()
	}
	log.Printf("[scanner]   -> %s (%s), demo: %s", record.Name, kind, demo)
	return record
}

// FindDemoClip returns the most recently modified audio file directly inside dir,
// or "" when there is none. Ties go to the entry enumerated last.
func (s *Scanner) FindDemoClip(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("[scanner] failed to list %s for demo clips: %v", dir, err)
		return ""
	}

	var newest string
	var newestTime time.Time
	for _, entry := range entries {
		if entry.IsDir() || !s.isAudio(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if newest == "" || !info.ModTime().Before(newestTime) {
			newest = filepath.Join(dir, entry.Name())
			newestTime = info.ModTime()
		}
	}
	return newest
}

// IsExcludedPath reports whether any directory segment of path is excluded.
// Segments of root count too, so nothing below an excluded root is ever listed.
func (s *Scanner) IsExcludedPath(root, path string) bool {
	return s.hasExcludedSegment(root) || s.hasExcludedSegment(filepath.Dir(path))
}

// hasExcludedSegment reports whether any element of dir is an excluded folder name
func (s *Scanner) hasExcludedSegment(dir string) bool {
	for _, segment := range strings.Split(filepath.Clean(dir), string(filepath.Separator)) {
		if segment != "" && s.isExcluded(segment) {
			return true
		}
	}
	return false
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (s *Scanner) isExcluded(name string) bool {
	_, ok := s.excluded[strings.ToLower(name)]
	return ok
}

func (s *Scanner) isAudio(name string) bool {
	_, ok := s.audioExts[strings.ToLower(filepath.Ext(name))]
	return ok
}

func (s *Scanner) kindFor(path string) (model.DAWKind, bool) {
	kind, ok := s.projectExts[strings.ToLower(filepath.Ext(path))]
	return kind, ok
}
