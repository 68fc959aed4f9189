package model

import (
	"path/filepath"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
)

// ProjectRecord represents one discovered DAW project
type ProjectRecord struct {
	Name         string    `json:"name" yaml:"name"`
	FilePath     string    `json:"file_path" yaml:"file_path"`
	Kind         DAWKind   `json:"daw" yaml:"daw"`
	DemoClipPath string    `json:"demo_clip,omitempty" yaml:"demo_clip,omitempty"` // empty if no clip was found
	ModTime      time.Time `json:"modified" yaml:"modified"`

	Logo fyne.Resource `json:"-" yaml:"-"` // resolved lazily, nil if unavailable

	playing atomic.Bool
}

// NewProjectRecord builds a record for the project file at path
func NewProjectRecord(path string, kind DAWKind, demoClip string, modTime time.Time) *ProjectRecord {
	base := filepath.Base(path)
	return &ProjectRecord{
		Name:         base[:len(base)-len(filepath.Ext(base))],
		FilePath:     path,
		Kind:         kind,
		DemoClipPath: demoClip,
		ModTime:      modTime,
	}
}

// HasDemoClip reports whether a demo clip was found next to the project
func (p *ProjectRecord) HasDemoClip() bool {
	return p != nil && p.DemoClipPath != ""
}

// DemoClipName returns the clip file name, or "" when there is no clip
func (p *ProjectRecord) DemoClipName() string {
	if !p.HasDemoClip() {
		return ""
	}
	return filepath.Base(p.DemoClipPath)
}

// Directory returns the folder that contains the project
func (p *ProjectRecord) Directory() string {
	return filepath.Dir(p.FilePath)
}

// IsPlaying reports whether this record owns the playing session
func (p *ProjectRecord) IsPlaying() bool {
	return p.playing.Load()
}

// SetPlaying flips the transient playing flag. Only the controller calls this.
func (p *ProjectRecord) SetPlaying(playing bool) {
	p.playing.Store(playing)
}
