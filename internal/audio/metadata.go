package audio

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// ClipInfo describes a demo clip for display
type ClipInfo struct {
	Path   string
	Title  string
	Artist string
	Album  string
	Format string
}

// ReadClipInfo extracts tags from the clip, falling back to the file name.
// It never fails; unreadable files yield a name-only ClipInfo.
func ReadClipInfo(path string) ClipInfo {
	info := ClipInfo{
		Path:   path,
		Format: strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."),
	}

	file, err := os.Open(path)
	if err != nil {
		log.Printf("[audio] could not open clip %s: %v", path, err)
		info.Title = titleFromPath(path)
		return info
	}
	defer file.Close()

	// dhowden/tag reads ID3, MP4, FLAC and OGG metadata
	meta, err := tag.ReadFrom(file)
	if err == nil {
		info.Title = strings.TrimSpace(meta.Title())
		info.Artist = strings.TrimSpace(meta.Artist())
		info.Album = strings.TrimSpace(meta.Album())
		if meta.FileType() != tag.UnknownFileType {
			info.Format = strings.ToLower(string(meta.FileType()))
		}
	}

	if info.Title == "" {
		info.Title = titleFromPath(path)
	}
	return info
}

// DisplayName returns "Artist - Title", or just the title when there is no artist
func (c ClipInfo) DisplayName() string {
	if c.Artist == "" {
		return c.Title
	}
	return c.Artist + " - " + c.Title
}

func titleFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
