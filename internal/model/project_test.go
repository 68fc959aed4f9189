package model

import (
	"path/filepath"
	"testing"
	"time"
)

func TestNewProjectRecord(t *testing.T) {
	now := time.Now()
	path := filepath.Join("music", "beats", "song.v2.flp")
	clip := filepath.Join("music", "beats", "song_demo.wav")

	record := NewProjectRecord(path, KindFLStudio, clip, now)

	if record.Name != "song.v2" {
		t.Errorf("Expected name 'song.v2', got '%s'", record.Name)
	}
	if record.FilePath != path {
		t.Errorf("Expected file path %s, got %s", path, record.FilePath)
	}
	if record.Kind != KindFLStudio {
		t.Errorf("Expected kind %s, got %s", KindFLStudio, record.Kind)
	}
	if !record.HasDemoClip() {
		t.Error("Expected record to have a demo clip")
	}
	if record.DemoClipName() != "song_demo.wav" {
		t.Errorf("Expected clip name 'song_demo.wav', got '%s'", record.DemoClipName())
	}
	if record.Directory() != filepath.Join("music", "beats") {
		t.Errorf("Unexpected directory %s", record.Directory())
	}
	if !record.ModTime.Equal(now) {
		t.Errorf("Expected ModTime %v, got %v", now, record.ModTime)
	}
}

func TestProjectRecord_NoDemoClip(t *testing.T) {
	record := NewProjectRecord("/tmp/track.als", KindAbletonLive, "", time.Time{})

	if record.HasDemoClip() {
		t.Error("Record without clip path should report no demo clip")
	}
	if record.DemoClipName() != "" {
		t.Errorf("Expected empty clip name, got '%s'", record.DemoClipName())
	}

	var nilRecord *ProjectRecord
	if nilRecord.HasDemoClip() {
		t.Error("Nil record should report no demo clip")
	}
}

func TestProjectRecord_PlayingFlag(t *testing.T) {
	record := NewProjectRecord("/tmp/track.als", KindAbletonLive, "", time.Time{})

	if record.IsPlaying() {
		t.Error("New record should not be playing")
	}
	record.SetPlaying(true)
	if !record.IsPlaying() {
		t.Error("Expected record to be playing")
	}
	record.SetPlaying(false)
	if record.IsPlaying() {
		t.Error("Expected record to stop playing")
	}
}
