package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/dawbrowser/daw-browser/internal/model"
)

func TestProjectRow_WithDemoClip(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	rec := model.NewProjectRecord("/music/song.flp", model.KindFLStudio, "/music/song_demo.wav", time.Now())
	row := NewProjectRow(NewLocalization())
	logo := fyne.NewStaticResource("fl_studio.png", []byte{1})

	var played *model.ProjectRecord
	row.SetCallbacks(func(p *model.ProjectRecord) { played = p }, nil, nil)
	row.Update(rec, logo)

	if row.nameLabel.Text != "song" {
		t.Errorf("Expected name 'song', got %q", row.nameLabel.Text)
	}
	if want := "FL Studio" + MiddleDotSeparator + "song_demo.wav"; row.detailLabel.Text != want {
		t.Errorf("Expected detail %q, got %q", want, row.detailLabel.Text)
	}
	if row.playBtn.Disabled() {
		t.Error("Play should be enabled for a project with a clip")
	}
	if row.logo.Resource != logo {
		t.Error("Logo should be bound to the row")
	}

	test.Tap(row.playBtn)
	if played != rec {
		t.Error("Play callback should receive the bound project")
	}
}

func TestProjectRow_WithoutDemoClip(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	rec := model.NewProjectRecord("/music/live.als", model.KindAbletonLive, "", time.Now())
	row := NewProjectRow(NewLocalization())
	row.Update(rec, nil)

	if !row.playBtn.Disabled() {
		t.Error("Play should be disabled without a demo clip")
	}
	if row.openBtn.Disabled() {
		t.Error("Open should stay enabled without a demo clip")
	}
}

func TestProjectRow_PlayingState(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	rec := model.NewProjectRecord("/music/song.flp", model.KindFLStudio, "/music/demo.wav", time.Now())
	rec.SetPlaying(true)
	row := NewProjectRow(NewLocalization())
	row.Update(rec, nil)

	if row.playBtn.Text != IconStop {
		t.Errorf("Playing row should offer stop, got %q", row.playBtn.Text)
	}
	if row.statusLabel.Text != IconMusic {
		t.Errorf("Playing row should show the music marker, got %q", row.statusLabel.Text)
	}
}
