package audio

// Package audio implements the playback engine used to audition demo clips.
// The engine owns at most one open stream, exposes transport controls, and
// reports position/stopped/paused/resumed events on a background goroutine.
// Native output is provided by a Backend; BeepBackend decodes mp3, wav and flac
// with gopxl/beep.
