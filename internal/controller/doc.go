package controller

// Package controller coordinates the scanner, the playback engine and the
// persisted last folder behind the operations the project list exposes: load
// and reload a folder, the single play/pause transport control, and handing a
// project to the DAW that owns it.
