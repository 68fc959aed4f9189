package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It renders the project list and the transport bar from controller snapshots,
// applies user themes, and shows settings. All UI strings are localized via Localization.
