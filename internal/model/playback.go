package model

import (
	"fmt"
	"time"
)

// PlaybackState represents the state of the audio engine
type PlaybackState string

const (
	// PlaybackStopped means no stream is open
	PlaybackStopped PlaybackState = "Stopped"

	// PlaybackPlaying means a stream is open and producing audio
	PlaybackPlaying PlaybackState = "Playing"

	// PlaybackPaused means a stream is open but silent
	PlaybackPaused PlaybackState = "Paused"
)

// String returns the string representation of PlaybackState
func (ps PlaybackState) String() string {
	return string(ps)
}

// IsActive returns true if a session is open (playing or paused)
func (ps PlaybackState) IsActive() bool {
	return ps == PlaybackPlaying || ps == PlaybackPaused
}

// EventKind identifies one of the four engine notifications
type EventKind int

const (
	EventPosition EventKind = iota
	EventStopped
	EventPaused
	EventResumed
)

// String returns a short name for the event kind
func (k EventKind) String() string {
	switch k {
	case EventPosition:
		return "position"
	case EventStopped:
		return "stopped"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	default:
		return "unknown"
	}
}

// PlaybackEvent is emitted by the audio engine. Events may arrive on any goroutine.
type PlaybackEvent struct {
	Kind      EventKind
	SessionID string
	Path      string
	Position  time.Duration
	Duration  time.Duration
}

// FormatClock formats d as m:ss, or h:mm:ss for long clips
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}
