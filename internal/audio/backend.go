package audio

import (
	"errors"
	"time"
)

var (
	// ErrBackendUnavailable is returned when the engine runs without an audio device
	ErrBackendUnavailable = errors.New("audio backend unavailable")

	// ErrFileNotFound is returned when the clip does not exist
	ErrFileNotFound = errors.New("audio file not found")

	// ErrSuperseded is returned by a Play call that lost to a newer Play or Stop
	ErrSuperseded = errors.New("playback superseded by a newer request")

	// ErrUnsupportedFormat is returned when the backend cannot decode a file type
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)

// Backend opens native audio streams.
type Backend interface {
	// Open decodes path and returns a stream that is attached to the output
	// device but paused. onEnd is invoked at most once, on any goroutine, when
	// the stream reaches its end; it is never invoked after Close.
	Open(path string, onEnd func()) (Stream, error)
}

// Stream is one open, decodable audio source.
type Stream interface {
	Duration() time.Duration
	Position() time.Duration
	Seek(pos time.Duration) error
	SetPaused(paused bool)
	Close() error
}
