package audio

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dawbrowser/daw-browser/internal/model"
)

// DefaultPollInterval is how often position events are emitted while playing
const DefaultPollInterval = 100 * time.Millisecond

// SessionIDPrefix prefixes generated session identifiers
const SessionIDPrefix = "session-"

// session is the single open stream
type session struct {
	id       string
	path     string
	stream   Stream
	duration time.Duration
	done     chan struct{}
}

// Engine plays one demo clip at a time.
//
// State machine: Stopped -> Playing -> {Paused, Stopped}, Paused -> {Playing, Stopped}.
// All commands and the end-of-stream callback are serialised by mu.
type Engine struct {
	backend      Backend
	pollInterval time.Duration
	events       *dispatcher

	mu      sync.Mutex
	state   model.PlaybackState
	session *session
	gen     uint64
	closed  bool
}

// NewEngine creates an engine. A nil backend puts the engine in degraded mode
// where every operation logs a warning and does nothing.
func NewEngine(backend Backend, pollInterval time.Duration) *Engine {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	if backend == nil {
		log.Printf("[audio] WARNING: no audio backend, playback is disabled")
	}
	return &Engine{
		backend:      backend,
		pollInterval: pollInterval,
		events:       newDispatcher(),
		state:        model.PlaybackStopped,
	}
}

// SetEventCallback sets the function that receives playback events.
// It is called on a background goroutine, one event at a time.
func (e *Engine) SetEventCallback(callback func(model.PlaybackEvent)) {
	e.events.setCallback(callback)
}

// Available reports whether a native backend is present
func (e *Engine) Available() bool {
	return e.backend != nil
}

// State returns the current playback state
func (e *Engine) State() model.PlaybackState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Position returns the playhead of the open stream, zero when stopped
func (e *Engine) Position() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session == nil {
		return 0
	}
	return e.session.stream.Position()
}

// Duration returns the length of the open stream, zero when stopped
func (e *Engine) Duration() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session == nil {
		return 0
	}
	return e.session.duration
}

// CurrentPath returns the clip being played, "" when stopped
func (e *Engine) CurrentPath() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session == nil {
		return ""
	}
	return e.session.path
}

// Play stops any open session and starts path from the beginning.
// Opening may block on I/O; a Play or Stop issued meanwhile wins and this
// call returns ErrSuperseded.
func (e *Engine) Play(path string) error {
	if !e.available("play") {
		return ErrBackendUnavailable
	}

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return ErrBackendUnavailable
	}
	e.gen++
	gen := e.gen
	e.stopLocked()
	e.mu.Unlock()

	if _, err := os.Stat(path); err != nil {
		log.Printf("[audio] audio file missing: %s", path)
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	id := generateSessionID()
	stream, err := e.backend.Open(path, func() { e.handleEnd(id) })
	if err != nil {
		log.Printf("[audio] failed to open %s: %v", filepath.Base(path), err)
		return fmt.Errorf("failed to open %s: %w", path, err)
	}

	e.mu.Lock()
	if gen != e.gen || e.closed {
		e.mu.Unlock()
		if err := stream.Close(); err != nil {
			log.Printf("[audio] failed to release superseded stream: %v", err)
		}
		return ErrSuperseded
	}

	s := &session{
		id:       id,
		path:     path,
		stream:   stream,
		duration: stream.Duration(),
		done:     make(chan struct{}),
	}
	e.session = s
	e.state = model.PlaybackPlaying
	stream.SetPaused(false)
	e.mu.Unlock()

	go e.poll(s)

	log.Printf("[audio] playing %s (%v)", filepath.Base(path), s.duration.Round(time.Millisecond))
	return nil
}

// Pause silences a playing stream. No-op unless Playing.
func (e *Engine) Pause() {
	if !e.available("pause") {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != model.PlaybackPlaying || e.session == nil {
		return
	}
	e.session.stream.SetPaused(true)
	e.state = model.PlaybackPaused
	e.emitLocked(model.EventPaused)
}

// Resume continues a paused stream. No-op unless Paused.
func (e *Engine) Resume() {
	if !e.available("resume") {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != model.PlaybackPaused || e.session == nil {
		return
	}
	e.session.stream.SetPaused(false)
	e.state = model.PlaybackPlaying
	e.emitLocked(model.EventResumed)
}

// Stop releases the open stream. Idempotent when already stopped.
func (e *Engine) Stop() {
	if !e.available("stop") {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.gen++
	e.stopLocked()
}

// Seek moves the playhead. Positions outside [0, duration] are clamped.
// No-op unless Playing or Paused.
func (e *Engine) Seek(pos time.Duration) error {
	if !e.available("seek") {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.state.IsActive() || e.session == nil {
		return nil
	}

	if pos < 0 {
		pos = 0
	}
	if pos > e.session.duration {
		pos = e.session.duration
	}

	if err := e.session.stream.Seek(pos); err != nil {
		log.Printf("[audio] seek to %v failed: %v", pos, err)
		return fmt.Errorf("seek failed: %w", err)
	}

	e.events.push(model.PlaybackEvent{
		Kind:      model.EventPosition,
		SessionID: e.session.id,
		Path:      e.session.path,
		Position:  pos,
		Duration:  e.session.duration,
	})
	return nil
}

// Close stops playback and shuts down event delivery. The engine is unusable afterwards.
func (e *Engine) Close() {
	e.mu.Lock()
	e.gen++
	e.stopLocked()
	e.closed = true
	e.mu.Unlock()

	e.events.close()
}

// handleEnd runs when the backend reports the end of a session's stream
func (e *Engine) handleEnd(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	// A user stop or a newer Play already closed this session
	if e.session == nil || e.session.id != id {
		return
	}
	log.Printf("[audio] playback finished: %s", filepath.Base(e.session.path))
	e.stopLocked()
}

// stopLocked closes the open session, if any, and emits EventStopped.
// The session is detached before Close so the stream is released exactly once.
func (e *Engine) stopLocked() {
	s := e.session
	e.state = model.PlaybackStopped
	if s == nil {
		return
	}
	e.session = nil
	close(s.done)

	if err := s.stream.Close(); err != nil {
		log.Printf("[audio] had trouble releasing stream: %v", err)
	}

	e.events.push(model.PlaybackEvent{
		Kind:      model.EventStopped,
		SessionID: s.id,
		Path:      s.path,
	})
}

// emitLocked queues an event describing the open session
func (e *Engine) emitLocked(kind model.EventKind) {
	e.events.push(model.PlaybackEvent{
		Kind:      kind,
		SessionID: e.session.id,
		Path:      e.session.path,
		Position:  e.session.stream.Position(),
		Duration:  e.session.duration,
	})
}

// poll emits position events for s while it is playing
func (e *Engine) poll(s *session) {
	ticker := time.NewTicker(e.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			e.mu.Lock()
			if e.session == s && e.state == model.PlaybackPlaying {
				e.emitLocked(model.EventPosition)
			}
			e.mu.Unlock()
		}
	}
}

// available logs and reports false in degraded mode
func (e *Engine) available(op string) bool {
	if e.backend == nil {
		log.Printf("[audio] WARNING: %s ignored, audio backend unavailable", op)
		return false
	}
	return true
}

// generateSessionID generates a unique, time-ordered session ID
func generateSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(SessionIDPrefix+"%d", time.Now().UnixNano())
	}
	return SessionIDPrefix + id.String()
}
