package audio

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dawbrowser/daw-browser/internal/model"
)

type fakeStream struct {
	mu       sync.Mutex
	path     string
	duration time.Duration
	position time.Duration
	paused   bool
	closes   int
	onEnd    func()
	seekErr  error
}

func (s *fakeStream) Duration() time.Duration { return s.duration }

func (s *fakeStream) Position() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.position
}

func (s *fakeStream) Seek(pos time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seekErr != nil {
		return s.seekErr
	}
	s.position = pos
	return nil
}

func (s *fakeStream) SetPaused(paused bool) {
	s.mu.Lock()
	s.paused = paused
	s.mu.Unlock()
}

func (s *fakeStream) Close() error {
	s.mu.Lock()
	s.closes++
	s.mu.Unlock()
	return nil
}

func (s *fakeStream) isPaused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

func (s *fakeStream) closeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closes
}

// finish simulates the backend reaching the end of the stream
func (s *fakeStream) finish() {
	s.onEnd()
}

type fakeBackend struct {
	mu       sync.Mutex
	duration time.Duration
	openErr  error
	gate     chan struct{} // when set, Open blocks until it is closed
	entered  chan struct{}
	streams  []*fakeStream
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{duration: 10 * time.Second}
}

func (b *fakeBackend) Open(path string, onEnd func()) (Stream, error) {
	b.mu.Lock()
	gate, entered, openErr := b.gate, b.entered, b.openErr
	b.mu.Unlock()

	if entered != nil {
		entered <- struct{}{}
	}
	if gate != nil {
		<-gate
	}
	if openErr != nil {
		return nil, openErr
	}

	s := &fakeStream{path: path, duration: b.duration, paused: true, onEnd: onEnd}
	b.mu.Lock()
	b.streams = append(b.streams, s)
	b.mu.Unlock()
	return s, nil
}

func (b *fakeBackend) stream(i int) *fakeStream {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.streams[i]
}

func (b *fakeBackend) opened() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.streams)
}

// recorder collects events delivered by the engine
type recorder struct {
	mu     sync.Mutex
	events []model.PlaybackEvent
}

func (r *recorder) record(ev model.PlaybackEvent) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
}

func (r *recorder) kinds(filter ...model.EventKind) []model.EventKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.EventKind
	for _, ev := range r.events {
		if len(filter) == 0 {
			out = append(out, ev.Kind)
			continue
		}
		for _, k := range filter {
			if ev.Kind == k {
				out = append(out, ev.Kind)
			}
		}
	}
	return out
}

func (r *recorder) all() []model.PlaybackEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.PlaybackEvent(nil), r.events...)
}

func (r *recorder) count(kind model.EventKind) int {
	return len(r.kinds(kind))
}

// newTestEngine returns an engine whose poller is effectively disabled
func newTestEngine(t *testing.T, backend Backend) (*Engine, *recorder) {
	t.Helper()
	e := NewEngine(backend, time.Hour)
	rec := &recorder{}
	e.SetEventCallback(rec.record)
	t.Cleanup(e.Close)
	return e, rec
}

func writeClip(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("RIFF"), 0644))
	return path
}

var errOpen = errors.New("decode failed")
