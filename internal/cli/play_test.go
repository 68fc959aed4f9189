package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dawbrowser/daw-browser/internal/audio"
)

// clipStream ends by itself after length unless it is closed first
type clipStream struct {
	mu     sync.Mutex
	length time.Duration
	timer  *time.Timer
	closed bool
}

func (s *clipStream) Duration() time.Duration { return s.length }
func (s *clipStream) Position() time.Duration { return 0 }
func (s *clipStream) Seek(time.Duration) error { return nil }
func (s *clipStream) SetPaused(bool) {}

func (s *clipStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
	}
	return nil
}

func (s *clipStream) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

type clipBackend struct {
	length time.Duration
	stream *clipStream
}

func (b *clipBackend) Open(path string, onEnd func()) (audio.Stream, error) {
	s := &clipStream{length: b.length}
	if b.length > 0 {
		s.timer = time.AfterFunc(b.length, onEnd)
	}
	b.stream = s
	return s, nil
}

func writeClip(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "demo.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF"), 0644))
	return path
}

func TestPlayClip_RunsToEnd(t *testing.T) {
	backend := &clipBackend{length: 50 * time.Millisecond}
	var out bytes.Buffer

	err := playClip(context.Background(), backend, 10*time.Millisecond, writeClip(t), 0, &out)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Playing demo")
	assert.True(t, backend.stream.isClosed())
}

func TestPlayClip_CancelStops(t *testing.T) {
	backend := &clipBackend{} // never ends on its own
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	var out bytes.Buffer

	err := playClip(ctx, backend, 10*time.Millisecond, writeClip(t), 0, &out)

	require.NoError(t, err)
	assert.True(t, backend.stream.isClosed())
}

func TestPlayClip_MissingFile(t *testing.T) {
	var out bytes.Buffer

	err := playClip(context.Background(), &clipBackend{}, 0, filepath.Join(t.TempDir(), "gone.wav"), 0, &out)

	assert.ErrorIs(t, err, audio.ErrFileNotFound)
}
