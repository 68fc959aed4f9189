package audio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// Output device settings
const (
	DeviceSampleRate = beep.SampleRate(44100)
	SpeakerBuffer    = 100 * time.Millisecond
	ResampleQuality  = 4
)

// Decodable clip extensions
const (
	ExtMP3  = ".mp3"
	ExtWAV  = ".wav"
	ExtFLAC = ".flac"
)

// BeepBackend plays clips through the system speaker with gopxl/beep
type BeepBackend struct {
	sampleRate beep.SampleRate
}

// NewBeepBackend initialises the speaker. It fails on machines without an
// audio device; callers should fall back to a degraded engine.
func NewBeepBackend() (*BeepBackend, error) {
	if err := speaker.Init(DeviceSampleRate, DeviceSampleRate.N(SpeakerBuffer)); err != nil {
		return nil, fmt.Errorf("failed to initialise speaker: %w", err)
	}
	return &BeepBackend{sampleRate: DeviceSampleRate}, nil
}

// Close releases the output device
func (b *BeepBackend) Close() {
	speaker.Clear()
	speaker.Close()
}

// Open decodes path and attaches it, paused, to the speaker mixer
func (b *BeepBackend) Open(path string, onEnd func()) (Stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	decoder, format, err := decode(f, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		f.Close()
		return nil, err
	}

	s := &beepStream{
		decoder: decoder,
		format:  format,
	}
	// The speaker goroutine holds its lock while running callbacks,
	// so onEnd must not be invoked synchronously.
	s.ctrl = &beep.Ctrl{
		Streamer: beep.Seq(decoder, beep.Callback(func() { go onEnd() })),
		Paused:   true,
	}

	var out beep.Streamer = s.ctrl
	if format.SampleRate != b.sampleRate {
		out = beep.Resample(ResampleQuality, format.SampleRate, b.sampleRate, s.ctrl)
	}
	speaker.Play(out)

	return s, nil
}

// decode picks a decoder by extension; the decoder takes ownership of rc
func decode(rc io.ReadCloser, ext string) (beep.StreamSeekCloser, beep.Format, error) {
	switch ext {
	case ExtMP3:
		return mp3.Decode(rc)
	case ExtWAV:
		return wav.Decode(rc)
	case ExtFLAC:
		return flac.Decode(rc)
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// beepStream adapts a beep decoder to Stream. All access to the decoder and
// ctrl happens under the speaker lock.
type beepStream struct {
	decoder beep.StreamSeekCloser
	format  beep.Format
	ctrl    *beep.Ctrl

	closeOnce sync.Once
	closeErr  error
}

func (s *beepStream) Duration() time.Duration {
	speaker.Lock()
	defer speaker.Unlock()
	return s.format.SampleRate.D(s.decoder.Len())
}

func (s *beepStream) Position() time.Duration {
	speaker.Lock()
	defer speaker.Unlock()
	return s.format.SampleRate.D(s.decoder.Position())
}

func (s *beepStream) Seek(pos time.Duration) error {
	speaker.Lock()
	defer speaker.Unlock()

	n := s.format.SampleRate.N(pos)
	if n < 0 {
		n = 0
	}
	if n > s.decoder.Len() {
		n = s.decoder.Len()
	}
	return s.decoder.Seek(n)
}

func (s *beepStream) SetPaused(paused bool) {
	speaker.Lock()
	s.ctrl.Paused = paused
	speaker.Unlock()
}

// Close detaches the stream from the mixer and closes the decoder and file
func (s *beepStream) Close() error {
	s.closeOnce.Do(func() {
		speaker.Lock()
		s.ctrl.Streamer = nil
		speaker.Unlock()
		s.closeErr = s.decoder.Close()
	})
	return s.closeErr
}
