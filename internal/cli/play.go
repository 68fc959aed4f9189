package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dawbrowser/daw-browser/internal/audio"
	"github.com/dawbrowser/daw-browser/internal/model"
)

func (a *app) playCommand() *cobra.Command {
	var seek time.Duration

	cmd := &cobra.Command{
		Use:   "play <clip>",
		Short: "Play an audio clip through the speaker",
		Long: `Play a demo clip (mp3, wav or flac) and show the playhead until the clip ends
or Ctrl-C is pressed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := audio.NewBeepBackend()
			if err != nil {
				return fmt.Errorf("audio output unavailable: %w", err)
			}
			defer backend.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return playClip(ctx, backend, a.cfg.PollInterval, args[0], seek, cmd.OutOrStdout())
		},
	}

	cmd.Flags().DurationVar(&seek, "seek", 0, "start position, e.g. 1m30s")
	return cmd
}

// playClip plays path until it ends or ctx is cancelled, printing the playhead to out
func playClip(ctx context.Context, backend audio.Backend, pollInterval time.Duration, path string, seek time.Duration, out io.Writer) error {
	engine := audio.NewEngine(backend, pollInterval)
	defer engine.Close()

	info := audio.ReadClipInfo(path)
	fmt.Fprintf(out, "Playing %s\n", info.DisplayName())

	done := make(chan struct{})
	var once sync.Once
	engine.SetEventCallback(func(ev model.PlaybackEvent) {
		switch ev.Kind {
		case model.EventPosition:
			fmt.Fprintf(out, "\r%s / %s", model.FormatClock(ev.Position), model.FormatClock(ev.Duration))
		case model.EventStopped:
			once.Do(func() { close(done) })
		}
	})

	if err := engine.Play(path); err != nil {
		return err
	}
	if seek > 0 {
		if err := engine.Seek(seek); err != nil {
			return err
		}
	}

	select {
	case <-done:
	case <-ctx.Done():
		engine.Stop()
	}

	// flush pending events before writing the final newline
	engine.Close()
	fmt.Fprintln(out)
	return nil
}
