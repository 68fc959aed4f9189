package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/dawbrowser/daw-browser/internal/config"
	"github.com/dawbrowser/daw-browser/internal/model"
	"github.com/dawbrowser/daw-browser/internal/scanner"
)

// ErrNoFolder is returned when no folder is given and none was remembered
var ErrNoFolder = errors.New("no folder given and no last folder saved")

func (a *app) scanCommand() *cobra.Command {
	var (
		watch    bool
		quiet    bool
		remember bool
	)

	cmd := &cobra.Command{
		Use:   "scan [folder]",
		Short: "List DAW projects below a folder",
		Long: `Scan a folder recursively for .logicx, .flp and .als projects and print them
with the newest demo clip found next to each one. Without a folder argument the
folder last opened in the app is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := config.NewLastFolderStore(a.cfg.LastFolderFile)
			folder, err := resolveFolder(args, store)
			if err != nil {
				return err
			}
			// The app restores the folder from its own working directory
			if abs, err := filepath.Abs(folder); err == nil {
				folder = abs
			}

			projects := a.scan(cmd, folder, quiet)
			if err := writeProjects(cmd.OutOrStdout(), a.cfg.Format, projects); err != nil {
				return err
			}

			if remember {
				if err := store.Save(folder); err != nil {
					return fmt.Errorf("failed to remember %s: %w", folder, err)
				}
			}

			if !watch {
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(errWriter(cmd), "Watching %s for changes, press Ctrl-C to stop\n", folder)
			return scanner.NewDefault().Watch(ctx, folder, scanner.DefaultWatchDebounce, func() {
				projects := a.scan(cmd, folder, true)
				if err := writeProjects(cmd.OutOrStdout(), a.cfg.Format, projects); err != nil {
					fmt.Fprintf(errWriter(cmd), "failed to print projects: %v\n", err)
				}
			})
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep running and rescan when the folder changes")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "hide the progress spinner")
	cmd.Flags().BoolVar(&remember, "remember", false, "save the folder as the app's last folder")
	return cmd
}

// resolveFolder picks the folder argument or falls back to the remembered one
func resolveFolder(args []string, store *config.LastFolderStore) (string, error) {
	if len(args) == 1 && args[0] != "" {
		return args[0], nil
	}
	folder, err := store.Load()
	if err != nil {
		return "", fmt.Errorf("failed to read last folder: %w", err)
	}
	if folder == "" {
		return "", ErrNoFolder
	}
	return folder, nil
}

// scan runs the scanner with a spinner on stderr
func (a *app) scan(cmd *cobra.Command, folder string, quiet bool) []*model.ProjectRecord {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(errWriter(cmd)),
		progressbar.OptionSetDescription("scanning "+folder),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetVisibility(!quiet),
	)

	opts := scanner.DefaultOptions()
	opts.OnVisit = func(string) {
		_ = bar.Add(1)
	}

	projects := scanner.New(opts).Scan(folder)
	_ = bar.Finish()
	return projects
}
