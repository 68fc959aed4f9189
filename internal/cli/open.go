package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dawbrowser/daw-browser/internal/model"
)

func (a *app) openCommand() *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:   "open <project>",
		Short: "Open a project in its DAW",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("failed to resolve %s: %w", args[0], err)
			}
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("project not found: %w", err)
			}

			if reveal {
				if err := a.reveal(path); err != nil {
					return fmt.Errorf("failed to reveal %s: %w", path, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Revealed %s\n", path)
				return nil
			}

			kind, ok := model.KindForExtension(filepath.Ext(path))
			if !ok {
				fmt.Fprintf(errWriter(cmd), "warning: %s is not a known DAW project, opening anyway\n", filepath.Base(path))
			}
			if err := a.open(path); err != nil {
				return fmt.Errorf("failed to open %s: %w", path, err)
			}
			if ok {
				fmt.Fprintf(cmd.OutOrStdout(), "Opened %s in %s\n", filepath.Base(path), kind)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Opened %s\n", filepath.Base(path))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&reveal, "reveal", false, "show the project in the file manager instead")
	return cmd
}
