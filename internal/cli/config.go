package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func (a *app) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := yaml.Marshal(struct {
				AssetsDir      string `yaml:"assets_dir"`
				LastFolderFile string `yaml:"last_folder_file"`
				PollInterval   string `yaml:"poll_interval"`
				Format         string `yaml:"format"`
			}{
				AssetsDir:      a.cfg.AssetsDir,
				LastFolderFile: a.cfg.LastFolderFile,
				PollInterval:   a.cfg.PollInterval.String(),
				Format:         a.cfg.Format,
			})
			if err != nil {
				return fmt.Errorf("error marshaling config: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
