package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/dawbrowser/daw-browser/internal/assets"
)

func (a *app) assetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "assets",
		Short: "Copy default logos and themes to the asset folder",
		Long: `Create the asset folder with the bundled DAW logos and themes so they can be
edited. Files that already exist are left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.AssetsDir == "" {
				return fmt.Errorf("no asset folder configured")
			}

			result, err := assets.EnsureExternal(a.cfg.AssetsDir, assets.Defaults())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Assets in %s: %d copied, %d already present\n",
				result.Root, len(result.Copied), len(result.Skipped))
			for _, name := range result.Copied {
				fmt.Fprintf(out, "  + %s\n", name)
			}

			if result.OK() {
				return nil
			}
			failed := make([]string, 0, len(result.Failed))
			for name := range result.Failed {
				failed = append(failed, name)
			}
			sort.Strings(failed)
			for _, name := range failed {
				fmt.Fprintf(errWriter(cmd), "  ! %s: %v\n", name, result.Failed[name])
			}
			return fmt.Errorf("%d asset files could not be copied", len(failed))
		},
	}
}
