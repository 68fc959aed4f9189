package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dawbrowser/daw-browser/internal/audio"
	"github.com/dawbrowser/daw-browser/internal/platform"
)

// EnvPrefix prefixes environment overrides, e.g. DAWSCAN_FORMAT=json
const EnvPrefix = "DAWSCAN"

// DefaultConfigName is looked up in the user's config directory when --config is not given
const DefaultConfigName = "dawscan.yaml"

// Config holds the settings shared by all commands
type Config struct {
	AssetsDir      string        `mapstructure:"assets_dir"`
	LastFolderFile string        `mapstructure:"last_folder_file"`
	PollInterval   time.Duration `mapstructure:"poll_interval"`
	Format         string        `mapstructure:"format"`
}

// app carries state for one invocation of the command tree
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *Config

	// OS launchers, replaced in tests
	open   func(path string) error
	reveal func(path string) error
}

// NewRootCommand builds the dawscan command tree
func NewRootCommand() *cobra.Command {
	a := &app{
		v:      viper.New(),
		open:   platform.OpenFileWithDefaultApp,
		reveal: platform.OpenFileInManager,
	}
	return a.rootCommand()
}

// Execute runs dawscan with os.Args
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "dawscan",
		Short: "Find, audition and open DAW projects",
		Long: `dawscan lists Logic Pro, FL Studio and Ableton Live projects below a folder,
plays the demo clip saved next to a project, and opens projects in their DAW.

Settings are read from $HOME/.config/dawscan.yaml (or --config) and can be
overridden with DAWSCAN_* environment variables or flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			a.cfg = cfg
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.config/"+DefaultConfigName+")")
	flags.String("assets-dir", "", "folder holding DAWLogos and Themes (default is the app's asset folder)")
	flags.String("last-folder-file", "", "file that remembers the last scanned folder")
	flags.Duration("poll-interval", audio.DefaultPollInterval, "interval between playback position updates")
	flags.StringP("format", "f", FormatTable, "output format: table, json or yaml")

	bindings := map[string]string{
		"assets_dir":       "assets-dir",
		"last_folder_file": "last-folder-file",
		"poll_interval":    "poll-interval",
		"format":           "format",
	}
	for key, flag := range bindings {
		if err := a.v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err) // flag names above are static
		}
	}

	root.AddCommand(a.scanCommand())
	root.AddCommand(a.playCommand())
	root.AddCommand(a.openCommand())
	root.AddCommand(a.assetsCommand())
	root.AddCommand(a.configCommand())
	return root
}

// loadConfig merges defaults, the config file, environment and flags
func (a *app) loadConfig() (*Config, error) {
	v := a.v

	if dir, err := platform.AssetsDir(); err == nil {
		v.SetDefault("assets_dir", dir)
	}
	if file, err := platform.LastFolderFile(); err == nil {
		v.SetDefault("last_folder_file", file)
	}
	v.SetDefault("poll_interval", audio.DefaultPollInterval)
	v.SetDefault("format", FormatTable)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	cfgFile := a.cfgFile
	explicit := cfgFile != ""
	if !explicit {
		if home, err := os.UserHomeDir(); err == nil {
			cfgFile = filepath.Join(home, ".config", DefaultConfigName)
		}
	}
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			missing := errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
			if explicit || !missing {
				return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := validateFormat(cfg.Format); err != nil {
		return nil, err
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = audio.DefaultPollInterval
	}
	return &cfg, nil
}

// errWriter returns the command's stderr
func errWriter(cmd *cobra.Command) io.Writer {
	return cmd.ErrOrStderr()
}
