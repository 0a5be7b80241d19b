// Command jview-theme previews, checks and dumps jview theme documents.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fwojciec/jview"
	"github.com/fwojciec/jview/bubbletea"
	"github.com/fwojciec/jview/chroma"
	"github.com/fwojciec/jview/config"
	"github.com/fwojciec/jview/fs"
	jlipgloss "github.com/fwojciec/jview/lipgloss"
	"github.com/fwojciec/jview/logging"
	"github.com/fwojciec/jview/toml"
	"github.com/fwojciec/jview/yaml"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Version information (set at build time).
var version = "dev"

// flagKeys maps persistent flags to the configuration keys they override.
var flagKeys = map[string]string{
	"theme":         "theme.file",
	"fallback":      "theme.fallback",
	"color-profile": "display.color_profile",
	"log-level":     "logging.level",
	"log-format":    "logging.format",
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := NewRootCmd(version).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree.
func NewRootCmd(version string) *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:           "jview-theme",
		Short:         "Preview and validate jview themes",
		Long:          "jview-theme loads jview theme documents (TOML or YAML), shows them on sample data and reports errors.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default: config.toml in the jview config directory)")
	flags.String("theme", "", "theme document path")
	flags.String("fallback", "", "theme used when none is loaded (builtin, none)")
	flags.String("color-profile", "", "color profile (auto, ascii, ansi, ansi256, truecolor)")
	flags.String("log-level", "", "log level (trace, debug, info, warn, error)")
	flags.String("log-format", "", "log format (console, json)")

	setup := func(cmd *cobra.Command) (*App, *config.Config, error) {
		return newApp(cmd, configFile)
	}

	cmd.AddCommand(
		newPreviewCmd(setup),
		newCheckCmd(setup),
		newDumpCmd(setup),
		newVersionCmd(version),
	)

	return cmd
}

type setupFunc func(cmd *cobra.Command) (*App, *config.Config, error)

// newApp loads configuration and wires the App for a command.
func newApp(cmd *cobra.Command, configFile string) (*App, *config.Config, error) {
	loader := config.NewLoader()
	if configFile != "" {
		loader.SetConfigFile(configFile)
	}
	for name, key := range flagKeys {
		if err := loader.BindFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return nil, nil, err
		}
	}

	cfg, err := loader.Load()
	if err != nil {
		return nil, nil, err
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cmd.ErrOrStderr(),
	})
	if used := loader.ConfigFileUsed(); used != "" {
		logging.Logger.Debug().Str("path", used).Msg("loaded config")
	}

	decoders := map[string]jview.ThemeDecoder{
		".toml": toml.NewDecoder(),
		".yaml": yaml.NewDecoder(),
		".yml":  yaml.NewDecoder(),
	}
	themes := fs.NewLoader(fs.NewLocator(cfg.Theme.File), decoders, logging.Component("theme"))

	app := &App{
		Stdout:    cmd.OutOrStdout(),
		Stderr:    cmd.ErrOrStderr(),
		Loader:    themes,
		Decoder:   themes,
		Encoder:   toml.NewEncoder(),
		Fallback:  cfg.Fallback(),
		Tokenizer: chroma.NewTokenizer(nil),
		Detector:  chroma.NewDetector(),
		HasTTY:    hasTTY,
		Logger:    logging.Component("cli"),
	}
	return app, cfg, nil
}

func newPreviewCmd(setup setupFunc) *cobra.Command {
	var match, sample string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show sample data with the configured theme",
		Long: "Show a sample document with the configured theme. The cursor line uses the focused " +
			"styles and values containing the --match term use the matched styles.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cfg, err := setup(cmd)
			if err != nil {
				return err
			}
			renderer, err := jlipgloss.NewRenderer(os.Stdout, cfg.Display.ColorProfile)
			if err != nil {
				return err
			}
			opts := []bubbletea.PreviewOption{bubbletea.WithMatch(match)}
			if sample != "" {
				lines, err := app.SampleLines(sample)
				if err != nil {
					return err
				}
				opts = append(opts, bubbletea.WithLines(lines))
			}
			app.Previewer = bubbletea.NewPreviewer(renderer, opts...)
			return app.Preview(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&match, "match", "", "highlight values containing this term as search matches")
	cmd.Flags().StringVar(&sample, "sample", "", "preview this JSON, YAML or TOML file instead of the built-in sample")

	return cmd
}

func newCheckCmd(setup setupFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Validate theme documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, _, err := setup(cmd)
			if err != nil {
				return err
			}
			return app.Check(cmd.Context(), args)
		},
	}
}

func newDumpCmd(setup setupFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the effective theme as TOML",
		Long:  "Print the effective theme, after resolution and fallback, as a TOML theme document.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, _, err := setup(cmd)
			if err != nil {
				return err
			}
			return app.Dump()
		},
	}
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "jview-theme %s\n", version)
		},
	}
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
