package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/phanxgames/uitree"
)

// Version is set via ldflags at build time.
var Version = "dev"

// options are the persistent flags shared by every subcommand.
type options struct {
	cfgFile  string
	verbose  bool
	debug    bool
	noReShow bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "uitree",
		Short: "Inspect and simulate hierarchical UI visibility trees",
		Long: `uitree loads a YAML panel layout and drives its show/hide state
machine: print the tree, replay a transition script headlessly, or browse
and toggle panels interactively in the terminal.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "uitree.yaml", "config file path")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable build-time structure warnings")
	root.PersistentFlags().BoolVar(&opts.noReShow, "no-reshow", false, "ignore redundant show/hide requests")

	root.AddCommand(
		newInspectCmd(opts),
		newSimulateCmd(opts),
		newTUICmd(opts),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of uitree",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "uitree %s\n", Version)
		},
	}
}

// config loads the config file and applies command-line overrides.
func (o *options) config() (*Config, error) {
	cfg, err := LoadConfig(o.cfgFile)
	if err != nil {
		return nil, err
	}
	if o.debug {
		cfg.Debug = true
	}
	if o.noReShow {
		cfg.ReShow = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (o *options) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadTree reads a layout and builds it into a tree whose player is
// registered as a ticker.
func (o *options) loadTree(cmd *cobra.Command, path string, cfg *Config) (*uitree.Tree, error) {
	player := uitree.NewTweenPlayer()
	root, err := uitree.LoadLayout(path, player)
	if err != nil {
		return nil, err
	}
	tc := cfg.TreeConfig()
	tc.Logger = o.logger(cmd.ErrOrStderr())
	tree := uitree.NewTree(tc)
	tree.AddTicker(player)
	if err := tree.Build(root); err != nil {
		return nil, err
	}
	return tree, nil
}
