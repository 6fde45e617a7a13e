package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Sillem/zone2-polar-flow-analyzer/internal/config"
	"github.com/Sillem/zone2-polar-flow-analyzer/internal/store"
)

// options holds the global flags shared by every command
type options struct {
	configPath  string
	historyPath string
	backend     string
}

// NewRootCmd builds the zone2 command tree
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "zone2",
		Short: "Cardiac drift analysis for zone 2 runs",
		Long: `zone2 reads a Polar Flow CSV (or FIT) export of a steady run, measures
how much heart rate drifts at the same speed between the second and the
final quarter, and recommends the duration of the next zone 2 session.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default ~/.zone2/config.yaml)")
	flags.StringVar(&opts.historyPath, "history", "", "decision history file, overrides history.path")
	flags.StringVar(&opts.backend, "backend", "", "history backend (json or sqlite), overrides history.backend")

	root.AddCommand(
		newAnalyzeCmd(opts),
		newHistoryCmd(opts),
		newInitCmd(opts),
	)
	return root
}

// loadConfig reads the config file and applies flag overrides.
// A missing default config file means defaults; a missing --config file is an error.
func (o *options) loadConfig() (*config.Config, error) {
	path := o.configPath
	explicit := path != ""
	if !explicit {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg, err := config.Load(path)
	if errors.Is(err, config.ErrNoConfig) && !explicit {
		defaults := config.DefaultConfig()
		cfg, err = &defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}

	if o.historyPath != "" {
		cfg.History.Path = o.historyPath
	}
	if o.backend != "" {
		cfg.History.Backend = o.backend
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// setup loads the config, builds the logger and opens the history
func (o *options) setup(cmd *cobra.Command) (*config.Config, *slog.Logger, store.History, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	logger := config.NewLogger(cmd.ErrOrStderr(), cfg.Log.Level)

	history, err := store.Open(cfg.History.Backend, cfg.History.Path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening history: %w", err)
	}
	logger.Debug("history opened", "backend", cfg.History.Backend, "path", cfg.History.Path)

	return cfg, logger, history, nil
}
