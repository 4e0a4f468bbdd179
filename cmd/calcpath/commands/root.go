// Package commands implements the calcpath cobra commands.
package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/calcpath/internal/config"
	"github.com/katalvlaran/calcpath/internal/logger"
	"github.com/katalvlaran/calcpath/internal/metrics"
	"github.com/katalvlaran/calcpath/tree"
)

// Exit codes.
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitNoSolution = 2
)

// Version is stamped at build time with -ldflags "-X ...".
var Version = "dev"

// app carries state shared by every subcommand of one invocation.
type app struct {
	configPath string
	logLevel   string
	debug      bool
	json       bool

	cfg     *config.Config
	log     *slog.Logger
	metrics *metrics.Recorder
}

// NewRootCommand builds the calcpath command tree.
func NewRootCommand() *cobra.Command {
	a := &app{metrics: metrics.NewRecorder()}

	rootCmd := &cobra.Command{
		Use:   "calcpath",
		Short: "Solve calculator puzzles by exhaustive button search",
		Long: `calcpath searches every sequence of button presses that spends the
move budget exactly and prints the first one that reaches the target.

Commands:
  solve     Solve a puzzle given on the command line
  level     Solve level files or bundled levels
  levels    List known levels`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default .calcpath.yaml in . or $HOME)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.BoolVar(&a.debug, "debug", false, "shorthand for --log-level debug")
	flags.BoolVar(&a.json, "json", false, "log as JSON")

	rootCmd.AddCommand(a.newSolveCommand())
	rootCmd.AddCommand(a.newLevelCommand())
	rootCmd.AddCommand(a.newLevelsCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.json {
		cfg.Log.Format = "json"
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logger.New(
		logger.WithWriter(cmd.ErrOrStderr()),
		logger.WithLevel(level),
		logger.WithDebug(a.debug),
		logger.WithJSON(cfg.Log.Format == "json"),
	).With("run", uuid.NewString())

	a.log.Debug("config loaded", "workers", cfg.Search.Workers, "levels_dir", cfg.Levels.Dir)

	return nil
}

// flush writes the metrics textfile, if configured, and passes runErr
// through. It runs whether or not the search succeeded.
func (a *app) flush(runErr error) error {
	if a.cfg == nil || a.cfg.Metrics.Textfile == "" {
		return runErr
	}
	if err := a.metrics.WriteTextfile(a.cfg.Metrics.Textfile); err != nil {
		return errors.Join(runErr, err)
	}
	a.log.Debug("metrics written", "path", a.cfg.Metrics.Textfile)

	return runErr
}

// searchOptions returns the tree options every search of this run shares.
func (a *app) searchOptions(workers int) []tree.Option {
	if workers < 1 {
		workers = a.cfg.Search.Workers
	}

	return []tree.Option{
		tree.WithLogger(a.log),
		tree.WithParallel(workers),
	}
}

// ExitCode maps a command error onto the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, tree.ErrNoSolution):
		return ExitNoSolution
	default:
		return ExitFailure
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "calcpath %s\n", Version)
		},
	}
}
