package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/calcpath/level"
	"github.com/katalvlaran/calcpath/tree"
)

// ErrNoLevels is returned when level is called with neither names nor --all.
var ErrNoLevels = errors.New("name a level or file, or pass --all")

func (a *app) newLevelCommand() *cobra.Command {
	var (
		all     bool
		workers int
		quiet   bool
	)

	cmd := &cobra.Command{
		Use:   "level [name|file]...",
		Short: "Solve level files or bundled levels",
		Long: `Solve each named level. An argument naming an existing file is loaded
from disk; anything else is looked up among the bundled levels and the
levels.dir directory. Levels that carry an expected solution are checked
against it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !all && len(args) == 0 {
				return ErrNoLevels
			}

			levels, err := a.resolveLevels(args, all)
			if err != nil {
				return err
			}

			return a.flush(a.runLevels(cmd, levels, workers, quiet))
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "solve every known level")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel subtree builders (default search.workers)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the button names")

	return cmd
}

func (a *app) newLevelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List known levels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			levels, err := a.knownLevels()
			if err != nil {
				return err
			}

			tbl := table.NewWriter()
			tbl.SetStyle(table.StyleLight)
			tbl.AppendHeader(table.Row{"Name", "Start", "Target", "Moves", "Buttons"})
			for _, l := range levels {
				tbl.AppendRow(table.Row{l.Name, l.Start, l.Target, l.Moves, len(l.Buttons)})
			}
			tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d levels", len(levels))})

			_, err = fmt.Fprintln(cmd.OutOrStdout(), tbl.Render())

			return err
		},
	}
}

// knownLevels returns the bundled levels followed by those in levels.dir.
func (a *app) knownLevels() ([]*level.Level, error) {
	levels, err := level.Builtin()
	if err != nil {
		return nil, err
	}
	if a.cfg.Levels.Dir == "" {
		return levels, nil
	}

	extra, err := level.LoadDir(a.cfg.Levels.Dir)
	if err != nil {
		return nil, err
	}

	return append(levels, extra...), nil
}

func (a *app) resolveLevels(args []string, all bool) ([]*level.Level, error) {
	known, err := a.knownLevels()
	if err != nil {
		return nil, err
	}
	if all {
		return known, nil
	}

	levels := make([]*level.Level, 0, len(args))
	for _, arg := range args {
		if info, statErr := os.Stat(arg); statErr == nil && !info.IsDir() {
			l, err := level.Load(arg)
			if err != nil {
				return nil, err
			}
			levels = append(levels, l)

			continue
		}

		l, err := level.Find(known, arg)
		if err != nil {
			return nil, err
		}
		levels = append(levels, l)
	}

	return levels, nil
}

// runLevels solves every level and reports all failures together.
func (a *app) runLevels(cmd *cobra.Command, levels []*level.Level, workers int, quiet bool) error {
	var errs []error

	for _, l := range levels {
		opts := append(a.searchOptions(workers), tree.WithContext(cmd.Context()))

		res, err := l.Solve(opts...)
		a.metrics.Observe(res, err)
		if err != nil {
			a.log.Warn("level failed", "level", l.Name, "err", err)
			errs = append(errs, fmt.Errorf("%s: %w", l.Name, err))

			continue
		}
		if err := l.Check(res.Steps); err != nil {
			a.log.Warn("unexpected solution", "level", l.Name, "steps", res.Steps)
			errs = append(errs, err)
		}

		if quiet {
			err = writeSteps(cmd.OutOrStdout(), res)
		} else {
			err = writeResult(cmd.OutOrStdout(), l.Name, res)
		}
		if err != nil {
			return err
		}
		a.log.Debug("level solved", "level", l.Name, "nodes", res.Stats.Nodes)
	}

	return errors.Join(errs...)
}
