package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/calcpath/ops"
	"github.com/katalvlaran/calcpath/tree"
)

// ErrNoButtons is returned when solve is called without --button.
var ErrNoButtons = errors.New("at least one --button is required")

type solveFlags struct {
	start             int64
	target            int64
	moves             int
	buttons           []string
	warp              string
	storeConsumesMove bool
	workers           int
	quiet             bool
}

func (a *app) newSolveCommand() *cobra.Command {
	var f solveFlags

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a puzzle given on the command line",
		Example: `  calcpath solve --start 5 --target 41 --moves 4 -b x3 -b +4 -b +8 -b '[+]2'
  calcpath solve --start 99 --target 10 --moves 3 -b 'add 1' -b -1 --warp 2:0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("store-consumes-move") {
				f.storeConsumesMove = a.cfg.Search.StoreConsumesMove
			}

			return a.flush(a.runSolve(cmd, f))
		},
	}

	flags := cmd.Flags()
	flags.Int64Var(&f.start, "start", 0, "value on the display")
	flags.Int64Var(&f.target, "target", 0, "value to reach")
	flags.IntVar(&f.moves, "moves", 0, "number of moves, spent exactly")
	flags.StringArrayVarP(&f.buttons, "button", "b", nil, `button spec, repeatable ("x3", "+4", "reverse", "[+]2", ...)`)
	flags.StringVar(&f.warp, "warp", "", `warp portal as "enter:exit" digit positions`)
	flags.BoolVar(&f.storeConsumesMove, "store-consumes-move", false, "make Store cost a move")
	flags.IntVar(&f.workers, "workers", 0, "parallel subtree builders (default search.workers)")
	flags.BoolVarP(&f.quiet, "quiet", "q", false, "print only the button names")

	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("moves")

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, f solveFlags) error {
	if len(f.buttons) == 0 {
		return ErrNoButtons
	}

	catalog, err := ops.ParseAll(f.buttons)
	if err != nil {
		return err
	}

	opts := append(a.searchOptions(f.workers),
		tree.WithContext(cmd.Context()),
		tree.WithStoreConsumesMove(f.storeConsumesMove),
	)
	if f.warp != "" {
		w, err := ops.ParseWarp(f.warp)
		if err != nil {
			return err
		}
		opts = append(opts, tree.WithWarp(w))
	}

	res, err := tree.Solve(f.start, f.target, f.moves, catalog, opts...)
	a.metrics.Observe(res, err)
	if err != nil {
		if res != nil && res.Stats != nil {
			a.log.Info("search exhausted", "nodes", res.Stats.Nodes, "rejected", res.Stats.Rejections())
		}

		return fmt.Errorf("start %d, target %d, %d moves: %w", f.start, f.target, f.moves, err)
	}

	out := cmd.OutOrStdout()
	if f.quiet {
		return writeSteps(out, res)
	}

	return writeResult(out, "", res)
}
