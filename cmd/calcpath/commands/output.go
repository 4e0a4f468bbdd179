package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/calcpath/tree"
)

// writeResult prints a solution as a table of presses followed by a
// summary line.
func writeResult(w io.Writer, title string, res *tree.Result) error {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	if title != "" {
		tbl.SetTitle(title)
	}
	tbl.AppendHeader(table.Row{"#", "Button", "Display"})
	tbl.AppendRow(table.Row{"", "start", res.Start})
	for i, n := range tree.Chain(res.Node) {
		tbl.AppendRow(table.Row{i + 1, n.Applied.Name(), n.Value})
	}
	tbl.AppendFooter(table.Row{"", "target", res.Target})

	_, err := fmt.Fprintf(w, "%s\n%s\n", tbl.Render(), summary(res.Stats))

	return err
}

// writeSteps prints one button name per line.
func writeSteps(w io.Writer, res *tree.Result) error {
	if len(res.Steps) == 0 {
		return nil
	}
	_, err := fmt.Fprintln(w, strings.Join(res.Steps, "\n"))

	return err
}

func summary(s *tree.Stats) string {
	if s == nil {
		return ""
	}

	return fmt.Sprintf("searched %s nodes (%s leaves, %s rejected presses) in %s",
		humanize.Comma(int64(s.Nodes)),
		humanize.Comma(int64(s.Leaves)),
		humanize.Comma(int64(s.Rejections())),
		s.Elapsed.Round(time.Microsecond),
	)
}
