package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pixmaze/solve"
)

func (c *CLI) benchCommand() *cobra.Command {
	var runs int

	cmd := &cobra.Command{
		Use:   "bench <input>",
		Short: "Compare build times of the dense grid and the corridor graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("runs") {
				runs = c.cfg.BenchRuns
			}
			return c.runBench(cmd.Context(), cmd.OutOrStdout(), args[0], runs)
		},
	}

	cmd.Flags().IntVarP(&runs, "runs", "n", 0, "builds per model (default from config)")

	return cmd
}

func (c *CLI) runBench(ctx context.Context, w io.Writer, input string, runs int) error {
	buf, err := readMaze(ctx, input)
	if err != nil {
		return err
	}

	prog := newProgress(loggerFromContext(ctx))
	r, err := solve.Bench(buf, runs)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Benchmarked %d runs", r.Runs))

	fmt.Fprintln(w, styleTitle.Render(fmt.Sprintf("%s (%d runs)", input, r.Runs)))
	printField(w, "grid", r.Grid)
	printField(w, "graph", r.Graph)
	printField(w, "difference", fmt.Sprintf("%+.1f%%", r.Diff()))
	return nil
}
