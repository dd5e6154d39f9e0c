package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pixmaze/imageio"
	"github.com/katalvlaran/pixmaze/pixel"
	"github.com/katalvlaran/pixmaze/solve"
)

// solveOpts holds the flags of the solve command.
type solveOpts struct {
	strategy  string
	scale     int
	corridors bool
	repair    bool
	suffix    string
}

func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve <input> [output]",
		Short: "Solve a maze image and write the route overlay",
		Long: `Solve reads a PNG or BMP maze, finds the route from the top opening to the
bottom opening and writes an RGB copy with the route painted in.

If output is omitted it is derived from input by inserting the configured
suffix before the extension (maze.png -> maze_solved.png).`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.applySolveDefaults(cmd, &opts)
			output := ""
			if len(args) == 2 {
				output = args[1]
			}
			return c.runSolve(cmd.Context(), cmd.OutOrStdout(), args[0], output, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.strategy, "strategy", "s", "", "search strategy: grid, graph, graph-bfs (default from config)")
	cmd.Flags().IntVar(&opts.scale, "scale", 0, "upscale factor for the written image (default from config)")
	cmd.Flags().BoolVar(&opts.corridors, "corridors", false, "paint compressed corridors by direction instead of the route")
	cmd.Flags().BoolVar(&opts.repair, "repair", false, "paint the route through the fewest walls and mark the walls to open")
	cmd.Flags().StringVar(&opts.suffix, "suffix", "", "suffix for derived output names (default from config)")
	cmd.MarkFlagsMutuallyExclusive("corridors", "repair")

	return cmd
}

// applySolveDefaults fills flags the user did not set from the config.
func (c *CLI) applySolveDefaults(cmd *cobra.Command, opts *solveOpts) {
	f := cmd.Flags()
	if !f.Changed("strategy") {
		opts.strategy = c.cfg.Strategy
	}
	if !f.Changed("scale") {
		opts.scale = c.cfg.Scale
	}
	if !f.Changed("corridors") {
		opts.corridors = c.cfg.Corridors
	}
	if !f.Changed("suffix") {
		opts.suffix = c.cfg.Suffix
	}
}

func (c *CLI) runSolve(ctx context.Context, w io.Writer, input, output string, opts solveOpts) error {
	logger := loggerFromContext(ctx)

	strategy, err := solve.ParseStrategy(opts.strategy)
	if err != nil {
		return err
	}
	if output == "" {
		if output, err = outputPath(input, opts.suffix); err != nil {
			return err
		}
	}

	buf, err := readMaze(ctx, input)
	if err != nil {
		return err
	}

	var (
		img     pixel.Buffer
		summary string
	)
	switch {
	case opts.repair:
		prog := newProgress(logger)
		r, out, err := solve.Repair(buf)
		if err != nil {
			return err
		}
		prog.done(fmt.Sprintf("Found a route through %d walls", r.Cost()))
		logger.Debug("Repair", "path", len(r.Path), "walls", r.Walls)
		img = out
		summary = fmt.Sprintf("%d walls to open", r.Cost())
	case opts.corridors:
		prog := newProgress(logger)
		out, m, err := solve.Corridors(buf)
		if err != nil {
			return err
		}
		prog.done(fmt.Sprintf("Compressed into %d nodes and %d corridors", m.Graph.NodeCount(), m.Graph.EdgeCount()))
		img = out
		summary = fmt.Sprintf("%d junctions", m.Graph.NodeCount())
	default:
		res, err := solve.Solve(buf, strategy)
		if err != nil {
			return err
		}
		logger.Info("Solved",
			"strategy", res.Strategy,
			"path", len(res.Path),
			"nodes", res.Nodes,
			"explored", res.Explored,
			"elapsed", res.Elapsed)
		if img, err = solve.Render(buf, res); err != nil {
			return err
		}
		summary = fmt.Sprintf("%d cells via %s", len(res.Path), res.Strategy)
	}

	prog := newProgress(logger)
	if err := imageio.Write(output, img, opts.scale); err != nil {
		return err
	}
	prog.done("Wrote " + output)
	printSuccess(w, "%s -> %s (%s)", input, output, summary)
	return nil
}

// readMaze decodes input and logs its shape.
func readMaze(ctx context.Context, input string) (pixel.Buffer, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	buf, err := imageio.Read(input)
	if err != nil {
		return pixel.Buffer{}, err
	}
	logger.Debug("Decoded", "width", buf.Width, "height", buf.Height, "mode", buf.Mode)
	prog.done("Read " + input)
	return buf, nil
}
