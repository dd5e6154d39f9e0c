package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pixmaze/imageio"
	"github.com/katalvlaran/pixmaze/mazegen"
	"github.com/katalvlaran/pixmaze/mst"
	"github.com/katalvlaran/pixmaze/solve"
)

type generateOpts struct {
	cols, rows int
	method     string
	seed       int64
	loops      int
	scale      int
}

func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate <output>",
		Short: "Draw a random maze image",
		Long: `Generate carves a random maze of cols x rows cells from a spanning tree of the
cell lattice and writes it as a PNG or BMP of (2*cols+1) x (2*rows+1) pixels.
The opening is above the top-left cell and the exit below the bottom-right
cell, so the result can be fed straight back to solve.

--loops knocks out extra walls after carving, giving the maze several routes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			g := c.cfg.Generate
			if !f.Changed("cols") {
				opts.cols = g.Cols
			}
			if !f.Changed("rows") {
				opts.rows = g.Rows
			}
			if !f.Changed("method") {
				opts.method = g.Method
			}
			if !f.Changed("loops") {
				opts.loops = g.Loops
			}
			if !f.Changed("scale") {
				opts.scale = c.cfg.Scale
			}
			return c.runGenerate(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().IntVar(&opts.cols, "cols", 0, "cells per row (default from config)")
	cmd.Flags().IntVar(&opts.rows, "rows", 0, "cells per column (default from config)")
	cmd.Flags().StringVarP(&opts.method, "method", "m", "", "spanning tree algorithm: kruskal, prim (default from config)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 1, "random seed")
	cmd.Flags().IntVar(&opts.loops, "loops", 0, "extra walls to remove (default from config)")
	cmd.Flags().IntVar(&opts.scale, "scale", 0, "upscale factor for the written image (default from config)")

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, w io.Writer, output string, opts generateOpts) error {
	logger := loggerFromContext(ctx)
	if _, err := imageio.FormatFromPath(output); err != nil {
		return err
	}

	prog := newProgress(logger)
	buf, err := solve.Generate(opts.cols, opts.rows,
		mazegen.WithMethod(mst.Method(opts.method)),
		mazegen.WithSeed(opts.seed),
		mazegen.WithLoops(opts.loops),
	)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %dx%d cells", opts.cols, opts.rows))
	logger.Debug("Generated", "method", opts.method, "seed", opts.seed, "loops", opts.loops,
		"width", buf.Width, "height", buf.Height)

	prog = newProgress(logger)
	if err := imageio.Write(output, buf, opts.scale); err != nil {
		return err
	}
	prog.done("Wrote " + output)
	printSuccess(w, "%s (%dx%d px, seed %d)", output, buf.Width, buf.Height, opts.seed)
	return nil
}
