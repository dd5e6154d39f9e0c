package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pixmaze/corridor"
	"github.com/katalvlaran/pixmaze/dot"
)

type graphOpts struct {
	format string
	output string
	path   bool
}

func (c *CLI) graphCommand() *cobra.Command {
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "graph <input>",
		Short: "Summarize or export the compressed corridor graph",
		Long: `Graph compresses a maze into junctions and corridors and prints a summary.

With --format the graph is exported as Graphviz DOT, SVG or PNG. DOT goes to
stdout unless --output is given; SVG and PNG default to <input>_graph.<format>.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "export format: dot, svg, png")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "export file")
	cmd.Flags().BoolVar(&opts.path, "path", false, "highlight the solved route in the export")

	return cmd
}

func (c *CLI) runGraph(ctx context.Context, w io.Writer, input string, opts graphOpts) error {
	logger := loggerFromContext(ctx)

	buf, err := readMaze(ctx, input)
	if err != nil {
		return err
	}
	prog := newProgress(logger)
	m, err := corridor.Build(buf)
	if err != nil {
		return err
	}
	prog.done("Compressed " + input)

	if opts.format == "" {
		printGraphSummary(w, input, m)
		return nil
	}

	format, err := dot.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	var dotOpts []dot.Option
	if opts.path {
		nodes, err := m.Solve()
		if err != nil {
			return err
		}
		dotOpts = append(dotOpts, dot.WithPath(nodes))
	}

	prog = newProgress(logger)
	data, err := dot.Render(ctx, dot.FromMaze(m, dotOpts...), format)
	if err != nil {
		return err
	}

	output := opts.output
	if output == "" && format == dot.DOT {
		_, err := w.Write(data)
		return err
	}
	if output == "" {
		output = withExt(input, "") + "_graph." + string(format)
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Wrote %s", output))
	return nil
}

func printGraphSummary(w io.Writer, input string, m *corridor.Maze) {
	fmt.Fprintln(w, styleTitle.Render(input))
	printField(w, "size", fmt.Sprintf("%dx%d", m.Width, m.Height))
	printField(w, "nodes", m.Graph.NodeCount())
	printField(w, "corridors", m.Graph.EdgeCount())
	printField(w, "start", m.Graph.Node(m.Start))
	printField(w, "exit", m.Graph.Node(m.End))

	var longest uint32
	for _, s := range m.Segments() {
		longest = max(longest, s.Weight)
	}
	printField(w, "longest", longest)
}
