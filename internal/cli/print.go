package cli

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pixmaze/pixel"
	"github.com/katalvlaran/pixmaze/solve"
)

func (c *CLI) printCommand() *cobra.Command {
	var (
		withPath bool
		strategy string
	)

	cmd := &cobra.Command{
		Use:   "print <input>",
		Short: "Draw a maze in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("strategy") {
				strategy = c.cfg.Strategy
			}
			return c.runPrint(cmd.Context(), cmd.OutOrStdout(), args[0], withPath, strategy)
		},
	}

	cmd.Flags().BoolVar(&withPath, "solve", false, "overlay the solved route")
	cmd.Flags().StringVarP(&strategy, "strategy", "s", "", "search strategy for --solve (default from config)")

	return cmd
}

func (c *CLI) runPrint(ctx context.Context, w io.Writer, input string, withPath bool, strategy string) error {
	buf, err := readMaze(ctx, input)
	if err != nil {
		return err
	}

	var path []int
	if withPath {
		st, err := solve.ParseStrategy(strategy)
		if err != nil {
			return err
		}
		res, err := solve.Solve(buf, st)
		if err != nil {
			return err
		}
		path = res.Path
	}

	_, err = io.WriteString(w, terminalView.render(buf, path))
	return err
}

// render draws buf row by row. Runs of equal cells are styled together.
func (v mazeView) render(buf pixel.Buffer, path []int) string {
	onPath := make(map[int]bool, len(path))
	for _, i := range path {
		onPath[i] = true
	}

	kind := func(i int) int {
		switch {
		case onPath[i]:
			return 2
		case buf.Open(i):
			return 1
		}
		return 0
	}
	styles := [3]struct {
		style lipgloss.Style
		glyph string
	}{
		{v.wall, wallGlyph},
		{v.open, openGlyph},
		{v.path, pathGlyph},
	}

	var sb strings.Builder
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; {
			k := kind(buf.Index(x, y))
			run := 0
			for x < buf.Width && kind(buf.Index(x, y)) == k {
				run++
				x++
			}
			s := styles[k]
			sb.WriteString(s.style.Render(strings.Repeat(s.glyph, run)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
