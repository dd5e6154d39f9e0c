package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorBlue  = lipgloss.Color("75")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleLabel   = lipgloss.NewStyle().Foreground(colorGray)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
)

const iconSuccess = "✓"

// mazeView holds the styles used to draw a maze in the terminal. Every cell
// is two columns wide so the maze keeps its aspect ratio.
type mazeView struct {
	wall, open, path lipgloss.Style
}

var terminalView = mazeView{
	wall: lipgloss.NewStyle().Foreground(colorDim),
	open: lipgloss.NewStyle(),
	path: lipgloss.NewStyle().Foreground(colorBlue),
}

const (
	wallGlyph = "██"
	openGlyph = "  "
	pathGlyph = "••"
)

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printField(w io.Writer, label string, value any) {
	fmt.Fprintf(w, "  %s %s\n", styleLabel.Render(fmt.Sprintf("%-10s", label)), styleValue.Render(fmt.Sprint(value)))
}
