// Package overlay paints solver output onto an RGB copy of a maze bitmap.
//
// Greyscale input is promoted to RGB first (open → white, anything else →
// black), so the palette can always be applied. The input buffer is never
// modified.
package overlay

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/katalvlaran/pixmaze/corridor"
	"github.com/katalvlaran/pixmaze/pixel"
)

// ErrIndex indicates a cell index outside the buffer.
var ErrIndex = errors.New("overlay: cell index out of range")

// ErrShape indicates a corridor maze built from a buffer of another size.
var ErrShape = errors.New("overlay: maze and buffer dimensions differ")

// Palette.
var (
	GridPath   = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	GraphPath  = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Junction   = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	UpColor    = color.RGBA{R: 128, G: 0, B: 0, A: 255}
	DownColor  = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LeftColor  = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	RightColor = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Breach     = color.RGBA{R: 255, G: 128, B: 0, A: 255}
)

// DirectionColor returns the corridor color for d.
func DirectionColor(d corridor.Direction) color.RGBA {
	switch d {
	case corridor.Up:
		return UpColor
	case corridor.Down:
		return DownColor
	case corridor.Left:
		return LeftColor
	}
	return RightColor
}

// PaintPath returns an RGB copy of buf with exactly the given linear cell
// indices set to c.
func PaintPath(buf pixel.Buffer, cells []int, c color.RGBA) (pixel.Buffer, error) {
	if err := buf.Validate(); err != nil {
		return pixel.Buffer{}, err
	}
	out := buf.ToRGB()
	n := out.Len()
	for _, i := range cells {
		if i < 0 || i >= n {
			return pixel.Buffer{}, fmt.Errorf("%w: %d (have %d cells)", ErrIndex, i, n)
		}
		out.Set(i, c)
	}
	return out, nil
}

// PaintRepair paints path like PaintPath with GridPath, then marks walls in
// the Breach color.
func PaintRepair(buf pixel.Buffer, path, walls []int) (pixel.Buffer, error) {
	out, err := PaintPath(buf, path, GridPath)
	if err != nil {
		return pixel.Buffer{}, err
	}
	n := out.Len()
	for _, i := range walls {
		if i < 0 || i >= n {
			return pixel.Buffer{}, fmt.Errorf("%w: %d (have %d cells)", ErrIndex, i, n)
		}
		out.Set(i, Breach)
	}
	return out, nil
}

// PaintCorridors returns an RGB copy of buf with every node of m in the
// Junction color and every corridor interior in its direction's color.
func PaintCorridors(buf pixel.Buffer, m *corridor.Maze) (pixel.Buffer, error) {
	if err := buf.Validate(); err != nil {
		return pixel.Buffer{}, err
	}
	if m.Width != buf.Width || m.Height != buf.Height {
		return pixel.Buffer{}, fmt.Errorf("%w: maze %dx%d, buffer %dx%d",
			ErrShape, m.Width, m.Height, buf.Width, buf.Height)
	}
	out := buf.ToRGB()
	for _, n := range m.Graph.Nodes() {
		out.Set(n.ID, Junction)
	}
	for _, s := range m.Segments() {
		c := DirectionColor(s.Dir)
		for _, i := range s.Interior() {
			out.Set(i, c)
		}
	}
	return out, nil
}
