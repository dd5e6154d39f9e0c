// Package mazegen draws random perfect mazes as pixel buffers.
//
// A maze of cols×rows cells becomes a (2·cols+1)×(2·rows+1) greyscale bitmap:
// cell (cx,cy) is the pixel (2cx+1, 2cy+1) and the wall between two adjacent
// cells is the pixel between them. Every adjacent pair gets a random weight
// and the walls on a minimum spanning tree of that lattice are opened, which
// leaves exactly one route between any two cells.
//
// The entrance is opened above the first cell of the top row and the exit
// below the last cell of the bottom row, so the output feeds straight back
// into grid.New and corridor.Build.
package mazegen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/pixmaze/core"
	"github.com/katalvlaran/pixmaze/mst"
	"github.com/katalvlaran/pixmaze/pixel"
)

// Sentinel errors.
var (
	// ErrSize indicates a non-positive cell count or one above MaxCells.
	ErrSize = errors.New("mazegen: invalid maze size")
	// ErrLoops indicates a negative loop count.
	ErrLoops = errors.New("mazegen: loops must be >= 0")
)

// MaxCells caps cols and rows.
const MaxCells = 4096

// Options configures Generate.
type Options struct {
	// Method picks the spanning tree algorithm.
	Method mst.Method
	// Seed drives every random choice; equal seeds give equal mazes.
	Seed int64
	// Loops is how many extra walls to knock out after the tree is carved.
	// Each one adds a cycle, so the maze has alternative routes.
	Loops int
}

// Option mutates Options.
type Option func(*Options)

// WithMethod selects Kruskal or Prim.
func WithMethod(m mst.Method) Option { return func(o *Options) { o.Method = m } }

// WithSeed fixes the random seed.
func WithSeed(seed int64) Option { return func(o *Options) { o.Seed = seed } }

// WithLoops knocks out n extra walls.
func WithLoops(n int) Option { return func(o *Options) { o.Loops = n } }

// DefaultOptions returns a Kruskal maze with seed 1 and no loops.
func DefaultOptions() Options {
	return Options{Method: mst.MethodKruskal, Seed: 1}
}

// Generate returns a random maze of cols×rows cells.
//
// Loops beyond the number of remaining inner walls are capped.
//
// Complexity: O(C log C) time for C = cols·rows cells, O(C) memory.
func Generate(cols, rows int, opts ...Option) (pixel.Buffer, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if cols < 1 || rows < 1 || cols > MaxCells || rows > MaxCells {
		return pixel.Buffer{}, fmt.Errorf("%w: %dx%d", ErrSize, cols, rows)
	}
	if o.Loops < 0 {
		return pixel.Buffer{}, fmt.Errorf("%w: %d", ErrLoops, o.Loops)
	}

	r := rand.New(rand.NewSource(o.Seed))
	g := lattice(cols, rows, r)
	tree, _, err := mst.Compute(g,
		mst.WithMethod(o.Method),
		mst.WithRoot(core.NodeID(r.Intn(cols*rows))),
	)
	if err != nil {
		return pixel.Buffer{}, err
	}

	c := newCanvas(cols, rows)
	for i := 0; i < cols*rows; i++ {
		c.open(c.cell(i))
	}
	carved := make(map[[2]core.NodeID]bool, len(tree))
	for _, e := range tree {
		c.open(c.wall(int(e.From), int(e.To)))
		carved[pair(e.From, e.To)] = true
	}

	if o.Loops > 0 {
		var rest []core.Edge
		for _, e := range g.AllEdges() {
			if e.From < e.To && !carved[pair(e.From, e.To)] {
				rest = append(rest, e)
			}
		}
		r.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })
		for _, e := range rest[:min(o.Loops, len(rest))] {
			c.open(c.wall(int(e.From), int(e.To)))
		}
	}

	c.open(1)
	c.open(c.cell(cols*rows-1) + c.width)
	return pixel.New(c.pix, c.width, c.height, pixel.Greyscale)
}

// lattice links every cell to its right and lower neighbor in both
// directions with one shared random weight per pair.
func lattice(cols, rows int, r *rand.Rand) *core.Graph[int] {
	n := cols * rows
	g := core.NewGraph[int](core.WithCapacity(n))
	for i := 0; i < n; i++ {
		g.AddNode(i)
	}
	link := func(u, v int) {
		w := r.Uint32()
		g.AddEdge(u, v, w)
		g.AddEdge(v, u, w)
	}
	for i := 0; i < n; i++ {
		if i%cols+1 < cols {
			link(i, i+1)
		}
		if i+cols < n {
			link(i, i+cols)
		}
	}
	return g
}

func pair(a, b core.NodeID) [2]core.NodeID {
	if a > b {
		a, b = b, a
	}
	return [2]core.NodeID{a, b}
}

type canvas struct {
	cols          int
	width, height int
	pix           []byte
}

func newCanvas(cols, rows int) *canvas {
	w, h := 2*cols+1, 2*rows+1
	return &canvas{cols: cols, width: w, height: h, pix: make([]byte, w*h)}
}

// cell returns the pixel index of cell i.
func (c *canvas) cell(i int) int {
	cx, cy := i%c.cols, i/c.cols
	return (2*cy+1)*c.width + 2*cx + 1
}

// wall returns the pixel index between adjacent cells a and b.
func (c *canvas) wall(a, b int) int {
	return (c.cell(a) + c.cell(b)) / 2
}

func (c *canvas) open(i int) { c.pix[i] = pixel.Open }
