package solve

import (
	"fmt"
	"time"

	"github.com/katalvlaran/pixmaze/corridor"
	"github.com/katalvlaran/pixmaze/grid"
	"github.com/katalvlaran/pixmaze/mazegen"
	"github.com/katalvlaran/pixmaze/overlay"
	"github.com/katalvlaran/pixmaze/pixel"
	"github.com/katalvlaran/pixmaze/regions"
)

// Solve builds the model for s and finds an entrance→exit path.
func Solve(buf pixel.Buffer, s Strategy) (*Result, error) {
	start := time.Now()
	var (
		res *Result
		err error
	)
	switch s {
	case Grid:
		res, err = solveGrid(buf)
	case Graph, GraphBFS:
		res, err = solveGraph(buf, s)
	default:
		return nil, fmt.Errorf("%w: %v", ErrStrategy, s)
	}
	if err != nil {
		return nil, err
	}
	res.Strategy = s
	res.Elapsed = time.Since(start)
	return res, nil
}

func solveGrid(buf pixel.Buffer) (*Result, error) {
	m, err := grid.New(buf)
	if err != nil {
		return nil, err
	}
	path, st, err := m.SolveStats()
	if err != nil {
		return nil, err
	}
	return &Result{
		Path:     grid.Indices(path),
		Nodes:    m.Len(),
		Explored: st.Explored,
	}, nil
}

func solveGraph(buf pixel.Buffer, s Strategy) (*Result, error) {
	m, err := corridor.Build(buf)
	if err != nil {
		return nil, err
	}
	var (
		nodes []corridor.Node
		st    corridor.Stats
	)
	if s == GraphBFS {
		nodes, st, err = m.SolveBFSStats()
	} else {
		nodes, st, err = m.SolveStats()
	}
	if err != nil {
		return nil, err
	}
	return &Result{
		Path:     m.Expand(nodes),
		Nodes:    m.Graph.NodeCount(),
		Edges:    m.Graph.EdgeCount(),
		Explored: st.Explored,
	}, nil
}

// Render paints res.Path onto an RGB copy of buf in the strategy's color.
func Render(buf pixel.Buffer, res *Result) (pixel.Buffer, error) {
	c := overlay.GraphPath
	if res.Strategy == Grid {
		c = overlay.GridPath
	}
	return overlay.PaintPath(buf, res.Path, c)
}

// Corridors compresses buf and paints junctions and corridors by direction.
func Corridors(buf pixel.Buffer) (pixel.Buffer, *corridor.Maze, error) {
	m, err := corridor.Build(buf)
	if err != nil {
		return pixel.Buffer{}, nil, err
	}
	out, err := overlay.PaintCorridors(buf, m)
	if err != nil {
		return pixel.Buffer{}, nil, err
	}
	return out, m, nil
}

// Bench builds both models runs times each and reports average build times.
func Bench(buf pixel.Buffer, runs int) (BenchReport, error) {
	if runs <= 0 {
		return BenchReport{}, fmt.Errorf("%w: %d", ErrRuns, runs)
	}
	r := BenchReport{Runs: runs}

	var total time.Duration
	for i := 0; i < runs; i++ {
		t := time.Now()
		if _, err := grid.New(buf); err != nil {
			return BenchReport{}, err
		}
		total += time.Since(t)
	}
	r.Grid = total / time.Duration(runs)

	total = 0
	for i := 0; i < runs; i++ {
		t := time.Now()
		if _, err := corridor.Build(buf); err != nil {
			return BenchReport{}, err
		}
		total += time.Since(t)
	}
	r.Graph = total / time.Duration(runs)
	return r, nil
}

// Repair finds the entrance→exit route through the fewest walls and paints
// it, with the walls to open marked in overlay.Breach.
func Repair(buf pixel.Buffer) (regions.Repair, pixel.Buffer, error) {
	r, err := regions.FindRepair(buf)
	if err != nil {
		return regions.Repair{}, pixel.Buffer{}, err
	}
	img, err := overlay.PaintRepair(buf, r.Path, r.Walls)
	if err != nil {
		return regions.Repair{}, pixel.Buffer{}, err
	}
	return r, img, nil
}

// Generate draws a random cols×rows maze. The result solves with every
// Strategy.
func Generate(cols, rows int, opts ...mazegen.Option) (pixel.Buffer, error) {
	return mazegen.Generate(cols, rows, opts...)
}
