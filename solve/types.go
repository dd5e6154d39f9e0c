package solve

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrStrategy indicates an unknown strategy name.
var ErrStrategy = errors.New("solve: unknown strategy")

// ErrRuns indicates a non-positive benchmark run count.
var ErrRuns = errors.New("solve: runs must be positive")

// Strategy selects the maze model and search.
type Strategy int

const (
	Grid Strategy = iota
	Graph
	GraphBFS
)

var strategyNames = map[Strategy]string{
	Grid:     "grid",
	Graph:    "graph",
	GraphBFS: "graph-bfs",
}

func (s Strategy) String() string {
	if n, ok := strategyNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Strategies lists the valid strategy names in declaration order.
func Strategies() []string {
	return []string{Grid.String(), Graph.String(), GraphBFS.String()}
}

// ParseStrategy maps a name (case-insensitive) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want one of %s)", ErrStrategy, name, strings.Join(Strategies(), ", "))
}

// Result describes one solved maze.
type Result struct {
	Strategy Strategy

	// Path holds the linear cell indices from entrance to exit.
	Path []int

	// Nodes and Edges describe the searched structure: every cell for Grid,
	// junctions and corridors for the graph strategies.
	Nodes, Edges int

	// Explored counts cells dequeued by Grid, junctions settled by Graph and
	// junctions dequeued by GraphBFS.
	Explored int

	// Elapsed covers model construction and search.
	Elapsed time.Duration
}

// BenchReport is the outcome of Bench.
type BenchReport struct {
	Runs int

	// Grid and Graph are the average construction times.
	Grid, Graph time.Duration
}

// Diff returns how much slower (positive) or faster (negative) the graph
// builder is than the grid builder, in percent.
func (r BenchReport) Diff() float64 {
	if r.Grid == 0 {
		return 0
	}
	return float64(r.Graph-r.Grid) * 100 / float64(r.Grid)
}
