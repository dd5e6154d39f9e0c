package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pixmaze/backtrace"
	"github.com/katalvlaran/pixmaze/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNotFound is returned when the start NodeID is not registered.
	ErrStartNotFound = errors.New("bfs: start node not found")
)

// Result holds the outcome of a breadth-first traversal:
//   - Order:  NodeIDs in visit sequence.
//   - Depth:  hop distance from the start; -1 for unreached nodes.
//   - Parent: predecessor in the BFS tree, backtrace.NoParent for the start
//     and for unreached nodes.
type Result struct {
	Start  core.NodeID
	Order  []core.NodeID
	Depth  []int
	Parent []int
}

// Reached reports whether id was visited.
func (r *Result) Reached(id core.NodeID) bool {
	return int(id) >= 0 && int(id) < len(r.Depth) && r.Depth[id] >= 0
}

// PathTo reconstructs the fewest-hop path from the start node to goal.
// Returns an error wrapping backtrace.ErrUnreachable if goal was not reached.
func (r *Result) PathTo(goal core.NodeID) ([]core.NodeID, error) {
	idx, err := backtrace.Walk(r.Parent, int(r.Start), int(goal))
	if err != nil {
		return nil, fmt.Errorf("bfs: no path to node %d: %w", goal, err)
	}
	path := make([]core.NodeID, len(idx))
	for i, v := range idx {
		path[i] = core.NodeID(v)
	}
	return path, nil
}
