// Package dijkstra implements Dijkstra's shortest-path algorithm over the
// directed, non-negatively weighted core.Graph.
//
// It is used to solve the compressed maze: corridor weights are grid steps,
// so the minimum-weight junction path is the shortest route the compressed
// graph can express.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (lazy decrease-key keeps stale heap entries).
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/pixmaze/backtrace"
	"github.com/katalvlaran/pixmaze/core"
)

// Result holds the per-node distances and predecessor links of one run.
type Result struct {
	Source core.NodeID
	Dist   []uint64 // Unreachable for nodes never reached
	Parent []int    // backtrace.NoParent for the source and unreached nodes
	// Settled is the number of nodes popped with a final distance.
	Settled int
}

// PathTo returns the minimum-weight path from the source to goal and its
// total weight. The error wraps backtrace.ErrUnreachable when goal was not
// reached.
func (r *Result) PathTo(goal core.NodeID) ([]core.NodeID, uint64, error) {
	idx, err := backtrace.Walk(r.Parent, int(r.Source), int(goal))
	if err != nil {
		return nil, 0, fmt.Errorf("dijkstra: no path to node %d: %w", goal, err)
	}
	path := make([]core.NodeID, len(idx))
	for i, v := range idx {
		path[i] = core.NodeID(v)
	}
	return path, r.Dist[goal], nil
}

// Dijkstra computes shortest distances from source to every node of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be registered (ErrNodeNotFound).
func Dijkstra[T comparable](g *core.Graph[T], source core.NodeID) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Valid(source) {
		return nil, fmt.Errorf("%w: source=%d", ErrNodeNotFound, source)
	}

	r := newRunner(g, source)
	r.process()
	return &Result{Source: source, Dist: r.dist, Parent: r.prev, Settled: r.settled}, nil
}

// ShortestPath is a convenience wrapper returning only the source→target
// path and its weight.
func ShortestPath[T comparable](g *core.Graph[T], source, target core.NodeID) ([]core.NodeID, uint64, error) {
	res, err := Dijkstra(g, source)
	if err != nil {
		return nil, 0, err
	}
	if !g.Valid(target) {
		return nil, 0, fmt.Errorf("%w: target=%d", ErrNodeNotFound, target)
	}
	return res.PathTo(target)
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[T comparable] struct {
	g       *core.Graph[T]
	dist    []uint64
	prev    []int
	visited []bool
	pq      nodePQ
	seq     int
	settled int
}

func newRunner[T comparable](g *core.Graph[T], source core.NodeID) *runner[T] {
	n := g.NodeCount()
	r := &runner[T]{
		g:       g,
		dist:    make([]uint64, n),
		prev:    backtrace.NewParents(n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	for i := range r.dist {
		r.dist[i] = Unreachable
	}
	r.dist[source] = 0
	heap.Push(&r.pq, nodeItem{id: int(source), dist: 0})
	return r
}

// process pops the closest unfinished node and relaxes its edges until the
// heap is empty.
func (r *runner[T]) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.id
		if r.visited[u] {
			continue // stale entry
		}
		r.visited[u] = true
		r.settled++
		r.relax(u)
	}
}

// relax improves the distance of every out-neighbor of u reachable through u.
func (r *runner[T]) relax(u int) {
	for _, e := range r.g.Edges(core.NodeID(u)) {
		v := int(e.To)
		nd := r.dist[u] + uint64(e.Weight)
		if nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		r.seq++
		heap.Push(&r.pq, nodeItem{id: v, dist: nd, seq: r.seq})
	}
}
