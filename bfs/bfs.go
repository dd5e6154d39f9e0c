package bfs

import (
	"github.com/katalvlaran/pixmaze/backtrace"
	"github.com/katalvlaran/pixmaze/core"
)

// walker encapsulates mutable BFS state.
type walker[T comparable] struct {
	graph   *core.Graph[T]
	queue   []core.NodeID
	visited []bool
	res     *Result
}

// BFT returns the attributes of all nodes reachable from start in
// breadth-first order. It returns (nil, false) when start is not registered.
func BFT[T comparable](g *core.Graph[T], start T) ([]T, bool) {
	if g == nil {
		return nil, false
	}
	id, ok := g.Lookup(start)
	if !ok {
		return nil, false
	}
	res := newWalker(g).run(id)

	out := make([]T, len(res.Order))
	for i, n := range res.Order {
		out[i] = g.Node(n)
	}
	return out, true
}

// Tree runs breadth-first search from start and records the BFS tree.
// Returns ErrGraphNil or ErrStartNotFound for invalid input.
func Tree[T comparable](g *core.Graph[T], start core.NodeID) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Valid(start) {
		return nil, ErrStartNotFound
	}
	return newWalker(g).run(start), nil
}

func newWalker[T comparable](g *core.Graph[T]) *walker[T] {
	n := g.NodeCount()
	res := &Result{
		Order:  make([]core.NodeID, 0, n),
		Depth:  make([]int, n),
		Parent: backtrace.NewParents(n),
	}
	for i := range res.Depth {
		res.Depth[i] = -1
	}
	return &walker[T]{
		graph:   g,
		queue:   make([]core.NodeID, 0, n),
		visited: make([]bool, n),
		res:     res,
	}
}

// run seeds the queue with start and processes it until empty.
func (w *walker[T]) run(start core.NodeID) *Result {
	w.res.Start = start
	w.enqueue(start, 0, backtrace.NoParent)

	for len(w.queue) > 0 {
		cur := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, cur)

		for _, e := range w.graph.Edges(cur) {
			if !w.visited[e.To] {
				w.enqueue(e.To, w.res.Depth[cur]+1, int(cur))
			}
		}
	}
	return w.res
}

// enqueue marks id visited at depth d and records its parent.
func (w *walker[T]) enqueue(id core.NodeID, d, parent int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.queue = append(w.queue, id)
}
