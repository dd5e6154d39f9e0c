package mst

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/pixmaze/core"
)

// Prim returns a minimum spanning tree of g grown from root.
// Every undirected pair must be stored in both directions.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim[T comparable](g *core.Graph[T], root core.NodeID) ([]core.Edge, uint64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	n := g.NodeCount()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if !g.Valid(root) {
		return nil, 0, fmt.Errorf("%w: root %d", core.ErrNodeIndex, root)
	}

	inTree := make([]bool, n)
	tree := make([]core.Edge, 0, n-1)
	var total uint64
	pq := &edgeQueue{}

	add := func(id core.NodeID) {
		inTree[id] = true
		for _, e := range g.Edges(id) {
			if !inTree[e.To] {
				heap.Push(pq, queued{Edge: e, seq: pq.next})
				pq.next++
			}
		}
	}
	add(root)

	for pq.Len() > 0 && len(tree) < n-1 {
		e := heap.Pop(pq).(queued).Edge
		if inTree[e.To] {
			continue
		}
		tree = append(tree, e)
		total += uint64(e.Weight)
		add(e.To)
	}
	if len(tree) < n-1 {
		return nil, 0, ErrDisconnected
	}
	return tree, total, nil
}

// queued carries a push sequence number so equal weights pop in FIFO order.
type queued struct {
	core.Edge
	seq int
}

type edgeQueue struct {
	items []queued
	next  int
}

func (q *edgeQueue) Len() int { return len(q.items) }

func (q *edgeQueue) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	return a.seq < b.seq
}

func (q *edgeQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *edgeQueue) Push(x any) { q.items = append(q.items, x.(queued)) }

func (q *edgeQueue) Pop() any {
	old := q.items
	it := old[len(old)-1]
	q.items = old[:len(old)-1]
	return it
}
