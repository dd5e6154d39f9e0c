// Package dijkstra defines sentinel errors and the priority queue used by
// the shortest-path search over a core.Graph.
package dijkstra

import "errors"

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeNotFound indicates that source or target is not registered.
	ErrNodeNotFound = errors.New("dijkstra: node not found in graph")
)

// Unreachable is the distance reported for nodes that cannot be reached.
const Unreachable = ^uint64(0)

// nodeItem represents a node and its tentative distance from the source.
type nodeItem struct {
	id   int
	dist uint64
	seq  int // insertion sequence; breaks distance ties deterministically
}

// nodePQ is a min-heap of nodeItem ordered by dist, then by seq.
// It uses the lazy decrease-key approach: stale entries stay in the heap
// and are skipped when popped.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
