package mst

import (
	"slices"

	"github.com/katalvlaran/pixmaze/core"
)

// Kruskal returns a minimum spanning tree of g.
//
// Steps:
//  1. Collect every edge except self-loops.
//  2. Stable-sort by ascending weight.
//  3. Take each edge whose endpoints lie in different sets and union them,
//     stopping at |V|-1 edges.
//
// A single-node graph yields an empty tree. Fewer than |V|-1 edges after the
// scan means ErrDisconnected.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Kruskal[T comparable](g *core.Graph[T]) ([]core.Edge, uint64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	n := g.NodeCount()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	edges := slices.DeleteFunc(g.AllEdges(), func(e core.Edge) bool { return e.From == e.To })
	slices.SortStableFunc(edges, func(a, b core.Edge) int {
		switch {
		case a.Weight < b.Weight:
			return -1
		case a.Weight > b.Weight:
			return 1
		}
		return 0
	})

	ds := newDisjointSet(n)
	tree := make([]core.Edge, 0, n-1)
	var total uint64
	for _, e := range edges {
		if !ds.union(int(e.From), int(e.To)) {
			continue
		}
		tree = append(tree, e)
		total += uint64(e.Weight)
		if len(tree) == n-1 {
			break
		}
	}
	if len(tree) < n-1 {
		return nil, 0, ErrDisconnected
	}
	return tree, total, nil
}

// disjointSet is union-find with path halving and union by rank.
type disjointSet struct {
	parent []int
	rank   []uint8
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]uint8, n)}
	for i := range ds.parent {
		ds.parent[i] = i
	}
	return ds
}

func (ds *disjointSet) find(x int) int {
	for ds.parent[x] != x {
		ds.parent[x] = ds.parent[ds.parent[x]]
		x = ds.parent[x]
	}
	return x
}

// union merges the sets of a and b; false if they were already joined.
func (ds *disjointSet) union(a, b int) bool {
	ra, rb := ds.find(a), ds.find(b)
	if ra == rb {
		return false
	}
	if ds.rank[ra] < ds.rank[rb] {
		ra, rb = rb, ra
	}
	ds.parent[rb] = ra
	if ds.rank[ra] == ds.rank[rb] {
		ds.rank[ra]++
	}
	return true
}
