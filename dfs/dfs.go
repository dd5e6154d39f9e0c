// Package dfs implements iterative, stack-based depth-first traversal over a
// core.Graph.
//
// The traversal pushes the start node, then repeatedly pops a node; if it
// has not been visited yet it is emitted, marked visited, and the targets of
// *all* its outgoing edges are pushed in insertion order, visited or not.
// Visited filtering therefore happens at pop time, so the last-inserted edge
// is explored first. Every reachable node is emitted exactly once, but the
// order differs from recursive pre-order DFS.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) for the stack (one entry per pushed edge target).
package dfs

import "github.com/katalvlaran/pixmaze/core"

// DFT returns the attributes of all nodes reachable from start in
// depth-first order. It returns (nil, false) when start is not registered.
func DFT[T comparable](g *core.Graph[T], start T) ([]T, bool) {
	if g == nil {
		return nil, false
	}
	id, ok := g.Lookup(start)
	if !ok {
		return nil, false
	}

	order := Order(g, id)
	out := make([]T, len(order))
	for i, n := range order {
		out[i] = g.Node(n)
	}
	return out, true
}

// Order is DFT over NodeIDs. start must be a valid NodeID.
func Order[T comparable](g *core.Graph[T], start core.NodeID) []core.NodeID {
	visited := make([]bool, g.NodeCount())
	order := make([]core.NodeID, 0, g.NodeCount())
	stack := []core.NodeID{start}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[cur] {
			continue
		}
		visited[cur] = true
		order = append(order, cur)
		for _, e := range g.Edges(cur) {
			stack = append(stack, e.To)
		}
	}
	return order
}
