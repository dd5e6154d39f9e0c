// File: methods.go
// Role: node and edge lifecycle plus read-only queries.
//
// Determinism:
//   - Nodes() returns attributes in registration order.
//   - Edges(id) returns edges in first-insertion order; overwriting a weight
//     keeps the edge's position.
package core

import "fmt"

// AddNode registers a new node carrying attr and returns its NodeID.
//
// AddNode always succeeds. Registering an attribute that is already present
// appends another node; Lookup keeps resolving to the first one.
//
// Complexity: O(1) amortized.
func (g *Graph[T]) AddNode(attr T) NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, attr)
	g.out = append(g.out, nil)
	if _, ok := g.index[attr]; !ok {
		g.index[attr] = id
	}
	return id
}

// HasNode reports whether a node with attr is registered.
func (g *Graph[T]) HasNode(attr T) bool {
	_, ok := g.index[attr]
	return ok
}

// Lookup returns the NodeID first registered with attr.
func (g *Graph[T]) Lookup(attr T) (NodeID, bool) {
	id, ok := g.index[attr]
	return id, ok
}

// Valid reports whether id refers to a registered node.
func (g *Graph[T]) Valid(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

// Node returns the attribute of node id. It panics on an invalid id, like
// indexing a slice; use Valid to check first.
func (g *Graph[T]) Node(id NodeID) T {
	return g.nodes[id]
}

// Nodes returns a copy of all node attributes in registration order.
func (g *Graph[T]) Nodes() []T {
	out := make([]T, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// NodeCount returns the number of registered nodes.
func (g *Graph[T]) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of distinct (from,to) edges.
func (g *Graph[T]) EdgeCount() int { return g.edges }

// AddEdge adds or re-weights the edge from→to, resolving both endpoints by
// attribute. It is a no-op returning false unless both endpoints are
// registered.
//
// Complexity: O(out-degree(from)).
func (g *Graph[T]) AddEdge(from, to T, weight uint32) bool {
	u, ok := g.index[from]
	if !ok {
		return false
	}
	v, ok := g.index[to]
	if !ok {
		return false
	}
	g.link(u, v, weight)
	return true
}

// AddEdgeByIndex adds or re-weights the edge from→to by NodeID.
// Returns ErrNodeIndex if either endpoint is not registered.
//
// Complexity: O(out-degree(from)).
func (g *Graph[T]) AddEdgeByIndex(from, to NodeID, weight uint32) error {
	if !g.Valid(from) {
		return fmt.Errorf("%w: from=%d (nodes=%d)", ErrNodeIndex, from, len(g.nodes))
	}
	if !g.Valid(to) {
		return fmt.Errorf("%w: to=%d (nodes=%d)", ErrNodeIndex, to, len(g.nodes))
	}
	g.link(from, to, weight)
	return nil
}

// link overwrites an existing from→to weight or appends a new edge.
func (g *Graph[T]) link(from, to NodeID, weight uint32) {
	edges := g.out[from]
	for i := range edges {
		if edges[i].To == to {
			edges[i].Weight = weight
			return
		}
	}
	g.out[from] = append(edges, Edge{From: from, To: to, Weight: weight})
	g.edges++
}

// Edges returns the outgoing edges of id in insertion order.
// The returned slice must not be modified. Invalid ids yield nil.
func (g *Graph[T]) Edges(id NodeID) []Edge {
	if !g.Valid(id) {
		return nil
	}
	return g.out[id]
}

// AllEdges returns every edge, grouped by source NodeID ascending and in
// insertion order within a source.
func (g *Graph[T]) AllEdges() []Edge {
	all := make([]Edge, 0, g.edges)
	for _, edges := range g.out {
		all = append(all, edges...)
	}
	return all
}

// Weight returns the weight of from→to if that edge exists.
func (g *Graph[T]) Weight(from, to NodeID) (uint32, bool) {
	for _, e := range g.Edges(from) {
		if e.To == to {
			return e.Weight, true
		}
	}
	return 0, false
}
