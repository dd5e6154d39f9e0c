// Package core provides the arena-backed directed, weighted Graph used both
// as a general-purpose utility and as the storage of the compressed maze.
//
// The Graph G = (V,E) is generic over its node attribute type T:
//
//   - Nodes live in a single slice in registration order; every reference
//     to a node is a NodeID (its position in that slice).
//   - Node identity is attribute equality: Lookup(attr) finds the first
//     node registered with that attribute.
//   - Each node owns an insertion-ordered list of outgoing edges.
//   - At most one edge exists per ordered (from,to) pair; re-adding an edge
//     overwrites its weight.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(attr T) NodeID                         // O(1) amortized
//	HasNode(attr T) bool                           // O(1)
//	Lookup(attr T) (NodeID, bool)                  // O(1)
//	Node(id NodeID) T                              // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to T, w uint32) bool             // O(out-degree); false if an endpoint is unknown
//	AddEdgeByIndex(from, to NodeID, w uint32) error // O(out-degree); ErrNodeIndex on bad index
//
//	// Query
//	Edges(id NodeID) []Edge                        // insertion order
//	AllEdges() []Edge                              // by source NodeID, then insertion order
//	Weight(from, to NodeID) (uint32, bool)
//	Nodes() []T, NodeCount(), EdgeCount()
//
// Traversals live in the bfs and dfs packages.
//
// A Graph is not safe for concurrent mutation. It is built once and then
// only read, so no locking is done.
//
// Errors:
//
//	ErrNodeIndex – NodeID outside [0, NodeCount()).
package core
