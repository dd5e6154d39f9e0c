// Package bfs provides breadth-first traversal over a core.Graph, returning
// the visit order, hop depths and parent links.
//
// What
//
//   - BFT(g, start) returns the attributes of every node reachable from
//     start, in breadth-first order. A start that is not registered yields
//     (nil, false); this is an expected outcome, not an error.
//   - Tree(g, start) returns a Result with Order, Depth and Parent indexed by
//     core.NodeID, and Result.PathTo(goal) rebuilds the fewest-hop path.
//
// Determinism
//
//	Neighbors are expanded in edge insertion order, so ties are broken by
//	the order in which edges were added and the visit sequence is fully
//	reproducible.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for queue, visited flags, depth and parent slices.
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrStartNotFound    if the start NodeID is not registered.
//   - backtrace.ErrUnreachable from PathTo when goal was not reached.
package bfs
