// Package core defines the Graph, NodeID and Edge types, the GraphOption
// functional options, sentinel errors, and the NewGraph constructor.
package core

import "errors"

// ErrNodeIndex indicates an operation referenced a NodeID that is not
// registered in the Graph.
var ErrNodeIndex = errors.New("core: node index out of range")

// NodeID is the position of a node in its Graph's arena.
type NodeID int

// None is the NodeID returned when no node applies.
const None NodeID = -1

// Edge is a directed, weighted connection From→To.
type Edge struct {
	// From is the source node.
	From NodeID

	// To is the destination node.
	To NodeID

	// Weight is the caller-supplied cost. In the compressed maze it is the
	// number of grid steps along the corridor.
	Weight uint32
}

// GraphOption configures a Graph before creation.
type GraphOption func(o *graphOptions)

type graphOptions struct {
	capacity int
}

// WithCapacity pre-sizes the node arena for n nodes.
func WithCapacity(n int) GraphOption {
	return func(o *graphOptions) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// Graph is an insertion-ordered arena of nodes of type T with per-node
// outgoing edge lists.
//
// nodes[id] holds the attribute of node id; out[id] holds its edges in the
// order they were first added; index maps an attribute to the first NodeID
// registered with it.
type Graph[T comparable] struct {
	nodes []T
	out   [][]Edge
	index map[T]NodeID
	edges int
}

// NewGraph creates an empty Graph.
// Complexity: O(1) (O(n) with WithCapacity(n)).
func NewGraph[T comparable](opts ...GraphOption) *Graph[T] {
	var o graphOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Graph[T]{
		nodes: make([]T, 0, o.capacity),
		out:   make([][]Edge, 0, o.capacity),
		index: make(map[T]NodeID, o.capacity),
	}
}
