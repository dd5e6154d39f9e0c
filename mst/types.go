// Package mst computes minimum spanning trees over a *core.Graph whose edges
// are treated as undirected.
//
// Kruskal reads every stored edge once, so a graph may hold each pair in one
// direction or in both. Prim follows out-edges from the root and therefore
// needs both directions stored.
//
// Ties between equal weights are broken by insertion order, so the same
// graph always yields the same tree.
package mst

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pixmaze/core"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates a nil graph argument.
	ErrNilGraph = errors.New("mst: graph is nil")

	// ErrDisconnected indicates the graph is empty or has more than one
	// component, so no spanning tree covers every node.
	ErrDisconnected = errors.New("mst: graph is disconnected")

	// ErrMethod indicates an unknown Method.
	ErrMethod = errors.New("mst: unknown method")
)

// Method names a spanning tree algorithm.
type Method string

const (
	// MethodKruskal sorts all edges and joins components with union-find.
	MethodKruskal Method = "kruskal"
	// MethodPrim grows the tree from a root using a min-heap.
	MethodPrim Method = "prim"
)

// Options configures Compute.
type Options struct {
	Method Method
	// Root is where Prim starts. Kruskal ignores it.
	Root core.NodeID
}

// Option mutates Options.
type Option func(*Options)

// WithMethod selects the algorithm.
func WithMethod(m Method) Option {
	return func(o *Options) { o.Method = m }
}

// WithRoot sets the Prim root.
func WithRoot(id core.NodeID) Option {
	return func(o *Options) { o.Root = id }
}

// DefaultOptions selects Kruskal rooted at node 0.
func DefaultOptions() Options {
	return Options{Method: MethodKruskal, Root: 0}
}

// Compute runs the selected algorithm and returns the tree edges and their
// total weight.
func Compute[T comparable](g *core.Graph[T], opts ...Option) ([]core.Edge, uint64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return Prim(g, o.Root)
	}
	return nil, 0, fmt.Errorf("%w: %q", ErrMethod, o.Method)
}
