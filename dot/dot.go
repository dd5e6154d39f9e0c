// Package dot exports a compressed maze as a Graphviz digraph and renders it
// with go-graphviz.
//
// Nodes are named n<NodeID> and labelled "x,y"; edges carry their corridor
// length. The start node is filled green, the exit red, and edges on an
// optional solution path are drawn bold.
package dot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/pixmaze/core"
	"github.com/katalvlaran/pixmaze/corridor"
)

// ErrFormat indicates an unknown output format.
var ErrFormat = errors.New("dot: unknown output format")

// Format is an output format for Render.
type Format string

const (
	DOT Format = "dot"
	SVG Format = "svg"
	PNG Format = "png"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case DOT, SVG, PNG:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrFormat, s)
}

// Option configures FromMaze.
type Option func(*options)

type options struct {
	path []corridor.Node
}

// WithPath highlights the corridors between consecutive nodes of path.
func WithPath(path []corridor.Node) Option {
	return func(o *options) { o.path = path }
}

// FromMaze writes m as a DOT digraph.
func FromMaze(m *corridor.Maze, opts ...Option) string {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	onPath := make(map[[2]core.NodeID]bool, len(o.path))
	for i := 1; i < len(o.path); i++ {
		from, _ := m.Graph.Lookup(o.path[i-1])
		to, _ := m.Graph.Lookup(o.path[i])
		onPath[[2]core.NodeID{from, to}] = true
	}

	var buf bytes.Buffer
	buf.WriteString("digraph maze {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=10];\n")
	buf.WriteString("\n")

	for i, n := range m.Graph.Nodes() {
		id := core.NodeID(i)
		attrs := []string{fmt.Sprintf("label=%q", n.String())}
		switch id {
		case m.Start:
			attrs = append(attrs, "fillcolor=palegreen")
		case m.End:
			attrs = append(attrs, "fillcolor=salmon")
		}
		fmt.Fprintf(&buf, "  n%d [%s];\n", id, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range m.Graph.AllEdges() {
		attrs := []string{fmt.Sprintf("label=\"%d\"", e.Weight)}
		if onPath[[2]core.NodeID{e.From, e.To}] {
			attrs = append(attrs, "color=blue", "penwidth=2")
		}
		fmt.Fprintf(&buf, "  n%d -> n%d [%s];\n", e.From, e.To, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// Render lays out and renders a DOT document. DOT input is returned as is.
func Render(ctx context.Context, dot string, f Format) ([]byte, error) {
	var gf graphviz.Format
	switch f {
	case DOT:
		return []byte(dot), nil
	case SVG:
		gf = graphviz.SVG
	case PNG:
		gf = graphviz.PNG
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, string(f))
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var out bytes.Buffer
	if err := gv.Render(ctx, g, gf, &out); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return out.Bytes(), nil
}
