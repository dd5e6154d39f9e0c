package corridor

import (
	"github.com/katalvlaran/pixmaze/core"
	"github.com/katalvlaran/pixmaze/pixel"
)

// Build compresses buf into a Maze.
//
// Complexity: O(W×H) time for the walks plus O(V + E) for the graph, where
// V is the number of junctions and E the number of corridors.
func Build(buf pixel.Buffer) (*Maze, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}

	entrance := -1
	for x := 0; x < buf.Width; x++ {
		if buf.Open(x) {
			entrance = x
			break
		}
	}
	if entrance < 0 {
		return nil, ErrNoEntrance
	}

	b := &builder{
		buf:     buf,
		visited: make([]bool, buf.Len()),
		g:       core.NewGraph[Node](core.WithCapacity(buf.Width + buf.Height)),
	}
	start := b.g.AddNode(b.node(entrance, 0))
	b.visited[entrance] = true
	b.stack = append(b.stack, start)

	for len(b.stack) > 0 {
		cur := b.stack[len(b.stack)-1]
		b.stack = b.stack[:len(b.stack)-1]
		b.expand(cur)
	}

	m := &Maze{
		Width:  buf.Width,
		Height: buf.Height,
		Graph:  b.g,
		Start:  start,
		End:    core.None,
	}
	last := uint32(buf.Height - 1)
	for id, n := range b.g.Nodes() {
		if n.Y == last {
			m.End = core.NodeID(id)
			break
		}
	}
	if m.End == core.None {
		return nil, ErrNoExit
	}
	return m, nil
}

// builder holds the mutable state of one Build call.
type builder struct {
	buf     pixel.Buffer
	visited []bool
	g       *core.Graph[Node]
	stack   []core.NodeID
}

// neighbors flags which adjacent cells are open and unvisited.
type neighbors [4]bool

func (nb neighbors) has(d Direction) bool { return nb[d] }

// perpendicular reports an open, unvisited cell to either side of d.
func (nb neighbors) perpendicular(d Direction) bool {
	if d.Vertical() {
		return nb[Left] || nb[Right]
	}
	return nb[Up] || nb[Down]
}

func (b *builder) node(x, y int) Node {
	return Node{X: uint32(x), Y: uint32(y), ID: b.buf.Index(x, y)}
}

func (b *builder) free(x, y int) bool {
	return b.buf.OpenAt(x, y) && !b.visited[b.buf.Index(x, y)]
}

func (b *builder) neighbors(x, y int) neighbors {
	var nb neighbors
	for _, d := range walkOrder {
		dx, dy := d.Delta()
		nb[d] = b.free(x+dx, y+dy)
	}
	return nb
}

// expand walks every corridor leaving cur. Neighbors are computed once,
// before any walk.
func (b *builder) expand(cur core.NodeID) {
	n := b.g.Node(cur)
	nb := b.neighbors(int(n.X), int(n.Y))
	for _, d := range walkOrder {
		if nb.has(d) {
			b.walk(cur, n, d)
		}
	}
}

func (b *builder) walk(from core.NodeID, src Node, d Direction) {
	dx, dy := d.Delta()
	x, y := int(src.X), int(src.Y)
	for steps := 1; ; steps++ {
		x, y = x+dx, y+dy
		b.visited[b.buf.Index(x, y)] = true

		nb := b.neighbors(x, y)
		if !nb.perpendicular(d) && nb.has(d) {
			continue
		}

		if d.Vertical() {
			ax, ay := x+dx, y+dy
			if b.buf.InBounds(ax, ay) && b.visited[b.buf.Index(ax, ay)] {
				if to, ok := b.g.Lookup(b.node(ax, ay)); ok {
					b.link(from, to, steps+1)
				}
				return
			}
		}

		to := b.g.AddNode(b.node(x, y))
		b.link(from, to, steps)
		b.stack = append(b.stack, to)
		return
	}
}

// link adds from→to, resolving both ends by their node attribute. Nodes are
// unique per cell, so the attribute names exactly one node.
func (b *builder) link(from, to core.NodeID, steps int) {
	b.g.AddEdge(b.g.Node(from), b.g.Node(to), uint32(steps))
}
