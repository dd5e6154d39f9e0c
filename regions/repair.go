package regions

import (
	"container/list"
	"math"

	"github.com/katalvlaran/pixmaze/backtrace"
	"github.com/katalvlaran/pixmaze/grid"
	"github.com/katalvlaran/pixmaze/pixel"
)

// Repair is a route from entrance to exit that may cross walls.
type Repair struct {
	// Path lists cell indices from entrance to exit.
	Path []int
	// Walls lists the wall cells on Path, in path order.
	Walls []int
}

// Cost returns the number of walls to open.
func (r Repair) Cost() int { return len(r.Walls) }

// Apply returns a copy of buf with every wall in r opened.
func (r Repair) Apply(buf pixel.Buffer) pixel.Buffer {
	out := pixel.Buffer{Width: buf.Width, Height: buf.Height, Mode: buf.Mode}
	out.Pix = make([]byte, len(buf.Pix))
	copy(out.Pix, buf.Pix)
	ch := buf.Mode.Channels()
	for _, i := range r.Walls {
		for c := 0; c < ch; c++ {
			out.Pix[i*ch+c] = pixel.Open
		}
	}
	return out
}

// FindRepair returns an entrance→exit route that crosses the fewest walls.
// When the exit is already reachable the route has no walls.
//
// Errors from grid.New (no entrance, no exit, invalid buffer) pass through.
//
// Complexity: O(W×H) time and memory.
func FindRepair(buf pixel.Buffer) (Repair, error) {
	m, err := grid.New(buf)
	if err != nil {
		return Repair{}, err
	}
	start, goal := m.Entrance().Index, m.Exit().Index

	n := buf.Len()
	dist := make([]int, n)
	for i := range dist {
		dist[i] = math.MaxInt
	}
	parent := backtrace.NewParents(n)

	dq := list.New()
	dist[start] = 0
	dq.PushFront(start)
	for dq.Len() > 0 {
		u := dq.Remove(dq.Front()).(int)
		if u == goal {
			break
		}
		x, y := buf.Coordinate(u)
		for _, d := range offsets {
			vx, vy := x+d[0], y+d[1]
			if !buf.InBounds(vx, vy) {
				continue
			}
			v := buf.Index(vx, vy)
			step := 0
			if !buf.Open(v) {
				step = 1
			}
			if dist[u]+step >= dist[v] {
				continue
			}
			dist[v] = dist[u] + step
			parent[v] = u
			if step == 0 {
				dq.PushFront(v)
			} else {
				dq.PushBack(v)
			}
		}
	}

	path, err := backtrace.Walk(parent, start, goal)
	if err != nil {
		return Repair{}, err
	}
	r := Repair{Path: path}
	for _, i := range path {
		if !buf.Open(i) {
			r.Walls = append(r.Walls, i)
		}
	}
	return r, nil
}
