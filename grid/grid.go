package grid

import (
	"fmt"

	"github.com/katalvlaran/pixmaze/backtrace"
	"github.com/katalvlaran/pixmaze/pixel"
)

// New builds a Maze from buf.
// The entrance is the first open cell of row 0 and the exit the first open
// cell of row Height-1, both found during the single row-major scan.
//
// Complexity: O(W×H) time and memory.
func New(buf pixel.Buffer) (*Maze, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	w, h := buf.Width, buf.Height
	m := &Maze{
		Width:    w,
		Height:   h,
		cells:    make([]Cell, w*h),
		entrance: -1,
		exit:     -1,
	}

	for i := range m.cells {
		x, y := i%w, i/w
		open := buf.Open(i)
		m.cells[i] = Cell{Wall: !open, X: uint32(x), Y: uint32(y), Index: i}
		if !open {
			continue
		}
		if y == 0 && m.entrance < 0 {
			m.entrance = i
		}
		if y == h-1 && m.exit < 0 {
			m.exit = i
		}
	}

	if m.entrance < 0 {
		return nil, ErrNoEntrance
	}
	if m.exit < 0 {
		return nil, ErrNoExit
	}
	return m, nil
}

// Entrance returns the entrance cell.
func (m *Maze) Entrance() Cell { return m.cells[m.entrance] }

// Exit returns the exit cell.
func (m *Maze) Exit() Cell { return m.cells[m.exit] }

// Len returns the number of cells.
func (m *Maze) Len() int { return len(m.cells) }

// Cell returns the cell with linear index i.
func (m *Maze) Cell(i int) Cell { return m.cells[i] }

// At returns the cell at (x,y); ok is false outside the grid.
func (m *Maze) At(x, y int) (c Cell, ok bool) {
	if !m.InBounds(x, y) {
		return Cell{}, false
	}
	return m.cells[m.index(x, y)], true
}

// InBounds reports whether (x,y) lies within the grid.
func (m *Maze) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

func (m *Maze) index(x, y int) int { return y*m.Width + x }

// Neighbors returns the indices of the open, unvisited cells adjacent to
// cell i in up, down, left, right order. visited may be nil.
func (m *Maze) Neighbors(i int, visited []bool) []int {
	c := m.cells[i]
	out := make([]int, 0, len(offsets))
	for _, d := range offsets {
		nx, ny := int(c.X)+d[0], int(c.Y)+d[1]
		if !m.InBounds(nx, ny) {
			continue
		}
		j := m.index(nx, ny)
		if m.cells[j].Wall || (visited != nil && visited[j]) {
			continue
		}
		out = append(out, j)
	}
	return out
}

// Solve returns a shortest entrance→exit path, entrance first.
// Returns an error wrapping ErrNoPath when the exit is unreachable.
func (m *Maze) Solve() ([]Cell, error) {
	path, _, err := m.SolveStats()
	return path, err
}

// SolveStats is Solve plus search statistics.
//
// Behavior:
//  1. Mark the entrance visited and enqueue it.
//  2. Dequeue a cell; for each open, unvisited neighbor mark it visited,
//     record the dequeued cell as its parent and enqueue it. When the
//     neighbor is the exit, stop scanning that cell's neighbor list without
//     enqueueing the exit.
//  3. Walk parent links back from the exit.
func (m *Maze) SolveStats() ([]Cell, Stats, error) {
	var st Stats
	n := len(m.cells)
	visited := make([]bool, n)
	parent := backtrace.NewParents(n)

	queue := make([]int, 0, n/4+1)
	visited[m.entrance] = true
	queue = append(queue, m.entrance)

	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		st.Explored++
		for _, nb := range m.Neighbors(cur, visited) {
			visited[nb] = true
			parent[nb] = cur
			if nb == m.exit {
				break
			}
			queue = append(queue, nb)
		}
	}

	idx, err := backtrace.Walk(parent, m.entrance, m.exit)
	if err != nil {
		return nil, st, fmt.Errorf("%w: %w", ErrNoPath, err)
	}
	path := make([]Cell, len(idx))
	for i, v := range idx {
		path[i] = m.cells[v]
	}
	return path, st, nil
}

// Indices returns the linear indices of cells.
func Indices(cells []Cell) []int {
	out := make([]int, len(cells))
	for i, c := range cells {
		out[i] = c.Index
	}
	return out
}
