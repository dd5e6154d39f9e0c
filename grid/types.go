package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrNoEntrance indicates the first row has no open cell.
	ErrNoEntrance = errors.New("grid: no entrance found in first row")
	// ErrNoExit indicates the last row has no open cell.
	ErrNoExit = errors.New("grid: no exit found in last row")
	// ErrNoPath indicates the exit cannot be reached from the entrance.
	ErrNoPath = errors.New("grid: no path from entrance to exit")
)

// Cell is one pixel of the maze. Index = Y*Width + X and is the identity of
// the cell.
type Cell struct {
	Wall  bool
	X, Y  uint32
	Index int
}

// Maze is an immutable dense grid built from a pixel buffer.
type Maze struct {
	Width, Height int

	cells    []Cell
	entrance int
	exit     int
}

// Stats describes one Solve run.
type Stats struct {
	// Explored is the number of cells dequeued by the search.
	Explored int
}

// offsets in neighbor order: up, down, left, right.
var offsets = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
