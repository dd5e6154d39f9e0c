package corridor

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pixmaze/core"
)

// Sentinel errors for corridor compression and solving.
var (
	// ErrNoEntrance indicates the first row has no open cell.
	ErrNoEntrance = errors.New("corridor: no entrance found in first row")

	// ErrNoExit indicates no junction was discovered on the last row.
	ErrNoExit = errors.New("corridor: no exit node found in last row")

	// ErrNoPath indicates the exit node cannot be reached from the start.
	ErrNoPath = errors.New("corridor: no path from start to exit")
)

// Node is a junction, dead end or entrance of the compressed maze.
// ID is the linear index Y*Width+X of the cell.
type Node struct {
	X, Y uint32
	ID   int
}

func (n Node) String() string { return fmt.Sprintf("%d,%d", n.X, n.Y) }

// Maze is the compressed form of a maze bitmap.
type Maze struct {
	Width, Height int

	// Graph holds the junction nodes and corridor edges.
	Graph *core.Graph[Node]

	// Start is the entrance node; End is the first node on the last row.
	Start, End core.NodeID
}

// Direction is the axis direction of a corridor.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// walkOrder is the order in which a frontier node's corridors are walked.
var walkOrder = [4]Direction{Left, Right, Up, Down}

// Delta returns the unit step of d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	}
	return 1, 0
}

// Vertical reports whether d is Up or Down.
func (d Direction) Vertical() bool { return d == Up || d == Down }

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Segment is one compressed corridor.
type Segment struct {
	From, To Node
	Dir      Direction
	Weight   uint32

	width int
}
