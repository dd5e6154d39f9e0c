package corridor

import (
	"fmt"

	"github.com/katalvlaran/pixmaze/bfs"
	"github.com/katalvlaran/pixmaze/core"
	"github.com/katalvlaran/pixmaze/dijkstra"
)

// Stats describes one search over the compressed graph.
type Stats struct {
	// Explored is the number of nodes settled by Dijkstra or dequeued by BFS.
	Explored int
}

// Solve returns the minimum-weight start→exit node sequence.
// Returns an error wrapping ErrNoPath when the exit node is unreachable.
func (m *Maze) Solve() ([]Node, error) {
	nodes, _, err := m.SolveStats()
	return nodes, err
}

// SolveStats is Solve plus search statistics.
func (m *Maze) SolveStats() ([]Node, Stats, error) {
	res, err := dijkstra.Dijkstra(m.Graph, m.Start)
	if err != nil {
		return nil, Stats{}, err
	}
	st := Stats{Explored: res.Settled}
	ids, _, err := res.PathTo(m.End)
	if err != nil {
		return nil, st, fmt.Errorf("%w: %w", ErrNoPath, err)
	}
	return m.nodes(ids), st, nil
}

// SolveBFS returns the start→exit node sequence with the fewest corridors.
func (m *Maze) SolveBFS() ([]Node, error) {
	nodes, _, err := m.SolveBFSStats()
	return nodes, err
}

// SolveBFSStats is SolveBFS plus search statistics.
func (m *Maze) SolveBFSStats() ([]Node, Stats, error) {
	res, err := bfs.Tree(m.Graph, m.Start)
	if err != nil {
		return nil, Stats{}, err
	}
	st := Stats{Explored: len(res.Order)}
	ids, err := res.PathTo(m.End)
	if err != nil {
		return nil, st, fmt.Errorf("%w: %w", ErrNoPath, err)
	}
	return m.nodes(ids), st, nil
}

func (m *Maze) nodes(ids []core.NodeID) []Node {
	out := make([]Node, len(ids))
	for i, id := range ids {
		out[i] = m.Graph.Node(id)
	}
	return out
}

// Expand returns the linear index of every cell on the corridors joining
// consecutive nodes, first node first. Each cell appears once.
func (m *Maze) Expand(nodes []Node) []int {
	if len(nodes) == 0 {
		return nil
	}
	out := []int{nodes[0].ID}
	for i := 1; i < len(nodes); i++ {
		x, y := int(nodes[i-1].X), int(nodes[i-1].Y)
		tx, ty := int(nodes[i].X), int(nodes[i].Y)
		for x != tx {
			x += sign(tx - x)
			out = append(out, y*m.Width+x)
		}
		for y != ty {
			y += sign(ty - y)
			out = append(out, y*m.Width+x)
		}
	}
	return out
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
