package corridor

// Segments returns every edge of the compressed graph with its direction,
// in edge insertion order grouped by source node.
func (m *Maze) Segments() []Segment {
	edges := m.Graph.AllEdges()
	out := make([]Segment, 0, len(edges))
	for _, e := range edges {
		from, to := m.Graph.Node(e.From), m.Graph.Node(e.To)
		out = append(out, Segment{
			From:   from,
			To:     to,
			Dir:    direction(from, to),
			Weight: e.Weight,
			width:  m.Width,
		})
	}
	return out
}

func direction(from, to Node) Direction {
	switch {
	case from.X == to.X && to.Y < from.Y:
		return Up
	case from.X == to.X:
		return Down
	case to.X < from.X:
		return Left
	}
	return Right
}

// Interior returns the linear indices of the cells strictly between the
// segment's endpoints.
func (s Segment) Interior() []int {
	dx, dy := s.Dir.Delta()
	x, y := int(s.From.X)+dx, int(s.From.Y)+dy
	var out []int
	for x != int(s.To.X) || y != int(s.To.Y) {
		out = append(out, y*s.width+x)
		x, y = x+dx, y+dy
	}
	return out
}
