package regions

import "github.com/katalvlaran/pixmaze/pixel"

// Wall is the region id of a wall cell.
const Wall = -1

// Regions holds the connected open areas of a buffer.
type Regions struct {
	// IDs maps each linear cell index to its region, or Wall.
	IDs []int
	// Sizes[r] is the cell count of region r.
	Sizes []int
}

// Count returns the number of regions.
func (r Regions) Count() int { return len(r.Sizes) }

// Of returns the region of cell i.
func (r Regions) Of(i int) int { return r.IDs[i] }

// Connected reports whether cells a and b are open and in one region.
func (r Regions) Connected(a, b int) bool {
	return r.IDs[a] != Wall && r.IDs[a] == r.IDs[b]
}

// Label flood-fills every open cell. Region ids are numbered in the
// row-major order of each region's first cell.
//
// Complexity: O(W×H) time and memory.
func Label(buf pixel.Buffer) (Regions, error) {
	if err := buf.Validate(); err != nil {
		return Regions{}, err
	}
	n := buf.Len()
	ids := make([]int, n)
	for i := range ids {
		ids[i] = Wall
	}

	var sizes []int
	queue := make([]int, 0, 64)
	for start := 0; start < n; start++ {
		if ids[start] != Wall || !buf.Open(start) {
			continue
		}
		id := len(sizes)
		size := 0
		ids[start] = id
		queue = append(queue[:0], start)
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			size++
			x, y := buf.Coordinate(u)
			for _, d := range offsets {
				vx, vy := x+d[0], y+d[1]
				if !buf.OpenAt(vx, vy) {
					continue
				}
				v := buf.Index(vx, vy)
				if ids[v] != Wall {
					continue
				}
				ids[v] = id
				queue = append(queue, v)
			}
		}
		sizes = append(sizes, size)
	}
	return Regions{IDs: ids, Sizes: sizes}, nil
}

// up, down, left, right
var offsets = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
