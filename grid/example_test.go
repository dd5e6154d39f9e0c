package grid_test

import (
	"fmt"

	"github.com/katalvlaran/pixmaze/grid"
	"github.com/katalvlaran/pixmaze/pixel"
)

// ExampleMaze_Solve solves a small hand-drawn maze and prints the visited
// coordinates.
func ExampleMaze_Solve() {
	buf, _ := pixel.FromRows(
		"#.###",
		"#...#",
		"###.#",
	)
	m, err := grid.New(buf)
	if err != nil {
		fmt.Println(err)
		return
	}
	path, err := m.Solve()
	if err != nil {
		fmt.Println(err)
		return
	}
	for i, c := range path {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("(%d,%d)", c.X, c.Y)
	}
	fmt.Println()
	fmt.Println(grid.Indices(path))
	// Output:
	// (1,0) (1,1) (2,1) (3,1) (3,2)
	// [1 6 7 8 13]
}
