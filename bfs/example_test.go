package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/pixmaze/bfs"
	"github.com/katalvlaran/pixmaze/core"
)

// ExampleBFT demonstrates breadth-first layering on a small directed graph.
func ExampleBFT() {
	g := core.NewGraph[string]()
	for _, n := range []string{"A", "B", "C", "D", "E"} {
		g.AddNode(n)
	}
	g.AddEdge("A", "B", 1)
	g.AddEdge("A", "C", 1)
	g.AddEdge("B", "D", 1)
	g.AddEdge("C", "E", 1)

	order, _ := bfs.BFT(g, "A")
	fmt.Println(order)
	// Output:
	// [A B C D E]
}
