package bfs_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/pixmaze/backtrace"
	"github.com/katalvlaran/pixmaze/bfs"
	"github.com/katalvlaran/pixmaze/core"
)

// referenceGraph builds the four-node fixture:
//
//	a→b(20) a→c(2) b→c(5) c→a(5) c→d(5) d→d(5)
//
// a→b is first added by index with weight 5 and then re-weighted to 20.
func referenceGraph(t *testing.T) *core.Graph[string] {
	t.Helper()
	g := core.NewGraph[string]()
	for _, n := range []string{"a", "b", "c", "d"} {
		g.AddNode(n)
	}
	if err := g.AddEdgeByIndex(0, 1, 5); err != nil {
		t.Fatalf("AddEdgeByIndex: %v", err)
	}
	g.AddEdge("a", "b", 20)
	g.AddEdge("a", "c", 2)
	g.AddEdge("b", "c", 5)
	g.AddEdge("c", "a", 5)
	g.AddEdge("c", "d", 5)
	g.AddEdge("d", "d", 5)
	return g
}

func TestBFT_ReferenceOrder(t *testing.T) {
	g := referenceGraph(t)
	got, ok := bfs.BFT(g, "c")
	if !ok {
		t.Fatal("BFT(c) reported unregistered start")
	}
	if want := []string{"c", "a", "d", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("BFT(c) = %v; want %v", got, want)
	}
}

func TestBFT_UnknownStart(t *testing.T) {
	g := referenceGraph(t)
	if got, ok := bfs.BFT(g, "zz"); ok || got != nil {
		t.Errorf("BFT(zz) = (%v, %v); want (nil, false)", got, ok)
	}
	if got, ok := bfs.BFT[string](nil, "a"); ok || got != nil {
		t.Errorf("BFT(nil graph) = (%v, %v); want (nil, false)", got, ok)
	}
}

// TestBFT_Disconnected ensures only the start's component is visited.
func TestBFT_Disconnected(t *testing.T) {
	g := core.NewGraph[string]()
	for _, n := range []string{"x", "y", "p", "q"} {
		g.AddNode(n)
	}
	g.AddEdge("x", "y", 1)
	g.AddEdge("p", "q", 1)

	got, _ := bfs.BFT(g, "x")
	if want := []string{"x", "y"}; !reflect.DeepEqual(got, want) {
		t.Errorf("From x: got %v; want %v", got, want)
	}
	got, _ = bfs.BFT(g, "q")
	if want := []string{"q"}; !reflect.DeepEqual(got, want) {
		t.Errorf("From q: got %v; want %v", got, want)
	}
}

func TestTree_DepthsAndPath(t *testing.T) {
	g := referenceGraph(t)
	res, err := bfs.Tree(g, 0) // from a
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantDepth := []int{0, 1, 1, 2}
	if !reflect.DeepEqual(res.Depth, wantDepth) {
		t.Errorf("Depth = %v; want %v", res.Depth, wantDepth)
	}
	path, err := res.PathTo(3)
	if err != nil {
		t.Fatalf("PathTo(d): %v", err)
	}
	if want := []core.NodeID{0, 2, 3}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(d) = %v; want %v", path, want)
	}
}

func TestTree_Errors(t *testing.T) {
	if _, err := bfs.Tree[string](nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph[string]()
	if _, err := bfs.Tree(g, 0); !errors.Is(err, bfs.ErrStartNotFound) {
		t.Errorf("empty graph: want ErrStartNotFound, got %v", err)
	}
}

func TestTree_Unreachable(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddNode("a")
	g.AddNode("b")
	res, err := bfs.Tree(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Reached(1) {
		t.Error("b reported reached")
	}
	if _, err := res.PathTo(1); !errors.Is(err, backtrace.ErrUnreachable) {
		t.Errorf("PathTo(b): want ErrUnreachable, got %v", err)
	}
}
