package mst_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pixmaze/core"
	"github.com/katalvlaran/pixmaze/mst"
)

// undirected stores every pair in both directions.
func undirected(nodes []string, edges ...struct {
	u, v string
	w    uint32
}) *core.Graph[string] {
	g := core.NewGraph[string]()
	for _, n := range nodes {
		g.AddNode(n)
	}
	for _, e := range edges {
		g.AddEdge(e.u, e.v, e.w)
		g.AddEdge(e.v, e.u, e.w)
	}
	return g
}

type edge = struct {
	u, v string
	w    uint32
}

// triangle: A-B(1) B-C(2) A-C(3); the tree is A-B, B-C with weight 3.
func triangle() *core.Graph[string] {
	return undirected([]string{"A", "B", "C"},
		edge{"A", "B", 1}, edge{"B", "C", 2}, edge{"A", "C", 3})
}

func TestKruskal_Triangle(t *testing.T) {
	tree, total, err := mst.Kruskal(triangle())
	require.NoError(t, err)
	assert.Equal(t, uint64(3), total)
	assert.Equal(t, []core.Edge{{From: 0, To: 1, Weight: 1}, {From: 1, To: 2, Weight: 2}}, tree)
}

func TestPrim_Triangle(t *testing.T) {
	tree, total, err := mst.Prim(triangle(), 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), total)
	assert.Equal(t, []core.Edge{{From: 0, To: 1, Weight: 1}, {From: 1, To: 2, Weight: 2}}, tree)
}

func TestKruskal_OneDirectionIsEnough(t *testing.T) {
	g := core.NewGraph[string]()
	for _, n := range []string{"A", "B", "C"} {
		g.AddNode(n)
	}
	g.AddEdge("C", "A", 4)
	g.AddEdge("B", "C", 1)
	g.AddEdge("A", "B", 9)
	_, total, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), total)
}

func TestValidation(t *testing.T) {
	_, _, err := mst.Kruskal[string](nil)
	assert.ErrorIs(t, err, mst.ErrNilGraph)
	_, _, err = mst.Prim[string](nil, 0)
	assert.ErrorIs(t, err, mst.ErrNilGraph)

	empty := core.NewGraph[string]()
	_, _, err = mst.Kruskal(empty)
	assert.ErrorIs(t, err, mst.ErrDisconnected)
	_, _, err = mst.Prim(empty, 0)
	assert.ErrorIs(t, err, mst.ErrDisconnected)

	split := undirected([]string{"A", "B", "C"}, edge{"A", "B", 1})
	_, _, err = mst.Kruskal(split)
	assert.ErrorIs(t, err, mst.ErrDisconnected)
	_, _, err = mst.Prim(split, 0)
	assert.ErrorIs(t, err, mst.ErrDisconnected)

	_, _, err = mst.Prim(triangle(), 5)
	assert.ErrorIs(t, err, core.ErrNodeIndex)
}

func TestSingleNode(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddNode("A")
	g.AddEdge("A", "A", 3)

	tree, total, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Empty(t, tree)
	assert.Zero(t, total)

	tree, total, err = mst.Prim(g, 0)
	require.NoError(t, err)
	assert.Empty(t, tree)
	assert.Zero(t, total)
}

func TestCompute(t *testing.T) {
	_, k, err := mst.Compute(triangle())
	require.NoError(t, err)
	_, p, err := mst.Compute(triangle(), mst.WithMethod(mst.MethodPrim), mst.WithRoot(2))
	require.NoError(t, err)
	assert.Equal(t, k, p)

	_, _, err = mst.Compute(triangle(), mst.WithMethod("boruvka"))
	assert.ErrorIs(t, err, mst.ErrMethod)
}

// TestKruskalPrimAgree checks both algorithms find the same total weight on
// random connected graphs, and that the tree spans every node.
func TestKruskalPrimAgree(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for round := 0; round < 100; round++ {
		n := 2 + r.Intn(20)
		g := core.NewGraph[int](core.WithCapacity(n))
		for i := 0; i < n; i++ {
			g.AddNode(i)
		}
		link := func(u, v int, w uint32) {
			g.AddEdge(u, v, w)
			g.AddEdge(v, u, w)
		}
		for i := 1; i < n; i++ {
			link(r.Intn(i), i, uint32(1+r.Intn(50)))
		}
		for extra := r.Intn(2 * n); extra > 0; extra-- {
			u, v := r.Intn(n), r.Intn(n)
			if u != v {
				link(u, v, uint32(1+r.Intn(50)))
			}
		}

		kt, kw, err := mst.Kruskal(g)
		require.NoError(t, err)
		pt, pw, err := mst.Prim(g, core.NodeID(r.Intn(n)))
		require.NoError(t, err)
		assert.Equal(t, kw, pw, "round %d", round)
		assert.Len(t, kt, n-1)
		assert.Len(t, pt, n-1)
		assertSpans(t, n, kt)
		assertSpans(t, n, pt)
	}
}

func assertSpans(t *testing.T, n int, tree []core.Edge) {
	t.Helper()
	adj := make([][]core.NodeID, n)
	for _, e := range tree {
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}
	seen := make([]bool, n)
	stack := []core.NodeID{0}
	seen[0] = true
	count := 1
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, u := range adj[v] {
			if !seen[u] {
				seen[u] = true
				count++
				stack = append(stack, u)
			}
		}
	}
	assert.Equal(t, n, count)
}
