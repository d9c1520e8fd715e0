package gset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphset/gset"
)

// TestAdd_Duplicate verifies that equal elements never produce two vertices:
// the second Add returns false and the graph is unchanged.
func TestAdd_Duplicate(t *testing.T) {
	g := gset.New[string]()
	assert.True(t, g.Add("a"))
	assert.False(t, g.Add("a"), "duplicate Add must report no change")
	assert.Equal(t, 1, g.Len())
	assert.Equal(t, []string{"a"}, g.Elements())
}

// TestAdd_InsertionOrder checks that Elements enumerates in insertion order.
func TestAdd_InsertionOrder(t *testing.T) {
	g := gset.New[int]()
	for _, e := range []int{3, 1, 2} {
		assert.True(t, g.Add(e))
	}
	assert.Equal(t, []int{3, 1, 2}, g.Elements())
}

// TestAddEdge_MissingEndpoints ensures AddEdge fails without mutation when
// either endpoint is absent.
func TestAddEdge_MissingEndpoints(t *testing.T) {
	g := gset.New[string]()
	g.Add("a")

	assert.False(t, g.AddEdge("a", "ghost"), "missing dest")
	assert.False(t, g.AddEdge("ghost", "a"), "missing src")
	assert.False(t, g.AddEdge("x", "y"), "both missing")
	assert.Equal(t, 0, g.EdgeCount())
}

// TestAddEdge_Duplicate verifies set semantics on edges: no multi-edges.
func TestAddEdge_Duplicate(t *testing.T) {
	g := gset.New[string]()
	g.Add("a")
	g.Add("b")

	assert.True(t, g.AddEdge("a", "b"))
	assert.False(t, g.AddEdge("a", "b"), "duplicate edge must report no change")
	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge("a", "b"))
	assert.False(t, g.HasEdge("b", "a"), "edges are directed")
}

// TestAddEdge_SelfEdge confirms self-edges are representable.
func TestAddEdge_SelfEdge(t *testing.T) {
	g := gset.New[int]()
	g.Add(6)

	assert.True(t, g.AddEdge(6, 6))
	assert.True(t, g.HasEdge(6, 6))
	assert.Equal(t, 1, g.EdgeCount())
}

// TestRemoveEdge covers present, absent, and missing-endpoint cases.
func TestRemoveEdge(t *testing.T) {
	g := gset.New[string]()
	g.Add("a")
	g.Add("b")
	g.AddEdge("a", "b")

	assert.False(t, g.RemoveEdge("a", "ghost"), "missing dest")
	assert.False(t, g.RemoveEdge("ghost", "b"), "missing src")
	assert.False(t, g.RemoveEdge("b", "a"), "absent edge")
	assert.True(t, g.RemoveEdge("a", "b"))
	assert.False(t, g.RemoveEdge("a", "b"), "second removal is a no-op")
	assert.Equal(t, 0, g.EdgeCount())
}

// TestRemove_Cascade verifies Remove purges the element from every other
// vertex's neighbor set, leaving no dangling edges, and that later edge
// operations naming the removed element fail.
func TestRemove_Cascade(t *testing.T) {
	g := gset.New[string]()
	for _, e := range []string{"a", "b", "c"} {
		g.Add(e)
	}
	require.True(t, g.AddEdge("a", "b"))
	require.True(t, g.AddEdge("c", "b"))
	require.True(t, g.AddEdge("b", "a"))

	assert.True(t, g.Remove("b"))
	assert.False(t, g.Has("b"))
	assert.Equal(t, 0, g.EdgeCount(), "all incident edges must be gone")

	nbrs, ok := g.Neighbors("a")
	require.True(t, ok)
	assert.Empty(t, nbrs)
	nbrs, ok = g.Neighbors("c")
	require.True(t, ok)
	assert.Empty(t, nbrs)

	// Edge operations referencing the removed element must fail.
	assert.False(t, g.AddEdge("a", "b"))
	assert.False(t, g.AddEdge("b", "a"))
	assert.False(t, g.RemoveEdge("a", "b"))
	assert.False(t, g.Remove("b"), "second Remove is a no-op")
}

// TestRemove_KeepsUnrelatedEdges ensures cascading cleanup only touches
// edges incident to the removed element.
func TestRemove_KeepsUnrelatedEdges(t *testing.T) {
	g := gset.New[int]()
	for e := 1; e <= 4; e++ {
		g.Add(e)
	}
	g.AddEdge(1, 2)
	g.AddEdge(3, 4)
	g.AddEdge(3, 1)

	assert.True(t, g.Remove(1))
	assert.True(t, g.HasEdge(3, 4))
	assert.False(t, g.HasEdge(3, 1))
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, []int{2, 3, 4}, g.Elements())
}

// TestVertex_Lookup checks the Vertex accessor and OutDegree.
func TestVertex_Lookup(t *testing.T) {
	g := gset.New[string]()
	g.Add("a")
	g.Add("b")
	g.AddEdge("a", "b")

	v, ok := g.Vertex("a")
	require.True(t, ok)
	assert.Equal(t, "a", v.Elem)
	assert.Equal(t, 1, v.OutDegree())

	_, ok = g.Vertex("ghost")
	assert.False(t, ok)
}

// TestNeighbors_Missing confirms the missing-vertex signal.
func TestNeighbors_Missing(t *testing.T) {
	g := gset.New[string]()
	nbrs, ok := g.Neighbors("ghost")
	assert.False(t, ok)
	assert.Nil(t, nbrs)
}

// TestNeighbors_Copy verifies the returned slice does not alias graph state.
func TestNeighbors_Copy(t *testing.T) {
	g := gset.New[string]()
	g.Add("a")
	g.Add("b")
	g.AddEdge("a", "b")

	nbrs, ok := g.Neighbors("a")
	require.True(t, ok)
	require.Equal(t, []string{"b"}, nbrs)
	nbrs[0] = "mutated"

	again, _ := g.Neighbors("a")
	assert.Equal(t, []string{"b"}, again)
}

// TestClone_Independence checks that mutating a clone never affects the
// source graph, and vice versa.
func TestClone_Independence(t *testing.T) {
	g := gset.New[int]()
	for e := 1; e <= 3; e++ {
		g.Add(e)
	}
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)

	clone := g.Clone()
	assert.Equal(t, g.Elements(), clone.Elements())
	assert.Equal(t, g.EdgeCount(), clone.EdgeCount())

	clone.RemoveEdge(1, 2)
	clone.Remove(3)
	assert.True(t, g.HasEdge(1, 2), "source keeps its edges")
	assert.True(t, g.Has(3), "source keeps its vertices")
	assert.Equal(t, 2, g.EdgeCount())

	g.AddEdge(1, 3)
	assert.False(t, clone.HasEdge(1, 3), "clone unaffected by source mutation")
}

// TestCloneEmpty preserves elements and order but drops every edge.
func TestCloneEmpty(t *testing.T) {
	g := gset.New[int]()
	for e := 1; e <= 3; e++ {
		g.Add(e)
	}
	g.AddEdge(1, 2)

	clone := g.CloneEmpty()
	assert.Equal(t, g.Elements(), clone.Elements())
	assert.Equal(t, 0, clone.EdgeCount())
	assert.False(t, clone.HasEdge(1, 2))
}

// TestClear resets the graph to an empty state.
func TestClear(t *testing.T) {
	g := gset.New[string]()
	g.Add("a")
	g.Add("b")
	g.AddEdge("a", "b")

	g.Clear()
	assert.Equal(t, 0, g.Len())
	assert.Equal(t, 0, g.EdgeCount())
	assert.False(t, g.Has("a"))
	assert.True(t, g.Add("a"), "graph is usable after Clear")
}

// TestStructElements exercises a comparable struct as element type.
func TestStructElements(t *testing.T) {
	type task struct {
		Name string
		Prio int
	}
	g := gset.New[task]()
	a := task{Name: "build", Prio: 1}
	b := task{Name: "test", Prio: 2}

	assert.True(t, g.Add(a))
	assert.False(t, g.Add(task{Name: "build", Prio: 1}), "uniqueness is by value equality")
	assert.True(t, g.Add(b))
	assert.True(t, g.AddEdge(a, b))
	assert.True(t, g.HasEdge(task{Name: "build", Prio: 1}, b))
}
