// File: methods_edges.go
// Role: Edge lifecycle and neighborhood queries.
//
// Edge model: a directed edge src→dest is recorded solely as dest's
// membership in src's neighbor set. No edge IDs, no weights, no parallel
// edges. Both endpoints must already be vertices for an edge to be created.
//
// Determinism:
//   - Neighbors() returns neighbor elements in edge-insertion order.

package gset

// AddEdge creates the directed edge src→dest.
// Both src and dest must already be in the graph; returns false (no
// mutation) if either is absent, or if the edge already exists.
// Self-edges (src == dest) are permitted; they make the graph cyclic.
// Complexity: O(1) amortized.
func (g *GraphSet[T]) AddEdge(src, dest T) bool {
	srcVertex, ok := g.vertices[src]
	if !ok {
		return false
	}
	if _, ok = g.vertices[dest]; !ok {
		return false
	}
	if !srcVertex.addNeighbor(dest) {
		return false // edge already present
	}
	g.edgeCount++

	return true
}

// RemoveEdge deletes the directed edge src→dest.
// Both endpoints must be in the graph; returns false if either is absent
// or the edge does not exist.
// Complexity: O(deg(src))
func (g *GraphSet[T]) RemoveEdge(src, dest T) bool {
	srcVertex, ok := g.vertices[src]
	if !ok {
		return false
	}
	if _, ok = g.vertices[dest]; !ok {
		return false
	}
	if !srcVertex.removeNeighbor(dest) {
		return false // edge absent
	}
	g.edgeCount--

	return true
}

// HasEdge reports whether the directed edge src→dest exists.
// Complexity: O(1)
func (g *GraphSet[T]) HasEdge(src, dest T) bool {
	srcVertex, ok := g.vertices[src]
	if !ok {
		return false
	}

	return srcVertex.hasNeighbor(dest)
}

// Neighbors returns the outgoing neighbors of elem in edge-insertion order.
// The second result is false if elem is not in the graph.
// The returned slice is a copy; callers may retain or mutate it freely.
// Complexity: O(deg(elem))
func (g *GraphSet[T]) Neighbors(elem T) ([]T, bool) {
	v, ok := g.vertices[elem]
	if !ok {
		return nil, false
	}
	out := make([]T, len(v.nbrOrder))
	copy(out, v.nbrOrder)

	return out, true
}

// EdgeCount returns the total number of edges in the graph.
// Complexity: O(1)
func (g *GraphSet[T]) EdgeCount() int { return g.edgeCount }
