// File: methods_vertices.go
// Role: Vertex lifecycle and membership queries.
//
// Determinism:
//   - Elements() returns elements in insertion order.
//
// Contract:
//   - Mutators report success as a boolean; a false result means the graph
//     was left unchanged (duplicate on Add, absent element on Remove).

package gset

// Add inserts a new vertex wrapping elem.
// Returns false if a vertex with an equal element already exists (no-op).
// Complexity: O(1) amortized.
func (g *GraphSet[T]) Add(elem T) bool {
	if _, exists := g.vertices[elem]; exists {
		return false // duplicate element, graph unchanged
	}
	g.vertices[elem] = newVertex(elem)
	g.order = append(g.order, elem)

	return true
}

// Has reports whether a vertex wrapping elem exists.
// Complexity: O(1)
func (g *GraphSet[T]) Has(elem T) bool {
	_, exists := g.vertices[elem]

	return exists
}

// Remove deletes the vertex wrapping elem together with all of its incident
// edges: elem is purged from every other vertex's neighbor set, so no
// dangling edges survive the call.
// Returns false if elem is not in the graph (no-op).
// Complexity: O(V + E)
func (g *GraphSet[T]) Remove(elem T) bool {
	if _, exists := g.vertices[elem]; !exists {
		return false
	}

	// Drop outgoing edges owned by elem itself.
	g.edgeCount -= g.vertices[elem].OutDegree()

	// Cascade: purge elem from every remaining neighbor set.
	for _, other := range g.order {
		if other == elem {
			continue
		}
		if g.vertices[other].removeNeighbor(elem) {
			g.edgeCount--
		}
	}

	delete(g.vertices, elem)
	for i, e := range g.order {
		if e == elem {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}

	return true
}

// Vertex returns the vertex wrapping elem; the second result is false if
// elem is not in the graph. The pointer refers to the live vertex — treat
// it as read-only.
// Complexity: O(1)
func (g *GraphSet[T]) Vertex(elem T) (*Vertex[T], bool) {
	v, ok := g.vertices[elem]

	return v, ok
}

// Elements returns all elements in insertion order.
// The returned slice is a copy; callers may retain or mutate it freely.
// Complexity: O(V)
func (g *GraphSet[T]) Elements() []T {
	out := make([]T, len(g.order))
	copy(out, g.order)

	return out
}

// Len returns the number of vertices in the graph.
// Complexity: O(1)
func (g *GraphSet[T]) Len() int { return len(g.vertices) }
