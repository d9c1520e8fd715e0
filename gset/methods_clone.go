// File: methods_clone.go
// Role: Cloning and clearing GraphSet instances.
//
// toposort.Sort relies on Clone for its non-destructive default: the sort
// consumes edges on a copy while the caller's graph stays intact.

package gset

// CloneEmpty returns a new GraphSet with the same elements in the same
// insertion order, but no edges.
// Complexity: O(V)
func (g *GraphSet[T]) CloneEmpty() *GraphSet[T] {
	clone := New(WithCapacity[T](len(g.order)))
	for _, elem := range g.order {
		clone.vertices[elem] = newVertex(elem)
		clone.order = append(clone.order, elem)
	}

	return clone
}

// Clone returns a deep copy of the GraphSet: elements, edges, and both
// insertion orders. Mutating the clone never affects the source.
// Complexity: O(V + E)
func (g *GraphSet[T]) Clone() *GraphSet[T] {
	clone := g.CloneEmpty()
	for _, elem := range g.order {
		src := g.vertices[elem]
		dst := clone.vertices[elem]
		dst.nbrOrder = make([]T, len(src.nbrOrder))
		copy(dst.nbrOrder, src.nbrOrder)
		for n := range src.nbrSet {
			dst.nbrSet[n] = struct{}{}
		}
	}
	clone.edgeCount = g.edgeCount

	return clone
}

// Clear resets the graph to an empty state.
// Complexity: O(1) for map reallocation.
func (g *GraphSet[T]) Clear() {
	g.vertices = make(map[T]*Vertex[T])
	g.order = nil
	g.edgeCount = 0
}
