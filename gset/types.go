// Package gset declares the GraphSet and Vertex types and the New
// constructor with its functional options.
//
// Storage model: vertices live in an arena keyed by element value
// (map[T]*Vertex[T]); neighbor sets hold element keys, never *Vertex
// pointers, so there are no object cycles between siblings. A parallel
// insertion-order slice backs deterministic enumeration.
package gset

// Vertex wraps exactly one element together with its outgoing-neighbor set.
//
// Vertex identity is element identity: a GraphSet never holds two vertices
// with equal elements, which is guaranteed structurally by keying the
// vertex arena on the element value.
type Vertex[T comparable] struct {
	// Elem is the element this vertex wraps.
	Elem T

	// nbrSet holds outgoing neighbors by element key for O(1) membership.
	nbrSet map[T]struct{}

	// nbrOrder mirrors nbrSet in edge-insertion order for deterministic
	// enumeration.
	nbrOrder []T
}

// newVertex allocates a vertex for elem with an empty neighbor set.
func newVertex[T comparable](elem T) *Vertex[T] {
	return &Vertex[T]{
		Elem:   elem,
		nbrSet: make(map[T]struct{}),
	}
}

// OutDegree returns the number of outgoing edges of v.
func (v *Vertex[T]) OutDegree() int { return len(v.nbrSet) }

// addNeighbor records the edge v.Elem→dest.
// Returns false if the edge already exists.
func (v *Vertex[T]) addNeighbor(dest T) bool {
	if _, exists := v.nbrSet[dest]; exists {
		return false
	}
	v.nbrSet[dest] = struct{}{}
	v.nbrOrder = append(v.nbrOrder, dest)

	return true
}

// removeNeighbor deletes the edge v.Elem→dest.
// Returns false if the edge does not exist.
func (v *Vertex[T]) removeNeighbor(dest T) bool {
	if _, exists := v.nbrSet[dest]; !exists {
		return false
	}
	delete(v.nbrSet, dest)
	for i, n := range v.nbrOrder {
		if n == dest {
			v.nbrOrder = append(v.nbrOrder[:i], v.nbrOrder[i+1:]...)
			break
		}
	}

	return true
}

// hasNeighbor reports whether the edge v.Elem→dest exists.
func (v *Vertex[T]) hasNeighbor(dest T) bool {
	_, exists := v.nbrSet[dest]

	return exists
}

// GraphSet is a mutable directed graph over unique elements of type T.
//
// Elements are unique by value equality (set semantics). Edges are
// directed, unweighted, and unique per (src, dest) pair; self-edges are
// representable and always make the graph cyclic.
//
// GraphSet is NOT safe for concurrent use. All methods must be called
// from a single goroutine, or callers must serialize access externally.
type GraphSet[T comparable] struct {
	// vertices is the arena: element value → vertex.
	vertices map[T]*Vertex[T]

	// order lists elements in insertion order for deterministic enumeration.
	order []T

	// edgeCount tracks the total number of edges.
	edgeCount int
}

// Option configures a GraphSet before first use.
type Option[T comparable] func(*GraphSet[T])

// WithCapacity pre-sizes the vertex arena for n elements.
func WithCapacity[T comparable](n int) Option[T] {
	return func(g *GraphSet[T]) {
		if n > 0 {
			g.vertices = make(map[T]*Vertex[T], n)
			g.order = make([]T, 0, n)
		}
	}
}

// New creates an empty GraphSet with the given options.
// Complexity: O(1)
func New[T comparable](opts ...Option[T]) *GraphSet[T] {
	g := &GraphSet[T]{
		vertices: make(map[T]*Vertex[T]),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
