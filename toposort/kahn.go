// File: kahn.go
// Role: Kahn's algorithm: in-degree census, frontier drain, leftover-edge
// cycle check.

package toposort

import "github.com/katalvlaran/graphset/gset"

// Sort computes a topological ordering of all elements in g.
// If g is nil, returns ErrGraphNil.
// If g contains a cycle (including any self-edge), returns ErrCycleDetected.
// An empty graph yields an empty, non-nil ordering.
//
// The returned order is valid for the edge set as it existed at the start
// of the call: every edge u→v has u before v. Ties between frontier
// vertices resolve in element insertion order; that determinism is an
// implementation convenience, not a contract.
//
// By default the input graph is not mutated. Pass WithConsumeEdges() to
// consume edges from g while sorting, and WithCancelContext(ctx) to enable
// cancellation.
func Sort[T comparable](g *gset.GraphSet[T], options ...Option) ([]T, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Apply optional settings
	opts := defaultSortOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. In-degree census over the current edge set
	elems := g.Elements()
	inDegree := make(map[T]int, len(elems))
	for _, u := range elems {
		inDegree[u] = 0
	}
	for _, u := range elems {
		nbrs, _ := g.Neighbors(u)
		for _, v := range nbrs {
			inDegree[v]++
		}
	}
	// 4. Initial frontier: vertices with no incoming edge, insertion order
	frontier := make([]T, 0, len(elems))
	for _, u := range elems {
		if inDegree[u] == 0 {
			frontier = append(frontier, u)
		}
	}
	// 5. Drain the frontier, consuming one edge per neighbor visit
	order := make([]T, 0, len(elems))
	remaining := g.EdgeCount()
	for len(frontier) > 0 {
		// 5a. Cancellation check once per processed vertex
		select {
		case <-opts.ctx.Done():
			return nil, opts.ctx.Err()
		default:
		}
		// 5b. Pop the next zero-in-degree vertex and record its element
		u := frontier[0]
		frontier = frontier[1:]
		order = append(order, u)
		// 5c. Consume each outgoing edge u→v; newly freed vertices join
		//     the frontier
		nbrs, _ := g.Neighbors(u)
		for _, v := range nbrs {
			if opts.consumeEdges {
				g.RemoveEdge(u, v)
			}
			remaining--
			if inDegree[v]--; inDegree[v] == 0 {
				frontier = append(frontier, v)
			}
		}
	}
	// 6. Any unconsumed edge means a cycle: some vertex never reached
	//    in-degree zero
	if remaining > 0 {
		return nil, ErrCycleDetected
	}

	return order, nil
}
