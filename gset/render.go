// File: render.go
// Role: Human-readable debug rendering of the graph.

package gset

import (
	"fmt"
	"strings"
)

// String renders the graph one line per vertex as "elem->[n1, n2, ...]",
// vertices in insertion order, neighbors in edge-insertion order.
// Purely observational: calling String never mutates the graph.
// Complexity: O(V + E)
func (g *GraphSet[T]) String() string {
	var sb strings.Builder
	for _, elem := range g.order {
		sb.WriteString(fmt.Sprintf("%v", elem))
		sb.WriteString("->[")
		for i, n := range g.vertices[elem].nbrOrder {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(fmt.Sprintf("%v", n))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
