// Package gset implements GraphSet, a mutable directed graph over a set
// of unique elements.
//
// What:
//
//   - GraphSet[T]: a set of elements of any comparable type T, unique by
//     value equality, connected by unweighted directed edges. Edges exist
//     only as membership of one element in another's neighbor set: there
//     is no edge entity, no weight, no parallel edges.
//   - Vertex[T]: one element plus its outgoing-neighbor set. Two vertices
//     are the same vertex iff their elements are equal.
//
// Why:
//
//   - Model dependency relations (build steps, package requires, task
//     prerequisites) with O(1) membership and edge operations.
//   - Feed toposort.Sort, which orders the elements or reports a cycle.
//
// Mutators return booleans, not errors: false means the operation changed
// nothing (duplicate element, duplicate edge, missing endpoint, absent
// target). Referencing an element that is not in the graph is never a
// panic or an error, just a no-op.
//
// Enumeration (Elements, Neighbors, String) follows insertion order. That
// determinism is an implementation convenience for reproducible output and
// stable tests, not a contract; rely only on the set semantics.
//
// GraphSet is NOT safe for concurrent use. No operation is atomic with
// respect to another; callers sharing a GraphSet across goroutines must
// serialize all access externally.
//
// Complexity:
//
//   - Add, Has, HasEdge, AddEdge:  O(1) amortized
//   - RemoveEdge:                  O(deg(src))
//   - Remove:                      O(V + E)
//   - Clone, String:               O(V + E)
package gset
