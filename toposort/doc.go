// Package toposort implements topological sorting of a gset.GraphSet
// using Kahn's algorithm, which doubles as a cycle detector.
//
// What:
//
//   - Sort: computes a linear ordering of all elements such that for every
//     directed edge u→v, u appears before v. If no such ordering exists the
//     graph contains a cycle and Sort returns ErrCycleDetected.
//
// Why:
//
//   - Determine safe execution orders for dependency graphs (build steps,
//     package installs, task schedules).
//   - Detect cycles, including self-edges, before acting on an ordering.
//
// Behavior:
//
//   - Sort is non-destructive by default: it walks the graph read-only and
//     the caller's edges survive the call. Pass WithConsumeEdges() to opt
//     into consuming edges from the input graph as they are processed; on
//     success the graph ends edge-free, on cycle detection exactly the
//     unprocessed edges remain.
//   - An empty graph sorts to an empty sequence, which is a success and
//     distinct from the cycle result.
//   - Pass WithCancelContext(ctx) to abort a long sort early.
//
// Errors:
//
//	ErrGraphNil       - a nil *gset.GraphSet was passed.
//	ErrCycleDetected  - the graph contains a cycle; no ordering exists.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (in-degree census and frontier queue)
package toposort
