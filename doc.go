// Package graphset is an in-memory container for directed dependency
// graphs over unique elements, with topological sorting built in.
//
// 🚀 What is graphset?
//
//	A small, generic library that brings together:
//		• GraphSet[T]: a set of unique elements of any comparable type,
//		  connected by unweighted directed edges
//		• Boolean set semantics: duplicate elements, duplicate edges, and
//		  references to missing elements are no-ops, never panics
//		• Kahn's algorithm: one call orders the elements or proves the
//		  graph cyclic — a single self-edge already is a cycle
//
// ✨ Why choose graphset?
//
//   - Minimal API – add, connect, remove, sort; nothing else to learn
//   - Value semantics – uniqueness by element equality, no node handles
//   - Pure Go – no cgo, no runtime dependencies
//   - Predictable output – enumeration follows insertion order
//
// Under the hood, everything is organized under two subpackages:
//
//	gset/     — GraphSet and Vertex types with all mutators and queries
//	toposort/ — Kahn topological sort and cycle detection over a GraphSet
//
// Quick example:
//
//	g := gset.New[string]()
//	g.Add("fetch")
//	g.Add("build")
//	g.Add("test")
//	g.AddEdge("fetch", "build")
//	g.AddEdge("build", "test")
//
//	order, err := toposort.Sort(g) // [fetch build test], nil
//
// GraphSet is not safe for unsynchronized concurrent mutation; guard a
// shared graph with a single external lock.
//
//	go get github.com/katalvlaran/graphset
package graphset
