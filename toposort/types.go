// Package toposort defines the options and sentinel errors for Sort.
package toposort

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *gset.GraphSet is passed to Sort.
	ErrGraphNil = errors.New("toposort: graph is nil")

	// ErrCycleDetected indicates the graph contains a cycle, so no
	// topological ordering exists.
	ErrCycleDetected = errors.New("toposort: cycle detected")
)

// Option configures optional behavior for Sort.
type Option func(*sortOptions)

// sortOptions holds settings for Sort: cancellation and edge consumption.
type sortOptions struct {
	ctx          context.Context // allows cancellation; defaults to Background
	consumeEdges bool            // mutate the input graph while sorting
}

// defaultSortOptions returns the default options: Background context,
// non-destructive sort.
func defaultSortOptions() sortOptions {
	return sortOptions{ctx: context.Background()}
}

// WithCancelContext returns an Option that sets the cancellation context.
// Cancellation is checked once per processed vertex. Passing a nil context
// has no effect.
func WithCancelContext(ctx context.Context) Option {
	return func(o *sortOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithConsumeEdges returns an Option that makes Sort delete each edge from
// the input graph as it is processed. On success the graph is left
// edge-free; on cycle detection only the unprocessed edges remain.
//
// This reproduces the historical behavior of GraphSet.sort, which coupled
// the ordering query with edge removal. Without this option Sort leaves
// the input graph untouched.
func WithConsumeEdges() Option {
	return func(o *sortOptions) {
		o.consumeEdges = true
	}
}
