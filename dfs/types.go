// Package dfs defines types and options for component labelling.
package dfs

import (
	"context"
	"errors"
)

// Unvisited marks a vertex that no DFS tree has reached yet.
const Unvisited = -1

var (
	// ErrMatrixNil is returned when a nil matrix is passed to Components.
	ErrMatrixNil = errors.New("dfs: matrix is nil")
)

// Option configures optional behavior of Components.
type Option func(*Options)

// Options holds configurable parameters for the traversal.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when vertex v is first discovered and
	// labelled with component c. Returning an error aborts the traversal.
	OnVisit func(v, c int) error
}

// DefaultOptions returns Options with a background context and no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: nil,
	}
}

// WithContext returns an Option that sets the Context for the traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(v, c int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// ComponentsResult captures the component labelling of a graph.
type ComponentsResult struct {
	// Labels maps each vertex index to its component id.
	Labels []int

	// Sizes holds the vertex count of each component, indexed by component id.
	Sizes []int

	// Largest is the id of the first component with the maximum size,
	// or -1 for an empty graph.
	Largest int
}

// Count returns the number of components.
func (r *ComponentsResult) Count() int { return len(r.Sizes) }

// Members returns the vertex indices of component c in increasing order.
// An unknown c yields nil.
func (r *ComponentsResult) Members(c int) []int {
	if c < 0 || c >= len(r.Sizes) {
		return nil
	}
	out := make([]int, 0, r.Sizes[c])
	for v, l := range r.Labels {
		if l == c {
			out = append(out, v)
		}
	}

	return out
}

// InLargest reports whether vertex v belongs to the largest component.
func (r *ComponentsResult) InLargest(v int) bool {
	return v >= 0 && v < len(r.Labels) && r.Labels[v] == r.Largest
}
