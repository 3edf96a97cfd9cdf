// Package ugraph defines the Graph type, sentinel errors, and traversal
// options for the adjacency-list undirected graph.
package ugraph

import "errors"

// Sentinel errors for graph construction and traversal.
var (
	// ErrEmptyVertexID indicates AddVertex was called with an empty ID.
	ErrEmptyVertexID = errors.New("ugraph: vertex ID is empty")

	// ErrVertexNotFound indicates AddEdge referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("ugraph: vertex not found")

	// ErrSelfLoop indicates AddEdge was called with identical endpoints.
	ErrSelfLoop = errors.New("ugraph: self-loops not allowed")

	// ErrStartVertexNotFound indicates a traversal started from an unknown vertex.
	ErrStartVertexNotFound = errors.New("ugraph: start vertex not found")
)

// Graph is an undirected graph over string vertex IDs.
//
// Neighbor lists preserve insertion order, so traversal output is
// deterministic for a fixed construction sequence. Duplicate edges and
// self-loops are rejected. The zero value is not usable; call NewGraph.
type Graph struct {
	order []string            // vertex IDs in insertion order
	adj   map[string][]string // vertex ID → insertion-ordered neighbor IDs
}

// Option configures optional behavior of DFS and BFS.
type Option func(*TraverseOptions)

// TraverseOptions holds configurable parameters for a single traversal.
type TraverseOptions struct {
	// Target, if non-empty, stops the traversal as soon as this vertex is
	// visited. The returned order includes Target as its last element.
	Target string

	// OnVisit, if non-nil, is invoked when a vertex is visited.
	// Returning an error aborts the traversal with that error.
	OnVisit func(id string) error
}

// DefaultTraverseOptions returns a TraverseOptions with no target and no hook.
func DefaultTraverseOptions() TraverseOptions {
	return TraverseOptions{}
}

// WithTarget stops the traversal once id has been visited.
func WithTarget(id string) Option {
	return func(o *TraverseOptions) { o.Target = id }
}

// WithOnVisit installs fn as a per-vertex visit hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *TraverseOptions) { o.OnVisit = fn }
}
