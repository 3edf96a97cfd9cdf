// Package digraph defines the matrix Graph type, sentinel errors, and
// options for traversal and shortest-path computation.
package digraph

import (
	"errors"
	"math"
)

// Inf is the distance sentinel for vertices Dijkstra could not reach.
const Inf int64 = math.MaxInt64

// Sentinel errors for graph construction and search.
var (
	// ErrVertexNotFound indicates an out-of-range vertex index.
	ErrVertexNotFound = errors.New("digraph: vertex not found")

	// ErrSelfLoop indicates an edge with identical endpoints.
	ErrSelfLoop = errors.New("digraph: self-loops not allowed")

	// ErrNonPositiveWeight indicates an edge weight <= 0; zero encodes
	// "no edge" in the matrix, so positive weights are required.
	ErrNonPositiveWeight = errors.New("digraph: edge weight must be positive")

	// ErrStartVertexNotFound indicates a search started from an
	// out-of-range vertex index.
	ErrStartVertexNotFound = errors.New("digraph: start vertex not found")
)

// Edge is one directed weighted edge, as reported by Edges and accepted by
// NewGraphFromEdges.
type Edge struct {
	From   int
	To     int
	Weight int64
}

// Graph is a directed weighted graph over dense integer vertex IDs,
// stored as a V×V adjacency matrix. The zero value is an empty graph
// ready for use.
type Graph struct {
	n int       // vertex count
	w [][]int64 // w[i][j] > 0 ⇒ edge i→j with that weight
}

// Option configures optional behavior of DFS and BFS.
type Option func(*TraverseOptions)

// TraverseOptions holds configurable parameters for a single traversal.
type TraverseOptions struct {
	// Target, if >= 0, stops the traversal once this vertex is visited.
	Target int
}

// DefaultTraverseOptions returns a TraverseOptions with no target.
func DefaultTraverseOptions() TraverseOptions {
	return TraverseOptions{Target: -1}
}

// WithTarget stops the traversal once vertex id has been visited.
func WithTarget(id int) Option {
	return func(o *TraverseOptions) { o.Target = id }
}

// DijkstraOption configures optional behavior of Dijkstra.
type DijkstraOption func(*DijkstraOptions)

// DijkstraOptions holds configurable parameters for a Dijkstra run.
type DijkstraOptions struct {
	// ReturnPath requests the predecessor slice for path reconstruction.
	ReturnPath bool
}

// DefaultDijkstraOptions returns a DijkstraOptions with path tracking off.
func DefaultDijkstraOptions() DijkstraOptions {
	return DijkstraOptions{}
}

// WithReturnPath enables predecessor tracking; Dijkstra then returns a
// non-nil prev slice (prev[v] == -1 for the source and unreached vertices).
func WithReturnPath() DijkstraOption {
	return func(o *DijkstraOptions) { o.ReturnPath = true }
}
