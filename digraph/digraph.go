package digraph

import "fmt"

// NewGraph creates an empty directed graph with no vertices.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{}
}

// NewGraphFromEdges builds a graph from edge triples, growing the matrix to
// cover the largest index mentioned. Convenience constructor for tests and
// examples.
// Complexity: O(V² + E).
func NewGraphFromEdges(edges []Edge) (*Graph, error) {
	g := NewGraph()
	maxID := -1
	for _, e := range edges {
		if e.From > maxID {
			maxID = e.From
		}
		if e.To > maxID {
			maxID = e.To
		}
	}
	for i := 0; i <= maxID; i++ {
		g.AddVertex()
	}
	for _, e := range edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("digraph: edge %d→%d: %w", e.From, e.To, err)
		}
	}

	return g, nil
}

// AddVertex grows the matrix by one row and one column and returns the
// index of the new vertex. The matrix is resized dynamically; there is no
// fixed capacity.
// Complexity: O(V).
func (g *Graph) AddVertex() int {
	for i := range g.w {
		g.w[i] = append(g.w[i], 0)
	}
	g.w = append(g.w, make([]int64, g.n+1))
	g.n++

	return g.n - 1
}

// AddEdge sets the weight of the directed edge src→dst. The reverse entry
// is left untouched. Requires both indices in range (ErrVertexNotFound),
// distinct endpoints (ErrSelfLoop), and weight > 0 (ErrNonPositiveWeight,
// since 0 encodes "no edge"). Re-adding an edge overwrites its weight.
// Complexity: O(1).
func (g *Graph) AddEdge(src, dst int, weight int64) error {
	if !g.inRange(src) {
		return fmt.Errorf("%w: index %d", ErrVertexNotFound, src)
	}
	if !g.inRange(dst) {
		return fmt.Errorf("%w: index %d", ErrVertexNotFound, dst)
	}
	if src == dst {
		return ErrSelfLoop
	}
	if weight <= 0 {
		return fmt.Errorf("%w: got %d", ErrNonPositiveWeight, weight)
	}
	g.w[src][dst] = weight

	return nil
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int { return g.n }

// Vertices returns the vertex indices 0..V-1.
// Complexity: O(V).
func (g *Graph) Vertices() []int {
	out := make([]int, g.n)
	for i := range out {
		out[i] = i
	}

	return out
}

// HasEdge reports whether the directed edge src→dst exists.
// Complexity: O(1).
func (g *Graph) HasEdge(src, dst int) bool {
	return g.inRange(src) && g.inRange(dst) && g.w[src][dst] > 0
}

// Weight returns the weight of edge src→dst, or 0 if no such edge exists.
// Complexity: O(1).
func (g *Graph) Weight(src, dst int) int64 {
	if !g.HasEdge(src, dst) {
		return 0
	}

	return g.w[src][dst]
}

// Edges returns all edges as (From, To, Weight) triples, scanning the
// matrix in row-major order.
// Complexity: O(V²).
func (g *Graph) Edges() []Edge {
	var out []Edge
	for src := 0; src < g.n; src++ {
		for dst := 0; dst < g.n; dst++ {
			if g.w[src][dst] > 0 {
				out = append(out, Edge{From: src, To: dst, Weight: g.w[src][dst]})
			}
		}
	}

	return out
}

// IsValidPath reports whether path is a walk along directed edges. The
// empty path is valid; a single-vertex path is valid iff the index is in
// range.
// Complexity: O(L).
func (g *Graph) IsValidPath(path []int) bool {
	if len(path) == 0 {
		return true
	}
	if !g.inRange(path[0]) {
		return false
	}
	for i := 1; i < len(path); i++ {
		if !g.inRange(path[i]) || g.w[path[i-1]][path[i]] == 0 {
			return false
		}
	}

	return true
}

// inRange reports whether id is a valid vertex index.
func (g *Graph) inRange(id int) bool {
	return id >= 0 && id < g.n
}
