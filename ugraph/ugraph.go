package ugraph

import "fmt"

// NewGraph creates an empty undirected graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{adj: make(map[string][]string)}
}

// NewGraphFromEdges builds a graph from a list of edge pairs, adding any
// vertex it has not seen before. It is a convenience constructor for tests
// and examples; edge order determines vertex and neighbor order.
// Complexity: O(E·d) where d is the maximum degree.
func NewGraphFromEdges(edges [][2]string) (*Graph, error) {
	g := NewGraph()
	for _, e := range edges {
		if err := g.AddVertex(e[0]); err != nil {
			return nil, err
		}
		if err := g.AddVertex(e[1]); err != nil {
			return nil, err
		}
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("ugraph: edge %s-%s: %w", e[0], e[1], err)
		}
	}

	return g, nil
}

// AddVertex inserts id into the graph if absent; adding an existing vertex
// is a no-op, so the call is idempotent.
// Returns ErrEmptyVertexID for an empty ID.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, exists := g.adj[id]; exists {
		return nil
	}
	g.adj[id] = nil
	g.order = append(g.order, id)

	return nil
}

// AddEdge connects a and b in both directions, preserving the symmetry
// invariant of the adjacency list. Both endpoints must already exist
// (ErrVertexNotFound otherwise) and must differ (ErrSelfLoop).
// Re-adding an existing edge is a no-op.
// Complexity: O(d) where d is the degree of a.
func (g *Graph) AddEdge(a, b string) error {
	if a == b {
		return ErrSelfLoop
	}
	if _, ok := g.adj[a]; !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, a)
	}
	if _, ok := g.adj[b]; !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, b)
	}
	if contains(g.adj[a], b) {
		return nil
	}
	g.adj[a] = append(g.adj[a], b)
	g.adj[b] = append(g.adj[b], a)

	return nil
}

// HasVertex reports whether id is present in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.adj[id]
	return ok
}

// HasEdge reports whether an edge between a and b exists.
// Complexity: O(d).
func (g *Graph) HasEdge(a, b string) bool {
	return contains(g.adj[a], b)
}

// Neighbors returns a copy of id's neighbor list in insertion order,
// or nil if id is absent.
// Complexity: O(d).
func (g *Graph) Neighbors(id string) []string {
	nbrs, ok := g.adj[id]
	if !ok {
		return nil
	}
	out := make([]string, len(nbrs))
	copy(out, nbrs)

	return out
}

// Vertices returns all vertex IDs in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int { return len(g.order) }

// Edges returns every edge exactly once as a [2]string pair, ordered by the
// insertion order of the first endpoint.
// Complexity: O(V + E).
func (g *Graph) Edges() [][2]string {
	seen := make(map[[2]string]struct{})
	var out [][2]string
	for _, u := range g.order {
		for _, v := range g.adj[u] {
			key := [2]string{v, u}
			if _, dup := seen[key]; dup {
				continue
			}
			pair := [2]string{u, v}
			seen[pair] = struct{}{}
			out = append(out, pair)
		}
	}

	return out
}

// IsValidPath reports whether path is a walk through the graph: every
// vertex exists and consecutive vertices are adjacent. The empty path is
// valid; a single-vertex path is valid iff the vertex exists.
// Complexity: O(L·d) where L is the path length.
func (g *Graph) IsValidPath(path []string) bool {
	if len(path) == 0 {
		return true
	}
	if !g.HasVertex(path[0]) {
		return false
	}
	for i := 1; i < len(path); i++ {
		if !g.HasEdge(path[i-1], path[i]) {
			return false
		}
	}

	return true
}

// contains reports whether s holds val.
func contains(s []string, val string) bool {
	for _, x := range s {
		if x == val {
			return true
		}
	}

	return false
}
