package ugraph

// ConnectedComponents groups the graph's vertices into connected
// components. Components are ordered by the insertion order of their
// first-added vertex, and each component lists its vertices in BFS
// visit order from that vertex.
// Complexity: O(V + E) time, O(V) memory.
func (g *Graph) ConnectedComponents() [][]string {
	seen := make(map[string]bool, len(g.order))
	var comps [][]string

	for _, root := range g.order {
		if seen[root] {
			continue
		}
		// BFS cannot fail here: root came from the vertex catalog.
		comp, _ := g.BFS(root)
		for _, id := range comp {
			seen[id] = true
		}
		comps = append(comps, comp)
	}

	return comps
}

// ComponentCount returns the number of connected components.
// Complexity: O(V + E).
func (g *Graph) ComponentCount() int {
	return len(g.ConnectedComponents())
}
