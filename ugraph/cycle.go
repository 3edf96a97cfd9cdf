package ugraph

// cycleFrame is one explicit-stack record for cycle detection:
// the vertex being explored, its DFS parent, and the index of the
// next neighbor to examine.
type cycleFrame struct {
	id     string
	parent string
	next   int
}

// HasCycle reports whether the graph contains a cycle. It runs a
// depth-first traversal over every component; an edge to an already
// visited vertex that is not the immediate parent is a back-edge and
// therefore a cycle witness.
// Complexity: O(V + E) time, O(V) memory.
func (g *Graph) HasCycle() bool {
	visited := make(map[string]bool, len(g.order))

	for _, root := range g.order {
		if visited[root] {
			continue
		}
		if g.componentHasCycle(root, visited) {
			return true
		}
	}

	return false
}

// componentHasCycle explores the component containing root with an
// explicit frame stack, marking vertices in visited as it goes.
func (g *Graph) componentHasCycle(root string, visited map[string]bool) bool {
	visited[root] = true
	stack := []cycleFrame{{id: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		nbrs := g.adj[top.id]
		if top.next >= len(nbrs) {
			stack = stack[:len(stack)-1]
			continue
		}
		nbr := nbrs[top.next]
		top.next++

		if nbr == top.parent {
			continue
		}
		if visited[nbr] {
			// Back-edge to a non-parent vertex closes a cycle.
			return true
		}
		visited[nbr] = true
		stack = append(stack, cycleFrame{id: nbr, parent: top.id})
	}

	return false
}
