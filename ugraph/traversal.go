package ugraph

import "fmt"

// DFS returns the vertices reachable from start in depth-first order,
// exploring neighbors in the order they were added. The traversal uses an
// explicit stack, so arbitrarily deep graphs cannot overflow the call stack.
// Returns ErrStartVertexNotFound if start is absent.
// Complexity: O(V + E) time, O(V) memory.
func (g *Graph) DFS(start string, opts ...Option) ([]string, error) {
	o := DefaultTraverseOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	order := make([]string, 0, len(g.order))
	visited := make(map[string]bool, len(g.order))
	stack := []string{start}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[id] {
			continue
		}
		visited[id] = true
		order = append(order, id)
		if o.OnVisit != nil {
			if err := o.OnVisit(id); err != nil {
				return nil, fmt.Errorf("ugraph: OnVisit hook for %q: %w", id, err)
			}
		}
		if o.Target != "" && id == o.Target {
			return order, nil
		}
		// Push neighbors in reverse so the first-added neighbor is
		// explored first.
		nbrs := g.adj[id]
		for i := len(nbrs) - 1; i >= 0; i-- {
			if !visited[nbrs[i]] {
				stack = append(stack, nbrs[i])
			}
		}
	}

	return order, nil
}

// BFS returns the vertices reachable from start level by level, using a
// FIFO queue and visiting neighbors in insertion order.
// Returns ErrStartVertexNotFound if start is absent.
// Complexity: O(V + E) time, O(V) memory.
func (g *Graph) BFS(start string, opts ...Option) ([]string, error) {
	o := DefaultTraverseOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	order := make([]string, 0, len(g.order))
	visited := make(map[string]bool, len(g.order))
	queue := []string{start}
	visited[start] = true

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)
		if o.OnVisit != nil {
			if err := o.OnVisit(id); err != nil {
				return nil, fmt.Errorf("ugraph: OnVisit hook for %q: %w", id, err)
			}
		}
		if o.Target != "" && id == o.Target {
			return order, nil
		}
		for _, nbr := range g.adj[id] {
			if !visited[nbr] {
				visited[nbr] = true
				queue = append(queue, nbr)
			}
		}
	}

	return order, nil
}
