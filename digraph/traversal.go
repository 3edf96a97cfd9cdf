package digraph

// DFS returns the vertices reachable from start in depth-first order.
// Neighbors are the positive entries of each matrix row, explored in
// ascending index order; the traversal uses an explicit stack.
// Returns ErrStartVertexNotFound if start is out of range.
// Complexity: O(V²) time, O(V) memory.
func (g *Graph) DFS(start int, opts ...Option) ([]int, error) {
	o := DefaultTraverseOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.inRange(start) {
		return nil, ErrStartVertexNotFound
	}

	order := make([]int, 0, g.n)
	visited := make([]bool, g.n)
	stack := []int{start}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[id] {
			continue
		}
		visited[id] = true
		order = append(order, id)
		if id == o.Target {
			return order, nil
		}
		// Push in descending index order so the lowest index pops first.
		for dst := g.n - 1; dst >= 0; dst-- {
			if g.w[id][dst] > 0 && !visited[dst] {
				stack = append(stack, dst)
			}
		}
	}

	return order, nil
}

// BFS returns the vertices reachable from start level by level, visiting
// each row's positive entries in ascending index order.
// Returns ErrStartVertexNotFound if start is out of range.
// Complexity: O(V²) time, O(V) memory.
func (g *Graph) BFS(start int, opts ...Option) ([]int, error) {
	o := DefaultTraverseOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.inRange(start) {
		return nil, ErrStartVertexNotFound
	}

	order := make([]int, 0, g.n)
	visited := make([]bool, g.n)
	queue := []int{start}
	visited[start] = true

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)
		if id == o.Target {
			return order, nil
		}
		for dst := 0; dst < g.n; dst++ {
			if g.w[id][dst] > 0 && !visited[dst] {
				visited[dst] = true
				queue = append(queue, dst)
			}
		}
	}

	return order, nil
}
