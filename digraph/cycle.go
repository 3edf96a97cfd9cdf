package digraph

// Vertex visitation states for directed cycle detection.
const (
	white = iota // not yet visited
	gray         // on the current DFS path
	black        // fully explored
)

// cycleFrame is one explicit-stack record: the vertex being explored and
// the next column of its matrix row to examine.
type cycleFrame struct {
	id   int
	next int
}

// HasCycle reports whether the graph contains a directed cycle, using
// three-color DFS marking over every component. An edge into a gray
// vertex (one still on the DFS path) closes a cycle; edges into black
// vertices are forward or cross edges and are ignored.
// Complexity: O(V²) time, O(V) memory.
func (g *Graph) HasCycle() bool {
	state := make([]int, g.n)

	for root := 0; root < g.n; root++ {
		if state[root] != white {
			continue
		}
		if g.pathHasCycle(root, state) {
			return true
		}
	}

	return false
}

// pathHasCycle runs an explicit-stack DFS from root, graying vertices on
// the way down and blackening them on the way back up.
func (g *Graph) pathHasCycle(root int, state []int) bool {
	state[root] = gray
	stack := []cycleFrame{{id: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		advanced := false
		for dst := top.next; dst < g.n; dst++ {
			if g.w[top.id][dst] == 0 {
				continue
			}
			if state[dst] == gray {
				return true
			}
			if state[dst] == white {
				top.next = dst + 1
				state[dst] = gray
				stack = append(stack, cycleFrame{id: dst})
				advanced = true
				break
			}
		}
		if !advanced {
			state[top.id] = black
			stack = stack[:len(stack)-1]
		}
	}

	return false
}
