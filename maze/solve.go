package maze

import "container/heap"

// Solve finds the minimal-cost path from g.Start to g.Exit.
//
// The search is Dijkstra's algorithm restricted to the implicit grid
// graph: a min-heap keyed by tentative distance, a distance map defaulting
// to "unseen", lazy deletion of stale heap entries, and predecessor
// tracking for path reconstruction. It terminates as soon as the exit is
// finalized; with uniform step cost this behaves like BFS, but the
// priority queue keeps it correct for any positive cost.
// Walls are never enqueued.
//
// Returns a Solution whose Path runs start..exit inclusive, or ErrNoPath
// if the exit is unreachable; ErrOptionViolation for bad options.
// Complexity: O(W×H log(W×H)) time, O(W×H) memory.
func Solve(g *Grid, opts ...Option) (*Solution, error) {
	o := DefaultSolveOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if g.Start == g.Exit {
		return &Solution{Path: []Cell{g.Start}, Cost: 0}, nil
	}

	offsets := neighborOffsets(o.Conn)
	dist := make(map[Cell]int64, g.Width*g.Height)
	prev := make(map[Cell]Cell, g.Width*g.Height)
	finalized := make(map[Cell]bool, g.Width*g.Height)

	pq := make(cellHeap, 0, g.Width+g.Height)
	heap.Init(&pq)
	dist[g.Start] = 0
	heap.Push(&pq, cellItem{cell: g.Start, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(cellItem)
		cur := item.cell
		if finalized[cur] {
			// Stale duplicate from an earlier relaxation.
			continue
		}
		finalized[cur] = true
		if cur == g.Exit {
			return &Solution{
				Path: reconstruct(prev, g.Start, g.Exit),
				Cost: item.dist,
			}, nil
		}

		for _, d := range offsets {
			nbr := Cell{Row: cur.Row + d[0], Col: cur.Col + d[1]}
			if g.IsWall(nbr) || finalized[nbr] {
				continue
			}
			cand := item.dist + o.StepCost
			if best, seen := dist[nbr]; seen && cand >= best {
				continue
			}
			dist[nbr] = cand
			prev[nbr] = cur
			heap.Push(&pq, cellItem{cell: nbr, dist: cand})
		}
	}

	return nil, ErrNoPath
}

// reconstruct walks the predecessor map exit→start and reverses the result.
func reconstruct(prev map[Cell]Cell, start, exit Cell) []Cell {
	var rev []Cell
	for cur := exit; ; cur = prev[cur] {
		rev = append(rev, cur)
		if cur == start {
			break
		}
	}
	path := make([]Cell, len(rev))
	for i := range rev {
		path[i] = rev[len(rev)-1-i]
	}

	return path
}

// cellItem pairs a cell with its tentative distance for heap ordering.
type cellItem struct {
	cell Cell
	dist int64
}

// cellHeap is a min-heap of cellItem ordered by dist ascending. Stale
// duplicates are permitted; Solve skips them on pop.
type cellHeap []cellItem

func (h cellHeap) Len() int            { return len(h) }
func (h cellHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h cellHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *cellHeap) Push(x interface{}) { *h = append(*h, x.(cellItem)) }
func (h *cellHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
