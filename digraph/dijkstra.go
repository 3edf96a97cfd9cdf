package digraph

import "container/heap"

// Dijkstra computes shortest distances from src to every vertex.
//
// Returns:
//
//   - dist: slice indexed by vertex; dist[src] == 0, unreachable vertices
//     hold the Inf sentinel.
//   - prev: predecessor slice when WithReturnPath is set (nil otherwise);
//     prev[v] == -1 for the source and for unreached vertices.
//   - err:  ErrStartVertexNotFound if src is out of range.
//
// The loop repeatedly pops the minimum-distance frontier vertex, skips
// stale heap entries (lazy deletion in place of decrease-key), finalizes
// the vertex, and relaxes its outgoing row. Ties between equal-distance
// vertices fall to heap order; callers must not depend on tie order.
// Complexity: O(V² log V) time on the dense matrix, O(V + E) memory.
func (g *Graph) Dijkstra(src int, opts ...DijkstraOption) ([]int64, []int, error) {
	o := DefaultDijkstraOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.inRange(src) {
		return nil, nil, ErrStartVertexNotFound
	}

	dist := make([]int64, g.n)
	for i := range dist {
		dist[i] = Inf
	}
	dist[src] = 0

	var prev []int
	if o.ReturnPath {
		prev = make([]int, g.n)
		for i := range prev {
			prev[i] = -1
		}
	}

	finalized := make([]bool, g.n)
	pq := make(distHeap, 0, g.n)
	heap.Init(&pq)
	heap.Push(&pq, distItem{id: src, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(distItem)
		u := item.id
		if finalized[u] {
			// Stale entry left behind by a later relaxation.
			continue
		}
		finalized[u] = true

		for v := 0; v < g.n; v++ {
			w := g.w[u][v]
			if w == 0 || finalized[v] {
				continue
			}
			if cand := dist[u] + w; cand < dist[v] {
				dist[v] = cand
				if prev != nil {
					prev[v] = u
				}
				heap.Push(&pq, distItem{id: v, dist: cand})
			}
		}
	}

	return dist, prev, nil
}

// ReconstructPath rebuilds the src→dst path from a predecessor slice
// produced by Dijkstra with WithReturnPath. Returns nil if dst was never
// reached.
// Complexity: O(L) where L is the path length.
func ReconstructPath(prev []int, src, dst int) []int {
	if dst < 0 || dst >= len(prev) {
		return nil
	}
	if dst != src && prev[dst] == -1 {
		return nil
	}
	var rev []int
	for cur := dst; ; cur = prev[cur] {
		rev = append(rev, cur)
		if cur == src {
			break
		}
	}
	path := make([]int, len(rev))
	for i := range rev {
		path[i] = rev[len(rev)-1-i]
	}

	return path
}

// distItem pairs a vertex with its tentative distance for heap ordering.
type distItem struct {
	id   int
	dist int64
}

// distHeap is a min-heap of distItem ordered by dist ascending. Stale
// duplicates are permitted; Dijkstra skips them on pop.
type distHeap []distItem

func (h distHeap) Len() int            { return len(h) }
func (h distHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h distHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *distHeap) Push(x interface{}) { *h = append(*h, x.(distItem)) }
func (h *distHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
