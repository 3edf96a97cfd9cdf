// Package digraph implements a directed weighted graph backed by an
// adjacency matrix, together with traversals and Dijkstra's shortest paths.
//
// What:
//
//   - Graph stores a V×V matrix of int64 weights; matrix[i][j] > 0 encodes a
//     directed edge i→j with that weight, 0 encodes "no edge".
//   - AddVertex grows the matrix by one row and column and returns the new
//     vertex index; vertices are dense integers 0..V-1.
//   - DFS and BFS enumerate each row's positive entries in ascending index
//     order.
//   - Dijkstra computes single-source shortest distances with a min-heap
//     priority queue and the lazy-deletion decrease-key pattern.
//   - HasCycle detects directed cycles via three-color DFS marking.
//
// Why:
//
//   - The dense matrix makes edge lookups O(1) and suits the small, dense
//     teaching graphs this package targets.
//   - Ascending-index neighbor enumeration gives fully deterministic
//     traversal output.
//
// Complexity:
//
//   - AddVertex:  O(V) (row/column growth).
//   - AddEdge:    O(1).
//   - DFS / BFS:  O(V²) time (row scans), O(V) memory.
//   - Dijkstra:   O(V² log V) time on the dense matrix, O(V + E) memory.
//   - HasCycle:   O(V²) time, O(V) memory.
//
// Unreachable vertices in Dijkstra's result carry the Inf sentinel
// (math.MaxInt64); they are never silently omitted. This is the package's
// documented convention.
//
// Errors:
//
//   - ErrVertexNotFound:      an edge or query referenced an out-of-range index.
//   - ErrSelfLoop:            AddEdge called with src == dst.
//   - ErrNonPositiveWeight:   AddEdge called with weight <= 0 (0 means "no edge").
//   - ErrStartVertexNotFound: a traversal or Dijkstra started out of range.
//
// As with ugraph, a Graph is a plain mutable value: no internal locking, and
// mutation during an in-flight traversal is undefined behavior.
package digraph
