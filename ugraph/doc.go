// Package ugraph implements an undirected graph backed by an adjacency list,
// together with the classic traversals that operate on it.
//
// What:
//
//   - Graph stores, per vertex, an insertion-ordered list of neighbors.
//   - AddVertex / AddEdge build the graph; AddEdge enforces the symmetry
//     invariant: after AddEdge(a, b), b is in a's list and a is in b's list.
//   - DFS and BFS return the visit order from a start vertex, exploring
//     neighbors in the order they were added.
//   - HasCycle detects a back-edge over the whole forest, ignoring the
//     immediate parent edge of each vertex.
//   - ConnectedComponents groups vertices into their components.
//
// Why:
//
//   - Teaching and prototyping: the adjacency list maps one-to-one onto the
//     textbook presentation of undirected graphs.
//   - Deterministic output: insertion-ordered neighbor lists make traversal
//     orders reproducible, which matters for tests and worked examples.
//
// Complexity:
//
//   - AddVertex / AddEdge:      O(1) amortized (AddEdge is O(d) to reject duplicates).
//   - DFS / BFS:                O(V + E) time, O(V) memory.
//   - HasCycle:                 O(V + E) time, O(V) memory.
//   - ConnectedComponents:      O(V + E) time, O(V) memory.
//
// Errors:
//
//   - ErrEmptyVertexID:       AddVertex called with an empty ID.
//   - ErrVertexNotFound:      AddEdge referenced a vertex that was never added.
//   - ErrSelfLoop:            AddEdge called with identical endpoints.
//   - ErrStartVertexNotFound: DFS or BFS started from an unknown vertex.
//
// A Graph is a plain mutable value with no internal locking; callers that
// share one across goroutines must synchronize externally, and mutating a
// graph during an in-flight traversal is undefined behavior.
package ugraph
