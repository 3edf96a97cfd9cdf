// Package graphsearch is an in-memory toolkit for classic graph search:
// traversal, cycle detection, and shortest paths over two complementary
// representations, plus a character-grid maze solver.
//
// 🚀 What is graphsearch?
//
//	A small, focused library that brings together:
//		• ugraph/  — undirected, unweighted graphs over string IDs (adjacency list)
//		• digraph/ — directed, weighted graphs over dense int IDs (adjacency matrix)
//		• maze/    — ASCII grid mazes solved as implicit weighted graphs
//
// Each representation carries the operations that suit it:
//
//	ugraph:  DFS, BFS, HasCycle, ConnectedComponents, IsValidPath
//	digraph: DFS, BFS, HasCycle, Dijkstra (+ path reconstruction)
//	maze:    ParseGrid, Solve (Dijkstra with 4- or 8-connectivity)
//
// ✨ Why two representations?
//
//   - Adjacency lists keep sparse, unweighted neighborhoods cheap to walk
//     and preserve insertion order for deterministic traversal.
//   - Adjacency matrices give O(1) weighted edge lookup, which Dijkstra
//     leans on when relaxing every outgoing edge of a vertex.
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	a square: four vertices, four edges, one cycle.
//
// The cmd/graphsearch binary exposes every operation on the command line,
// loading graphs from TOML files and mazes from plain-text grids.
//
//	go get github.com/nbowd/graphsearch
package graphsearch
