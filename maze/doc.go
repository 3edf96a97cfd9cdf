// Package maze parses character grids into mazes and solves them with a
// modified Dijkstra search over the implicit grid graph.
//
// What:
//
//   - ParseGrid reads a rectangular grid of runes: '#' wall, '.' (or space)
//     open, 'S' start, 'E' exit.
//   - Solve returns the minimal-cost cell sequence from start to exit, or
//     ErrNoPath when walls fully separate them.
//   - Step cost and connectivity (orthogonal or including diagonals) are
//     configurable, so the search generalizes to weighted terrain even
//     though the default uniform cost degenerates toward BFS behavior.
//
// Why:
//
//   - The grid is a graph nobody has to build: each open cell is a node and
//     adjacency is implied by coordinates, which keeps memory at O(W×H).
//   - Using a priority queue plus a distance map (rather than a plain FIFO)
//     keeps the solver correct if per-step costs stop being uniform.
//
// Algorithm:
//
// Cells move through three states: UNSEEN (distance unknown, not queued),
// FRONTIER (best-known distance, in the queue, possibly with stale
// duplicates), FINALIZED (popped with the globally smallest remaining
// distance; permanent). The solver seeds distance[start]=0, repeatedly pops
// the minimum entry, skips stale ones (lazy deletion in place of
// decrease-key), relaxes open neighbors, and stops as soon as the exit is
// finalized. Walls are never enqueued. Predecessors are tracked so the path
// can be reconstructed exit→start and reversed.
//
// Complexity:
//
//   - Time:   O(W×H log(W×H))
//   - Memory: O(W×H)
//
// Errors:
//
//   - ErrEmptyGrid / ErrRaggedGrid / ErrUnknownCell: malformed input.
//   - ErrNoStart / ErrNoExit:                        missing 'S' or 'E' marker.
//   - ErrMultipleStart / ErrMultipleExit:            duplicated markers.
//   - ErrNoPath:  the exit is unreachable — a normal outcome, reported as a
//     distinct sentinel so it can never be mistaken for a trivial path.
//   - ErrOptionViolation: a non-positive step cost was configured.
package maze
