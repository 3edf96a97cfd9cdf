package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nbowd/graphsearch/digraph"
)

// ErrStartRequired indicates a traversal command was run without --start.
var ErrStartRequired = errors.New("cli: --start is required")

// newDFSCmd prints a depth-first visit order.
func newDFSCmd() *cobra.Command {
	var start string
	cmd := &cobra.Command{
		Use:   "dfs <graph.toml>",
		Short: "Run depth-first search from a start vertex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTraversal(cmd, args[0], start, traverseDFS)
		},
	}
	cmd.Flags().StringVarP(&start, "start", "s", "", "start vertex (name or index)")

	return cmd
}

// newBFSCmd prints a breadth-first visit order.
func newBFSCmd() *cobra.Command {
	var start string
	cmd := &cobra.Command{
		Use:   "bfs <graph.toml>",
		Short: "Run breadth-first search from a start vertex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTraversal(cmd, args[0], start, traverseBFS)
		},
	}
	cmd.Flags().StringVarP(&start, "start", "s", "", "start vertex (name or index)")

	return cmd
}

// traversal kind selectors for runTraversal.
const (
	traverseDFS = "dfs"
	traverseBFS = "bfs"
)

// runTraversal loads the graph and dispatches to the representation's
// DFS or BFS, printing the visit order space-separated.
func runTraversal(cmd *cobra.Command, path, start, kind string) error {
	if start == "" {
		return ErrStartRequired
	}
	logger := loggerFromContext(cmd.Context())

	lg, err := loadGraphFile(path)
	if err != nil {
		return err
	}

	if lg.undirected != nil {
		logger.Debug("loaded undirected graph", "vertices", lg.undirected.VertexCount())
		var order []string
		if kind == traverseDFS {
			order, err = lg.undirected.DFS(start)
		} else {
			order, err = lg.undirected.BFS(start)
		}
		if err != nil {
			return err
		}
		cmd.Println(strings.Join(order, " "))

		return nil
	}

	src, err := strconv.Atoi(start)
	if err != nil {
		return fmt.Errorf("cli: directed graphs use integer vertex indices: %w", err)
	}
	logger.Debug("loaded directed graph", "vertices", lg.directed.VertexCount())
	var order []int
	if kind == traverseDFS {
		order, err = lg.directed.DFS(src)
	} else {
		order, err = lg.directed.BFS(src)
	}
	if err != nil {
		return err
	}
	cmd.Println(joinInts(order))

	return nil
}

// newCycleCmd reports whether the loaded graph contains a cycle.
func newCycleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cycle <graph.toml>",
		Short: "Report whether the graph contains a cycle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lg, err := loadGraphFile(args[0])
			if err != nil {
				return err
			}
			var has bool
			if lg.undirected != nil {
				has = lg.undirected.HasCycle()
			} else {
				has = lg.directed.HasCycle()
			}
			cmd.Println(has)

			return nil
		},
	}
}

// newDijkstraCmd prints single-source shortest distances for a directed
// graph, one "vertex distance" pair per line; unreachable vertices print
// "inf".
func newDijkstraCmd() *cobra.Command {
	var (
		source int
		dest   int
	)
	cmd := &cobra.Command{
		Use:   "dijkstra <graph.toml>",
		Short: "Compute shortest distances from a source vertex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			lg, err := loadGraphFile(args[0])
			if err != nil {
				return err
			}
			if lg.directed == nil {
				return errors.New("cli: dijkstra requires a directed weighted graph")
			}
			logger.Debug("loaded directed graph", "vertices", lg.directed.VertexCount())

			dist, prev, err := lg.directed.Dijkstra(source, digraph.WithReturnPath())
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("dest") {
				if dest < 0 || dest >= len(dist) {
					return fmt.Errorf("cli: destination %d: %w", dest, digraph.ErrVertexNotFound)
				}
				if dist[dest] == digraph.Inf {
					return fmt.Errorf("cli: vertex %d is unreachable from %d", dest, source)
				}
				path := digraph.ReconstructPath(prev, source, dest)
				cmd.Printf("%s (cost %d)\n", joinInts(path), dist[dest])

				return nil
			}

			for v, d := range dist {
				if d == digraph.Inf {
					cmd.Printf("%d inf\n", v)
					continue
				}
				cmd.Printf("%d %d\n", v, d)
			}

			return nil
		},
	}
	cmd.Flags().IntVarP(&source, "source", "s", 0, "source vertex index")
	cmd.Flags().IntVarP(&dest, "dest", "d", 0, "print the shortest path to this vertex")

	return cmd
}

// joinInts renders ints space-separated.
func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}

	return strings.Join(parts, " ")
}
