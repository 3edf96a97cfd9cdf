package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/nbowd/graphsearch/digraph"
	"github.com/nbowd/graphsearch/maze"
	"github.com/nbowd/graphsearch/ugraph"
)

// Sentinel errors for graph-file loading.
var (
	// ErrBadGraphKind indicates a kind other than "undirected" or "directed".
	ErrBadGraphKind = errors.New("cli: graph kind must be \"undirected\" or \"directed\"")

	// ErrMixedIDs indicates integer endpoints in an undirected file or
	// named endpoints in a directed file.
	ErrMixedIDs = errors.New("cli: edge endpoints do not match the graph kind")
)

// graphFile is the TOML shape of a graph description:
//
//	kind = "undirected"          # or "directed"
//	vertices = ["A", "B", "C"]   # undirected: names; directed: omitted
//
//	[[edges]]
//	from = "A"
//	to = "B"
//	weight = 3                   # directed only; default 1
type graphFile struct {
	Kind     string    `toml:"kind"`
	Vertices []string  `toml:"vertices"`
	Edges    []edgeDef `toml:"edges"`
}

// edgeDef is one edge entry. Undirected files name endpoints via from/to,
// directed files index them via from_id/to_id.
type edgeDef struct {
	From   string `toml:"from"`
	To     string `toml:"to"`
	FromID int    `toml:"from_id"`
	ToID   int    `toml:"to_id"`
	Weight int64  `toml:"weight"`
}

// loadedGraph is the result of loadGraphFile: exactly one of the two
// representations is non-nil, matching the file's declared kind.
type loadedGraph struct {
	undirected *ugraph.Graph
	directed   *digraph.Graph
}

// loadGraphFile reads and validates a TOML graph description.
func loadGraphFile(path string) (*loadedGraph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cli: read %s: %w", path, err)
	}
	var gf graphFile
	if err = toml.Unmarshal(data, &gf); err != nil {
		return nil, fmt.Errorf("cli: parse %s: %w", path, err)
	}

	switch gf.Kind {
	case "undirected":
		g, err := buildUndirected(&gf)
		if err != nil {
			return nil, err
		}
		return &loadedGraph{undirected: g}, nil
	case "directed":
		g, err := buildDirected(&gf)
		if err != nil {
			return nil, err
		}
		return &loadedGraph{directed: g}, nil
	default:
		return nil, fmt.Errorf("%w: got %q", ErrBadGraphKind, gf.Kind)
	}
}

// buildUndirected assembles a ugraph.Graph from named vertices and edges.
func buildUndirected(gf *graphFile) (*ugraph.Graph, error) {
	g := ugraph.NewGraph()
	for _, v := range gf.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("cli: vertex %q: %w", v, err)
		}
	}
	for _, e := range gf.Edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("%w: undirected edges need from/to names", ErrMixedIDs)
		}
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("cli: edge %s-%s: %w", e.From, e.To, err)
		}
	}

	return g, nil
}

// buildDirected assembles a digraph.Graph from indexed edges, growing the
// matrix to cover the largest index. Weight defaults to 1.
func buildDirected(gf *graphFile) (*digraph.Graph, error) {
	edges := make([]digraph.Edge, 0, len(gf.Edges))
	for _, e := range gf.Edges {
		if e.From != "" || e.To != "" {
			return nil, fmt.Errorf("%w: directed edges need from_id/to_id indices", ErrMixedIDs)
		}
		w := e.Weight
		if w == 0 {
			w = 1
		}
		edges = append(edges, digraph.Edge{From: e.FromID, To: e.ToID, Weight: w})
	}

	return digraph.NewGraphFromEdges(edges)
}

// loadMazeFile reads a plain-text grid file into a maze.Grid. Trailing
// blank lines are ignored; everything else is handed to ParseGrid.
func loadMazeFile(path string) (*maze.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cli: read %s: %w", path, err)
	}
	rows := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}

	return maze.ParseGrid(rows)
}
