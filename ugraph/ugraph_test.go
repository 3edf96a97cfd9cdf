package ugraph_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/nbowd/graphsearch/ugraph"
)

//----------------------------------------------------------------------------//
// Construction Tests
//----------------------------------------------------------------------------//

// TestAddVertex_Idempotent verifies that adding a vertex twice leaves the
// graph identical to adding it once.
func TestAddVertex_Idempotent(t *testing.T) {
	g := ugraph.NewGraph()
	if err := g.AddVertex("A"); err != nil {
		t.Fatalf("AddVertex(A) error: %v", err)
	}
	if err := g.AddVertex("A"); err != nil {
		t.Fatalf("second AddVertex(A) error: %v", err)
	}
	if got := g.Vertices(); !reflect.DeepEqual(got, []string{"A"}) {
		t.Errorf("Vertices() = %v; want [A]", got)
	}
}

// TestAddVertex_EmptyID verifies the empty-ID rejection.
func TestAddVertex_EmptyID(t *testing.T) {
	g := ugraph.NewGraph()
	if err := g.AddVertex(""); !errors.Is(err, ugraph.ErrEmptyVertexID) {
		t.Errorf("AddVertex(\"\") error = %v; want ErrEmptyVertexID", err)
	}
}

// TestAddEdge_Errors verifies validation of AddEdge inputs.
func TestAddEdge_Errors(t *testing.T) {
	g := ugraph.NewGraph()
	_ = g.AddVertex("A")

	cases := []struct {
		name string
		a, b string
		err  error
	}{
		{"UnknownFirst", "X", "A", ugraph.ErrVertexNotFound},
		{"UnknownSecond", "A", "X", ugraph.ErrVertexNotFound},
		{"SelfLoop", "A", "A", ugraph.ErrSelfLoop},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := g.AddEdge(tc.a, tc.b); !errors.Is(err, tc.err) {
				t.Errorf("AddEdge(%s,%s) error = %v; want %v", tc.a, tc.b, err, tc.err)
			}
		})
	}
}

// TestAddEdge_Symmetry verifies the adjacency-list symmetry invariant:
// after AddEdge(a,b), b is in a's list and a is in b's list.
func TestAddEdge_Symmetry(t *testing.T) {
	g := ugraph.NewGraph()
	_ = g.AddVertex("A")
	_ = g.AddVertex("B")
	if err := g.AddEdge("A", "B"); err != nil {
		t.Fatalf("AddEdge error: %v", err)
	}

	if !g.HasEdge("A", "B") || !g.HasEdge("B", "A") {
		t.Errorf("edge A-B not symmetric: A→B=%v B→A=%v", g.HasEdge("A", "B"), g.HasEdge("B", "A"))
	}
}

// TestAddEdge_DuplicateSkipped verifies duplicate edges are not inserted.
func TestAddEdge_DuplicateSkipped(t *testing.T) {
	g := ugraph.NewGraph()
	_ = g.AddVertex("A")
	_ = g.AddVertex("B")
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "A")

	if got := g.Neighbors("A"); !reflect.DeepEqual(got, []string{"B"}) {
		t.Errorf("Neighbors(A) = %v; want [B]", got)
	}
	if got := g.Neighbors("B"); !reflect.DeepEqual(got, []string{"A"}) {
		t.Errorf("Neighbors(B) = %v; want [A]", got)
	}
}

// TestNeighbors_InsertionOrder verifies neighbor lists preserve the order
// edges were added.
func TestNeighbors_InsertionOrder(t *testing.T) {
	g := ugraph.NewGraph()
	for _, v := range []string{"A", "D", "B", "C"} {
		_ = g.AddVertex(v)
	}
	_ = g.AddEdge("A", "D")
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("A", "C")

	if got := g.Neighbors("A"); !reflect.DeepEqual(got, []string{"D", "B", "C"}) {
		t.Errorf("Neighbors(A) = %v; want [D B C]", got)
	}
}

// TestEdges_EachOnce verifies Edges lists every edge exactly once.
func TestEdges_EachOnce(t *testing.T) {
	g, err := ugraph.NewGraphFromEdges([][2]string{{"A", "B"}, {"B", "C"}, {"A", "C"}})
	if err != nil {
		t.Fatalf("NewGraphFromEdges error: %v", err)
	}
	if got := len(g.Edges()); got != 3 {
		t.Errorf("len(Edges()) = %d; want 3", got)
	}
}

//----------------------------------------------------------------------------//
// Path Validation Tests
//----------------------------------------------------------------------------//

// TestIsValidPath exercises the walk validator on the assignment's shape:
// A-B, A-C, B-C, B-D, C-D, C-E, D-E.
func TestIsValidPath(t *testing.T) {
	g, err := ugraph.NewGraphFromEdges([][2]string{
		{"A", "B"}, {"A", "C"}, {"B", "C"}, {"B", "D"},
		{"C", "D"}, {"C", "E"}, {"D", "E"},
	})
	if err != nil {
		t.Fatalf("NewGraphFromEdges error: %v", err)
	}

	cases := []struct {
		name string
		path []string
		want bool
	}{
		{"Empty", nil, true},
		{"SingleKnown", []string{"D"}, true},
		{"SingleUnknown", []string{"Z"}, false},
		{"Walk", []string{"A", "B", "C"}, true},
		{"LongWalk", []string{"A", "C", "D", "E", "C", "B"}, true},
		{"Broken", []string{"A", "D", "E"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.IsValidPath(tc.path); got != tc.want {
				t.Errorf("IsValidPath(%v) = %v; want %v", tc.path, got, tc.want)
			}
		})
	}
}
