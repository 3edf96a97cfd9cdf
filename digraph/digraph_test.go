package digraph_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/nbowd/graphsearch/digraph"
)

//----------------------------------------------------------------------------//
// Construction Tests
//----------------------------------------------------------------------------//

// TestAddVertex_GrowsMatrix verifies dynamic growth and index assignment.
func TestAddVertex_GrowsMatrix(t *testing.T) {
	g := digraph.NewGraph()
	for want := 0; want < 4; want++ {
		if got := g.AddVertex(); got != want {
			t.Errorf("AddVertex() = %d; want %d", got, want)
		}
	}
	if g.VertexCount() != 4 {
		t.Errorf("VertexCount() = %d; want 4", g.VertexCount())
	}
	// Freshly grown rows must hold no edges.
	for _, e := range g.Edges() {
		t.Errorf("unexpected edge %+v in empty matrix", e)
	}
}

// TestAddEdge_Errors verifies input validation for AddEdge.
func TestAddEdge_Errors(t *testing.T) {
	g := digraph.NewGraph()
	g.AddVertex()
	g.AddVertex()

	cases := []struct {
		name     string
		src, dst int
		weight   int64
		err      error
	}{
		{"SrcOutOfRange", 5, 0, 1, digraph.ErrVertexNotFound},
		{"DstOutOfRange", 0, 5, 1, digraph.ErrVertexNotFound},
		{"NegativeSrc", -1, 0, 1, digraph.ErrVertexNotFound},
		{"SelfLoop", 1, 1, 1, digraph.ErrSelfLoop},
		{"ZeroWeight", 0, 1, 0, digraph.ErrNonPositiveWeight},
		{"NegativeWeight", 0, 1, -3, digraph.ErrNonPositiveWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := g.AddEdge(tc.src, tc.dst, tc.weight); !errors.Is(err, tc.err) {
				t.Errorf("AddEdge(%d,%d,%d) error = %v; want %v",
					tc.src, tc.dst, tc.weight, err, tc.err)
			}
		})
	}
}

// TestAddEdge_Directed verifies the reverse matrix entry stays untouched.
func TestAddEdge_Directed(t *testing.T) {
	g := digraph.NewGraph()
	g.AddVertex()
	g.AddVertex()
	if err := g.AddEdge(0, 1, 7); err != nil {
		t.Fatalf("AddEdge error: %v", err)
	}

	if !g.HasEdge(0, 1) {
		t.Error("HasEdge(0,1) = false; want true")
	}
	if g.HasEdge(1, 0) {
		t.Error("HasEdge(1,0) = true; want false (directed)")
	}
	if got := g.Weight(0, 1); got != 7 {
		t.Errorf("Weight(0,1) = %d; want 7", got)
	}
}

// TestEdges_RowMajor verifies edge listing order and content.
func TestEdges_RowMajor(t *testing.T) {
	g, err := digraph.NewGraphFromEdges([]digraph.Edge{
		{From: 1, To: 2, Weight: 4},
		{From: 0, To: 1, Weight: 10},
		{From: 0, To: 2, Weight: 5},
	})
	if err != nil {
		t.Fatalf("NewGraphFromEdges error: %v", err)
	}
	want := []digraph.Edge{
		{From: 0, To: 1, Weight: 10},
		{From: 0, To: 2, Weight: 5},
		{From: 1, To: 2, Weight: 4},
	}
	if got := g.Edges(); !reflect.DeepEqual(got, want) {
		t.Errorf("Edges() = %v; want %v", got, want)
	}
}

//----------------------------------------------------------------------------//
// Path Validation Tests
//----------------------------------------------------------------------------//

// TestIsValidPath uses the assignment's matrix shape:
// 0→1(10), 4→0(12), 1→4(15), 4→3(3), 3→1(5), 2→1(23), 3→2(7).
func TestIsValidPath(t *testing.T) {
	g, err := digraph.NewGraphFromEdges([]digraph.Edge{
		{0, 1, 10}, {4, 0, 12}, {1, 4, 15}, {4, 3, 3},
		{3, 1, 5}, {2, 1, 23}, {3, 2, 7},
	})
	if err != nil {
		t.Fatalf("NewGraphFromEdges error: %v", err)
	}

	cases := []struct {
		name string
		path []int
		want bool
	}{
		{"Empty", nil, true},
		{"Single", []int{2}, true},
		{"SingleOutOfRange", []int{9}, false},
		{"Forward", []int{0, 1, 4, 3}, true},
		{"MissingHop", []int{1, 3, 2, 1}, false},
		{"WrongDirection", []int{0, 4}, false},
		{"RightDirection", []int{4, 0}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.IsValidPath(tc.path); got != tc.want {
				t.Errorf("IsValidPath(%v) = %v; want %v", tc.path, got, tc.want)
			}
		})
	}
}
