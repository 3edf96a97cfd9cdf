package maze_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nbowd/graphsearch/maze"
)

// mustParse parses rows or fails the test.
func mustParse(t *testing.T, rows []string) *maze.Grid {
	t.Helper()
	g, err := maze.ParseGrid(rows)
	require.NoError(t, err)

	return g
}

// requireWalk asserts that path is a contiguous orthogonal walk over open
// cells from start to exit.
func requireWalk(t *testing.T, g *maze.Grid, path []maze.Cell) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, g.Start, path[0])
	require.Equal(t, g.Exit, path[len(path)-1])
	for i, c := range path {
		require.False(t, g.IsWall(c), "path crosses wall at %v", c)
		if i > 0 {
			dr, dc := c.Row-path[i-1].Row, c.Col-path[i-1].Col
			require.Equal(t, 1, abs(dr)+abs(dc), "non-orthogonal step %v→%v", path[i-1], c)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// TestSolve_SpecimenGrid checks the canonical 3×3 maze: the shortest route
// takes 4 unit steps through 5 cells.
func TestSolve_SpecimenGrid(t *testing.T) {
	g := mustParse(t, []string{
		"S.#",
		"...",
		"#.E",
	})

	sol, err := maze.Solve(g)
	require.NoError(t, err)
	require.Equal(t, int64(4), sol.Cost)
	require.Len(t, sol.Path, 5)
	requireWalk(t, g, sol.Path)
}

// TestSolve_EnclosedStart verifies the NoPath outcome when walls fully
// enclose the start.
func TestSolve_EnclosedStart(t *testing.T) {
	g := mustParse(t, []string{
		"S#.",
		"##.",
		"..E",
	})

	_, err := maze.Solve(g)
	require.ErrorIs(t, err, maze.ErrNoPath)
}

// TestSolve_DetourAroundWall forces the search around a long interior wall.
func TestSolve_DetourAroundWall(t *testing.T) {
	g := mustParse(t, []string{
		"S....",
		"####.",
		"E....",
	})

	sol, err := maze.Solve(g)
	require.NoError(t, err)
	// Right 4, down 2, left 4 = 10 steps.
	require.Equal(t, int64(10), sol.Cost)
	require.Len(t, sol.Path, 11)
	requireWalk(t, g, sol.Path)
}

// TestSolve_StepCost verifies costs scale with the configured step cost
// while the route stays the same.
func TestSolve_StepCost(t *testing.T) {
	g := mustParse(t, []string{
		"S.#",
		"...",
		"#.E",
	})

	sol, err := maze.Solve(g, maze.WithStepCost(3))
	require.NoError(t, err)
	require.Equal(t, int64(12), sol.Cost)
	require.Len(t, sol.Path, 5)
}

// TestSolve_BadStepCost surfaces the option violation.
func TestSolve_BadStepCost(t *testing.T) {
	g := mustParse(t, []string{"SE"})
	_, err := maze.Solve(g, maze.WithStepCost(0))
	require.ErrorIs(t, err, maze.ErrOptionViolation)
}

// TestSolve_Conn8 verifies diagonal movement shortens an otherwise blocked
// maze to a single step.
func TestSolve_Conn8(t *testing.T) {
	rows := []string{
		"S#",
		"#E",
	}
	g := mustParse(t, rows)

	// Orthogonally the exit is sealed off.
	_, err := maze.Solve(g)
	require.ErrorIs(t, err, maze.ErrNoPath)

	// Diagonally it is one move away.
	sol, err := maze.Solve(g, maze.WithConnectivity(maze.Conn8))
	require.NoError(t, err)
	require.Equal(t, int64(1), sol.Cost)
	require.Equal(t, []maze.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 1}}, sol.Path)
}

// TestSolve_AdjacentStartExit verifies the one-step maze.
func TestSolve_AdjacentStartExit(t *testing.T) {
	g := mustParse(t, []string{"SE"})
	sol, err := maze.Solve(g)
	require.NoError(t, err)
	require.Equal(t, int64(1), sol.Cost)
	require.Equal(t, []maze.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, sol.Path)
}

// TestSolve_VisitsEachCellOnce verifies no cell repeats on the returned path.
func TestSolve_VisitsEachCellOnce(t *testing.T) {
	g := mustParse(t, []string{
		"S...",
		".##.",
		".##.",
		"...E",
	})

	sol, err := maze.Solve(g)
	require.NoError(t, err)
	seen := make(map[maze.Cell]bool)
	for _, c := range sol.Path {
		require.False(t, seen[c], "cell %v repeated", c)
		seen[c] = true
	}
	require.Equal(t, int64(6), sol.Cost)
	requireWalk(t, g, sol.Path)
}
