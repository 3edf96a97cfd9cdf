package maze

import "fmt"

// ParseGrid builds a Grid from text rows. The cell alphabet is '#' for
// walls, '.' or ' ' for open floor, and exactly one 'S' and one 'E' for
// the start and exit markers (both are open cells).
// Returns ErrEmptyGrid, ErrRaggedGrid, ErrUnknownCell, ErrNoStart,
// ErrNoExit, ErrMultipleStart, or ErrMultipleExit on malformed input.
// Complexity: O(W×H) time and memory.
func ParseGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 || len([]rune(rows[0])) == 0 {
		return nil, ErrEmptyGrid
	}

	height := len(rows)
	width := len([]rune(rows[0]))
	g := &Grid{
		Width:  width,
		Height: height,
		Start:  Cell{Row: -1, Col: -1},
		Exit:   Cell{Row: -1, Col: -1},
		walls:  make([][]bool, height),
	}

	for r, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedGrid, r, len(runes), width)
		}
		g.walls[r] = make([]bool, width)
		for c, ch := range runes {
			switch ch {
			case '#':
				g.walls[r][c] = true
			case '.', ' ':
				// open floor
			case 'S':
				if g.Start.Row >= 0 {
					return nil, ErrMultipleStart
				}
				g.Start = Cell{Row: r, Col: c}
			case 'E':
				if g.Exit.Row >= 0 {
					return nil, ErrMultipleExit
				}
				g.Exit = Cell{Row: r, Col: c}
			default:
				return nil, fmt.Errorf("%w: %q at row %d col %d", ErrUnknownCell, ch, r, c)
			}
		}
	}

	if g.Start.Row < 0 {
		return nil, ErrNoStart
	}
	if g.Exit.Row < 0 {
		return nil, ErrNoExit
	}

	return g, nil
}

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Height && c.Col >= 0 && c.Col < g.Width
}

// IsWall reports whether c is a wall. Out-of-bounds cells count as walls.
// Complexity: O(1).
func (g *Grid) IsWall(c Cell) bool {
	return !g.InBounds(c) || g.walls[c.Row][c.Col]
}

// neighbor offsets, orthogonal first so Conn8 extends Conn4.
var (
	offsets4 = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	offsets8 = [][2]int{
		{-1, 0}, {0, 1}, {1, 0}, {0, -1},
		{-1, 1}, {1, 1}, {1, -1}, {-1, -1},
	}
)

// neighborOffsets returns the movement offsets for the given connectivity.
func neighborOffsets(conn Connectivity) [][2]int {
	if conn == Conn8 {
		return offsets8
	}

	return offsets4
}
