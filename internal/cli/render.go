package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nbowd/graphsearch/maze"
)

var (
	colorGreen  = lipgloss.Color("35")  // start/exit markers
	colorYellow = lipgloss.Color("220") // path cells
	colorDim    = lipgloss.Color("240") // walls
)

var (
	styleMarker = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	stylePath   = lipgloss.NewStyle().Foreground(colorYellow)
	styleWall   = lipgloss.NewStyle().Foreground(colorDim)
)

// renderSolution draws the grid with the solution path overlaid as '*'.
// Start and exit keep their markers.
func renderSolution(g *maze.Grid, sol *maze.Solution) string {
	onPath := make(map[maze.Cell]bool, len(sol.Path))
	for _, c := range sol.Path {
		onPath[c] = true
	}

	var b strings.Builder
	for row := 0; row < g.Height; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < g.Width; col++ {
			c := maze.Cell{Row: row, Col: col}
			switch {
			case c == g.Start:
				b.WriteString(styleMarker.Render("S"))
			case c == g.Exit:
				b.WriteString(styleMarker.Render("E"))
			case g.IsWall(c):
				b.WriteString(styleWall.Render("#"))
			case onPath[c]:
				b.WriteString(stylePath.Render("*"))
			default:
				b.WriteByte('.')
			}
		}
	}

	return b.String()
}
