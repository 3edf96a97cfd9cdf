// Package maze defines the Grid and Cell types, sentinel errors, and
// solver options.
package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid parsing and solving.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: grid must have at least one row and one column")

	// ErrRaggedGrid indicates rows of differing lengths.
	ErrRaggedGrid = errors.New("maze: all rows must have the same length")

	// ErrUnknownCell indicates a rune outside the '#', '.', ' ', 'S', 'E' alphabet.
	ErrUnknownCell = errors.New("maze: unknown cell character")

	// ErrNoStart / ErrNoExit indicate a missing marker.
	ErrNoStart = errors.New("maze: grid has no start cell 'S'")
	ErrNoExit  = errors.New("maze: grid has no exit cell 'E'")

	// ErrMultipleStart / ErrMultipleExit indicate duplicated markers.
	ErrMultipleStart = errors.New("maze: grid has more than one start cell")
	ErrMultipleExit  = errors.New("maze: grid has more than one exit cell")

	// ErrNoPath indicates the exit is unreachable from the start.
	// This is an expected outcome, not a malfunction.
	ErrNoPath = errors.New("maze: no path from start to exit")

	// ErrOptionViolation indicates an invalid solver option.
	ErrOptionViolation = errors.New("maze: invalid option supplied")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell addresses one grid position by row and column.
type Cell struct {
	Row, Col int
}

// String renders a cell as "(row,col)" for logs and error messages.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid is a parsed maze: wall layout plus the start and exit markers.
// It is immutable once built by ParseGrid.
type Grid struct {
	Width, Height int
	Start, Exit   Cell

	walls [][]bool // walls[row][col]
}

// Option configures solver behavior via functional arguments. An invalid
// option is recorded and surfaced as ErrOptionViolation when Solve runs.
type Option func(*SolveOptions)

// SolveOptions holds tunable parameters for one Solve call.
type SolveOptions struct {
	// Conn chooses 4- or 8-directional movement. Default Conn4.
	Conn Connectivity

	// StepCost is the cost of moving into a neighboring cell. Default 1.
	StepCost int64

	// internal error recorded during option parsing
	err error
}

// DefaultSolveOptions returns a SolveOptions with Conn4 movement and unit
// step cost.
func DefaultSolveOptions() SolveOptions {
	return SolveOptions{Conn: Conn4, StepCost: 1}
}

// WithConnectivity selects 4- or 8-directional movement.
func WithConnectivity(c Connectivity) Option {
	return func(o *SolveOptions) { o.Conn = c }
}

// WithStepCost sets the cost of a single move. Must be positive; zero or
// negative values surface as ErrOptionViolation.
func WithStepCost(cost int64) Option {
	return func(o *SolveOptions) {
		if cost <= 0 {
			o.err = fmt.Errorf("%w: step cost must be positive, got %d", ErrOptionViolation, cost)
			return
		}
		o.StepCost = cost
	}
}

// Solution is the outcome of a successful solve: the minimal-cost cell
// sequence from start to exit inclusive, and its total cost.
type Solution struct {
	Path []Cell
	Cost int64
}
