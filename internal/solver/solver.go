// Package solver implements the fixed-point driver of spec.md §4.4: it
// tries the technique library in order, settles the grid after whichever
// technique changes something, and reports one of the four round outcomes.
//
// For the candidate-grid data model, see package grid.
// For the technique implementations, see package techniques.
package solver

import (
	"errors"

	"sudoku-engine/internal/grid"
	"sudoku-engine/internal/techniques"
	"sudoku-engine/pkg/constants"
)

// RoundResult is the outcome of one call to RunRound.
type RoundResult int

const (
	// Solved means every cell is solved after the technique that just ran.
	Solved RoundResult = iota
	// Progress means a technique changed something and the grid is not yet
	// solved; the caller may call RunRound again to continue.
	Progress
	// NoChanges means no technique in the list changed anything — the
	// puzzle is beyond the engine's inference power.
	NoChanges
	// Contradiction means a removal would have left a cell with no
	// candidates, or two cells in the same unit were solved to the same
	// value.
	Contradiction
)

func (r RoundResult) String() string {
	switch r {
	case Solved:
		return "Solved"
	case Progress:
		return "Progress"
	case NoChanges:
		return "NoChanges"
	case Contradiction:
		return "Contradiction"
	}
	return "Unknown"
}

// RunRound tries Ordered techniques in turn, applying at most one to g, and
// settling the grid after any technique that reports progress. A grid with
// nothing left to solve is a fixed point: no technique fires, but the
// round is still Solved, not NoChanges (spec.md §8 scenario S4).
func RunRound(g *grid.Grid) RoundResult {
	if solved(g) {
		return Solved
	}
	for _, technique := range techniques.Ordered {
		changed, err := technique(g)
		if err != nil {
			if errors.Is(err, grid.ErrContradiction) {
				return Contradiction
			}
			panic(err)
		}
		if !changed {
			continue
		}
		if _, err := g.Settle(); err != nil {
			if errors.Is(err, grid.ErrContradiction) {
				return Contradiction
			}
			panic(err)
		}
		if solved(g) {
			return Solved
		}
		return Progress
	}
	return NoChanges
}

func solved(g *grid.Grid) bool {
	for _, cell := range g.Cells(true) {
		if !cell.Solved() {
			return false
		}
	}
	return true
}

// Run calls RunRound repeatedly until a terminal state (Solved, NoChanges,
// or Contradiction), bounded by constants.MaxRounds so a pathological
// technique interaction cannot spin forever.
func Run(g *grid.Grid) (RoundResult, int) {
	for round := 1; round <= constants.MaxRounds; round++ {
		switch result := RunRound(g); result {
		case Progress:
			continue
		default:
			return result, round
		}
	}
	return NoChanges, constants.MaxRounds
}
