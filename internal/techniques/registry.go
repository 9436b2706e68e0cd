// Package techniques implements the human-solving deduction library of
// spec.md §4.3. Every technique is a pure function of grid state: it scans
// a *grid.Grid via its view helpers and, on finding a pattern, applies
// exactly one round of eliminations or an assignment through Cell before
// returning. Grounded file-by-file on the ThoDHa-sudoku teacher's
// internal/sudoku/human/techniques_*.go files and, where the teacher has no
// equivalent, on original_source/src/sudoku/grid.py.
package techniques

import "sudoku-engine/internal/grid"

// Technique inspects g and applies at most one set of eliminations or a
// single assignment, returning whether it changed anything. It never
// returns an error except to propagate a contradiction surfaced by Cell.
type Technique func(g *grid.Grid) (bool, error)

// Ordered is the canonical technique list in the order spec.md §4.3
// numbers them: cheapest first, so the driver restarts from the top after
// any progress.
var Ordered = []Technique{
	HiddenSingle,
	NakedPairs,
	HiddenPairs,
	NakedTriples,
	IntersectionRemoval,
	HiddenSets,
	XWing,
	Swordfish,
	YWing,
	XYZWing,
	RectangleElimination,
	UniqueRectangleType1,
	HiddenUniqueRectangleType1,
	ChuteRemotePairs,
	XYChain,
	BUGPlusOne,
	XCycle,
}
