// Package grid implements the candidate-grid data model of spec.md §3: a
// Cell with derived positional metadata, and a Grid of 81 cells with row,
// column, box, band, and stack views plus the cached bi-value/tri-value/
// strong-link collections the technique library scans.
//
// Grounded on internal/sudoku/human/{board,grid,candidates,peers}.go of the
// ThoDHa-sudoku teacher (bitmask candidates, precomputed peer tables) and on
// original_source/src/sudoku/grid.py (basic_solve, strong-link discovery,
// text I/O) where the teacher's board-centric model diverges from spec.md's
// cell/grid split.
package grid

import "sudoku-engine/pkg/constants"

// Grid owns exactly 81 Cells (spec.md §3.2). Row/column/box/band/stack
// views are computed from the shared precomputed index tables in units.go
// rather than stored redundantly, so mutating a cell through one view is
// immediately visible through every other view.
type Grid struct {
	cells      [constants.TotalCells]*Cell
	generation uint64

	biValueGen  uint64
	biValue     []*Cell
	triValueGen uint64
	triValue    []*Cell

	strongLinkGen   uint64
	strongLinkCache map[int][]StrongLink
}

// NewGrid builds a Grid from 81 initial candidate sets in row-major order.
// Each must be non-empty; an empty set is InvalidInput (it can never arise
// from FromText, but a caller constructing a Grid directly could pass one).
// basicSolve runs once before NewGrid returns, per spec.md §4.2.
func NewGrid(initial [constants.TotalCells]Candidates) (*Grid, error) {
	g := &Grid{strongLinkCache: make(map[int][]StrongLink)}
	for idx := 0; idx < constants.TotalCells; idx++ {
		if initial[idx].IsEmpty() {
			row, col := RowOf(idx), ColOf(idx)
			return nil, invalidInputf("R%dC%d was given an empty candidate set", row+1, col+1)
		}
		row, col := RowOf(idx), ColOf(idx)
		g.cells[idx] = newCell(row, col, initial[idx])
	}
	if err := g.checkNoDuplicateSolved(); err != nil {
		return nil, err
	}
	if err := g.basicSolve(); err != nil {
		return nil, err
	}
	return g, nil
}

// Empty builds a Grid with every cell holding all nine candidates
// (spec.md §8 scenario S1).
func Empty() *Grid {
	var initial [constants.TotalCells]Candidates
	for i := range initial {
		initial[i] = All
	}
	g, err := NewGrid(initial)
	if err != nil {
		// Unreachable: an all-candidates grid can never contradict itself.
		panic(err)
	}
	return g
}

func (g *Grid) checkNoDuplicateSolved() error {
	for u := 0; u < constants.GridSize; u++ {
		for _, cells := range [][]*Cell{g.Row(u), g.Column(u), g.Box(u)} {
			seen := make(map[int]*Cell, constants.GridSize)
			for _, cell := range cells {
				v, ok := cell.Value()
				if !ok {
					continue
				}
				if other, dup := seen[v]; dup {
					return contradictionf("%d solved twice in the same unit at R%dC%d and R%dC%d", v, other.Row+1, other.Col+1, cell.Row+1, cell.Col+1)
				}
				seen[v] = cell
			}
		}
	}
	return nil
}

// Cell returns the cell at (row, col).
func (g *Grid) Cell(row, col int) *Cell {
	return g.cells[IndexOf(row, col)]
}

// Row, Column, Box return the 9 cells of unit i. Band, Stack return the 27
// cells of band/stack i. Every call returns a fresh slice of the same
// underlying *Cell pointers (spec.md's Design Notes §9: share storage,
// only enumerations copy).
func (g *Grid) Row(i int) []*Cell    { return g.gather(rowIndices[i][:]) }
func (g *Grid) Column(i int) []*Cell { return g.gather(colIndices[i][:]) }
func (g *Grid) Box(i int) []*Cell    { return g.gather(boxIndices[i][:]) }
func (g *Grid) Band(i int) []*Cell   { return g.gather(bandIndices[i][:]) }
func (g *Grid) Stack(i int) []*Cell  { return g.gather(stackIndices[i][:]) }

// Division returns the unit/band/stack cells for a division and index.
func (g *Grid) Division(div Division, i int) []*Cell {
	switch div {
	case DivRow:
		return g.Row(i)
	case DivColumn:
		return g.Column(i)
	case DivBox:
		return g.Box(i)
	case DivBand:
		return g.Band(i)
	case DivStack:
		return g.Stack(i)
	}
	return nil
}

func (g *Grid) gather(indices []int) []*Cell {
	out := make([]*Cell, len(indices))
	for i, idx := range indices {
		out[i] = g.cells[idx]
	}
	return out
}

// Cells returns all 81 cells, optionally filtered to unsolved ones.
func (g *Grid) Cells(includeSolved bool) []*Cell {
	out := make([]*Cell, 0, constants.TotalCells)
	for _, cell := range g.cells {
		if includeSolved || !cell.Solved() {
			out = append(out, cell)
		}
	}
	return out
}

// VisibleFrom returns cell's peers: up to 20 cells sharing its row,
// column, or box, excluding itself (spec.md §3.2).
func (g *Grid) VisibleFrom(cell *Cell, includeSolved bool) []*Cell {
	idx := IndexOf(cell.Row, cell.Col)
	indices := peerIndices[idx]
	out := make([]*Cell, 0, len(indices))
	for _, peerIdx := range indices {
		peer := g.cells[peerIdx]
		if includeSolved || !peer.Solved() {
			out = append(out, peer)
		}
	}
	return out
}

// Settle is invoked by the solver driver after every technique application
// (spec.md §4.2). It folds each cell's sticky changed flag into a round
// progress signal, re-runs basicSolve to restore the elementary invariant
// after any newly-solved cell, and invalidates the derived caches if
// anything changed.
func (g *Grid) Settle() (bool, error) {
	progressed := g.anyChanged()
	if err := g.basicSolve(); err != nil {
		return progressed, err
	}
	progressed = progressed || g.anyChanged()
	for _, cell := range g.cells {
		cell.clearChanged()
	}
	if progressed {
		g.generation++
	}
	return progressed, nil
}

func (g *Grid) anyChanged() bool {
	for _, cell := range g.cells {
		if cell.Changed() {
			return true
		}
	}
	return false
}

// basicSolve removes every solved cell's value from the other cells of its
// row, column, and box, looping to a fixed point: a removal can itself
// solve a cell, whose value must then be propagated too. Grounded on
// original_source's Grid._basic_solve / _each_division, which iterates only
// {row, column, box} and never band/stack (spec.md Design Notes §9).
func (g *Grid) basicSolve() error {
	for {
		anyChange := false
		for u := 0; u < constants.GridSize; u++ {
			for _, cells := range [][]*Cell{g.Row(u), g.Column(u), g.Box(u)} {
				var solvedDigits []int
				for _, cell := range cells {
					if v, ok := cell.Value(); ok {
						solvedDigits = append(solvedDigits, v)
					}
				}
				if len(solvedDigits) == 0 {
					continue
				}
				for _, cell := range cells {
					if cell.Solved() {
						continue
					}
					for _, v := range solvedDigits {
						changed, err := cell.Remove(v)
						if err != nil {
							return err
						}
						anyChange = anyChange || changed
					}
				}
			}
		}
		if !anyChange {
			if err := g.checkNoDuplicateSolved(); err != nil {
				return err
			}
			g.invalidateCaches()
			return nil
		}
	}
}

func (g *Grid) invalidateCaches() {
	g.biValueGen = 0
	g.triValueGen = 0
	g.strongLinkCache = make(map[int][]StrongLink)
}

// BiValueCells returns every unsolved cell with exactly 2 candidates,
// cached until the grid's generation advances (spec.md §3.2).
func (g *Grid) BiValueCells() []*Cell {
	if g.biValueGen == g.generation+1 {
		return g.biValue
	}
	var out []*Cell
	for _, cell := range g.Cells(false) {
		if cell.Candidates().Count() == 2 {
			out = append(out, cell)
		}
	}
	g.biValue = out
	g.biValueGen = g.generation + 1
	return out
}

// TriValueCells returns every unsolved cell with exactly 3 candidates.
func (g *Grid) TriValueCells() []*Cell {
	if g.triValueGen == g.generation+1 {
		return g.triValue
	}
	var out []*Cell
	for _, cell := range g.Cells(false) {
		if cell.Candidates().Count() == 3 {
			out = append(out, cell)
		}
	}
	g.triValue = out
	g.triValueGen = g.generation + 1
	return out
}
