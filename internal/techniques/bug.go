package techniques

import "sudoku-engine/internal/grid"

// BUGPlusOne implements spec.md §4.3 item 16. If exactly one unsolved cell
// has 3 candidates and every other unsolved cell has exactly 2, the digit
// of the tri-cell that appears 3 times (rather than 2) in each of its row,
// column, and box is forced: the first such digit in ascending order is
// assigned. Grounded on original_source's Grid.bug_squasher.
func BUGPlusOne(g *grid.Grid) (bool, error) {
	triads := g.TriValueCells()
	if len(triads) != 1 {
		return false, nil
	}
	for _, cell := range g.Cells(false) {
		if cell.Candidates().Count() > 3 {
			return false, nil
		}
	}
	triad := triads[0]
	for _, digit := range triad.Candidates().ToSlice() {
		allTwo := true
		for _, div := range [...]grid.Division{grid.DivRow, grid.DivColumn, grid.DivBox} {
			appearances := 0
			for _, cell := range g.Division(div, divisionIndex(triad, div)) {
				if cell.Equal(triad) {
					continue
				}
				if cell.Candidates().Has(digit) {
					appearances++
				}
			}
			if appearances != 2 {
				allTwo = false
				break
			}
		}
		if allTwo {
			if err := triad.Assign(digit); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}
