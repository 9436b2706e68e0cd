package techniques

import "sudoku-engine/internal/grid"

// HiddenSingle assigns v to the one unsolved cell of a unit that is the
// only cell still carrying v as a candidate. Grounded on the teacher's
// detectHiddenSingle in internal/sudoku/human/techniques_simple.go.
func HiddenSingle(g *grid.Grid) (bool, error) {
	for _, unit := range allUnits() {
		cells := g.Division(unit.Div, unit.Idx)
		for digit := 1; digit <= 9; digit++ {
			var holder *grid.Cell
			count := 0
			for _, cell := range cells {
				if cell.Solved() {
					continue
				}
				if cell.Candidates().Has(digit) {
					count++
					holder = cell
				}
			}
			if count == 1 {
				if err := holder.Assign(digit); err != nil {
					return false, err
				}
				return true, nil
			}
		}
	}
	return false, nil
}
