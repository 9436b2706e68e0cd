package techniques

import "sudoku-engine/internal/grid"

// XWing implements spec.md §4.3 item 7 over both row-anchored and
// column-anchored orientations. Grounded on the teacher's detectXWing in
// internal/sudoku/human/techniques_fish.go.
func XWing(g *grid.Grid) (bool, error) {
	for _, orient := range [...]fishOrientation{rowFish, colFish} {
		if changed, err := fish(g, 2, orient); changed || err != nil {
			return changed, err
		}
	}
	return false, nil
}

// Swordfish generalizes XWing to 3 lines by 3 lines, per spec.md §4.3 item
// 8. Grounded on the teacher's detectSwordfish in
// internal/sudoku/human/techniques_advanced.go.
func Swordfish(g *grid.Grid) (bool, error) {
	for _, orient := range [...]fishOrientation{rowFish, colFish} {
		if changed, err := fish(g, 3, orient); changed || err != nil {
			return changed, err
		}
	}
	return false, nil
}

type fishOrientation struct {
	base  grid.Division
	cross grid.Division
}

var (
	rowFish = fishOrientation{base: grid.DivRow, cross: grid.DivColumn}
	colFish = fishOrientation{base: grid.DivColumn, cross: grid.DivRow}
)

// fish finds size lines of orient.base where a digit occupies at most
// size cross-lines, and size such base lines agree on the same set of
// size cross-lines, then eliminates the digit from the rest of those
// cross-lines.
func fish(g *grid.Grid, size int, orient fishOrientation) (bool, error) {
	for digit := 1; digit <= 9; digit++ {
		type baseLine struct {
			idx    int
			crosss []int
		}
		var candidates []baseLine
		for i := 0; i < 9; i++ {
			var crosss []int
			for _, cell := range g.Division(orient.base, i) {
				if !cell.Solved() && cell.Candidates().Has(digit) {
					crosss = append(crosss, divisionIndex(cell, orient.cross))
				}
			}
			if len(crosss) >= 2 && len(crosss) <= size {
				candidates = append(candidates, baseLine{idx: i, crosss: crosss})
			}
		}
		if len(candidates) < size {
			continue
		}
		for _, combo := range combinationsN(candidates, size) {
			crossSet := make(map[int]bool)
			baseIdxSet := make(map[int]bool)
			for _, line := range combo {
				baseIdxSet[line.idx] = true
				for _, c := range line.crosss {
					crossSet[c] = true
				}
			}
			if len(crossSet) != size {
				continue
			}
			var eligible []*grid.Cell
			for crossIdx := range crossSet {
				for _, cell := range g.Division(orient.cross, crossIdx) {
					if baseIdxSet[divisionIndex(cell, orient.base)] {
						continue
					}
					if !cell.Solved() && cell.Candidates().Has(digit) {
						eligible = append(eligible, cell)
					}
				}
			}
			changed, err := removeFromCells(eligible, digit)
			if err != nil {
				return false, err
			}
			if changed {
				return true, nil
			}
		}
	}
	return false, nil
}
