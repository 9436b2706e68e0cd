package techniques

import (
	"sort"

	"sudoku-engine/internal/grid"
)

// NakedPairs removes a and b from every other cell of a unit where two
// cells share the identical 2-candidate set {a, b}. Grounded on the
// teacher's findNakedPairInUnit in
// internal/sudoku/human/techniques/pairs.go.
func NakedPairs(g *grid.Grid) (bool, error) {
	for _, unit := range allUnits() {
		cells := g.Division(unit.Div, unit.Idx)
		var bivalues []*grid.Cell
		for _, cell := range cells {
			if !cell.Solved() && cell.Candidates().Count() == 2 {
				bivalues = append(bivalues, cell)
			}
		}
		for _, pair := range combinations2(bivalues) {
			a, b := pair[0], pair[1]
			if a.Candidates() != b.Candidates() {
				continue
			}
			set := a.Candidates()
			var others []*grid.Cell
			for _, cell := range cells {
				if !cell.Equal(a) && !cell.Equal(b) {
					others = append(others, cell)
				}
			}
			changed, err := removeSetFromCells(others, set)
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

// HiddenPairs restricts two cells to {a, b} when digits a and b appear,
// within a unit, only in exactly those two unsolved cells. Grounded on the
// teacher's findHiddenPairInUnit in the same file.
func HiddenPairs(g *grid.Grid) (bool, error) {
	for _, unit := range allUnits() {
		cells := g.Division(unit.Div, unit.Idx)
		positions := make(map[int][]*grid.Cell, 9)
		for digit := 1; digit <= 9; digit++ {
			for _, cell := range cells {
				if !cell.Solved() && cell.Candidates().Has(digit) {
					positions[digit] = append(positions[digit], cell)
				}
			}
		}
		var twoDigits []int
		for digit, holders := range positions {
			if len(holders) == 2 {
				twoDigits = append(twoDigits, digit)
			}
		}
		sort.Ints(twoDigits)
		for _, pair := range combinations2(twoDigits) {
			d1, d2 := pair[0], pair[1]
			p1, p2 := positions[d1], positions[d2]
			if !(p1[0].Equal(p2[0]) && p1[1].Equal(p2[1])) {
				continue
			}
			set := grid.NewCandidates([]int{d1, d2})
			var changedAny bool
			for _, cell := range p1 {
				toRemove := cell.Candidates().Subtract(set)
				c, err := cell.RemoveSet(toRemove)
				if err != nil {
					return false, err
				}
				changedAny = changedAny || c
			}
			if changedAny {
				return true, nil
			}
		}
	}
	return false, nil
}
