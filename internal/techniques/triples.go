package techniques

import "sudoku-engine/internal/grid"

// NakedTriples removes a triple's 3 candidates from the rest of a unit
// when three cells (each holding 2 or 3 candidates) union to exactly 3
// digits. Grounded on the teacher's triple-finding logic generalized from
// findNakedPairInUnit (internal/sudoku/human/techniques/pairs.go); the
// teacher has no separate triples file so this follows the same union-size
// pattern spec.md §4.3 item 4 describes.
func NakedTriples(g *grid.Grid) (bool, error) {
	for _, unit := range allUnits() {
		cells := g.Division(unit.Div, unit.Idx)
		var candidates []*grid.Cell
		for _, cell := range cells {
			n := cell.Candidates().Count()
			if !cell.Solved() && (n == 2 || n == 3) {
				candidates = append(candidates, cell)
			}
		}
		for _, triple := range combinations3(candidates) {
			union := triple[0].Candidates().Union(triple[1].Candidates()).Union(triple[2].Candidates())
			if union.Count() != 3 {
				continue
			}
			var others []*grid.Cell
			for _, cell := range cells {
				if cell.Equal(triple[0]) || cell.Equal(triple[1]) || cell.Equal(triple[2]) {
					continue
				}
				others = append(others, cell)
			}
			changed, err := removeSetFromCells(others, union)
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

// HiddenSets restricts n cells to n digits when those n digits appear,
// within a unit, only in exactly those n unsolved cells — spec.md §4.3
// item 6, for n = 3 and n = 4. Generalizes HiddenPairs' logic to larger n,
// grounded the same way on the teacher's findHiddenPairInUnit.
func HiddenSets(g *grid.Grid) (bool, error) {
	for _, n := range []int{3, 4} {
		if changed, err := hiddenSetOfSize(g, n); changed || err != nil {
			return changed, err
		}
	}
	return false, nil
}

func hiddenSetOfSize(g *grid.Grid, n int) (bool, error) {
	for _, unit := range allUnits() {
		cells := g.Division(unit.Div, unit.Idx)
		positions := make(map[int][]*grid.Cell, 9)
		var digitsWithFewHolders []int
		for digit := 1; digit <= 9; digit++ {
			var holders []*grid.Cell
			for _, cell := range cells {
				if !cell.Solved() && cell.Candidates().Has(digit) {
					holders = append(holders, cell)
				}
			}
			if len(holders) >= 2 && len(holders) <= n {
				positions[digit] = holders
				digitsWithFewHolders = append(digitsWithFewHolders, digit)
			}
		}
		if len(digitsWithFewHolders) < n {
			continue
		}
		for _, digitSet := range combinationsN(digitsWithFewHolders, n) {
			cellSet := make(map[*grid.Cell]bool)
			for _, d := range digitSet {
				for _, cell := range positions[d] {
					cellSet[cell] = true
				}
			}
			if len(cellSet) != n {
				continue
			}
			digits := grid.NewCandidates(digitSet)
			var changedAny bool
			for cell := range cellSet {
				toRemove := cell.Candidates().Subtract(digits)
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
