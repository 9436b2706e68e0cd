package techniques

import "sudoku-engine/internal/grid"

// ChuteRemotePairs implements spec.md §4.3 item 14. Within a band or
// stack, two bi-value cells sharing {a, b} that do not see each other
// classify the remaining 25 cells: double-eliminated (in a pair cell's box
// and on its sub-division line, plus every double-seen cell), double-seen
// (seen by both pair cells directly), or unseen (seen by neither); cells
// seen by only one pair cell in any other way fall in none of these
// groups. Exactly 3 cells must end
// up unseen — a violated invariant panics, per spec.md §7's "bugs should
// panic" rule. Grounded on original_source's Grid.chute_remote_pairs.
func ChuteRemotePairs(g *grid.Grid) (bool, error) {
	for i := 0; i < 3; i++ {
		for _, spec := range [...]struct {
			div    grid.Division
			subDiv grid.Division
		}{
			{grid.DivBand, grid.DivColumn},
			{grid.DivStack, grid.DivRow},
		} {
			cells := g.Division(spec.div, i)
			bivalues := make([]*grid.Cell, 0, len(cells))
			for _, cell := range cells {
				if !cell.Solved() && cell.Candidates().Count() == 2 {
					bivalues = append(bivalues, cell)
				}
			}
			for _, pair := range combinations2(bivalues) {
				a, b := pair[0], pair[1]
				if a.Candidates() != b.Candidates() || a.Sees(b) {
					continue
				}
				changed, err := tryChuteRemotePair(cells, a, b, spec.subDiv)
				if err != nil {
					return false, err
				}
				if changed {
					return true, nil
				}
			}
		}
	}
	return false, nil
}

func tryChuteRemotePair(cells []*grid.Cell, a, b *grid.Cell, subDiv grid.Division) (bool, error) {
	var unseen, doubleSeen, doubleEliminated []*grid.Cell
	for _, cell := range cells {
		if cell.Equal(a) || cell.Equal(b) {
			continue
		}
		if a.Sees(cell) || b.Sees(cell) {
			switch {
			case a.Box == cell.Box && a.Aligned(cell, subDiv):
				doubleEliminated = append(doubleEliminated, cell)
			case b.Box == cell.Box && b.Aligned(cell, subDiv):
				doubleEliminated = append(doubleEliminated, cell)
			case a.Sees(cell) && b.Sees(cell):
				doubleSeen = append(doubleSeen, cell)
				doubleEliminated = append(doubleEliminated, cell)
			}
			continue
		}
		unseen = append(unseen, cell)
	}
	if len(unseen) != 3 {
		panic("sudoku: chute remote pairs expected exactly 3 unseen cells")
	}

	d1, d2 := a.Candidates().ToSlice()[0], a.Candidates().ToSlice()[1]
	seenDigits := make(map[int]bool, 2)
	for _, cell := range unseen {
		if cell.Candidates().Has(d1) {
			seenDigits[d1] = true
		}
		if cell.Candidates().Has(d2) {
			seenDigits[d2] = true
		}
	}
	switch len(seenDigits) {
	case 2:
		return false, nil
	case 1:
		var digit int
		for d := range seenDigits {
			digit = d
		}
		var eligible []*grid.Cell
		for _, cell := range doubleSeen {
			if !cell.Solved() && cell.Candidates().Has(digit) {
				eligible = append(eligible, cell)
			}
		}
		return removeFromCells(eligible, digit)
	case 0:
		var eligible []*grid.Cell
		for _, cell := range doubleEliminated {
			if !cell.Solved() && cell.Candidates().Intersect(a.Candidates()) != 0 {
				eligible = append(eligible, cell)
			}
		}
		return removeSetFromCells(eligible, a.Candidates())
	default:
		panic("sudoku: chute remote pairs saw an impossible candidate count")
	}
}
