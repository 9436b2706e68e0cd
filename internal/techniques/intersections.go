package techniques

import "sudoku-engine/internal/grid"

// IntersectionRemoval implements spec.md §4.3 item 5: for every box/line
// intersection, if all of a digit's occurrences in the box lie in a single
// row or column, remove it from the rest of that row/column (pointing);
// symmetrically, if all occurrences in a row/column lie in a single box,
// remove it from the rest of the box (box-line reduction). Pointing is
// tried before box-line, per spec.md. Grounded on the teacher's
// intersection logic in internal/sudoku/human/techniques_simple.go, which
// scans the same box/line pairing.
func IntersectionRemoval(g *grid.Grid) (bool, error) {
	if changed, err := pointing(g); changed || err != nil {
		return changed, err
	}
	return boxLineReduction(g)
}

func pointing(g *grid.Grid) (bool, error) {
	for box := 0; box < 9; box++ {
		boxCells := g.Box(box)
		for digit := 1; digit <= 9; digit++ {
			var holders []*grid.Cell
			for _, cell := range boxCells {
				if !cell.Solved() && cell.Candidates().Has(digit) {
					holders = append(holders, cell)
				}
			}
			if len(holders) < 2 {
				continue
			}
			for _, div := range [...]grid.Division{grid.DivRow, grid.DivColumn} {
				aligned := true
				for _, h := range holders[1:] {
					if !h.Aligned(holders[0], div) {
						aligned = false
						break
					}
				}
				if !aligned {
					continue
				}
				idx := divisionIndex(holders[0], div)
				var others []*grid.Cell
				for _, cell := range g.Division(div, idx) {
					if cell.Box != box {
						others = append(others, cell)
					}
				}
				changed, err := removeFromCells(others, digit)
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

func boxLineReduction(g *grid.Grid) (bool, error) {
	for _, div := range [...]grid.Division{grid.DivRow, grid.DivColumn} {
		for i := 0; i < 9; i++ {
			lineCells := g.Division(div, i)
			for digit := 1; digit <= 9; digit++ {
				var holders []*grid.Cell
				for _, cell := range lineCells {
					if !cell.Solved() && cell.Candidates().Has(digit) {
						holders = append(holders, cell)
					}
				}
				if len(holders) < 2 {
					continue
				}
				box := holders[0].Box
				sameBox := true
				for _, h := range holders[1:] {
					if h.Box != box {
						sameBox = false
						break
					}
				}
				if !sameBox {
					continue
				}
				var others []*grid.Cell
				for _, cell := range g.Box(box) {
					if !cell.Aligned(holders[0], div) {
						others = append(others, cell)
					}
				}
				changed, err := removeFromCells(others, digit)
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

func divisionIndex(c *grid.Cell, div grid.Division) int {
	switch div {
	case grid.DivRow:
		return c.Row
	case grid.DivColumn:
		return c.Col
	case grid.DivBox:
		return c.Box
	case grid.DivBand:
		return c.Band
	case grid.DivStack:
		return c.Stack
	}
	return -1
}
