package techniques

import "sudoku-engine/internal/grid"

// XYChain implements spec.md §4.3 item 15. A chain of bi-value cells
// c1 -> c2 -> ... -> ck, consecutive cells sharing a candidate, alternates
// "off X -> on Y -> off Y -> on Z ..."; if c1 and ck share a candidate z,
// z can be eliminated from every cell seeing both endpoints. When the
// endpoints see each other ("closed"), the chain's intermediate weak links
// may also justify eliminations. Grounded on original_source's
// Grid.xy_chain / _closed_xy_chain / Grid.chaining.
func XYChain(g *grid.Grid) (bool, error) {
	bivalues := g.BiValueCells()
	if len(bivalues) < 3 {
		return false, nil
	}

	for _, pair := range combinations2(bivalues) {
		a, b := pair[0], pair[1]
		common := a.Candidates().Intersect(b.Candidates())
		if common.IsEmpty() {
			continue
		}
		var endpointEligible []*grid.Cell
		for _, cell := range g.VisibleFrom(a, false) {
			if cell.Candidates().Intersect(common).IsEmpty() {
				continue
			}
			if b.Sees(cell) {
				endpointEligible = append(endpointEligible, cell)
			}
		}
		if len(endpointEligible) == 0 {
			continue
		}
		remaining := otherCells(bivalues, a)
		if !a.Sees(b) {
			continue
		}

		for _, chain := range findChains(g, a, b, remaining, len(bivalues)) {
			changed, err := tryClosedXYChain(chain, endpointEligible, g)
			if err != nil {
				return false, err
			}
			if changed {
				return true, nil
			}
		}
	}

	for _, pair := range combinations2(bivalues) {
		a, b := pair[0], pair[1]
		if a.Sees(b) {
			continue
		}
		common := a.Candidates().Intersect(b.Candidates())
		if common.IsEmpty() {
			continue
		}
		var endpointEligible []*grid.Cell
		for _, cell := range g.VisibleFrom(a, false) {
			if cell.Candidates().Intersect(common).IsEmpty() {
				continue
			}
			if b.Sees(cell) {
				endpointEligible = append(endpointEligible, cell)
			}
		}
		if len(endpointEligible) == 0 {
			continue
		}
		remaining := otherCells(bivalues, a)
		for _, chain := range findChains(g, a, b, remaining, len(bivalues)) {
			changed, err := tryOpenXYChain(chain, endpointEligible)
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

func otherCells(cells []*grid.Cell, exclude *grid.Cell) []*grid.Cell {
	out := make([]*grid.Cell, 0, len(cells))
	for _, c := range cells {
		if !c.Equal(exclude) {
			out = append(out, c)
		}
	}
	return out
}

// findChains enumerates every simple path of bi-value cells starting at
// first and ending at final, where consecutive cells see each other and
// share a candidate. Grounded on original_source's Grid.chaining.
func findChains(g *grid.Grid, first, final *grid.Cell, pool []*grid.Cell, maxLength int) [][]*grid.Cell {
	var out [][]*grid.Cell
	var walk func(chain []*grid.Cell, remaining []*grid.Cell)
	walk = func(chain []*grid.Cell, remaining []*grid.Cell) {
		last := chain[len(chain)-1]
		if last.Equal(final) {
			if len(chain) >= 3 {
				out = append(out, append([]*grid.Cell(nil), chain...))
			}
			return
		}
		if len(chain) >= maxLength {
			return
		}
		for i, cell := range remaining {
			if !last.Sees(cell) || last.Candidates().Intersect(cell.Candidates()).IsEmpty() {
				continue
			}
			next := append(append([]*grid.Cell(nil), remaining[:i]...), remaining[i+1:]...)
			walk(append(chain, cell), next)
		}
	}
	walk([]*grid.Cell{first}, pool)
	return out
}

// tryClosedXYChain validates the alternation for an endpoint-seeing chain
// and additionally collects intermediate weak-link eliminations, per
// original_source's _closed_xy_chain.
func tryClosedXYChain(chain []*grid.Cell, endpointEligible []*grid.Cell, g *grid.Grid) (bool, error) {
	first, final := chain[0], chain[len(chain)-1]
	for _, candidate := range first.Candidates().Intersect(final.Candidates()).ToSlice() {
		var eligible []*grid.Cell
		for _, cell := range endpointEligible {
			if cell.Candidates().Has(candidate) && !containsCell(chain, cell) {
				eligible = append(eligible, cell)
			}
		}
		if len(eligible) == 0 {
			continue
		}
		otherDigit, ok := first.Candidates().Subtract(grid.NewCandidates([]int{candidate})).Only()
		if !ok {
			continue
		}
		onValue, offValue := otherDigit, candidate
		type removal struct {
			digit int
			cells []*grid.Cell
		}
		removals := []removal{{digit: candidate, cells: eligible}}

		cellB := first
		ok = true
		for i := 1; i < len(chain); i++ {
			cellA, cellB2 := cellB, chain[i]
			switch {
			case cellB2.Candidates().Has(onValue):
				var cells []*grid.Cell
				for _, cell := range g.Cells(false) {
					if containsCell(chain, cell) {
						continue
					}
					if cell.Candidates().Has(onValue) && cell.Sees(cellA) && cell.Sees(cellB2) {
						cells = append(cells, cell)
					}
				}
				if len(cells) > 0 {
					removals = append(removals, removal{digit: onValue, cells: cells})
				}
				offValue = onValue
				d, ok2 := cellB2.Candidates().Subtract(grid.NewCandidates([]int{offValue})).Only()
				if !ok2 {
					ok = false
				} else {
					onValue = d
				}
			case cellB2.Candidates().Has(offValue) && g.AreStronglyLinked(cellA, cellB2, offValue):
				var cells []*grid.Cell
				for _, cell := range g.Cells(false) {
					if containsCell(chain, cell) {
						continue
					}
					if cell.Candidates().Has(offValue) && cell.Sees(cellA) && cell.Sees(cellB2) {
						cells = append(cells, cell)
					}
				}
				if len(cells) > 0 {
					removals = append(removals, removal{digit: offValue, cells: cells})
				}
				onValue = offValue
				d, ok2 := cellB2.Candidates().Subtract(grid.NewCandidates([]int{onValue})).Only()
				if !ok2 {
					ok = false
				} else {
					offValue = d
				}
			default:
				ok = false
			}
			if !ok {
				break
			}
			cellB = cellB2
		}
		if !ok || onValue != candidate || !cellB.Equal(final) {
			continue
		}
		var changedAny bool
		for _, r := range removals {
			changed, err := removeFromCells(r.cells, r.digit)
			if err != nil {
				return false, err
			}
			changedAny = changedAny || changed
		}
		if changedAny {
			return true, nil
		}
	}
	return false, nil
}

// tryOpenXYChain validates the alternation for a chain whose endpoints do
// not see each other; only endpoint eliminations apply, per
// original_source's Grid.xy_chain second pass.
func tryOpenXYChain(chain []*grid.Cell, endpointEligible []*grid.Cell) (bool, error) {
	first, final := chain[0], chain[len(chain)-1]
	for _, candidate := range first.Candidates().Intersect(final.Candidates()).ToSlice() {
		var eligible []*grid.Cell
		for _, cell := range endpointEligible {
			if cell.Candidates().Has(candidate) && !containsCell(chain, cell) {
				eligible = append(eligible, cell)
			}
		}
		if len(eligible) == 0 {
			continue
		}
		otherDigit, ok := first.Candidates().Subtract(grid.NewCandidates([]int{candidate})).Only()
		if !ok {
			continue
		}
		onValue, offValue := otherDigit, candidate
		cellB := first
		valid := true
		for i := 1; i < len(chain); i++ {
			cellA, cellB2 := cellB, chain[i]
			switch {
			case cellB2.Candidates().Has(onValue):
				offValue = onValue
				d, ok2 := cellB2.Candidates().Subtract(grid.NewCandidates([]int{offValue})).Only()
				if !ok2 {
					valid = false
				} else {
					onValue = d
				}
			default:
				_ = cellA
				valid = false
			}
			if !valid {
				break
			}
			cellB = cellB2
		}
		if !valid || onValue != candidate || !cellB.Equal(final) {
			continue
		}
		changed, err := removeFromCells(eligible, candidate)
		if err != nil {
			return false, err
		}
		if changed {
			return true, nil
		}
	}
	return false, nil
}

func containsCell(cells []*grid.Cell, target *grid.Cell) bool {
	for _, c := range cells {
		if c.Equal(target) {
			return true
		}
	}
	return false
}
