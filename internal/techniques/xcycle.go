package techniques

import (
	"sudoku-engine/internal/combinatorics"
	"sudoku-engine/internal/grid"
)

// xCycleMinEven, xCycleMinOdd and xCycleMaxLen bound the loop lengths
// considered. Odd-length loops start at 5, as original_source's
// Grid.x_cycle does (min_length=5); even-length loops start at 4, the
// smallest a nice loop can be. The upper bound is 10, well below
// original_source's max_length=40, to keep the combinatorial search
// tractable.
const (
	xCycleMinEven = 4
	xCycleMinOdd  = 5
	xCycleMaxLen  = 10
)

// XCycle implements spec.md §4.3 item 17: alternating inference chains
// over a single digit's strong links. Three cases, tried in order for
// every digit: continuous even-length nice loops, discontinuous odd-length
// loops with a duplicated endpoint (forces an assignment), and
// discontinuous odd-length loops eliminating the digit from any external
// cell seeing both open ends. Grounded on original_source's Grid.x_cycle,
// using combinatorics.TableSettings exactly as _table_settings is used
// there to enumerate cycle orderings from a chosen set of strong links.
func XCycle(g *grid.Grid) (bool, error) {
	for digit := 1; digit <= 9; digit++ {
		links := g.StrongLinks(digit)
		if len(links) == 0 {
			continue
		}
		if changed, err := continuousNiceLoop(g, digit, links); changed || err != nil {
			return changed, err
		}
		if changed, err := discontinuousOnOn(g, digit, links); changed || err != nil {
			return changed, err
		}
		if changed, err := discontinuousExternal(g, digit, links); changed || err != nil {
			return changed, err
		}
	}
	return false, nil
}

func linkGroups(links []grid.StrongLink) [][]*grid.Cell {
	groups := make([][]*grid.Cell, len(links))
	for i, l := range links {
		groups[i] = []*grid.Cell{l.A, l.B}
	}
	return groups
}

func distinctCellCount(cells []*grid.Cell) int {
	seen := make(map[*grid.Cell]bool, len(cells))
	for _, c := range cells {
		seen[c] = true
	}
	return len(seen)
}

// continuousNiceLoop tries every even cycle length, choosing cycleLength/2
// strong links whose cells are all distinct, enumerating orderings via
// combinatorics.TableSettings, and checking that odd-indexed neighbors
// (the weak-link steps) actually see each other.
func continuousNiceLoop(g *grid.Grid, digit int, links []grid.StrongLink) (bool, error) {
	maxLen := min(xCycleMaxLen, 2*len(links))
	for cycleLength := xCycleMinEven; cycleLength <= maxLen; cycleLength += 2 {
		for _, chosen := range combinationsN(links, cycleLength/2) {
			allCells := make([]*grid.Cell, 0, cycleLength)
			for _, l := range chosen {
				allCells = append(allCells, l.A, l.B)
			}
			if distinctCellCount(allCells) != cycleLength {
				continue
			}
			for _, cycle := range combinatorics.TableSettings(linkGroups(chosen)...) {
				if !validLoopAlternation(cycle) {
					continue
				}
				onCells, offCells := splitAlternating(cycle)
				var eligible []*grid.Cell
				for _, cell := range g.Cells(false) {
					if containsCell(cycle, cell) {
						continue
					}
					if !cell.Candidates().Has(digit) {
						continue
					}
					if cell.SeenByAny(onCells...) && cell.SeenByAny(offCells...) {
						eligible = append(eligible, cell)
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
	}
	return false, nil
}

// validLoopAlternation checks that every even-indexed cell sees its
// predecessor (the weak-link steps binding consecutive strong links
// together into a loop).
func validLoopAlternation(cycle []*grid.Cell) bool {
	for i := 0; i < len(cycle); i++ {
		if i%2 != 0 {
			continue
		}
		prev := cycle[(i-1+len(cycle))%len(cycle)]
		if !cycle[i].Sees(prev) {
			return false
		}
	}
	return true
}

func splitAlternating(cycle []*grid.Cell) (even, odd []*grid.Cell) {
	for i, c := range cycle {
		if i%2 == 0 {
			even = append(even, c)
		} else {
			odd = append(odd, c)
		}
	}
	return even, odd
}

// discontinuousOnOn tries odd cycle lengths whose chosen strong links
// share exactly one cell (so the flattened tuple has cycleLength+1
// entries with the shared cell at both ends), forcing that shared cell to
// the digit. Grounded on the second branch of original_source's Grid.x_cycle.
func discontinuousOnOn(g *grid.Grid, digit int, links []grid.StrongLink) (bool, error) {
	maxLen := min(xCycleMaxLen, 2*len(links))
	for cycleLength := xCycleMinOdd; cycleLength <= maxLen; cycleLength += 2 {
		numLinks := (cycleLength + 1) / 2
		for _, chosen := range combinationsN(links, numLinks) {
			allCells := make([]*grid.Cell, 0, 2*numLinks)
			for _, l := range chosen {
				allCells = append(allCells, l.A, l.B)
			}
			if distinctCellCount(allCells) != cycleLength {
				continue
			}
			for _, cycle := range combinatorics.TableSettings(linkGroups(chosen)...) {
				last := len(cycle) - 1
				if !cycle[0].Equal(cycle[last]) {
					continue
				}
				broken := false
				for i := 2; i < last; i += 2 {
					if !cycle[i].Sees(cycle[i-1]) {
						broken = true
						break
					}
				}
				if broken {
					continue
				}
				if err := cycle[0].Assign(digit); err != nil {
					return false, err
				}
				return true, nil
			}
		}
	}
	return false, nil
}

// discontinuousExternal tries odd cycle lengths where the chosen strong
// links' cells are all distinct (cycleLength-1 of them forming the open
// chain) and any cell outside the chain seeing both open ends loses the
// digit. Grounded on the third branch of original_source's Grid.x_cycle.
func discontinuousExternal(g *grid.Grid, digit int, links []grid.StrongLink) (bool, error) {
	maxLen := min(xCycleMaxLen, 2*len(links))
	for cycleLength := xCycleMinOdd; cycleLength <= maxLen; cycleLength += 2 {
		for _, chosen := range combinationsN(links, cycleLength/2) {
			allCells := make([]*grid.Cell, 0, cycleLength-1)
			for _, l := range chosen {
				allCells = append(allCells, l.A, l.B)
			}
			if distinctCellCount(allCells) != cycleLength-1 {
				continue
			}
			for _, cycle := range combinatorics.TableSettings(linkGroups(chosen)...) {
				broken := false
				for i := 1; i < cycleLength-1; i++ {
					if i%2 != 0 {
						continue
					}
					if !cycle[i].Sees(cycle[i-1]) {
						broken = true
						break
					}
				}
				if broken {
					continue
				}
				first, last := cycle[0], cycle[cycleLength-2]
				var candidates []*grid.Cell
				for _, cell := range g.Cells(false) {
					if containsCell(cycle[:cycleLength-1], cell) {
						continue
					}
					if cell.Candidates().Has(digit) && cell.Sees(first) && cell.Sees(last) {
						candidates = append(candidates, cell)
					}
				}
				if len(candidates) == 0 {
					continue
				}
				changed, err := removeFromCells(candidates, digit)
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
