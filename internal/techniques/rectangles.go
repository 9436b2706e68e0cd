package techniques

import "sudoku-engine/internal/grid"

// RectangleElimination implements spec.md §4.3 item 11. For a digit and a
// strong link (hinge, wing1) in a row or column, extending perpendicular
// from the hinge to a wing2 that is not in either endpoint's box: if the
// box diagonally opposite wing1 (in wing2's band/stack) would lose every
// candidate for the digit were wing2 assigned it, the digit is eliminated
// from wing2. Grounded on original_source's Grid._rectangle_elimination /
// rectangle_elimination; the box-selection formula
// (Band(wing2)*3 + Stack(wing1), flipped if it lands on hinge's box) is
// copied verbatim from there since spec.md leaves it implicit.
func RectangleElimination(g *grid.Grid) (bool, error) {
	for digit := 1; digit <= 9; digit++ {
		for _, orient := range [...]struct {
			div      grid.Division
			crossDiv grid.Division
		}{
			{grid.DivRow, grid.DivColumn},
			{grid.DivColumn, grid.DivRow},
		} {
			for i := 0; i < 9; i++ {
				links := g.StrongLinks(digit)
				for _, link := range links {
					if !link.A.Aligned(link.B, orient.div) || divisionIndex(link.A, orient.div) != i {
						continue
					}
					if link.A.Box == link.B.Box {
						continue
					}
					for _, ordering := range [2][2]*grid.Cell{{link.A, link.B}, {link.B, link.A}} {
						hinge, wing1 := ordering[0], ordering[1]
						changed, err := tryRectangleElimination(g, digit, hinge, wing1, orient.crossDiv)
						if err != nil {
							return false, err
						}
						if changed {
							return true, nil
						}
					}
				}
			}
		}
	}
	return false, nil
}

func tryRectangleElimination(g *grid.Grid, digit int, hinge, wing1 *grid.Cell, crossDiv grid.Division) (bool, error) {
	for _, wing2 := range g.Division(crossDiv, divisionIndex(hinge, crossDiv)) {
		if wing2.Solved() {
			continue
		}
		if wing2.Box == hinge.Box || wing2.Box == wing1.Box {
			continue
		}
		if !wing2.Candidates().Has(digit) {
			continue
		}
		relevantBox := wing2.Band*3 + wing1.Stack
		if relevantBox == hinge.Box {
			relevantBox = wing1.Band*3 + wing2.Stack
		}
		allSeen := true
		for _, boxCell := range g.Box(relevantBox) {
			if !boxCell.Candidates().Has(digit) {
				continue
			}
			if wing1.Sees(boxCell) || wing2.Sees(boxCell) {
				continue
			}
			allSeen = false
			break
		}
		if !allSeen {
			continue
		}
		changed, err := wing2.Remove(digit)
		if err != nil {
			return false, err
		}
		if changed {
			return true, nil
		}
	}
	return false, nil
}

// UniqueRectangleType1 implements spec.md §4.3 item 12. Grounded on the
// teacher's DetectUniqueRectangle (findURRectangles rectangle-finding plus
// the 3-bivalue-corners check) in
// internal/sudoku/human/techniques/ur.go.
func UniqueRectangleType1(g *grid.Grid) (bool, error) {
	for _, rect := range findURRectangles(g) {
		bivalueCount := 0
		var extra *grid.Cell
		for _, corner := range rect.corners {
			if corner.Candidates().Count() == 2 {
				bivalueCount++
			} else {
				extra = corner
			}
		}
		if bivalueCount != 3 || extra == nil {
			continue
		}
		set := grid.NewCandidates([]int{rect.d1, rect.d2})
		changed, err := extra.RemoveSet(set)
		if err != nil {
			return false, err
		}
		if changed {
			return true, nil
		}
	}
	return false, nil
}

// HiddenUniqueRectangleType1 implements spec.md §4.3 item 13: as type 1,
// but the fourth corner is confirmed via strong links from the two "floor"
// cells rather than a simple extra-candidate check. Grounded on
// original_source's Grid.hidden_unique_rectangles1.
func HiddenUniqueRectangleType1(g *grid.Grid) (bool, error) {
	for _, pairCell := range g.BiValueCells() {
		for _, ceil2 := range g.Box(pairCell.Box) {
			if ceil2.Equal(pairCell) {
				continue
			}
			if ceil2.Candidates().Intersect(pairCell.Candidates()).Count() != 2 {
				continue
			}
			var ceilDiv, wallDiv grid.Division
			if ceil2.Row == pairCell.Row {
				ceilDiv, wallDiv = grid.DivRow, grid.DivColumn
			} else if ceil2.Col == pairCell.Col {
				ceilDiv, wallDiv = grid.DivColumn, grid.DivRow
			} else {
				continue
			}
			for _, floor1 := range g.Division(wallDiv, divisionIndex(pairCell, wallDiv)) {
				if floor1.Equal(pairCell) || floor1.Box == pairCell.Box {
					continue
				}
				if floor1.Candidates().Intersect(pairCell.Candidates()).Count() != 2 {
					continue
				}
				floor2 := findFloor2(g, floor1, ceil2, ceilDiv, wallDiv)
				if floor2 == nil || floor2.Box != floor1.Box {
					continue
				}
				if floor2.Candidates().Intersect(pairCell.Candidates()).Count() != 2 {
					continue
				}
				for _, digit := range pairCell.Candidates().ToSlice() {
					if !g.AreStronglyLinked(floor2, floor1, digit) {
						continue
					}
					if !g.AreStronglyLinked(floor2, ceil2, digit) {
						continue
					}
					other := pairCell.Candidates().Subtract(grid.NewCandidates([]int{digit}))
					changed, err := floor2.RemoveSet(other)
					if err != nil {
						return false, err
					}
					if changed {
						return true, nil
					}
				}
			}
		}
	}
	return false, nil
}

// findFloor2 locates the cell aligned with floor1 in ceilDiv and with
// ceil2 in wallDiv — the fourth corner of the rectangle.
func findFloor2(g *grid.Grid, floor1, ceil2 *grid.Cell, ceilDiv, wallDiv grid.Division) *grid.Cell {
	for _, cell := range g.Division(ceilDiv, divisionIndex(floor1, ceilDiv)) {
		if divisionIndex(cell, wallDiv) == divisionIndex(ceil2, wallDiv) {
			return cell
		}
	}
	return nil
}

type urRectangle struct {
	d1, d2  int
	corners [4]*grid.Cell
}

// findURRectangles locates every 4-cell rectangle spanning exactly 2 boxes
// where all 4 corners carry both d1 and d2 as candidates, for every digit
// pair. Grounded on the teacher's findURRectangles.
func findURRectangles(g *grid.Grid) []urRectangle {
	var out []urRectangle
	for d1 := 1; d1 <= 8; d1++ {
		for d2 := d1 + 1; d2 <= 9; d2++ {
			set := grid.NewCandidates([]int{d1, d2})
			var cells []*grid.Cell
			for _, cell := range g.Cells(false) {
				if cell.Candidates().Intersect(set) == set {
					cells = append(cells, cell)
				}
			}
			if len(cells) < 4 {
				continue
			}
			for _, top := range combinations2(cells) {
				a, b := top[0], top[1]
				if a.Row != b.Row || a.Col == b.Col {
					continue
				}
				for _, bottom := range combinations2(cells) {
					c, d := bottom[0], bottom[1]
					if c.Row != d.Row || c.Row == a.Row {
						continue
					}
					var c1, c2 *grid.Cell
					if c.Col == a.Col && d.Col == b.Col {
						c1, c2 = c, d
					} else if c.Col == b.Col && d.Col == a.Col {
						c1, c2 = d, c
					} else {
						continue
					}
					boxes := map[int]bool{a.Box: true, b.Box: true, c1.Box: true, c2.Box: true}
					if len(boxes) != 2 {
						continue
					}
					out = append(out, urRectangle{d1: d1, d2: d2, corners: [4]*grid.Cell{a, b, c1, c2}})
				}
			}
		}
	}
	return out
}
