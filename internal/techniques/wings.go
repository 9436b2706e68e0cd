package techniques

import "sudoku-engine/internal/grid"

// YWing implements spec.md §4.3 item 9: a hinge bi-value cell {X,Y} seeing
// two wings {X,Z} and {Y,Z} eliminates Z from every cell seeing both
// wings. Grounded on original_source's Grid.y_wing (no teacher Go
// equivalent; the teacher's XY-Wing detector in techniques_fish.go uses the
// Move-explanation model this codebase drops). original_source's
// _single_intersection guard is required here too: the three pairwise
// candidate intersections of the triple must each be exactly 1, or a
// degenerate triple like {1,2},{1,2},{1,3} produces an unsound
// elimination (z would also be a hinge candidate).
func YWing(g *grid.Grid) (bool, error) {
	bivalues := g.BiValueCells()
	for _, triple := range combinations3(bivalues) {
		union := triple[0].Candidates().Union(triple[1].Candidates()).Union(triple[2].Candidates())
		if union.Count() != 3 {
			continue
		}
		for _, perm := range [3][3]int{{0, 1, 2}, {1, 0, 2}, {2, 0, 1}} {
			hinge, wing1, wing2 := triple[perm[0]], triple[perm[1]], triple[perm[2]]
			if !hinge.Sees(wing1) || !hinge.Sees(wing2) {
				continue
			}
			common := wing1.Candidates().Intersect(wing2.Candidates())
			if common.Count() != 1 {
				continue
			}
			if hinge.Candidates().Intersect(wing1.Candidates()).Count() != 1 ||
				hinge.Candidates().Intersect(wing2.Candidates()).Count() != 1 {
				continue
			}
			z, _ := common.Only()
			var affected []*grid.Cell
			for _, cell := range g.VisibleFrom(wing1, false) {
				if cell.Equal(hinge) || cell.Equal(wing2) {
					continue
				}
				if !cell.Candidates().Has(z) {
					continue
				}
				if cell.Sees(wing2) {
					affected = append(affected, cell)
				}
			}
			changed, err := removeFromCells(affected, z)
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

// XYZWing implements spec.md §4.3 item 10: a tri-value hinge {X,Y,Z} with
// two bi-value wings {X,Z} and {Y,Z}, both seen by the hinge, eliminates Z
// from every cell seeing all three. Grounded on the teacher's
// detectXYZWing in internal/sudoku/human/techniques_wings.go.
func XYZWing(g *grid.Grid) (bool, error) {
	for _, hinge := range g.TriValueCells() {
		var wings []*grid.Cell
		for _, bi := range g.BiValueCells() {
			if hinge.Sees(bi) && isSubsetOf(bi.Candidates(), hinge.Candidates()) {
				wings = append(wings, bi)
			}
		}
		if len(wings) < 2 {
			continue
		}
		for _, pair := range combinations2(wings) {
			a, b := pair[0], pair[1]
			if a.Row == b.Row && b.Row == hinge.Row {
				continue
			}
			if a.Col == b.Col && b.Col == hinge.Col {
				continue
			}
			if a.Box == b.Box && b.Box == hinge.Box {
				continue
			}
			common := a.Candidates().Intersect(b.Candidates())
			if common.Count() != 1 {
				continue
			}
			z, _ := common.Only()
			var affected []*grid.Cell
			for _, cell := range g.VisibleFrom(hinge, false) {
				if cell.Equal(a) || cell.Equal(b) {
					continue
				}
				if !cell.Candidates().Has(z) {
					continue
				}
				if cell.Sees(a) && cell.Sees(b) {
					affected = append(affected, cell)
				}
			}
			changed, err := removeFromCells(affected, z)
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

func isSubsetOf(a, b grid.Candidates) bool {
	return a.Intersect(b) == a
}
