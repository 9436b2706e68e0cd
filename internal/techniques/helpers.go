package techniques

import "sudoku-engine/internal/grid"

// allUnits lists every row, column, and box division+index pair, the set
// every unit-scoped technique (naked/hidden pairs, triples, hidden sets,
// intersection removal) scans. Grounded on the teacher's AllUnits helper in
// internal/sudoku/human/techniques/board.go.
func allUnits() []struct {
	Div grid.Division
	Idx int
} {
	units := make([]struct {
		Div grid.Division
		Idx int
	}, 0, 27)
	for _, div := range [...]grid.Division{grid.DivRow, grid.DivColumn, grid.DivBox} {
		for i := 0; i < 9; i++ {
			units = append(units, struct {
				Div grid.Division
				Idx int
			}{div, i})
		}
	}
	return units
}

// removeFromCells removes digit from every cell in cells and reports whether
// any removal actually changed a cell's candidate set; the whole slice is one
// set of eliminations in the sense of spec.md §4.3. It stops early only when
// a removal returns an error.
func removeFromCells(cells []*grid.Cell, digit int) (bool, error) {
	changed := false
	for _, cell := range cells {
		c, err := cell.Remove(digit)
		if err != nil {
			return changed, err
		}
		changed = changed || c
	}
	return changed, nil
}

func removeSetFromCells(cells []*grid.Cell, set grid.Candidates) (bool, error) {
	changed := false
	for _, cell := range cells {
		c, err := cell.RemoveSet(set)
		if err != nil {
			return changed, err
		}
		changed = changed || c
	}
	return changed, nil
}

// combinations2 yields every unordered pair of elements at distinct indices
// of items.
func combinations2[T any](items []T) [][2]T {
	var out [][2]T
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			out = append(out, [2]T{items[i], items[j]})
		}
	}
	return out
}

// combinations3 yields every unordered triple of distinct elements.
func combinations3[T any](items []T) [][3]T {
	var out [][3]T
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			for k := j + 1; k < len(items); k++ {
				out = append(out, [3]T{items[i], items[j], items[k]})
			}
		}
	}
	return out
}

// combinationsN yields every n-element subset of items, as slices of the
// elements in their original order.
func combinationsN[T any](items []T, n int) [][]T {
	var out [][]T
	if n <= 0 || n > len(items) {
		return out
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for {
		combo := make([]T, n)
		for i, v := range idx {
			combo[i] = items[v]
		}
		out = append(out, combo)

		i := n - 1
		for i >= 0 && idx[i] == len(items)-n+i {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < n; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
	return out
}
