package grid

import (
	"sort"

	"sudoku-engine/pkg/constants"
)

// Division names a grouping of cells that candidate-elimination reasons
// about: the three elementary units (row, column, box) plus the two
// elementary-unit triplets (band, stack) spec.md §3 calls out for the
// chute-remote-pairs technique.
type Division int

const (
	DivRow Division = iota
	DivColumn
	DivBox
	DivBand
	DivStack
)

func (d Division) String() string {
	switch d {
	case DivRow:
		return "row"
	case DivColumn:
		return "column"
	case DivBox:
		return "box"
	case DivBand:
		return "band"
	case DivStack:
		return "stack"
	}
	return "unknown"
}

// RowOf, ColOf, BandOf, StackOf, BoxOf, BoxIndexOf derive a cell's
// positional metadata from its flat index (spec.md §3.1).
func RowOf(idx int) int   { return idx / constants.GridSize }
func ColOf(idx int) int   { return idx % constants.GridSize }
func BandOf(row int) int  { return row / constants.BoxSize }
func StackOf(col int) int { return col / constants.BoxSize }
func BoxOf(row, col int) int {
	return BandOf(row)*constants.BoxSize + StackOf(col)
}
func BoxIndexOf(row, col int) int {
	return (row%constants.BoxSize)*constants.BoxSize + col%constants.BoxSize
}
func IndexOf(row, col int) int { return row*constants.GridSize + col }

// Precomputed index tables, built once in init() and shared (read-only)
// across every Grid instance — grounded on the teacher's package-level
// Peers/RowIndices/ColIndices/BoxIndices tables in internal/sudoku/human/peers.go.
var (
	rowIndices   [constants.GridSize][constants.GridSize]int
	colIndices   [constants.GridSize][constants.GridSize]int
	boxIndices   [constants.GridSize][constants.GridSize]int
	bandIndices  [3][3 * constants.GridSize]int
	stackIndices [3][3 * constants.GridSize]int
	peerIndices  [constants.TotalCells][]int
)

func init() {
	for r := 0; r < constants.GridSize; r++ {
		for c := 0; c < constants.GridSize; c++ {
			idx := IndexOf(r, c)
			rowIndices[r][c] = idx
			colIndices[c][r] = idx
			box := BoxOf(r, c)
			boxIndices[box][BoxIndexOf(r, c)] = idx
		}
	}
	for band := 0; band < 3; band++ {
		pos := 0
		for r := band * constants.BoxSize; r < band*constants.BoxSize+constants.BoxSize; r++ {
			for c := 0; c < constants.GridSize; c++ {
				bandIndices[band][pos] = IndexOf(r, c)
				pos++
			}
		}
	}
	for stack := 0; stack < 3; stack++ {
		pos := 0
		for c := stack * constants.BoxSize; c < stack*constants.BoxSize+constants.BoxSize; c++ {
			for r := 0; r < constants.GridSize; r++ {
				stackIndices[stack][pos] = IndexOf(r, c)
				pos++
			}
		}
	}
	for idx := 0; idx < constants.TotalCells; idx++ {
		row, col := RowOf(idx), ColOf(idx)
		box := BoxOf(row, col)
		seen := make(map[int]bool, 20)
		for _, peer := range rowIndices[row] {
			if peer != idx {
				seen[peer] = true
			}
		}
		for _, peer := range colIndices[col] {
			if peer != idx {
				seen[peer] = true
			}
		}
		for _, peer := range boxIndices[box] {
			if peer != idx {
				seen[peer] = true
			}
		}
		peers := make([]int, 0, len(seen))
		for peer := range seen {
			peers = append(peers, peer)
		}
		sort.Ints(peers)
		peerIndices[idx] = peers
	}
}
