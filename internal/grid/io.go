package grid

import (
	"regexp"
	"strconv"
	"strings"

	"sudoku-engine/pkg/constants"
)

var nonDigitRun = regexp.MustCompile(`[^\d\s]+`)

// FromText parses the 81-token format of spec.md §6.1: commas and every
// non-digit, non-whitespace character are stripped, the remainder is split
// on whitespace into exactly 81 tokens, and each token's digits become that
// cell's initial candidate set. Grounded on original_source's
// Grid.text_to_grid.
func FromText(s string) (*Grid, error) {
	cleaned := strings.ReplaceAll(s, ",", "")
	cleaned = nonDigitRun.ReplaceAllString(cleaned, "")
	tokens := strings.Fields(cleaned)
	if len(tokens) != constants.TotalCells {
		return nil, invalidInputf("expected 81 tokens, got %d", len(tokens))
	}

	var initial [constants.TotalCells]Candidates
	for i, tok := range tokens {
		if tok == "" {
			return nil, invalidInputf("token %d is empty", i)
		}
		var set Candidates
		seen := make(map[byte]bool, len(tok))
		for j := 0; j < len(tok); j++ {
			b := tok[j]
			if b < '1' || b > '9' {
				return nil, invalidInputf("token %d (%q) has an out-of-range digit", i, tok)
			}
			if seen[b] {
				return nil, invalidInputf("token %d (%q) repeats digit %c", i, tok, b)
			}
			seen[b] = true
			d, _ := strconv.Atoi(string(b))
			set = set.Set(d)
		}
		initial[i] = set
	}
	return NewGrid(initial)
}

const rowDivisor = "+------------------------------+------------------------------+------------------------------+"

// String renders the grid per spec.md §6.2: three bands separated by
// horizontal rulers, boxes separated by vertical bars, each cell as its
// sorted candidate digits left-justified to 9 columns in a leading-space
// 10-column field. Grounded on original_source's Grid.__str__.
func (g *Grid) String() string {
	var b strings.Builder
	b.WriteString(rowDivisor)
	for row := 0; row < constants.GridSize; row++ {
		b.WriteByte('\n')
		b.WriteByte('|')
		for col := 0; col < constants.GridSize; col++ {
			b.WriteByte(' ')
			digits := g.Cell(row, col).Candidates().String()
			b.WriteString(digits)
			for pad := len(digits); pad < 9; pad++ {
				b.WriteByte(' ')
			}
			if col%constants.BoxSize == constants.BoxSize-1 {
				b.WriteByte('|')
			}
		}
		if row%constants.BoxSize == constants.BoxSize-1 {
			b.WriteByte('\n')
			b.WriteString(rowDivisor)
		}
	}
	return b.String()
}

// Equal reports whether g and other render to the same text form
// (spec.md §6.2).
func (g *Grid) Equal(other *Grid) bool {
	if other == nil {
		return false
	}
	return g.String() == other.String()
}

// EqualsText reports whether g's text form is byte-identical to text, or
// text parses to a grid equal to g (spec.md §6.2).
func (g *Grid) EqualsText(text string) bool {
	if g.String() == text {
		return true
	}
	other, err := FromText(text)
	if err != nil {
		return false
	}
	return g.Equal(other)
}
