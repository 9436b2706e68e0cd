package grid

import "fmt"

// Cell is a single grid square: a candidate set plus the positional
// metadata derived from its row and column (spec.md §3.1). Two cells
// compare equal by (row, column) alone; their candidate sets never enter
// equality — grounded on cell.py's __eq__ in original_source.
type Cell struct {
	Row, Col      int
	Band, Stack   int
	Box, BoxIndex int
	candidates    Candidates
	changed       bool
}

func newCell(row, col int, initial Candidates) *Cell {
	return &Cell{
		Row:        row,
		Col:        col,
		Band:       BandOf(row),
		Stack:      StackOf(col),
		Box:        BoxOf(row, col),
		BoxIndex:   BoxIndexOf(row, col),
		candidates: initial,
	}
}

// Candidates returns the cell's current candidate set.
func (c *Cell) Candidates() Candidates {
	return c.candidates
}

// Solved reports whether the cell has exactly one candidate.
func (c *Cell) Solved() bool {
	return c.candidates.Count() == 1
}

// Value returns the solved digit and true, or (0, false) if unsolved.
func (c *Cell) Value() (int, bool) {
	return c.candidates.Only()
}

// Changed reports whether the candidate set was mutated since the last
// settle() call (spec.md §3.1's sticky "changed" flag).
func (c *Cell) Changed() bool {
	return c.changed
}

func (c *Cell) clearChanged() {
	c.changed = false
}

// Remove eliminates digit from the candidate set. It is a no-op — not an
// error — if digit is not currently a candidate (spec.md §3.1, §4.1).
// Removing the sole remaining candidate is always a contradiction, solved
// cell or not: ErrContradiction is returned and the cell is left
// unmodified. A solved cell otherwise stays a no-op for every other digit,
// since it has none left to remove.
// It returns whether the candidate set actually shrank, so a caller can
// tell a genuine elimination apart from a no-op.
func (c *Cell) Remove(digit int) (bool, error) {
	if !c.candidates.Has(digit) {
		return false, nil
	}
	next := c.candidates.Clear(digit)
	if next.IsEmpty() {
		return false, fmt.Errorf("%w: R%dC%d has no candidates left after removing %d", ErrContradiction, c.Row+1, c.Col+1, digit)
	}
	if c.Solved() {
		return false, nil
	}
	c.candidates = next
	c.changed = true
	return true, nil
}

// RemoveSet eliminates every digit in set from the candidate set, returning
// whether any of them actually shrank the candidate set.
func (c *Cell) RemoveSet(set Candidates) (bool, error) {
	any := false
	for _, d := range set.ToSlice() {
		changed, err := c.Remove(d)
		if err != nil {
			return any, err
		}
		any = any || changed
	}
	return any, nil
}

// Assign forces the cell to digit. digit must already be a candidate;
// otherwise this is a contradiction.
func (c *Cell) Assign(digit int) error {
	if !c.candidates.Has(digit) {
		return fmt.Errorf("%w: cannot assign %d to R%dC%d, not a candidate", ErrContradiction, digit, c.Row+1, c.Col+1)
	}
	if c.Solved() {
		return nil
	}
	c.candidates = NewCandidates([]int{digit})
	c.changed = true
	return nil
}

// Sees reports whether other shares a row, column, or box with c and is not
// c itself.
func (c *Cell) Sees(other *Cell) bool {
	if c.Equal(other) {
		return false
	}
	return c.Row == other.Row || c.Col == other.Col || c.Box == other.Box
}

// SeenByAny reports whether c sees any of others.
func (c *Cell) SeenByAny(others ...*Cell) bool {
	for _, o := range others {
		if c.Sees(o) {
			return true
		}
	}
	return false
}

// Aligned reports whether c and other share the named division.
func (c *Cell) Aligned(other *Cell, div Division) bool {
	switch div {
	case DivRow:
		return c.Row == other.Row
	case DivColumn:
		return c.Col == other.Col
	case DivBox:
		return c.Box == other.Box
	case DivBand:
		return c.Band == other.Band
	case DivStack:
		return c.Stack == other.Stack
	}
	return false
}

// Equal compares cells by position only, per spec.md §3.1.
func (c *Cell) Equal(other *Cell) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.Row == other.Row && c.Col == other.Col
}

func (c *Cell) String() string {
	return fmt.Sprintf("R%dC%d{%s}", c.Row+1, c.Col+1, c.candidates.String())
}
