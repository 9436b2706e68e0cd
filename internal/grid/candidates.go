package grid

import "sudoku-engine/pkg/constants"

// Candidates is a bitmask over the digits 1-9. Bit i (1 <= i <= 9) set means
// digit i is still possible. Bit 0 is unused.
type Candidates uint16

// All is a Candidates with every digit 1-9 set.
const All Candidates = 0b1111111110

// NewCandidates builds a Candidates bitmask from a slice of digits.
func NewCandidates(digits []int) Candidates {
	var c Candidates
	for _, d := range digits {
		c = c.Set(d)
	}
	return c
}

// Has reports whether digit is a candidate.
func (c Candidates) Has(digit int) bool {
	if digit < 1 || digit > constants.GridSize {
		return false
	}
	return c&(1<<uint(digit)) != 0
}

// Set returns c with digit added.
func (c Candidates) Set(digit int) Candidates {
	if digit < 1 || digit > constants.GridSize {
		return c
	}
	return c | (1 << uint(digit))
}

// Clear returns c with digit removed.
func (c Candidates) Clear(digit int) Candidates {
	if digit < 1 || digit > constants.GridSize {
		return c
	}
	return c &^ (1 << uint(digit))
}

// Count returns the number of set candidate bits.
func (c Candidates) Count() int {
	n := 0
	for i := 1; i <= constants.GridSize; i++ {
		if c.Has(i) {
			n++
		}
	}
	return n
}

// Only returns the single candidate digit, if there is exactly one.
func (c Candidates) Only() (int, bool) {
	if c.Count() != 1 {
		return 0, false
	}
	for i := 1; i <= constants.GridSize; i++ {
		if c.Has(i) {
			return i, true
		}
	}
	return 0, false
}

// ToSlice returns the candidate digits in ascending order.
func (c Candidates) ToSlice() []int {
	var out []int
	for i := 1; i <= constants.GridSize; i++ {
		if c.Has(i) {
			out = append(out, i)
		}
	}
	return out
}

// IsEmpty reports whether no digit is a candidate.
func (c Candidates) IsEmpty() bool {
	return c == 0
}

// Intersect returns the candidates present in both c and other.
func (c Candidates) Intersect(other Candidates) Candidates {
	return c & other
}

// Union returns the candidates present in either c or other.
func (c Candidates) Union(other Candidates) Candidates {
	return c | other
}

// Subtract returns the candidates in c that are not in other.
func (c Candidates) Subtract(other Candidates) Candidates {
	return c &^ other
}

// String renders the candidates as their sorted digits, e.g. "2679".
func (c Candidates) String() string {
	s := make([]byte, 0, constants.GridSize)
	for i := 1; i <= constants.GridSize; i++ {
		if c.Has(i) {
			s = append(s, byte('0'+i))
		}
	}
	return string(s)
}
