package grid

import (
	"errors"
	"fmt"
)

// ErrContradiction is returned when a candidate removal would leave a cell
// with no candidates, or an assignment would duplicate a solved value
// within a unit. It is fatal to the current solving session; see spec.md §7.
var ErrContradiction = errors.New("sudoku: contradiction")

// ErrInvalidInput is returned by FromText and NewGrid for malformed input:
// wrong token count, an out-of-range digit, or a cell built with an empty
// or duplicated candidate set.
var ErrInvalidInput = errors.New("sudoku: invalid input")

func invalidInputf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidInput}, args...)...)
}

func contradictionf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrContradiction}, args...)...)
}
