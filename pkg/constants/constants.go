// Package constants holds the grid-shape constants shared by the grid,
// techniques, and solver packages.
package constants

// Grid shape
const (
	GridSize   = 9
	BoxSize    = 3
	TotalCells = 81
)

// MaxRounds bounds the outer convenience loop in the solver package so a
// pathological technique interaction cannot spin forever.
const MaxRounds = 2000
