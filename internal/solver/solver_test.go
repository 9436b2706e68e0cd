package solver

import (
	"testing"

	"sudoku-engine/internal/grid"
)

// S1: running the solver on an empty grid (every cell {1..9}) never
// reports Contradiction.
func TestRun_EmptyGridNeverContradicts(t *testing.T) {
	g := grid.Empty()
	result, _ := Run(g)
	if result == Contradiction {
		t.Fatal("an empty grid should never contradict")
	}
}

// S4: a full solve within 42 rounds, matching the known fixture solution.
func TestRun_FullSolve(t *testing.T) {
	const base = `
	+------------------+-------------------+--------------------+
	| 5    267  2378   | 9    14678  147   | 12346 1246 1346    |
	| 4    67   79     | 2    1567   3     | 8     16   156     |
	| 1236 26   238    | 168  14568  145   | 7     9    13456   |
	+------------------+-------------------+--------------------+
	| 269  3    2459   | 16   12569  8     | 12469 7    146     |
	| 2679 1    24579  | 67   25679  257   | 2469  3    468     |
	| 2679 8    279    | 4    123679 127   | 1269  5    16      |
	+------------------+-------------------+--------------------+
	| 237  9    6      | 1378 123478 1247  | 1345  148  134578  |
	| 37   47   1      | 5    3478   9     | 346   468  2       |
	| 8    2457 23457  | 137  12347  6     | 1345  14   9       |
	+------------------+-------------------+--------------------+
	`
	const expected = `
	+--------------+--------------+--------------+
	| 5   6   8    | 9   4   7    | 1   2   3    |
	| 4   7   9    | 2   1   3    | 8   6   5    |
	| 1   2   3    | 8   6   5    | 7   9   4    |
	+--------------+--------------+--------------+
	| 9   3   4    | 6   5   8    | 2   7   1    |
	| 6   1   5    | 7   9   2    | 4   3   8    |
	| 7   8   2    | 4   3   1    | 9   5   6    |
	+--------------+--------------+--------------+
	| 2   9   6    | 3   8   4    | 5   1   7    |
	| 3   4   1    | 5   7   9    | 6   8   2    |
	| 8   5   7    | 1   2   6    | 3   4   9    |
	+--------------+--------------+--------------+
	`

	g, err := grid.FromText(base)
	if err != nil {
		t.Fatalf("FromText(base): %v", err)
	}
	expectedGrid, err := grid.FromText(expected)
	if err != nil {
		t.Fatalf("FromText(expected): %v", err)
	}

	var result RoundResult
	var rounds int
	for rounds = 1; rounds <= 42; rounds++ {
		result = RunRound(g)
		if result == Solved || result == NoChanges || result == Contradiction {
			break
		}
	}
	if result != Solved {
		t.Fatalf("expected Solved within 42 rounds, got %s after %d rounds", result, rounds)
	}
	if !g.Equal(expectedGrid) {
		t.Errorf("solved grid does not match the expected fixture:\ngot:\n%s\nwant:\n%s", g, expectedGrid)
	}
	first := g.Cell(0, 0)
	if v, _ := first.Value(); v != 5 {
		t.Errorf("R1C1 = %d, want 5", v)
	}
}

// S6: removing every candidate from a cell is refused with
// grid.ErrContradiction, the error RunRound reports as Contradiction.
func TestRemoveEveryCandidate_Contradiction(t *testing.T) {
	g := grid.Empty()
	c := g.Cell(4, 4)
	for _, d := range []int{1, 2, 3, 4, 5, 6, 7, 8, 9} {
		if _, err := c.Remove(d); err != nil {
			return
		}
	}
	t.Fatal("expected ErrContradiction removing every candidate")
}

func TestRunRound_SolvedGridIsFixedPoint(t *testing.T) {
	const expected = `
	+--------------+--------------+--------------+
	| 5   6   8    | 9   4   7    | 1   2   3    |
	| 4   7   9    | 2   1   3    | 8   6   5    |
	| 1   2   3    | 8   6   5    | 7   9   4    |
	+--------------+--------------+--------------+
	| 9   3   4    | 6   5   8    | 2   7   1    |
	| 6   1   5    | 7   9   2    | 4   3   8    |
	| 7   8   2    | 4   3   1    | 9   5   6    |
	+--------------+--------------+--------------+
	| 2   9   6    | 3   8   4    | 5   1   7    |
	| 3   4   1    | 5   7   9    | 6   8   2    |
	| 8   5   7    | 1   2   6    | 3   4   9    |
	+--------------+--------------+--------------+
	`
	g, err := grid.FromText(expected)
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}
	if result := RunRound(g); result != Solved {
		t.Fatalf("RunRound on a solved grid = %s, want Solved", result)
	}
}
