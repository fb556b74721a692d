package sudoku_test

import (
	"testing"

	"github.com/anvarnier/algb"
	"github.com/anvarnier/algb/puzzles/sudoku"
)

// nearlyComplete leaves only one cell blank (0) so the search
// stays shallow without relying on any branching heuristic.
var nearlyComplete = [9][9]int{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 0},
}

func TestSudokuSolvesNearlyCompleteGrid(t *testing.T) {
	f, err := algb.NewFormula(sudoku.Encode(nearlyComplete))
	if err != nil {
		t.Fatalf("NewFormula: %v", err)
	}
	model, ok := f.Solve()
	if !ok {
		t.Fatal("expected SAT")
	}
	grid, err := sudoku.Decode(model)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if grid[8][8] != 9 {
		t.Errorf("grid[8][8] = %d, want 9", grid[8][8])
	}
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			if g := nearlyComplete[row][col]; g != 0 && grid[row][col] != g {
				t.Errorf("grid[%d][%d] = %d, want given %d", row, col, grid[row][col], g)
			}
		}
	}
}

func TestSudokuContradictoryGivensUnsat(t *testing.T) {
	givens := nearlyComplete
	givens[0][1] = 5 // row 0 already holds a 5 at column 0
	f, err := algb.NewFormula(sudoku.Encode(givens))
	if err != nil {
		t.Fatalf("NewFormula: %v", err)
	}
	if _, ok := f.Solve(); ok {
		t.Fatal("expected UNSAT: two 5s forced into the same row")
	}
}
