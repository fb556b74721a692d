// Package sudoku encodes 9x9 Sudoku as CNF. Like puzzles/nqueens, it is
// an external collaborator of the core engine: it only emits CNF via
// algb's cardinality encoders and consumes a single assignment.
package sudoku

import (
	"fmt"

	"github.com/anvarnier/algb"
)

const (
	size    = 9
	boxSize = 3
)

// Var returns the 1-indexed SAT variable asserting that cell (row, col)
// holds digit d, all 0-indexed (row, col in 0..8, d in 0..8 meaning
// digit d+1).
func Var(row, col, d int) int {
	return row*size*size + col*size + d + 1
}

// Encode returns the CNF encoding of a 9x9 Sudoku with the given givens.
// givens[row][col] is 0 for a blank cell, or the 1-9 digit fixed there.
func Encode(givens [size][size]int) [][]int {
	var clauses [][]int

	// Every cell holds exactly one digit.
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			lits := make([]int, size)
			for d := 0; d < size; d++ {
				lits[d] = Var(row, col, d)
			}
			clauses = append(clauses, algb.Exactly(1, lits)...)
		}
	}

	// Every row holds each digit exactly once.
	for row := 0; row < size; row++ {
		for d := 0; d < size; d++ {
			lits := make([]int, size)
			for col := 0; col < size; col++ {
				lits[col] = Var(row, col, d)
			}
			clauses = append(clauses, algb.Exactly(1, lits)...)
		}
	}

	// Every column holds each digit exactly once.
	for col := 0; col < size; col++ {
		for d := 0; d < size; d++ {
			lits := make([]int, size)
			for row := 0; row < size; row++ {
				lits[row] = Var(row, col, d)
			}
			clauses = append(clauses, algb.Exactly(1, lits)...)
		}
	}

	// Every 3x3 box holds each digit exactly once.
	for br := 0; br < size; br += boxSize {
		for bc := 0; bc < size; bc += boxSize {
			for d := 0; d < size; d++ {
				lits := make([]int, 0, size)
				for r := br; r < br+boxSize; r++ {
					for c := bc; c < bc+boxSize; c++ {
						lits = append(lits, Var(r, c, d))
					}
				}
				clauses = append(clauses, algb.Exactly(1, lits)...)
			}
		}
	}

	// Givens are unit clauses.
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if g := givens[row][col]; g != 0 {
				clauses = append(clauses, []int{Var(row, col, g-1)})
			}
		}
	}

	return clauses
}

// Decode renders a model as the completed 9x9 grid of 1-9 digits.
func Decode(model []int) ([size][size]int, error) {
	var grid [size][size]int
	need := size * size * size
	if len(model) < need {
		return grid, fmt.Errorf("sudoku: model has %d variables, need %d", len(model), need)
	}
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			found := 0
			for d := 0; d < size; d++ {
				if model[Var(row, col, d)-1] > 0 {
					found++
					grid[row][col] = d + 1
				}
			}
			if found != 1 {
				return grid, fmt.Errorf("sudoku: cell (%d,%d) has %d digits set, want 1", row, col, found)
			}
		}
	}
	return grid, nil
}
