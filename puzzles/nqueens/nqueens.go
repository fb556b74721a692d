// Package nqueens encodes the N-queens puzzle as CNF, exercising the
// root algb package's cardinality encoders the way any external
// collaborator of the watched-literal engine would (spec.md §1: puzzle
// encoders are out of scope for the core and consume the solver only
// through its public CNF/model contract).
package nqueens

import (
	"fmt"
	"strings"

	"github.com/anvarnier/algb"
)

// Var returns the 1-indexed SAT variable for a queen at (row, col), both
// 0-indexed, on an n*n board.
func Var(n, row, col int) int {
	return row*n + col + 1
}

// Encode returns the CNF encoding of placing n non-attacking queens on
// an n*n board: exactly one queen per row, exactly one per column, and
// at most one queen per diagonal in each direction.
func Encode(n int) [][]int {
	var clauses [][]int

	for row := 0; row < n; row++ {
		lits := make([]int, n)
		for col := 0; col < n; col++ {
			lits[col] = Var(n, row, col)
		}
		clauses = append(clauses, algb.Exactly(1, lits)...)
	}

	for col := 0; col < n; col++ {
		lits := make([]int, n)
		for row := 0; row < n; row++ {
			lits[row] = Var(n, row, col)
		}
		clauses = append(clauses, algb.Exactly(1, lits)...)
	}

	for _, lits := range diagonals(n) {
		if len(lits) > 1 {
			clauses = append(clauses, algb.AtMost(1, lits)...)
		}
	}

	return clauses
}

// diagonals returns the variable lists along every "/" and "\" diagonal
// of an n*n board, in a fixed order (by offset) so that Encode's output
// is deterministic, per spec.md §5's ordering guarantee.
func diagonals(n int) [][]int {
	downRight := make([][]int, 2*n-1) // indexed by (row - col) + (n-1)
	downLeft := make([][]int, 2*n-1)  // indexed by row + col
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			v := Var(n, row, col)
			downRight[row-col+n-1] = append(downRight[row-col+n-1], v)
			downLeft[row+col] = append(downLeft[row+col], v)
		}
	}
	out := make([][]int, 0, len(downRight)+len(downLeft))
	out = append(out, downRight...)
	out = append(out, downLeft...)
	return out
}

// Decode renders a model as the board notation of spec.md §8, e.g.
// "a2 b4 c1 d3": one "<column letter><row number>" token per column, in
// column order, naming the row holding that column's queen.
func Decode(model []int, n int) (string, error) {
	if len(model) < n*n {
		return "", fmt.Errorf("nqueens: model has %d variables, need %d", len(model), n*n)
	}
	tokens := make([]string, n)
	for col := 0; col < n; col++ {
		row := -1
		for r := 0; r < n; r++ {
			if model[Var(n, r, col)-1] > 0 {
				if row != -1 {
					return "", fmt.Errorf("nqueens: column %d has more than one queen", col)
				}
				row = r
			}
		}
		if row == -1 {
			return "", fmt.Errorf("nqueens: column %d has no queen", col)
		}
		tokens[col] = fmt.Sprintf("%c%d", 'a'+col, row+1)
	}
	return strings.Join(tokens, " "), nil
}
