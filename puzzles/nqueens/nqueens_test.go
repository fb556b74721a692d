package nqueens_test

import (
	"testing"

	"github.com/anvarnier/algb"
	"github.com/anvarnier/algb/puzzles/nqueens"
)

func TestFourQueensSAT(t *testing.T) {
	f, err := algb.NewFormula(nqueens.Encode(4))
	if err != nil {
		t.Fatalf("NewFormula: %v", err)
	}
	model, ok := f.Solve()
	if !ok {
		t.Fatal("4-queens is satisfiable")
	}
	board, err := nqueens.Decode(model, 4)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := map[string]bool{"a2 b4 c1 d3": true, "a3 b1 c4 d2": true}
	if !want[board] {
		t.Errorf("board %q is not one of the two known 4-queens solutions", board)
	}
}

func TestFourQueensAllSolutions(t *testing.T) {
	f, err := algb.NewFormula(nqueens.Encode(4))
	if err != nil {
		t.Fatalf("NewFormula: %v", err)
	}
	models := f.SolveAll()
	got := map[string]bool{}
	for _, m := range models {
		board, err := nqueens.Decode(m, 4)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		got[board] = true
	}
	want := map[string]bool{"a2 b4 c1 d3": true, "a3 b1 c4 d2": true}
	if len(got) != len(want) {
		t.Fatalf("got %d distinct boards %v, want %v", len(got), got, want)
	}
	for board := range want {
		if !got[board] {
			t.Errorf("missing expected board %q among %v", board, got)
		}
	}
}

func TestThreeQueensUnsat(t *testing.T) {
	f, err := algb.NewFormula(nqueens.Encode(3))
	if err != nil {
		t.Fatalf("NewFormula: %v", err)
	}
	if _, ok := f.Solve(); ok {
		t.Fatal("3-queens has no solution")
	}
}
