package engine

import "testing"

// TestInvariantsHoldDuringSearch calls CheckInvariants on the freshly
// threaded engine at the first B2 entry (d=0), runs the search, and, when
// the search returns a model, checks the invariants again at the final B2
// entry (d=V). The formula below is unsatisfiable, so only the d=0 check
// applies to it.
func TestInvariantsHoldDuringSearch(t *testing.T) {
	clauses := [][]int{
		{1, 2, -3}, {2, 3, -4}, {1, 3, 4}, {-1, 2, 4},
		{-1, -2, 3}, {-2, -3, 4}, {-3, -4, -1}, {1, -2, -4},
	}
	store, trivialUnsat, err := Build(clauses)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if trivialUnsat {
		t.Fatal("unexpectedly trivial UNSAT")
	}
	e := New(store)

	// CheckInvariants is safe to call on the freshly-threaded engine (d=0)
	// and must hold.
	e.CheckInvariants(0)

	// Run the real search. On SAT the engine returns from its final B2
	// visit at d=V, so the invariants are checked again at that depth; on
	// UNSAT there is no final B2 visit and nothing more is checked.
	if _, ok := e.Solve(); ok {
		e.CheckInvariants(store.V)
	}
}
