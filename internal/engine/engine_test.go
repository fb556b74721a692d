package engine

import "testing"

// satisfied reports whether model satisfies every clause of clauses,
// where model is a 1-indexed signed assignment.
func satisfied(clauses [][]int, model Model) bool {
	assigned := make(map[int]bool, len(model))
	for _, l := range model {
		assigned[l] = true
	}
	for _, c := range clauses {
		ok := false
		for _, l := range c {
			if assigned[l] {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

func solve(t *testing.T, clauses [][]int) (Model, bool) {
	t.Helper()
	store, trivialUnsat, err := Build(clauses)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if trivialUnsat {
		return nil, false
	}
	return New(store).Solve()
}

func TestScenario1ShortSAT(t *testing.T) {
	clauses := [][]int{{1, 2}, {-1, 3}, {-3, 4}, {1}}
	model, ok := solve(t, clauses)
	if !ok {
		t.Fatal("expected SAT")
	}
	if !satisfied(clauses, model) {
		t.Fatalf("model %v does not satisfy %v", model, clauses)
	}
	want := map[int]int{1: 1, 3: 3, 4: 4}
	for v, lit := range want {
		if model[v-1] != lit {
			t.Errorf("variable %d: got %d, want %d", v, model[v-1], lit)
		}
	}
}

func TestScenario2ShortestInterestingUNSAT(t *testing.T) {
	clauses := [][]int{
		{1, 2, -3}, {2, 3, -4}, {1, 3, 4}, {-1, 2, 4},
		{-1, -2, 3}, {-2, -3, 4}, {-3, -4, -1}, {1, -2, -4},
	}
	if _, ok := solve(t, clauses); ok {
		t.Fatal("expected UNSAT")
	}
}

func TestScenario3VanDerWaerden(t *testing.T) {
	// Knuth's 8-variable, 24-clause van der Waerden sample; the exact model
	// count comes from spec.md §8 scenario 3.
	clauses := vanDerWaerdenSample()

	store, trivialUnsat, err := Build(clauses)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if trivialUnsat {
		t.Fatal("unexpectedly trivial UNSAT")
	}
	model, ok := New(store).Solve()
	if !ok {
		t.Fatal("expected SAT")
	}
	if !satisfied(clauses, model) {
		t.Fatalf("model %v does not satisfy van der Waerden sample", model)
	}

	count := 0
	for _, m := range enumerateModels(clauses, 8) {
		if satisfied(clauses, m) {
			count++
		}
	}
	if count != 6 {
		t.Errorf("expected exactly 6 models, found %d", count)
	}
}

func TestDeterminism(t *testing.T) {
	clauses := [][]int{{1, 2}, {-1, 3}, {-3, 4}, {1}}
	first, ok1 := solve(t, clauses)
	second, ok2 := solve(t, clauses)
	if ok1 != ok2 {
		t.Fatal("two runs disagree on satisfiability")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("two runs disagree on variable %d: %d vs %d", i+1, first[i], second[i])
		}
	}
}

func TestEmptyClauseIsTrivialUnsat(t *testing.T) {
	_, trivialUnsat, err := Build([][]int{{1, 2}, {}})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !trivialUnsat {
		t.Error("an empty clause must be reported as trivial UNSAT")
	}
}

func TestEmptyFormulaIsTriviallySAT(t *testing.T) {
	model, ok := solve(t, nil)
	if !ok {
		t.Fatal("the empty formula is trivially SAT")
	}
	if len(model) != 0 {
		t.Errorf("expected an empty assignment, got %v", model)
	}
}

func TestBuildRejectsZeroLiteral(t *testing.T) {
	if _, _, err := Build([][]int{{1, 0}}); err == nil {
		t.Error("expected an error for a zero literal")
	}
}

// enumerateModels brute-forces every total assignment over numVars
// variables and returns the ones satisfying clauses. It exists purely as
// an independent cross-check for small instances (spec.md §8:
// "Verifiable by cross-checking against a reference enumerator").
func enumerateModels(clauses [][]int, numVars int) []Model {
	var out []Model
	total := 1 << numVars
	for mask := 0; mask < total; mask++ {
		m := make(Model, numVars)
		for v := 0; v < numVars; v++ {
			if mask&(1<<v) != 0 {
				m[v] = v + 1
			} else {
				m[v] = -(v + 1)
			}
		}
		if satisfied(clauses, m) {
			out = append(out, m)
		}
	}
	return out
}

func vanDerWaerdenSample() [][]int {
	return [][]int{
		{1, 2, 3}, {-1, -2, -3}, {2, 3, 4}, {-2, -3, -4},
		{3, 4, 5}, {-3, -4, -5}, {4, 5, 6}, {-4, -5, -6},
		{5, 6, 7}, {-5, -6, -7}, {6, 7, 8}, {-6, -7, -8},
		{1, 3, 5}, {-1, -3, -5}, {2, 4, 6}, {-2, -4, -6},
		{3, 5, 7}, {-3, -5, -7}, {4, 6, 8}, {-4, -6, -8},
		{1, 4, 7}, {-1, -4, -7}, {2, 5, 8}, {-2, -5, -8},
	}
}
