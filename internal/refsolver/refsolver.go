// Package refsolver implements the pedagogical reference solver of
// spec.md §4.4: a recursive Davis-Putnam solver over plain signed-integer
// clauses, with an optional unit-propagating variant backed by a
// per-variable adjacency index. It exists to give the same spec a
// simpler, recursive contract alongside the watched-literal engine in
// internal/engine; the two are not related by inheritance or shared
// state.
package refsolver

// Model is a 1-indexed signed assignment, as in internal/engine.Model.
type Model []int

// simplify applies literal lit to clauses: satisfied clauses are dropped,
// -lit is removed from the remaining ones. It reports false if a clause
// becomes empty (the "null formula sentinel" of spec.md §4.4).
//
// clauses is never mutated in place; simplify always allocates new
// clause slices so that a caller can keep the pre-simplification formula
// around (the recursive solver relies on this to try both branches, and
// the Enumerator relies on it to resume a suspended alternate branch).
func simplify(clauses [][]int, lit int) ([][]int, bool) {
	out := make([][]int, 0, len(clauses))
	for _, c := range clauses {
		newClause := make([]int, 0, len(c))
		satisfied := false
		for _, l := range c {
			if l == lit {
				satisfied = true
				break
			}
			if l == -lit {
				continue
			}
			newClause = append(newClause, l)
		}
		if satisfied {
			continue
		}
		if len(newClause) == 0 {
			return nil, false
		}
		out = append(out, newClause)
	}
	return out, true
}

// numVariables returns the largest variable index appearing in clauses.
func numVariables(clauses [][]int) int {
	max := 0
	for _, c := range clauses {
		for _, l := range c {
			v := l
			if v < 0 {
				v = -v
			}
			if v > max {
				max = v
			}
		}
	}
	return max
}

// buildModel fills in a total assignment from the literals decided along
// one branch, defaulting any variable the formula never forced to its
// positive polarity. This is the tie-break spec.md §4.4 leaves open
// ("variables not forced by the formula may appear with either
// polarity") and is what makes SolveDP/SolveDPLL/Enumerate deterministic.
func buildModel(decided []int, numVars int) Model {
	m := make(Model, numVars)
	for k := 1; k <= numVars; k++ {
		m[k-1] = k
	}
	for _, l := range decided {
		v := l
		if v < 0 {
			v = -v
		}
		if v <= numVars {
			m[v-1] = l
		}
	}
	return m
}

// SolveDP is the plain Davis-Putnam solver of spec.md §4.4: no unit
// propagation, branching on the first literal of the first clause.
func SolveDP(clauses [][]int) (Model, bool) {
	numVars := numVariables(clauses)
	decided, ok := solveDP(clauses)
	if !ok {
		return nil, false
	}
	return buildModel(decided, numVars), true
}

func solveDP(clauses [][]int) ([]int, bool) {
	if len(clauses) == 0 {
		return nil, true
	}
	lit := clauses[0][0]

	if pos, ok := simplify(clauses, lit); ok {
		if rest, ok := solveDP(pos); ok {
			return append([]int{lit}, rest...), true
		}
	}
	if neg, ok := simplify(clauses, -lit); ok {
		if rest, ok := solveDP(neg); ok {
			return append([]int{-lit}, rest...), true
		}
	}
	return nil, false
}
