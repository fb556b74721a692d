package refsolver

import "sort"

// adjacency maps each 0-indexed variable to the sorted list of clause
// indices it appears in (either polarity). It is built once per solve
// call and never mutated; only the assignment changes across recursive
// branches, so simplification after each new assignment only needs to
// re-examine the incident clauses named here (spec.md §4.4).
type adjacency [][]int

func buildAdjacency(clauses [][]int, numVars int) adjacency {
	adj := make(adjacency, numVars)
	for ci, c := range clauses {
		seen := make(map[int]bool, len(c))
		for _, l := range c {
			v := l
			if v < 0 {
				v = -v
			}
			if !seen[v] {
				seen[v] = true
				adj[v-1] = append(adj[v-1], ci)
			}
		}
	}
	for i := range adj {
		sort.Ints(adj[i])
	}
	return adj
}

// clauseState reports how a clause fares under a partial assignment
// (assign[v-1] == 0 means unassigned, else +1/-1).
type clauseState int

const (
	csSatisfied clauseState = iota
	csConflict
	csUnit
	csMulti
)

// evalClause classifies clause c under assign, returning the forcing
// literal when the state is csUnit.
func evalClause(c []int, assign []int8) (clauseState, int) {
	unassignedCount := 0
	forced := 0
	for _, l := range c {
		v := l
		sign := int8(1)
		if v < 0 {
			v = -v
			sign = -1
		}
		switch a := assign[v-1]; {
		case a == sign:
			return csSatisfied, 0
		case a == 0:
			unassignedCount++
			forced = l
		}
	}
	switch {
	case unassignedCount == 0:
		return csConflict, 0
	case unassignedCount == 1:
		return csUnit, forced
	default:
		return csMulti, 0
	}
}

// upState is the mutable state threaded through one DPLL+UP recursion:
// the clause list and the adjacency index are shared read-only across all
// branches; only assign is copied per branch.
type upState struct {
	clauses [][]int
	adj     adjacency
	numVars int
}

// SolveDPLL is the unit-propagating successor of SolveDP (spec.md §4.4):
// before branching, it repeatedly resolves any unit clause reachable from
// the adjacency index of the most recently assigned variable, failing
// locally if that ever empties a clause.
func SolveDPLL(clauses [][]int) (Model, bool) {
	numVars := numVariables(clauses)
	st := &upState{
		clauses: clauses,
		adj:     buildAdjacency(clauses, numVars),
		numVars: numVars,
	}
	assign := make([]int8, numVars)
	touched := make([]int, len(clauses))
	for i := range touched {
		touched[i] = i
	}
	final, ok := st.solve(assign, touched)
	if !ok {
		return nil, false
	}
	return buildModel(assignToLiterals(final), numVars), true
}

func assignToLiterals(assign []int8) []int {
	out := make([]int, 0, len(assign))
	for i, a := range assign {
		if a > 0 {
			out = append(out, i+1)
		} else if a < 0 {
			out = append(out, -(i + 1))
		}
	}
	return out
}

// solve propagates units reachable from touched, then either reports a
// total model, a conflict, or branches on the first unassigned literal of
// the first non-satisfied clause. assign is owned by the caller and is
// copied before being mutated, so failed branches never corrupt a
// sibling's state.
func (st *upState) solve(assign []int8, touched []int) ([]int8, bool) {
	assign = append([]int8(nil), assign...)
	queue := append([]int(nil), touched...)

	for len(queue) > 0 {
		ci := queue[0]
		queue = queue[1:]

		state, lit := evalClause(st.clauses[ci], assign)
		switch state {
		case csConflict:
			return nil, false
		case csUnit:
			v := lit
			sign := int8(1)
			if v < 0 {
				v = -v
				sign = -1
			}
			if assign[v-1] != 0 {
				continue // already resolved by an earlier propagation
			}
			assign[v-1] = sign
			queue = append(queue, st.adj[v-1]...)
		}
	}

	branchVar, branchLit, complete := st.pickBranch(assign)
	if complete {
		return assign, true
	}

	tryAssign := append([]int8(nil), assign...)
	tryAssign[branchVar] = 1
	if branchLit < 0 {
		tryAssign[branchVar] = -1
	}
	if result, ok := st.solve(tryAssign, st.adj[branchVar]); ok {
		return result, true
	}

	tryOther := append([]int8(nil), assign...)
	tryOther[branchVar] = -tryAssign[branchVar]
	return st.solve(tryOther, st.adj[branchVar])
}

// pickBranch scans the clauses in order for the first one not yet
// satisfied and returns its first unassigned literal. complete is true
// once every clause is satisfied.
func (st *upState) pickBranch(assign []int8) (varIdx int, lit int, complete bool) {
	for _, c := range st.clauses {
		state, forced := evalClause(c, assign)
		if state == csSatisfied {
			continue
		}
		if state == csConflict {
			panic("algb: conflicting clause survived unit propagation")
		}
		l := forced
		if l == 0 {
			for _, cl := range c {
				cv := cl
				if cv < 0 {
					cv = -cv
				}
				if assign[cv-1] == 0 {
					l = cl
					break
				}
			}
		}
		v := l
		if v < 0 {
			v = -v
		}
		return v - 1, l, false
	}
	return 0, 0, true
}
