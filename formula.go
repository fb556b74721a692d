// Package algb is a Boolean satisfiability decision procedure for
// propositional formulas in conjunctive normal form. It is built around
// a watched-literal complete-backtracking core (Knuth's Algorithm B,
// TAOCP 7.2.2.2) meant for embedding in programs that reduce
// combinatorial problems — N-queens, Sudoku, grid puzzles — to SAT, plus
// a simpler recursive reference solver and the cardinality encoders such
// reductions typically need.
//
// The package performs no I/O and holds no package-level mutable state:
// every Formula owns its storage exclusively, and a Formula is safe to
// Solve from multiple goroutines concurrently as long as each call gets
// its own Formula.
package algb

import (
	"github.com/anvarnier/algb/internal/card"
	"github.com/anvarnier/algb/internal/engine"
	"github.com/anvarnier/algb/internal/refsolver"
)

// Literal is a signed DIMACS-style literal: a nonzero integer whose sign
// is polarity and whose magnitude is a 1-indexed variable.
type Literal = int

// Model is a total satisfying assignment: Model[k-1] is +k or -k
// according to variable k's value, for k in 1..V.
type Model []int

// Formula is a validated CNF formula ready to be solved by either the
// watched-literal engine or the recursive reference solver. A Formula
// is immutable after NewFormula returns; each Solve-family call builds
// its own private working storage.
type Formula struct {
	clauses      [][]int
	trivialUnsat bool
}

// NewFormula validates clauses (spec.md §4.6: every entry must be a
// nonzero integer in range, the empty clause sequence denotes trivial
// SAT, a zero-length clause denotes trivial UNSAT) and returns a Formula
// ready to be solved. Tautological and duplicate-literal clauses are
// tolerated, not normalized, per spec.md's open question on the matter.
func NewFormula(clauses [][]int) (*Formula, error) {
	_, trivialUnsat, err := engine.Build(clauses)
	if err != nil {
		return nil, err
	}
	return &Formula{clauses: clauses, trivialUnsat: trivialUnsat}, nil
}

// Solve runs the watched-literal engine (spec.md §4.3) and returns a
// total model, or (nil, false) if the formula is unsatisfiable. Trivial
// and algorithmic UNSAT are reported identically, per spec.md §7.
func (f *Formula) Solve() (Model, bool) {
	if f.trivialUnsat {
		return nil, false
	}
	store, trivialUnsat, err := engine.Build(f.clauses)
	if err != nil {
		panic("algb: formula validated by NewFormula failed to rebuild: " + err.Error())
	}
	if trivialUnsat {
		return nil, false
	}
	model, ok := engine.New(store).Solve()
	if !ok {
		return nil, false
	}
	return Model(model), true
}

// SolveDP runs the plain (non-unit-propagating) recursive reference
// solver of spec.md §4.4.
func (f *Formula) SolveDP() (Model, bool) {
	if f.trivialUnsat {
		return nil, false
	}
	m, ok := refsolver.SolveDP(f.clauses)
	return Model(m), ok
}

// SolveDPLL runs the unit-propagating variant of the recursive reference
// solver of spec.md §4.4.
func (f *Formula) SolveDPLL() (Model, bool) {
	if f.trivialUnsat {
		return nil, false
	}
	m, ok := refsolver.SolveDPLL(f.clauses)
	return Model(m), ok
}

// Enumerator lazily walks a Formula's models, one per satisfying branch of
// the reference solver's search. See internal/refsolver.Enumerator for
// the enumeration order guarantee.
type Enumerator struct {
	inner *refsolver.Enumerator
	empty bool
	done  bool
}

// Enumerate returns a lazy iterator over the models of f: one model per
// satisfying branch of the search, with every variable that branch leaves
// undecided set positive. Total models that differ only in such undecided
// variables are not all listed. Call Next repeatedly until it reports
// false.
func (f *Formula) Enumerate() *Enumerator {
	if f.trivialUnsat {
		return &Enumerator{empty: true}
	}
	return &Enumerator{inner: refsolver.NewEnumerator(f.clauses)}
}

// Next returns the next model, or (nil, false) once exhausted.
func (e *Enumerator) Next() (Model, bool) {
	if e.empty || e.done {
		return nil, false
	}
	m, ok := e.inner.Next()
	if !ok {
		e.done = true
		return nil, false
	}
	return Model(m), true
}

// SolveAll materializes the models Enumerate yields. Prefer Enumerate for large or
// unbounded solution spaces.
func (f *Formula) SolveAll() []Model {
	e := f.Enumerate()
	var out []Model
	for {
		m, ok := e.Next()
		if !ok {
			return out
		}
		out = append(out, m)
	}
}

// AtMost returns clauses forcing at most k of lits to be true.
func AtMost(k int, lits []Literal) [][]Literal { return card.AtMost(k, lits) }

// AtLeast returns clauses forcing at least k of lits to be true.
func AtLeast(k int, lits []Literal) [][]Literal { return card.AtLeast(k, lits) }

// Exactly returns clauses forcing exactly k of lits to be true.
func Exactly(k int, lits []Literal) [][]Literal { return card.Exactly(k, lits) }
