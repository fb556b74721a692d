package refsolver

// Enumerator lazily walks the solution space of a CNF formula using the
// plain Davis-Putnam branching rule (first literal of the first clause),
// reifying the natural recursion of spec.md §4.4 as the explicit frame
// stack spec.md's design notes ask for ("do not flatten to a materialized
// list by default"). Call Next repeatedly until its second return value
// is false.
//
// Enumeration order is lexicographic by decision sequence, with the
// branch that makes the chosen literal true explored before the branch
// that makes it false: this is the open question spec.md leaves for
// implementations to settle, and is the order Enumerator commits to.
type Enumerator struct {
	stack   []frame
	numVars int
}

// frame is one unit of pending work. A plain frame explores clauses
// directly; an alternate frame first simplifies by -lit (the branch that
// was deferred when lit's own branch was pushed) before exploring.
type frame struct {
	clauses  [][]int
	decided  []int
	lit      int
	alternate bool
}

// NewEnumerator prepares an Enumerator over clauses. No search happens
// until Next is called.
func NewEnumerator(clauses [][]int) *Enumerator {
	return &Enumerator{
		stack:   []frame{{clauses: clauses}},
		numVars: numVariables(clauses),
	}
}

// Next returns the next model in the enumeration, or (nil, false) once
// the search space is exhausted.
func (e *Enumerator) Next() (Model, bool) {
	for len(e.stack) > 0 {
		fr := e.stack[len(e.stack)-1]
		e.stack = e.stack[:len(e.stack)-1]

		clauses := fr.clauses
		decided := fr.decided
		if fr.alternate {
			simplified, ok := simplify(clauses, -fr.lit)
			if !ok {
				continue // this alternate branch conflicts; dead end
			}
			clauses = simplified
			decided = appendLit(decided, -fr.lit)
		}

		if len(clauses) == 0 {
			return buildModel(decided, e.numVars), true
		}

		lit := clauses[0][0]
		// Push the deferred -lit branch first so it is only explored
		// after the lit subtree (pushed last, popped first) is
		// exhausted.
		e.stack = append(e.stack, frame{clauses: clauses, decided: decided, lit: lit, alternate: true})

		if posClauses, ok := simplify(clauses, lit); ok {
			e.stack = append(e.stack, frame{clauses: posClauses, decided: appendLit(decided, lit)})
		}
	}
	return nil, false
}

func appendLit(decided []int, lit int) []int {
	out := make([]int, len(decided)+1)
	copy(out, decided)
	out[len(decided)] = lit
	return out
}

// SolveAll drains an Enumerator over clauses into a materialized slice.
// Use NewEnumerator directly when lazy iteration is preferable.
func SolveAll(clauses [][]int) []Model {
	e := NewEnumerator(clauses)
	var models []Model
	for {
		m, ok := e.Next()
		if !ok {
			return models
		}
		models = append(models, m)
	}
}
