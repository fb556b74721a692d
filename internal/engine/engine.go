package engine

// Model is a 1-indexed signed assignment: Model[k-1] is +k or -k according
// to variable k's value.
type Model []int

// state names the B1-B6 steps of Algorithm B (TAOCP 7.2.2.2 §4.3). The
// source algorithm's non-local jumps are reproduced here as explicit
// transitions of a single dispatch loop in Solve.
type state int

const (
	stateChoose      state = iota // B2: rejoice or choose
	stateUnwatch                  // B3: try to stop watching ¬l
	stateRetry                    // B5: try again
	stateBacktrack                // B6: backtrack
)

// Engine owns all storage for one solver invocation: the flat formula
// store plus the watch chains and decision stack that the search driver
// mutates in place. An Engine is single-shot — Solve runs to completion
// or failure and the Engine is then discarded.
type Engine struct {
	f *Formula

	// watch[l] is the clause index heading the chain of clauses currently
	// watching literal l, or the sentinel M if the chain is empty.
	watch []int

	// next[i] is the clause index following i in whatever chain i belongs
	// to, or the sentinel M.
	next []int

	// move[d] records, for decision depth d, which phase was tried first
	// and whether the level has been retried. See spec.md §3.
	move []uint8
}

// New threads the initial watch chains (spec.md §4.2 step 6) and returns
// an Engine ready to run Solve.
func New(f *Formula) *Engine {
	e := &Engine{
		f:     f,
		watch: make([]int, 2*f.V),
		next:  make([]int, f.M),
		move:  make([]uint8, f.V),
	}
	for i := range e.watch {
		e.watch[i] = f.M
	}
	for i := range e.next {
		e.next[i] = f.M
	}
	// Scanning in reverse clause-index order makes each chain end up in
	// ascending clause-index order, which B3's termination argument
	// relies on (spec.md §4.2 step 6).
	for i := f.M - 1; i >= 0; i-- {
		l0 := f.literals[f.start[i]]
		e.next[i] = e.watch[l0]
		e.watch[l0] = i
	}
	return e
}

// Solve runs the B1-B6 state machine to completion, returning a total
// model on success or (nil, false) on UNSAT.
func (e *Engine) Solve() (Model, bool) {
	f := e.f
	M := f.M

	d := 0          // B1: initialize.
	var l Literal   // current decision literal
	st := stateChoose

	for {
		switch st {
		case stateChoose:
			if d == f.V {
				return e.buildModel(), true
			}
			posLit := Literal(2 * d)
			negLit := posLit.Complement()
			bit := uint8(0)
			if e.watch[posLit] >= M || e.watch[negLit] < M {
				bit = 1
			}
			e.move[d] = bit
			l = posLit | Literal(e.move[d]&1)
			st = stateUnwatch

		case stateUnwatch:
			notL := l.Complement()
			j := e.watch[notL]
			stuck := false
			for j != M {
				i := f.start[j]
				iEnd := f.start[j+1]
				jNext := e.next[j]

				replaced := false
				for k := i + 1; k < iEnd; k++ {
					cand := f.literals[k]
					v := cand.Var()
					notFalse := v > d
					if !notFalse {
						notFalse = (int(cand)+int(e.move[v]))&1 == 0
					}
					if notFalse {
						f.literals[i], f.literals[k] = f.literals[k], f.literals[i]
						e.next[j] = e.watch[cand]
						e.watch[cand] = j
						replaced = true
						break
					}
				}

				if !replaced {
					// Clause j cannot drop ¬l: it (and the untouched tail
					// of the chain reachable via next[j]) stays watching
					// ¬l. Re-entering B3 later resumes exactly here.
					e.watch[notL] = j
					stuck = true
					break
				}
				j = jNext
			}

			if stuck {
				st = stateRetry
			} else {
				e.watch[notL] = M // B4: the chain is now empty.
				d++
				st = stateChoose
			}

		case stateRetry:
			l = Literal(2*d) | Literal(e.move[d]&1)
			if e.move[d] < 2 {
				e.move[d] ^= 3
				l = l.Complement()
				st = stateUnwatch
			} else {
				st = stateBacktrack
			}

		case stateBacktrack:
			if d == 0 {
				return nil, false
			}
			d--
			if e.move[d] < 2 {
				st = stateRetry
			}
			// else: both phases already tried at this level too, loop
			// back through stateBacktrack again.

		default:
			panic("algb: unreachable engine state")
		}
	}
}

func (e *Engine) buildModel() Model {
	m := make(Model, e.f.V)
	for k := 0; k < e.f.V; k++ {
		sign := 1
		if e.move[k]&1 != 0 {
			sign = -1
		}
		m[k] = sign * (k + 1)
	}
	return m
}

// CheckInvariants re-derives the watched-literal invariants of spec.md §8
// ("Watched-literal invariants, assertable at every B2 entry") and panics
// if any of them is violated. It is O(M + P) and is meant for tests, not
// for use inside Solve's hot loop.
func (e *Engine) CheckInvariants(d int) {
	f := e.f
	seen := make([]int, f.M)
	for l := 0; l < 2*f.V; l++ {
		for j := e.watch[l]; j != f.M; j = e.next[j] {
			if f.literals[f.start[j]] != Literal(l) {
				panic("algb: clause is watched by a literal that is not its first literal")
			}
			seen[j]++
			if seen[j] > 1 {
				panic("algb: watch-chain cycle or duplicate membership detected")
			}
			v := Literal(l).Var()
			if v >= d {
				continue
			}
			if (int(l)+int(e.move[v]))&1 != 0 {
				panic("algb: watched literal is false under the current partial assignment")
			}
		}
	}
	for j := 0; j < f.M; j++ {
		if seen[j] != 1 {
			panic("algb: clause is not watched by exactly one literal")
		}
	}
}
