package engine

import "fmt"

// Formula is the flat, index-encoded clause store of spec.md §3: all
// literal occurrences concatenated in clause order, with per-clause
// boundaries in start. Clause i occupies literals[start[i]:start[i+1]].
type Formula struct {
	literals []Literal
	start    []int // len M+1
	V        int   // number of variables
	M        int   // number of clauses
}

// Build validates a sequence of signed-integer clauses and constructs the
// flat formula store. Per spec.md §4.2, validation runs in two full passes
// over the whole formula: first every clause's literals are checked for
// the malformed-input and out-of-range errors of spec.md §7, then — only
// once no such error exists anywhere in the formula — a second pass looks
// for a zero-length clause. A clause of length zero is not itself an
// error: it is reported back to the caller via the trivialUnsat return so
// Solve can short-circuit before any storage is allocated.
func Build(clauses [][]int) (f *Formula, trivialUnsat bool, err error) {
	maxVar := 0
	total := 0
	for ci, clause := range clauses {
		for _, lit := range clause {
			if lit == 0 {
				return nil, false, fmt.Errorf("algb: clause %d contains literal 0", ci)
			}
			v := lit
			if v < 0 {
				v = -v
			}
			if v > maxVarMagnitude {
				return nil, false, fmt.Errorf("algb: clause %d: variable %d exceeds the supported magnitude", ci, v)
			}
			if v > maxVar {
				maxVar = v
			}
			total++
		}
	}

	for _, clause := range clauses {
		if len(clause) == 0 {
			return nil, true, nil
		}
	}

	f = &Formula{
		V:        maxVar,
		M:        len(clauses),
		literals: make([]Literal, total),
		start:    make([]int, len(clauses)+1),
	}

	pos := 0
	for ci, clause := range clauses {
		f.start[ci] = pos
		for _, lit := range clause {
			code, encErr := Encode(lit)
			if encErr != nil {
				return nil, false, fmt.Errorf("algb: clause %d: %w", ci, encErr)
			}
			f.literals[pos] = code
			pos++
		}
	}
	f.start[len(clauses)] = pos

	return f, false, nil
}
