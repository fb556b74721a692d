// Package card implements the binomial cardinality encoders of spec.md
// §4.5: at-most-k, at-least-k and exactly-k over a slice of signed
// literals, expressed as ordinary CNF clauses.
package card

// AtMost returns clauses forcing at most k of lits to be true: one clause
// of negations for every (k+1)-subset of lits. Returns nil if k >= len(lits).
func AtMost(k int, lits []int) [][]int {
	var out [][]int
	forEachCombination(len(lits), k+1, func(idx []int) {
		clause := make([]int, len(idx))
		for i, ix := range idx {
			clause[i] = -lits[ix]
		}
		out = append(out, clause)
	})
	return out
}

// AtLeast returns clauses forcing at least k of lits to be true: one
// clause of the subset's own literals for every (n-k+1)-subset of lits.
// Returns nil if k <= 0 or k > len(lits).
func AtLeast(k int, lits []int) [][]int {
	var out [][]int
	if k <= 0 || k > len(lits) {
		return out
	}
	forEachCombination(len(lits), len(lits)-k+1, func(idx []int) {
		clause := make([]int, len(idx))
		for i, ix := range idx {
			clause[i] = lits[ix]
		}
		out = append(out, clause)
	})
	return out
}

// Exactly returns AtMost(k, lits) concatenated with AtLeast(k, lits).
func Exactly(k int, lits []int) [][]int {
	out := AtMost(k, lits)
	out = append(out, AtLeast(k, lits)...)
	return out
}

// forEachCombination invokes f once for every k-subset of {0, ..., n-1},
// represented as a strictly increasing index vector, in lexicographic
// order. Advancement is rightmost-first with carry, per spec.md §4.5:
// the canonical enumerator whose ordering is externally observable and
// must be preserved for test determinism.
func forEachCombination(n, k int, f func(idx []int)) {
	if k < 0 || k > n {
		return
	}
	if k == 0 {
		f(nil)
		return
	}

	c := make([]int, k)
	for i := range c {
		c[i] = i
	}
	for {
		f(c)

		i := k - 1
		for i >= 0 && c[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		c[i]++
		for j := i + 1; j < k; j++ {
			c[j] = c[j-1] + 1
		}
	}
}
