// Package engine implements the watched-literal search driver (Knuth's
// Algorithm B, TAOCP 7.2.2.2) on a flat, index-encoded formula
// representation.
package engine

import "fmt"

// maxVarMagnitude bounds the magnitude of a DIMACS literal accepted by
// Encode. Literals whose variable would not fit comfortably in a signed
// 32-bit code are rejected.
const maxVarMagnitude = 1<<31 - 1

// Literal is an internal, unsigned-shaped literal code in [0, 2V). Code 2k
// is the positive literal of variable k+1; code 2k+1 is its negation.
type Literal int

// Encode converts a signed DIMACS literal (nonzero, |l| < 2^31) into its
// internal code.
func Encode(l int) (Literal, error) {
	if l == 0 {
		return 0, fmt.Errorf("algb: literal 0 is not valid (variables start at 1)")
	}
	v := l
	neg := 0
	if v < 0 {
		v = -v
		neg = 1
	}
	if v > maxVarMagnitude {
		return 0, fmt.Errorf("algb: variable %d exceeds the supported magnitude (%d)", v, maxVarMagnitude)
	}
	return Literal(2*(v-1) + neg), nil
}

// Decode inverts Encode, returning the signed DIMACS literal for l.
func Decode(l Literal) int {
	v := int(l)>>1 + 1
	if l&1 != 0 {
		return -v
	}
	return v
}

// Var returns the 0-indexed variable of l.
func (l Literal) Var() int { return int(l) >> 1 }

// Polarity returns 0 for a positive literal, 1 for a negated one.
func (l Literal) Polarity() int { return int(l) & 1 }

// Complement returns the negation of l.
func (l Literal) Complement() Literal { return l ^ 1 }

func (l Literal) String() string {
	if l.Polarity() == 0 {
		return fmt.Sprintf("%d", l.Var()+1)
	}
	return fmt.Sprintf("-%d", l.Var()+1)
}
