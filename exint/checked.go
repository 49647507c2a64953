package exint

import "math"

// Checked int64 arithmetic for bounded hot loops. Each helper returns
// ok == false instead of a wrapped result when the exact value does not fit
// in an int64; callers must treat that as a signal to redo the computation
// on the unbounded representation.

// AddInt64 returns x + y and whether the sum fits in an int64.
func AddInt64(x, y int64) (int64, bool) {
	s := x + y
	// Overflow iff both operands share a sign and the sum flipped it.
	return s, (x^s)&(y^s) >= 0
}

// SubInt64 returns x - y and whether the difference fits in an int64.
func SubInt64(x, y int64) (int64, bool) {
	d := x - y
	// Overflow iff operand signs differ and the result took y's sign.
	return d, (x^y)&(x^d) >= 0
}

// NegInt64 returns -x and whether the negation fits in an int64.
// The single failing input is math.MinInt64.
func NegInt64(x int64) (int64, bool) {
	if x == math.MinInt64 {
		return 0, false
	}
	return -x, true
}
