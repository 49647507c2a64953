package invariant

import (
	"github.com/katalvlaran/braidloop/exint"
	"github.com/katalvlaran/braidloop/loop"
)

// boundaryB describes the crossing coordinates implied for the two gaps
// outside the stored range: b0 left of the first puncture, bn1 right of the
// last. Both follow from the prefix sums of the b half.
func boundaryB(a, b []exint.Int) (b0, bn1 exint.Int) {
	best := a[0].Abs().Add(b[0].Pos()) // cumb before k=1 is 0
	cumb := exint.New(0)
	for k := 1; k < len(a); k++ {
		cumb = cumb.Add(b[k-1])
		cand := a[k].Abs().Add(b[k].Pos()).Add(cumb)
		best = best.Max(cand)
	}
	b0 = best.Neg()
	bn1 = b0.Neg().Sub(cumb.Add(b[len(b)-1]))
	return b0, bn1
}

// IntAxis returns the minimal number of intersections of the multicurve with
// the reference axis threading all punctures in order. The degenerate
// two-puncture loop yields 0.
//
// Complexity: O(n) exact additions.
func IntAxis(l loop.Loop) exint.Int {
	a, b := l.AB()
	m := len(a)
	if m == 0 {
		return exint.New(0)
	}
	b0, bn1 := boundaryB(a, b)

	sum := b0.Abs().Add(bn1.Abs())
	for k := 0; k < m; k++ {
		sum = sum.Add(b[k].Abs())
	}
	for k := 0; k+1 < m; k++ {
		sum = sum.Add(a[k+1].Sub(a[k]).Abs())
	}
	return sum.Add(a[0].Abs()).Add(a[m-1].Abs())
}

// Crossings returns the minimal crossing count ν of the multicurve with the
// vertical line through each of the n−1 inter-puncture gaps, left to right.
// The degenerate two-puncture loop yields nil.
//
// Complexity: O(n) exact additions.
func Crossings(l loop.Loop) []exint.Int {
	a, b := l.AB()
	m := len(a)
	if m == 0 {
		return nil
	}
	b0, _ := boundaryB(a, b)

	nu := make([]exint.Int, m+1)
	nu[0] = b0.Neg().Add(b0.Neg()) // ν₁ = −2·b₀
	for k := 0; k < m; k++ {
		nu[k+1] = nu[k].Sub(b[k]).Sub(b[k])
	}
	return nu
}

// MinLength returns the minimal geometric length of the multicurve: the sum
// of the per-gap crossing counts ν. The degenerate two-puncture loop yields 0.
//
// Complexity: O(n) exact additions.
func MinLength(l loop.Loop) exint.Int {
	sum := exint.New(0)
	for _, v := range Crossings(l) {
		sum = sum.Add(v)
	}
	return sum
}
