// Package invariant computes scalar invariants of a loop from its Dynnikov
// coordinates: the minimal intersection count with the reference axis, the
// minimal geometric length, and the per-gap crossing counts both derive from.
//
// All three share one piece of machinery: the prefix sums of the b half
// determine b₀, the implied crossing coordinate of the gap left of the first
// puncture, via
//
//	b₀ = −max_k( |a_k| + max(b_k, 0) + Σ_{j<k} b_j )
//
// From b₀ the crossing count of every inter-puncture gap follows by the
// recurrence ν₁ = −2·b₀, ν_{k+1} = ν_k − 2·b_k. IntAxis adds the a-half
// contribution; MinLength is the sum of the ν values.
//
// Every function is a pure function of the loop and cannot fail: coordinate
// shape is enforced at Loop construction, and the degenerate two-puncture
// loop yields zero by convention.
package invariant
