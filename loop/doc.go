// Package loop defines the Loop value type: the Dynnikov coordinates of a
// multicurve on an n-punctured disk.
//
// A multicurve with n punctures is encoded by 2(n−2) exact integers, split
// into two halves a[1..n−2] and b[1..n−2] stored in one backing vector.
// The puncture count is always derived from the vector length as
// n = len/2 + 2; there is no separately stored count that could desync.
//
// Convention: Canonical(p) produces the loop family for exactly p punctures,
// a all zero and b all −1, with coordinate length 2(p−2). Canonical(2) is the
// valid degenerate loop with an empty coordinate vector. No constructor adds
// a hidden basepoint puncture.
//
// Loop is immutable: constructors copy their inputs, accessors copy their
// outputs, and transforming a Loop always produces a new value.
package loop
