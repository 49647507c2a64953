// Package entropy estimates the topological entropy of a braid: the
// exponential growth rate of loop length under repeated application of a
// generator word.
//
// The estimate iterates the word on the canonical loop family and tracks the
// log-ratio of consecutive minimal lengths. For pseudo-Anosov braids the
// ratio converges to log λ, the logarithm of the dilatation; for finite-order
// braids it converges to 0. Reducible braids with polynomial stretching
// converge too slowly for a fixed iteration budget and are reported via
// ErrNoConvergence together with the last estimate.
//
// Coordinates grow without bound during the iteration; exactness is
// guaranteed by the action engine's arbitrary-precision fallback, and only
// the final logarithms are taken in floating point.
package entropy
