// Package action applies braid generator words to loops in Dynnikov
// coordinates: the update recurrence at the heart of braidloop.
//
// 🚀 What does the action engine do?
//
//	Apply takes a generator word and a batch of loops sharing one puncture
//	count, and advances every loop through the word:
//	  • within a row, generators act strictly in sequence; each update
//	    consumes the finalized output of the previous one
//	  • across rows, application is an embarrassingly parallel map,
//	    fanned out over a bounded worker pool
//
// Per generator σ±i the update is a six-branch case split: boundary-low
// (i = 1), boundary-high (i = n−1), and interior (1 < i < n−1), each with a
// direction variant. Every branch combines the old coordinates through
// pos(x) = max(x,0) and neg(x) = min(x,0) clamps; all new values are computed
// into temporaries before any write, so in-step read-after-write is impossible.
//
// ✨ Exactness strategy:
//
//	Each row starts on a bounded int64 kernel whose arithmetic fails closed on
//	overflow. The first overflow promotes that row, and only that row, to an
//	unbounded math/big kernel, which redoes the interrupted generator and
//	finishes the word. Promotion is invisible to the caller; results are always
//	exact. Options.ForceBig pins the unbounded kernel for differential testing.
//
// With Options.CaptureTrace the engine also records, per row and generator,
// the five sign decisions taken inside the branch (see Step), letting
// downstream consumers reconstruct which algebraic case fired without
// replaying the word.
package action
