// Package braidloop tracks how loops on a punctured disk stretch and fold
// under braid moves, using exact integer Dynnikov coordinates.
//
// 🚀 What is braidloop?
//
//	A pure-Go kernel for the central computation of braid dynamics:
//		• Loop coordinates: a 2(n−2) integer vector encoding a multicurve
//		• Generator action: exact case-split update under braid generators
//		• Invariants: minimal length & axis-intersection count per loop
//		• Entropy: log growth rate of loop length under iterated braiding
//
// ✨ Why choose braidloop?
//
//   - Exact forever – int64 fast path with automatic math/big promotion,
//     never a wrong answer no matter how large coordinates grow
//   - Batch-friendly – many loops advance in parallel across CPU cores
//   - Traceable – optional capture of the sign decisions inside each update
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under six subpackages:
//
//	exint/     - exact integers: bounded fast path + unbounded fallback
//	loop/      - the Loop value type and its constructors
//	braid/     - generator words (signed generator index sequences)
//	action/    - the generator-action engine (the heart of the library)
//	invariant/ - minimal length, axis intersections, gap crossing counts
//	entropy/   - topological entropy estimation by iterated action
//
// Quick ASCII example, four punctures and the canonical loop family:
//
//	 ●   ●   ●   ●
//	( 1   2 ) 3   4      b = [−1, −1], a = [0, 0]
//	( 1   2   3 ) 4
//
// Applying σ₁ swaps punctures 1 and 2 and drags every loop along with them;
// iterating a pseudo-Anosov word stretches loops exponentially, and the
// growth exponent is the braid's topological entropy.
//
//	go get github.com/katalvlaran/braidloop
package braidloop
