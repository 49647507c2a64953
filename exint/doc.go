// Package exint provides exact signed integers with two interchangeable
// representations: a bounded int64 fast path and an unbounded math/big
// fallback.
//
// Every arithmetic operation first attempts the bounded representation with an
// explicit overflow check. If the bounded result would wrap, the operation
// fails closed and is redone on the unbounded representation, so a value is
// never silently truncated. Promotion is local to the value: small results
// shrink back to the fast representation.
//
// Int is an immutable value type; all operations return a new Int. The zero
// value of Int is the number 0 and is ready to use.
//
// The checked int64 helpers (AddInt64, SubInt64, NegInt64) are exported for
// callers that run their own bounded hot loop and need the same fail-closed
// overflow signal to decide when to switch to exact values.
package exint
