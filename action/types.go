package action

import (
	"errors"
	"runtime"
)

// ErrMixedBatch indicates a batch whose rows disagree on puncture count.
var ErrMixedBatch = errors.New("action: batch rows must share one puncture count")

// Step records the sign decisions of one generator application to one row.
//
// Slot layout; unused slots stay 0:
//   - boundary branches (i = 1 or i = n−1):
//     [0] sign of the coupling b coordinate before the update,
//     [1] sign of its replacement.
//   - interior branches (1 < i < n−1), all signs taken before the update:
//     [0] sign of b[i], [1] sign of b[i−1], [2] sign of the auxiliary c
//     (positive direction) or d (negative direction), [3] and [4] signs of
//     the two nested clamp arguments derived from it.
type Step [5]int8

// Trace is the optional branch trace of one Apply call:
// Signs[row][j] holds the Step for generator j applied to that row.
type Trace struct {
	Signs [][]Step
}

// Options configures Apply.
//   - CaptureTrace: also record a Step per row and generator.
//   - Workers: upper bound on rows updated concurrently;
//     0 or negative means runtime.GOMAXPROCS(0).
//   - ForceBig: start every row on the unbounded kernel instead of the
//     int64 fast path (reference mode for differential tests).
type Options struct {
	CaptureTrace bool
	Workers      int
	ForceBig     bool
}

// DefaultOptions returns the default Apply configuration:
// no trace, one worker per logical CPU, fast path enabled.
func DefaultOptions() Options {
	return Options{Workers: runtime.GOMAXPROCS(0)}
}

func (o *Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}
