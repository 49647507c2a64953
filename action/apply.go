package action

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/braidloop/braid"
	"github.com/katalvlaran/braidloop/exint"
	"github.com/katalvlaran/braidloop/loop"
)

// Apply advances every loop in the batch through the generator word w and
// returns the updated batch in the same row order. The input batch is never
// mutated. A non-nil *Trace is returned iff opts.CaptureTrace is set.
//
// Validation happens before any row is touched: a generator magnitude outside
// [1, n−1] surfaces braid.ErrRange, and rows with differing puncture counts
// surface ErrMixedBatch; in both cases no partial results are produced.
// The empty word is the identity; an empty batch is a valid no-op.
//
// Complexity: O(rows × len(w)) exact-arithmetic branch evaluations, rows
// processed concurrently up to opts.Workers.
func Apply(w braid.Word, loops []loop.Loop, opts *Options) ([]loop.Loop, *Trace, error) {
	var o Options
	if opts != nil {
		o = *opts
	} else {
		o = DefaultOptions()
	}

	if len(loops) == 0 {
		if o.CaptureTrace {
			return nil, &Trace{}, nil
		}
		return nil, nil, nil
	}

	// Whole-batch validation: fail before any work starts.
	n := loops[0].N()
	for r, l := range loops {
		if l.N() != n {
			return nil, nil, fmt.Errorf("%w: row %d has n=%d, row 0 has n=%d",
				ErrMixedBatch, r, l.N(), n)
		}
	}
	if err := w.Validate(n); err != nil {
		return nil, nil, fmt.Errorf("action: %w", err)
	}

	out := make([]loop.Loop, len(loops))
	var trace *Trace
	if o.CaptureTrace {
		trace = &Trace{Signs: make([][]Step, len(loops))}
	}

	// Rows are independent: fan out over a bounded worker pool and join.
	var g errgroup.Group
	g.SetLimit(o.workers())
	for r := range loops {
		r := r
		g.Go(func() error {
			res, steps := applyRow(loops[r], w, o.ForceBig, o.CaptureTrace)
			out[r] = res
			if trace != nil {
				trace.Signs[r] = steps
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return out, trace, nil
}

// applyRow runs the full word on one row. It starts on the int64 kernel
// unless forceBig is set; the first overflow promotes the row to the
// unbounded kernel, which redoes the interrupted generator and finishes
// the word. The fast kernel writes nothing on failure, so the redo always
// sees the previous generator's finalized coordinates.
func applyRow(l loop.Loop, w braid.Word, forceBig, capture bool) (loop.Loop, []Step) {
	var steps []Step
	if capture {
		steps = make([]Step, len(w))
	}

	n := l.N()
	if n == 2 {
		// Degenerate disk: the only generator swaps the two punctures and
		// fixes every loop; coordinates are empty, traces stay zero.
		return l, steps
	}

	fast := !forceBig
	var av, bv []int64
	if fast {
		av, bv, fast = int64Halves(l)
	}
	var ae, be []exint.Int
	if !fast {
		ae, be = exactHalves(l)
	}

	for j, g := range w {
		var st Step
		if fast {
			if !stepFast(av, bv, n, g, &st) {
				// Overflow: promote this row and redo the current generator.
				ae, be = promoteHalves(av, bv)
				fast = false
			}
		}
		if !fast {
			st = Step{}
			stepExact(ae, be, n, g, &st)
		}
		if capture {
			steps[j] = st
		}
	}

	if fast {
		return loopFromInt64(av, bv), steps
	}
	return loopFromExact(ae, be), steps
}
