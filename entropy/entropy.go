package entropy

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/katalvlaran/braidloop/action"
	"github.com/katalvlaran/braidloop/braid"
	"github.com/katalvlaran/braidloop/exint"
	"github.com/katalvlaran/braidloop/invariant"
	"github.com/katalvlaran/braidloop/loop"
)

// ErrNoConvergence indicates the estimate did not stabilize within MaxIter
// iterations; the returned value is the last log-ratio observed.
var ErrNoConvergence = errors.New("entropy: estimate did not converge")

// Default iteration budget and stopping tolerance. Pseudo-Anosov words
// typically stabilize within a few dozen iterations at this tolerance.
const (
	defaultMaxIter = 100
	defaultTol     = 1e-9
)

// Options configures Estimate.
//   - MaxIter: iteration budget; 0 or negative selects the default.
//   - Tol: stop once two consecutive log-ratios differ by less than Tol;
//     0 or negative selects the default.
type Options struct {
	MaxIter int
	Tol     float64
}

// DefaultOptions returns the default estimation configuration.
func DefaultOptions() Options {
	return Options{MaxIter: defaultMaxIter, Tol: defaultTol}
}

// Estimate returns the topological entropy of the braid word w on n
// punctures: the limit of log(len_{k+1}/len_k) where len_k is the minimal
// length of the canonical loop after k applications of w.
//
// Errors: loop.ErrShape for n < 2, braid.ErrRange for an invalid word, and
// ErrNoConvergence (with the last estimate) when the tolerance is not met
// within the iteration budget.
func Estimate(w braid.Word, n int, opts *Options) (float64, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.MaxIter <= 0 {
		o.MaxIter = defaultMaxIter
	}
	if o.Tol <= 0 {
		o.Tol = defaultTol
	}

	cur, err := loop.Canonical(n)
	if err != nil {
		return 0, err
	}
	if err = w.Validate(n); err != nil {
		return 0, fmt.Errorf("entropy: %w", err)
	}
	if n == 2 {
		// One generator swapping two punctures stretches nothing.
		return 0, nil
	}

	batch := []loop.Loop{cur}
	prevLog := logExact(invariant.MinLength(cur))
	est := math.NaN()
	for it := 1; it <= o.MaxIter; it++ {
		batch, _, err = action.Apply(w, batch, nil)
		if err != nil {
			return 0, err
		}
		curLog := logExact(invariant.MinLength(batch[0]))
		next := curLog - prevLog
		prevLog = curLog

		if !math.IsNaN(est) && math.Abs(next-est) < o.Tol {
			return next, nil
		}
		est = next
	}
	return est, ErrNoConvergence
}

// logExact returns the natural log of a positive exact integer without
// first rounding it to float64, so values far beyond the float64 range
// still yield a finite logarithm.
func logExact(x exint.Int) float64 {
	f := new(big.Float).SetInt(x.BigInt())
	mant := new(big.Float)
	exp := f.MantExp(mant)
	m, _ := mant.Float64()
	return float64(exp)*math.Ln2 + math.Log(m)
}
