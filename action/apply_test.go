package action_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/braidloop/action"
	"github.com/katalvlaran/braidloop/braid"
	"github.com/katalvlaran/braidloop/exint"
	"github.com/katalvlaran/braidloop/loop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// applyOne is a test helper: run a word on a single loop with default options.
func applyOne(t *testing.T, w braid.Word, l loop.Loop) loop.Loop {
	t.Helper()
	out, _, err := action.Apply(w, []loop.Loop{l}, nil)
	require.NoError(t, err)
	require.Len(t, out, 1)
	return out[0]
}

// randomLoop builds a deterministic pseudo-random loop with n punctures.
func randomLoop(t *testing.T, rng *rand.Rand, n int) loop.Loop {
	t.Helper()
	m := n - 2
	coords := make([]int64, 2*m)
	for i := range coords {
		coords[i] = int64(rng.Intn(17) - 8)
	}
	l, err := loop.New(coords...)
	require.NoError(t, err)
	return l
}

// TestApply_IdentityWord verifies the empty word returns every row unchanged.
func TestApply_IdentityWord(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 2; n <= 6; n++ {
		l := randomLoop(t, rng, n)
		res := applyOne(t, braid.Word{}, l)
		assert.True(t, res.Equal(l), "empty word must act as the identity for n=%d", n)
	}
}

// TestApply_InverseCancellation verifies σ±i then σ∓i restores every loop,
// for every generator at several puncture counts.
func TestApply_InverseCancellation(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for n := 3; n <= 7; n++ {
		for trial := 0; trial < 25; trial++ {
			l := randomLoop(t, rng, n)
			for i := 1; i <= n-1; i++ {
				for _, s := range []int{1, -1} {
					fwd := applyOne(t, braid.Word{s * i}, l)
					back := applyOne(t, braid.Word{-s * i}, fwd)
					assert.True(t, back.Equal(l),
						"n=%d g=%d loop=%v: inverse must cancel", n, s*i, l)
				}
			}
		}
	}
}

// TestApply_FarCommutation verifies σi and σj commute when |i-j| >= 2.
func TestApply_FarCommutation(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for n := 5; n <= 7; n++ {
		for trial := 0; trial < 20; trial++ {
			l := randomLoop(t, rng, n)
			for i := 1; i <= n-1; i++ {
				for j := i + 2; j <= n-1; j++ {
					for _, si := range []int{1, -1} {
						for _, sj := range []int{1, -1} {
							ij := applyOne(t, braid.Word{si * i, sj * j}, l)
							ji := applyOne(t, braid.Word{sj * j, si * i}, l)
							assert.True(t, ij.Equal(ji),
								"n=%d [%d,%d] must commute", n, si*i, sj*j)
						}
					}
				}
			}
		}
	}
}

// TestApply_AdjacentBraidRelation verifies σi σi+1 σi == σi+1 σi σi+1.
func TestApply_AdjacentBraidRelation(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for n := 4; n <= 7; n++ {
		for trial := 0; trial < 25; trial++ {
			l := randomLoop(t, rng, n)
			for i := 1; i <= n-2; i++ {
				for _, s := range []int{1, -1} {
					lhs := applyOne(t, braid.Word{s * i, s * (i + 1), s * i}, l)
					rhs := applyOne(t, braid.Word{s * (i + 1), s * i, s * (i + 1)}, l)
					assert.True(t, lhs.Equal(rhs),
						"n=%d i=%d s=%d: braid relation must hold", n, i, s)
				}
			}
		}
	}
}

// TestApply_WordInverseRoundTrip verifies w followed by w.Inverse() is the identity.
func TestApply_WordInverseRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for n := 3; n <= 6; n++ {
		for trial := 0; trial < 20; trial++ {
			l := randomLoop(t, rng, n)
			w := make(braid.Word, 8)
			for j := range w {
				g := 1 + rng.Intn(n-1)
				if rng.Intn(2) == 0 {
					g = -g
				}
				w[j] = g
			}
			res := applyOne(t, append(append(braid.Word{}, w...), w.Inverse()...), l)
			assert.True(t, res.Equal(l), "n=%d w=%v: w·w⁻¹ must be the identity", n, w)
		}
	}
}

// TestApply_BoundaryLowScenario pins the hand-computed σ₁ result on the
// canonical 4-puncture loop: b₁' = a₁ + pos(b₁) = 0, a₁' = −b₁ + pos(b₁') = 1.
func TestApply_BoundaryLowScenario(t *testing.T) {
	canon, err := loop.Canonical(4)
	require.NoError(t, err)

	res := applyOne(t, braid.Word{1}, canon)
	want, err := loop.FromAB([]int64{1, 0}, []int64{0, -1})
	require.NoError(t, err)
	assert.True(t, res.Equal(want), "σ₁·canonical(4) must be a=[1 0] b=[0 -1], got %v", res)

	res = applyOne(t, braid.Word{-1}, canon)
	want, err = loop.FromAB([]int64{-1, 0}, []int64{0, -1})
	require.NoError(t, err)
	assert.True(t, res.Equal(want), "σ₁⁻¹·canonical(4) must be a=[-1 0] b=[0 -1], got %v", res)
}

// TestApply_SingleGeneratorFixtures pins one hand-checked result per branch
// on the loop a=[1 2], b=[3 -4] with n=4.
func TestApply_SingleGeneratorFixtures(t *testing.T) {
	start, err := loop.FromAB([]int64{1, 2}, []int64{3, -4})
	require.NoError(t, err)

	cases := []struct {
		name string
		g    int
		a, b []int64
	}{
		{"boundary low, positive", 1, []int64{1, 2}, []int64{4, -4}},
		{"boundary low, negative", -1, []int64{1, 2}, []int64{2, -4}},
		{"interior, positive", 2, []int64{-2, 6}, []int64{-5, 4}},
		{"interior, negative", -2, []int64{5, -3}, []int64{-4, 3}},
		{"boundary high, positive", 3, []int64{1, 2}, []int64{3, -2}},
		{"boundary high, negative", -3, []int64{1, 2}, []int64{3, -6}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := applyOne(t, braid.Word{tc.g}, start)
			want, err := loop.FromAB(tc.a, tc.b)
			require.NoError(t, err)
			assert.True(t, res.Equal(want), "g=%d: got %v want %v", tc.g, res, want)
		})
	}
}

// TestApply_CanonicalInteriorStep pins σ₂ on canonical(4) (interior branch
// with both b negative) and the high-boundary fixed point σ₃.
func TestApply_CanonicalInteriorStep(t *testing.T) {
	canon, err := loop.Canonical(4)
	require.NoError(t, err)

	res := applyOne(t, braid.Word{2}, canon)
	want, err := loop.FromAB([]int64{0, 1}, []int64{-2, 0})
	require.NoError(t, err)
	assert.True(t, res.Equal(want), "σ₂·canonical(4) must be a=[0 1] b=[-2 0]")

	res = applyOne(t, braid.Word{3}, canon)
	assert.True(t, res.Equal(canon), "σ₃ fixes the canonical 4-puncture loop")
}

// TestApply_DegenerateTwoPunctures verifies n=2 loops are fixed by any valid word.
func TestApply_DegenerateTwoPunctures(t *testing.T) {
	l, err := loop.Canonical(2)
	require.NoError(t, err)

	out, tr, err := action.Apply(braid.Word{1, -1, 1}, []loop.Loop{l}, &action.Options{CaptureTrace: true})
	require.NoError(t, err)
	assert.True(t, out[0].Equal(l), "the two-puncture loop is fixed by σ₁")
	require.Len(t, tr.Signs[0], 3)
	assert.Equal(t, action.Step{}, tr.Signs[0][0], "degenerate steps leave traces zero-filled")
}

// TestApply_RangeErrorAbortsBatch verifies out-of-range generators abort the
// whole batch with no partial results.
func TestApply_RangeErrorAbortsBatch(t *testing.T) {
	canon, err := loop.Canonical(4)
	require.NoError(t, err)

	out, tr, err := action.Apply(braid.Word{1, 5}, []loop.Loop{canon, canon}, nil)
	assert.ErrorIs(t, err, braid.ErrRange)
	assert.Nil(t, out, "no partial batch on range error")
	assert.Nil(t, tr)

	_, _, err = action.Apply(braid.Word{0}, []loop.Loop{canon}, nil)
	assert.ErrorIs(t, err, braid.ErrRange, "zero generators are invalid")
}

// TestApply_MixedBatchRejected verifies rows must share one puncture count.
func TestApply_MixedBatchRejected(t *testing.T) {
	l4, err := loop.Canonical(4)
	require.NoError(t, err)
	l5, err := loop.Canonical(5)
	require.NoError(t, err)

	_, _, err = action.Apply(braid.Word{1}, []loop.Loop{l4, l5}, nil)
	assert.ErrorIs(t, err, action.ErrMixedBatch)
	assert.Contains(t, err.Error(), "row 1")
}

// TestApply_EmptyBatch verifies an empty batch is a valid no-op.
func TestApply_EmptyBatch(t *testing.T) {
	out, tr, err := action.Apply(braid.Word{1}, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Nil(t, tr)
}

// TestApply_BatchRowsIndependent verifies each row evolves independently and
// keeps its position, regardless of worker count.
func TestApply_BatchRowsIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	batch := make([]loop.Loop, 16)
	for r := range batch {
		batch[r] = randomLoop(t, rng, 5)
	}
	w := braid.Word{1, -3, 2, 2, -1, 4}

	for _, workers := range []int{1, 4, 0} {
		opts := action.DefaultOptions()
		opts.Workers = workers
		out, _, err := action.Apply(w, batch, &opts)
		require.NoError(t, err)
		require.Len(t, out, len(batch))
		for r := range batch {
			want := applyOne(t, w, batch[r])
			assert.True(t, out[r].Equal(want), "workers=%d row %d", workers, r)
		}
	}
}

// TestApply_InputBatchUntouched verifies Apply never mutates its input rows.
func TestApply_InputBatchUntouched(t *testing.T) {
	canon, err := loop.Canonical(4)
	require.NoError(t, err)
	snapshot := canon.Clone()

	_, _, err = action.Apply(braid.Word{1, 2, 1, 2}, []loop.Loop{canon}, nil)
	require.NoError(t, err)
	assert.True(t, canon.Equal(snapshot), "input rows must stay unchanged")
}

// TestApply_TraceFixtures pins the recorded sign slots for a boundary and an
// interior application on canonical(4).
func TestApply_TraceFixtures(t *testing.T) {
	canon, err := loop.Canonical(4)
	require.NoError(t, err)
	opts := action.Options{CaptureTrace: true}

	// σ₁: old b₁ = −1, new b₁ = 0; boundary branches use two slots.
	_, tr, err := action.Apply(braid.Word{1}, []loop.Loop{canon}, &opts)
	require.NoError(t, err)
	require.NotNil(t, tr)
	require.Len(t, tr.Signs, 1)
	require.Len(t, tr.Signs[0], 1)
	assert.Equal(t, action.Step{-1, 0, 0, 0, 0}, tr.Signs[0][0])

	// σ₂: interior branch, c = −1, pos(b₂)+c = −1, neg(b₁)−c = 0.
	_, tr, err = action.Apply(braid.Word{2}, []loop.Loop{canon}, &opts)
	require.NoError(t, err)
	assert.Equal(t, action.Step{-1, -1, -1, -1, 0}, tr.Signs[0][0])
}

// TestApply_TraceShape verifies trace dimensions follow rows × word length,
// and that no trace is allocated unless requested.
func TestApply_TraceShape(t *testing.T) {
	canon, err := loop.Canonical(5)
	require.NoError(t, err)
	batch := []loop.Loop{canon, canon, canon}
	w := braid.Word{1, 2, -3, 1}

	out, tr, err := action.Apply(w, batch, &action.Options{CaptureTrace: true})
	require.NoError(t, err)
	require.Len(t, out, 3)
	require.NotNil(t, tr)
	require.Len(t, tr.Signs, 3)
	for r := range tr.Signs {
		assert.Len(t, tr.Signs[r], len(w))
	}

	_, tr, err = action.Apply(w, batch, nil)
	require.NoError(t, err)
	assert.Nil(t, tr, "no trace unless requested")
}

// TestApply_TraceMatchesAcrossKernels verifies the fast and unbounded kernels
// record identical sign decisions.
func TestApply_TraceMatchesAcrossKernels(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	w := braid.Word{1, 2, -3, -1, 4, 2, -2, 3}
	for trial := 0; trial < 20; trial++ {
		l := randomLoop(t, rng, 6)
		fastOpts := action.Options{CaptureTrace: true}
		bigOpts := action.Options{CaptureTrace: true, ForceBig: true}

		outF, trF, err := action.Apply(w, []loop.Loop{l}, &fastOpts)
		require.NoError(t, err)
		outB, trB, err := action.Apply(w, []loop.Loop{l}, &bigOpts)
		require.NoError(t, err)

		assert.True(t, outF[0].Equal(outB[0]), "kernels must agree on coordinates")
		assert.Equal(t, trF.Signs, trB.Signs, "kernels must agree on sign traces")
	}
}

// TestApply_OverflowPromotesRow seeds a row near the int64 limit so the first
// generator overflows the fast path, and checks the promoted result is exact.
func TestApply_OverflowPromotesRow(t *testing.T) {
	near := int64(1) << 62
	l, err := loop.FromAB([]int64{near, 0}, []int64{near, -1})
	require.NoError(t, err)

	// σ₁: b₁' = a₁ + pos(b₁) = 2^63, one past MaxInt64.
	out, _, err := action.Apply(braid.Word{1}, []loop.Loop{l}, nil)
	require.NoError(t, err, "overflow must be recovered internally, not surfaced")

	wantB1 := exint.New(near).Add(exint.New(near))
	assert.True(t, wantB1.IsBig(), "fixture must actually leave int64 range")
	assert.True(t, out[0].B(1).Equal(wantB1))
	assert.True(t, out[0].A(1).Equal(exint.New(near)), "a₁' = -b₁ + pos(b₁') = 2^62")
	assert.True(t, out[0].B(2).Equal(exint.New(-1)), "untouched coordinates keep their values")

	// The promoted row must match the reference kernel bit for bit.
	ref, _, err := action.Apply(braid.Word{1}, []loop.Loop{l}, &action.Options{ForceBig: true})
	require.NoError(t, err)
	assert.True(t, out[0].Equal(ref[0]))
}

// TestApply_PromotionIsPerRow verifies one overflowing row does not slow the
// others onto the unbounded path: every row still gets the exact result.
func TestApply_PromotionIsPerRow(t *testing.T) {
	small, err := loop.Canonical(4)
	require.NoError(t, err)
	hot, err := loop.FromAB([]int64{math.MaxInt64 - 1, 0}, []int64{math.MaxInt64 - 1, -1})
	require.NoError(t, err)

	w := braid.Word{1, 2, 1}
	out, _, err := action.Apply(w, []loop.Loop{small, hot, small}, nil)
	require.NoError(t, err)

	ref, _, err := action.Apply(w, []loop.Loop{small, hot, small}, &action.Options{ForceBig: true})
	require.NoError(t, err)
	for r := range out {
		assert.True(t, out[r].Equal(ref[r]), "row %d must match the reference kernel", r)
	}
}

// TestApply_FastAndBigDiffer differentially tests the two kernels over random
// loops and words where the fast path never overflows.
func TestApply_FastAndBigDiffer(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	for n := 3; n <= 7; n++ {
		for trial := 0; trial < 30; trial++ {
			l := randomLoop(t, rng, n)
			w := make(braid.Word, 10)
			for j := range w {
				g := 1 + rng.Intn(n-1)
				if rng.Intn(2) == 0 {
					g = -g
				}
				w[j] = g
			}
			fast := applyOne(t, w, l)
			big, _, err := action.Apply(w, []loop.Loop{l}, &action.Options{ForceBig: true})
			require.NoError(t, err)
			assert.True(t, fast.Equal(big[0]), "n=%d w=%v", n, w)
		}
	}
}

// TestApply_BigSeededInput verifies rows whose input coordinates already use
// the unbounded representation are handled without a fast-path attempt.
func TestApply_BigSeededInput(t *testing.T) {
	huge := exint.New(math.MaxInt64).Add(exint.New(math.MaxInt64))
	require.True(t, huge.IsBig())
	coords := []exint.Int{huge, exint.New(0), exint.New(-1), exint.New(-1)}
	l, err := loop.NewExact(coords)
	require.NoError(t, err)

	out, _, err := action.Apply(braid.Word{2, -2}, []loop.Loop{l}, nil)
	require.NoError(t, err)
	assert.True(t, out[0].Equal(l), "σ₂ then σ₂⁻¹ must cancel on big coordinates")
}
