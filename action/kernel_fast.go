package action

import (
	"github.com/katalvlaran/braidloop/exint"
	"github.com/katalvlaran/braidloop/loop"
)

// The bounded kernel: the update recurrence on raw int64 halves with
// fail-closed overflow checks. Every branch computes all of its new values
// into temporaries first and writes only when every checked operation
// succeeded, so a false return leaves a and b exactly as they were.

func pos64(x int64) int64 {
	if x > 0 {
		return x
	}
	return 0
}

func neg64(x int64) int64 {
	if x < 0 {
		return x
	}
	return 0
}

func sign64(x int64) int8 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

// int64Halves extracts the a and b halves of l as int64 slices.
// ok is false when any coordinate already needs the unbounded representation.
func int64Halves(l loop.Loop) (a, b []int64, ok bool) {
	ea, eb := l.AB()
	a = make([]int64, len(ea))
	b = make([]int64, len(eb))
	for k := range ea {
		if a[k], ok = ea[k].Int64(); !ok {
			return nil, nil, false
		}
		if b[k], ok = eb[k].Int64(); !ok {
			return nil, nil, false
		}
	}
	return a, b, true
}

// loopFromInt64 rebuilds a Loop from int64 halves.
func loopFromInt64(a, b []int64) loop.Loop {
	c := make([]exint.Int, 0, len(a)+len(b))
	for _, v := range a {
		c = append(c, exint.New(v))
	}
	for _, v := range b {
		c = append(c, exint.New(v))
	}
	l, _ := loop.NewExact(c) // halves are equal-length by construction
	return l
}

// stepFast applies one generator g to the halves in place and records the
// branch signs into st. It returns false, without writing, when any
// intermediate overflows int64.
func stepFast(a, b []int64, n, g int, st *Step) bool {
	i := g
	if i < 0 {
		i = -i
	}
	m := n - 2

	switch {
	case g > 0 && i == 1:
		// σ₁: cross-coupled two-step update of (a[1], b[1]).
		nb, ok := exint.AddInt64(a[0], pos64(b[0]))
		if !ok {
			return false
		}
		t, ok := exint.NegInt64(b[0])
		if !ok {
			return false
		}
		na, ok := exint.AddInt64(t, pos64(nb))
		if !ok {
			return false
		}
		st[0], st[1] = sign64(b[0]), sign64(nb)
		a[0], b[0] = na, nb

	case g < 0 && i == 1:
		// σ₁⁻¹: as σ₁ with a negated and the clamp roles swapped.
		t, ok := exint.NegInt64(a[0])
		if !ok {
			return false
		}
		nb, ok := exint.AddInt64(t, pos64(b[0]))
		if !ok {
			return false
		}
		na, ok := exint.SubInt64(b[0], pos64(nb))
		if !ok {
			return false
		}
		st[0], st[1] = sign64(b[0]), sign64(nb)
		a[0], b[0] = na, nb

	case g > 0 && i == n-1:
		// σ_{n−1}: mirror of σ₁ on (a[n−2], b[n−2]) with neg in place of pos.
		k := m - 1
		nb, ok := exint.AddInt64(a[k], neg64(b[k]))
		if !ok {
			return false
		}
		t, ok := exint.NegInt64(b[k])
		if !ok {
			return false
		}
		na, ok := exint.AddInt64(t, neg64(nb))
		if !ok {
			return false
		}
		st[0], st[1] = sign64(b[k]), sign64(nb)
		a[k], b[k] = na, nb

	case g < 0 && i == n-1:
		k := m - 1
		t, ok := exint.NegInt64(a[k])
		if !ok {
			return false
		}
		nb, ok := exint.AddInt64(t, neg64(b[k]))
		if !ok {
			return false
		}
		na, ok := exint.SubInt64(b[k], neg64(nb))
		if !ok {
			return false
		}
		st[0], st[1] = sign64(b[k]), sign64(nb)
		a[k], b[k] = na, nb

	case g > 0:
		// Interior σᵢ: auxiliary c couples the (i−1, i) coordinate pairs.
		k := i - 2 // 0-based index of pair i−1; pair i is k+1
		t, ok := exint.SubInt64(a[k], a[k+1])
		if !ok {
			return false
		}
		t, ok = exint.SubInt64(t, pos64(b[k+1]))
		if !ok {
			return false
		}
		c, ok := exint.AddInt64(t, neg64(b[k]))
		if !ok {
			return false
		}
		inner1, ok := exint.AddInt64(pos64(b[k+1]), c)
		if !ok {
			return false
		}
		inner2, ok := exint.SubInt64(neg64(b[k]), c)
		if !ok {
			return false
		}
		ap1, ok := exint.SubInt64(a[k], pos64(b[k]))
		if !ok {
			return false
		}
		ap1, ok = exint.SubInt64(ap1, pos64(inner1))
		if !ok {
			return false
		}
		bp1, ok := exint.AddInt64(b[k+1], neg64(c))
		if !ok {
			return false
		}
		ap2, ok := exint.SubInt64(a[k+1], neg64(b[k+1]))
		if !ok {
			return false
		}
		ap2, ok = exint.SubInt64(ap2, neg64(inner2))
		if !ok {
			return false
		}
		bp2, ok := exint.SubInt64(b[k], neg64(c))
		if !ok {
			return false
		}
		st[0], st[1], st[2] = sign64(b[k+1]), sign64(b[k]), sign64(c)
		st[3], st[4] = sign64(inner1), sign64(inner2)
		a[k], b[k], a[k+1], b[k+1] = ap1, bp1, ap2, bp2

	default:
		// Interior σᵢ⁻¹: auxiliary d with every clamp role mirrored.
		k := i - 2
		t, ok := exint.SubInt64(a[k], a[k+1])
		if !ok {
			return false
		}
		t, ok = exint.AddInt64(t, pos64(b[k+1]))
		if !ok {
			return false
		}
		d, ok := exint.SubInt64(t, neg64(b[k]))
		if !ok {
			return false
		}
		inner1, ok := exint.SubInt64(pos64(b[k+1]), d)
		if !ok {
			return false
		}
		inner2, ok := exint.AddInt64(neg64(b[k]), d)
		if !ok {
			return false
		}
		ap1, ok := exint.AddInt64(a[k], pos64(b[k]))
		if !ok {
			return false
		}
		ap1, ok = exint.AddInt64(ap1, pos64(inner1))
		if !ok {
			return false
		}
		bp1, ok := exint.SubInt64(b[k+1], pos64(d))
		if !ok {
			return false
		}
		ap2, ok := exint.AddInt64(a[k+1], neg64(b[k+1]))
		if !ok {
			return false
		}
		ap2, ok = exint.AddInt64(ap2, neg64(inner2))
		if !ok {
			return false
		}
		bp2, ok := exint.AddInt64(b[k], pos64(d))
		if !ok {
			return false
		}
		st[0], st[1], st[2] = sign64(b[k+1]), sign64(b[k]), sign64(d)
		st[3], st[4] = sign64(inner1), sign64(inner2)
		a[k], b[k], a[k+1], b[k+1] = ap1, bp1, ap2, bp2
	}
	return true
}
