package action

import (
	"github.com/katalvlaran/braidloop/exint"
	"github.com/katalvlaran/braidloop/loop"
)

// The unbounded kernel: the same six-branch recurrence on exint values.
// It cannot fail; exint promotes internally whenever an intermediate leaves
// the int64 range. Kept structurally parallel to stepFast so the two kernels
// can be diffed branch by branch.

func negClamp(x exint.Int) exint.Int {
	return x.Min(exint.New(0))
}

func signOf(x exint.Int) int8 {
	return int8(x.Sign())
}

// exactHalves extracts the a and b halves of l as exint slices.
func exactHalves(l loop.Loop) (a, b []exint.Int) {
	return l.AB()
}

// promoteHalves lifts int64 halves onto the exact representation.
func promoteHalves(av, bv []int64) (a, b []exint.Int) {
	a = make([]exint.Int, len(av))
	b = make([]exint.Int, len(bv))
	for k := range av {
		a[k] = exint.New(av[k])
		b[k] = exint.New(bv[k])
	}
	return a, b
}

// loopFromExact rebuilds a Loop from exact halves.
func loopFromExact(a, b []exint.Int) loop.Loop {
	c := make([]exint.Int, 0, len(a)+len(b))
	c = append(c, a...)
	c = append(c, b...)
	l, _ := loop.NewExact(c) // halves are equal-length by construction
	return l
}

// stepExact applies one generator g to the halves in place and records the
// branch signs into st. New values are bound to temporaries before any
// write, mirroring stepFast.
func stepExact(a, b []exint.Int, n, g int, st *Step) {
	i := g
	if i < 0 {
		i = -i
	}
	m := n - 2

	switch {
	case g > 0 && i == 1:
		nb := a[0].Add(b[0].Pos())
		na := b[0].Neg().Add(nb.Pos())
		st[0], st[1] = signOf(b[0]), signOf(nb)
		a[0], b[0] = na, nb

	case g < 0 && i == 1:
		nb := a[0].Neg().Add(b[0].Pos())
		na := b[0].Sub(nb.Pos())
		st[0], st[1] = signOf(b[0]), signOf(nb)
		a[0], b[0] = na, nb

	case g > 0 && i == n-1:
		k := m - 1
		nb := a[k].Add(negClamp(b[k]))
		na := b[k].Neg().Add(negClamp(nb))
		st[0], st[1] = signOf(b[k]), signOf(nb)
		a[k], b[k] = na, nb

	case g < 0 && i == n-1:
		k := m - 1
		nb := a[k].Neg().Add(negClamp(b[k]))
		na := b[k].Sub(negClamp(nb))
		st[0], st[1] = signOf(b[k]), signOf(nb)
		a[k], b[k] = na, nb

	case g > 0:
		k := i - 2
		c := a[k].Sub(a[k+1]).Sub(b[k+1].Pos()).Add(negClamp(b[k]))
		inner1 := b[k+1].Pos().Add(c)
		inner2 := negClamp(b[k]).Sub(c)
		ap1 := a[k].Sub(b[k].Pos()).Sub(inner1.Pos())
		bp1 := b[k+1].Add(negClamp(c))
		ap2 := a[k+1].Sub(negClamp(b[k+1])).Sub(negClamp(inner2))
		bp2 := b[k].Sub(negClamp(c))
		st[0], st[1], st[2] = signOf(b[k+1]), signOf(b[k]), signOf(c)
		st[3], st[4] = signOf(inner1), signOf(inner2)
		a[k], b[k], a[k+1], b[k+1] = ap1, bp1, ap2, bp2

	default:
		k := i - 2
		d := a[k].Sub(a[k+1]).Add(b[k+1].Pos()).Sub(negClamp(b[k]))
		inner1 := b[k+1].Pos().Sub(d)
		inner2 := negClamp(b[k]).Add(d)
		ap1 := a[k].Add(b[k].Pos()).Add(inner1.Pos())
		bp1 := b[k+1].Sub(d.Pos())
		ap2 := a[k+1].Add(negClamp(b[k+1])).Add(negClamp(inner2))
		bp2 := b[k].Add(d.Pos())
		st[0], st[1], st[2] = signOf(b[k+1]), signOf(b[k]), signOf(d)
		st[3], st[4] = signOf(inner1), signOf(inner2)
		a[k], b[k], a[k+1], b[k+1] = ap1, bp1, ap2, bp2
	}
}
