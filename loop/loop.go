package loop

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/braidloop/exint"
)

// ErrShape is the kind shared by every malformed-coordinate error. Use
// errors.Is(err, ErrShape) to match any constructor shape failure.
var ErrShape = errors.New("loop: malformed coordinates")

var (
	// ErrOddLength indicates a single coordinate vector of odd length.
	ErrOddLength = fmt.Errorf("%w: vector length must be even", ErrShape)
	// ErrABLength indicates a and b halves of different lengths.
	ErrABLength = fmt.Errorf("%w: a and b must have equal length", ErrShape)
	// ErrPunctures indicates a puncture count below the minimum of 2.
	ErrPunctures = fmt.Errorf("%w: puncture count must be at least 2", ErrShape)
)

// Loop is an isotopy class of multicurves on a punctured disk, encoded by
// Dynnikov coordinates. The zero value is the degenerate 2-puncture loop.
type Loop struct {
	c []exint.Int // concatenated a then b, length 2(n-2)
}

// New builds a Loop from a concatenated coordinate vector [a..., b...].
// The vector length must be even; an empty vector yields the degenerate
// 2-puncture loop.
func New(coords ...int64) (Loop, error) {
	if len(coords)%2 != 0 {
		return Loop{}, ErrOddLength
	}
	c := make([]exint.Int, len(coords))
	for i, v := range coords {
		c[i] = exint.New(v)
	}
	return Loop{c: c}, nil
}

// NewExact builds a Loop from exact coordinates, copying the slice.
func NewExact(coords []exint.Int) (Loop, error) {
	if len(coords)%2 != 0 {
		return Loop{}, ErrOddLength
	}
	c := make([]exint.Int, len(coords))
	copy(c, coords)
	return Loop{c: c}, nil
}

// FromAB builds a Loop from separate a and b halves of equal length.
func FromAB(a, b []int64) (Loop, error) {
	if len(a) != len(b) {
		return Loop{}, ErrABLength
	}
	c := make([]exint.Int, 0, 2*len(a))
	for _, v := range a {
		c = append(c, exint.New(v))
	}
	for _, v := range b {
		c = append(c, exint.New(v))
	}
	return Loop{c: c}, nil
}

// Canonical returns the canonical loop family for p punctures:
// a = 0 and b = −1 throughout, coordinate length 2(p−2).
// p must be at least 2; p == 2 yields the empty degenerate loop.
func Canonical(p int) (Loop, error) {
	if p < 2 {
		return Loop{}, ErrPunctures
	}
	m := p - 2
	c := make([]exint.Int, 2*m)
	minusOne := exint.New(-1)
	for k := 0; k < m; k++ {
		c[m+k] = minusOne
	}
	return Loop{c: c}, nil
}

// N returns the puncture count, derived from the coordinate length.
func (l Loop) N() int {
	return len(l.c)/2 + 2
}

// A returns a[k] for k in [1, n−2] (1-based, matching the update formulas).
func (l Loop) A(k int) exint.Int {
	return l.c[k-1]
}

// B returns b[k] for k in [1, n−2] (1-based).
func (l Loop) B(k int) exint.Int {
	return l.c[len(l.c)/2+k-1]
}

// Coords returns a copy of the concatenated coordinate vector.
func (l Loop) Coords() []exint.Int {
	c := make([]exint.Int, len(l.c))
	copy(c, l.c)
	return c
}

// AB returns copies of the a and b halves.
func (l Loop) AB() (a, b []exint.Int) {
	m := len(l.c) / 2
	a = make([]exint.Int, m)
	b = make([]exint.Int, m)
	copy(a, l.c[:m])
	copy(b, l.c[m:])
	return a, b
}

// Equal reports whether l and o have the same puncture count and
// element-wise equal coordinates, regardless of representation.
func (l Loop) Equal(o Loop) bool {
	if len(l.c) != len(o.c) {
		return false
	}
	for i := range l.c {
		if !l.c[i].Equal(o.c[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of l.
func (l Loop) Clone() Loop {
	return Loop{c: l.coordsCopy()}
}

func (l Loop) coordsCopy() []exint.Int {
	c := make([]exint.Int, len(l.c))
	copy(c, l.c)
	return c
}

// String implements fmt.Stringer, e.g. "loop{n=4 a=[0 0] b=[-1 -1]}".
func (l Loop) String() string {
	m := len(l.c) / 2
	var sb strings.Builder
	fmt.Fprintf(&sb, "loop{n=%d a=[", l.N())
	for i := 0; i < m; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(l.c[i].String())
	}
	sb.WriteString("] b=[")
	for i := 0; i < m; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(l.c[m+i].String())
	}
	sb.WriteString("]}")
	return sb.String()
}
