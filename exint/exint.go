package exint

import (
	"math/big"
	"strconv"
)

// Int is an exact signed integer. It holds either a bounded int64 (fast
// representation) or an unbounded *big.Int, chosen per value at runtime.
// The zero value is 0.
type Int struct {
	v int64    // valid when w == nil
	w *big.Int // non-nil ⇒ unbounded representation, owns the value
}

// New returns an Int holding v on the fast representation.
func New(v int64) Int {
	return Int{v: v}
}

// NewBig returns an Int holding a copy of x. A nil x yields 0.
// Values that fit in an int64 are stored on the fast representation.
func NewBig(x *big.Int) Int {
	if x == nil {
		return Int{}
	}
	if x.IsInt64() {
		return Int{v: x.Int64()}
	}
	return Int{w: new(big.Int).Set(x)}
}

// IsBig reports whether x currently uses the unbounded representation.
func (x Int) IsBig() bool {
	return x.w != nil
}

// Int64 returns the value as an int64. The second result is false when the
// value does not fit (always true for fast-representation values).
func (x Int) Int64() (int64, bool) {
	if x.w == nil {
		return x.v, true
	}
	if x.w.IsInt64() {
		return x.w.Int64(), true
	}
	return 0, false
}

// BigInt returns a fresh *big.Int copy of the value, never aliasing
// internal state.
func (x Int) BigInt() *big.Int {
	if x.w == nil {
		return big.NewInt(x.v)
	}
	return new(big.Int).Set(x.w)
}

// Float64 returns the nearest float64 to the value
// (±Inf when the magnitude exceeds the float64 range).
func (x Int) Float64() float64 {
	if x.w == nil {
		return float64(x.v)
	}
	f, _ := new(big.Float).SetInt(x.w).Float64()
	return f
}

// Sign returns -1, 0, or +1 according to the sign of x.
func (x Int) Sign() int {
	if x.w == nil {
		switch {
		case x.v < 0:
			return -1
		case x.v > 0:
			return 1
		default:
			return 0
		}
	}
	return x.w.Sign()
}

// Cmp compares x and y numerically: -1 if x < y, 0 if x == y, +1 if x > y.
// Representation never affects the result.
func (x Int) Cmp(y Int) int {
	if x.w == nil && y.w == nil {
		switch {
		case x.v < y.v:
			return -1
		case x.v > y.v:
			return 1
		default:
			return 0
		}
	}
	return x.BigInt().Cmp(y.BigInt())
}

// Equal reports whether x and y hold the same number.
func (x Int) Equal(y Int) bool {
	return x.Cmp(y) == 0
}

// Add returns x + y exactly, promoting to the unbounded representation when
// the bounded sum would overflow.
func (x Int) Add(y Int) Int {
	if x.w == nil && y.w == nil {
		if s, ok := AddInt64(x.v, y.v); ok {
			return Int{v: s}
		}
	}
	return NewBig(new(big.Int).Add(x.BigInt(), y.BigInt()))
}

// Sub returns x - y exactly.
func (x Int) Sub(y Int) Int {
	if x.w == nil && y.w == nil {
		if d, ok := SubInt64(x.v, y.v); ok {
			return Int{v: d}
		}
	}
	return NewBig(new(big.Int).Sub(x.BigInt(), y.BigInt()))
}

// Neg returns -x exactly.
func (x Int) Neg() Int {
	if x.w == nil {
		if n, ok := NegInt64(x.v); ok {
			return Int{v: n}
		}
	}
	return NewBig(new(big.Int).Neg(x.BigInt()))
}

// Abs returns |x| exactly.
func (x Int) Abs() Int {
	if x.Sign() < 0 {
		return x.Neg()
	}
	return x
}

// Pos returns max(x, 0), the positive part of x.
func (x Int) Pos() Int {
	if x.Sign() > 0 {
		return x
	}
	return Int{}
}

// Min returns the smaller of x and y.
func (x Int) Min(y Int) Int {
	if x.Cmp(y) <= 0 {
		return x
	}
	return y
}

// Max returns the larger of x and y.
func (x Int) Max(y Int) Int {
	if x.Cmp(y) >= 0 {
		return x
	}
	return y
}

// String returns the decimal representation of x.
func (x Int) String() string {
	if x.w == nil {
		return strconv.FormatInt(x.v, 10)
	}
	return x.w.String()
}
