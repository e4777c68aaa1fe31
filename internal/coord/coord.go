// Package coord implements the fixed-point coordinate c+m shared by both takum
// variants: a signed number with 64 fractional bits, wide enough to hold every
// characteristic with the full mantissa of a 64-bit takum.
package coord

import (
	"math"
	"math/bits"

	"github.com/shogo82148/int128"

	"github.com/avdva/takum/internal/mathutil"
)

// FracBits is the number of fractional bits of a Coord.
const FracBits = 64

const (
	// ln 2 * 2^64, split into the integer part and the next 64 bits.
	ln2Hi = 0xb17217f7d1cf79ab
	ln2Lo = 0xc9e3b39803f2f6af
)

// Coord is a signed fixed-point number stored in two's complement.
// The high word holds the floor, the low word holds the fraction.
type Coord struct {
	v int128.Uint128
}

var ulp = int128.Uint128{L: 1}

// New returns c + frac/2^64.
func New(c int64, frac uint64) Coord {
	return Coord{int128.Uint128{H: uint64(c), L: frac}}
}

// FromInt returns the integral coordinate i.
func FromInt(i int64) Coord {
	return New(i, 0)
}

// Floor returns the largest integer not greater than x.
func (x Coord) Floor() int64 {
	return int64(x.v.H)
}

// Frac returns the fractional part x - floor(x) scaled by 2^64.
func (x Coord) Frac() uint64 {
	return x.v.L
}

// IsZero reports whether x == 0.
func (x Coord) IsZero() bool {
	return x.v.H == 0 && x.v.L == 0
}

// Sign returns -1, 0, or 1.
func (x Coord) Sign() int {
	if s := mathutil.Int64Sign(x.Floor()); s != 0 || x.v.L == 0 {
		return s
	}
	return 1
}

// Cmp compares x and y and returns -1, 0, or 1.
func (x Coord) Cmp(y Coord) int {
	xh, yh := x.Floor(), y.Floor()
	switch {
	case xh < yh:
		return -1
	case xh > yh:
		return 1
	case x.v.L < y.v.L:
		return -1
	case x.v.L > y.v.L:
		return 1
	}
	return 0
}

// Add returns x + y.
func (x Coord) Add(y Coord) Coord {
	return Coord{x.v.Add(y.v)}
}

// Sub returns x - y.
func (x Coord) Sub(y Coord) Coord {
	return Coord{x.v.Sub(y.v)}
}

// Neg returns -x.
func (x Coord) Neg() Coord {
	return Coord{int128.Uint128{}.Sub(x.v)}
}

// Abs returns |x|.
func (x Coord) Abs() Coord {
	if x.Floor() < 0 {
		return x.Neg()
	}
	return x
}

// negSticky negates a truncated non-negative magnitude x, whose true value lies
// in [x, x+ulp) when sticky is set. The result is again a lower bound.
func negSticky(x Coord, sticky bool) Coord {
	x = x.Neg()
	if sticky {
		x.v = x.v.Sub(ulp)
	}
	return x
}

// MulInt returns x*n. ok is false if the product does not fit a coordinate.
// The product of a coordinate with an integer is always exact.
func (x Coord) MulInt(n int64) (res Coord, ok bool) {
	u := mathutil.UAbsInt64(n)
	mag := x.Abs().v
	if mag.H != 0 && (u >= 1<<9 || mag.H >= 1<<52) {
		return Coord{}, false
	}
	p := mag.Mul(int128.Uint128{L: u})
	if p.H >= 1<<62 {
		return Coord{}, false
	}
	res = Coord{p}
	if !mathutil.SameSign(x.Floor(), n) {
		res = res.Neg()
	}
	return res, true
}

// QuoInt returns x/n truncated to the coordinate grid.
// The true quotient lies in [res, res+2^-64), and sticky reports whether it's inexact.
// QuoInt panics if n == 0.
func (x Coord) QuoInt(n int64) (res Coord, sticky bool) {
	if n == 0 {
		panic("coord: division by zero")
	}
	u := mathutil.UAbsInt64(n)
	q, r := x.Abs().v.DivMod(int128.Uint128{L: u})
	sticky = r.Cmp(int128.Uint128{}) != 0
	res = Coord{q}
	if !mathutil.SameSign(x.Floor(), n) {
		res = negSticky(res, sticky)
	}
	return res, sticky
}

// Float64 returns the nearest float64 value of x.
func (x Coord) Float64() float64 {
	return float64(x.Floor()) + float64(x.v.L)*0x1p-64
}

// FromFloat64 converts f to a coordinate, truncating towards negative infinity.
// sticky reports whether the conversion is inexact. |f| must be less than 2^62.
func FromFloat64(f float64) (x Coord, sticky bool) {
	if f == 0 || math.IsNaN(f) {
		return Coord{}, false
	}
	frac, exp := math.Frexp(math.Abs(f))
	mant := uint64(math.Ldexp(frac, 53))
	shift := exp - 53 + FracBits
	switch {
	case shift >= 0:
		x = Coord{int128.Uint128{L: mant}.Mul(pow2(uint(shift)))}
	case shift > -64:
		x = Coord{int128.Uint128{L: mant >> uint(-shift)}}
		sticky = mant<<uint(64+shift) != 0
	default:
		sticky = true
	}
	if f < 0 {
		x = negSticky(x, sticky)
	}
	return x, sticky
}

// Ln2Multiple returns k*ln(2) truncated to the coordinate grid.
// sticky is set for every k != 0, as ln(2) is irrational.
func Ln2Multiple(k int64) (x Coord, sticky bool) {
	if k == 0 {
		return Coord{}, false
	}
	u := mathutil.UAbsInt64(k)
	hi, _ := bits.Mul64(ln2Lo, u)
	x = Coord{int128.Uint128{L: ln2Hi}.Mul(int128.Uint128{L: u}).Add(int128.Uint128{L: hi})}
	if k < 0 {
		x = negSticky(x, true)
	}
	return x, true
}

// Ln2 returns ln(2) truncated to the coordinate grid.
func Ln2() Coord {
	return Coord{int128.Uint128{L: ln2Hi}}
}

func pow2(k uint) int128.Uint128 {
	if k < 64 {
		return int128.Uint128{L: 1 << k}
	}
	return int128.Uint128{H: 1 << (k - 64)}
}
