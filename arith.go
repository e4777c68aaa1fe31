package takum

import (
	"math"
	"math/big"

	"golang.org/x/exp/constraints"

	"github.com/avdva/takum/internal/mathutil"
)

// bigOp computes op on two finite non-zero linear words with big.Float.
func (e Encoding) bigOp(a, b uint64, op func(z, x, y *big.Float) *big.Float) uint64 {
	z := op(newBig(), e.toBig(a), e.toBig(b))
	return e.fromBig(z, z.Acc() != big.Exact)
}

func (e Encoding) mul(a, b uint64) uint64 {
	switch zero, nar := e.special(a, b); {
	case nar:
		return e.NaR()
	case zero:
		return 0
	}
	if e.variant == Linear {
		return e.bigOp(a, b, (*big.Float).Mul)
	}
	na, la := e.split(a)
	nb, lb := e.split(b)
	return e.join(na != nb, la.Add(lb), false)
}

func (e Encoding) div(a, b uint64) uint64 {
	switch {
	case a == e.NaR() || b == e.NaR() || b == 0:
		return e.NaR()
	case a == 0:
		return 0
	}
	if e.variant == Linear {
		return e.bigOp(a, b, (*big.Float).Quo)
	}
	na, la := e.split(a)
	nb, lb := e.split(b)
	return e.join(na != nb, la.Sub(lb), false)
}

func (e Encoding) inv(w uint64) uint64 {
	if zero, nar := e.special(w); zero || nar {
		return e.NaR()
	}
	if e.variant == Linear {
		z := newBig()
		z.Quo(bigOne, e.toBig(w))
		return e.fromBig(z, z.Acc() != big.Exact)
	}
	neg, l := e.split(w)
	return e.join(neg, l.Neg(), false)
}

func (e Encoding) powInt(w uint64, n int64) uint64 {
	switch {
	case w == e.NaR():
		return e.NaR()
	case w == 0:
		if n > 0 {
			return 0
		}
		return e.NaR()
	case n == 0:
		return e.one()
	}
	neg := e.isNeg(w) && n&1 != 0
	if e.variant == Linear {
		return e.linPowInt(w, n, neg)
	}
	_, l := e.split(w)
	p, ok := l.MulInt(n)
	if !ok {
		if (l.Sign() > 0) == (n > 0) {
			return e.saturate(neg)
		}
		return e.smallest(neg)
	}
	return e.join(neg, p, false)
}

func (e Encoding) linPowInt(w uint64, n int64, neg bool) uint64 {
	_, x := e.split(w)
	// Estimate log2 of the result first, so that big.Float never overflows.
	est := (float64(x.Floor()) + math.Log2(1+float64(x.Frac())*0x1p-64)) * float64(n)
	switch {
	case est > maxCoord:
		return e.saturate(neg)
	case est < -maxCoord:
		return e.smallest(neg)
	}
	mag := coordToBig(x)
	var z *big.Float
	var inexact bool
	if n > 0 {
		z, inexact = bigPowUint(mag, uint64(n), big.ToZero)
	} else {
		// 1/x^n is a lower bound when x^n is an upper one.
		var d *big.Float
		d, inexact = bigPowUint(mag, mathutil.UAbsInt64(n), big.AwayFromZero)
		z = newBig()
		z.Quo(bigOne, d)
		inexact = inexact || z.Acc() != big.Exact
	}
	if neg {
		z.Neg(z)
	}
	return e.fromBig(z, inexact)
}

// bigPowUint returns x^n computed by repeated squaring, rounding every step with mode.
func bigPowUint(x *big.Float, n uint64, mode big.RoundingMode) (res *big.Float, inexact bool) {
	res = new(big.Float).SetPrec(bigPrec).SetMode(mode).SetInt64(1)
	sq := new(big.Float).SetPrec(bigPrec).SetMode(mode).Set(x)
	for n > 0 {
		if n&1 != 0 {
			res.Mul(res, sq)
			inexact = inexact || res.Acc() != big.Exact
		}
		if n >>= 1; n > 0 {
			sq.Mul(sq, sq)
			inexact = inexact || sq.Acc() != big.Exact
		}
	}
	return res, inexact
}

func (e Encoding) root(w uint64, k int64) uint64 {
	switch {
	case w == e.NaR() || k == 0:
		return e.NaR()
	case w == 0:
		if k > 0 {
			return 0
		}
		return e.NaR()
	case e.isNeg(w) && k&1 == 0:
		return e.NaR()
	case k == 1:
		return w
	}
	if e.variant == Linear && k == 2 {
		mag := e.toBig(e.abs(w))
		s, inexact := bigSqrt(mag, false)
		return e.fromBig(s, inexact)
	}
	neg, l, sticky := e.logCoord(w)
	q, inexact := l.QuoInt(k)
	return e.fromLog(neg, q, sticky || inexact)
}

// bigSqrt returns a lower bound of sqrt(x) for x > 0. inexact reports whether x
// itself is a lower bound.
func bigSqrt(x *big.Float, inexact bool) (*big.Float, bool) {
	s := new(big.Float).SetPrec(bigPrec).SetMode(big.ToZero).Sqrt(x)
	sq := new(big.Float).SetPrec(2 * bigPrec).Mul(s, s)
	switch sq.Cmp(x) {
	case 0:
		return s, inexact
	case 1:
		ulp := new(big.Float).SetMantExp(bigOne, s.MantExp(nil)-bigPrec)
		s.Sub(s, ulp)
	}
	return s, true
}

func (e Encoding) pow(a, b uint64) uint64 {
	if a == e.NaR() || b == e.NaR() {
		return e.NaR()
	}
	y := e.Float64(b)
	if mathutil.IsInt(y) && math.Abs(y) < 1<<63 {
		return e.powInt(a, int64(y))
	}
	switch {
	case a == 0:
		if y > 0 {
			return 0
		}
		return e.NaR()
	case e.isNeg(a):
		return e.NaR()
	}
	_, l, _ := e.logCoord(a)
	p, _ := coordFromFloat(l.Float64() * y)
	return e.fromLog(false, p, true)
}

func (e Encoding) absolute(w uint64) uint64 {
	if w == e.NaR() {
		return w
	}
	return e.abs(w)
}

func (e Encoding) sign(w uint64) uint64 {
	if w == e.NaR() {
		return w
	}
	return e.Word(int64(mathutil.Int64Sign(e.Int64(w))) << (e.width - 2))
}

// Mul returns a*b.
func Mul[T Takum](a, b T) T {
	return binary(a, b, Encoding.mul)
}

// Div returns a/b. Division by zero is NaR.
func Div[T Takum](a, b T) T {
	return binary(a, b, Encoding.div)
}

// Inv returns 1/x. The inverse of zero is NaR.
// For logarithmic takums Inv is exact, so Inv(Inv(x)) == x.
func Inv[T Takum](x T) T {
	return unary(x, Encoding.inv)
}

// PowInt returns x^n. 0^0 and 0^n for n < 0 are NaR. Results out of range saturate.
func PowInt[T Takum, I constraints.Integer](x T, n I) T {
	e, w := wordOf(x)
	return fromWord[T](e.powInt(w, clampInt64(n)))
}

// Sqrt returns the square root of x. Negative values have no root, the result is NaR.
func Sqrt[T Takum](x T) T {
	return Root(x, 2)
}

// Root returns the k-th root of x, x^(1/k).
// The result is NaR for k == 0, for even roots of negative values, and for negative roots of zero.
func Root[T Takum, I constraints.Integer](x T, k I) T {
	e, w := wordOf(x)
	return fromWord[T](e.root(w, clampInt64(k)))
}

// Pow returns x^y. Negative bases are only allowed with integral exponents.
func Pow[T Takum](x, y T) T {
	return binary(x, y, Encoding.pow)
}

// Abs returns |x|.
func Abs[T Takum](x T) T {
	return unary(x, Encoding.absolute)
}

// Neg returns -x. The negation of NaR is NaR.
func Neg[T Takum](x T) T {
	return -x
}

// Sign returns -1, 0, or 1 as a takum, or NaR for NaR.
func Sign[T Takum](x T) T {
	return unary(x, Encoding.sign)
}

// clampInt64 converts n to int64 keeping its parity for values above math.MaxInt64.
func clampInt64[I constraints.Integer](n I) int64 {
	if n > 0 && uint64(n) > math.MaxInt64 {
		return math.MaxInt64 - 1 + int64(n&1)
	}
	return int64(n)
}
