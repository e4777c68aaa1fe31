package takum

import (
	"math/big"

	"github.com/avdva/takum/internal/coord"
	"github.com/avdva/takum/internal/mathutil"
)

func (e Encoding) add(a, b uint64) uint64 {
	switch {
	case a == e.NaR() || b == e.NaR():
		return e.NaR()
	case a == 0:
		return b
	case b == 0:
		return a
	case a == e.neg(b):
		return 0
	}
	if e.variant == Linear {
		return e.bigOp(a, b, (*big.Float).Add)
	}
	return e.gaussianAdd(a, b)
}

func (e Encoding) sub(a, b uint64) uint64 {
	return e.add(a, e.neg(b))
}

// gaussianAdd adds two finite non-zero logarithmic words with Gaussian logarithms:
// for |a| >= |b|, l = la + phi(lb - la), where phi is PhiPlus for operands of the
// same sign and PhiMinus otherwise. The result has the sign of a.
func (e Encoding) gaussianAdd(a, b uint64) uint64 {
	na, la := e.split(a)
	nb, lb := e.split(b)
	if la.Cmp(lb) < 0 {
		na, nb = nb, na
		la, lb = lb, la
	}
	q := lb.Sub(la).Float64()
	var phi float64
	if na == nb {
		phi = mathutil.PhiPlus(q)
	} else {
		phi = mathutil.PhiMinus(q)
	}
	return e.offset(na, la, phi)
}

// offset returns the word of sign neg nearest to the coordinate l+d,
// where d is computed in floating point.
func (e Encoding) offset(neg bool, l coord.Coord, d float64) uint64 {
	c, sticky := coordFromFloat(d)
	return e.join(neg, l.Add(c), sticky)
}

func (e Encoding) hypot(a, b uint64) uint64 {
	switch {
	case a == e.NaR() || b == e.NaR():
		return e.NaR()
	case a == 0:
		return e.abs(b)
	case b == 0:
		return e.abs(a)
	}
	if e.variant == Linear {
		x, y := e.toBig(a), e.toBig(b)
		sum := newBig()
		sum.Add(sum.Mul(x, x), newBig().Mul(y, y))
		s, inexact := bigSqrt(sum, sum.Acc() != big.Exact)
		return e.fromBig(s, inexact)
	}
	_, la := e.split(a)
	_, lb := e.split(b)
	if la.Cmp(lb) < 0 {
		la, lb = lb, la
	}
	// sqrt(a^2 + b^2) = sqrt(e)^(la + PhiPlus(2(lb - la))/2)
	q := lb.Sub(la).Float64()
	return e.offset(false, la, mathutil.PhiPlus(2*q)/2)
}

// Add returns a+b.
func Add[T Takum](a, b T) T {
	return binary(a, b, Encoding.add)
}

// Sub returns a-b.
func Sub[T Takum](a, b T) T {
	return binary(a, b, Encoding.sub)
}

// Hypot returns sqrt(a*a + b*b) without intermediate overflow.
func Hypot[T Takum](a, b T) T {
	return binary(a, b, Encoding.hypot)
}
