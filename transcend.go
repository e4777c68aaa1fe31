package takum

import (
	"math"
)

// overflow tells how infinite results of a float function are treated.
type overflow uint8

const (
	// pole: an infinite result means the function is undefined at the point.
	pole overflow = iota
	// saturating: an infinite result is an overflow, a zero one from a non-zero
	// argument is an underflow. Both saturate.
	saturating
)

// apply evaluates fn at w in float64 and rounds the result.
func (e Encoding) apply(w uint64, fn func(float64) float64, mode overflow) uint64 {
	if w == e.NaR() {
		return w
	}
	return e.fromResult(fn(e.Float64(w)), mode, w != 0)
}

// fromResult rounds f. nonZero reports whether the arguments of the function were non-zero.
func (e Encoding) fromResult(f float64, mode overflow, nonZero bool) uint64 {
	switch {
	case math.IsNaN(f):
		return e.NaR()
	case math.IsInf(f, 0):
		if mode == pole {
			return e.NaR()
		}
		return e.saturate(f < 0)
	case f == 0 && mode == saturating && nonZero:
		return e.smallest(math.Signbit(f))
	}
	return e.FromFloat64(f)
}

// exp computes e^x. The logarithmic coordinate of e^x is 2x.
func (e Encoding) exp(w uint64) uint64 {
	if e.variant == Linear {
		return e.apply(w, math.Exp, saturating)
	}
	switch w {
	case e.NaR():
		return w
	case 0:
		return e.one()
	}
	l, _ := coordFromFloat(2 * e.Float64(w))
	return e.join(false, l, true)
}

// log computes ln(x). The logarithmic coordinate is 2*ln(x).
func (e Encoding) log(w uint64) uint64 {
	if e.variant == Linear {
		return e.apply(w, math.Log, pole)
	}
	if w == 0 || e.isNeg(w) {
		return e.NaR()
	}
	_, l := e.split(w)
	return e.FromFloat64(l.Float64() / 2)
}

func (e Encoding) atan2(y, x uint64) uint64 {
	switch zero, nar := e.special(y, x); {
	case nar:
		return e.NaR()
	case zero && y == x:
		return e.NaR()
	}
	return e.fromResult(math.Atan2(e.Float64(y), e.Float64(x)), pole, true)
}

func transcend[T Takum](x T, fn func(float64) float64, mode overflow) T {
	e, w := wordOf(x)
	return fromWord[T](e.apply(w, fn, mode))
}

func recip(fn func(float64) float64) func(float64) float64 {
	return func(x float64) float64 {
		return 1 / fn(x)
	}
}

func ofRecip(fn func(float64) float64) func(float64) float64 {
	return func(x float64) float64 {
		return fn(1 / x)
	}
}

// Sin returns the sine of x.
func Sin[T Takum](x T) T { return transcend(x, math.Sin, pole) }

// Cos returns the cosine of x.
func Cos[T Takum](x T) T { return transcend(x, math.Cos, pole) }

// Tan returns the tangent of x.
func Tan[T Takum](x T) T { return transcend(x, math.Tan, pole) }

// Sec returns the secant of x.
func Sec[T Takum](x T) T { return transcend(x, recip(math.Cos), pole) }

// Csc returns the cosecant of x. Csc(0) is NaR.
func Csc[T Takum](x T) T { return transcend(x, recip(math.Sin), pole) }

// Cot returns the cotangent of x. Cot(0) is NaR.
func Cot[T Takum](x T) T { return transcend(x, recip(math.Tan), pole) }

// Asin returns the arcsine of x. It's NaR for |x| > 1.
func Asin[T Takum](x T) T { return transcend(x, math.Asin, pole) }

// Acos returns the arccosine of x. It's NaR for |x| > 1.
func Acos[T Takum](x T) T { return transcend(x, math.Acos, pole) }

// Atan returns the arctangent of x.
func Atan[T Takum](x T) T { return transcend(x, math.Atan, pole) }

// Asec returns the arcsecant of x. It's NaR for |x| < 1.
func Asec[T Takum](x T) T { return transcend(x, ofRecip(math.Acos), pole) }

// Acsc returns the arccosecant of x. It's NaR for |x| < 1.
func Acsc[T Takum](x T) T { return transcend(x, ofRecip(math.Asin), pole) }

// Acot returns the arccotangent of x, Acot(0) = pi/2.
func Acot[T Takum](x T) T { return transcend(x, ofRecip(math.Atan), pole) }

// Atan2 returns the arctangent of y/x, using the signs of both to determine the quadrant.
// Atan2(0, 0) is NaR.
func Atan2[T Takum](y, x T) T {
	return binary(y, x, Encoding.atan2)
}

// Sinh returns the hyperbolic sine of x.
func Sinh[T Takum](x T) T { return transcend(x, math.Sinh, saturating) }

// Cosh returns the hyperbolic cosine of x.
func Cosh[T Takum](x T) T { return transcend(x, math.Cosh, saturating) }

// Tanh returns the hyperbolic tangent of x.
func Tanh[T Takum](x T) T { return transcend(x, math.Tanh, pole) }

// Sech returns the hyperbolic secant of x.
func Sech[T Takum](x T) T { return transcend(x, recip(math.Cosh), saturating) }

// Csch returns the hyperbolic cosecant of x. Csch(0) is NaR.
func Csch[T Takum](x T) T {
	return transcend(x, func(x float64) float64 {
		if x == 0 {
			return math.NaN()
		}
		return 1 / math.Sinh(x)
	}, saturating)
}

// Coth returns the hyperbolic cotangent of x. Coth(0) is NaR.
func Coth[T Takum](x T) T { return transcend(x, recip(math.Tanh), pole) }

// Asinh returns the inverse hyperbolic sine of x.
func Asinh[T Takum](x T) T { return transcend(x, math.Asinh, pole) }

// Acosh returns the inverse hyperbolic cosine of x. It's NaR for x < 1.
func Acosh[T Takum](x T) T { return transcend(x, math.Acosh, pole) }

// Atanh returns the inverse hyperbolic tangent of x. It's NaR for |x| >= 1.
func Atanh[T Takum](x T) T { return transcend(x, math.Atanh, pole) }

// Asech returns the inverse hyperbolic secant of x. It's NaR outside of (0, 1].
func Asech[T Takum](x T) T { return transcend(x, ofRecip(math.Acosh), pole) }

// Acsch returns the inverse hyperbolic cosecant of x. Acsch(0) is NaR.
func Acsch[T Takum](x T) T { return transcend(x, ofRecip(math.Asinh), pole) }

// Acoth returns the inverse hyperbolic cotangent of x. It's NaR for |x| <= 1.
func Acoth[T Takum](x T) T { return transcend(x, ofRecip(math.Atanh), pole) }

// Exp returns e^x.
func Exp[T Takum](x T) T {
	return unary(x, Encoding.exp)
}

// Exp2 returns 2^x.
func Exp2[T Takum](x T) T { return transcend(x, math.Exp2, saturating) }

// Exp10 returns 10^x.
func Exp10[T Takum](x T) T {
	return transcend(x, func(x float64) float64 { return math.Pow(10, x) }, saturating)
}

// Expm1 returns e^x - 1.
func Expm1[T Takum](x T) T { return transcend(x, math.Expm1, saturating) }

// Log returns the natural logarithm of x. It's NaR for x <= 0.
func Log[T Takum](x T) T {
	return unary(x, Encoding.log)
}

// Log2 returns the binary logarithm of x. It's NaR for x <= 0.
func Log2[T Takum](x T) T { return transcend(x, math.Log2, pole) }

// Log10 returns the decimal logarithm of x. It's NaR for x <= 0.
func Log10[T Takum](x T) T { return transcend(x, math.Log10, pole) }

// Log1p returns ln(1+x). It's NaR for x <= -1.
func Log1p[T Takum](x T) T { return transcend(x, math.Log1p, pole) }

// SinPi returns sin(pi*x), exactly 0 for integers and exactly ±1 for half-integers.
func SinPi[T Takum](x T) T { return transcend(x, sinPi, pole) }

// CosPi returns cos(pi*x), exactly ±1 for integers and exactly 0 for half-integers.
func CosPi[T Takum](x T) T { return transcend(x, cosPi, pole) }

// TanPi returns tan(pi*x), exactly 0 for integers. It's NaR for half-integers.
func TanPi[T Takum](x T) T { return transcend(x, tanPi, pole) }

func sinPi(x float64) float64 {
	switch r := math.Mod(x, 2); r {
	case 0, 1, -1:
		return 0
	case 0.5, -1.5:
		return 1
	case -0.5, 1.5:
		return -1
	default:
		return math.Sin(math.Pi * r)
	}
}

func cosPi(x float64) float64 {
	switch r := math.Mod(math.Abs(x), 2); r {
	case 0:
		return 1
	case 1:
		return -1
	case 0.5, 1.5:
		return 0
	default:
		return math.Cos(math.Pi * r)
	}
}

func tanPi(x float64) float64 {
	switch r := math.Mod(x, 1); r {
	case 0:
		return 0
	case 0.5, -0.5:
		return math.NaN()
	default:
		return math.Tan(math.Pi * r)
	}
}
