package takum

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpecialOperands(t *testing.T) {
	a := assert.New(t)
	one, nar, zero := One[Log16](), NaR[Log16](), Zero[Log16]()
	a.Equal(nar, Div(one, zero))
	a.Equal(Log16(-0x8000), Div(one, zero))
	a.Equal(zero, Div(zero, one))
	a.Equal(nar, Div(zero, zero))
	a.Equal(nar, Mul(nar, zero))
	a.Equal(zero, Mul(zero, one))
	a.Equal(nar, Inv(zero))
	a.Equal(nar, Inv(nar))
	a.Equal(nar, PowInt(zero, 0))
	a.Equal(nar, PowInt(zero, -1))
	a.Equal(zero, PowInt(zero, 3))
	a.Equal(one, PowInt(FromFloat64[Log16](7), 0))
	a.Equal(nar, PowInt(nar, 0))
	a.Equal(nar, Sqrt(FromFloat64[Log16](-1)))
	a.Equal(zero, Sqrt(zero))
	a.Equal(nar, Root(one, 0))
	a.Equal(nar, Root(zero, -2))
	a.Equal(nar, Abs(nar))
	a.Equal(nar, Neg(nar))
	a.Equal(nar, Sign(nar))
	a.Equal(zero, Neg(zero))
}

func TestMulDiv(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y float64
	}{
		{2, 3},
		{-1.5, 4},
		{1e-10, 1e12},
		{-7, -0.125},
		{math.Pi, math.E},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.InEpsilon(test.x*test.y, Float64(Mul(FromFloat64[Log32](test.x), FromFloat64[Log32](test.y))), 1e-6)
			a.InEpsilon(test.x*test.y, Float64(Mul(FromFloat64[Linear32](test.x), FromFloat64[Linear32](test.y))), 1e-6)
			a.InEpsilon(test.x/test.y, Float64(Div(FromFloat64[Log32](test.x), FromFloat64[Log32](test.y))), 1e-6)
			a.InEpsilon(test.x/test.y, Float64(Div(FromFloat64[Linear32](test.x), FromFloat64[Linear32](test.y))), 1e-6)
			a.InEpsilon(test.x*test.y, Float64(Mul(FromFloat64[Log64](test.x), FromFloat64[Log64](test.y))), 1e-14)
			a.InEpsilon(test.x*test.y, Float64(Mul(FromFloat64[Linear64](test.x), FromFloat64[Linear64](test.y))), 1e-14)
		})
	}
	// Linear results are rounded once, so exact products stay exact.
	a.Equal(FromFloat64[Linear16](3), Mul(FromFloat64[Linear16](1.5), FromFloat64[Linear16](2)))
	a.Equal(FromFloat64[Linear16](-0.75), Div(FromFloat64[Linear16](1.5), FromFloat64[Linear16](-2)))
	a.Equal(FromFloat64[Linear8](0.25), Inv(FromFloat64[Linear8](4)))
}

func TestMulSaturates(t *testing.T) {
	a := assert.New(t)
	for _, x := range []Log16{MaxValue[Log16](), FromFloat64[Log16](1e30)} {
		a.Equal(MaxValue[Log16](), Mul(x, x))
		a.Equal(MinValue[Log16](), Mul(x, -x))
	}
	tiny := SmallestPositive[Log16]()
	a.Equal(tiny, Mul(tiny, tiny))
	a.Equal(-tiny, Mul(-tiny, tiny))
	a.Equal(MaxValue[Linear16](), Mul(MaxValue[Linear16](), MaxValue[Linear16]()))
	a.Equal(SmallestPositive[Linear16](), Div(SmallestPositive[Linear16](), MaxValue[Linear16]()))
}

func TestLogExactness(t *testing.T) {
	a := assert.New(t)
	for _, e := range []Encoding{EncodingOf[Log8](), EncodingOf[Log16]()} {
		one := e.one()
		for i := int64(0); i < 1<<e.Width(); i++ {
			w := uint64(i)
			if w == 0 || w == e.NaR() {
				continue
			}
			if !a.Equal(w, e.inv(e.inv(w)), "%s: inv(inv(%#x))", e, w) {
				return
			}
			if !a.Equal(one, e.mul(w, e.inv(w)), "%s: %#x * inv", e, w) {
				return
			}
			if !a.Equal(one, e.div(w, w), "%s: %#x / itself", e, w) {
				return
			}
			if !a.Equal(e.mul(w, w), e.powInt(w, 2), "%s: %#x squared", e, w) {
				return
			}
		}
	}
}

func TestLogExactnessSampled(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(1))
	for _, e := range []Encoding{EncodingOf[Log32](), EncodingOf[Log64]()} {
		one := e.one()
		for i := 0; i < 200000; i++ {
			w := e.Word(int64(rnd.Uint64()))
			if w == 0 || w == e.NaR() {
				continue
			}
			if !a.Equal(w, e.inv(e.inv(w)), "%s: inv(inv(%#x))", e, w) {
				return
			}
			if !a.Equal(one, e.div(w, w), "%s: %#x / itself", e, w) {
				return
			}
			if !a.Equal(one, e.mul(w, e.inv(w)), "%s: %#x * inv", e, w) {
				return
			}
			if !a.Equal(e.mul(w, w), e.powInt(w, 2), "%s: %#x squared", e, w) {
				return
			}
		}
	}
}

func TestPowInt(t *testing.T) {
	a := assert.New(t)
	a.Equal(FromFloat64[Linear16](0.25), PowInt(FromFloat64[Linear16](2), -2))
	a.Equal(FromFloat64[Linear16](-8), PowInt(FromFloat64[Linear16](-2), 3))
	a.Equal(FromFloat64[Linear16](16), PowInt(FromFloat64[Linear16](-2), uint8(4)))
	a.Equal(FromFloat64[Linear32](1024), PowInt(FromFloat64[Linear32](2), 10))
	a.InEpsilon(1.0/27, Float64(PowInt(FromFloat64[Log32](3), -3)), 1e-6)
	a.InEpsilon(math.Pow(1.1, 100), Float64(PowInt(FromFloat64[Linear64](1.1), 100)), 1e-13)
	a.InEpsilon(math.Pow(1.1, -100), Float64(PowInt(FromFloat64[Linear64](1.1), -100)), 1e-13)

	a.Equal(MaxValue[Log32](), PowInt(FromFloat64[Log32](10), 1000))
	a.Equal(MinValue[Log32](), PowInt(FromFloat64[Log32](-10), 1001))
	a.Equal(SmallestPositive[Log32](), PowInt(FromFloat64[Log32](-10), -1000))
	a.Equal(MaxValue[Linear32](), PowInt(FromFloat64[Linear32](10), math.MaxInt64))
	a.Equal(MinValue[Linear32](), PowInt(FromFloat64[Linear32](-10), uint64(math.MaxUint64)))
	a.Equal(SmallestPositive[Linear64](), PowInt(FromFloat64[Linear64](0.5), 1<<40))
	a.Equal(One[Log64](), PowInt(One[Log64](), math.MinInt64))
}

func TestRoot(t *testing.T) {
	a := assert.New(t)
	a.Equal(FromFloat64[Linear16](2), Sqrt(FromFloat64[Linear16](4)))
	a.Equal(FromFloat64[Linear32](0.75), Sqrt(FromFloat64[Linear32](0.5625)))
	a.InEpsilon(math.Sqrt2, Float64(Sqrt(FromFloat64[Linear64](2))), 1e-15)
	a.InEpsilon(math.Sqrt2, Float64(Sqrt(FromFloat64[Log64](2))), 1e-14)
	a.InEpsilon(2, Float64(Sqrt(FromFloat64[Log16](4))), 1e-3)
	a.InEpsilon(-2, Float64(Root(FromFloat64[Log32](-8), 3)), 1e-6)
	a.InEpsilon(-2, Float64(Root(FromFloat64[Linear32](-8), 3)), 1e-6)
	a.InEpsilon(0.5, Float64(Root(FromFloat64[Log32](8), -3)), 1e-6)
	a.Equal(NaR[Linear32](), Root(FromFloat64[Linear32](-16), 4))
	x := FromFloat64[Log16](5)
	a.Equal(x, Root(x, 1))
	// Square roots in the logarithmic variant halve the coordinate.
	for _, f := range []float64{0.01, 3, 1e20} {
		r := Sqrt(FromFloat64[Log32](f))
		a.InEpsilon(f, Float64(Mul(r, r)), 1e-6)
	}
}

func TestPow(t *testing.T) {
	a := assert.New(t)
	two, half := FromFloat64[Log32](2), FromFloat64[Log32](0.5)
	a.InEpsilon(math.Sqrt2, Float64(Pow(two, half)), 1e-6)
	a.InEpsilon(-8, Float64(Pow(-two, FromFloat64[Log32](3))), 1e-6)
	a.Equal(NaR[Log32](), Pow(-two, half))
	a.Equal(Zero[Log32](), Pow(Zero[Log32](), half))
	a.Equal(NaR[Log32](), Pow(Zero[Log32](), -half))
	a.Equal(NaR[Log32](), Pow(Zero[Log32](), Zero[Log32]()))
	a.Equal(NaR[Log32](), Pow(two, NaR[Log32]()))
	a.InEpsilon(math.Pow(3, 0.3), Float64(Pow(FromFloat64[Linear32](3), FromFloat64[Linear32](0.3))), 1e-6)
	a.Equal(MaxValue[Linear16](), Pow(FromFloat64[Linear16](100), FromFloat64[Linear16](1000.5)))
}

func TestAbsSign(t *testing.T) {
	a := assert.New(t)
	x := FromFloat64[Linear32](-2.5)
	a.Equal(-x, Abs(x))
	a.Equal(-x, Abs(-x))
	a.Equal(-One[Linear32](), Sign(x))
	a.Equal(One[Linear32](), Sign(-x))
	a.Equal(Zero[Linear32](), Sign(Zero[Linear32]()))
	a.Equal(-One[Log64](), Sign(MinValue[Log64]()))
	a.Equal(One[Log8](), Sign(SmallestPositive[Log8]()))
	a.Equal(MaxValue[Log8](), Abs(MinValue[Log8]()))
}
