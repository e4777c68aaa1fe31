package mathutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask(t *testing.T) {
	a := assert.New(t)
	a.Equal(uint64(0), Mask(0))
	a.Equal(uint64(0xff), Mask(8))
	a.Equal(uint64(0xffffffff), Mask(32))
	a.Equal(uint64(math.MaxUint64), Mask(64))
}

func TestSignExtend(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		w   uint64
		n   uint
		res int64
	}{
		{0x80, 8, -128},
		{0x7f, 8, 127},
		{0xffff, 16, -1},
		{0x8000, 16, math.MinInt16},
		{0x1234, 16, 0x1234},
		{1 << 63, 64, math.MinInt64},
		{0xfff, 12, -1},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, SignExtend(test.w, test.n))
		})
	}
}

func TestRoundShift(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		w      uint64
		shift  uint
		sticky bool
		res    uint64
	}{
		{0b1000, 3, false, 1},
		{0b1011, 3, false, 1},
		{0b1100, 3, false, 2}, // tie, round to even
		{0b0100, 3, false, 0}, // tie, round to even
		{0b0100, 3, true, 1},  // above the tie
		{0b1101, 3, false, 2},
		{0b1111, 3, false, 2},
		{0xff, 0, false, 0xff},
		{1 << 63, 64, false, 0},
		{1 << 63, 64, true, 1},
		{1<<63 + 1, 64, false, 1},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, RoundShift(test.w, test.shift, test.sticky))
		})
	}
}

func TestRoundShiftSigned(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		w     int64
		shift uint
		res   int64
	}{
		{0x1234, 8, 0x12},
		{0x1280, 8, 0x12},
		{0x1380, 8, 0x14},
		{-0x1280, 8, -0x12},
		{-0x1380, 8, -0x14},
		{-0x1281, 8, -0x13},
		{0x7fff, 8, 0x80},
		{-0x7fff, 8, -0x80},
		{-1, 8, 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, RoundShiftSigned(test.w, test.shift))
		})
	}
}

func TestRoundShiftSignedSymmetric(t *testing.T) {
	a := assert.New(t)
	for w := int64(-1 << 12); w < 1<<12; w++ {
		a.Equal(-RoundShiftSigned(w, 4), RoundShiftSigned(-w, 4), "w = %d", w)
	}
}

func TestAbs(t *testing.T) {
	a := assert.New(t)
	a.Equal(int64(5), AbsInt64(-5))
	a.Equal(int64(5), AbsInt64(5))
	a.Equal(uint64(1<<63), UAbsInt64(math.MinInt64))
	a.Equal(uint64(7), UAbsInt64(-7))
	a.True(SameSign(-1, -100))
	a.False(SameSign(1, -100))
	a.True(SameSign(0, 100))
	a.True(SameSign(math.MinInt64, -1))
	a.False(SameSign(0, -1))
}

func TestInt64Sign(t *testing.T) {
	a := assert.New(t)
	for i, test := range []struct {
		v   int64
		res int
	}{
		{0, 0},
		{1, 1},
		{-1, -1},
		{math.MaxInt64, 1},
		{math.MinInt64, -1},
		{-0x8000, -1},
	} {
		a.Equal(test.res, Int64Sign(test.v), "test %d", i)
	}
}

func TestGaussianLogarithms(t *testing.T) {
	a := assert.New(t)
	for _, q := range []float64{-0.001, -0.5, -1, -2, -10, -50} {
		x, y := 1.0, math.Exp(q/2) // sqrt(e)^0, sqrt(e)^q
		a.InDelta(2*math.Log(x+y), PhiPlus(q), 1e-12, "q = %v", q)
		a.InDelta(2*math.Log(x-y), PhiMinus(q), 1e-9, "q = %v", q)
	}
	a.True(math.IsInf(PhiMinus(0), -1))
	a.InDelta(2*math.Ln2, PhiPlus(0), 1e-15)
	a.Equal(0.0, PhiPlus(-2000))
}

func TestIsInt(t *testing.T) {
	a := assert.New(t)
	a.True(IsInt(3))
	a.True(IsInt(-1e30))
	a.False(IsInt(0.5))
	a.False(IsInt(math.Inf(1)))
	a.False(IsInt(math.NaN()))
}
