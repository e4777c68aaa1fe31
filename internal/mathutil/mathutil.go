// Package mathutil holds the small integer and floating-point helpers shared
// by the takum codec and its arithmetic.
package mathutil

import (
	"math"
	"unsafe"
)

// Mask returns a mask with the n lowest bits set, n in [0, 64].
func Mask(n uint) uint64 {
	if n >= 64 {
		return math.MaxUint64
	}
	return 1<<n - 1
}

// SignExtend interprets the n lowest bits of w as an n-bit two's complement number.
func SignExtend(w uint64, n uint) int64 {
	s := 64 - n
	return int64(w<<s) >> s
}

// RoundShift returns w >> shift rounded to nearest, ties to even.
// sticky reports whether there are non-zero bits below w that were already discarded.
func RoundShift(w uint64, shift uint, sticky bool) uint64 {
	if shift == 0 {
		return w
	}
	if shift >= 64 {
		if shift == 64 && (w > 1<<63 || w == 1<<63 && sticky) {
			return 1
		}
		return 0
	}
	q := w >> shift
	rem := w & Mask(shift)
	half := uint64(1) << (shift - 1)
	if rem > half || rem == half && (sticky || q&1 != 0) {
		q++
	}
	return q
}

// RoundShiftSigned returns w >> shift for a signed w rounded to nearest, ties to even.
// The result is not wrapped, so it may exceed the range of the narrower type.
func RoundShiftSigned(w int64, shift uint) int64 {
	if shift == 0 {
		return w
	}
	q := w >> shift // floor
	rem := uint64(w) & Mask(shift)
	half := uint64(1) << (shift - 1)
	if rem > half || rem == half && q&1 != 0 {
		q++
	}
	return q
}

// AbsInt64 returns |val|.
func AbsInt64(val int64) int64 {
	mask := val >> (unsafe.Sizeof(int64(0))*8 - 1)
	return (val + mask) ^ mask
}

// UAbsInt64 returns |val| as an unsigned number, so that it's defined for math.MinInt64.
func UAbsInt64(val int64) uint64 {
	if val < 0 {
		return uint64(^val) + 1
	}
	return uint64(val)
}

// SameSign reports whether a and b are both negative or both non-negative.
func SameSign(a, b int64) bool {
	return (a>>63 ^ b>>63) == 0
}

// Int64Sign returns -1, 0, or 1.
func Int64Sign(v int64) int {
	if v == 0 {
		return 0
	}
	return [...]int{1, -1}[uint64(v)>>63]
}

// PhiPlus is the Gaussian logarithm for the sum in base sqrt(e):
// 2*ln(1 + e^(q/2)). It is used with q <= 0.
func PhiPlus(q float64) float64 {
	return 2 * math.Log1p(math.Exp(q/2))
}

// PhiMinus is the Gaussian logarithm for the difference in base sqrt(e):
// 2*ln(1 - e^(q/2)). It is defined for q < 0 and returns -Inf for q == 0.
func PhiMinus(q float64) float64 {
	if q >= 0 {
		return math.Inf(-1)
	}
	return 2 * math.Log(-math.Expm1(q/2))
}

// IsInt reports whether f is a finite integral value.
func IsInt(f float64) bool {
	return !math.IsInf(f, 0) && f == math.Trunc(f)
}
