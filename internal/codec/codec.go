// Package codec packs and unpacks the takum bit fields.
//
// An n-bit takum is laid out as
//
//	 n-1  n-2   n-3..n-5   next r bits   remaining p bits
//	  S    D        R           C              M
//
// where S is the sign of the two's complement word, D the direction,
// R the 3-bit regime, C the characteristic offset and M the mantissa.
// The number of characteristic bits is r = R for D = 1 and r = 7-R for D = 0.
// The codec works on uint64 words holding the low n bits and does no rounding
// except in Pack.
package codec

import (
	"math/bits"

	"github.com/avdva/takum/internal/mathutil"
)

const (
	// MinWidth is the narrowest supported word: sign, direction and regime.
	MinWidth = 5
	// MaxWidth is the widest supported word.
	MaxWidth = 64

	// MinCharacteristic is the smallest characteristic.
	MinCharacteristic = -255
	// MaxCharacteristic is the largest characteristic.
	MaxCharacteristic = 254

	headerBits = 5
	regimeMask = 7
)

// biases is the characteristic bias indexed by direction and regime.
var biases = [2][8]int64{
	{-255, -127, -63, -31, -15, -7, -3, -1},
	{0, 1, 3, 7, 15, 31, 63, 127},
}

// Fields is an unpacked takum.
type Fields struct {
	Sign bool
	D    bool
	R    uint8
	// C holds the characteristic bits present in the word. For narrow words,
	// where r exceeds n-5, the missing low bits are implicitly zero.
	C uint64
	M uint64
}

// RegimeBits returns r, the number of characteristic bits selected by (d, regime).
func RegimeBits(d bool, regime uint8) uint {
	regime &= regimeMask
	if d {
		return uint(regime)
	}
	return uint(7 - regime)
}

// Bias returns the smallest characteristic of the (d, regime) interval.
func Bias(d bool, regime uint8) int64 {
	return biases[b2i(d)][regime&regimeMask]
}

// Interval is the range of characteristics [Lo, Hi] selected by (D, R).
type Interval struct {
	D      bool
	R      uint8
	Lo, Hi int64
}

// Partition returns the 16 characteristic intervals sorted by Lo.
// Together they tile [MinCharacteristic, MaxCharacteristic].
func Partition() []Interval {
	res := make([]Interval, 0, 16)
	for _, d := range []bool{false, true} {
		for regime := uint8(0); regime < 8; regime++ {
			lo := Bias(d, regime)
			res = append(res, Interval{D: d, R: regime, Lo: lo, Hi: lo + 1<<RegimeBits(d, regime) - 1})
		}
	}
	return res
}

// Regime returns the direction and regime whose interval contains c.
// c must be within [MinCharacteristic, MaxCharacteristic].
func Regime(c int64) (d bool, regime uint8) {
	if c >= 0 {
		return true, uint8(bits.Len64(uint64(c+1)) - 1)
	}
	return false, uint8(7 - (bits.Len64(uint64(-c)) - 1))
}

// availBits returns how many of the r characteristic bits fit an n-bit word.
func availBits(r, n uint) uint {
	if avail := n - headerBits; r > avail {
		return avail
	}
	return r
}

// Precision returns the number of mantissa bits of an n-bit word with the given header.
func Precision(d bool, regime uint8, n uint) uint {
	r := RegimeBits(d, regime)
	return n - headerBits - availBits(r, n)
}

// Precision returns the number of mantissa bits of f in an n-bit word.
func (f Fields) Precision(n uint) uint {
	return Precision(f.D, f.R, n)
}

// Characteristic returns bias(D, R) + C, restoring the low characteristic
// bits that don't fit narrow words as zeros.
func (f Fields) Characteristic(n uint) int64 {
	r := RegimeBits(f.D, f.R)
	return Bias(f.D, f.R) + int64(f.C<<(r-availBits(r, n)))
}

// Decode splits the low n bits of w into fields.
// The zero and NaR patterns are not takums with fields and must be handled by the caller.
func Decode(w uint64, n uint) Fields {
	mask := mathutil.Mask(n)
	w &= mask
	var f Fields
	if w>>(n-1) != 0 {
		f.Sign = true
		w = -w & mask
	}
	f.D = w>>(n-2)&1 != 0
	f.R = uint8(w >> (n - headerBits) & regimeMask)
	cb := availBits(RegimeBits(f.D, f.R), n)
	p := n - headerBits - cb
	f.C = w >> p & mathutil.Mask(cb)
	f.M = w & mathutil.Mask(p)
	return f
}

// Encode joins fields into an n-bit word. Fields wider than their slots are truncated.
func Encode(f Fields, n uint) uint64 {
	cb := availBits(RegimeBits(f.D, f.R), n)
	p := n - headerBits - cb
	w := uint64(b2i(f.D))<<(n-2) |
		uint64(f.R&regimeMask)<<(n-headerBits) |
		(f.C&mathutil.Mask(cb))<<p |
		f.M&mathutil.Mask(p)
	if f.Sign {
		w = -w & mathutil.Mask(n)
	}
	return w
}

// Pack returns the positive n-bit word closest to the coordinate c + frac/2^64,
// rounding to nearest, ties to even. sticky reports non-zero bits below frac.
// The result is saturated: it's never zero and never reaches the sign bit.
func Pack(c int64, frac uint64, sticky bool, n uint) uint64 {
	maxMag := mathutil.Mask(n - 1)
	switch {
	case c > MaxCharacteristic:
		return maxMag
	case c < MinCharacteristic:
		return 1
	}
	d, regime := Regime(c)
	r := RegimeBits(d, regime)
	offset := uint64(c - Bias(d, regime))
	header := (uint64(b2i(d))<<3|uint64(regime))<<r | offset
	// header (4+r bits) followed by the 60-r leading bits of frac fill exactly 64 bits.
	str := header<<(60-r) | frac>>(4+r)
	sticky = sticky || frac&mathutil.Mask(4+r) != 0
	w := mathutil.RoundShift(str, 65-n, sticky)
	switch {
	case w == 0:
		return 1
	case w > maxMag:
		return maxMag
	}
	return w
}

// Unpack returns the coordinate c + frac/2^64 of a positive, non-zero n-bit word.
func Unpack(w uint64, n uint) (c int64, frac uint64) {
	f := Decode(w, n)
	c = f.Characteristic(n)
	if p := f.Precision(n); p > 0 {
		frac = f.M << (64 - p)
	}
	return c, frac
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
