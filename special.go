package takum

import (
	"cmp"
)

// NaR returns the word of NaR.
func (e Encoding) NaR() uint64 {
	return 1 << (e.width - 1)
}

// IsNaR reports whether w is NaR.
func (e Encoding) IsNaR(w uint64) bool {
	return w&e.mask() == e.NaR()
}

func (e Encoding) one() uint64 {
	return 1 << (e.width - 2)
}

// maxMag returns the largest positive word.
func (e Encoding) maxMag() uint64 {
	return e.NaR() - 1
}

// isNeg reports whether the sign bit is set. It's also true for NaR.
func (e Encoding) isNeg(w uint64) bool {
	return w&e.NaR() != 0
}

func (e Encoding) neg(w uint64) uint64 {
	return -w & e.mask()
}

func (e Encoding) abs(w uint64) uint64 {
	if e.isNeg(w) {
		return e.neg(w)
	}
	return w
}

func (e Encoding) signed(neg bool, mag uint64) uint64 {
	if neg {
		return e.neg(mag)
	}
	return mag
}

// saturate returns the largest magnitude with given sign.
func (e Encoding) saturate(neg bool) uint64 {
	return e.signed(neg, e.maxMag())
}

// smallest returns the smallest non-zero magnitude with given sign.
func (e Encoding) smallest(neg bool) uint64 {
	return e.signed(neg, 1)
}

// special reports whether any of ws is zero and whether any is NaR.
func (e Encoding) special(ws ...uint64) (zero, nar bool) {
	for _, w := range ws {
		switch w {
		case 0:
			zero = true
		case e.NaR():
			nar = true
		}
	}
	return zero, nar
}

// NaR returns "not a real".
func NaR[T Takum]() T {
	return fromWord[T](EncodingOf[T]().NaR())
}

// Zero returns zero.
func Zero[T Takum]() T {
	return 0
}

// One returns 1.
func One[T Takum]() T {
	return fromWord[T](EncodingOf[T]().one())
}

// MaxValue returns the largest finite takum.
func MaxValue[T Takum]() T {
	return fromWord[T](EncodingOf[T]().maxMag())
}

// MinValue returns the smallest finite takum, -MaxValue.
func MinValue[T Takum]() T {
	return -MaxValue[T]()
}

// SmallestPositive returns the positive takum closest to zero.
func SmallestPositive[T Takum]() T {
	return 1
}

// IsNaR reports whether x is NaR.
func IsNaR[T Takum](x T) bool {
	e, w := wordOf(x)
	return w == e.NaR()
}

// IsZero reports whether x is zero.
func IsZero[T Takum](x T) bool {
	return x == 0
}

// Compare returns -1 if a < b, 0 if a == b and 1 if a > b.
// Takums are ordered as their integer words, so NaR is less than any other value.
func Compare[T Takum](a, b T) int {
	return cmp.Compare(a, b)
}
