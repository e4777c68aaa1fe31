package takum

import (
	"math"
	"math/big"

	"github.com/shogo82148/float16"
	"golang.org/x/exp/constraints"

	"github.com/avdva/takum/internal/codec"
	"github.com/avdva/takum/internal/coord"
)

// bigPrec is the precision of big.Float intermediates.
// It holds the product of two mantissas exactly.
const bigPrec = 128

// maxCoord bounds coordinates computed in floating point. Anything beyond it
// saturates anyway, and it keeps the values far from the coordinate's range.
const maxCoord = 1 << 12

var bigOne = big.NewFloat(1)

// split returns the sign and the coordinate of a finite non-zero word.
func (e Encoding) split(w uint64) (neg bool, x coord.Coord) {
	c, frac := codec.Unpack(e.abs(w), e.width)
	return e.isNeg(w), coord.New(c, frac)
}

// join rounds the coordinate x to the nearest word with given sign.
// sticky reports whether the true coordinate is slightly above x.
func (e Encoding) join(neg bool, x coord.Coord, sticky bool) uint64 {
	return e.signed(neg, codec.Pack(x.Floor(), x.Frac(), sticky, e.width))
}

// logCoord returns the logarithmic coordinate of a finite non-zero word: 2*ln|x|.
func (e Encoding) logCoord(w uint64) (neg bool, l coord.Coord, sticky bool) {
	neg, l = e.split(w)
	if e.variant == Linear {
		l, sticky = linToLog(l, e.wide())
	}
	return neg, l, sticky
}

// fromLog is the inverse of logCoord.
func (e Encoding) fromLog(neg bool, l coord.Coord, sticky bool) uint64 {
	if e.variant == Linear {
		var inexact bool
		l, inexact = logToLin(l, e.wide())
		sticky = sticky || inexact
	}
	return e.join(neg, l, sticky)
}

// linCoord returns the linear coordinate of a finite non-zero word: log2|x| = c + log2(1+m).
func (e Encoding) linCoord(w uint64) (neg bool, x coord.Coord, sticky bool) {
	neg, x = e.split(w)
	if e.variant == Logarithmic {
		x, sticky = logToLin(x, e.wide())
	}
	return neg, x, sticky
}

// fromLin is the inverse of linCoord.
func (e Encoding) fromLin(neg bool, x coord.Coord, sticky bool) uint64 {
	if e.variant == Logarithmic {
		var inexact bool
		x, inexact = linToLog(x, e.wide())
		sticky = sticky || inexact
	}
	return e.join(neg, x, sticky)
}

// wide reports whether the mantissa of e may be longer than float64's.
func (e Encoding) wide() bool {
	return e.width > 32
}

// linToLog converts (c, m) of (1+m)*2^c to l of sqrt(e)^l:
// l = 2*(c*ln(2) + ln(1+m)).
// If precise is set, ln(1+m) is evaluated to the full coordinate precision
// rather than in float64.
func linToLog(x coord.Coord, precise bool) (l coord.Coord, sticky bool) {
	c, frac := x.Floor(), x.Frac()
	switch {
	case c == 0 && frac == 0:
		return coord.Coord{}, false
	case precise:
		return linToLogBig(c, frac), true
	}
	l, _ = coord.Ln2Multiple(2 * c)
	if frac != 0 {
		lm, _ := coord.FromFloat64(2 * math.Log1p(float64(frac)*0x1p-64))
		l = l.Add(lm)
	}
	return l, true
}

// logToLin converts l of sqrt(e)^l to (c, m) of (1+m)*2^c.
// With t = l/2 = k*ln(2) + r, r in [0, ln(2)), c = k and m = e^r - 1.
// precise has the same meaning as for linToLog.
func logToLin(l coord.Coord, precise bool) (x coord.Coord, sticky bool) {
	switch f := l.Floor(); {
	case l.IsZero():
		return coord.Coord{}, false
	case f >= maxCoord:
		return coord.FromInt(maxCoord), true
	case f < -maxCoord:
		return coord.FromInt(-maxCoord), true
	}
	t, _ := l.QuoInt(2)
	k := int64(math.Floor(t.Float64() / math.Ln2))
	if precise {
		return logToLinBig(l, k), true
	}
	kln2, _ := coord.Ln2Multiple(k)
	r := t.Sub(kln2)
	switch ln2 := coord.Ln2(); {
	case r.Sign() < 0:
		k--
		r = r.Add(ln2)
	case r.Cmp(ln2) >= 0:
		k++
		r = r.Sub(ln2)
	}
	m := math.Expm1(r.Float64())
	switch {
	case m >= 1:
		return coord.FromInt(k + 1), true
	case m < 0:
		m = 0
	}
	return coord.New(k, uint64(math.Ldexp(m, 64))), true
}

// coordFromFloat converts a coordinate computed in floating point, clamping it
// to the range where every result saturates.
func coordFromFloat(f float64) (coord.Coord, bool) {
	switch {
	case math.IsNaN(f):
		return coord.Coord{}, true
	case f > maxCoord:
		f = maxCoord
	case f < -maxCoord:
		f = -maxCoord
	}
	return coord.FromFloat64(f)
}

// FromFloat64 returns the word closest to f. NaN and infinities are NaR.
func (e Encoding) FromFloat64(f float64) uint64 {
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return e.NaR()
	case f == 0:
		return 0
	}
	frac, exp := math.Frexp(math.Abs(f))
	mant := uint64(math.Ldexp(frac, 53))
	x := coord.New(int64(exp-1), (mant-1<<52)<<12)
	return e.fromLin(f < 0, x, false)
}

// Float64 returns the float64 value of w. NaR is NaN.
func (e Encoding) Float64(w uint64) float64 {
	w &= e.mask()
	switch w {
	case 0:
		return 0
	case e.NaR():
		return math.NaN()
	}
	neg, x, _ := e.linCoord(w)
	f := math.Ldexp(float64(1<<63|x.Frac()>>1), int(x.Floor())-63)
	if neg {
		return -f
	}
	return f
}

// FromBigFloat returns the word closest to f. Nil and infinite values are NaR.
func (e Encoding) FromBigFloat(f *big.Float) uint64 {
	switch {
	case f == nil || f.IsInf():
		return e.NaR()
	case f.Sign() == 0:
		return 0
	}
	x, sticky := bigToCoord(f)
	return e.fromLin(f.Sign() < 0, x, sticky)
}

// BigFloat returns the value of w. It fails with ErrNaR for NaR.
func (e Encoding) BigFloat(w uint64) (*big.Float, error) {
	w &= e.mask()
	switch w {
	case 0:
		return new(big.Float).SetPrec(bigPrec), nil
	case e.NaR():
		return nil, ErrNaR
	}
	return e.toBig(w), nil
}

// toBig returns the value of a finite non-zero word.
func (e Encoding) toBig(w uint64) *big.Float {
	neg, x, _ := e.linCoord(w)
	f := coordToBig(x)
	if neg {
		f.Neg(f)
	}
	return f
}

// fromBig rounds a result computed with big.Float. sticky reports whether f's
// magnitude is below the true one.
func (e Encoding) fromBig(f *big.Float, sticky bool) uint64 {
	switch {
	case f.IsInf():
		return e.saturate(f.Signbit())
	case f.Sign() == 0:
		return 0
	}
	x, inexact := bigToCoord(f)
	return e.fromLin(f.Sign() < 0, x, sticky || inexact)
}

func newBig() *big.Float {
	return new(big.Float).SetPrec(bigPrec).SetMode(big.ToZero)
}

// coordToBig returns (1+m)*2^c for a linear coordinate. The result is exact.
func coordToBig(x coord.Coord) *big.Float {
	f := newBig().SetUint64(x.Frac())
	f.SetMantExp(f, -64)
	f.Add(f, bigOne)
	return f.SetMantExp(f, int(x.Floor()))
}

// bigToCoord returns the linear coordinate of |f| truncated to 64 fractional bits.
func bigToCoord(f *big.Float) (x coord.Coord, sticky bool) {
	mant := new(big.Float)
	exp := f.MantExp(mant)
	mant.Abs(mant)
	mant.SetMantExp(mant, 1)
	mant.Sub(mant, bigOne)
	mant.SetMantExp(mant, 64)
	frac, acc := mant.Uint64()
	return coord.New(int64(exp)-1, frac), acc != big.Exact
}

// Fields returns the fields of w. ok is false for zero and NaR, that have no fields.
func (e Encoding) Fields(w uint64) (f Fields, ok bool) {
	if zero, nar := e.special(w & e.mask()); zero || nar {
		return Fields{}, false
	}
	return codec.Decode(w, e.width), true
}

// FromFields returns the word of f. Fields wider than their slots are truncated.
func (e Encoding) FromFields(f Fields) uint64 {
	return codec.Encode(f, e.width)
}

// Precision returns the number of mantissa bits of w, 0 for zero and NaR.
func (e Encoding) Precision(w uint64) int {
	f, ok := e.Fields(w)
	if !ok {
		return 0
	}
	return int(f.Precision(e.width))
}

// FromFloat returns the takum closest to f. NaN and infinities are NaR.
func FromFloat[T Takum, F constraints.Float](f F) T {
	return fromWord[T](EncodingOf[T]().FromFloat64(float64(f)))
}

// ToFloat returns the value of x as a float. NaR is NaN.
func ToFloat[F constraints.Float, T Takum](x T) F {
	e, w := wordOf(x)
	return F(e.Float64(w))
}

// FromFloat64 returns the takum closest to f. NaN and infinities are NaR.
func FromFloat64[T Takum](f float64) T {
	return FromFloat[T](f)
}

// Float64 returns the value of x. NaR is NaN.
func Float64[T Takum](x T) float64 {
	return ToFloat[float64](x)
}

// FromFloat32 returns the takum closest to f. NaN and infinities are NaR.
func FromFloat32[T Takum](f float32) T {
	return FromFloat[T](f)
}

// Float32 returns the value of x. NaR is NaN.
func Float32[T Takum](x T) float32 {
	return ToFloat[float32](x)
}

// FromBigFloat returns the takum closest to f. Nil and infinite values are NaR.
func FromBigFloat[T Takum](f *big.Float) T {
	return fromWord[T](EncodingOf[T]().FromBigFloat(f))
}

// BigFloat returns the value of x. Linear takums convert exactly.
// It fails with ErrNaR for NaR.
func BigFloat[T Takum](x T) (*big.Float, error) {
	e, w := wordOf(x)
	return e.BigFloat(w)
}

// FromFloat16 returns the takum closest to f. NaN and infinities are NaR.
func FromFloat16[T Takum](f float16.Float16) T {
	return FromFloat64[T](f.Float64())
}

// ToFloat16 returns the half-precision float closest to x. NaR is NaN.
func ToFloat16[T Takum](x T) float16.Float16 {
	if IsNaR(x) {
		return float16.NaN()
	}
	return float16.FromFloat64(Float64(x))
}

// FromInt returns the takum closest to i.
func FromInt[T Takum, I constraints.Integer](i I) T {
	f := newBig()
	if i < 0 {
		f.SetInt64(int64(i))
	} else {
		f.SetUint64(uint64(i))
	}
	return FromBigFloat[T](f)
}

// FieldsOf returns the fields of x. ok is false for zero and NaR.
func FieldsOf[T Takum](x T) (f Fields, ok bool) {
	e, w := wordOf(x)
	return e.Fields(w)
}

// FromFields returns the takum with given fields.
func FromFields[T Takum](f Fields) T {
	return fromWord[T](EncodingOf[T]().FromFields(f))
}

// Precision returns the number of mantissa bits of x, 0 for zero and NaR.
func Precision[T Takum](x T) int {
	e, w := wordOf(x)
	return e.Precision(w)
}

// Coordinate returns the sign of x and its logarithmic coordinate l = 2*ln|x|.
// l is -Inf for zero and NaN for NaR.
func Coordinate[T Takum](x T) (neg bool, l float64) {
	e, w := wordOf(x)
	switch w {
	case 0:
		return false, math.Inf(-1)
	case e.NaR():
		return false, math.NaN()
	}
	neg, lc, _ := e.logCoord(w)
	return neg, lc.Float64()
}
