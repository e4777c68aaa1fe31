package takum

import (
	"github.com/avdva/takum/internal/coord"
	"github.com/avdva/takum/internal/mathutil"
)

// Convert converts w to another encoding.
// Widening within a variant is exact. Narrowing rounds to nearest, ties to even,
// and never turns a finite value into NaR or zero.
// Conversion between variants goes through the coordinate and may round even
// if the width doesn't change.
func (e Encoding) Convert(w uint64, to Encoding) uint64 {
	w &= e.mask()
	switch {
	case w == e.NaR():
		return to.NaR()
	case w == 0:
		return 0
	case e.variant != to.variant:
		neg, x := e.split(w)
		var sticky bool
		var y coord.Coord
		precise := e.wide() || to.wide()
		if e.variant == Linear {
			y, sticky = linToLog(x, precise)
		} else {
			y, sticky = logToLin(x, precise)
		}
		return to.join(neg, y, sticky)
	case to.width >= e.width:
		return to.Word(e.Int64(w) << (to.width - e.width))
	}
	v := mathutil.RoundShiftSigned(e.Int64(w), e.width-to.width)
	maxMag := int64(to.maxMag())
	switch {
	case mathutil.AbsInt64(v) > maxMag:
		v = maxMag * int64(mathutil.Int64Sign(v))
	case v == 0:
		v = 1
		if e.isNeg(w) {
			v = -1
		}
	}
	return to.Word(v)
}

// Convert converts x to another width or variant.
func Convert[To, From Takum](x From) To {
	e, w := wordOf(x)
	return fromWord[To](e.Convert(w, EncodingOf[To]()))
}
