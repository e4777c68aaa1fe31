package takum

import (
	"math/big"

	"github.com/avdva/takum/internal/coord"
)

// logPrec is the precision of the series converting between the coordinates
// of wide words. It leaves a wide margin over the 64 fractional bits of a coordinate.
const logPrec = 192

var bigLn2 = mustParseBig(ln2Digits, logPrec)

func mustParseBig(s string, prec uint) *big.Float {
	f, _, err := big.ParseFloat(s, 10, prec, big.ToNearestEven)
	if err != nil {
		panic(err)
	}
	return f
}

func newLogBig() *big.Float {
	return new(big.Float).SetPrec(logPrec)
}

// bigLog1p returns ln(1+m) for m in [0, 1) using
// ln(1+m) = 2*atanh(z) = 2*(z + z^3/3 + z^5/5 + ...), z = m/(2+m) <= 1/3.
func bigLog1p(m *big.Float) *big.Float {
	z := newLogBig().Add(m, big.NewFloat(2))
	z.Quo(m, z)
	z2 := newLogBig().Mul(z, z)
	sum := newLogBig().Set(z)
	pow := newLogBig().Set(z)
	term, div := newLogBig(), newLogBig()
	for k := int64(3); ; k += 2 {
		pow.Mul(pow, z2)
		term.Quo(pow, div.SetInt64(k))
		if term.Sign() == 0 || term.MantExp(nil) < -logPrec-4 {
			break
		}
		sum.Add(sum, term)
	}
	return sum.SetMantExp(sum, 1)
}

// bigExpm1 returns e^r - 1 for r in [0, ln(2)) by the Taylor series.
func bigExpm1(r *big.Float) *big.Float {
	sum := newLogBig().Set(r)
	term := newLogBig().Set(r)
	div := newLogBig()
	for k := int64(2); ; k++ {
		term.Mul(term, r)
		term.Quo(term, div.SetInt64(k))
		if term.Sign() == 0 || term.MantExp(nil) < -logPrec-4 {
			break
		}
		sum.Add(sum, term)
	}
	return sum
}

// fixedToBig returns the exact value of a signed coordinate.
func fixedToBig(x coord.Coord) *big.Float {
	f := newLogBig().SetUint64(x.Frac())
	f.SetMantExp(f, -coord.FracBits)
	return f.Add(f, newLogBig().SetInt64(x.Floor()))
}

// fixedFromBig truncates a non-negative f to the coordinate grid.
func fixedFromBig(f *big.Float) coord.Coord {
	i, _ := f.Int64()
	r := newLogBig().Sub(f, newLogBig().SetInt64(i))
	frac, _ := r.SetMantExp(r, coord.FracBits).Uint64()
	return coord.New(i, frac)
}

// linToLogBig is linToLog carrying the full precision of the coordinate.
func linToLogBig(c int64, frac uint64) coord.Coord {
	l, _ := coord.Ln2Multiple(2 * c)
	if frac != 0 {
		m := newLogBig().SetUint64(frac)
		m.SetMantExp(m, -coord.FracBits)
		lm := bigLog1p(m)
		l = l.Add(fixedFromBig(lm.SetMantExp(lm, 1)))
	}
	return l
}

// logToLinBig is logToLin carrying the full precision of the coordinate.
// l is within (-maxCoord, maxCoord) and k is an estimate of floor(l/(2*ln(2))).
func logToLinBig(l coord.Coord, k int64) coord.Coord {
	t := fixedToBig(l)
	t.SetMantExp(t, -1)
	r, kln2, kf := newLogBig(), newLogBig(), newLogBig()
	for {
		r.Sub(t, kln2.Mul(bigLn2, kf.SetInt64(k)))
		switch {
		case r.Sign() < 0:
			k--
			continue
		case r.Cmp(bigLn2) >= 0:
			k++
			continue
		}
		break
	}
	m := bigExpm1(r)
	if m.Cmp(bigOne) >= 0 {
		return coord.FromInt(k + 1)
	}
	frac, _ := m.SetMantExp(m, coord.FracBits).Uint64()
	return coord.New(k, frac)
}
