package takum

import (
	"math/big"

	"github.com/shopspring/decimal"
)

var bigFive = big.NewInt(5)

// Decimal returns the value of x as a decimal. The result is exact for linear takums
// and for the 128-bit approximation of logarithmic ones.
// It fails with ErrNaR for NaR.
func Decimal[T Takum](x T) (decimal.Decimal, error) {
	e, w := wordOf(x)
	return e.Decimal(w)
}

// Decimal returns the value of w as a decimal, see Decimal.
func (e Encoding) Decimal(w uint64) (decimal.Decimal, error) {
	f, err := e.BigFloat(w)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return bigToDecimal(f), nil
}

// FromDecimal returns the takum closest to d.
func FromDecimal[T Takum](d decimal.Decimal) T {
	e := EncodingOf[T]()
	return fromWord[T](e.fromBig(decimalToBig(d)))
}

// bigToDecimal converts a finite f exactly: f = mant*2^exp = mant*5^-exp / 10^-exp.
func bigToDecimal(f *big.Float) decimal.Decimal {
	if f.Sign() == 0 {
		return decimal.Zero
	}
	exp := f.MantExp(nil) - int(f.MinPrec())
	mant, _ := new(big.Float).SetMantExp(f, -exp).Int(nil)
	if exp >= 0 {
		return decimal.NewFromBigInt(mant.Lsh(mant, uint(exp)), 0)
	}
	pow := new(big.Int).Exp(bigFive, big.NewInt(int64(-exp)), nil)
	return decimal.NewFromBigInt(mant.Mul(mant, pow), int32(exp))
}

// decimalToBig returns d as a big.Float truncated to bigPrec bits and
// reports whether it's inexact.
func decimalToBig(d decimal.Decimal) (*big.Float, bool) {
	coef, exp := d.Coefficient(), d.Exponent()
	f := newBig()
	if exp >= 0 {
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp)), nil)
		f.SetInt(new(big.Int).Mul(coef, scale))
	} else {
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(-int64(exp)), nil)
		f.SetRat(new(big.Rat).SetFrac(coef, scale))
	}
	return f, f.Acc() != big.Exact
}
