package takum

import (
	"fmt"
	"math/big"

	"github.com/avdva/takum/internal/coord"
)

// Constant is a named mathematical constant.
type Constant uint8

const (
	// Pi is π.
	Pi Constant = iota
	// TwoPi is 2π.
	TwoPi
	// HalfPi is π/2.
	HalfPi
	// QuarterPi is π/4.
	QuarterPi
	// InvPi is 1/π.
	InvPi
	// TwoInvPi is 2/π.
	TwoInvPi
	// TwoInvSqrtPi is 2/√π.
	TwoInvSqrtPi
	// Sqrt2 is √2.
	Sqrt2
	// InvSqrt2 is 1/√2.
	InvSqrt2
	// E is Euler's number e.
	E
	// SqrtE is √e.
	SqrtE
	// Ln2 is ln(2).
	Ln2
	// Ln10 is ln(10).
	Ln10
	// Log2E is log2(e).
	Log2E
	// Log10E is log10(e).
	Log10E
	// Phi is the golden ratio (1+√5)/2.
	Phi
	// EulerGamma is the Euler–Mascheroni constant γ.
	EulerGamma

	numConstants
)

var constantNames = [numConstants]string{
	"Pi", "TwoPi", "HalfPi", "QuarterPi", "InvPi", "TwoInvPi", "TwoInvSqrtPi",
	"Sqrt2", "InvSqrt2", "E", "SqrtE", "Ln2", "Ln10", "Log2E", "Log10E", "Phi", "EulerGamma",
}

func (c Constant) String() string {
	if c < numConstants {
		return constantNames[c]
	}
	return fmt.Sprintf("Constant(%d)", uint8(c))
}

// Constants returns all named constants.
func Constants() []Constant {
	res := make([]Constant, numConstants)
	for i := range res {
		res[i] = Constant(i)
	}
	return res
}

const constPrec = 256

const (
	piDigits    = "3.14159265358979323846264338327950288419716939937510582097494459230781640628620899"
	eDigits     = "2.71828182845904523536028747135266249775724709369995957496696762772407663035354759"
	ln2Digits   = "0.69314718055994530941723212145817656807550013436025525412068000949339362196969471"
	ln10Digits  = "2.30258509299404568401799145468436420760110148862877297603332790096757260967735248"
	gammaDigits = "0.57721566490153286060651209008240243104215933593992359880576723488486772677766467"
)

// constWords holds the words of all constants indexed by encoding.
var constWords = map[Encoding]*[numConstants]uint64{}

func init() {
	values := constantValues()
	for _, e := range Encodings() {
		var words [numConstants]uint64
		for i, v := range values {
			words[i] = e.FromBigFloat(v)
		}
		if e.variant == Logarithmic {
			// e and √e have integral coordinates.
			words[E] = e.join(false, coord.FromInt(2), false)
			words[SqrtE] = e.join(false, coord.FromInt(1), false)
		}
		constWords[e] = &words
	}
}

func constantValues() [numConstants]*big.Float {
	parse := func(s string) *big.Float {
		return mustParseBig(s, constPrec)
	}
	newF := func() *big.Float {
		return new(big.Float).SetPrec(constPrec)
	}
	pi, e := parse(piDigits), parse(eDigits)
	ln2, ln10 := parse(ln2Digits), parse(ln10Digits)
	one, two := big.NewFloat(1), big.NewFloat(2)
	sqrt2 := newF().Sqrt(two)
	sqrt5 := newF().Sqrt(big.NewFloat(5))
	var res [numConstants]*big.Float
	res[Pi] = pi
	res[TwoPi] = newF().SetMantExp(pi, 1)
	res[HalfPi] = newF().SetMantExp(pi, -1)
	res[QuarterPi] = newF().SetMantExp(pi, -2)
	res[InvPi] = newF().Quo(one, pi)
	res[TwoInvPi] = newF().Quo(two, pi)
	res[TwoInvSqrtPi] = newF().Quo(two, newF().Sqrt(pi))
	res[Sqrt2] = sqrt2
	res[InvSqrt2] = newF().Quo(one, sqrt2)
	res[E] = e
	res[SqrtE] = newF().Sqrt(e)
	res[Ln2] = ln2
	res[Ln10] = ln10
	res[Log2E] = newF().Quo(one, ln2)
	res[Log10E] = newF().Quo(one, ln10)
	res[Phi] = newF().SetMantExp(newF().Add(one, sqrt5), -1)
	res[EulerGamma] = parse(gammaDigits)
	return res
}

// Constant returns the word of c. It's NaR for an unknown constant.
func (e Encoding) Constant(c Constant) uint64 {
	words, ok := constWords[e]
	if !ok || c >= numConstants {
		return e.NaR()
	}
	return words[c]
}

// Const returns the takum closest to c.
func Const[T Takum](c Constant) T {
	return fromWord[T](EncodingOf[T]().Constant(c))
}
