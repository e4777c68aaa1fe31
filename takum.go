// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package takum implements takums, tapered-precision numbers stored in a single
// signed machine word of 8, 16, 32, or 64 bits.
//
// A positive takum is laid out as
//
//	  n-1  n-2  n-3..n-5  r bits  p bits
//	   0    D      R        C       M
//
// where D is the direction, R the regime, C the characteristic offset and M the
// mantissa. Negative values are the two's complement of the whole word.
// The characteristic c and the mantissa m form the coordinate c+m.
// The logarithmic variant represents sqrt(e)^(c+m), the linear one (1+m)*2^c.
// Zero is the all-zero word, NaR ("not a real") is the minimum integer of the width.
//
// Operations never fail: undefined results are NaR, results out of range saturate
// to the largest or the smallest magnitude of the right sign.
package takum

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/avdva/takum/internal/codec"
	"github.com/avdva/takum/internal/mathutil"
)

// Variant selects the interpretation of the coordinate.
type Variant uint8

const (
	// Logarithmic takums represent sqrt(e)^(c+m).
	Logarithmic Variant = iota
	// Linear takums represent (1+m)*2^c.
	Linear
)

func (v Variant) String() string {
	switch v {
	case Logarithmic:
		return "log"
	case Linear:
		return "linear"
	default:
		return fmt.Sprintf("Variant(%d)", uint8(v))
	}
}

// Takum is the set of takum types.
type Takum interface {
	~int8 | ~int16 | ~int32 | ~int64
	Variant() Variant
}

type (
	// Log8 is an 8-bit logarithmic takum.
	Log8 int8
	// Log16 is a 16-bit logarithmic takum.
	Log16 int16
	// Log32 is a 32-bit logarithmic takum.
	Log32 int32
	// Log64 is a 64-bit logarithmic takum.
	Log64 int64

	// Linear8 is an 8-bit linear takum.
	Linear8 int8
	// Linear16 is a 16-bit linear takum.
	Linear16 int16
	// Linear32 is a 32-bit linear takum.
	Linear32 int32
	// Linear64 is a 64-bit linear takum.
	Linear64 int64
)

// Fields is the unpacked form of a takum word.
type Fields = codec.Fields

var (
	// ErrNaR is returned when NaR can't be represented by the destination.
	ErrNaR = errors.New("takum: NaR")
	// ErrUnknownEncoding is returned for an unsupported width or an unknown encoding name.
	ErrUnknownEncoding = errors.New("takum: unknown encoding")
	// ErrLengthMismatch is returned by batch functions for slices of different lengths.
	ErrLengthMismatch = errors.New("takum: slice lengths differ")

	errRange = fmt.Errorf("value out of range")
)

// Encoding describes a takum format at run time: its width and variant.
// Encoding methods operate on words holding the takum in the low Width bits.
// The zero Encoding is not valid.
type Encoding struct {
	width   uint
	variant Variant
}

var widths = [...]uint{8, 16, 32, 64}

// NewEncoding returns an encoding for given width and variant.
func NewEncoding(width uint, variant Variant) (Encoding, error) {
	if variant != Logarithmic && variant != Linear {
		return Encoding{}, fmt.Errorf("%w: variant %d", ErrUnknownEncoding, variant)
	}
	for _, w := range widths {
		if w == width {
			return Encoding{width: width, variant: variant}, nil
		}
	}
	return Encoding{}, fmt.Errorf("%w: width %d", ErrUnknownEncoding, width)
}

// ParseEncoding parses names like "log16" or "linear32".
func ParseEncoding(s string) (Encoding, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	variant := Logarithmic
	switch {
	case strings.HasPrefix(name, Logarithmic.String()):
		name = name[len(Logarithmic.String()):]
	case strings.HasPrefix(name, Linear.String()):
		name, variant = name[len(Linear.String()):], Linear
	default:
		return Encoding{}, fmt.Errorf("%w: %q", ErrUnknownEncoding, s)
	}
	for _, w := range widths {
		if name == fmt.Sprint(w) {
			return Encoding{width: w, variant: variant}, nil
		}
	}
	return Encoding{}, fmt.Errorf("%w: %q", ErrUnknownEncoding, s)
}

// Encodings returns all supported encodings.
func Encodings() []Encoding {
	res := make([]Encoding, 0, 2*len(widths))
	for _, variant := range []Variant{Logarithmic, Linear} {
		for _, w := range widths {
			res = append(res, Encoding{width: w, variant: variant})
		}
	}
	return res
}

// EncodingOf returns the encoding of T.
func EncodingOf[T Takum]() Encoding {
	var x T
	return Encoding{width: uint(unsafe.Sizeof(x)) * 8, variant: x.Variant()}
}

// Width returns the number of bits.
func (e Encoding) Width() uint {
	return e.width
}

// Variant returns the variant.
func (e Encoding) Variant() Variant {
	return e.variant
}

func (e Encoding) String() string {
	return fmt.Sprintf("%s%d", e.variant, e.width)
}

// Word returns the low Width bits of w, the canonical word form.
func (e Encoding) Word(w int64) uint64 {
	return uint64(w) & e.mask()
}

// Int64 returns w sign-extended from Width bits.
func (e Encoding) Int64(w uint64) int64 {
	return mathutil.SignExtend(w, e.width)
}

func (e Encoding) mask() uint64 {
	return mathutil.Mask(e.width)
}

func wordOf[T Takum](x T) (Encoding, uint64) {
	e := EncodingOf[T]()
	return e, e.Word(int64(x))
}

func fromWord[T Takum](w uint64) T {
	return T(int64(w))
}

func unary[T Takum](x T, op func(Encoding, uint64) uint64) T {
	e, w := wordOf(x)
	return fromWord[T](op(e, w))
}

func binary[T Takum](a, b T, op func(Encoding, uint64, uint64) uint64) T {
	e, wa := wordOf(a)
	_, wb := wordOf(b)
	return fromWord[T](op(e, wa, wb))
}
