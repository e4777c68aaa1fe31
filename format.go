// Copyright 2020 Aleksandr Demakin. All rights reserved.

package takum

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"unicode"

	"github.com/avdva/takum/internal/mathutil"
)

var (
	// JSONMode defines the way all values are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeString
)

const (
	// JSONModeString produces values as strings, like `"3.142"` or `"NaR"`.
	JSONModeString = iota
	// JSONModeFloat marshals values as numbers, like `3.142`. NaR is still marshaled as `"NaR"`.
	JSONModeFloat
	// JSONModeBits marshals the word as a signed integer, like `{"bits":16968}`.
	JSONModeBits
)

const narString = "NaR"

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

// Text returns the shortest decimal representation of w that parses back to w.
// NaR is "NaR".
func (e Encoding) Text(w uint64) string {
	w &= e.mask()
	switch {
	case w == e.NaR():
		return narString
	case w == 0:
		return "0"
	case e.wide():
		return e.bigText(w)
	}
	f := e.Float64(w)
	for prec := 1; prec < 17; prec++ {
		s := strconv.FormatFloat(f, 'g', prec, 64)
		if g, err := strconv.ParseFloat(s, 64); err == nil && e.FromFloat64(g) == w {
			return s
		}
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// maxTextDigits is enough significant digits for any finite word to parse back.
const maxTextDigits = 40

// bigText is Text for words with more precision than float64.
func (e Encoding) bigText(w uint64) string {
	f := e.toBig(w)
	for prec := 1; prec < maxTextDigits; prec++ {
		s := f.Text('g', prec)
		if p, err := e.Parse(s); err == nil && p == w {
			return s
		}
	}
	return f.Text('g', maxTextDigits)
}

// Parse parses a decimal or hexadecimal floating-point number into a word.
// "NaR", "NaN" and infinities are NaR. The value may be quoted.
func (e Encoding) Parse(s string) (uint64, error) {
	s, offset, err := prepareString(s)
	if err != nil {
		return 0, err
	}
	unsigned := strings.TrimLeft(s, "+-")
	if strings.EqualFold(unsigned, narString) || strings.EqualFold(unsigned, "nan") ||
		strings.EqualFold(unsigned, "inf") || strings.EqualFold(unsigned, "infinity") {
		return e.NaR(), nil
	}
	if err := checkNumber(s); err != nil {
		var pe *posError
		if errors.As(err, &pe) {
			pe.pos += offset + 1 // +1 to start indices from 1.
			err = pe
		}
		return 0, fmt.Errorf("parsing failed: %w", err)
	}
	f, _, err := new(big.Float).SetPrec(bigPrec).Parse(s, 0)
	if err != nil {
		return 0, fmt.Errorf("parsing failed: %w", err)
	}
	return e.FromBigFloat(f), nil
}

func prepareString(s string) (prepared string, offset int, err error) {
	if len(s) > 1 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
		offset++
	}
	if trimmed := strings.TrimLeftFunc(s, unicode.IsSpace); len(trimmed) != len(s) {
		offset += len(s) - len(trimmed)
		s = trimmed
	}
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	if len(s) == 0 {
		return "", 0, fmt.Errorf("empty input")
	}
	return s, offset, nil
}

// checkNumber reports the first symbol that can't be a part of a number.
func checkNumber(s string) error {
	for i, r := range s {
		switch {
		case '0' <= r && r <= '9', 'a' <= r && r <= 'f', 'A' <= r && r <= 'F':
		case strings.ContainsRune("+-._xXpP", r):
		default:
			return newPosError(fmt.Sprintf("unexpected symbol %q", r), i)
		}
	}
	return nil
}

func (e Encoding) toJSON(w uint64, mode int) []byte {
	switch mode {
	case JSONModeFloat:
		if e.IsNaR(w) {
			return []byte(strconv.Quote(narString))
		}
		return []byte(e.Text(w))
	case JSONModeBits:
		var builder strings.Builder
		builder.WriteString(`{"bits":`)
		builder.WriteString(strconv.FormatInt(e.Int64(w), 10))
		builder.WriteString(`}`)
		return []byte(builder.String())
	default: // marshal as a string
		return []byte(strconv.Quote(e.Text(w)))
	}
}

func (e Encoding) fromJSON(data []byte) (uint64, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("empty json")
	}
	switch data[0] {
	case '{':
		d := struct {
			Bits *int64
		}{}
		if err := json.Unmarshal(data, &d); err != nil {
			return 0, err
		}
		if d.Bits == nil {
			return 0, fmt.Errorf("no bits in %s", data)
		}
		if mathutil.SignExtend(uint64(*d.Bits), e.width) != *d.Bits {
			return 0, fmt.Errorf("bits %d for %s: %w", *d.Bits, e, errRange)
		}
		return e.Word(*d.Bits), nil
	default:
		return e.Parse(string(data))
	}
}

// Parse parses a decimal or hexadecimal floating-point number.
// "NaR", "NaN" and infinities are NaR.
func Parse[T Takum](s string) (T, error) {
	w, err := EncodingOf[T]().Parse(s)
	if err != nil {
		return 0, err
	}
	return fromWord[T](w), nil
}

// MustParse is like Parse, but panics on error.
func MustParse[T Takum](s string) T {
	x, err := Parse[T](s)
	if err != nil {
		panic(err)
	}
	return x
}

// String returns the shortest decimal representation of x that parses back to x.
func String[T Takum](x T) string {
	e, w := wordOf(x)
	return e.Text(w)
}

// format implements fmt.Formatter for all takum types.
// Floating-point verbs and 'v' format the value. 'd' formats the word as a signed
// integer, the other integer verbs format its bits.
func format[T Takum](x T, s fmt.State, verb rune) {
	e, w := wordOf(x)
	switch verb {
	case 'v', 's':
		writePadded(s, e.Text(w))
	case 'e', 'E', 'f', 'F', 'g', 'G':
		if w == e.NaR() {
			writePadded(s, narString)
			return
		}
		fmt.Fprintf(s, fmt.FormatString(s, verb), e.Float64(w))
	case 'd':
		fmt.Fprintf(s, fmt.FormatString(s, verb), e.Int64(w))
	case 'b', 'o', 'O', 'x', 'X':
		fmt.Fprintf(s, fmt.FormatString(s, verb), w)
	default:
		fmt.Fprintf(s, "%%!%c(%s=%s)", verb, e, e.Text(w))
	}
}

func writePadded(s fmt.State, str string) {
	width, ok := s.Width()
	if !ok || width <= len(str) {
		fmt.Fprint(s, str)
		return
	}
	pad := strings.Repeat(" ", width-len(str))
	if s.Flag('-') {
		fmt.Fprint(s, str, pad)
		return
	}
	fmt.Fprint(s, pad, str)
}

func marshalJSON[T Takum](x T) ([]byte, error) {
	e, w := wordOf(x)
	return e.toJSON(w, JSONMode), nil
}

func unmarshalJSON[T Takum](x *T, data []byte) error {
	if string(data) == "null" {
		return nil
	}
	w, err := EncodingOf[T]().fromJSON(data)
	if err != nil {
		return err
	}
	*x = fromWord[T](w)
	return nil
}
