// Copyright 2020 Aleksandr Demakin. All rights reserved.

package takum

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s string
		x Linear16
	}{
		{"0", 0},
		{"1", 0x4000},
		{"-1", -0x4000},
		{"1.5", 0x4400},
		{"-2", -0x4800},
		{"3.5", FromFloat64[Linear16](3.5)},
		{"0.125", FromFloat64[Linear16](0.125)},
		{"NaR", NaR[Linear16]()},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.s, test.x.String())
			a.Equal(test.s, String(test.x))
		})
	}
	a.Equal("1", One[Log64]().String())
	a.Equal("NaR", NaR[Log8]().String())
}

func TestTextRoundTrip(t *testing.T) {
	a := assert.New(t)
	for _, e := range []Encoding{EncodingOf[Log16](), EncodingOf[Linear16]()} {
		for i := int64(0); i < 1<<16; i += 7 {
			w := uint64(i)
			parsed, err := e.Parse(e.Text(w))
			if !a.NoError(err) || !a.Equal(w, parsed, "%s %#x %s", e, w, e.Text(w)) {
				return
			}
		}
	}
	rnd := rand.New(rand.NewSource(1))
	for _, e := range []Encoding{EncodingOf[Log32](), EncodingOf[Linear32](), EncodingOf[Log64](), EncodingOf[Linear64]()} {
		for i := 0; i < 2000; i++ {
			w := e.Word(int64(rnd.Uint64()))
			parsed, err := e.Parse(e.Text(w))
			if !a.NoError(err) || !a.Equal(w, parsed, "%s %#x %s", e, w, e.Text(w)) {
				return
			}
		}
	}
}

func TestTextFullPrecision(t *testing.T) {
	a := assert.New(t)
	x := Linear64(0x4000000000000001)
	a.Equal("1.000000000000000002", x.String())
	a.Equal(x, MustParse[Linear64](x.String()))

	y := Log64(0x4000000000000001)
	a.NotEqual("1", y.String())
	a.Equal(y, MustParse[Log64](y.String()))
	a.Equal(-y, MustParse[Log64]((-y).String()))

	for _, mode := range []int{JSONModeString, JSONModeFloat} {
		func() {
			defer func(m int) { JSONMode = m }(JSONMode)
			JSONMode = mode
			data, err := json.Marshal([]Linear64{x, -x})
			a.NoError(err)
			var back []Linear64
			a.NoError(json.Unmarshal(data, &back))
			a.Equal([]Linear64{x, -x}, back, "%s", data)

			data, err = json.Marshal(y)
			a.NoError(err)
			var logBack Log64
			a.NoError(json.Unmarshal(data, &logBack))
			a.Equal(y, logBack, "%s", data)
		}()
	}
}

func TestParse(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s   string
		x   Linear16
		err string
	}{
		{"1.5", 0x4400, ""},
		{"+1.5", 0x4400, ""},
		{"-2", -0x4800, ""},
		{`"-2"`, -0x4800, ""},
		{"  3.5 ", FromFloat64[Linear16](3.5), ""},
		{"1e0", 0x4000, ""},
		{"0x1p-3", FromFloat64[Linear16](0.125), ""},
		{"0", 0, ""},
		{"-0", 0, ""},
		{"NaR", NaR[Linear16](), ""},
		{"nan", NaR[Linear16](), ""},
		{"-Inf", NaR[Linear16](), ""},
		{"1e1000", MaxValue[Linear16](), ""},
		{"-1e-1000", -SmallestPositive[Linear16](), ""},

		{"", 0, "empty input"},
		{`""`, 0, "empty input"},
		{"12,5", 0, "parsing failed: unexpected symbol ',' at pos 3"},
		{`" 12,5"`, 0, "parsing failed: unexpected symbol ',' at pos 5"},
		{"1..5", 0, "parsing failed"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			x, err := Parse[Linear16](test.s)
			if test.err == "" {
				if a.NoError(err) {
					a.Equal(test.x, x)
				}
				return
			}
			if a.Error(err) {
				a.Contains(err.Error(), test.err)
			}
		})
	}
	a.Panics(func() { MustParse[Log32]("pi") })
	a.Equal(One[Log32](), MustParse[Log32]("1"))
}

func TestFormat(t *testing.T) {
	a := assert.New(t)
	x := Linear16(0x4400)
	tests := []struct {
		format string
		res    string
	}{
		{"%v", "1.5"},
		{"%s", "1.5"},
		{"%6v", "   1.5"},
		{"%-6v|", "1.5   |"},
		{"%.2f", "1.50"},
		{"%g", "1.5"},
		{"%e", "1.500000e+00"},
		{"%x", "4400"},
		{"%#x", "0x4400"},
		{"%d", "17408"},
		{"%b", "100010000000000"},
		{"%q", "%!q(linear16=1.5)"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, fmt.Sprintf(test.format, x))
		})
	}
	a.Equal("bc00", fmt.Sprintf("%x", -x))
	a.Equal("-17408", fmt.Sprintf("%d", -x))
	a.Equal("-1", fmt.Sprintf("%d", Log16(-1)))
	a.Equal("ffff", fmt.Sprintf("%x", Log16(-1)))
	a.Equal("NaR", fmt.Sprintf("%.3f", NaR[Log32]()))
	a.Equal("  NaR", fmt.Sprintf("%5v", NaR[Log32]()))
	a.Equal("[1 NaR]", fmt.Sprint([]Log8{One[Log8](), NaR[Log8]()}))
}

func TestJSON(t *testing.T) {
	a := assert.New(t)
	defer func(mode int) { JSONMode = mode }(JSONMode)

	type doc struct {
		A Linear16
		B Log32
		C *Log8 `json:",omitempty"`
	}
	d := doc{A: 0x4400, B: NaR[Log32]()}
	tests := []struct {
		mode int
		json string
	}{
		{JSONModeString, `{"A":"1.5","B":"NaR"}`},
		{JSONModeFloat, `{"A":1.5,"B":"NaR"}`},
		{JSONModeBits, `{"A":{"bits":17408},"B":{"bits":-2147483648}}`},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			JSONMode = test.mode
			data, err := json.Marshal(d)
			if a.NoError(err) {
				a.Equal(test.json, string(data))
			}
			var back doc
			if a.NoError(json.Unmarshal(data, &back)) {
				a.Equal(d, back)
			}
		})
	}

	JSONMode = JSONModeString
	var buf bytes.Buffer
	a.NoError(json.NewEncoder(&buf).Encode([]Log16{One[Log16](), -One[Log16]()}))
	a.Equal("[\"1\",\"-1\"]\n", buf.String())
}

func TestUnmarshalJSON(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		json string
		x    Log16
		err  string
	}{
		{`"1"`, 0x4000, ""},
		{`1`, 0x4000, ""},
		{`-1`, -0x4000, ""},
		{`"NaR"`, NaR[Log16](), ""},
		{`{"bits":16384}`, 0x4000, ""},
		{`{"bits":-1}`, -1, ""},
		{`null`, 0x1234, ""},

		{`{"bits":70000}`, 0, "value out of range"},
		{`{}`, 0, "no bits"},
		{`{"bits":"x"}`, 0, "cannot unmarshal"},
		{`"1,5"`, 0, "unexpected symbol"},
		{`true`, 0, "parsing failed"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			x := Log16(0x1234)
			err := json.Unmarshal([]byte(test.json), &x)
			if test.err == "" {
				if a.NoError(err) {
					a.Equal(test.x, x)
				}
				return
			}
			if a.Error(err) {
				a.Contains(err.Error(), test.err)
			}
		})
	}
}
