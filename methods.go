package takum

import "fmt"

var (
	_ fmt.Formatter = Log8(0)
	_ fmt.Formatter = Log16(0)
	_ fmt.Formatter = Log32(0)
	_ fmt.Formatter = Log64(0)
	_ fmt.Formatter = Linear8(0)
	_ fmt.Formatter = Linear16(0)
	_ fmt.Formatter = Linear32(0)
	_ fmt.Formatter = Linear64(0)
)

// Variant returns Logarithmic.
func (Log8) Variant() Variant { return Logarithmic }

// Float64 returns the value of x. NaR is NaN.
func (x Log8) Float64() float64 { return Float64(x) }

func (x Log8) String() string { return String(x) }

// Format implements fmt.Formatter.
func (x Log8) Format(s fmt.State, verb rune) { format(x, s, verb) }

// MarshalJSON marshals x according to current JSONMode.
func (x Log8) MarshalJSON() ([]byte, error) { return marshalJSON(x) }

// UnmarshalJSON unmarshals a string, a number, or an object with bits into x.
func (x *Log8) UnmarshalJSON(data []byte) error { return unmarshalJSON(x, data) }

// Variant returns Logarithmic.
func (Log16) Variant() Variant { return Logarithmic }

// Float64 returns the value of x. NaR is NaN.
func (x Log16) Float64() float64 { return Float64(x) }

func (x Log16) String() string { return String(x) }

// Format implements fmt.Formatter.
func (x Log16) Format(s fmt.State, verb rune) { format(x, s, verb) }

// MarshalJSON marshals x according to current JSONMode.
func (x Log16) MarshalJSON() ([]byte, error) { return marshalJSON(x) }

// UnmarshalJSON unmarshals a string, a number, or an object with bits into x.
func (x *Log16) UnmarshalJSON(data []byte) error { return unmarshalJSON(x, data) }

// Variant returns Logarithmic.
func (Log32) Variant() Variant { return Logarithmic }

// Float64 returns the value of x. NaR is NaN.
func (x Log32) Float64() float64 { return Float64(x) }

func (x Log32) String() string { return String(x) }

// Format implements fmt.Formatter.
func (x Log32) Format(s fmt.State, verb rune) { format(x, s, verb) }

// MarshalJSON marshals x according to current JSONMode.
func (x Log32) MarshalJSON() ([]byte, error) { return marshalJSON(x) }

// UnmarshalJSON unmarshals a string, a number, or an object with bits into x.
func (x *Log32) UnmarshalJSON(data []byte) error { return unmarshalJSON(x, data) }

// Variant returns Logarithmic.
func (Log64) Variant() Variant { return Logarithmic }

// Float64 returns the value of x. NaR is NaN.
func (x Log64) Float64() float64 { return Float64(x) }

func (x Log64) String() string { return String(x) }

// Format implements fmt.Formatter.
func (x Log64) Format(s fmt.State, verb rune) { format(x, s, verb) }

// MarshalJSON marshals x according to current JSONMode.
func (x Log64) MarshalJSON() ([]byte, error) { return marshalJSON(x) }

// UnmarshalJSON unmarshals a string, a number, or an object with bits into x.
func (x *Log64) UnmarshalJSON(data []byte) error { return unmarshalJSON(x, data) }

// Variant returns Linear.
func (Linear8) Variant() Variant { return Linear }

// Float64 returns the value of x. NaR is NaN.
func (x Linear8) Float64() float64 { return Float64(x) }

func (x Linear8) String() string { return String(x) }

// Format implements fmt.Formatter.
func (x Linear8) Format(s fmt.State, verb rune) { format(x, s, verb) }

// MarshalJSON marshals x according to current JSONMode.
func (x Linear8) MarshalJSON() ([]byte, error) { return marshalJSON(x) }

// UnmarshalJSON unmarshals a string, a number, or an object with bits into x.
func (x *Linear8) UnmarshalJSON(data []byte) error { return unmarshalJSON(x, data) }

// Variant returns Linear.
func (Linear16) Variant() Variant { return Linear }

// Float64 returns the value of x. NaR is NaN.
func (x Linear16) Float64() float64 { return Float64(x) }

func (x Linear16) String() string { return String(x) }

// Format implements fmt.Formatter.
func (x Linear16) Format(s fmt.State, verb rune) { format(x, s, verb) }

// MarshalJSON marshals x according to current JSONMode.
func (x Linear16) MarshalJSON() ([]byte, error) { return marshalJSON(x) }

// UnmarshalJSON unmarshals a string, a number, or an object with bits into x.
func (x *Linear16) UnmarshalJSON(data []byte) error { return unmarshalJSON(x, data) }

// Variant returns Linear.
func (Linear32) Variant() Variant { return Linear }

// Float64 returns the value of x. NaR is NaN.
func (x Linear32) Float64() float64 { return Float64(x) }

func (x Linear32) String() string { return String(x) }

// Format implements fmt.Formatter.
func (x Linear32) Format(s fmt.State, verb rune) { format(x, s, verb) }

// MarshalJSON marshals x according to current JSONMode.
func (x Linear32) MarshalJSON() ([]byte, error) { return marshalJSON(x) }

// UnmarshalJSON unmarshals a string, a number, or an object with bits into x.
func (x *Linear32) UnmarshalJSON(data []byte) error { return unmarshalJSON(x, data) }

// Variant returns Linear.
func (Linear64) Variant() Variant { return Linear }

// Float64 returns the value of x. NaR is NaN.
func (x Linear64) Float64() float64 { return Float64(x) }

func (x Linear64) String() string { return String(x) }

// Format implements fmt.Formatter.
func (x Linear64) Format(s fmt.State, verb rune) { format(x, s, verb) }

// MarshalJSON marshals x according to current JSONMode.
func (x Linear64) MarshalJSON() ([]byte, error) { return marshalJSON(x) }

// UnmarshalJSON unmarshals a string, a number, or an object with bits into x.
func (x *Linear64) UnmarshalJSON(data []byte) error { return unmarshalJSON(x, data) }
