package parser

import (
	"fmt"
	"math"
	"strconv"
)

type ValueType uint

const (
	ValueNilType ValueType = iota
	ValueBoolType
	ValueFloatType
	ValueStringType
)

func (t ValueType) String() string {
	switch t {
	case ValueNilType:
		return "null"
	case ValueBoolType:
		return "boolean"
	case ValueFloatType:
		return "number"
	case ValueStringType:
		return "string"
	}
	return fmt.Sprintf("ValueType(%d)", uint(t))
}

// Value is a Ghost runtime value: ValueNil, ValueBool, ValueFloat or ValueString.
type Value interface {
	Type() ValueType
}

type (
	ValueNil    struct{}
	ValueBool   bool
	ValueFloat  float64
	ValueString string
)

var NilValue = ValueNil{}

// Type implements Value.
func (v ValueNil) Type() ValueType {
	return ValueNilType
}

// Type implements Value.
func (v ValueBool) Type() ValueType {
	return ValueBoolType
}

// Type implements Value.
func (v ValueFloat) Type() ValueType {
	return ValueFloatType
}

// Type implements Value.
func (v ValueString) Type() ValueType {
	return ValueStringType
}

// String implements fmt.Stringer.
func (v ValueNil) String() string {
	return "null"
}

// String implements fmt.Stringer.
func (v ValueBool) String() string {
	return strconv.FormatBool(bool(v))
}

// String renders the shortest decimal form that reads back to the same number.
// Integral values have no fractional part, and there is never an exponent.
func (v ValueFloat) String() string {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return "NAN"
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// String implements fmt.Stringer.
func (v ValueString) String() string {
	return string(v)
}

var (
	_ fmt.Stringer = ValueNil{}
	_ fmt.Stringer = ValueBool(false)
	_ fmt.Stringer = ValueFloat(0)
	_ fmt.Stringer = ValueString("")
)

var (
	_ Value = ValueNil{}
	_ Value = ValueBool(false)
	_ Value = ValueFloat(0)
	_ Value = ValueString("")
)
