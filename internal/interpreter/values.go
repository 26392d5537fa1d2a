package interpreter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/leonardinius/goghost/internal/ghosterrors"
	"github.com/leonardinius/goghost/internal/parser"
	"github.com/leonardinius/goghost/internal/token"
)

// Value alias, not type redefinition.
type Value = parser.Value

type (
	ValueNil    = parser.ValueNil
	ValueBool   = parser.ValueBool
	ValueFloat  = parser.ValueFloat
	ValueString = parser.ValueString
)

var NilValue = parser.NilValue

// numericString matches strings that compare equal to numbers: optional sign,
// decimal digits with an optional fraction and exponent, surrounding blanks allowed.
var numericString = regexp.MustCompile(`^[ \t\r\n]*[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][+-]?[0-9]+)?[ \t\r\n]*$`)

// isTruthy: null is false, booleans are themselves, everything else is true.
func isTruthy(value Value) bool {
	switch v := value.(type) {
	case nil, ValueNil:
		return false
	case ValueBool:
		return bool(v)
	}

	return true
}

// isEqual is loose equality. Null only equals null; a boolean on either side
// compares against the other side converted to a boolean; numbers and numeric
// strings compare by numeric value; any other string pair compares by bytes.
func isEqual(left, right Value) bool {
	_, lnil := left.(ValueNil)
	_, rnil := right.(ValueNil)
	if lnil || rnil {
		return lnil && rnil
	}

	if l, ok := left.(ValueBool); ok {
		return bool(l) == looseBool(right)
	}
	if r, ok := right.(ValueBool); ok {
		return looseBool(left) == bool(r)
	}

	switch l := left.(type) {
	case ValueFloat:
		switch r := right.(type) {
		case ValueFloat:
			return l == r
		case ValueString:
			return numberEqualsString(l, r)
		}
	case ValueString:
		switch r := right.(type) {
		case ValueString:
			ln, lok := asNumber(l)
			rn, rok := asNumber(r)
			if lok && rok {
				return ln == rn
			}
			return l == r
		case ValueFloat:
			return numberEqualsString(r, l)
		}
	}

	return false
}

// looseBool converts a value for comparison against a boolean. Unlike
// isTruthy, zero, the empty string and "0" convert to false.
func looseBool(value Value) bool {
	switch v := value.(type) {
	case nil, ValueNil:
		return false
	case ValueBool:
		return bool(v)
	case ValueFloat:
		return v != 0
	case ValueString:
		return v != "" && v != "0"
	}

	return true
}

// numberEqualsString compares numerically when s is numeric, otherwise
// against the number's printed form.
func numberEqualsString(n ValueFloat, s ValueString) bool {
	if f, ok := asNumber(s); ok {
		return float64(n) == f
	}
	return n.String() == string(s)
}

func asNumber(s ValueString) (float64, bool) {
	if !numericString.MatchString(string(s)) {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(string(s)), 64)
	return n, err == nil
}

func add(operator *token.Token, left, right Value) (Value, error) {
	switch l := left.(type) {
	case ValueFloat:
		if r, ok := right.(ValueFloat); ok {
			return l + r, nil
		}
	case ValueString:
		if r, ok := right.(ValueString); ok {
			return l + r, nil
		}
	}

	return nil, ghosterrors.NewRuntimeError(operator, ghosterrors.ErrRuntimeOperandsMustNumbersOrStrings)
}

func checkNumberOperand(operator *token.Token, operand Value) (ValueFloat, error) {
	if v, ok := operand.(ValueFloat); ok {
		return v, nil
	}

	return 0, ghosterrors.NewRuntimeError(operator, ghosterrors.ErrRuntimeOperandMustBeNumber)
}

func checkNumberOperands(operator *token.Token, left, right Value) (ValueFloat, ValueFloat, error) {
	l, lok := left.(ValueFloat)
	r, rok := right.(ValueFloat)
	if lok && rok {
		return l, r, nil
	}

	return 0, 0, ghosterrors.NewRuntimeError(operator, ghosterrors.ErrRuntimeOperandsMustBeNumbers)
}

func stringify(v Value) string {
	if v == nil {
		return NilValue.String()
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", v)
}
