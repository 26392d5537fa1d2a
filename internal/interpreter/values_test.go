package interpreter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTruthy(t *testing.T) {
	assert.False(t, isTruthy(nil))
	assert.False(t, isTruthy(NilValue))
	assert.False(t, isTruthy(ValueBool(false)))
	assert.True(t, isTruthy(ValueBool(true)))
	assert.True(t, isTruthy(ValueFloat(0)))
	assert.True(t, isTruthy(ValueFloat(math.NaN())))
	assert.True(t, isTruthy(ValueString("")))
}

func TestIsEqual(t *testing.T) {
	testcases := []struct {
		name        string
		left, right Value
		expected    bool
	}{
		{"null null", NilValue, NilValue, true},
		{"null false", NilValue, ValueBool(false), false},
		{"zero null", ValueFloat(0), NilValue, false},
		{"empty string null", ValueString(""), NilValue, false},
		{"bools", ValueBool(false), ValueBool(false), true},
		{"true non-empty string", ValueBool(true), ValueString("true"), true},
		{"true word", ValueBool(true), ValueString("abc"), true},
		{"false zero string", ValueBool(false), ValueString("0"), true},
		{"false empty string", ValueBool(false), ValueString(""), true},
		{"true one", ValueBool(true), ValueFloat(1), true},
		{"false zero", ValueBool(false), ValueFloat(0), true},
		{"true zero", ValueBool(true), ValueFloat(0), false},
		{"false nan", ValueBool(false), ValueFloat(math.NaN()), false},
		{"numbers", ValueFloat(2.5), ValueFloat(2.5), true},
		{"numbers differ", ValueFloat(2.5), ValueFloat(2), false},
		{"strings", ValueString("a"), ValueString("a"), true},
		{"number numeric string", ValueFloat(10), ValueString("1e1"), true},
		{"numeric string number", ValueString("-.5"), ValueFloat(-0.5), true},
		{"number word", ValueFloat(0), ValueString("abc"), false},
		{"number empty", ValueFloat(0), ValueString(""), false},
		{"number inf word", ValueFloat(math.Inf(1)), ValueString("Inf"), false},
		{"number inf printed", ValueFloat(math.Inf(1)), ValueString("INF"), true},
		{"numeric strings by value", ValueString("1"), ValueString("1.0"), true},
		{"numeric strings exponent", ValueString("1e3"), ValueString("1000"), true},
		{"numeric strings differ", ValueString("1e3"), ValueString("100"), false},
		{"numeric and word strings", ValueString("1"), ValueString("one"), false},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, isEqual(tc.left, tc.right))
			assert.Equal(t, tc.expected, isEqual(tc.right, tc.left), "equality must be symmetric")
		})
	}
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "null", stringify(nil))
	assert.Equal(t, "null", stringify(NilValue))
	assert.Equal(t, "true", stringify(ValueBool(true)))
	assert.Equal(t, "42", stringify(ValueFloat(42)))
	assert.Equal(t, "3.14", stringify(ValueFloat(3.14)))
	assert.Equal(t, "INF", stringify(ValueFloat(math.Inf(1))))
	assert.Equal(t, "text", stringify(ValueString("text")))
}
