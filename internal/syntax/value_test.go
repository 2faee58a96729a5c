package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Value_String(t *testing.T) {
	testCases := []struct {
		name   string
		input  Value
		expect string
	}{
		{"nil", NilValue, "nil"},
		{"true", BoolOf(true), "true"},
		{"false", BoolOf(false), "false"},
		{"text is verbatim", StringOf("foo bar"), "foo bar"},
		{"empty text", StringOf(""), ""},
		{"integral number has no trailing .0", NumberOf(123), "123"},
		{"negative integral number", NumberOf(-5), "-5"},
		{"zero", NumberOf(0), "0"},
		{"fractional number", NumberOf(45.67), "45.67"},
		{"small fraction", NumberOf(0.5), "0.5"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			assert.Equal(tc.expect, tc.input.String())
		})
	}
}

func Test_Value_Truthy(t *testing.T) {
	testCases := []struct {
		name   string
		input  Value
		expect bool
	}{
		{"nil is falsy", NilValue, false},
		{"false is falsy", BoolOf(false), false},
		{"true is truthy", BoolOf(true), true},
		{"zero is truthy", NumberOf(0), true},
		{"number is truthy", NumberOf(12), true},
		{"empty text is truthy", StringOf(""), true},
		{"text is truthy", StringOf("x"), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			assert.Equal(tc.expect, tc.input.Truthy())
		})
	}
}

func Test_Value_Equal(t *testing.T) {
	testCases := []struct {
		name   string
		left   Value
		right  Value
		expect bool
	}{
		{"nil equals nil", NilValue, NilValue, true},
		{"nil unequal to false", NilValue, BoolOf(false), false},
		{"nil unequal to zero", NilValue, NumberOf(0), false},
		{"numbers compare by value", NumberOf(1), NumberOf(1), true},
		{"different numbers", NumberOf(1), NumberOf(2), false},
		{"no coercion across types", NumberOf(1), StringOf("1"), false},
		{"bools compare by value", BoolOf(true), BoolOf(true), true},
		{"different bools", BoolOf(true), BoolOf(false), false},
		{"text compares by value", StringOf("a"), StringOf("a"), true},
		{"different text", StringOf("a"), StringOf("b"), false},
		{"bool not coerced to number", BoolOf(true), NumberOf(1), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			assert.Equal(tc.expect, tc.left.Equal(tc.right))

			// equality is symmetric
			assert.Equal(tc.expect, tc.right.Equal(tc.left))
		})
	}
}

func Test_Value_zeroValueIsNil(t *testing.T) {
	assert := assert.New(t)

	var v Value
	assert.Equal(Nil, v.Type())
	assert.True(v.IsNil())
	assert.True(v.Equal(NilValue))
}

func Test_Value_Equal_nonValue(t *testing.T) {
	assert := assert.New(t)

	assert.False(NumberOf(1).Equal(1))
	assert.False(NumberOf(1).Equal(1.0))
	assert.False(StringOf("a").Equal("a"))
	assert.False(NilValue.Equal(nil))

	v := NumberOf(2)
	assert.True(NumberOf(2).Equal(&v))
}
