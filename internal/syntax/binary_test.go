package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/lox/internal/diag"
)

func Test_Value_binaryRoundTrip(t *testing.T) {
	testCases := []struct {
		name  string
		input Value
	}{
		{"nil", NilValue},
		{"bool", BoolOf(true)},
		{"number", NumberOf(45.67)},
		{"text", StringOf("a string\nwith a newline")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			data, err := tc.input.MarshalBinary()
			if !assert.NoError(err) {
				return
			}

			var actual Value
			if !assert.NoError(actual.UnmarshalBinary(data)) {
				return
			}

			assert.True(tc.input.Equal(actual), "expected %v but got %v", tc.input, actual)
		})
	}
}

func Test_Token_binaryRoundTrip(t *testing.T) {
	assert := assert.New(t)

	tok := Token{
		Type:    TokenNumber,
		Lexeme:  "45.67",
		Literal: NumberOf(45.67),
		Line:    3,
	}

	data, err := tok.MarshalBinary()
	if !assert.NoError(err) {
		return
	}

	var actual Token
	if !assert.NoError(actual.UnmarshalBinary(data)) {
		return
	}

	assert.True(tok.Equal(actual), "expected %v but got %v", tok, actual)
}

func Test_Expr_binaryRoundTrip(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"literal", "123"},
		{"nil literal", "nil"},
		{"grouping", "(1)"},
		{"unary", "-1"},
		{"binary", "1 + 2"},
		{"full tree", `-123 * (45.67 + 1) == "x" + "y"`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			rep := &diag.Collector{}
			expr, err := parseSource(t, tc.input, rep)
			if !assert.NoError(err) {
				return
			}

			data, err := MarshalExpr(expr)
			if !assert.NoError(err) {
				return
			}

			actual, n, err := UnmarshalExpr(data)
			if !assert.NoError(err) {
				return
			}
			assert.Equal(len(data), n, "decode must consume the whole encoding")

			assert.True(expr.Equal(actual), "expected %s but got %s", expr, actual)
		})
	}
}

func Test_UnmarshalExpr_badData(t *testing.T) {
	assert := assert.New(t)

	// unknown node tag
	data := encBinaryInt(712)
	_, _, err := UnmarshalExpr(data)
	assert.Error(err)

	// truncated node payload
	expr := &LiteralExpr{Value: NumberOf(1)}
	good, err := MarshalExpr(expr)
	if !assert.NoError(err) {
		return
	}
	_, _, err = UnmarshalExpr(good[:len(good)-4])
	assert.Error(err)

	// empty input
	_, _, err = UnmarshalExpr(nil)
	assert.Error(err)
}
