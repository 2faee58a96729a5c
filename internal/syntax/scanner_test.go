package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/lox/internal/diag"
)

func Test_Scanner_tokenTypeSequence(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect []TokenType
	}{
		{
			name:   "blank string",
			input:  "",
			expect: []TokenType{TokenEOF},
		},
		{
			name:   "single-char punctuation",
			input:  "(){},.-+;*/",
			expect: []TokenType{TokenLeftParen, TokenRightParen, TokenLeftBrace, TokenRightBrace, TokenComma, TokenDot, TokenMinus, TokenPlus, TokenSemicolon, TokenStar, TokenSlash, TokenEOF},
		},
		{
			name:   "two-char operators use maximal munch",
			input:  "!= == <= >=",
			expect: []TokenType{TokenBangEqual, TokenEqualEqual, TokenLessEqual, TokenGreaterEqual, TokenEOF},
		},
		{
			name:   "one-char fallbacks",
			input:  "! = < >",
			expect: []TokenType{TokenBang, TokenEqual, TokenLess, TokenGreater, TokenEOF},
		},
		{
			name:   "adjacent bangs do not merge",
			input:  "!!=",
			expect: []TokenType{TokenBang, TokenBangEqual, TokenEOF},
		},
		{
			name:   "comment produces no token",
			input:  "1 // the rest is ignored != ==",
			expect: []TokenType{TokenNumber, TokenEOF},
		},
		{
			name:   "comment ends at newline",
			input:  "// ignored\n2",
			expect: []TokenType{TokenNumber, TokenEOF},
		},
		{
			name:   "whitespace produces no token",
			input:  " \r\t\n",
			expect: []TokenType{TokenEOF},
		},
		{
			name:   "keywords",
			input:  "and class else false for fun if nil or print return super this true var while",
			expect: []TokenType{TokenAnd, TokenClass, TokenElse, TokenFalse, TokenFor, TokenFun, TokenIf, TokenNil, TokenOr, TokenPrint, TokenReturn, TokenSuper, TokenThis, TokenTrue, TokenVar, TokenWhile, TokenEOF},
		},
		{
			name:   "identifier is not a keyword prefix match",
			input:  "orchid nil0",
			expect: []TokenType{TokenIdentifier, TokenIdentifier, TokenEOF},
		},
		{
			name:   "trailing dot is not part of number",
			input:  "123.",
			expect: []TokenType{TokenNumber, TokenDot, TokenEOF},
		},
		{
			name:   "unexpected character is skipped",
			input:  "1 @ 2",
			expect: []TokenType{TokenNumber, TokenNumber, TokenEOF},
		},
		{
			name:   "unterminated string yields no token",
			input:  "1 + \"never closed",
			expect: []TokenType{TokenNumber, TokenPlus, TokenEOF},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			rep := &diag.Collector{}
			tokens := NewScanner(tc.input, rep).ScanTokens()

			actual := make([]TokenType, len(tokens))
			for i := range tokens {
				actual[i] = tokens[i].Type
			}

			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_Scanner_numberLiterals(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect float64
	}{
		{"integer", "123", 123},
		{"zero", "0", 0},
		{"fractional", "45.67", 45.67},
		{"leading zero fraction", "0.5", 0.5},
		{"long", "123456789.25", 123456789.25},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			rep := &diag.Collector{}
			tokens := NewScanner(tc.input, rep).ScanTokens()

			assert.False(rep.HadError())
			if !assert.Len(tokens, 2) {
				return
			}
			assert.Equal(TokenNumber, tokens[0].Type)
			assert.Equal(tc.input, tokens[0].Lexeme)
			assert.Equal(Num, tokens[0].Literal.Type())
			assert.Equal(tc.expect, tokens[0].Literal.Float())
			assert.Equal(TokenEOF, tokens[1].Type)
		})
	}
}

func Test_Scanner_stringLiterals(t *testing.T) {
	testCases := []struct {
		name       string
		input      string
		expect     string
		expectLine int
	}{
		{"empty", `""`, "", 1},
		{"simple", `"foo"`, "foo", 1},
		{"spaces kept verbatim", `"a b  c"`, "a b  c", 1},
		{"no escape processing", `"a\nb"`, `a\nb`, 1},
		{"multiline advances line counter", "\"one\ntwo\"", "one\ntwo", 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			rep := &diag.Collector{}
			tokens := NewScanner(tc.input, rep).ScanTokens()

			assert.False(rep.HadError())
			if !assert.Len(tokens, 2) {
				return
			}
			assert.Equal(TokenString, tokens[0].Type)
			assert.Equal(Str, tokens[0].Literal.Type())
			assert.Equal(tc.expect, tokens[0].Literal.Text())
			assert.Equal(tc.expectLine, tokens[1].Line)
		})
	}
}

func Test_Scanner_lineTracking(t *testing.T) {
	assert := assert.New(t)

	rep := &diag.Collector{}
	tokens := NewScanner("1\n2\n\n3", rep).ScanTokens()

	if !assert.Len(tokens, 4) {
		return
	}
	assert.Equal(1, tokens[0].Line)
	assert.Equal(2, tokens[1].Line)
	assert.Equal(4, tokens[2].Line)
	assert.Equal(4, tokens[3].Line)
}

func Test_Scanner_reportsErrors(t *testing.T) {
	testCases := []struct {
		name       string
		input      string
		expectMsg  string
		expectLine int
	}{
		{
			name:       "unexpected character",
			input:      "@",
			expectMsg:  "Unexpected character.",
			expectLine: 1,
		},
		{
			name:       "unexpected character on later line",
			input:      "1\n2\n#",
			expectMsg:  "Unexpected character.",
			expectLine: 3,
		},
		{
			name:       "unterminated string",
			input:      "\"oops",
			expectMsg:  "Unterminated string.",
			expectLine: 1,
		},
		{
			name:       "unterminated multiline string reports final line",
			input:      "\"one\ntwo",
			expectMsg:  "Unterminated string.",
			expectLine: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			rep := &diag.Collector{}
			tokens := NewScanner(tc.input, rep).ScanTokens()

			if !assert.Len(rep.Entries, 1) {
				return
			}
			assert.Equal(tc.expectMsg, rep.Entries[0].Message)
			assert.Equal(tc.expectLine, rep.Entries[0].Line)
			assert.Equal("", rep.Entries[0].Location)

			// scanning always finishes with an EOF token
			assert.Equal(TokenEOF, tokens[len(tokens)-1].Type)
		})
	}
}

func Test_Scanner_nonASCIIDigitsAreNotNumbers(t *testing.T) {
	// digits outside '0'-'9', such as Arabic-Indic "١٢٣", are in Unicode
	// category Nd but are not part of any number literal; each one must be
	// reported and skipped, never fed to the float parser
	testCases := []struct {
		name        string
		input       string
		expect      []TokenType
		expectErrs  int
		expectLines []int
	}{
		{
			name:        "arabic-indic digits alone",
			input:       "١٢٣",
			expect:      []TokenType{TokenEOF},
			expectErrs:  3,
			expectLines: []int{1, 1, 1},
		},
		{
			name:        "devanagari digit between numbers",
			input:       "1 १ 2",
			expect:      []TokenType{TokenNumber, TokenNumber, TokenEOF},
			expectErrs:  1,
			expectLines: []int{1},
		},
		{
			name:        "non-ascii digit does not extend a number",
			input:       "12٣",
			expect:      []TokenType{TokenNumber, TokenEOF},
			expectErrs:  1,
			expectLines: []int{1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			rep := &diag.Collector{}
			tokens := NewScanner(tc.input, rep).ScanTokens()

			actual := make([]TokenType, len(tokens))
			for i := range tokens {
				actual[i] = tokens[i].Type
			}
			assert.Equal(tc.expect, actual)

			if !assert.Len(rep.Entries, tc.expectErrs) {
				return
			}
			for i := range rep.Entries {
				assert.Equal("Unexpected character.", rep.Entries[i].Message)
				assert.Equal(tc.expectLines[i], rep.Entries[i].Line)
			}
		})
	}
}

func Test_Scanner_eofToken(t *testing.T) {
	assert := assert.New(t)

	rep := &diag.Collector{}
	tokens := NewScanner("1 + 2\n", rep).ScanTokens()

	eof := tokens[len(tokens)-1]
	assert.Equal(TokenEOF, eof.Type)
	assert.Equal("", eof.Lexeme)
	assert.True(eof.Literal.IsNil())
	assert.Equal(2, eof.Line)

	// exactly one EOF token
	for i := 0; i < len(tokens)-1; i++ {
		assert.NotEqual(TokenEOF, tokens[i].Type)
	}
}
