package syntax

import "fmt"

// TokenType identifies the lexical category of a scanned token.
type TokenType int

const (
	// single-character tokens
	TokenLeftParen TokenType = iota
	TokenRightParen
	TokenLeftBrace
	TokenRightBrace
	TokenComma
	TokenDot
	TokenMinus
	TokenPlus
	TokenSemicolon
	TokenSlash
	TokenStar

	// one or two character tokens
	TokenBang
	TokenBangEqual
	TokenEqual
	TokenEqualEqual
	TokenGreater
	TokenGreaterEqual
	TokenLess
	TokenLessEqual

	// literals
	TokenIdentifier
	TokenString
	TokenNumber

	// keywords
	TokenAnd
	TokenClass
	TokenElse
	TokenFalse
	TokenFun
	TokenFor
	TokenIf
	TokenNil
	TokenOr
	TokenPrint
	TokenReturn
	TokenSuper
	TokenThis
	TokenTrue
	TokenVar
	TokenWhile

	// end of input
	TokenEOF
)

var tokenTypeNames = map[TokenType]string{
	TokenLeftParen:    "LEFT_PAREN",
	TokenRightParen:   "RIGHT_PAREN",
	TokenLeftBrace:    "LEFT_BRACE",
	TokenRightBrace:   "RIGHT_BRACE",
	TokenComma:        "COMMA",
	TokenDot:          "DOT",
	TokenMinus:        "MINUS",
	TokenPlus:         "PLUS",
	TokenSemicolon:    "SEMICOLON",
	TokenSlash:        "SLASH",
	TokenStar:         "STAR",
	TokenBang:         "BANG",
	TokenBangEqual:    "BANG_EQUAL",
	TokenEqual:        "EQUAL",
	TokenEqualEqual:   "EQUAL_EQUAL",
	TokenGreater:      "GREATER",
	TokenGreaterEqual: "GREATER_EQUAL",
	TokenLess:         "LESS",
	TokenLessEqual:    "LESS_EQUAL",
	TokenIdentifier:   "IDENTIFIER",
	TokenString:       "STRING",
	TokenNumber:       "NUMBER",
	TokenAnd:          "AND",
	TokenClass:        "CLASS",
	TokenElse:         "ELSE",
	TokenFalse:        "FALSE",
	TokenFun:          "FUN",
	TokenFor:          "FOR",
	TokenIf:           "IF",
	TokenNil:          "NIL",
	TokenOr:           "OR",
	TokenPrint:        "PRINT",
	TokenReturn:       "RETURN",
	TokenSuper:        "SUPER",
	TokenThis:         "THIS",
	TokenTrue:         "TRUE",
	TokenVar:          "VAR",
	TokenWhile:        "WHILE",
	TokenEOF:          "EOF",
}

// String returns the canonical all-caps name of the token type.
func (tt TokenType) String() string {
	name, ok := tokenTypeNames[tt]
	if !ok {
		return fmt.Sprintf("TokenType(%d)", int(tt))
	}
	return name
}

// keywords maps reserved words to their token types. An identifier whose
// exact text appears here scans as the keyword instead.
var keywords = map[string]TokenType{
	"and":    TokenAnd,
	"class":  TokenClass,
	"else":   TokenElse,
	"false":  TokenFalse,
	"for":    TokenFor,
	"fun":    TokenFun,
	"if":     TokenIf,
	"nil":    TokenNil,
	"or":     TokenOr,
	"print":  TokenPrint,
	"return": TokenReturn,
	"super":  TokenSuper,
	"this":   TokenThis,
	"true":   TokenTrue,
	"var":    TokenVar,
	"while":  TokenWhile,
}

// Token is a single classified lexeme produced by the Scanner. Tokens are
// never modified once scanned. Literal is only meaningful for TokenNumber and
// TokenString tokens; for every other type it is the Nil value.
type Token struct {
	// Type is the lexical category of the token.
	Type TokenType

	// Lexeme is the exact source text the token was scanned from. It is
	// empty for the EOF token.
	Lexeme string

	// Literal holds the parsed payload of a number or string token.
	Literal Value

	// Line is the 1-based line of source the token started on.
	Line int
}

// String returns the token in "TYPE lexeme literal" form.
func (tok Token) String() string {
	if tok.Type == TokenNumber || tok.Type == TokenString {
		return fmt.Sprintf("%s %s %s", tok.Type, tok.Lexeme, tok.Literal)
	}
	return fmt.Sprintf("%s %s", tok.Type, tok.Lexeme)
}

// Equal returns whether the token is equal to another Token or *Token.
func (tok Token) Equal(o any) bool {
	other, ok := o.(Token)
	if !ok {
		otherPtr, ok := o.(*Token)
		if !ok {
			return false
		} else if otherPtr == nil {
			return false
		}
		other = *otherPtr
	}

	if tok.Type != other.Type {
		return false
	}
	if tok.Lexeme != other.Lexeme {
		return false
	}
	if tok.Line != other.Line {
		return false
	}

	return tok.Literal.Equal(other.Literal)
}
