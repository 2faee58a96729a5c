package syntax

import (
	"strconv"
	"unicode"

	"github.com/dekarrin/lox/internal/diag"
)

// Scanner converts source text into an ordered stream of tokens. Scanning is
// total: malformed lexemes are reported to the diagnostic reporter and
// skipped, and scanning picks back up at the next character. The produced
// stream always ends with exactly one EOF token, even for empty input.
//
// The zero value is not valid; create one with NewScanner. A Scanner is good
// for a single pass over a single source string.
type Scanner struct {
	source []rune
	tokens []Token

	start   int
	current int
	line    int

	rep diag.Reporter
}

// NewScanner creates a Scanner over the given source text that reports scan
// errors to rep.
func NewScanner(source string, rep diag.Reporter) *Scanner {
	return &Scanner{
		source: []rune(source),
		line:   1,
		rep:    rep,
	}
}

// ScanTokens scans the entire source and returns the token stream. The final
// token is always the EOF token, carrying the final line number, an empty
// lexeme, and no literal.
func (sc *Scanner) ScanTokens() []Token {
	for !sc.atEnd() {
		sc.start = sc.current
		sc.scanToken()
	}

	sc.tokens = append(sc.tokens, Token{
		Type: TokenEOF,
		Line: sc.line,
	})

	return sc.tokens
}

// scanToken consumes one lexeme starting at sc.start. It either appends a
// token, consumes trivia (whitespace or a comment), or reports a scan error
// and leaves the offending text behind.
func (sc *Scanner) scanToken() {
	ch := sc.advance()

	switch ch {
	case '(':
		sc.addToken(TokenLeftParen)
	case ')':
		sc.addToken(TokenRightParen)
	case '{':
		sc.addToken(TokenLeftBrace)
	case '}':
		sc.addToken(TokenRightBrace)
	case ',':
		sc.addToken(TokenComma)
	case '.':
		sc.addToken(TokenDot)
	case '-':
		sc.addToken(TokenMinus)
	case '+':
		sc.addToken(TokenPlus)
	case ';':
		sc.addToken(TokenSemicolon)
	case '*':
		sc.addToken(TokenStar)
	case '!':
		if sc.match('=') {
			sc.addToken(TokenBangEqual)
		} else {
			sc.addToken(TokenBang)
		}
	case '=':
		if sc.match('=') {
			sc.addToken(TokenEqualEqual)
		} else {
			sc.addToken(TokenEqual)
		}
	case '<':
		if sc.match('=') {
			sc.addToken(TokenLessEqual)
		} else {
			sc.addToken(TokenLess)
		}
	case '>':
		if sc.match('=') {
			sc.addToken(TokenGreaterEqual)
		} else {
			sc.addToken(TokenGreater)
		}
	case '/':
		if sc.match('/') {
			// comment runs to end of line; the newline itself is not
			// consumed so the line counter stays correct
			for sc.peek() != '\n' && !sc.atEnd() {
				sc.advance()
			}
		} else {
			sc.addToken(TokenSlash)
		}
	case ' ', '\r', '\t':
		// whitespace produces nothing
	case '\n':
		sc.line++
	case '"':
		sc.scanString()
	default:
		if isDigit(ch) {
			sc.scanNumber()
		} else if unicode.IsLetter(ch) {
			sc.scanIdentifier()
		} else {
			sc.rep.Report(sc.line, "", "Unexpected character.")
		}
	}
}

// scanString consumes a double-quoted string literal. The opening quote has
// already been consumed. No escape sequences are processed; the literal
// payload is the raw text between the quotes. Strings may span lines.
func (sc *Scanner) scanString() {
	for sc.peek() != '"' && !sc.atEnd() {
		if sc.peek() == '\n' {
			sc.line++
		}
		sc.advance()
	}

	if sc.atEnd() {
		sc.rep.Report(sc.line, "", "Unterminated string.")
		return
	}

	// closing quote
	sc.advance()

	value := string(sc.source[sc.start+1 : sc.current-1])
	sc.addLiteralToken(TokenString, StringOf(value))
}

// scanNumber consumes a decimal number literal. The first digit has already
// been consumed. A '.' is only part of the number if a digit follows it, so
// "123." scans as the number 123 followed by a dot token.
func (sc *Scanner) scanNumber() {
	for isDigit(sc.peek()) {
		sc.advance()
	}

	if sc.peek() == '.' && isDigit(sc.peekNext()) {
		// consume the '.'
		sc.advance()

		for isDigit(sc.peek()) {
			sc.advance()
		}
	}

	text := string(sc.source[sc.start:sc.current])
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// the scan rules only admit valid float syntax
		panic("scanned number does not parse: " + text)
	}
	sc.addLiteralToken(TokenNumber, NumberOf(f))
}

// scanIdentifier consumes an identifier or keyword. The first letter has
// already been consumed.
func (sc *Scanner) scanIdentifier() {
	for unicode.IsLetter(sc.peek()) || isDigit(sc.peek()) {
		sc.advance()
	}

	text := string(sc.source[sc.start:sc.current])
	tokType, ok := keywords[text]
	if !ok {
		tokType = TokenIdentifier
	}
	sc.addToken(tokType)
}

// isDigit reports whether ch is an ASCII decimal digit. Number literals are
// strictly decimal, so wider Unicode digit classes such as Nd must not start
// or extend one; they would not survive strconv.ParseFloat.
func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func (sc *Scanner) atEnd() bool {
	return sc.current >= len(sc.source)
}

// advance consumes and returns the current character.
func (sc *Scanner) advance() rune {
	ch := sc.source[sc.current]
	sc.current++
	return ch
}

// match consumes the current character only if it is the expected one.
func (sc *Scanner) match(expected rune) bool {
	if sc.atEnd() {
		return false
	}
	if sc.source[sc.current] != expected {
		return false
	}
	sc.current++
	return true
}

// peek returns the current character without consuming it, or NUL at end of
// input.
func (sc *Scanner) peek() rune {
	if sc.atEnd() {
		return '\x00'
	}
	return sc.source[sc.current]
}

// peekNext returns the character after the current one without consuming
// anything, or NUL if that is past the end of input.
func (sc *Scanner) peekNext() rune {
	if sc.current+1 >= len(sc.source) {
		return '\x00'
	}
	return sc.source[sc.current+1]
}

func (sc *Scanner) addToken(tokType TokenType) {
	sc.addLiteralToken(tokType, NilValue)
}

func (sc *Scanner) addLiteralToken(tokType TokenType, literal Value) {
	sc.tokens = append(sc.tokens, Token{
		Type:    tokType,
		Lexeme:  string(sc.source[sc.start:sc.current]),
		Literal: literal,
		Line:    sc.line,
	})
}
