package syntax

import "fmt"

// file errors.go contains the error types produced while parsing and
// evaluating source text.

// SyntaxError is returned when source text violates the expression grammar.
// It carries the position of the token the parse failed at so that callers
// can report it; the parse that produced it returned no tree.
type SyntaxError struct {
	// token the parse stopped on, 1-indexed line.
	line     int
	location string
	message  string
}

// Error returns the message of the syntax error along with the line it
// occured on.
func (se *SyntaxError) Error() string {
	if se.line == 0 {
		return fmt.Sprintf("syntax error: %s", se.message)
	}

	return fmt.Sprintf("syntax error: around line %d: %s", se.line, se.message)
}

// Line returns the 1-indexed line the error occured on, or 0 if no line is
// set.
func (se *SyntaxError) Line() int {
	return se.line
}

// Location returns the diagnostic location of the error, such as
// " at ')'", or " at end" for errors at the end of the input.
func (se *SyntaxError) Location() string {
	return se.location
}

// Message returns the bare diagnostic message, without position info.
func (se *SyntaxError) Message() string {
	return se.message
}

func syntaxErrorFromToken(msg string, tok Token) *SyntaxError {
	var loc string
	if tok.Type == TokenEOF {
		loc = " at end"
	} else {
		loc = fmt.Sprintf(" at '%s'", tok.Lexeme)
	}

	return &SyntaxError{
		message:  msg,
		location: loc,
		line:     tok.Line,
	}
}

// RuntimeError is returned when evaluation of a well-formed expression fails,
// such as applying a numeric operator to a non-number. It carries the
// operator token whose position should be reported. It represents the end of
// evaluation for the expression that produced it; there is no recovery
// state.
type RuntimeError struct {
	// Token is the token evaluation failed at.
	Token Token

	message string
}

// Error returns the message of the runtime error along with the line it
// occured on.
func (re *RuntimeError) Error() string {
	return fmt.Sprintf("runtime error: line %d: %s", re.Token.Line, re.message)
}

// Line returns the 1-indexed line of the token evaluation failed at.
func (re *RuntimeError) Line() int {
	return re.Token.Line
}

// Message returns the bare diagnostic message, without position info.
func (re *RuntimeError) Message() string {
	return re.message
}

func runtimeErrorFromToken(msg string, tok Token) *RuntimeError {
	return &RuntimeError{
		Token:   tok,
		message: msg,
	}
}
