// Package syntax implements the lox expression pipeline: scanning source
// text into a token stream, parsing the stream into an expression tree, and
// evaluating the tree into a runtime Value.
//
// The three stages are strictly layered. A Scanner never fails outright; it
// reports malformed lexemes to a diag.Reporter and keeps going. A Parser
// either produces a whole tree or reports and returns a *SyntaxError with no
// tree at all. Evaluate walks a tree with no external state and returns a
// Value or a *RuntimeError naming the token it failed at. None of the stages
// perform any I/O of their own.
package syntax
