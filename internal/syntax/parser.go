package syntax

import "github.com/dekarrin/lox/internal/diag"

// Parser consumes a token stream by recursive descent with one token of
// lookahead and produces a single expression tree. Grammar, lowest to
// highest binding:
//
//	expression -> equality
//	equality   -> comparison ( ( "!=" | "==" ) comparison )*
//	comparison -> term ( ( ">" | ">=" | "<" | "<=" ) term )*
//	term       -> factor ( ( "-" | "+" ) factor )*
//	factor     -> unary ( ( "/" | "*" ) unary )*
//	unary      -> ( "!" | "-" ) unary | primary
//	primary    -> NUMBER | STRING | "true" | "false" | "nil"
//	            | "(" expression ")"
//
// The zero value is not valid; create one with NewParser. A Parser is good
// for a single parse over a single stream.
type Parser struct {
	tokens  []Token
	current int

	rep diag.Reporter
}

// NewParser creates a Parser over the given token stream that reports parse
// errors to rep. The stream must end with an EOF token, as all streams
// produced by a Scanner do.
func NewParser(tokens []Token, rep diag.Reporter) *Parser {
	return &Parser{
		tokens: tokens,
		rep:    rep,
	}
}

// Parse parses one expression from the stream. On a grammar violation the
// error is reported, the remainder of the malformed input is discarded up to
// the next statement boundary, and a nil tree is returned along with the
// *SyntaxError; no partial tree is ever produced.
func (p *Parser) Parse() (Expr, error) {
	expr, err := p.expression()
	if err != nil {
		p.synchronize()
		return nil, err
	}

	return expr, nil
}

func (p *Parser) expression() (Expr, error) {
	return p.equality()
}

func (p *Parser) equality() (Expr, error) {
	return p.binary((*Parser).comparison, TokenBangEqual, TokenEqualEqual)
}

func (p *Parser) comparison() (Expr, error) {
	return p.binary((*Parser).term, TokenGreater, TokenGreaterEqual, TokenLess, TokenLessEqual)
}

func (p *Parser) term() (Expr, error) {
	return p.binary((*Parser).factor, TokenMinus, TokenPlus)
}

func (p *Parser) factor() (Expr, error) {
	return p.binary((*Parser).unary, TokenSlash, TokenStar)
}

// binary parses a left-associative binary rule: one operand at the
// next-higher precedence, then folds while the lookahead is one of the
// rule's operators. Folding instead of recursing on the left keeps the
// grammar free of left recursion while still producing left-leaning trees.
func (p *Parser) binary(operand func(*Parser) (Expr, error), operators ...TokenType) (Expr, error) {
	expr, err := operand(p)
	if err != nil {
		return nil, err
	}

	for p.match(operators...) {
		op := p.previous()
		right, err := operand(p)
		if err != nil {
			return nil, err
		}

		expr = &BinaryExpr{
			Left:     expr,
			Operator: op,
			Right:    right,
		}
	}

	return expr, nil
}

func (p *Parser) unary() (Expr, error) {
	if p.match(TokenBang, TokenMinus) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}

		return &UnaryExpr{
			Operator: op,
			Right:    right,
		}, nil
	}

	return p.primary()
}

func (p *Parser) primary() (Expr, error) {
	switch {
	case p.match(TokenFalse):
		return &LiteralExpr{Value: BoolOf(false)}, nil
	case p.match(TokenTrue):
		return &LiteralExpr{Value: BoolOf(true)}, nil
	case p.match(TokenNil):
		return &LiteralExpr{Value: NilValue}, nil
	case p.match(TokenNumber, TokenString):
		return &LiteralExpr{Value: p.previous().Literal}, nil
	case p.match(TokenLeftParen):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(TokenRightParen, "Expect ')' after expression."); err != nil {
			return nil, err
		}

		return &GroupingExpr{Expression: expr}, nil
	default:
		return nil, p.errorAt(p.peek(), "Expect expression.")
	}
}

// consume advances past the current token if it is of the wanted type, and
// otherwise reports and returns a parse error with the given message.
func (p *Parser) consume(tokType TokenType, message string) (Token, error) {
	if p.check(tokType) {
		return p.advance(), nil
	}

	return Token{}, p.errorAt(p.peek(), message)
}

// errorAt reports a parse error at the given token and returns it as a
// *SyntaxError.
func (p *Parser) errorAt(tok Token, message string) error {
	se := syntaxErrorFromToken(message, tok)
	p.rep.Report(se.Line(), se.Location(), se.Message())
	return se
}

// synchronize skips tokens until a likely statement boundary: just past a
// semicolon, or just before a keyword that begins a declaration or
// statement. Only single expressions are parsed here, so its practical
// effect is to discard the remainder of a malformed line, but it keeps the
// parser ready for statement grammars.
func (p *Parser) synchronize() {
	if p.atEnd() {
		return
	}
	p.advance()

	for !p.atEnd() {
		if p.previous().Type == TokenSemicolon {
			return
		}

		switch p.peek().Type {
		case TokenClass, TokenFun, TokenVar, TokenFor, TokenIf, TokenWhile, TokenPrint, TokenReturn:
			return
		}

		p.advance()
	}
}

// match advances past the current token if it is any of the given types.
func (p *Parser) match(types ...TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}

	return false
}

func (p *Parser) check(tokType TokenType) bool {
	return p.peek().Type == tokType
}

// advance consumes the current token. At end of stream it stays parked on
// the EOF token, which is why streams must carry one.
func (p *Parser) advance() Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) atEnd() bool {
	return p.peek().Type == TokenEOF
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}
