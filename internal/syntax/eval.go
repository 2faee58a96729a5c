package syntax

import "fmt"

// file eval.go contains the tree-walking evaluator. Evaluation is a pure
// structural recursion over the expression tree: no external state is read
// or written, and the tree is not modified, so evaluating the same tree
// twice always produces an equal Value. Recursion depth tracks expression
// nesting depth; there is no explicit depth limit.

// Evaluate walks the given expression tree and produces its Value. The only
// error it returns is *RuntimeError, carrying the operator token the
// evaluation failed at.
func Evaluate(expr Expr) (Value, error) {
	switch e := expr.(type) {
	case *LiteralExpr:
		return e.Value, nil
	case *GroupingExpr:
		return Evaluate(e.Expression)
	case *UnaryExpr:
		return evalUnary(e)
	case *BinaryExpr:
		return evalBinary(e)
	default:
		// the Expr union is sealed, so this is unreachable from any tree a
		// Parser built
		return NilValue, fmt.Errorf("not an expression node: %T", expr)
	}
}

func evalUnary(e *UnaryExpr) (Value, error) {
	right, err := Evaluate(e.Right)
	if err != nil {
		return NilValue, err
	}

	switch e.Operator.Type {
	case TokenBang:
		return BoolOf(!right.Truthy()), nil
	case TokenMinus:
		if right.Type() != Num {
			return NilValue, runtimeErrorFromToken("Operand must be a number.", e.Operator)
		}
		return NumberOf(-right.Float()), nil
	default:
		// unreachable with a correct parser, but checked all the same
		return NilValue, runtimeErrorFromToken("Invalid unary operator.", e.Operator)
	}
}

func evalBinary(e *BinaryExpr) (Value, error) {
	left, err := Evaluate(e.Left)
	if err != nil {
		return NilValue, err
	}
	right, err := Evaluate(e.Right)
	if err != nil {
		return NilValue, err
	}

	switch e.Operator.Type {
	case TokenPlus:
		return evalAdd(left, right, e.Operator)
	case TokenEqualEqual:
		return BoolOf(left.Equal(right)), nil
	case TokenBangEqual:
		return BoolOf(!left.Equal(right)), nil
	case TokenMinus, TokenSlash, TokenStar, TokenGreater, TokenGreaterEqual, TokenLess, TokenLessEqual:
		if left.Type() != Num || right.Type() != Num {
			return NilValue, runtimeErrorFromToken("Operands must be numbers.", e.Operator)
		}
		return evalNumeric(left.Float(), right.Float(), e.Operator), nil
	default:
		// unreachable with a correct parser, but checked all the same
		return NilValue, runtimeErrorFromToken("Invalid binary operator.", e.Operator)
	}
}

// evalAdd applies the overloaded '+' operator: numeric addition when both
// operands are numbers, concatenation when both are strings, and an error
// for every other combination.
func evalAdd(left, right Value, op Token) (Value, error) {
	if left.Type() == Num && right.Type() == Num {
		return NumberOf(left.Float() + right.Float()), nil
	}
	if left.Type() == Str && right.Type() == Str {
		return StringOf(left.Text() + right.Text()), nil
	}

	return NilValue, runtimeErrorFromToken("Operands must be two numbers or two strings.", op)
}

// evalNumeric applies a numeric-only binary operator to two numbers. The
// arithmetic follows IEEE-754 float semantics; in particular division by
// zero produces an infinity or NaN, never an error.
func evalNumeric(left, right float64, op Token) Value {
	switch op.Type {
	case TokenMinus:
		return NumberOf(left - right)
	case TokenSlash:
		return NumberOf(left / right)
	case TokenStar:
		return NumberOf(left * right)
	case TokenGreater:
		return BoolOf(left > right)
	case TokenGreaterEqual:
		return BoolOf(left >= right)
	case TokenLess:
		return BoolOf(left < right)
	case TokenLessEqual:
		return BoolOf(left <= right)
	default:
		panic(fmt.Sprintf("not a numeric operator: %v", op.Type))
	}
}
