package syntax

import (
	"fmt"
	"strings"
)

// Expr is a node of the expression syntax tree. It is a closed union over
// exactly four shapes: LiteralExpr, GroupingExpr, UnaryExpr, and BinaryExpr.
// Each node exclusively owns its children; trees are finite, acyclic, and
// never mutated after the parser builds them, so a tree may be walked or
// re-evaluated any number of times.
type Expr interface {
	fmt.Stringer

	// Equal returns whether this node and its entire subtree are equal to
	// another Expr and its subtree.
	Equal(o any) bool

	// node seals the union.
	node()
}

// LiteralExpr is a literal value appearing directly in source. Value is the
// nil value for the nil literal.
type LiteralExpr struct {
	Value Value
}

// GroupingExpr is a parenthesized sub-expression.
type GroupingExpr struct {
	Expression Expr
}

// UnaryExpr is a prefix operator applied to one operand. The parser only
// ever stores a '!' or '-' token as the operator.
type UnaryExpr struct {
	Operator Token
	Right    Expr
}

// BinaryExpr is an infix operator applied to two operands. The parser only
// ever stores one of the binary operator tokens legal at the node's
// precedence level.
type BinaryExpr struct {
	Left     Expr
	Operator Token
	Right    Expr
}

func (e *LiteralExpr) node()  {}
func (e *GroupingExpr) node() {}
func (e *UnaryExpr) node()    {}
func (e *BinaryExpr) node()   {}

// String returns the literal's display form, or "nil" for the nil literal.
func (e *LiteralExpr) String() string {
	if e.Value.Type() == Str {
		// quote strings so tree output is unambiguous
		return fmt.Sprintf("%q", e.Value.Text())
	}
	return e.Value.String()
}

// String returns the subtree in parenthesized prefix form, "(group <expr>)".
func (e *GroupingExpr) String() string {
	return parenthesize("group", e.Expression)
}

// String returns the subtree in parenthesized prefix form, such as "(- 123)".
func (e *UnaryExpr) String() string {
	return parenthesize(e.Operator.Lexeme, e.Right)
}

// String returns the subtree in parenthesized prefix form, such as
// "(* (- 123) (group 45.67))".
func (e *BinaryExpr) String() string {
	return parenthesize(e.Operator.Lexeme, e.Left, e.Right)
}

// parenthesize renders a node name and its children as a lisp-style list.
func parenthesize(name string, children ...Expr) string {
	var sb strings.Builder

	sb.WriteRune('(')
	sb.WriteString(name)
	for _, child := range children {
		sb.WriteRune(' ')
		sb.WriteString(child.String())
	}
	sb.WriteRune(')')

	return sb.String()
}

// Equal returns whether the other object is a *LiteralExpr holding an equal
// value.
func (e *LiteralExpr) Equal(o any) bool {
	other, ok := o.(*LiteralExpr)
	if !ok {
		return false
	} else if e == nil || other == nil {
		return e == other
	}

	return e.Value.Equal(other.Value)
}

// Equal returns whether the other object is a *GroupingExpr with an equal
// sub-expression.
func (e *GroupingExpr) Equal(o any) bool {
	other, ok := o.(*GroupingExpr)
	if !ok {
		return false
	} else if e == nil || other == nil {
		return e == other
	}

	return e.Expression.Equal(other.Expression)
}

// Equal returns whether the other object is a *UnaryExpr with an equal
// operator token and operand subtree.
func (e *UnaryExpr) Equal(o any) bool {
	other, ok := o.(*UnaryExpr)
	if !ok {
		return false
	} else if e == nil || other == nil {
		return e == other
	}

	if !e.Operator.Equal(other.Operator) {
		return false
	}

	return e.Right.Equal(other.Right)
}

// Equal returns whether the other object is a *BinaryExpr with an equal
// operator token and equal operand subtrees.
func (e *BinaryExpr) Equal(o any) bool {
	other, ok := o.(*BinaryExpr)
	if !ok {
		return false
	} else if e == nil || other == nil {
		return e == other
	}

	if !e.Operator.Equal(other.Operator) {
		return false
	}
	if !e.Left.Equal(other.Left) {
		return false
	}

	return e.Right.Equal(other.Right)
}
