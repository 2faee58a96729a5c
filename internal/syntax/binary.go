package syntax

import (
	"encoding"
	"encoding/binary"
	"fmt"
	"math"
)

// This file contains the format for binary encoding of tokens, values, and
// expression trees. Every encodable type implements
// encoding.BinaryMarshaler and encoding.BinaryUnmarshaler so the encoded
// forms compose, and so callers can hand them to any codec that consumes
// those interfaces.

func encBinaryInt(i int) []byte {
	enc := make([]byte, 8)
	binary.BigEndian.PutUint64(enc, uint64(i))
	return enc
}

// always consumes 8 bytes.
func decBinaryInt(data []byte) (int, int, error) {
	if len(data) < 8 {
		return 0, 0, fmt.Errorf("data does not contain 8 bytes")
	}

	return int(int64(binary.BigEndian.Uint64(data[:8]))), 8, nil
}

func encBinaryFloat(f float64) []byte {
	enc := make([]byte, 8)
	binary.BigEndian.PutUint64(enc, math.Float64bits(f))
	return enc
}

// always consumes 8 bytes.
func decBinaryFloat(data []byte) (float64, int, error) {
	if len(data) < 8 {
		return 0, 0, fmt.Errorf("data does not contain 8 bytes")
	}

	return math.Float64frombits(binary.BigEndian.Uint64(data[:8])), 8, nil
}

func encBinaryBool(b bool) []byte {
	if b {
		return []byte{1}
	}
	return []byte{0}
}

// always consumes 1 byte.
func decBinaryBool(data []byte) (bool, int, error) {
	if len(data) < 1 {
		return false, 0, fmt.Errorf("unexpected end of data")
	}

	switch data[0] {
	case 0:
		return false, 1, nil
	case 1:
		return true, 1, nil
	default:
		return false, 0, fmt.Errorf("unknown non-bool value")
	}
}

func encBinaryString(s string) []byte {
	strData := []byte(s)
	enc := encBinaryInt(len(strData))
	return append(enc, strData...)
}

// returns the string followed by bytes consumed.
func decBinaryString(data []byte) (string, int, error) {
	byteLen, readBytes, err := decBinaryInt(data)
	if err != nil {
		return "", 0, fmt.Errorf("decoding string byte count: %w", err)
	}
	data = data[readBytes:]

	if byteLen < 0 {
		return "", 0, fmt.Errorf("string byte count < 0")
	}
	if len(data) < byteLen {
		return "", 0, fmt.Errorf("unexpected end of data in string")
	}

	return string(data[:byteLen]), readBytes + byteLen, nil
}

func encBinary(b encoding.BinaryMarshaler) []byte {
	enc, _ := b.MarshalBinary()
	return append(encBinaryInt(len(enc)), enc...)
}

// returns bytes consumed.
func decBinary(data []byte, b encoding.BinaryUnmarshaler) (int, error) {
	byteLen, readBytes, err := decBinaryInt(data)
	if err != nil {
		return 0, err
	}
	data = data[readBytes:]

	if byteLen < 0 || len(data) < byteLen {
		return 0, fmt.Errorf("unexpected end of data")
	}

	if err := b.UnmarshalBinary(data[:byteLen]); err != nil {
		return 0, err
	}

	return readBytes + byteLen, nil
}

// MarshalBinary converts v into a slice of bytes that can be decoded with
// UnmarshalBinary.
func (v Value) MarshalBinary() ([]byte, error) {
	data := encBinaryInt(int(v.vType))

	switch v.vType {
	case Nil:
		// type tag alone is the whole encoding
	case Num:
		data = append(data, encBinaryFloat(v.num)...)
	case Str:
		data = append(data, encBinaryString(v.str)...)
	case Bool:
		data = append(data, encBinaryBool(v.b)...)
	default:
		return nil, fmt.Errorf("unknown runtime type: %v", v.vType)
	}

	return data, nil
}

// UnmarshalBinary decodes a slice of bytes created by MarshalBinary into v.
// All of v's fields will be replaced by the fields decoded from data.
func (v *Value) UnmarshalBinary(data []byte) error {
	tag, bytesRead, err := decBinaryInt(data)
	if err != nil {
		return err
	}
	data = data[bytesRead:]

	switch ValueType(tag) {
	case Nil:
		*v = NilValue
	case Num:
		f, _, err := decBinaryFloat(data)
		if err != nil {
			return err
		}
		*v = NumberOf(f)
	case Str:
		s, _, err := decBinaryString(data)
		if err != nil {
			return err
		}
		*v = StringOf(s)
	case Bool:
		b, _, err := decBinaryBool(data)
		if err != nil {
			return err
		}
		*v = BoolOf(b)
	default:
		return fmt.Errorf("unknown runtime type tag: %d", tag)
	}

	return nil
}

// MarshalBinary converts tok into a slice of bytes that can be decoded with
// UnmarshalBinary.
func (tok Token) MarshalBinary() ([]byte, error) {
	var data []byte

	data = append(data, encBinaryInt(int(tok.Type))...)
	data = append(data, encBinaryString(tok.Lexeme)...)
	data = append(data, encBinary(tok.Literal)...)
	data = append(data, encBinaryInt(tok.Line)...)

	return data, nil
}

// UnmarshalBinary decodes a slice of bytes created by MarshalBinary into
// tok. All of tok's fields will be replaced by the fields decoded from data.
func (tok *Token) UnmarshalBinary(data []byte) error {
	var err error
	var bytesRead int

	var tokType int
	tokType, bytesRead, err = decBinaryInt(data)
	if err != nil {
		return err
	}
	tok.Type = TokenType(tokType)
	data = data[bytesRead:]

	tok.Lexeme, bytesRead, err = decBinaryString(data)
	if err != nil {
		return err
	}
	data = data[bytesRead:]

	bytesRead, err = decBinary(data, &tok.Literal)
	if err != nil {
		return err
	}
	data = data[bytesRead:]

	tok.Line, _, err = decBinaryInt(data)
	if err != nil {
		return err
	}

	return nil
}

// tags identifying the node shape in an encoded expression tree.
const (
	exprTagLiteral = iota
	exprTagGrouping
	exprTagUnary
	exprTagBinary
)

// MarshalExpr converts an expression tree into a slice of bytes that can be
// decoded with UnmarshalExpr.
func MarshalExpr(e Expr) ([]byte, error) {
	var tag int
	var node encoding.BinaryMarshaler

	switch typedE := e.(type) {
	case *LiteralExpr:
		tag, node = exprTagLiteral, typedE
	case *GroupingExpr:
		tag, node = exprTagGrouping, typedE
	case *UnaryExpr:
		tag, node = exprTagUnary, typedE
	case *BinaryExpr:
		tag, node = exprTagBinary, typedE
	default:
		return nil, fmt.Errorf("not an expression node: %T", e)
	}

	data := encBinaryInt(tag)
	data = append(data, encBinary(node)...)

	return data, nil
}

// UnmarshalExpr decodes an expression tree from a slice of bytes created by
// MarshalExpr. It returns the tree along with the number of bytes consumed.
func UnmarshalExpr(data []byte) (Expr, int, error) {
	tag, readBytes, err := decBinaryInt(data)
	if err != nil {
		return nil, 0, err
	}
	data = data[readBytes:]

	var node interface {
		Expr
		encoding.BinaryUnmarshaler
	}

	switch tag {
	case exprTagLiteral:
		node = &LiteralExpr{}
	case exprTagGrouping:
		node = &GroupingExpr{}
	case exprTagUnary:
		node = &UnaryExpr{}
	case exprTagBinary:
		node = &BinaryExpr{}
	default:
		return nil, 0, fmt.Errorf("unknown expression node tag: %d", tag)
	}

	n, err := decBinary(data, node)
	if err != nil {
		return nil, 0, err
	}

	return node, readBytes + n, nil
}

// MarshalBinary converts e into a slice of bytes that can be decoded with
// UnmarshalBinary.
func (e *LiteralExpr) MarshalBinary() ([]byte, error) {
	return encBinary(e.Value), nil
}

// UnmarshalBinary decodes a slice of bytes created by MarshalBinary into e.
func (e *LiteralExpr) UnmarshalBinary(data []byte) error {
	_, err := decBinary(data, &e.Value)
	return err
}

// MarshalBinary converts e into a slice of bytes that can be decoded with
// UnmarshalBinary.
func (e *GroupingExpr) MarshalBinary() ([]byte, error) {
	return MarshalExpr(e.Expression)
}

// UnmarshalBinary decodes a slice of bytes created by MarshalBinary into e.
func (e *GroupingExpr) UnmarshalBinary(data []byte) error {
	sub, _, err := UnmarshalExpr(data)
	if err != nil {
		return err
	}
	e.Expression = sub
	return nil
}

// MarshalBinary converts e into a slice of bytes that can be decoded with
// UnmarshalBinary.
func (e *UnaryExpr) MarshalBinary() ([]byte, error) {
	data := encBinary(e.Operator)

	rightData, err := MarshalExpr(e.Right)
	if err != nil {
		return nil, err
	}

	return append(data, rightData...), nil
}

// UnmarshalBinary decodes a slice of bytes created by MarshalBinary into e.
func (e *UnaryExpr) UnmarshalBinary(data []byte) error {
	bytesRead, err := decBinary(data, &e.Operator)
	if err != nil {
		return err
	}
	data = data[bytesRead:]

	e.Right, _, err = UnmarshalExpr(data)
	return err
}

// MarshalBinary converts e into a slice of bytes that can be decoded with
// UnmarshalBinary.
func (e *BinaryExpr) MarshalBinary() ([]byte, error) {
	leftData, err := MarshalExpr(e.Left)
	if err != nil {
		return nil, err
	}

	data := append(leftData, encBinary(e.Operator)...)

	rightData, err := MarshalExpr(e.Right)
	if err != nil {
		return nil, err
	}

	return append(data, rightData...), nil
}

// UnmarshalBinary decodes a slice of bytes created by MarshalBinary into e.
func (e *BinaryExpr) UnmarshalBinary(data []byte) error {
	var bytesRead int
	var err error

	e.Left, bytesRead, err = UnmarshalExpr(data)
	if err != nil {
		return err
	}
	data = data[bytesRead:]

	bytesRead, err = decBinary(data, &e.Operator)
	if err != nil {
		return err
	}
	data = data[bytesRead:]

	e.Right, _, err = UnmarshalExpr(data)
	return err
}
