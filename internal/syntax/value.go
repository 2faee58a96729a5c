package syntax

import (
	"fmt"
	"strconv"
)

// ValueType is the runtime type of a Value.
type ValueType int

const (
	// Nil is the type of the null value. It is deliberately first so that
	// the zero value of Value is nil.
	Nil ValueType = iota

	// Num is the type of 64-bit float numbers.
	Num

	// Str is the type of text strings.
	Str

	// Bool is the type of the two boolean values.
	Bool
)

// String returns the human-readable name of the type.
func (vt ValueType) String() string {
	switch vt {
	case Nil:
		return "nil"
	case Num:
		return "number"
	case Str:
		return "string"
	case Bool:
		return "bool"
	default:
		return fmt.Sprintf("ValueType(%d)", int(vt))
	}
}

// Value is a dynamically-typed runtime value. It is a closed union over the
// four types that exist at runtime: Num, Str, Bool, and Nil. Exactly one of
// the payload fields is meaningful, selected by the type tag; the zero value
// of Value is the nil value.
//
// Values are immutable. There is no implicit coercion between types; callers
// check Type before using an accessor.
type Value struct {
	vType ValueType
	num   float64
	str   string
	b     bool
}

// NilValue is the single nil value.
var NilValue = Value{}

// ValueOf creates a Value of the appropriate type from the argument, which
// must be a float64, string, bool, or nil.
func ValueOf(v any) Value {
	switch typedV := v.(type) {
	case float64:
		return Value{vType: Num, num: typedV}
	case string:
		return Value{vType: Str, str: typedV}
	case bool:
		return Value{vType: Bool, b: typedV}
	case nil:
		return NilValue
	default:
		panic(fmt.Sprintf("not a runtime type: %T", v))
	}
}

// NumberOf returns a Value of Num type holding the given number.
func NumberOf(f float64) Value {
	return Value{vType: Num, num: f}
}

// StringOf returns a Value of Str type holding the given text.
func StringOf(s string) Value {
	return Value{vType: Str, str: s}
}

// BoolOf returns a Value of Bool type holding the given boolean.
func BoolOf(b bool) Value {
	return Value{vType: Bool, b: b}
}

// Type returns the runtime type of the Value.
func (v Value) Type() ValueType {
	return v.vType
}

// IsNil returns whether v is the nil value.
func (v Value) IsNil() bool {
	return v.vType == Nil
}

// Float returns the numeric payload. It panics if v is not of Num type.
func (v Value) Float() float64 {
	if v.vType != Num {
		panic(fmt.Sprintf("wrong type: %v is not a number", v.vType))
	}
	return v.num
}

// Text returns the string payload. It panics if v is not of Str type.
func (v Value) Text() string {
	if v.vType != Str {
		panic(fmt.Sprintf("wrong type: %v is not a string", v.vType))
	}
	return v.str
}

// Bool returns the boolean payload. It panics if v is not of Bool type.
func (v Value) Bool() bool {
	if v.vType != Bool {
		panic(fmt.Sprintf("wrong type: %v is not a bool", v.vType))
	}
	return v.b
}

// Truthy returns the boolean this value maps to in a logical context. Only
// the nil value and false are falsy; everything else, including zero and the
// empty string, is truthy.
func (v Value) Truthy() bool {
	switch v.vType {
	case Nil:
		return false
	case Bool:
		return v.b
	default:
		return true
	}
}

// Equal returns whether v is equal to another Value or *Value. Equality is
// type-sensitive: values of different runtime types are never equal, and no
// coercion of any kind is performed. Two nil values are equal to each other
// and unequal to everything else.
func (v Value) Equal(o any) bool {
	other, ok := o.(Value)
	if !ok {
		otherPtr, ok := o.(*Value)
		if !ok {
			return false
		} else if otherPtr == nil {
			return false
		}
		other = *otherPtr
	}

	if v.vType != other.vType {
		return false
	}

	switch v.vType {
	case Nil:
		return true
	case Num:
		return v.num == other.num
	case Str:
		return v.str == other.str
	case Bool:
		return v.b == other.b
	default:
		panic(fmt.Sprintf("unknown runtime type: %v", v.vType))
	}
}

// String returns the display form of the value: "nil" for the nil value,
// "true"/"false" for bools, the text verbatim for strings, and for numbers
// the shortest decimal form with no redundant trailing ".0".
func (v Value) String() string {
	switch v.vType {
	case Nil:
		return "nil"
	case Bool:
		return strconv.FormatBool(v.b)
	case Str:
		return v.str
	case Num:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	default:
		panic(fmt.Sprintf("unknown runtime type: %v", v.vType))
	}
}
