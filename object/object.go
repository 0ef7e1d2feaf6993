// Package object defines the runtime value representation for lox-go.
//
// A value is any type that implements Object. The language recognizes
// four observable variants — Number, Str, Bool and Nil — plus nothing
// else; there is no user-defined type, no function value, no class
// instance. A fifth, unexported sentinel lives in the interpreter
// package for signalling an unsupported operator from dispatch back to
// the evaluator and never escapes that package.
package object

import (
	"strconv"
)

// Type identifies which concrete Object variant a value holds.
type Type string

const (
	NumberType Type = "number"
	StringType Type = "string"
	BoolType   Type = "bool"
	NilType    Type = "nil"
)

// Object is the interface implemented by every runtime value.
type Object interface {
	// Type reports which variant this value is.
	Type() Type
	// String renders the value the way the evaluator's "print" surface
	// does: numbers without trailing zeros, strings double-quoted,
	// booleans as true/false, and nil as "Nil".
	String() string
}

// Number is a 64-bit floating point value.
type Number float64

func (Number) Type() Type { return NumberType }

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

// Str is a Lox string value.
type Str string

func (Str) Type() Type { return StringType }

func (s Str) String() string {
	return `"` + string(s) + `"`
}

// Bool is a Lox boolean value.
type Bool bool

func (Bool) Type() Type { return BoolType }

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Nil is the singleton absence-of-value. The zero value is the only
// value of this type and is directly usable as Nil{}.
type Nil struct{}

func (Nil) Type() Type { return NilType }

func (Nil) String() string { return "Nil" }

// Truthy reports whether obj is truthy per the language's semantics:
// every value is truthy except Nil and Bool(false).
func Truthy(obj Object) bool {
	switch v := obj.(type) {
	case Nil:
		return false
	case Bool:
		return bool(v)
	default:
		return true
	}
}

// Equal implements Lox's "==" semantics, which are defined (not an
// error) across mismatched non-nil types:
//   - Nil == Nil is true
//   - Nil compared with anything else is false
//   - Number/Str/Bool compare by value when both sides share that
//     variant
//   - any other pairing of distinct variants is false
func Equal(a, b Object) bool {
	_, aNil := a.(Nil)
	_, bNil := b.(Nil)
	if aNil || bNil {
		return aNil && bNil
	}
	switch av := a.(type) {
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case Str:
		bv, ok := b.(Str)
		return ok && av == bv
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	default:
		return false
	}
}
