// Package interpreter evaluates an expression tree produced by the
// parser into a runtime value, via a post-order walk (§4.3).
package interpreter

import (
	"github.com/loxlang/lox-go/ast"
	"github.com/loxlang/lox-go/loxerror"
	"github.com/loxlang/lox-go/object"
	"github.com/loxlang/lox-go/token"
)

// arithmeticError is the internal carrier described in the
// interpreter's design notes: an intermediate signal from operator
// dispatch back to the error-lifting layer in VisitBinaryExpr and
// VisitUnaryExpr. It implements object.Object so dispatch can return it
// like any other value, but it is unexported and never returned from
// Eval — every code path that can produce one converts it to a
// *loxerror.Error first.
type arithmeticError struct{}

func (arithmeticError) Type() object.Type { return "arithmetic_error" }
func (arithmeticError) String() string    { return "<arithmetic error>" }

// Interpreter walks an expression tree and produces a value.
type Interpreter struct {
	sink *loxerror.Sink
}

// New creates an Interpreter that reports failures to sink.
func New(sink *loxerror.Sink) *Interpreter {
	return &Interpreter{sink: sink}
}

// Evaluate is the package-level convenience entry point matching the
// interpreter's external interface: evaluate(expr) -> value or
// runtime-error. The diagnostic, if any, is also reported to sink.
func Evaluate(expr ast.Expr, sink *loxerror.Sink) (object.Object, error) {
	return New(sink).Eval(expr)
}

// Eval evaluates expr and returns its value, or the runtime error that
// stopped evaluation. Every node is visited exactly once, children
// before parent.
func (in *Interpreter) Eval(expr ast.Expr) (object.Object, error) {
	v, err := expr.Accept(in)
	if err != nil {
		return nil, err
	}
	return v.(object.Object), nil
}

func (in *Interpreter) fail(err *loxerror.Error) error {
	in.sink.Report(err)
	return err
}

func (in *Interpreter) VisitLiteralExpr(e *ast.Literal) (any, error) {
	if e.Value == nil {
		return nil, in.fail(loxerror.NewRuntimeErrorAtLine(0, "invalid literal value"))
	}
	return e.Value, nil
}

func (in *Interpreter) VisitGroupingExpr(e *ast.Grouping) (any, error) {
	return in.Eval(e.Expression)
}

func (in *Interpreter) VisitUnaryExpr(e *ast.Unary) (any, error) {
	right, err := in.Eval(e.Right)
	if err != nil {
		return nil, err
	}

	var result object.Object
	switch e.Operator.Kind {
	case token.Minus:
		n, ok := right.(object.Number)
		if !ok {
			result = arithmeticError{}
		} else {
			result = -n
		}
	case token.Bang:
		result = object.Bool(!object.Truthy(right))
	default:
		return nil, in.fail(loxerror.NewRuntimeError(e.Operator, "unhandled unary operator"))
	}

	if _, isErr := result.(arithmeticError); isErr {
		return nil, in.fail(loxerror.NewRuntimeError(e.Operator, "Invalid Arithmetic Expression"))
	}
	return result, nil
}

func (in *Interpreter) VisitBinaryExpr(e *ast.Binary) (any, error) {
	left, err := in.Eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.Eval(e.Right)
	if err != nil {
		return nil, err
	}

	result := dispatchBinary(left, e.Operator.Kind, right)
	if _, isErr := result.(arithmeticError); isErr {
		return nil, in.fail(loxerror.NewRuntimeError(e.Operator, "Invalid Arithmetic Expression"))
	}
	return result, nil
}

// dispatchBinary implements the §4.3 operand/operator dispatch table.
// It never reports a diagnostic itself — it returns arithmeticError for
// the caller (VisitBinaryExpr) to lift into a reported RuntimeError,
// keeping all reporting in one place.
func dispatchBinary(left object.Object, op token.Kind, right object.Object) object.Object {
	if ln, lok := left.(object.Number); lok {
		if rn, rok := right.(object.Number); rok {
			return numericBinary(ln, op, rn)
		}
	}
	if ls, lok := left.(object.Str); lok {
		if rs, rok := right.(object.Str); rok {
			return stringBinary(ls, op, rs)
		}
	}

	// Equality is defined across every pairing, including mismatched
	// non-nil types (an explicit language-design choice, not a bug —
	// see the interpreter's design notes).
	switch op {
	case token.EqualEqual:
		return object.Bool(object.Equal(left, right))
	case token.BangEqual:
		return object.Bool(!object.Equal(left, right))
	default:
		return arithmeticError{}
	}
}

func numericBinary(left object.Number, op token.Kind, right object.Number) object.Object {
	switch op {
	case token.Minus:
		return left - right
	case token.Plus:
		return left + right
	case token.Star:
		return left * right
	case token.Slash:
		// IEEE-754 division: divide-by-zero yields ±Inf or NaN, not an
		// error.
		return left / right
	case token.Greater:
		return object.Bool(left > right)
	case token.GreaterEqual:
		return object.Bool(left >= right)
	case token.Less:
		return object.Bool(left < right)
	case token.LessEqual:
		return object.Bool(left <= right)
	case token.EqualEqual:
		return object.Bool(left == right)
	case token.BangEqual:
		return object.Bool(left != right)
	default:
		return arithmeticError{}
	}
}

func stringBinary(left object.Str, op token.Kind, right object.Str) object.Object {
	switch op {
	case token.Plus:
		return left + right
	case token.Greater:
		return object.Bool(left > right)
	case token.GreaterEqual:
		return object.Bool(left >= right)
	case token.Less:
		return object.Bool(left < right)
	case token.LessEqual:
		return object.Bool(left <= right)
	case token.EqualEqual:
		return object.Bool(left == right)
	case token.BangEqual:
		return object.Bool(left != right)
	default:
		return arithmeticError{}
	}
}
