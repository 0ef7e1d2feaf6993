package interpreter

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxlang/lox-go/ast"
	"github.com/loxlang/lox-go/lexer"
	"github.com/loxlang/lox-go/loxerror"
	"github.com/loxlang/lox-go/object"
	"github.com/loxlang/lox-go/parser"
	"github.com/loxlang/lox-go/token"
)

func run(t *testing.T, src string) (object.Object, *loxerror.Sink) {
	t.Helper()
	var buf bytes.Buffer
	sink := loxerror.NewSink(&buf)
	toks, err := lexer.Lex(src, sink)
	require.NoError(t, err)
	expr, err := parser.Parse(toks, sink)
	require.NoError(t, err)
	result, _ := Evaluate(expr, sink)
	return result, sink
}

func TestEvaluator_Arithmetic(t *testing.T) {
	tests := []struct {
		input    string
		expected object.Number
	}{
		{"1 + 2 * 3", 7},
		{"(1 + 2) * 3", 9},
		{"10 / 4", 2.5},
		{"2 * -3", -6},
		{"10 - 2 - 3", 5},
	}
	for _, tt := range tests {
		result, sink := run(t, tt.input)
		require.False(t, sink.HadError(), tt.input)
		assert.Equal(t, tt.expected, result, tt.input)
	}
}

func TestEvaluator_StringConcat(t *testing.T) {
	result, sink := run(t, `"ab" + "cd"`)
	require.False(t, sink.HadError())
	assert.Equal(t, object.Str("abcd"), result)
}

func TestEvaluator_Truthiness(t *testing.T) {
	tests := []struct {
		input    string
		expected object.Bool
	}{
		{"!nil", true},
		{"!false", true},
		{"!true", false},
		{"!0", false}, // 0 is truthy
		{`!""`, false}, // empty string is truthy
		{"!!nil", false},
	}
	for _, tt := range tests {
		result, sink := run(t, tt.input)
		require.False(t, sink.HadError(), tt.input)
		assert.Equal(t, tt.expected, result, tt.input)
	}
}

func TestEvaluator_DivisionByZeroIsNotAnError(t *testing.T) {
	result, sink := run(t, "1 / 0")
	require.False(t, sink.HadError())
	assert.True(t, math.IsInf(float64(result.(object.Number)), 1))

	result, sink = run(t, "-1 / 0")
	require.False(t, sink.HadError())
	assert.True(t, math.IsInf(float64(result.(object.Number)), -1))

	result, sink = run(t, "0 / 0")
	require.False(t, sink.HadError())
	assert.True(t, math.IsNaN(float64(result.(object.Number))))
}

func TestEvaluator_EqualityAcrossMismatchedTypes(t *testing.T) {
	tests := []struct {
		input    string
		expected object.Bool
	}{
		{`1 == "1"`, false},
		{`1 != "1"`, true},
		{"nil == false", false},
		{"nil == nil", true},
		{"nil != nil", false},
		{`true == "true"`, false},
	}
	for _, tt := range tests {
		result, sink := run(t, tt.input)
		require.False(t, sink.HadError(), tt.input)
		assert.Equal(t, tt.expected, result, tt.input)
	}
}

func TestEvaluator_InvalidUnaryMinus(t *testing.T) {
	_, sink := run(t, `-"a"`)
	require.True(t, sink.HadError())
	assert.Equal(t, "Invalid Arithmetic Expression", sink.Errors()[0].Message)
	assert.Equal(t, 1, sink.Errors()[0].Line)
}

func TestEvaluator_InvalidBinaryPlus(t *testing.T) {
	_, sink := run(t, `1 + "a"`)
	require.True(t, sink.HadError())
	assert.Equal(t, "Invalid Arithmetic Expression", sink.Errors()[0].Message)
}

func TestEvaluator_Comparisons(t *testing.T) {
	result, sink := run(t, "4 > 2")
	require.False(t, sink.HadError())
	assert.Equal(t, object.Bool(true), result)

	result, sink = run(t, `"abc" < "abd"`)
	require.False(t, sink.HadError())
	assert.Equal(t, object.Bool(true), result)
}

// The following tests exercise the visitor methods directly, in the
// style of the original implementation's own unit tests, rather than
// going through the lexer and parser.

func invokeUnary(t *testing.T, operator token.Token, right object.Object) (object.Object, error) {
	t.Helper()
	var buf bytes.Buffer
	in := New(loxerror.NewSink(&buf))
	expr := &ast.Unary{Operator: operator, Right: &ast.Literal{Value: right}}
	v, err := in.VisitUnaryExpr(expr)
	if err != nil {
		return nil, err
	}
	return v.(object.Object), nil
}

func TestVisitUnaryExpr_Minus(t *testing.T) {
	result, err := invokeUnary(t, token.New(token.Minus, "-", 10), object.Number(123))
	require.NoError(t, err)
	assert.Equal(t, object.Number(-123), result)

	_, err = invokeUnary(t, token.New(token.Minus, "-", 10), object.Nil{})
	assert.Error(t, err)
}

func TestVisitUnaryExpr_Bang(t *testing.T) {
	result, err := invokeUnary(t, token.New(token.Bang, "!", 10), object.Bool(true))
	require.NoError(t, err)
	assert.Equal(t, object.Bool(false), result)
}

func TestVisitUnaryExpr_RejectsUnsupportedOperator(t *testing.T) {
	_, err := invokeUnary(t, token.New(token.Star, "*", 10), object.Bool(true))
	assert.Error(t, err)
}

func invokeBinary(t *testing.T, left object.Object, operator token.Token, right object.Object) (object.Object, error) {
	t.Helper()
	var buf bytes.Buffer
	in := New(loxerror.NewSink(&buf))
	expr := &ast.Binary{
		Left:     &ast.Literal{Value: left},
		Operator: operator,
		Right:    &ast.Literal{Value: right},
	}
	v, err := in.VisitBinaryExpr(expr)
	if err != nil {
		return nil, err
	}
	return v.(object.Object), nil
}

func TestVisitBinaryExpr_Minus(t *testing.T) {
	result, err := invokeBinary(t, object.Number(123), token.New(token.Minus, "-", 10), object.Number(23))
	require.NoError(t, err)
	assert.Equal(t, object.Number(100), result)

	_, err = invokeBinary(t, object.Number(100), token.New(token.Minus, "-", 10), object.Nil{})
	assert.Error(t, err)
}

func TestVisitBinaryExpr_Divide(t *testing.T) {
	result, err := invokeBinary(t, object.Number(500), token.New(token.Slash, "/", 10), object.Number(25))
	require.NoError(t, err)
	assert.Equal(t, object.Number(20), result)

	_, err = invokeBinary(t, object.Number(500), token.New(token.Slash, "/", 10), object.Str(""))
	assert.Error(t, err)
}

func TestVisitBinaryExpr_StringConcat(t *testing.T) {
	result, err := invokeBinary(t, object.Str("abc"), token.New(token.Plus, "+", 10), object.Str("def"))
	require.NoError(t, err)
	assert.Equal(t, object.Str("abcdef"), result)
}

func TestVisitLiteralExpr_MissingValue(t *testing.T) {
	var buf bytes.Buffer
	in := New(loxerror.NewSink(&buf))
	_, err := in.VisitLiteralExpr(&ast.Literal{})
	assert.Error(t, err)
}
