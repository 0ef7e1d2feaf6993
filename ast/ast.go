// Package ast defines the expression tree the parser builds and the
// evaluator and printers walk.
//
// Expr is a closed sum type of four variants — Binary, Grouping,
// Literal and Unary — dispatched through a Visitor so that every pass
// (the interpreter, the two printers) is exhaustive by construction:
// adding a fifth variant means adding a method to Visitor, which breaks
// every implementation until it is updated.
package ast

import (
	"github.com/loxlang/lox-go/object"
	"github.com/loxlang/lox-go/token"
)

// Expr is any node in the expression tree.
type Expr interface {
	Accept(v Visitor) (any, error)
}

// Visitor is implemented once per pass over the tree (evaluation,
// pretty-printing, RPN-printing, ...).
type Visitor interface {
	VisitBinaryExpr(e *Binary) (any, error)
	VisitGroupingExpr(e *Grouping) (any, error)
	VisitLiteralExpr(e *Literal) (any, error)
	VisitUnaryExpr(e *Unary) (any, error)
}

// Binary is a binary operator expression, e.g. `left op right`.
type Binary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (e *Binary) Accept(v Visitor) (any, error) { return v.VisitBinaryExpr(e) }

// Grouping is a parenthesized expression.
type Grouping struct {
	Expression Expr
}

func (e *Grouping) Accept(v Visitor) (any, error) { return v.VisitGroupingExpr(e) }

// Literal wraps a runtime value produced directly by the parser (a
// number, string, boolean or nil). Value is nil only for a malformed
// literal node, which the evaluator rejects with a runtime error.
type Literal struct {
	Value object.Object
}

func (e *Literal) Accept(v Visitor) (any, error) { return v.VisitLiteralExpr(e) }

// Unary is a prefix operator expression, e.g. `-right` or `!right`.
type Unary struct {
	Operator token.Token
	Right    Expr
}

func (e *Unary) Accept(v Visitor) (any, error) { return v.VisitUnaryExpr(e) }
