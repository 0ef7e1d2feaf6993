// Package token defines the lexical token vocabulary shared by the
// lexer, parser and interpreter.
package token

import (
	"fmt"

	"github.com/loxlang/lox-go/object"
)

// Kind is a closed enumeration of token kinds. It is string-backed, in
// the teacher's style, so a Token prints legibly without a lookup
// table.
type Kind string

const (
	// Single-character punctuation.
	LeftParen  Kind = "("
	RightParen Kind = ")"
	LeftBrace  Kind = "{"
	RightBrace Kind = "}"
	Comma      Kind = ","
	Dot        Kind = "."
	Minus      Kind = "-"
	Plus       Kind = "+"
	Semicolon  Kind = ";"
	Slash      Kind = "/"
	Star       Kind = "*"

	// One- or two-character operators.
	Bang         Kind = "!"
	BangEqual    Kind = "!="
	Equal        Kind = "="
	EqualEqual   Kind = "=="
	Greater      Kind = ">"
	GreaterEqual Kind = ">="
	Less         Kind = "<"
	LessEqual    Kind = "<="

	// Literals.
	Identifier Kind = "IDENTIFIER"
	String     Kind = "STRING"
	Number     Kind = "NUMBER"

	// Keywords.
	And    Kind = "and"
	Class  Kind = "class"
	Else   Kind = "else"
	False  Kind = "false"
	Fun    Kind = "fun"
	For    Kind = "for"
	If     Kind = "if"
	Nil    Kind = "nil"
	Or     Kind = "or"
	Print  Kind = "print"
	Return Kind = "return"
	Super  Kind = "super"
	This   Kind = "this"
	True   Kind = "true"
	Var    Kind = "var"
	While  Kind = "while"

	// Sentinel.
	EOF Kind = "EOF"
)

// Keywords maps reserved-word lexemes to their keyword Kind. The lexer
// consults this after scanning an identifier-shaped run of characters.
var Keywords = map[string]Kind{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"for":    For,
	"fun":    Fun,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

// Token is an immutable, copyable record of one lexical token.
//
// Literal is populated only for Number and String tokens (§3 of the
// interpreter's data model); every other token carries a nil Literal.
type Token struct {
	Kind    Kind
	Lexeme  string
	Literal object.Object
	Line    int
}

// New builds a token with no literal payload.
func New(kind Kind, lexeme string, line int) Token {
	return Token{Kind: kind, Lexeme: lexeme, Line: line}
}

// NewLiteral builds a token carrying a runtime literal value.
func NewLiteral(kind Kind, lexeme string, literal object.Object, line int) Token {
	return Token{Kind: kind, Lexeme: lexeme, Literal: literal, Line: line}
}

// EOFToken builds the sentinel EOF token for the given line.
func EOFToken(line int) Token {
	return Token{Kind: EOF, Lexeme: "", Line: line}
}

// Is reports whether the token has the given kind.
func (t Token) Is(kind Kind) bool {
	return t.Kind == kind
}

// Dup returns an independent copy of t. Token is already a plain value
// type, so this is a no-op beyond documenting the parser's intent: an
// operator token is duplicated into a Binary/Unary AST node rather than
// referencing the original token slice, keeping the tree self-contained
// after the token buffer is discarded.
func (t Token) Dup() Token {
	return t
}

// String renders the token for debugging, e.g. `+ "+" @1`.
func (t Token) String() string {
	return fmt.Sprintf("%s %q @%d", t.Kind, t.Lexeme, t.Line)
}
