// Package loxerror is the uniform diagnostic surface shared by the
// lexer, parser and interpreter. Every failure in the pipeline is one
// of three kinds — LexError, ParseError or RuntimeError — and is always
// reported through a Sink before the producing stage returns failure to
// its caller.
package loxerror

import (
	"fmt"
	"io"

	"github.com/juju/errors"

	"github.com/loxlang/lox-go/token"
)

// Kind distinguishes the three diagnostic categories described in the
// interpreter's error-handling design. The categories are never mixed:
// a single Error always carries exactly one.
type Kind int

const (
	// Lex marks a bad or unterminated token. Carries a line number.
	Lex Kind = iota
	// Parse marks an unexpected token. Carries the offending token.
	Parse
	// Runtime marks a type mismatch or invalid operator at evaluation
	// time. Carries the operator token.
	Runtime
)

// Error is a diagnostic produced by one pipeline stage. Line is always
// set; Token is set by NewParseError and NewRuntimeError so the
// reporter can render " at '<lexeme>'" (or " at end" for EOF). The
// line-only constructors leave Token nil.
type Error struct {
	Kind    Kind
	Line    int
	Token   *token.Token
	Message string
}

func (e *Error) Error() string {
	return e.format()
}

// format renders the §6 diagnostic line: "[line N] Error<where>: <message>".
func (e *Error) format() string {
	where := ""
	if e.Token != nil {
		if e.Token.Kind == token.EOF {
			where = " at end"
		} else {
			where = fmt.Sprintf(" at '%s'", e.Token.Lexeme)
		}
	}
	return fmt.Sprintf("[line %d] Error%s: %s", e.Line, where, e.Message)
}

// NewLexError builds a diagnostic for a bad or unterminated token at
// the given line.
func NewLexError(line int, message string) *Error {
	return &Error{Kind: Lex, Line: line, Message: message}
}

// NewParseError builds a diagnostic anchored to the offending token.
func NewParseError(tok token.Token, message string) *Error {
	t := tok
	return &Error{Kind: Parse, Line: tok.Line, Token: &t, Message: message}
}

// NewParseErrorAtLine builds a parse diagnostic anchored only to a line
// number rather than a specific token — used where the grammar calls
// for "on the previous token's line" rather than "at '<lexeme>'".
func NewParseErrorAtLine(line int, message string) *Error {
	return &Error{Kind: Parse, Line: line, Message: message}
}

// NewRuntimeError builds a diagnostic anchored to the operator token
// responsible for the failed operation.
func NewRuntimeError(tok token.Token, message string) *Error {
	t := tok
	return &Error{Kind: Runtime, Line: tok.Line, Token: &t, Message: message}
}

// NewRuntimeErrorAtLine builds a runtime diagnostic with no anchoring
// token — used for failures, like an empty AST literal, that have no
// operator token to point at. The original implementation reports
// these at line 0.
func NewRuntimeErrorAtLine(line int, message string) *Error {
	return &Error{Kind: Runtime, Line: line, Message: message}
}

// Sink is the uniform reporting surface every stage writes diagnostics
// to. It never aborts a caller's control flow itself — stages decide
// when to stop — it only records and renders.
type Sink struct {
	w        io.Writer
	errs     []*Error
	hadError bool
}

// NewSink creates a Sink that renders diagnostics to w (typically
// os.Stderr).
func NewSink(w io.Writer) *Sink {
	return &Sink{w: w}
}

// Report writes the diagnostic to the sink's writer and records that an
// error has occurred. Safe to call multiple times per run — the lexer
// relies on this to surface every bad token it finds in one pass.
func (s *Sink) Report(err *Error) {
	s.hadError = true
	s.errs = append(s.errs, err)
	fmt.Fprintln(s.w, err.format())
}

// HadError reports whether any diagnostic has been reported to this
// sink since it was created.
func (s *Sink) HadError() bool {
	return s.hadError
}

// Errors returns every diagnostic reported to this sink, in report
// order.
func (s *Sink) Errors() []*Error {
	return s.errs
}

// First returns the first diagnostic reported to this sink. When more
// than one was recorded it is annotated via github.com/juju/errors with
// the total count; a single diagnostic is returned as is. This is the
// error a stage actually returns to its caller
// after it has finished reporting every diagnostic it found.
func (s *Sink) First() error {
	if len(s.errs) == 0 {
		return nil
	}
	if len(s.errs) == 1 {
		return s.errs[0]
	}
	return errors.Annotatef(s.errs[0], "first of %d errors", len(s.errs))
}
