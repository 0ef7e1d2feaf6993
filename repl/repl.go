// Package repl implements the interactive read-eval-print loop for the
// interpreter. The REPL is an external collaborator per the
// interpreter's own scope (spec.md §1 lists it as excluded from the
// core), wired up here as the ambient CLI surface around lex/parse/eval.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/loxlang/lox-go/ast"
	"github.com/loxlang/lox-go/interpreter"
	"github.com/loxlang/lox-go/lexer"
	"github.com/loxlang/lox-go/loxerror"
	"github.com/loxlang/lox-go/parser"
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// Options controls the debug output the REPL prints alongside each
// result.
type Options struct {
	PrintTokens bool
	PrintAST    bool
	PrintRPN    bool
}

// Repl is one interactive session.
type Repl struct {
	Prompt  string
	Options Options
}

// New creates a Repl with the given prompt.
func New(prompt string, opts Options) *Repl {
	return &Repl{Prompt: prompt, Options: opts}
}

// Start runs the read-eval-print loop, showing r.Prompt (cmd/lox uses
// "> ") before each line, until readline returns an error: io.EOF on
// Ctrl+D or readline.ErrInterrupt on Ctrl+C. Blank lines are skipped.
// Reading always goes through readline against the controlling
// terminal; out receives the banner, any debug output, evaluation
// results and diagnostics.
func (r *Repl) Start(out io.Writer) {
	cyanColor.Fprintln(out, "Type an expression and press enter. Ctrl+D to quit.")

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on Ctrl+D, readline.ErrInterrupt on Ctrl+C
			fmt.Fprintln(out, "")
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		r.evalLine(line, out)
	}
}

func (r *Repl) evalLine(line string, out io.Writer) {
	sink := loxerror.NewSink(out)

	toks, err := lexer.Lex(line, sink)
	if err != nil {
		return
	}

	if r.Options.PrintTokens {
		for _, tok := range toks {
			fmt.Fprintln(out, tok.String())
		}
	}

	expr, err := parser.Parse(toks, sink)
	if err != nil || expr == nil {
		return
	}

	if r.Options.PrintAST {
		if printed, perr := (&ast.Printer{}).Print(expr); perr == nil {
			cyanColor.Fprintf(out, "ast:  %s\n", printed)
		}
	}
	if r.Options.PrintRPN {
		if printed, perr := (&ast.RPNPrinter{}).Print(expr); perr == nil {
			cyanColor.Fprintf(out, "rpn:  %s\n", printed)
		}
	}

	result, err := interpreter.Evaluate(expr, sink)
	if err != nil {
		redColor.Fprintln(out, err.Error())
		return
	}

	yellowColor.Fprintln(out, result.String())
}
