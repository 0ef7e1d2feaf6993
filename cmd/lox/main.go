// Command lox is the entry point for the interpreter: a cobra CLI
// replacing the teacher's ad hoc os.Args dispatch (main/main.go) with
// explicit run/repl subcommands. Bare "lox" starts a REPL, "lox <path>"
// runs a file once (as "lox run <path>" does), and exit codes are
// sysexits-style (64 for usage, 65 for a file-mode error).
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/loxlang/lox-go/ast"
	"github.com/loxlang/lox-go/interpreter"
	"github.com/loxlang/lox-go/lexer"
	"github.com/loxlang/lox-go/loxerror"
	"github.com/loxlang/lox-go/parser"
	"github.com/loxlang/lox-go/repl"
)

// VERSION is the interpreter's release version.
var VERSION = "v0.1.0"

const prompt = "> "

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

var (
	flagPrintTokens bool
	flagPrintAST    bool
	flagRPN         bool
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		// cobra has already printed the usage/error message.
		os.Exit(64)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "lox",
		Short:   "lox is a tree-walking interpreter for Lox expressions",
		Version: VERSION,
	}

	runCmd := &cobra.Command{
		Use:   "run [script-path]",
		Short: "Evaluate a single Lox source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(args[0])
		},
	}
	runCmd.Flags().BoolVar(&flagPrintTokens, "print-tokens", false, "print the scanned token stream before evaluating")
	runCmd.Flags().BoolVar(&flagPrintAST, "print-ast", false, "print the parsed expression in parenthesized form")
	runCmd.Flags().BoolVar(&flagRPN, "rpn", false, "print the parsed expression in reverse-Polish form")

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive read-eval-print loop",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runRepl()
		},
	}
	replCmd.Flags().BoolVar(&flagPrintTokens, "print-tokens", false, "print the scanned token stream for each line")
	replCmd.Flags().BoolVar(&flagPrintAST, "print-ast", false, "print each parsed expression in parenthesized form")
	replCmd.Flags().BoolVar(&flagRPN, "rpn", false, "print each parsed expression in reverse-Polish form")

	root.AddCommand(runCmd, replCmd)

	// Bare "lox" with no subcommand behaves like the original
	// process interface's no-argument form: start the REPL. With one
	// argument it runs that file; more than one is a usage error.
	root.Args = cobra.MaximumNArgs(1)
	root.Run = func(cmd *cobra.Command, args []string) {
		if len(args) == 1 {
			runFile(args[0])
			return
		}
		runRepl()
	}

	return root
}

func runRepl() {
	r := repl.New(prompt, repl.Options{
		PrintTokens: flagPrintTokens,
		PrintAST:    flagPrintAST,
		PrintRPN:    flagRPN,
	})
	r.Start(os.Stdout)
}

// runFile reads source and runs it to completion, exiting the process
// with code 65 on any lex, parse, or runtime diagnostic — the
// sysexits-style contract in spec.md §6.
func runFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file '%s': %v\n", path, err)
		os.Exit(65)
	}

	sink := loxerror.NewSink(os.Stderr)

	toks, err := lexer.Lex(string(source), sink)
	if err != nil {
		os.Exit(65)
	}
	if flagPrintTokens {
		for _, tok := range toks {
			fmt.Println(tok.String())
		}
	}

	expr, err := parser.Parse(toks, sink)
	if err != nil || expr == nil {
		os.Exit(65)
	}

	if flagPrintAST {
		if printed, perr := (&ast.Printer{}).Print(expr); perr == nil {
			cyanColor.Printf("ast:  %s\n", printed)
		}
	}
	if flagRPN {
		if printed, perr := (&ast.RPNPrinter{}).Print(expr); perr == nil {
			cyanColor.Printf("rpn:  %s\n", printed)
		}
	}

	result, err := interpreter.Evaluate(expr, sink)
	if err != nil {
		os.Exit(65)
	}
	if result != nil {
		fmt.Println(result.String())
	}
	return nil
}
