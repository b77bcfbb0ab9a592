package cmd

import (
	"fmt"
	"os"

	"github.com/reactor-lang/reactorc/internal/ast"
	"github.com/reactor-lang/reactorc/internal/errors"
	"github.com/reactor-lang/reactorc/internal/lexer"
	"github.com/reactor-lang/reactorc/internal/parser"
	"github.com/reactor-lang/reactorc/internal/semantic"
)

// readInput resolves the program source from either an inline
// expression (-e) or a file argument.
func readInput(evalExpr string, args []string) (src, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, rerr := os.ReadFile(args[0])
		if rerr != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], rerr)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e flag for inline code")
}

// parseAll lexes and parses src to completion, returning every
// top-level statement up to (not including) the terminal statement.
func parseAll(src, filename string) ([]ast.Statement, *semantic.Scope, *errors.SyntaxError) {
	scope := semantic.BuiltinScope()
	toks := lexer.New(filename, src).Tokenize()
	p := parser.New(parser.NewTokenStream(toks), scope)

	var stmts []ast.Statement
	for {
		stmt, err := p.ParseNode()
		if err != nil {
			err.Source = src
			err.File = filename
			return stmts, scope, err
		}
		if _, ok := stmt.(*ast.TerminalStatement); ok {
			return stmts, scope, nil
		}
		stmts = append(stmts, stmt)
	}
}

// printErr renders a SyntaxError with source context to stderr and
// returns a short error carrying just the code for the exit path.
func printErr(err *errors.SyntaxError) error {
	fmt.Fprintln(os.Stderr, err.Format(false))
	return fmt.Errorf("%s", err.Code)
}
