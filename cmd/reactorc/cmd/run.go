package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/reactor-lang/reactorc/internal/ast"
	"github.com/reactor-lang/reactorc/internal/checker"
	"github.com/reactor-lang/reactorc/internal/reactor"
	"github.com/reactor-lang/reactorc/internal/translator"
)

var (
	runEvalExpr  string
	runDumpAST   bool
	runDumpJSON  bool
	runPath      string
	runTrace     bool
	runConfigPth string
	runMaxTicks  int
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a program to completion",
	Long: `Lex, parse, type-check and translate a program, then step its
reactor graph tick by tick until the main reactor stops changing.

Examples:
  # Run a program file
  reactorc run script.reactor

  # Evaluate an inline expression
  reactorc run -e "let main = 1 + 2"

  # Run with an AST dump first (for debugging)
  reactorc run --dump-ast script.reactor

  # Disable built-ins for a sandboxed run
  reactorc run --config sandbox.yaml script.reactor`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runEvalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&runDumpAST, "dump-ast", false, "dump the parsed AST before running")
	runCmd.Flags().BoolVar(&runDumpJSON, "dump-ast-json", false, "dump the parsed AST as JSON before running")
	runCmd.Flags().StringVar(&runPath, "path", "", "with --dump-ast-json, print only the subtree at this gjson path")
	runCmd.Flags().BoolVar(&runTrace, "trace", false, "trace each tick's main-reactor update and value")
	runCmd.Flags().StringVar(&runConfigPth, "config", "", "YAML file selecting which built-ins to disable")
	runCmd.Flags().IntVar(&runMaxTicks, "max-ticks", 64, "maximum ticks to fire before giving up")
}

func runScript(_ *cobra.Command, args []string) error {
	src, filename, err := readInput(runEvalExpr, args)
	if err != nil {
		return err
	}

	stmts, scope, perr := parseAll(src, filename)
	if perr != nil {
		return printErr(perr)
	}

	if runDumpAST {
		fmt.Println(dumpASTNode(stmts))
	}
	if runDumpJSON {
		if err := printASTJSON(stmts, runPath); err != nil {
			return err
		}
	}

	cfg, err := loadConfig(runConfigPth)
	if err != nil {
		return fmt.Errorf("failed to load config %s: %w", runConfigPth, err)
	}

	c := checker.New(scope)
	trigger := reactor.NewTrigger()
	tr := translator.New(trigger, c.Types())
	translator.RegisterBuiltins(tr, scope, os.Stdout, cfg.disabledSet())

	for _, stmt := range stmts {
		if cerr := c.Check(stmt); cerr != nil {
			cerr.Source = src
			cerr.File = filename
			return printErr(cerr)
		}
		if terr := tr.Translate(stmt); terr != nil {
			return fmt.Errorf("translation failed: %w", terr)
		}
	}

	main, ok := tr.GetMain()
	if !ok {
		return fmt.Errorf("program has no `main` binding")
	}

	for tick := 0; ; tick++ {
		if runTrace {
			fmt.Fprintf(os.Stderr, "[tick %d] update=%s value=%v\n", tick, main.LastUpdate(), main.Value())
		}
		if main.LastUpdate() == reactor.CompleteEval {
			break
		}
		if tick >= runMaxTicks {
			return fmt.Errorf("main did not complete within %d ticks", runMaxTicks)
		}
		trigger.Fire()
	}

	fmt.Println(formatResult(main.Value()))
	return nil
}

func formatResult(v any) string {
	if b, ok := v.(bool); ok {
		if b {
			return "true"
		}
		return "false"
	}
	return fmt.Sprint(v)
}

func printASTJSON(stmts []ast.Statement, path string) error {
	doc, err := astToJSON(stmts)
	if err != nil {
		return fmt.Errorf("failed to build AST JSON: %w", err)
	}
	if path == "" {
		fmt.Println(string(doc))
		return nil
	}
	result := gjson.Get(string(doc), path)
	if !result.Exists() {
		return fmt.Errorf("path %q not found in AST JSON", path)
	}
	fmt.Println(result.String())
	return nil
}
