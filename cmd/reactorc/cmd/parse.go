package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

var (
	parseEvalExpr string
	parseDumpJSON bool
	parsePath     string
	parsePatch    string
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a program and display its AST",
	Long: `Parse a program and print its Abstract Syntax Tree, without type
checking or translating it.

Examples:
  # Dump the AST as an indented tree
  reactorc parse script.reactor

  # Dump the AST as JSON and narrow to one subtree
  reactorc parse --dump-ast-json --path statements.0.value script.reactor

  # Patch a single field of the JSON dump before printing it
  reactorc parse --dump-ast-json --patch statements.0.name=renamed script.reactor`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseEvalExpr, "eval", "e", "", "parse inline code instead of reading from file")
	parseCmd.Flags().BoolVar(&parseDumpJSON, "dump-ast-json", false, "dump the AST as JSON instead of an indented tree")
	parseCmd.Flags().StringVar(&parsePath, "path", "", "with --dump-ast-json, print only the subtree at this gjson path")
	parseCmd.Flags().StringVar(&parsePatch, "patch", "", "with --dump-ast-json, patch one field before printing (sjson path=value)")
}

func runParse(_ *cobra.Command, args []string) error {
	src, filename, err := readInput(parseEvalExpr, args)
	if err != nil {
		return err
	}

	stmts, _, perr := parseAll(src, filename)
	if perr != nil {
		return printErr(perr)
	}

	if !parseDumpJSON {
		fmt.Print(dumpASTNode(stmts))
		return nil
	}

	doc, err := astToJSON(stmts)
	if err != nil {
		return fmt.Errorf("failed to build AST JSON: %w", err)
	}

	out := string(doc)
	if parsePatch != "" {
		path, value, ok := splitPatch(parsePatch)
		if !ok {
			return fmt.Errorf("--patch expects path=value, got %q", parsePatch)
		}
		patched, serr := sjson.Set(out, path, value)
		if serr != nil {
			return fmt.Errorf("failed to apply patch %q: %w", parsePatch, serr)
		}
		out = patched
	}

	if parsePath != "" {
		result := gjson.Get(out, parsePath)
		if !result.Exists() {
			return fmt.Errorf("path %q not found in AST JSON", parsePath)
		}
		fmt.Println(result.String())
		return nil
	}

	fmt.Println(out)
	return nil
}

// splitPatch splits a "path=value" argument on the first "=".
func splitPatch(s string) (path, value string, ok bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == '=' {
			return s[:i], s[i+1:], true
		}
	}
	return "", "", false
}
