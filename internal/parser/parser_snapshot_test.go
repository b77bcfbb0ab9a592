package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/reactor-lang/reactorc/internal/ast"
)

// dumpStmts renders parsed statements as a stable indented tree, the
// shape go-snaps records into __snapshots__.
func dumpStmts(stmts []ast.Statement) string {
	var sb strings.Builder
	for _, s := range stmts {
		dumpSnapStmt(&sb, s, 0)
	}
	return sb.String()
}

func dumpSnapStmt(sb *strings.Builder, s ast.Statement, depth int) {
	pad := strings.Repeat("  ", depth)
	switch st := s.(type) {
	case *ast.BindVariableStatement:
		fmt.Fprintf(sb, "%sBindVariable %s\n", pad, st.Variable.Name)
		dumpSnapExpr(sb, st.Expr, depth+1)
	case *ast.BindFunctionStatement:
		fmt.Fprintf(sb, "%sBindFunction %s/%d\n", pad, st.Function.Name, len(st.Params))
		dumpSnapExpr(sb, st.Body, depth+1)
	case *ast.ExpressionStatement:
		fmt.Fprintf(sb, "%sExpressionStatement\n", pad)
		dumpSnapExpr(sb, st.Expr, depth+1)
	default:
		fmt.Fprintf(sb, "%s%T\n", pad, s)
	}
}

func dumpSnapExpr(sb *strings.Builder, e ast.Expression, depth int) {
	pad := strings.Repeat("  ", depth)
	switch ex := e.(type) {
	case *ast.Literal:
		fmt.Fprintf(sb, "%sLiteral %s\n", pad, ex.Text)
	case *ast.VariableExpression:
		fmt.Fprintf(sb, "%sVariable %s\n", pad, ex.Name)
	case *ast.FunctionExpression:
		fmt.Fprintf(sb, "%sFunction %s\n", pad, ex.Name)
	case *ast.CallExpression:
		fmt.Fprintf(sb, "%sCall\n", pad)
		dumpSnapExpr(sb, ex.Callee, depth+1)
		for _, a := range ex.Args {
			dumpSnapExpr(sb, a, depth+1)
		}
	default:
		fmt.Fprintf(sb, "%s%T\n", pad, e)
	}
}

func TestParserSnapshotArithmeticPrecedence(t *testing.T) {
	stmts, err := parseAll(t, "let main = 1 + 2 * 3")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	snaps.MatchSnapshot(t, dumpStmts(stmts))
}

func TestParserSnapshotGenericFunction(t *testing.T) {
	stmts, err := parseAll(t, "let id(x: `T) = x\nlet main = id(true)")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	snaps.MatchSnapshot(t, dumpStmts(stmts))
}

func TestParserSnapshotFunctionTypeParam(t *testing.T) {
	stmts, err := parseAll(t, "let apply(g: (x: Int) -> Int, v: Int) = g(v)\nlet main = apply(print, 1)")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	snaps.MatchSnapshot(t, dumpStmts(stmts))
}
