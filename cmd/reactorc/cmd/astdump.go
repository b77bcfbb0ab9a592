package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/reactor-lang/reactorc/internal/ast"
)

// dumpASTNode prints stmts as an indented tree.
func dumpASTNode(stmts []ast.Statement) string {
	var sb strings.Builder
	for _, s := range stmts {
		dumpStmt(&sb, s, 0)
	}
	return sb.String()
}

func indent(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
}

func dumpStmt(sb *strings.Builder, s ast.Statement, depth int) {
	switch st := s.(type) {
	case *ast.BindVariableStatement:
		indent(sb, depth)
		fmt.Fprintf(sb, "BindVariable %s\n", st.Variable.Name)
		dumpExpr(sb, st.Expr, depth+1)
	case *ast.BindFunctionStatement:
		indent(sb, depth)
		fmt.Fprintf(sb, "BindFunction %s (%d params)\n", st.Function.Name, len(st.Params))
		dumpExpr(sb, st.Body, depth+1)
	case *ast.BindEnumStatement:
		indent(sb, depth)
		fmt.Fprintf(sb, "BindEnum %s (%d members)\n", st.Name, len(st.Members))
	case *ast.ExpressionStatement:
		indent(sb, depth)
		sb.WriteString("ExpressionStatement\n")
		dumpExpr(sb, st.Expr, depth+1)
	case *ast.TerminalStatement:
		indent(sb, depth)
		sb.WriteString("Terminal\n")
	default:
		indent(sb, depth)
		fmt.Fprintf(sb, "%T\n", s)
	}
}

func dumpExpr(sb *strings.Builder, e ast.Expression, depth int) {
	switch ex := e.(type) {
	case *ast.Literal:
		indent(sb, depth)
		fmt.Fprintf(sb, "Literal %q\n", ex.Text)
	case *ast.VariableExpression:
		indent(sb, depth)
		fmt.Fprintf(sb, "Variable %s\n", ex.Name)
	case *ast.FunctionExpression:
		indent(sb, depth)
		fmt.Fprintf(sb, "Function %s\n", ex.Name)
	case *ast.CallExpression:
		indent(sb, depth)
		fmt.Fprintf(sb, "Call (%d args)\n", len(ex.Args))
		dumpExpr(sb, ex.Callee, depth+1)
		for _, a := range ex.Args {
			dumpExpr(sb, a, depth+1)
		}
	case *ast.EnumExpression:
		indent(sb, depth)
		fmt.Fprintf(sb, "EnumMember %s.%s\n", ex.EnumName, ex.MemberName)
	default:
		indent(sb, depth)
		fmt.Fprintf(sb, "%T\n", e)
	}
}

// astToJSON builds the JSON document behind the --dump-ast-json / --path
// flags of run and parse, and parse's --patch flag: gjson reads a subtree by
// path, sjson patches a field, both against this same document.
func astToJSON(stmts []ast.Statement) ([]byte, error) {
	nodes := make([]any, len(stmts))
	for i, s := range stmts {
		nodes[i] = stmtToMap(s)
	}
	return json.MarshalIndent(map[string]any{"statements": nodes}, "", "  ")
}

func stmtToMap(s ast.Statement) map[string]any {
	switch st := s.(type) {
	case *ast.BindVariableStatement:
		return map[string]any{
			"kind":  "BindVariable",
			"name":  st.Variable.Name.String(),
			"value": exprToMap(st.Expr),
		}
	case *ast.BindFunctionStatement:
		params := make([]string, len(st.Params))
		for i, p := range st.Params {
			params[i] = p.Variable.Name.String()
		}
		return map[string]any{
			"kind":   "BindFunction",
			"name":   st.Function.Name.String(),
			"params": params,
			"body":   exprToMap(st.Body),
		}
	case *ast.BindEnumStatement:
		members := make([]string, len(st.Members))
		for i, m := range st.Members {
			members[i] = m.String()
		}
		return map[string]any{"kind": "BindEnum", "name": st.Name.String(), "members": members}
	case *ast.ExpressionStatement:
		return map[string]any{"kind": "ExpressionStatement", "value": exprToMap(st.Expr)}
	default:
		return map[string]any{"kind": fmt.Sprintf("%T", s)}
	}
}

func exprToMap(e ast.Expression) map[string]any {
	switch ex := e.(type) {
	case *ast.Literal:
		return map[string]any{"kind": "Literal", "text": ex.Text}
	case *ast.VariableExpression:
		return map[string]any{"kind": "Variable", "name": ex.Name.String()}
	case *ast.FunctionExpression:
		return map[string]any{"kind": "Function", "name": ex.Name.String()}
	case *ast.CallExpression:
		args := make([]any, len(ex.Args))
		for i, a := range ex.Args {
			args[i] = exprToMap(a)
		}
		return map[string]any{"kind": "Call", "callee": exprToMap(ex.Callee), "args": args}
	case *ast.EnumExpression:
		return map[string]any{"kind": "EnumMember", "enum": ex.EnumName.String(), "member": ex.MemberName.String()}
	default:
		return map[string]any{"kind": fmt.Sprintf("%T", e)}
	}
}
