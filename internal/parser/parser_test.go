package parser

import (
	"testing"

	"github.com/reactor-lang/reactorc/internal/ast"
	"github.com/reactor-lang/reactorc/internal/errors"
	"github.com/reactor-lang/reactorc/internal/lexer"
	"github.com/reactor-lang/reactorc/internal/semantic"
	"github.com/reactor-lang/reactorc/internal/types"
)

func parseAll(t *testing.T, src string) ([]ast.Statement, *errors.SyntaxError) {
	t.Helper()
	toks := lexer.New("<test>", src).Tokenize()
	p := New(NewTokenStream(toks), semantic.BuiltinScope())

	var stmts []ast.Statement
	for {
		stmt, err := p.ParseNode()
		if err != nil {
			return stmts, err
		}
		if _, ok := stmt.(*ast.TerminalStatement); ok {
			return stmts, nil
		}
		stmts = append(stmts, stmt)
	}
}

func TestTwoBareStatementsOnOneLineRequireNewline(t *testing.T) {
	_, err := parseAll(t, "1 2")
	if err == nil || err.Code != errors.NewLineExpected {
		t.Fatalf("expected NEW_LINE_EXPECTED, got %v", err)
	}
}

func TestLetThenBareExpressionOnSameLineRequiresNewline(t *testing.T) {
	_, err := parseAll(t, "let x = true x")
	if err == nil || err.Code != errors.NewLineExpected {
		t.Fatalf("expected NEW_LINE_EXPECTED, got %v", err)
	}
}

func TestParenthesizedExpressionAllowsLineContinuation(t *testing.T) {
	stmts, err := parseAll(t, "(\n5)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stmts) != 1 {
		t.Fatalf("expected one statement, got %d", len(stmts))
	}
	es, ok := stmts[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("expected ExpressionStatement, got %T", stmts[0])
	}
	lit, ok := es.Expr.(*ast.Literal)
	if !ok || lit.Text != "5" {
		t.Fatalf("expected literal 5, got %#v", es.Expr)
	}
}

func TestBinaryOperatorAllowsLineContinuationAfterOperator(t *testing.T) {
	stmts, err := parseAll(t, "let x = 1 +\n 2 * 3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stmts) != 1 {
		t.Fatalf("expected one statement, got %d", len(stmts))
	}
	bind, ok := stmts[0].(*ast.BindVariableStatement)
	if !ok {
		t.Fatalf("expected BindVariableStatement, got %T", stmts[0])
	}
	call, ok := bind.Expr.(*ast.CallExpression)
	if !ok {
		t.Fatalf("expected top-level call (the '+' desugaring), got %T", bind.Expr)
	}
	callee, ok := call.Callee.(*ast.FunctionExpression)
	if !ok || callee.Name.String() != "+" {
		t.Fatalf("expected callee to be the '+' overload set, got %#v", call.Callee)
	}
	if len(call.Args) != 2 {
		t.Fatalf("expected 2 args to '+', got %d", len(call.Args))
	}
	rhs, ok := call.Args[1].(*ast.CallExpression)
	if !ok {
		t.Fatalf("expected right-hand side to be the '*' call (precedence), got %T", call.Args[1])
	}
	rhsCallee, ok := rhs.Callee.(*ast.FunctionExpression)
	if !ok || rhsCallee.Name.String() != "*" {
		t.Fatalf("expected '*' to bind tighter than '+', got %#v", rhs.Callee)
	}
}

func TestFunctionTypedParameterParsesAsFunctionType(t *testing.T) {
	stmts, err := parseAll(t, "let f(g: (x: Int) -> Int) = g(5)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stmts) != 1 {
		t.Fatalf("expected one statement, got %d", len(stmts))
	}
	bind, ok := stmts[0].(*ast.BindFunctionStatement)
	if !ok {
		t.Fatalf("expected BindFunctionStatement, got %T", stmts[0])
	}
	if len(bind.Params) != 1 {
		t.Fatalf("expected 1 param, got %d", len(bind.Params))
	}
	paramType := bind.Params[0].Variable.Type
	fnType, ok := paramType.(*types.Function)
	if !ok {
		t.Fatalf("expected first parameter to have Function type, got %#v", paramType)
	}
	if len(fnType.Params) != 1 || !fnType.Params[0].Type.Equal(types.Integer) {
		t.Fatalf("expected the parameter function type to take one Int, got %#v", fnType)
	}
	if !fnType.Return.Equal(types.Integer) {
		t.Fatalf("expected the parameter function type to return Int, got %#v", fnType.Return)
	}
}

func TestRebindingVariableNameIsRedefinition(t *testing.T) {
	_, err := parseAll(t, "let x = 1\nlet x = 2")
	if err == nil || err.Code != errors.Redefinition {
		t.Fatalf("expected REDEFINITION, got %v", err)
	}
	if err.Secondary == nil {
		t.Errorf("REDEFINITION should carry the original binding's location")
	}
}

func TestDuplicateOverloadSignatureIsRedefinition(t *testing.T) {
	_, err := parseAll(t, "let f(x: Int) = x\nlet f(y: Int) = y")
	if err == nil || err.Code != errors.Redefinition {
		t.Fatalf("expected REDEFINITION for a repeated parameter list, got %v", err)
	}
}

func TestDistinctOverloadSignatureIsAccepted(t *testing.T) {
	stmts, err := parseAll(t, "let f(x: Int) = x\nlet f(x: Bool) = x")
	if err != nil {
		t.Fatalf("unexpected error adding a distinct overload: %v", err)
	}
	if len(stmts) != 2 {
		t.Fatalf("expected two statements, got %d", len(stmts))
	}
	first := stmts[0].(*ast.BindFunctionStatement)
	second := stmts[1].(*ast.BindFunctionStatement)
	if first.Function != second.Function {
		t.Errorf("both bindings should share one overload set")
	}
	if len(first.Function.Overloads) != 2 {
		t.Errorf("overload set should hold both signatures, got %d", len(first.Function.Overloads))
	}
}

func TestDuplicateParameterName(t *testing.T) {
	_, err := parseAll(t, "let f(x: Int, x: Bool) = x")
	if err == nil || err.Code != errors.FunctionParameterAlreadyDefined {
		t.Fatalf("expected FUNCTION_PARAMETER_ALREADY_DEFINED, got %v", err)
	}
}

func TestIncrementalFeedRecoversFromPendingInput(t *testing.T) {
	ts := NewIncrementalTokenStream()
	firstToks := lexer.New("<test>", "let x ").Tokenize()
	ts.Feed(firstToks[:len(firstToks)-1]) // drop the EOF: more source is still coming
	p := New(ts, semantic.BuiltinScope())

	if _, err := p.ParseNode(); err == nil || err.Code != errors.IncompleteInput {
		t.Fatalf("expected INCOMPLETE_INPUT before '=' arrives, got %v", err)
	}

	ts.Feed(lexer.New("<test>", "= false").Tokenize())
	ts.MarkFinal()

	stmt, err := p.ParseNode()
	if err != nil {
		t.Fatalf("unexpected error after feeding the rest: %v", err)
	}
	if _, ok := stmt.(*ast.BindVariableStatement); !ok {
		t.Fatalf("expected BindVariableStatement once complete, got %T", stmt)
	}
}
