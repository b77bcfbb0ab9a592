package checker

import (
	"testing"

	"github.com/reactor-lang/reactorc/internal/ast"
	"github.com/reactor-lang/reactorc/internal/errors"
	"github.com/reactor-lang/reactorc/internal/lexer"
	"github.com/reactor-lang/reactorc/internal/parser"
	"github.com/reactor-lang/reactorc/internal/semantic"
	"github.com/reactor-lang/reactorc/internal/types"
)

// checkSource parses and type-checks every statement in src against a
// shared global scope, returning the statements and the Checker (so
// tests can inspect the TypeMap), or the first error encountered.
func checkSource(t *testing.T, src string) ([]ast.Statement, *Checker, *errors.SyntaxError) {
	t.Helper()
	global := semantic.BuiltinScope()
	toks := lexer.New("<test>", src).Tokenize()
	p := parser.New(parser.NewTokenStream(toks), global)
	c := New(global)

	var stmts []ast.Statement
	for {
		stmt, perr := p.ParseNode()
		if perr != nil {
			return stmts, c, perr
		}
		if _, ok := stmt.(*ast.TerminalStatement); ok {
			break
		}
		if cerr := c.Check(stmt); cerr != nil {
			return stmts, c, cerr
		}
		stmts = append(stmts, stmt)
	}
	return stmts, c, nil
}

func TestDeclaredParamTypeAcceptsMatchingCallRejectsOther(t *testing.T) {
	_, _, err := checkSource(t, "let f(x: Int) = x\nf(5)")
	if err != nil {
		t.Fatalf("f(5) should type-check: %v", err)
	}
	_, _, err = checkSource(t, "let f(x: Int) = x\nf(false)")
	if err == nil || err.Code != errors.OverloadNotFound {
		t.Fatalf("f(false) should fail with OVERLOAD_NOT_FOUND, got %v", err)
	}
}

func TestCallReturnTypeFlowsIntoBinding(t *testing.T) {
	stmts, _, err := checkSource(t, "let f(x: Int) = x + 1\nlet y = f(41)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bind, ok := stmts[len(stmts)-1].(*ast.BindVariableStatement)
	if !ok {
		t.Fatalf("expected BindVariableStatement, got %T", stmts[len(stmts)-1])
	}
	if bind.Variable.Type == nil || !bind.Variable.Type.Equal(types.Integer) {
		t.Errorf("y should carry f's return type Integer, got %#v", bind.Variable.Type)
	}
}

func TestNestedCallUsesCalleeReturnType(t *testing.T) {
	if _, _, err := checkSource(t, "let f(x: Int) = x + 1\nf(f(5))"); err != nil {
		t.Fatalf("f(f(5)) should type-check through f's return type: %v", err)
	}
	if _, _, err := checkSource(t, "let g(x: Bool) = x\nlet f(x: Int) = x\nf(g(true))"); err == nil || err.Code != errors.OverloadNotFound {
		t.Fatalf("f(g(true)) should fail: g returns Bool, f takes Int; got %v", err)
	}
}

func TestSingleGenericParamAcceptsAnyType(t *testing.T) {
	_, _, err := checkSource(t, "let f(x: `T) = x\nf(5)\nf(false)")
	if err != nil {
		t.Fatalf("generic identity should accept both Int and Bool: %v", err)
	}
}

func TestRepeatedGenericRequiresConsistentArguments(t *testing.T) {
	if _, _, err := checkSource(t, "let f(x: `T, y: `T) = x\nf(5, 10)"); err != nil {
		t.Fatalf("f(5, 10) should type-check: %v", err)
	}
	if _, _, err := checkSource(t, "let f(x: `T, y: `T) = x\nf(false, 10)"); err == nil || err.Code != errors.OverloadNotFound {
		t.Fatalf("f(false, 10) should fail with OVERLOAD_NOT_FOUND, got %v", err)
	}
	if _, _, err := checkSource(t, "let f(x: `T, y: `T) = x\nf(false)"); err == nil || err.Code != errors.OverloadNotFound {
		t.Fatalf("f(false) (wrong arity) should fail with OVERLOAD_NOT_FOUND, got %v", err)
	}
}

func TestIndependentGenericsAcceptMixedTypesButRequireBothArgs(t *testing.T) {
	if _, _, err := checkSource(t, "let f(x: `T, y: `U) = x\nf(false, 10)"); err != nil {
		t.Fatalf("f(false, 10) should type-check with independent generics: %v", err)
	}
	if _, _, err := checkSource(t, "let f(x: `T, y: `U) = x\nf(false)"); err == nil || err.Code != errors.OverloadNotFound {
		t.Fatalf("f(false) (wrong arity) should fail with OVERLOAD_NOT_FOUND, got %v", err)
	}
}

func TestPassingOverloadedFunctionSelectsMatchingSignature(t *testing.T) {
	stmts, c, err := checkSource(t, "let g() = true\nlet f(h: () -> Bool) = h()\nf(g)")
	if err != nil {
		t.Fatalf("passing g as a () -> Bool argument should type-check: %v", err)
	}
	var fCall *ast.CallExpression
	for _, s := range stmts {
		if es, ok := s.(*ast.ExpressionStatement); ok {
			if call, ok := es.Expr.(*ast.CallExpression); ok {
				fCall = call
			}
		}
	}
	if fCall == nil {
		t.Fatalf("expected to find the f(g) call statement")
	}
	if len(fCall.Args) != 1 {
		t.Fatalf("expected one argument to f")
	}
	if _, ok := c.Types().ExpressionDefinition(fCall.Args[0]); !ok {
		t.Errorf("expected a recorded overload definition for the g argument")
	}
}

func TestGenericFunctionAcceptsOverloadedFunctionArgument(t *testing.T) {
	_, _, err := checkSource(t, "let g() = true\nlet f(h: `T) = h\nf(g)")
	if err != nil {
		t.Fatalf("passing g where the parameter is generic should type-check: %v", err)
	}
}

func TestInferenceDetectsConsistentUseOfDistinctVariables(t *testing.T) {
	global := semantic.BuiltinScope()
	src := "let f(x: Int) = x\nlet g(y: Bool) = y\nlet h(x, y) = chain(f(x), g(y))"
	toks := lexer.New("<test>", src).Tokenize()
	p := parser.New(parser.NewTokenStream(toks), global)
	c := New(global)

	var last ast.Statement
	for {
		stmt, perr := p.ParseNode()
		if perr != nil {
			t.Fatalf("unexpected parse error: %v", perr)
		}
		if _, ok := stmt.(*ast.TerminalStatement); ok {
			break
		}
		last = stmt
		_ = c.Check(stmt) // h's body may fail to fully resolve chain(); inference itself is what's under test
	}

	bind, ok := last.(*ast.BindFunctionStatement)
	if !ok {
		t.Fatalf("expected the last statement to be BindFunctionStatement, got %T", last)
	}
	if len(bind.Params) != 2 {
		t.Fatalf("expected 2 params")
	}
	xVar, yVar := bind.Params[0].Variable, bind.Params[1].Variable
	if xVar.Type == nil || !xVar.Type.Equal(types.Integer) {
		t.Errorf("expected x's inferred type to be Integer, got %#v", xVar.Type)
	}
	if yVar.Type == nil || !yVar.Type.Equal(types.Bool) {
		t.Errorf("expected y's inferred type to be Bool, got %#v", yVar.Type)
	}
}

func TestInferenceDetectsInconsistentUseOfSameVariable(t *testing.T) {
	global := semantic.BuiltinScope()
	src := "let f(x: Int) = x\nlet g(y: Bool) = y\nlet h(x) = chain(f(x), g(x))"
	toks := lexer.New("<test>", src).Tokenize()
	p := parser.New(parser.NewTokenStream(toks), global)
	c := New(global)

	var last ast.Statement
	for {
		stmt, perr := p.ParseNode()
		if perr != nil {
			t.Fatalf("unexpected parse error: %v", perr)
		}
		if _, ok := stmt.(*ast.TerminalStatement); ok {
			break
		}
		last = stmt
		_ = c.Check(stmt)
	}

	bind, ok := last.(*ast.BindFunctionStatement)
	if !ok {
		t.Fatalf("expected the last statement to be BindFunctionStatement, got %T", last)
	}
	if bind.Params[0].Variable.Type != nil {
		t.Errorf("expected x's inferred type to remain null (inconsistent use), got %#v", bind.Params[0].Variable.Type)
	}
}

func TestInferenceEliminatesOverloadUsingDisambiguatingSibling(t *testing.T) {
	global := semantic.BuiltinScope()
	src := "let f(x) = add(x, 1)"
	toks := lexer.New("<test>", src).Tokenize()
	p := parser.New(parser.NewTokenStream(toks), global)
	c := New(global)

	var last ast.Statement
	for {
		stmt, perr := p.ParseNode()
		if perr != nil {
			t.Fatalf("unexpected parse error: %v", perr)
		}
		if _, ok := stmt.(*ast.TerminalStatement); ok {
			break
		}
		last = stmt
		if cerr := c.Check(stmt); cerr != nil {
			t.Fatalf("add(x, 1) should type-check once the Float overload is ruled out by the literal 1: %v", cerr)
		}
	}

	bind, ok := last.(*ast.BindFunctionStatement)
	if !ok {
		t.Fatalf("expected the last statement to be BindFunctionStatement, got %T", last)
	}
	xVar := bind.Params[0].Variable
	if xVar.Type == nil || !xVar.Type.Equal(types.Integer) {
		t.Errorf("expected x's inferred type to be Integer (Float overload ruled out by sibling literal 1), got %#v", xVar.Type)
	}
}
