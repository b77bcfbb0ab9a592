package translator

import (
	"bytes"
	"testing"

	"github.com/reactor-lang/reactorc/internal/ast"
	"github.com/reactor-lang/reactorc/internal/checker"
	"github.com/reactor-lang/reactorc/internal/lexer"
	"github.com/reactor-lang/reactorc/internal/parser"
	"github.com/reactor-lang/reactorc/internal/reactor"
	"github.com/reactor-lang/reactorc/internal/semantic"
)

// runProgram lexes, parses, checks and translates src end to end,
// mirroring what cmd/reactorc's run command does, and returns the
// main reactor plus the Trigger driving it and whatever was written
// to the program's stdout.
func runProgram(t *testing.T, src string) (reactor.Reactor, *reactor.Trigger, *bytes.Buffer) {
	t.Helper()

	scope := semantic.BuiltinScope()
	toks := lexer.New("<test>", src).Tokenize()
	p := parser.New(parser.NewTokenStream(toks), scope)

	trigger := reactor.NewTrigger()
	var stdout bytes.Buffer
	c := checker.New(scope)
	tr := New(trigger, c.Types())
	RegisterBuiltins(tr, scope, &stdout, nil)

	for {
		stmt, perr := p.ParseNode()
		if perr != nil {
			t.Fatalf("parse error: %v", perr)
		}
		if _, ok := stmt.(*ast.TerminalStatement); ok {
			break
		}
		if cerr := c.Check(stmt); cerr != nil {
			t.Fatalf("check error: %v", cerr)
		}
		if err := tr.Translate(stmt); err != nil {
			t.Fatalf("translate error: %v", err)
		}
	}

	main, ok := tr.GetMain()
	if !ok {
		t.Fatalf("no main reactor produced")
	}
	return main, trigger, &stdout
}

func TestMainAddition(t *testing.T) {
	main, trigger, _ := runProgram(t, "let main = 1 + 2")
	reactor.AssertValue(t, trigger, main, 0, reactor.CompleteEval, int64(3))
}

func TestMainPrint(t *testing.T) {
	main, trigger, stdout := runProgram(t, "let main = print(1 + 2)")
	reactor.AssertValue(t, trigger, main, 0, reactor.CompleteEval, int64(3))
	if got := stdout.String(); got != "3\n" {
		t.Fatalf("stdout = %q, want %q", got, "3\n")
	}
}

func TestUserFunctionCall(t *testing.T) {
	main, trigger, _ := runProgram(t, "let f(x: Int) = x + 1\nlet main = f(41)")
	reactor.AssertValue(t, trigger, main, 0, reactor.CompleteEval, int64(42))
}

func TestGenericIdentity(t *testing.T) {
	main, trigger, _ := runProgram(t, "let id(x: `T) = x\nlet main = id(true)")
	reactor.AssertValue(t, trigger, main, 0, reactor.CompleteEval, true)
}

func TestChainBuiltin(t *testing.T) {
	main, trigger, _ := runProgram(t, "let main = chain(1, 2)")
	reactor.AssertValue(t, trigger, main, 0, reactor.Eval, int64(1))
	reactor.AssertValue(t, trigger, main, 1, reactor.CompleteEval, int64(2))
}

func TestFirstBuiltin(t *testing.T) {
	main, trigger, _ := runProgram(t, "let main = first(123)")
	reactor.AssertValue(t, trigger, main, 0, reactor.CompleteEval, int64(123))
}

func TestGenericInstantiatedTwiceAtSameType(t *testing.T) {
	main, trigger, _ := runProgram(t, "let id(x: `T) = x\nlet main = id(1) + id(2)")
	reactor.AssertValue(t, trigger, main, 0, reactor.CompleteEval, int64(3))
}

func TestFunctionValuePassedAsArgument(t *testing.T) {
	main, trigger, _ := runProgram(t, "let double(x: Int) = x * 2\nlet apply(g: (x: Int) -> Int, v: Int) = g(v)\nlet main = apply(double, 21)")
	reactor.AssertValue(t, trigger, main, 0, reactor.CompleteEval, int64(42))
}

func TestDisabledBuiltinFailsToInstantiate(t *testing.T) {
	scope := semantic.BuiltinScope()
	toks := lexer.New("<test>", "let main = print(1)").Tokenize()
	p := parser.New(parser.NewTokenStream(toks), scope)

	trigger := reactor.NewTrigger()
	var stdout bytes.Buffer
	c := checker.New(scope)
	tr := New(trigger, c.Types())
	RegisterBuiltins(tr, scope, &stdout, map[string]bool{"print": true})

	for {
		stmt, perr := p.ParseNode()
		if perr != nil {
			t.Fatalf("parse error: %v", perr)
		}
		if _, ok := stmt.(*ast.TerminalStatement); ok {
			break
		}
		if cerr := c.Check(stmt); cerr != nil {
			t.Fatalf("check error: %v", cerr)
		}
		if err := tr.Translate(stmt); err == nil {
			t.Fatalf("expected translate error for disabled builtin, got nil")
		}
	}
}
