package translator

import (
	"fmt"
	"io"

	"github.com/reactor-lang/reactorc/internal/reactor"
	"github.com/reactor-lang/reactorc/internal/semantic"
	"github.com/reactor-lang/reactorc/internal/types"
)

// RegisterBuiltins wires a generic builder factory for every built-in
// overload set in scope: add/chain/print/count/fold/first/multiply
// plus the operator table the parser desugars to. stdout is where
// `print` writes. disabled names built-ins to leave unregistered
// (`reactorc run --config` wires this for sandboxed evaluation, e.g.
// disabling `print`); a program that still calls a disabled built-in
// fails to instantiate it at translate time.
func RegisterBuiltins(t *Translator, scope *semantic.Scope, stdout io.Writer, disabled map[string]bool) {
	binary := func(name string, combine func(a, b any) any) {
		if disabled[name] {
			return
		}
		t.addBinaryBuiltin(scope, name, combine)
	}

	binary("+", numBinary(func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b }))
	binary("*", numBinary(func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b }))
	binary("/", numBinary(func(a, b int64) int64 { return a / b }, func(a, b float64) float64 { return a / b }))
	binary("add", numBinary(func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b }))
	binary("multiply", numBinary(func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b }))

	binary("==", compareBinary(func(c int) bool { return c == 0 }))
	binary("!=", compareBinary(func(c int) bool { return c != 0 }))
	binary("<", compareBinary(func(c int) bool { return c < 0 }))
	binary("<=", compareBinary(func(c int) bool { return c <= 0 }))
	binary(">", compareBinary(func(c int) bool { return c > 0 }))
	binary(">=", compareBinary(func(c int) bool { return c >= 0 }))

	binary("and", func(a, b any) any { return a.(bool) && b.(bool) })
	binary("or", func(a, b any) any { return a.(bool) || b.(bool) })

	if !disabled["not"] {
		t.addUnaryBuiltin(scope, "not", func(a any) any { return !a.(bool) })
	}

	// "-" carries both the binary subtract overloads and the unary
	// negate ones under a single overload set: the factory dispatches
	// on the actual argument count a call site supplies, since
	// genericBuilders are keyed per Function, not per overload.
	minusBinary := numBinary(func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b })
	minusUnary := func(a any) any {
		switch v := a.(type) {
		case int64:
			return -v
		case float64:
			return -v
		default:
			panic(fmt.Sprintf("reactor: unary - applied to %T", a))
		}
	}
	if fn, ok := scope.FindFunctionWithin("-"); ok && !disabled["-"] {
		t.AddBuiltin(fn, func(*types.Function) reactor.Builder {
			return reactor.NewFunctionReactorBuilder(func(args []reactor.Builder, trigger *reactor.Trigger) reactor.Reactor {
				if len(args) == 1 {
					a := args[0].Build(trigger)
					return reactor.NewComposite(trigger, []reactor.Reactor{a}, func(vals []any) any {
						return minusUnary(vals[0])
					})
				}
				a := args[0].Build(trigger)
				b := args[1].Build(trigger)
				return reactor.NewComposite(trigger, []reactor.Reactor{a, b}, func(vals []any) any {
					return minusBinary(vals[0], vals[1])
				})
			})
		})
	}

	if !disabled["chain"] {
		t.addVariadicBuiltin(scope, "chain", func(args []reactor.Builder, trigger *reactor.Trigger) reactor.Reactor {
			children := make([]reactor.Reactor, len(args))
			for i, a := range args {
				children[i] = a.Build(trigger)
			}
			return reactor.NewChain(trigger, children)
		})
	}

	if !disabled["count"] {
		t.addUnaryBuiltinReactor(scope, "count", func(trigger *reactor.Trigger, x reactor.Reactor) reactor.Reactor {
			return reactor.NewComposite(trigger, []reactor.Reactor{x}, func([]any) any { return int64(1) })
		})
	}

	if !disabled["first"] {
		t.addUnaryBuiltinReactor(scope, "first", func(trigger *reactor.Trigger, x reactor.Reactor) reactor.Reactor {
			return reactor.First(x.Value())
		})
	}

	if !disabled["fold"] {
		t.addFoldBuiltin(scope)
	}

	if !disabled["print"] {
		t.addUnaryBuiltinReactor(scope, "print", func(trigger *reactor.Trigger, x reactor.Reactor) reactor.Reactor {
			return reactor.NewComposite(trigger, []reactor.Reactor{x}, func(vals []any) any {
				fmt.Fprintln(stdout, formatValue(vals[0]))
				return vals[0]
			})
		})
	}
}

func formatValue(v any) string {
	if b, ok := v.(bool); ok {
		if b {
			return "true"
		}
		return "false"
	}
	return fmt.Sprint(v)
}

func numBinary(iop func(a, b int64) int64, fop func(a, b float64) float64) func(a, b any) any {
	return func(a, b any) any {
		switch x := a.(type) {
		case int64:
			return iop(x, b.(int64))
		case float64:
			return fop(x, b.(float64))
		default:
			panic(fmt.Sprintf("reactor: numeric builtin applied to %T", a))
		}
	}
}

// compareBinary builds a combine func from a comparator over a
// tri-state cmp result. The comparison overload sets span
// Integer/Float/Text only; `==` has no Bool overload registered in the
// builtin scope, so a bool never reaches this dispatch.
func compareBinary(accept func(cmp int) bool) func(a, b any) any {
	return func(a, b any) any {
		switch x := a.(type) {
		case int64:
			return accept(cmpInt(x, b.(int64)))
		case float64:
			return accept(cmpFloat(x, b.(float64)))
		case string:
			return accept(cmpString(x, b.(string)))
		default:
			panic(fmt.Sprintf("reactor: comparison applied to %T", a))
		}
	}
}

func cmpInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (t *Translator) addBinaryBuiltin(scope *semantic.Scope, name string, combine func(a, b any) any) {
	fn, ok := scope.FindFunctionWithin(name)
	if !ok {
		return
	}
	t.AddBuiltin(fn, func(*types.Function) reactor.Builder {
		return reactor.NewFunctionReactorBuilder(func(args []reactor.Builder, trigger *reactor.Trigger) reactor.Reactor {
			a := args[0].Build(trigger)
			b := args[1].Build(trigger)
			return reactor.NewComposite(trigger, []reactor.Reactor{a, b}, func(vals []any) any {
				return combine(vals[0], vals[1])
			})
		})
	})
}

func (t *Translator) addUnaryBuiltin(scope *semantic.Scope, name string, combine func(a any) any) {
	fn, ok := scope.FindFunctionWithin(name)
	if !ok {
		return
	}
	t.AddBuiltin(fn, func(*types.Function) reactor.Builder {
		return reactor.NewFunctionReactorBuilder(func(args []reactor.Builder, trigger *reactor.Trigger) reactor.Reactor {
			a := args[0].Build(trigger)
			return reactor.NewComposite(trigger, []reactor.Reactor{a}, func(vals []any) any {
				return combine(vals[0])
			})
		})
	})
}

func (t *Translator) addUnaryBuiltinReactor(scope *semantic.Scope, name string, build func(trigger *reactor.Trigger, x reactor.Reactor) reactor.Reactor) {
	fn, ok := scope.FindFunctionWithin(name)
	if !ok {
		return
	}
	t.AddBuiltin(fn, func(*types.Function) reactor.Builder {
		return reactor.NewFunctionReactorBuilder(func(args []reactor.Builder, trigger *reactor.Trigger) reactor.Reactor {
			return build(trigger, args[0].Build(trigger))
		})
	})
}

func (t *Translator) addVariadicBuiltin(scope *semantic.Scope, name string, build func(args []reactor.Builder, trigger *reactor.Trigger) reactor.Reactor) {
	fn, ok := scope.FindFunctionWithin(name)
	if !ok {
		return
	}
	t.AddBuiltin(fn, func(*types.Function) reactor.Builder {
		return reactor.NewFunctionReactorBuilder(build)
	})
}

func (t *Translator) addFoldBuiltin(scope *semantic.Scope) {
	fn, ok := scope.FindFunctionWithin("fold")
	if !ok {
		return
	}
	t.AddBuiltin(fn, func(*types.Function) reactor.Builder {
		return reactor.NewFunctionReactorBuilder(func(args []reactor.Builder, trigger *reactor.Trigger) reactor.Reactor {
			seed, step := args[0], args[1]
			inv, ok := step.(reactor.Invoker)
			if !ok {
				panic("reactor: fold's step argument is not invokable")
			}
			// The language has no collection type to fold over, so fold
			// degenerates to a single step applied to the seed against
			// itself.
			return inv.Invoke([]reactor.Builder{seed, seed}, trigger)
		})
	})
}
