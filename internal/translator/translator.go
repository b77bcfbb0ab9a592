// Package translator lowers a type-checked AST into a dataflow graph
// of reactor builders (internal/reactor), including lazy instantiation
// of generic overloads.
package translator

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/reactor-lang/reactorc/internal/ast"
	"github.com/reactor-lang/reactorc/internal/checker"
	"github.com/reactor-lang/reactorc/internal/reactor"
	"github.com/reactor-lang/reactorc/internal/semantic"
	"github.com/reactor-lang/reactorc/internal/types"
)

// GenericBuilder produces a concrete builder for one instantiation of
// a (possibly polymorphic) built-in overload set, given the concrete
// signature the call site resolved to. Built-ins dispatch on runtime
// values rather than on sig, so the same factory serves every overload
// of a built-in Function.
type GenericBuilder func(sig *types.Function) reactor.Builder

// instNamespace is a fixed namespace for deriving stable instantiation
// identities (below); it has no meaning beyond separating this UUID
// space from any other use of uuid.NewSHA1 in the program.
var instNamespace = uuid.MustParse("2f6e9b0a-2e7b-4f0c-8b8e-6f6b1a9c9a10")

// instKey memoizes an instantiation by (root overload, concrete
// signature). The key is a uuid.UUID derived deterministically
// (uuid.NewSHA1, not a random uuid.New) from the overload's identity
// and the concrete signature's stable Name, so the same monomorphization
// always hashes to the same identity without the translator needing to
// track substitutions itself.
func instKey(overload *semantic.Variable, sig *types.Function) uuid.UUID {
	name := fmt.Sprintf("%p|%s", overload, sig.Name())
	return uuid.NewSHA1(instNamespace, []byte(name))
}

// Translator lowers top-level statements to reactor builders.
type Translator struct {
	trigger *reactor.Trigger
	typeMap *checker.TypeMap

	vars            map[*semantic.Variable]reactor.Builder
	overloadOwner   map[*semantic.Variable]*semantic.Function
	genericBuilders map[*semantic.Function]GenericBuilder
	genericDefs     map[*semantic.Variable]*ast.BindFunctionStatement
	instCache       map[uuid.UUID]reactor.Builder

	mainVar *semantic.Variable
}

// New constructs a Translator driven by trigger and reading resolved
// types/definitions from typeMap (the TypeMap the Checker populated
// for the same AST).
func New(trigger *reactor.Trigger, typeMap *checker.TypeMap) *Translator {
	return &Translator{
		trigger:         trigger,
		typeMap:         typeMap,
		vars:            map[*semantic.Variable]reactor.Builder{},
		overloadOwner:   map[*semantic.Variable]*semantic.Function{},
		genericBuilders: map[*semantic.Function]GenericBuilder{},
		genericDefs:     map[*semantic.Variable]*ast.BindFunctionStatement{},
		instCache:       map[uuid.UUID]reactor.Builder{},
	}
}

// AddVariable installs a concrete binding for v, used directly for
// `let`-bound values and indirectly (by translateBindFunction) for
// non-generic functions.
func (t *Translator) AddVariable(v *semantic.Variable, b reactor.Builder) {
	t.vars[v] = b
}

// AddBuiltin registers a lazy builder factory for every overload of
// fn, recording fn as each overload's owner if it doesn't already have
// one (harmless if called more than once for the same Function).
func (t *Translator) AddBuiltin(fn *semantic.Function, factory GenericBuilder) {
	t.genericBuilders[fn] = factory
	fn.Find(func(v *semantic.Variable) bool {
		if _, ok := t.overloadOwner[v]; !ok {
			t.overloadOwner[v] = fn
		}
		return true
	})
}

// GetMain builds and returns the reactor for the `main` binding, or
// (nil, false) if no `main` has been translated yet.
func (t *Translator) GetMain() (reactor.Reactor, bool) {
	if t.mainVar == nil {
		return nil, false
	}
	b, ok := t.vars[t.mainVar]
	if !ok {
		return nil, false
	}
	return b.Build(t.trigger), true
}

// Translate lowers one top-level statement.
func (t *Translator) Translate(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.BindVariableStatement:
		b, err := t.lowerExpr(s.Expr)
		if err != nil {
			return err
		}
		t.AddVariable(s.Variable, b)
		if s.Variable.Name.String() == "main" {
			t.mainVar = s.Variable
		}
		return nil
	case *ast.BindFunctionStatement:
		return t.translateBindFunction(s)
	case *ast.BindEnumStatement, *ast.TerminalStatement:
		return nil
	case *ast.ExpressionStatement:
		_, err := t.lowerExpr(s.Expr)
		return err
	default:
		return fmt.Errorf("translator: unhandled statement %T", stmt)
	}
}

// translateBindFunction parks a generic signature for lazy
// instantiation; a fully concrete one is lowered eagerly and bound to
// its overload variable.
func (t *Translator) translateBindFunction(s *ast.BindFunctionStatement) error {
	t.overloadOwner[s.Overload] = s.Function

	for _, p := range s.Params {
		if types.ContainsGeneric(p.Variable.Type) {
			t.genericDefs[s.Overload] = s
			return nil
		}
	}

	b, err := t.lowerFunctionBody(s.Params, s.Body)
	if err != nil {
		return err
	}
	t.AddVariable(s.Overload, b)
	return nil
}

// lowerFunctionBody allocates one parameter proxy per parameter,
// temporarily binds each parameter variable to its proxy while the
// body is lowered, then restores the prior bindings: parameter
// bindings are implementation-private to this function's builder.
func (t *Translator) lowerFunctionBody(params []ast.Param, body ast.Expression) (*reactor.FunctionReactorBuilder, error) {
	proxies := make([]*reactor.ParamProxy, len(params))
	saved := make([]reactor.Builder, len(params))
	for i, p := range params {
		proxies[i] = reactor.NewParamProxy()
		saved[i] = t.vars[p.Variable]
		t.vars[p.Variable] = proxies[i]
	}

	bodyBuilder, err := t.lowerExpr(body)

	for i, p := range params {
		if saved[i] != nil {
			t.vars[p.Variable] = saved[i]
		} else {
			delete(t.vars, p.Variable)
		}
	}
	if err != nil {
		return nil, err
	}

	return reactor.NewFunctionReactorBuilder(func(args []reactor.Builder, trigger *reactor.Trigger) reactor.Reactor {
		for i, proxy := range proxies {
			proxy.Set(args[i])
		}
		return bodyBuilder.Build(trigger)
	}), nil
}

func (t *Translator) lowerExpr(e ast.Expression) (reactor.Builder, error) {
	switch ex := e.(type) {
	case *ast.Literal:
		return t.lowerLiteral(ex)
	case *ast.CallExpression:
		return t.lowerCall(ex)
	case *ast.VariableExpression, *ast.FunctionExpression:
		return t.lowerFuncRef(ex)
	case *ast.EnumExpression:
		return nil, fmt.Errorf("translator: enum expressions have no reactor representation")
	default:
		return nil, fmt.Errorf("translator: unhandled expression %T", e)
	}
}

// lowerFuncRef is the shared VariableExpression / FunctionExpression
// policy: if the checker recorded a resolved overload definition for
// this exact node (a function value passed as an argument),
// instantiate it; otherwise look up an already-bound builder directly.
func (t *Translator) lowerFuncRef(e ast.Expression) (reactor.Builder, error) {
	if def, ok := t.typeMap.ExpressionDefinition(e); ok {
		return t.instantiate(def.Overload, def.Signature)
	}

	switch ex := e.(type) {
	case *ast.VariableExpression:
		if b, ok := t.vars[ex.Var]; ok {
			return b, nil
		}
		return nil, fmt.Errorf("translator: no builder bound for variable %q", ex.Var.Name)

	case *ast.FunctionExpression:
		var found reactor.Builder
		ex.Func.Find(func(v *semantic.Variable) bool {
			if b, ok := t.vars[v]; ok {
				found = b
				return false
			}
			return true
		})
		if found != nil {
			return found, nil
		}
		// No overload bound yet and no call-site resolution recorded:
		// fall back to the function's first (and, for this bare-value
		// usage, only meaningful) overload.
		var first *semantic.Variable
		ex.Func.Find(func(v *semantic.Variable) bool {
			first = v
			return false
		})
		if first == nil {
			return nil, fmt.Errorf("translator: function %q has no overloads", ex.Func.Name)
		}
		sig, ok := first.Type.(*types.Function)
		if !ok {
			return nil, fmt.Errorf("translator: overload of %q has no signature", ex.Func.Name)
		}
		return t.instantiate(first, sig)
	}
	return nil, fmt.Errorf("translator: unhandled function reference %T", e)
}

func (t *Translator) lowerCall(call *ast.CallExpression) (reactor.Builder, error) {
	var calleeBuilder reactor.Builder
	var err error

	if def, ok := t.typeMap.ExpressionDefinition(call); ok {
		calleeBuilder, err = t.instantiate(def.Overload, def.Signature)
	} else {
		calleeBuilder, err = t.lowerExpr(call.Callee)
	}
	if err != nil {
		return nil, err
	}

	args := make([]reactor.Builder, len(call.Args))
	for i, a := range call.Args {
		args[i], err = t.lowerExpr(a)
		if err != nil {
			return nil, err
		}
	}
	return reactor.NewCallBuilder(calleeBuilder, args), nil
}

// instantiate lazily resolves the builder for overload at concrete
// signature sig. It is memoized per (root overload, signature).
func (t *Translator) instantiate(overload *semantic.Variable, sig *types.Function) (reactor.Builder, error) {
	if b, ok := t.vars[overload]; ok {
		return b, nil
	}

	key := instKey(overload, sig)
	if b, ok := t.instCache[key]; ok {
		return b, nil
	}

	fn, ok := t.overloadOwner[overload]
	if !ok {
		return nil, fmt.Errorf("translator: %q has no registered owner to instantiate from", overload.Name)
	}

	if factory, ok := t.genericBuilders[fn]; ok {
		b := factory(sig)
		t.instCache[key] = b
		return b, nil
	}

	parked, ok := t.genericDefs[overload]
	if !ok {
		return nil, fmt.Errorf("translator: no generic definition parked for %q", overload.Name)
	}

	clonedParams, clonedBody, err := t.cloneAndSubstitute(parked, overload, sig)
	if err != nil {
		return nil, err
	}
	b, err := t.lowerFunctionBody(clonedParams, clonedBody)
	if err != nil {
		return nil, err
	}
	t.instCache[key] = b
	return b, nil
}
