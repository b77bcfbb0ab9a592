// Package checker implements the type checker: see subst.go,
// overload.go and constraints.go for the supporting substitution,
// overload-resolution and inference machinery this file drives one
// statement at a time.
package checker

import (
	"fmt"

	"github.com/reactor-lang/reactorc/internal/ast"
	"github.com/reactor-lang/reactorc/internal/errors"
	"github.com/reactor-lang/reactorc/internal/semantic"
	"github.com/reactor-lang/reactorc/internal/types"
)

// Checker type-checks statements one at a time against a Scope,
// recording results in a TypeMap.
type Checker struct {
	typeMap *TypeMap
	scope   *semantic.Scope
}

// New constructs a Checker over scope (typically the same scope tree
// the parser built, rooted at semantic.BuiltinScope()).
func New(scope *semantic.Scope) *Checker {
	return &Checker{typeMap: NewTypeMap(), scope: scope}
}

// Types returns the checker's TypeMap.
func (c *Checker) Types() *TypeMap { return c.typeMap }

// Check type-checks one top-level statement.
func (c *Checker) Check(stmt ast.Statement) *errors.SyntaxError {
	switch s := stmt.(type) {
	case *ast.BindVariableStatement:
		return c.checkBindVariable(s)
	case *ast.BindFunctionStatement:
		return c.checkBindFunction(s)
	case *ast.ExpressionStatement:
		_, err := c.checkExpr(s.Expr)
		return err
	default:
		return nil
	}
}

func (c *Checker) checkBindVariable(s *ast.BindVariableStatement) *errors.SyntaxError {
	t, err := c.checkExpr(s.Expr)
	if err != nil {
		return err
	}
	s.Variable.Type = t
	return nil
}

func (c *Checker) checkBindFunction(s *ast.BindFunctionStatement) *errors.SyntaxError {
	infer := false
	for _, p := range s.Params {
		if p.Variable.Type == nil {
			infer = true
			break
		}
	}

	if infer {
		constraints := NewConstraints()
		Gather(s.Body, c.scope, constraints)
		for v, t := range Infer(constraints, c.scope) {
			v.Type = t
		}
	}

	bodyType, err := c.checkExpr(s.Body)
	if err != nil {
		return err
	}

	if !c.typeMap.HasCallable(s.Function.ID()) {
		c.scope.AddCallable(s.Function.Name.String(), s.Function.Callable())
		c.typeMap.MarkCallableInstalled(s.Function.ID())
	}

	params := make([]types.Param, len(s.Params))
	for i, p := range s.Params {
		params[i] = types.Param{Name: p.Variable.Name.String(), Type: p.Variable.Type}
	}
	sig := types.NewFunction(params, bodyType)
	// The parser recorded the overload with an unknown return type (and,
	// for inferred parameters, unknown parameter types); the completed
	// signature is written back here for later call sites to resolve
	// against.
	s.Overload.Type = sig
	def := semantic.NewFunctionDefinition(s.Overload, sig, s.Pos())
	c.typeMap.SetStatementDefinition(s, def)
	c.scope.AddDefinition(def)
	return nil
}

func (c *Checker) checkExpr(e ast.Expression) (types.DataType, *errors.SyntaxError) {
	switch ex := e.(type) {
	case *ast.Literal:
		return ex.Type(), nil
	case *ast.VariableExpression:
		t := ex.Var.Type
		ex.SetType(t)
		return t, nil
	case *ast.FunctionExpression:
		t := types.DataType(ex.Func.Callable())
		ex.SetType(t)
		return t, nil
	case *ast.CallExpression:
		return c.checkCall(ex)
	case *ast.EnumExpression:
		return nil, nil
	default:
		return nil, nil
	}
}

func (c *Checker) checkCall(call *ast.CallExpression) (types.DataType, *errors.SyntaxError) {
	calleeType, err := c.checkExpr(call.Callee)
	if err != nil {
		return nil, err
	}

	argTypes := make([]types.DataType, len(call.Args))
	for i, a := range call.Args {
		t, err := c.checkExpr(a)
		if err != nil {
			return nil, err
		}
		argTypes[i] = t
	}

	switch ct := calleeType.(type) {
	case *types.Function:
		if len(ct.Params) != len(argTypes) {
			return nil, errors.New(errors.OverloadNotFound, call.Pos(), "argument count does not match function type")
		}
		s := Subst{}
		for i, p := range ct.Params {
			var ok bool
			s, ok = unifyArg(s, p.Type, argTypes[i], c.scope)
			if !ok {
				return nil, errors.New(errors.OverloadNotFound, call.Args[i].Pos(),
					fmt.Sprintf("argument %d does not match the function type's parameter", i+1))
			}
		}
		call.SetType(Apply(s, ct.Return))
		return call.Type(), nil

	case *types.Callable:
		fn, ok := calleeFunction(call.Callee, nil, c.scope)
		if !ok {
			return nil, errors.New(errors.OverloadNotFound, call.Pos(), fmt.Sprintf("%q is not defined", ct.OwnerName))
		}
		overload, subst, rerr := Resolve(fn, argTypes, c.scope, call.Pos())
		if rerr != nil {
			return nil, rerr
		}
		sig := overload.Type.(*types.Function)
		instantiated := Instantiate(sig, subst)
		call.Callee.SetType(instantiated)

		c.recordArgumentOverloads(call, argTypes, instantiated)

		def := semantic.NewFunctionDefinition(overload, instantiated, call.Pos())
		c.typeMap.SetExpressionDefinition(call, def)
		call.SetType(instantiated.Return)
		return instantiated.Return, nil

	default:
		return nil, errors.New(errors.OverloadNotFound, call.Pos(), "callee is not callable")
	}
}

// recordArgumentOverloads handles function values passed as arguments:
// for each argument whose type is itself a Callable and whose resolved
// parameter type is a Function, it resolves which overload of that
// argument's Function matches the expected signature and records it as
// the argument's own call-definition.
func (c *Checker) recordArgumentOverloads(call *ast.CallExpression, argTypes []types.DataType, instantiated *types.Function) {
	for i, a := range call.Args {
		if _, ok := argTypes[i].(*types.Callable); !ok {
			continue
		}
		expectedSig, ok := instantiated.Params[i].Type.(*types.Function)
		if !ok {
			continue
		}
		argFn, ok := calleeFunction(a, nil, c.scope)
		if !ok {
			continue
		}
		var argOverload *semantic.Variable
		argFn.Find(func(v *semantic.Variable) bool {
			if sig, ok := v.Type.(*types.Function); ok {
				if _, unified := Unify(sig, expectedSig); unified {
					argOverload = v
					return false
				}
			}
			return true
		})
		if argOverload == nil {
			continue
		}
		def := semantic.NewFunctionDefinition(argOverload, expectedSig, a.Pos())
		c.typeMap.SetExpressionDefinition(a, def)
	}
}
