package checker

import (
	"github.com/reactor-lang/reactorc/internal/ast"
	"github.com/reactor-lang/reactorc/internal/semantic"
	"github.com/reactor-lang/reactorc/internal/types"
)

// Constraints accumulates, for each function parameter awaiting an
// inferred type, every concrete parameter type implied by a call site
// where that parameter's Variable appears directly as an argument to
// an overload consistent with that call's other, already-typed
// arguments. A variable whose uses imply more than one distinct type
// is inconsistent: Infer leaves it unassigned, and the failure
// surfaces as a missing type when the body is subsequently checked the
// ordinary way.
//
// Rather than enumerating every combination of per-variable candidates
// and testing each assignment after the fact, each overload is checked
// once against its call site's sibling arguments before it is allowed
// to contribute a candidate at all: a literal or already-typed sibling
// argument that disagrees with an overload rules that overload out for
// every parameter of the call, not just the one it conflicts with.
// Same observable result, without the search.
type Constraints struct {
	Buckets map[*semantic.Variable][]types.DataType
	Order   []*semantic.Variable
}

// NewConstraints returns an empty Constraints.
func NewConstraints() *Constraints {
	return &Constraints{Buckets: map[*semantic.Variable][]types.DataType{}}
}

func (c *Constraints) addCandidate(v *semantic.Variable, t types.DataType) {
	existing, seen := c.Buckets[v]
	if !seen {
		c.Order = append(c.Order, v)
	}
	for _, e := range existing {
		if e.Equal(t) {
			return
		}
	}
	c.Buckets[v] = append(c.Buckets[v], t)
}

// Gather walks body, recording the parameter type implied at every
// call site where a VariableExpression appears directly as an
// argument to some candidate overload of the callee. An
// overload only contributes a candidate once every other argument at
// that call site whose type is already known (a literal, or a
// variable already typed) agrees with that overload's signature — a
// sibling argument ruling out an overload rules it out for every
// parameter at that call site, not just the one it conflicts with.
func Gather(body ast.Expression, scope *semantic.Scope, c *Constraints) {
	call, ok := body.(*ast.CallExpression)
	if !ok {
		return
	}

	for _, sig := range candidateSignatures(call.Callee, scope) {
		if len(sig.Params) != len(call.Args) {
			continue
		}
		if !argsCompatible(call.Args, sig) {
			continue
		}
		for i, arg := range call.Args {
			if ve, ok := arg.(*ast.VariableExpression); ok {
				c.addCandidate(ve.Var, sig.Params[i].Type)
			}
		}
	}

	for _, arg := range call.Args {
		Gather(arg, scope, c)
	}
}

// argsCompatible reports whether every argument already carrying a
// known type (Type() != nil) matches sig's parameter type at the same
// position. Arguments still awaiting inference (Type() == nil) impose
// no constraint here; they are exactly the candidates Gather is
// collecting.
func argsCompatible(args []ast.Expression, sig *types.Function) bool {
	for i, arg := range args {
		t := arg.Type()
		if t == nil {
			continue
		}
		if !t.Equal(sig.Params[i].Type) {
			return false
		}
	}
	return true
}

func candidateSignatures(callee ast.Expression, scope *semantic.Scope) []*types.Function {
	switch ce := callee.(type) {
	case *ast.FunctionExpression:
		var sigs []*types.Function
		ce.Func.Find(func(v *semantic.Variable) bool {
			if sig, ok := v.Type.(*types.Function); ok {
				sigs = append(sigs, sig)
			}
			return true
		})
		return sigs
	case *ast.VariableExpression:
		if sig, ok := ce.Var.Type.(*types.Function); ok {
			return []*types.Function{sig}
		}
	}
	return nil
}

// calleeFunction resolves callee to a Function overload set,
// optionally honoring an override assignment for its Variable (used
// while checking), wrapping a bare function-typed variable value in a
// throwaway single-overload Function so call resolution has one
// uniform path regardless of whether the callee is a named function or
// a function-typed value in hand.
func calleeFunction(callee ast.Expression, assignment map[*semantic.Variable]types.DataType, scope *semantic.Scope) (*semantic.Function, bool) {
	switch ce := callee.(type) {
	case *ast.FunctionExpression:
		return ce.Func, true
	case *ast.VariableExpression:
		t := ce.Var.Type
		if assigned, ok := assignment[ce.Var]; ok {
			t = assigned
		}
		if c, ok := t.(*types.Callable); ok {
			// A variable aliasing a named overload set (`let v = f`).
			if fn, found := scope.FindFunction(c.OwnerName); found && fn.ID() == c.OwnerID {
				return fn, true
			}
			return nil, false
		}
		sig, ok := t.(*types.Function)
		if !ok {
			return nil, false
		}
		f := semantic.NewFunction(ce.Name)
		f.AddOverload(semantic.NewVariable(ce.Pos(), ce.Name, sig))
		return f, true
	}
	return nil, false
}

// Infer assigns each parameter the single type implied by its direct
// uses as a call argument; a parameter used inconsistently (implying
// more than one distinct type) is left unassigned.
func Infer(c *Constraints, scope *semantic.Scope) map[*semantic.Variable]types.DataType {
	assignment := map[*semantic.Variable]types.DataType{}
	for _, v := range c.Order {
		if cands := c.Buckets[v]; len(cands) == 1 {
			assignment[v] = cands[0]
		}
	}
	return assignment
}
