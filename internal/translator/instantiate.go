package translator

import (
	"fmt"

	"github.com/reactor-lang/reactorc/internal/ast"
	"github.com/reactor-lang/reactorc/internal/checker"
	"github.com/reactor-lang/reactorc/internal/semantic"
	"github.com/reactor-lang/reactorc/internal/types"
)

// cloneAndSubstitute performs generic instantiation via AST cloning:
// given the parked generic definition and the concrete signature a
// call site resolved `overload` to, it derives the substitution (by
// unifying the parked signature against sig), then deep-copies the
// parameter list and body, rewriting every Generic type to its
// concrete binding and every parameter reference to point at a fresh,
// per-instantiation Variable.
func (t *Translator) cloneAndSubstitute(parked *ast.BindFunctionStatement, overload *semantic.Variable, sig *types.Function) ([]ast.Param, ast.Expression, error) {
	genericSig, ok := overload.Type.(*types.Function)
	if !ok {
		return nil, nil, fmt.Errorf("translator: overload %q has no function signature", overload.Name)
	}
	subst, ok := checker.Unify(genericSig, sig)
	if !ok {
		return nil, nil, fmt.Errorf("translator: %q's generic signature does not unify with %q", overload.Name, sig.Name())
	}

	varMap := make(map[*semantic.Variable]*semantic.Variable, len(parked.Params))
	clonedParams := make([]ast.Param, len(parked.Params))
	for i, p := range parked.Params {
		nv := semantic.NewVariable(p.Variable.Location, p.Variable.Name, checker.Apply(subst, p.Variable.Type))
		varMap[p.Variable] = nv
		clonedParams[i] = ast.Param{Variable: nv}
	}

	clonedBody := t.cloneExpr(parked.Body, subst, varMap)
	return clonedParams, clonedBody, nil
}

// cloneExpr deep-copies e, substituting Generic types per subst and
// rewriting references to cloned parameter variables per varMap.
// Nodes the checker recorded a call-definition for get a substituted
// copy of that definition attached to their clone, so the clone can be
// lowered by exactly the same lowerCall/lowerFuncRef logic as the
// original.
func (t *Translator) cloneExpr(e ast.Expression, subst checker.Subst, varMap map[*semantic.Variable]*semantic.Variable) ast.Expression {
	switch ex := e.(type) {
	case *ast.Literal:
		return ex

	case *ast.VariableExpression:
		v := ex.Var
		if nv, ok := varMap[v]; ok {
			v = nv
		}
		clone := ast.NewVariableExpression(ex.Pos(), v)
		t.copyDefinition(ex, clone, subst)
		return clone

	case *ast.FunctionExpression:
		clone := ast.NewFunctionExpression(ex.Pos(), ex.Func)
		t.copyDefinition(ex, clone, subst)
		return clone

	case *ast.CallExpression:
		callee := t.cloneExpr(ex.Callee, subst, varMap)
		args := make([]ast.Expression, len(ex.Args))
		for i, a := range ex.Args {
			args[i] = t.cloneExpr(a, subst, varMap)
		}
		clone := ast.NewCallExpression(ex.Pos(), callee, args)
		if ty := ex.Type(); ty != nil {
			clone.SetType(checker.Apply(subst, ty))
		}
		t.copyDefinition(ex, clone, subst)
		return clone

	case *ast.EnumExpression:
		return ex

	default:
		return ex
	}
}

// copyDefinition carries an original node's recorded FunctionDefinition
// (if any) over to its clone, with the substitution applied to the
// signature, so the clone resolves through the translator exactly as
// the original would have at this concrete instantiation.
func (t *Translator) copyDefinition(original, clone ast.Expression, subst checker.Subst) {
	def, ok := t.typeMap.ExpressionDefinition(original)
	if !ok {
		return
	}
	substituted := checker.Apply(subst, def.Signature)
	sig, ok := substituted.(*types.Function)
	if !ok {
		return
	}
	t.typeMap.SetExpressionDefinition(clone, semantic.NewFunctionDefinition(def.Overload, sig, def.Location))
}
