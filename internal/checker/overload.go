package checker

import (
	"fmt"

	"github.com/reactor-lang/reactorc/internal/errors"
	"github.com/reactor-lang/reactorc/internal/location"
	"github.com/reactor-lang/reactorc/internal/semantic"
	"github.com/reactor-lang/reactorc/internal/types"
)

// candidate is one overload that matched during resolution, carrying
// the substitution it implies and its specificity (generic occurrence
// count, lower is more specific).
type candidate struct {
	overload *semantic.Variable
	subst    Subst
	generics int
}

// Resolve performs overload resolution: iterate fn's
// (already shadow-resolved) overloads in insertion order, skip any
// whose arity doesn't match, and structurally unify each remaining
// parameter type against the supplied argument type. Ties among
// matches are broken by specificity (fewest Generic occurrences) and
// then by insertion order (the first-seen match of the winning
// specificity is kept). scope resolves Callable-typed arguments (a
// named function passed as a value) to their overload sets.
func Resolve(fn *semantic.Function, argTypes []types.DataType, scope *semantic.Scope, loc location.Location) (*semantic.Variable, Subst, *errors.SyntaxError) {
	var best *candidate

	fn.Find(func(v *semantic.Variable) bool {
		sig, ok := v.Type.(*types.Function)
		if !ok || len(sig.Params) != len(argTypes) {
			return true
		}

		s := Subst{}
		matched := true
		for i, p := range sig.Params {
			var ok2 bool
			s, ok2 = unifyArg(s, p.Type, argTypes[i], scope)
			if !ok2 {
				matched = false
				break
			}
		}
		if !matched {
			return true
		}

		gc := countGenerics(sig)
		if best == nil || gc < best.generics {
			best = &candidate{overload: v, subst: s, generics: gc}
		}
		return true
	})

	if best == nil {
		return nil, nil, errors.New(errors.OverloadNotFound, loc,
			fmt.Sprintf("no overload of %q matches the given arguments", fn.Name))
	}
	return best.overload, best.subst, nil
}

// unifyArg unifies one parameter type against one argument type. A
// Callable argument (an overload set used as a value) matches where a
// Function is expected by trying each of its overload signatures in
// insertion order and taking the first that unifies — this is also how
// a Generic parameter binds to a passed function's concrete signature
// rather than to the unresolved Callable. Every other argument shape
// goes straight to structural unification.
func unifyArg(s Subst, pattern, arg types.DataType, scope *semantic.Scope) (Subst, bool) {
	if c, ok := arg.(*types.Callable); ok && scope != nil {
		if fn, found := scope.FindFunction(c.OwnerName); found && fn.ID() == c.OwnerID {
			var out Subst
			matched := false
			fn.Find(func(v *semantic.Variable) bool {
				if sig, ok := v.Type.(*types.Function); ok {
					if s2, ok2 := unify(s, pattern, sig); ok2 {
						out, matched = s2, true
						return false
					}
				}
				return true
			})
			if matched {
				return out, true
			}
		}
	}
	return unify(s, pattern, arg)
}

// countGenerics counts Generic occurrences across a signature's
// parameter and return positions; fewer occurrences means a more
// specific overload.
func countGenerics(sig *types.Function) int {
	n := 0
	for _, p := range sig.Params {
		n += countGenericsIn(p.Type)
	}
	if sig.Return != nil {
		n += countGenericsIn(sig.Return)
	}
	return n
}

func countGenericsIn(t types.DataType) int {
	switch tt := t.(type) {
	case *types.Generic:
		return 1
	case *types.Function:
		n := 0
		for _, p := range tt.Params {
			n += countGenericsIn(p.Type)
		}
		if tt.Return != nil {
			n += countGenericsIn(tt.Return)
		}
		return n
	default:
		return 0
	}
}

// Instantiate produces a concrete Function signature by applying s to
// every parameter and return type.
func Instantiate(sig *types.Function, s Subst) *types.Function {
	applied := Apply(s, sig)
	return applied.(*types.Function)
}
