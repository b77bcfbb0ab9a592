package checker

import "github.com/reactor-lang/reactorc/internal/types"

// Subst maps a Generic's alpha-index to the concrete DataType it is
// bound to. Substitutions are composed and applied structurally, with
// an occurs check guarding against an infinite type — which this
// language's finite Function/Generic type grammar cannot actually
// construct, but the check costs nothing to keep.
type Subst map[int]types.DataType

// Apply substitutes every Generic occurrence in t (recursively, through
// Function parameter/return positions) with its binding in s, leaving
// unbound Generics untouched.
func Apply(s Subst, t types.DataType) types.DataType {
	switch tt := t.(type) {
	case *types.Generic:
		if bound, ok := s[tt.Index]; ok {
			return bound
		}
		return tt
	case *types.Function:
		params := make([]types.Param, len(tt.Params))
		for i, p := range tt.Params {
			params[i] = types.Param{Name: p.Name, Type: Apply(s, p.Type)}
		}
		var ret types.DataType
		if tt.Return != nil {
			ret = Apply(s, tt.Return)
		}
		return types.NewFunction(params, ret)
	default:
		return t
	}
}

// Bind extends s with index ↦ t, after an occurs check: t must not
// itself contain a Generic with the same index (an infinite type).
// Binding to an equal Generic is a no-op, not an error.
func Bind(s Subst, index int, t types.DataType) (Subst, bool) {
	if g, ok := t.(*types.Generic); ok && g.Index == index {
		return s, true
	}
	if occurs(index, t) {
		return s, false
	}
	out := make(Subst, len(s)+1)
	for k, v := range s {
		out[k] = v
	}
	out[index] = t
	return out, true
}

func occurs(index int, t types.DataType) bool {
	switch tt := t.(type) {
	case *types.Generic:
		return tt.Index == index
	case *types.Function:
		for _, p := range tt.Params {
			if occurs(index, p.Type) {
				return true
			}
		}
		return tt.Return != nil && occurs(index, tt.Return)
	default:
		return false
	}
}

// Unify computes the substitution that makes pattern (which may
// contain Generics) structurally equal to concrete (assumed
// Generic-free), starting from an empty substitution. It is exported
// so that the reactor translator can recover a generic overload's
// binding from its checker-recorded instantiated signature during
// clone-and-substitute, without re-deriving unification itself.
func Unify(pattern, concrete types.DataType) (Subst, bool) {
	return unify(Subst{}, pattern, concrete)
}

// unify attempts to extend s so that Apply(s, pattern) is structurally
// equal to concrete, where pattern may contain Generics and concrete
// is assumed Generic-free (an already-resolved argument type). It is
// the shared core of overload matching and instantiation: a Generic
// in pattern binds to concrete (consistently, if
// seen again), and any other shape must match structurally.
func unify(s Subst, pattern, concrete types.DataType) (Subst, bool) {
	if pattern == nil || concrete == nil {
		// An undeclared parameter type or an argument whose type
		// inference failed to determine; nothing unifies with it, so the
		// enclosing overload cannot match.
		return s, false
	}
	switch p := pattern.(type) {
	case *types.Generic:
		if bound, ok := s[p.Index]; ok {
			return s, bound.Equal(concrete)
		}
		return Bind(s, p.Index, concrete)
	case *types.Function:
		c, ok := concrete.(*types.Function)
		if !ok || len(c.Params) != len(p.Params) {
			return s, false
		}
		for i := range p.Params {
			var matched bool
			s, matched = unify(s, p.Params[i].Type, c.Params[i].Type)
			if !matched {
				return s, false
			}
		}
		if p.Return == nil || c.Return == nil {
			return s, p.Return == c.Return
		}
		return unify(s, p.Return, c.Return)
	default:
		return s, pattern.Equal(concrete)
	}
}
