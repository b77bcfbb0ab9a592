package semantic

import (
	"fmt"

	"github.com/reactor-lang/reactorc/internal/types"
)

// Scope is a nested dictionary indexed by name, owning Variables,
// Functions (overload sets), FunctionDefinitions and named DataTypes
// (built-in scalars, type aliases, generics bound in a function's
// parameter scope). A scope has an optional parent; lookup falls back
// to the parent unless noted otherwise.
type Scope struct {
	parent *Scope

	variables map[string]*Variable
	functions map[string]*Function
	callables map[string]*types.Callable
	typeNames map[string]types.DataType
	defs      map[*Variable]*FunctionDefinition
}

// NewScope creates a scope with the given optional parent (nil for the
// root/built-in scope).
func NewScope(parent *Scope) *Scope {
	return &Scope{
		parent:    parent,
		variables: map[string]*Variable{},
		functions: map[string]*Function{},
		callables: map[string]*types.Callable{},
		typeNames: map[string]types.DataType{},
		defs:      map[*Variable]*FunctionDefinition{},
	}
}

// Parent returns the enclosing scope, or nil for the root scope.
func (s *Scope) Parent() *Scope { return s.parent }

// AddVariable binds name to v in this scope. It fails if the name is
// already bound, in this scope, to a Function (an incompatible kind).
func (s *Scope) AddVariable(v *Variable) error {
	name := v.Name.String()
	if _, ok := s.functions[name]; ok {
		return fmt.Errorf("%q is already bound to a function in this scope", name)
	}
	s.variables[name] = v
	return nil
}

// FindVariable performs recursive (scope-to-root) lookup of a variable
// by name.
func (s *Scope) FindVariable(name string) (*Variable, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if v, ok := sc.variables[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// FindVariableWithin performs non-recursive lookup within this scope
// only.
func (s *Scope) FindVariableWithin(name string) (*Variable, bool) {
	v, ok := s.variables[name]
	return v, ok
}

// FunctionNamed returns the Function bound to name in this scope,
// creating it if absent, or an error if the name is bound to a
// Variable in this scope.
func (s *Scope) FunctionNamed(v *Variable) (*Function, error) {
	name := v.Name.String()
	if _, ok := s.variables[name]; ok {
		return nil, fmt.Errorf("%q is already bound to a variable in this scope", name)
	}
	if f, ok := s.functions[name]; ok {
		return f, nil
	}
	f := NewFunction(v.Name)
	s.functions[name] = f
	return f, nil
}

// FindFunctionWithin looks up a Function overload set by name,
// non-recursively.
func (s *Scope) FindFunctionWithin(name string) (*Function, bool) {
	f, ok := s.functions[name]
	return f, ok
}

// FindFunction performs recursive overload-set lookup honoring
// shadowing: walking outward from this scope, the first scope that
// binds ANY Function to name wins outright — its overload set is
// returned in full, and outer scopes' overloads of the same name are
// not unioned in. Built-ins (bound in the root scope) remain visible
// exactly when no nearer scope shadows the name.
func (s *Scope) FindFunction(name string) (*Function, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if f, ok := sc.functions[name]; ok {
			return f, true
		}
	}
	return nil, false
}

// ForEachOverload walks the (possibly shadowed) overload set for name
// as FindFunction would select it, calling visit for each overload in
// insertion order. Iteration stops early when visit returns false.
func (s *Scope) ForEachOverload(name string, visit func(*Variable) bool) {
	f, ok := s.FindFunction(name)
	if !ok {
		return
	}
	f.Find(visit)
}

// AddDefinition records the FunctionDefinition for a specific overload
// Variable. At most one definition may be stored per overload
// Variable in a given scope.
func (s *Scope) AddDefinition(def *FunctionDefinition) {
	s.defs[def.Overload] = def
}

// FindDefinition performs recursive lookup of the FunctionDefinition
// installed for a given overload Variable.
func (s *Scope) FindDefinition(overload *Variable) (*FunctionDefinition, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if d, ok := sc.defs[overload]; ok {
			return d, true
		}
	}
	return nil, false
}

// AddCallable records the Callable type standing in for a Function's
// name, so that repeated references to the same overload set as a
// value reuse one Callable type instance (by value: Callable.Equal
// compares OwnerID, so reuse is for efficiency, not correctness).
func (s *Scope) AddCallable(name string, c *types.Callable) {
	s.callables[name] = c
}

// FindCallable performs recursive lookup of a name's Callable type.
func (s *Scope) FindCallable(name string) (*types.Callable, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if c, ok := sc.callables[name]; ok {
			return c, true
		}
	}
	return nil, false
}

// AddType binds name (e.g. "Int", "Bool", or a backtick generic name
// within a function's parameter scope) to a DataType.
func (s *Scope) AddType(name string, t types.DataType) {
	s.typeNames[name] = t
}

// FindType performs recursive lookup of a named DataType.
func (s *Scope) FindType(name string) (types.DataType, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if t, ok := sc.typeNames[name]; ok {
			return t, true
		}
	}
	return nil, false
}
