// Package types implements the source language's data types: the
// built-in scalars, function types, the callable (unresolved overload
// set) type, and generic type variables.
//
// A DataType always has a stable string Name; callers may use that
// name as a hash key. Two DataTypes compare equal via Equal, which is
// structural for Function and Generic and by-kind for Scalar.
package types

import (
	"fmt"
	"strings"
)

// DataType is the common interface implemented by every type variant:
// Scalar, *Function, *Callable, *Generic.
type DataType interface {
	// Name returns a stable, human-readable name for the type.
	Name() string
	// Equal reports structural equality with another DataType.
	Equal(DataType) bool
}

// ScalarKind distinguishes the four built-in scalar types.
type ScalarKind int

const (
	BoolKind ScalarKind = iota
	IntegerKind
	FloatKind
	TextKind
)

// Scalar is a built-in scalar type. Each kind has exactly one
// instance; equality is by kind (equivalently, by identity, since the
// package only ever hands out the singletons below).
type Scalar struct {
	kind ScalarKind
	name string
}

func (s *Scalar) Name() string { return s.name }

func (s *Scalar) Equal(o DataType) bool {
	os, ok := o.(*Scalar)
	return ok && os.kind == s.kind
}

// Singleton scalar types. Callers compare types with Equal, not `==`,
// but these are the only instances ever constructed.
var (
	Bool    = &Scalar{kind: BoolKind, name: "Bool"}
	Integer = &Scalar{kind: IntegerKind, name: "Integer"}
	Float   = &Scalar{kind: FloatKind, name: "Float"}
	Text    = &Scalar{kind: TextKind, name: "Text"}
)

// Param is one parameter of a Function type: a name (carried for
// diagnostics only, not part of equality) and a type.
type Param struct {
	Name string
	Type DataType
}

// Function is a function type: an ordered parameter list plus a
// return type. Equality is structural over parameter types and return
// type; parameter names are ignored.
type Function struct {
	Params []Param
	Return DataType
}

func NewFunction(params []Param, ret DataType) *Function {
	return &Function{Params: params, Return: ret}
}

func (f *Function) Name() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		if p.Name != "" {
			parts[i] = fmt.Sprintf("%s: %s", p.Name, p.Type.Name())
		} else {
			parts[i] = p.Type.Name()
		}
	}
	ret := "Void"
	if f.Return != nil {
		ret = f.Return.Name()
	}
	return fmt.Sprintf("(%s) -> %s", strings.Join(parts, ", "), ret)
}

// Equal is structural: same arity, each parameter type structurally
// equal (Generics compare by alpha-index, see Generic.Equal), and
// equal return types.
func (f *Function) Equal(o DataType) bool {
	of, ok := o.(*Function)
	if !ok {
		return false
	}
	if len(f.Params) != len(of.Params) {
		return false
	}
	for i := range f.Params {
		if !f.Params[i].Type.Equal(of.Params[i].Type) {
			return false
		}
	}
	if f.Return == nil || of.Return == nil {
		return f.Return == of.Return
	}
	return f.Return.Equal(of.Return)
}

// Callable is the type of a named function used as a first-class
// value: the unresolved overload set. It carries a back-reference to
// the owning overload set by arena index, not by pointer, so that the
// Function(overload set)/Variable ownership graph (see
// internal/semantic) never forms a reference cycle through Callable.
//
// Equality is by identity of the referenced overload set (OwnerID).
type Callable struct {
	OwnerID   int
	OwnerName string
}

func NewCallable(ownerID int, ownerName string) *Callable {
	return &Callable{OwnerID: ownerID, OwnerName: ownerName}
}

func (c *Callable) Name() string { return c.OwnerName }

func (c *Callable) Equal(o DataType) bool {
	oc, ok := o.(*Callable)
	return ok && oc.OwnerID == c.OwnerID
}

// Generic is a placeholder type variable, identified by a display name
// (conventionally backtick-prefixed, e.g. "`T") and an integer index
// used for alpha-equivalence during unification. Two Generics are
// equal iff their indices are equal, regardless of display name.
type Generic struct {
	DisplayName string
	Index       int
}

func NewGeneric(displayName string, index int) *Generic {
	return &Generic{DisplayName: displayName, Index: index}
}

func (g *Generic) Name() string { return g.DisplayName }

func (g *Generic) Equal(o DataType) bool {
	og, ok := o.(*Generic)
	return ok && og.Index == g.Index
}

// IsGeneric reports whether t is itself a Generic type variable. It
// does not look inside Function types; ContainsGeneric does.
func IsGeneric(t DataType) bool {
	_, ok := t.(*Generic)
	return ok
}

// ContainsGeneric reports whether t is, or structurally contains, any
// Generic type variable.
func ContainsGeneric(t DataType) bool {
	switch tt := t.(type) {
	case *Generic:
		return true
	case *Function:
		for _, p := range tt.Params {
			if ContainsGeneric(p.Type) {
				return true
			}
		}
		if tt.Return != nil && ContainsGeneric(tt.Return) {
			return true
		}
		return false
	default:
		return false
	}
}
