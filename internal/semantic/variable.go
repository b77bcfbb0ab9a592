package semantic

import (
	"github.com/reactor-lang/reactorc/internal/ident"
	"github.com/reactor-lang/reactorc/internal/location"
	"github.com/reactor-lang/reactorc/internal/types"
)

// Variable is (location, name, type). Type is nil during parsing and
// is populated by the type checker. A Variable is owned by the scope
// that introduces it; the AST, TypeMap and Scope only ever hold
// shared references to it.
type Variable struct {
	Location location.Location
	Name     ident.Symbol
	Type     types.DataType
}

// NewVariable constructs a Variable with a possibly-nil type.
func NewVariable(loc location.Location, name ident.Symbol, typ types.DataType) *Variable {
	return &Variable{Location: loc, Name: name, Type: typ}
}
