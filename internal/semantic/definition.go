package semantic

import (
	"github.com/reactor-lang/reactorc/internal/location"
	"github.com/reactor-lang/reactorc/internal/types"
)

// FunctionDefinition binds a specific overload (a Variable within an
// overload set) to a Function-typed signature and a source location.
// A scope stores at most one definition per overload variable.
type FunctionDefinition struct {
	Overload  *Variable
	Signature *types.Function
	Location  location.Location
}

func NewFunctionDefinition(overload *Variable, sig *types.Function, loc location.Location) *FunctionDefinition {
	return &FunctionDefinition{Overload: overload, Signature: sig, Location: loc}
}
