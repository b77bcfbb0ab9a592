package semantic

import (
	"github.com/reactor-lang/reactorc/internal/ident"
	"github.com/reactor-lang/reactorc/internal/types"
)

// idCounter hands out stable arena indices for Function (overload set)
// values. The compiler pipeline is single-threaded, so a plain counter
// is sufficient; no atomic is needed.
var idCounter int

func nextID() int {
	idCounter++
	return idCounter
}

// Function is an overload set keyed by name: a list of Variable
// entries, each one overload signature whose Type is a *types.Function.
// Ordering of overloads is insertion order.
//
// Function owns its overload Variables; a Variable's type may in turn
// hold a *types.Callable back-reference to this Function by arena
// index (ID), never by pointer — this is what keeps the
// Function<->Variable<->Callable graph acyclic.
type Function struct {
	id        int
	Name      ident.Symbol
	Overloads []*Variable
}

// NewFunction creates an empty overload set for name.
func NewFunction(name ident.Symbol) *Function {
	return &Function{id: nextID(), Name: name}
}

// ID returns the Function's stable arena index.
func (f *Function) ID() int { return f.id }

// Callable returns the Callable type representing this overload set
// used as a first-class value.
func (f *Function) Callable() *types.Callable {
	return types.NewCallable(f.id, f.Name.String())
}

// AddOverload inserts v into the overload set. It fails (returns
// false) if a structurally equal signature is already present; the
// set is otherwise strictly growing.
func (f *Function) AddOverload(v *Variable) bool {
	sig, ok := v.Type.(*types.Function)
	if !ok {
		return false
	}
	for _, existing := range f.Overloads {
		if es, ok := existing.Type.(*types.Function); ok && es.Equal(sig) {
			return false
		}
	}
	f.Overloads = append(f.Overloads, v)
	return true
}

// Find iterates the overload set in insertion order, calling visit for
// each overload. Iteration stops early when visit returns false.
func (f *Function) Find(visit func(*Variable) bool) {
	for _, v := range f.Overloads {
		if !visit(v) {
			return
		}
	}
}
