package semantic

import (
	"github.com/reactor-lang/reactorc/internal/ident"
	"github.com/reactor-lang/reactorc/internal/location"
	"github.com/reactor-lang/reactorc/internal/types"
)

// BuiltinScope constructs the root scope: Bool/Integer/Float/Text type
// names, the built-in overload sets for add, chain, print, count, fold,
// first and multiply, and a matching built-in overload set for every
// operator symbol the parser desugars to a call.
func BuiltinScope() *Scope {
	root := NewScope(nil)

	root.AddType("Bool", types.Bool)
	root.AddType("Integer", types.Integer)
	root.AddType("Int", types.Integer)
	root.AddType("Float", types.Float)
	root.AddType("Text", types.Text)
	root.AddType("String", types.Text)

	registerArith(root, "+")
	registerArith(root, "-")
	registerArith(root, "*")
	registerArith(root, "/")
	registerOverload(root, "-", []types.Param{{Name: "x", Type: types.Integer}}, types.Integer)
	registerOverload(root, "-", []types.Param{{Name: "x", Type: types.Float}}, types.Float)
	registerCompare(root, "==")
	registerCompare(root, "!=")
	registerCompare(root, "<")
	registerCompare(root, "<=")
	registerCompare(root, ">")
	registerCompare(root, ">=")
	registerBoolBinary(root, "and")
	registerBoolBinary(root, "or")
	registerNot(root)

	registerOverload(root, "add", []types.Param{{Name: "x", Type: types.Integer}, {Name: "y", Type: types.Integer}}, types.Integer)
	registerOverload(root, "add", []types.Param{{Name: "x", Type: types.Float}, {Name: "y", Type: types.Float}}, types.Float)
	registerOverload(root, "multiply", []types.Param{{Name: "x", Type: types.Integer}, {Name: "y", Type: types.Integer}}, types.Integer)
	registerOverload(root, "multiply", []types.Param{{Name: "x", Type: types.Float}, {Name: "y", Type: types.Float}}, types.Float)

	// chain(x: `T, y: `T) -> `T: one generic overload per call site, the
	// index is local to this registration (unification is by structural
	// equality of the argument types actually supplied at a call site,
	// not by this particular index value).
	{
		g := types.NewGeneric("`T", 0)
		registerOverload(root, "chain", []types.Param{{Name: "x", Type: g}, {Name: "y", Type: g}}, g)
	}
	// fold(seed: `T, step: (acc: `T, next: `T) -> `T) -> `T
	{
		g := types.NewGeneric("`T", 0)
		step := types.NewFunction([]types.Param{{Name: "acc", Type: g}, {Name: "next", Type: g}}, g)
		registerOverload(root, "fold", []types.Param{{Name: "seed", Type: g}, {Name: "step", Type: step}}, g)
	}
	// count(x: `T) -> Integer
	{
		g := types.NewGeneric("`T", 0)
		registerOverload(root, "count", []types.Param{{Name: "x", Type: g}}, types.Integer)
	}
	// print(x: T) -> T for each scalar T, covering Bool as well even
	// though the operation is usually shown over the numeric/text
	// scalars only.
	for _, st := range []types.DataType{types.Bool, types.Integer, types.Float, types.Text} {
		registerOverload(root, "print", []types.Param{{Name: "x", Type: st}}, st)
	}
	// first(x: `T) -> `T: a single-value reactor over x's current value,
	// exposed as an ordinary builtin so source programs can use it too.
	{
		g := types.NewGeneric("`T", 0)
		registerOverload(root, "first", []types.Param{{Name: "x", Type: g}}, g)
	}

	return root
}

func registerOverload(root *Scope, name string, params []types.Param, ret types.DataType) {
	sym := ident.New(name)
	v := NewVariable(location.Global, sym, types.NewFunction(params, ret))
	f, err := root.FunctionNamed(v)
	if err != nil {
		panic(err) // builtin registration never conflicts; a panic here is a programming error
	}
	f.AddOverload(v)
	if _, ok := root.FindCallable(name); !ok {
		root.AddCallable(name, f.Callable())
	}
}

func registerArith(root *Scope, op string) {
	registerOverload(root, op, []types.Param{{Name: "x", Type: types.Integer}, {Name: "y", Type: types.Integer}}, types.Integer)
	registerOverload(root, op, []types.Param{{Name: "x", Type: types.Float}, {Name: "y", Type: types.Float}}, types.Float)
}

func registerCompare(root *Scope, op string) {
	registerOverload(root, op, []types.Param{{Name: "x", Type: types.Integer}, {Name: "y", Type: types.Integer}}, types.Bool)
	registerOverload(root, op, []types.Param{{Name: "x", Type: types.Float}, {Name: "y", Type: types.Float}}, types.Bool)
	registerOverload(root, op, []types.Param{{Name: "x", Type: types.Text}, {Name: "y", Type: types.Text}}, types.Bool)
}

func registerBoolBinary(root *Scope, op string) {
	registerOverload(root, op, []types.Param{{Name: "x", Type: types.Bool}, {Name: "y", Type: types.Bool}}, types.Bool)
}

func registerNot(root *Scope) {
	registerOverload(root, "not", []types.Param{{Name: "x", Type: types.Bool}}, types.Bool)
}
