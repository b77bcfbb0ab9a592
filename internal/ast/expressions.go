package ast

import (
	"github.com/reactor-lang/reactorc/internal/ident"
	"github.com/reactor-lang/reactorc/internal/location"
	"github.com/reactor-lang/reactorc/internal/semantic"
	"github.com/reactor-lang/reactorc/internal/types"
)

// Literal is a (textual representation, data type) pair. The textual
// form is preserved verbatim as parsed; conversion to a runtime value
// happens when the literal is lowered by the translator.
type Literal struct {
	exprBase
	Text string
}

func NewLiteral(loc location.Location, text string, dt types.DataType) *Literal {
	l := &Literal{Text: text}
	l.Location = loc
	l.dataType = dt
	return l
}

// VariableExpression references a previously bound Variable (a `let`
// value, or a function parameter).
type VariableExpression struct {
	exprBase
	Name ident.Symbol
	Var  *semantic.Variable
}

func NewVariableExpression(loc location.Location, v *semantic.Variable) *VariableExpression {
	e := &VariableExpression{Name: v.Name, Var: v}
	e.Location = loc
	e.dataType = v.Type
	return e
}

// FunctionExpression references a named overload set used as a
// first-class value (e.g. passed as a function-typed argument).
type FunctionExpression struct {
	exprBase
	Name ident.Symbol
	Func *semantic.Function
}

func NewFunctionExpression(loc location.Location, f *semantic.Function) *FunctionExpression {
	e := &FunctionExpression{Name: f.Name, Func: f}
	e.Location = loc
	return e
}

// CallExpression applies callee to args. callee's type, once checked,
// is either a *types.Function (an already fully-typed value) or a
// *types.Callable (an unresolved overload set needing resolution).
type CallExpression struct {
	exprBase
	Callee Expression
	Args   []Expression
}

func NewCallExpression(loc location.Location, callee Expression, args []Expression) *CallExpression {
	c := &CallExpression{Callee: callee, Args: args}
	c.Location = loc
	return c
}

// EnumExpression references a declared enum member. Enum semantics are
// intentionally minimal; this node exists so the parser can accept
// enum member references without fully modeling enum typing.
type EnumExpression struct {
	exprBase
	EnumName   ident.Symbol
	MemberName ident.Symbol
}

func NewEnumExpression(loc location.Location, enumName, memberName ident.Symbol) *EnumExpression {
	e := &EnumExpression{EnumName: enumName, MemberName: memberName}
	e.Location = loc
	return e
}
