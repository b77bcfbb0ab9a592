package ast

import (
	"github.com/reactor-lang/reactorc/internal/ident"
	"github.com/reactor-lang/reactorc/internal/location"
	"github.com/reactor-lang/reactorc/internal/semantic"
)

// BindVariableStatement is `let name = expr`.
type BindVariableStatement struct {
	stmtBase
	Variable *semantic.Variable
	Expr     Expression
}

func NewBindVariableStatement(loc location.Location, v *semantic.Variable, expr Expression) *BindVariableStatement {
	return &BindVariableStatement{stmtBase: stmtBase{Location: loc}, Variable: v, Expr: expr}
}

// Param is one declared function parameter: the Variable introduced
// into the function's parameter scope.
type Param struct {
	Variable *semantic.Variable
}

// BindFunctionStatement is `let name(params) = body`. Function is the
// overload set name is bound to; Overload is the specific Variable
// (within that overload set) this statement defines.
type BindFunctionStatement struct {
	stmtBase
	Function *semantic.Function
	Overload *semantic.Variable
	Params   []Param
	Body     Expression
}

func NewBindFunctionStatement(loc location.Location, f *semantic.Function, overload *semantic.Variable, params []Param, body Expression) *BindFunctionStatement {
	return &BindFunctionStatement{stmtBase: stmtBase{Location: loc}, Function: f, Overload: overload, Params: params, Body: body}
}

// BindEnumStatement declares an enumeration. Semantics beyond parsing
// are intentionally minimal.
type BindEnumStatement struct {
	stmtBase
	Name    ident.Symbol
	Members []ident.Symbol
}

func NewBindEnumStatement(loc location.Location, name ident.Symbol, members []ident.Symbol) *BindEnumStatement {
	return &BindEnumStatement{stmtBase: stmtBase{Location: loc}, Name: name, Members: members}
}

// ExpressionStatement is a bare top-level expression (no `let`
// binding). It exists so that statement-terminator rules apply
// uniformly to bindings and bare expressions alike.
type ExpressionStatement struct {
	stmtBase
	Expr Expression
}

func NewExpressionStatement(loc location.Location, expr Expression) *ExpressionStatement {
	return &ExpressionStatement{stmtBase: stmtBase{Location: loc}, Expr: expr}
}

// TerminalStatement marks end-of-input.
type TerminalStatement struct {
	stmtBase
}

func NewTerminalStatement(loc location.Location) *TerminalStatement {
	return &TerminalStatement{stmtBase: stmtBase{Location: loc}}
}
