// Package ast defines the syntax tree produced by the parser: two
// families, Expression and Statement, dispatched via tagged variants
// and type switches rather than double-dispatch visitors.
//
// Every node carries a Location. Expressions additionally carry a
// DataType slot, populated by the type checker post-parse; the AST
// itself stays otherwise immutable after parsing. The slot lives
// directly on the node since DataType is the only thing checking ever
// mutates.
package ast

import (
	"github.com/reactor-lang/reactorc/internal/location"
	"github.com/reactor-lang/reactorc/internal/types"
)

// Node is implemented by every AST node.
type Node interface {
	Pos() location.Location
}

// Expression is implemented by every expression-family node: Literal,
// VariableExpression, FunctionExpression, CallExpression,
// EnumExpression.
type Expression interface {
	Node
	exprNode()
	// Type returns the expression's data type, or nil if not yet
	// type-checked.
	Type() types.DataType
	// SetType populates the expression's data type. The type checker
	// calls it; a later call replaces the earlier type (a call's callee
	// is first typed as a Callable, then as the selected signature).
	SetType(types.DataType)
}

// Statement is implemented by every statement-family node:
// BindVariableStatement, BindFunctionStatement, BindEnumStatement,
// ExpressionStatement, TerminalStatement.
type Statement interface {
	Node
	stmtNode()
}

// exprBase factors out the Location/DataType bookkeeping shared by all
// Expression implementations.
type exprBase struct {
	Location location.Location
	dataType types.DataType
}

func (e *exprBase) Pos() location.Location   { return e.Location }
func (e *exprBase) Type() types.DataType     { return e.dataType }
func (e *exprBase) SetType(t types.DataType) { e.dataType = t }
func (*exprBase) exprNode()                  {}

// stmtBase factors out the Location bookkeeping shared by all
// Statement implementations.
type stmtBase struct {
	Location location.Location
}

func (s *stmtBase) Pos() location.Location { return s.Location }
func (*stmtBase) stmtNode()                {}
