package checker

import (
	"github.com/reactor-lang/reactorc/internal/ast"
	"github.com/reactor-lang/reactorc/internal/semantic"
)

// TypeMap is the checker's side table: which FunctionDefinition was
// selected for a BindFunctionStatement or a Call/argument expression,
// and which Functions already have a Callable installed. Expression
// and Variable types themselves live directly on the node (exprBase's
// Type/SetType, Variable.Type) rather than in a parallel map; the AST's
// shape never changes during checking, only the per-node type slot.
type TypeMap struct {
	stmtDefs  map[*ast.BindFunctionStatement]*semantic.FunctionDefinition
	exprDefs  map[ast.Expression]*semantic.FunctionDefinition
	callables map[int]bool
}

// NewTypeMap constructs an empty TypeMap.
func NewTypeMap() *TypeMap {
	return &TypeMap{
		stmtDefs:  map[*ast.BindFunctionStatement]*semantic.FunctionDefinition{},
		exprDefs:  map[ast.Expression]*semantic.FunctionDefinition{},
		callables: map[int]bool{},
	}
}

// SetStatementDefinition records the FunctionDefinition installed for
// a BindFunctionStatement.
func (tm *TypeMap) SetStatementDefinition(stmt *ast.BindFunctionStatement, def *semantic.FunctionDefinition) {
	tm.stmtDefs[stmt] = def
}

// StatementDefinition returns the FunctionDefinition for a previously
// checked BindFunctionStatement.
func (tm *TypeMap) StatementDefinition(stmt *ast.BindFunctionStatement) (*semantic.FunctionDefinition, bool) {
	d, ok := tm.stmtDefs[stmt]
	return d, ok
}

// SetExpressionDefinition records the FunctionDefinition selected for
// a Call expression or one of its argument sub-expressions.
func (tm *TypeMap) SetExpressionDefinition(expr ast.Expression, def *semantic.FunctionDefinition) {
	tm.exprDefs[expr] = def
}

// ExpressionDefinition returns the FunctionDefinition recorded for an
// expression, if any.
func (tm *TypeMap) ExpressionDefinition(expr ast.Expression) (*semantic.FunctionDefinition, bool) {
	d, ok := tm.exprDefs[expr]
	return d, ok
}

// HasCallable reports whether a Callable has already been installed
// (in both this TypeMap and the owning scope) for the Function
// identified by functionID.
func (tm *TypeMap) HasCallable(functionID int) bool {
	return tm.callables[functionID]
}

// MarkCallableInstalled records that a Callable now exists for
// functionID.
func (tm *TypeMap) MarkCallableInstalled(functionID int) {
	tm.callables[functionID] = true
}
