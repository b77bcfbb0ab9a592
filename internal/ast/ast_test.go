package ast

import (
	"testing"

	"github.com/reactor-lang/reactorc/internal/ident"
	"github.com/reactor-lang/reactorc/internal/location"
	"github.com/reactor-lang/reactorc/internal/semantic"
	"github.com/reactor-lang/reactorc/internal/types"
)

func TestLiteralTypeSlotStartsPopulatedWhenGiven(t *testing.T) {
	lit := NewLiteral(location.Global, "42", types.Integer)
	if lit.Type() == nil || !lit.Type().Equal(types.Integer) {
		t.Errorf("literal should carry its declared type")
	}
}

func TestExpressionSetTypePopulatesSlot(t *testing.T) {
	v := semantic.NewVariable(location.Global, ident.New("x"), nil)
	expr := NewVariableExpression(location.Global, v)
	if expr.Type() != nil {
		t.Fatalf("variable with nil semantic type should report nil Type()")
	}
	expr.SetType(types.Integer)
	if !expr.Type().Equal(types.Integer) {
		t.Errorf("SetType should populate the expression's type slot")
	}
}

func TestCallExpressionChildrenIncludeCalleeThenArgs(t *testing.T) {
	callee := NewVariableExpression(location.Global, semantic.NewVariable(location.Global, ident.New("f"), nil))
	arg1 := NewLiteral(location.Global, "1", types.Integer)
	arg2 := NewLiteral(location.Global, "2", types.Integer)
	call := NewCallExpression(location.Global, callee, []Expression{arg1, arg2})

	children := Children(call)
	if len(children) != 3 || children[0] != callee || children[1] != arg1 || children[2] != arg2 {
		t.Errorf("Children(call) should be [callee, arg1, arg2], got %v", children)
	}
}

func TestWalkVisitsCallAndArgumentsPreOrder(t *testing.T) {
	arg := NewLiteral(location.Global, "5", types.Integer)
	callee := NewVariableExpression(location.Global, semantic.NewVariable(location.Global, ident.New("f"), nil))
	call := NewCallExpression(location.Global, callee, []Expression{arg})

	var visited []Expression
	Walk(call, func(e Expression) bool {
		visited = append(visited, e)
		return true
	})

	if len(visited) != 3 || visited[0] != call || visited[1] != callee || visited[2] != arg {
		t.Errorf("Walk should visit call, callee, arg in that order, got %v", visited)
	}
}
