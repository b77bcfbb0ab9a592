package parser

import (
	"fmt"

	"github.com/reactor-lang/reactorc/internal/ast"
	"github.com/reactor-lang/reactorc/internal/errors"
	"github.com/reactor-lang/reactorc/internal/ident"
	"github.com/reactor-lang/reactorc/internal/lexer"
	"github.com/reactor-lang/reactorc/internal/location"
	"github.com/reactor-lang/reactorc/internal/semantic"
	"github.com/reactor-lang/reactorc/internal/types"
)

func (p *Parser) parseLetStatement() (ast.Statement, *errors.SyntaxError) {
	loc := p.cur().Location
	p.ts.Advance() // 'let'

	nameTok, err := p.expectToken(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	name := ident.New(nameTok.Literal)

	if p.cur().Type == lexer.LPAREN {
		return p.parseBindFunctionStatement(loc, name, nameTok.Location)
	}
	return p.parseBindVariableStatement(loc, name, nameTok.Location)
}

func (p *Parser) parseBindVariableStatement(loc location.Location, name ident.Symbol, nameLoc location.Location) (ast.Statement, *errors.SyntaxError) {
	if _, err := p.expectToken(lexer.ASSIGN); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	if p.cur().Type == lexer.PENDING {
		return nil, p.newErr(errors.IncompleteInput, "input incomplete")
	}

	if existing, ok := p.scope.FindVariableWithin(name.String()); ok {
		return nil, errors.New(errors.Redefinition, nameLoc, fmt.Sprintf("%q is already defined", name)).WithSecondary(existing.Location)
	}
	if existing, ok := p.scope.FindFunctionWithin(name.String()); ok {
		secondary := nameLoc
		if len(existing.Overloads) > 0 {
			secondary = existing.Overloads[0].Location
		}
		return nil, errors.New(errors.Redefinition, nameLoc, fmt.Sprintf("%q is already defined as a function", name)).WithSecondary(secondary)
	}

	v := semantic.NewVariable(nameLoc, name, nil)
	if err := p.scope.AddVariable(v); err != nil {
		return nil, errors.New(errors.Redefinition, nameLoc, err.Error())
	}
	return ast.NewBindVariableStatement(loc, v, expr), nil
}

func (p *Parser) parseBindFunctionStatement(loc location.Location, name ident.Symbol, nameLoc location.Location) (ast.Statement, *errors.SyntaxError) {
	enclosing := p.scope

	p.ts.Advance() // '('
	p.skipNewlines()

	p.genericIndex = map[string]*types.Generic{}
	p.nextGeneric = 0
	defer func() { p.genericIndex = nil }()

	p.pushScope() // parameter scope
	defer p.popScope()

	var params []ast.Param
	var sigParams []types.Param
	seen := map[string]bool{}

	for p.cur().Type != lexer.RPAREN {
		ptok, perr := p.expectToken(lexer.IDENT)
		if perr != nil {
			return nil, perr
		}
		if seen[ptok.Literal] {
			return nil, errors.New(errors.FunctionParameterAlreadyDefined, ptok.Location, fmt.Sprintf("parameter %q already defined", ptok.Literal))
		}
		seen[ptok.Literal] = true

		var ptype types.DataType
		if p.cur().Type == lexer.COLON {
			p.ts.Advance()
			t, terr := p.parseType()
			if terr != nil {
				return nil, terr
			}
			ptype = t
		}

		pv := semantic.NewVariable(ptok.Location, ident.New(ptok.Literal), ptype)
		if err := p.scope.AddVariable(pv); err != nil {
			return nil, errors.New(errors.FunctionParameterAlreadyDefined, ptok.Location, err.Error())
		}
		params = append(params, ast.Param{Variable: pv})
		sigParams = append(sigParams, types.Param{Name: ptok.Literal, Type: ptype})

		p.skipNewlines()
		if p.cur().Type == lexer.COMMA {
			p.ts.Advance()
			p.skipNewlines()
		}
	}
	if _, err := p.expectToken(lexer.RPAREN); err != nil {
		return nil, err
	}
	p.genericIndex = nil

	if _, err := p.expectToken(lexer.ASSIGN); err != nil {
		return nil, err
	}

	p.pushScope() // body scope
	defer p.popScope()
	body, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	if p.cur().Type == lexer.PENDING {
		return nil, p.newErr(errors.IncompleteInput, "input incomplete")
	}

	sigType := types.NewFunction(sigParams, nil) // return type is unknown until checking
	overloadVar := semantic.NewVariable(nameLoc, name, sigType)
	fn, ferr := enclosing.FunctionNamed(overloadVar)
	if ferr != nil {
		return nil, errors.New(errors.Redefinition, nameLoc, ferr.Error())
	}
	// Signature identity at parse time is the parameter list alone: the
	// binding grammar carries no return annotation (the checker fills
	// the return type in later), so two overloads collide exactly when
	// their parameter types match.
	var dup *semantic.Variable
	fn.Find(func(v *semantic.Variable) bool {
		if existing, ok := v.Type.(*types.Function); ok && sameParamTypes(existing, sigType) {
			dup = v
			return false
		}
		return true
	})
	if dup != nil {
		return nil, errors.New(errors.Redefinition, nameLoc,
			fmt.Sprintf("function %q already has an overload with this signature", name)).WithSecondary(dup.Location)
	}
	fn.AddOverload(overloadVar)

	return ast.NewBindFunctionStatement(loc, fn, overloadVar, params, body), nil
}

func sameParamTypes(a, b *types.Function) bool {
	if len(a.Params) != len(b.Params) {
		return false
	}
	for i := range a.Params {
		pa, pb := a.Params[i].Type, b.Params[i].Type
		if pa == nil || pb == nil {
			if pa != pb {
				return false
			}
			continue
		}
		if !pa.Equal(pb) {
			return false
		}
	}
	return true
}
