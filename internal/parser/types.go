package parser

import (
	"github.com/reactor-lang/reactorc/internal/errors"
	"github.com/reactor-lang/reactorc/internal/lexer"
	"github.com/reactor-lang/reactorc/internal/types"
)

// parseType parses a type annotation: a bare name resolved
// against the scope's type table, a backtick-prefixed generic name
// scoped to the enclosing function signature, or a parenthesized
// function-type literal "(params) -> Return" — function parameter
// types may themselves be function types.
func (p *Parser) parseType() (types.DataType, *errors.SyntaxError) {
	tok := p.cur()

	if tok.Type == lexer.BACKTICK_IDENT {
		p.ts.Advance()
		return p.genericFor(tok.Literal), nil
	}

	if tok.Type == lexer.LPAREN {
		return p.parseFunctionType()
	}

	if tok.Type == lexer.IDENT {
		p.ts.Advance()
		t, ok := p.scope.FindType(tok.Literal)
		if !ok {
			return nil, errors.New(errors.ExpressionExpected, tok.Location, "unknown type "+tok.Literal)
		}
		return t, nil
	}

	return nil, p.newErr(errors.ExpressionExpected, "expected a type, got %s", tok.Type)
}

// genericFor returns the Generic bound to a backtick-name within the
// current function signature, assigning it a fresh monotonic index
// the first time the name is seen and reusing it on every later
// occurrence in the same signature.
func (p *Parser) genericFor(name string) *types.Generic {
	if p.genericIndex == nil {
		p.genericIndex = map[string]*types.Generic{}
	}
	if g, ok := p.genericIndex[name]; ok {
		return g
	}
	g := types.NewGeneric(name, p.nextGeneric)
	p.nextGeneric++
	p.genericIndex[name] = g
	return g
}

func (p *Parser) parseFunctionType() (types.DataType, *errors.SyntaxError) {
	p.ts.Advance() // '('
	p.skipNewlines()

	var params []types.Param
	for p.cur().Type != lexer.RPAREN {
		nameTok, err := p.expectToken(lexer.IDENT)
		if err != nil {
			return nil, err
		}
		name := nameTok.Literal
		var ptype types.DataType
		if p.cur().Type == lexer.COLON {
			p.ts.Advance()
			t, terr := p.parseType()
			if terr != nil {
				return nil, terr
			}
			ptype = t
		}
		params = append(params, types.Param{Name: name, Type: ptype})

		p.skipNewlines()
		if p.cur().Type == lexer.COMMA {
			p.ts.Advance()
			p.skipNewlines()
		}
	}
	if _, err := p.expectToken(lexer.RPAREN); err != nil {
		return nil, err
	}
	if _, err := p.expectToken(lexer.ARROW); err != nil {
		return nil, err
	}
	ret, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return types.NewFunction(params, ret), nil
}
