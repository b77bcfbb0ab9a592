package parser

import (
	"fmt"

	"github.com/reactor-lang/reactorc/internal/ast"
	"github.com/reactor-lang/reactorc/internal/errors"
	"github.com/reactor-lang/reactorc/internal/lexer"
	"github.com/reactor-lang/reactorc/internal/types"
)

// parseExpression is the precedence-climbing entry point: it parses a
// unary/primary/call operand, then repeatedly
// folds in binary operators whose precedence is >= minPrec,
// left-associatively (minPrec+1 on the recursive call keeps equal
// precedence left-associative).
func (p *Parser) parseExpression(minPrec int) (ast.Expression, *errors.SyntaxError) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.cur()
		prec, ok := binaryPrecedence[tok.Type]
		if !ok || prec < minPrec {
			return left, nil
		}
		p.ts.Advance()
		p.skipNewlines() // line continuation rule (b): right after a binary operator

		right, err := p.parseExpression(prec + 1)
		if err != nil {
			return nil, err
		}
		left, err = p.makeOperatorCall(tok, []ast.Expression{left, right})
		if err != nil {
			return nil, err
		}
	}
}

func (p *Parser) parseUnary() (ast.Expression, *errors.SyntaxError) {
	tok := p.cur()
	if tok.Type == lexer.MINUS || tok.Type == lexer.NOT {
		p.ts.Advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return p.makeOperatorCall(tok, []ast.Expression{operand})
	}
	return p.parseCallChain()
}

// parseCallChain parses a primary expression followed by zero or more
// postfix call applications, left-associative and tightest-binding.
func (p *Parser) parseCallChain() (ast.Expression, *errors.SyntaxError) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.cur().Type == lexer.LPAREN {
		loc := p.cur().Location
		args, err := p.parseCallArgs()
		if err != nil {
			return nil, err
		}
		expr = ast.NewCallExpression(loc, expr, args)
	}
	return expr, nil
}

func (p *Parser) parseCallArgs() ([]ast.Expression, *errors.SyntaxError) {
	p.ts.Advance() // '('
	p.skipNewlines()

	var args []ast.Expression
	for p.cur().Type != lexer.RPAREN {
		arg, err := p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		p.skipNewlines()
		if p.cur().Type == lexer.COMMA {
			p.ts.Advance()
			p.skipNewlines()
		}
	}
	if _, err := p.expectToken(lexer.RPAREN); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) parsePrimary() (ast.Expression, *errors.SyntaxError) {
	tok := p.cur()
	switch tok.Type {
	case lexer.INT:
		p.ts.Advance()
		return ast.NewLiteral(tok.Location, tok.Literal, types.Integer), nil
	case lexer.FLOAT:
		p.ts.Advance()
		return ast.NewLiteral(tok.Location, tok.Literal, types.Float), nil
	case lexer.STRING:
		p.ts.Advance()
		return ast.NewLiteral(tok.Location, tok.Literal, types.Text), nil
	case lexer.TRUE:
		p.ts.Advance()
		return ast.NewLiteral(tok.Location, "true", types.Bool), nil
	case lexer.FALSE:
		p.ts.Advance()
		return ast.NewLiteral(tok.Location, "false", types.Bool), nil
	case lexer.IDENT:
		return p.parseIdentifierExpr()
	case lexer.LPAREN:
		p.ts.Advance()
		p.skipNewlines() // line continuation rule (a): open bracket to matching close
		expr, err := p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
		p.skipNewlines()
		if _, err := p.expectToken(lexer.RPAREN); err != nil {
			return nil, err
		}
		return expr, nil
	case lexer.PENDING:
		return nil, p.newErr(errors.IncompleteInput, "input incomplete")
	default:
		return nil, p.newErr(errors.ExpressionExpected, "expected an expression, got %s", tok.Type)
	}
}

func (p *Parser) parseIdentifierExpr() (ast.Expression, *errors.SyntaxError) {
	tok := p.ts.Advance()
	name := tok.Literal
	if v, ok := p.scope.FindVariable(name); ok {
		return ast.NewVariableExpression(tok.Location, v), nil
	}
	if f, ok := p.scope.FindFunction(name); ok {
		return ast.NewFunctionExpression(tok.Location, f), nil
	}
	return nil, errors.New(errors.VariableNotFound, tok.Location, fmt.Sprintf("%q is not defined", name))
}

// makeOperatorCall desugars a binary or unary operator into a Call
// against the matching built-in overload set (see
// semantic.BuiltinScope), so operators and calls share one
// overload-resolution and translation path end to end.
func (p *Parser) makeOperatorCall(opTok lexer.Token, args []ast.Expression) (ast.Expression, *errors.SyntaxError) {
	name, ok := operatorName[opTok.Type]
	if !ok {
		return nil, errors.New(errors.ExpressionExpected, opTok.Location, fmt.Sprintf("unknown operator %s", opTok.Type))
	}
	fn, ok := p.scope.FindFunction(name)
	if !ok {
		return nil, errors.New(errors.VariableNotFound, opTok.Location, fmt.Sprintf("operator %q is not defined in scope", name))
	}
	callee := ast.NewFunctionExpression(opTok.Location, fn)
	return ast.NewCallExpression(opTok.Location, callee, args), nil
}
