// Package parser implements the syntactic parser: a
// precedence-climbing expression parser plus a small statement
// grammar, with scope bookkeeping as a side effect of parsing
// BindFunctionStatement parameter lists and bodies. Scope push/pop is
// balanced on every exit path, including errors.
package parser

import (
	"fmt"

	"github.com/reactor-lang/reactorc/internal/ast"
	"github.com/reactor-lang/reactorc/internal/errors"
	"github.com/reactor-lang/reactorc/internal/ident"
	"github.com/reactor-lang/reactorc/internal/lexer"
	"github.com/reactor-lang/reactorc/internal/semantic"
	"github.com/reactor-lang/reactorc/internal/types"
)

// Precedence levels, lowest to highest.
const (
	lowest int = iota
	precOr
	precAnd
	precEquality
	precRelational
	precAdditive
	precMultiplicative
	precUnary
	precCall
)

var binaryPrecedence = map[lexer.TokenType]int{
	lexer.OR:       precOr,
	lexer.AND:      precAnd,
	lexer.EQ:       precEquality,
	lexer.NEQ:      precEquality,
	lexer.LT:       precRelational,
	lexer.LE:       precRelational,
	lexer.GT:       precRelational,
	lexer.GE:       precRelational,
	lexer.PLUS:     precAdditive,
	lexer.MINUS:    precAdditive,
	lexer.ASTERISK: precMultiplicative,
	lexer.SLASH:    precMultiplicative,
}

// operatorName maps a binary/unary operator token to the built-in
// function name the parser desugars it to (see semantic.BuiltinScope).
var operatorName = map[lexer.TokenType]string{
	lexer.OR: "or", lexer.AND: "and",
	lexer.EQ: "==", lexer.NEQ: "!=",
	lexer.LT: "<", lexer.LE: "<=", lexer.GT: ">", lexer.GE: ">=",
	lexer.PLUS: "+", lexer.MINUS: "-",
	lexer.ASTERISK: "*", lexer.SLASH: "/",
	lexer.NOT: "not",
}

// Parser is the syntactic parser: a token cursor plus a scope stack.
// Construct with New, providing the global scope (typically
// semantic.BuiltinScope()).
type Parser struct {
	ts    *TokenStream
	scope *semantic.Scope

	// genericIndex is non-nil while parsing one BindFunctionStatement's
	// signature (parameter types, including nested function types'
	// parameters and return types): it assigns each backtick-name a monotonic index
	// starting from 0, shared across every occurrence within that one
	// signature.
	genericIndex map[string]*types.Generic
	nextGeneric  int
}

// New constructs a Parser over ts, with global as the root scope that
// top-level statements are added to.
func New(ts *TokenStream, global *semantic.Scope) *Parser {
	return &Parser{ts: ts, scope: global}
}

// Feed appends more tokens to the underlying stream.
func (p *Parser) Feed(tokens []lexer.Token) { p.ts.Feed(tokens) }

func (p *Parser) cur() lexer.Token { return p.ts.Current() }

func (p *Parser) pushScope() {
	p.scope = semantic.NewScope(p.scope)
}

func (p *Parser) popScope() {
	if parent := p.scope.Parent(); parent != nil {
		p.scope = parent
	}
}

// newErr builds a *errors.SyntaxError at the current token's location.
func (p *Parser) newErr(code errors.Code, format string, args ...interface{}) *errors.SyntaxError {
	return errors.New(code, p.cur().Location, fmt.Sprintf(format, args...))
}

func (p *Parser) expectToken(t lexer.TokenType) (lexer.Token, *errors.SyntaxError) {
	cur := p.cur()
	if cur.Type == lexer.PENDING {
		return lexer.Token{}, p.newErr(errors.IncompleteInput, "expected %s, input incomplete", t)
	}
	if cur.Type != t {
		return lexer.Token{}, p.newErr(errors.MissingToken, "expected %s, got %s", t, cur.Type)
	}
	return p.ts.Advance(), nil
}

// skipNewlines consumes zero or more NEWLINE tokens (used at statement
// boundaries and in the two line-continuation contexts: immediately
// inside an open bracket, and right after a binary operator).
func (p *Parser) skipNewlines() {
	for p.cur().Type == lexer.NEWLINE {
		p.ts.Advance()
	}
}

// ParseNode returns the next top-level statement/expression or the
// terminal marker at end-of-input, advancing the cursor past trailing
// newlines. It returns a *errors.SyntaxError on parse failure. An
// INCOMPLETE_INPUT failure leaves the cursor at the statement's start,
// so the same statement parses afresh once more tokens are fed; after
// any other failure the cursor position within the failed statement is
// unspecified.
func (p *Parser) ParseNode() (ast.Statement, *errors.SyntaxError) {
	p.skipNewlines()
	if p.cur().Type == lexer.PENDING {
		return nil, p.newErr(errors.IncompleteInput, "input incomplete")
	}
	if p.cur().Type == lexer.EOF {
		return ast.NewTerminalStatement(p.cur().Location), nil
	}

	// A statement is not consumed until its terminator is available: on
	// a recoverable incomplete-input error the cursor rewinds to the
	// statement's start, so the caller can Feed more tokens and retry.
	mark := p.ts.Mark()
	stmt, err := p.parseStatement()
	if err != nil {
		if err.Code == errors.IncompleteInput {
			p.ts.ResetTo(mark)
		}
		return nil, err
	}
	if err := p.expectTerminator(); err != nil {
		if err.Code == errors.IncompleteInput {
			p.ts.ResetTo(mark)
		}
		return nil, err
	}
	return stmt, nil
}

// expectTerminator enforces that a statement is followed by
// end-of-input or at least one new-line.
func (p *Parser) expectTerminator() *errors.SyntaxError {
	switch p.cur().Type {
	case lexer.EOF:
		return nil
	case lexer.NEWLINE:
		p.skipNewlines()
		return nil
	case lexer.PENDING:
		return p.newErr(errors.IncompleteInput, "input incomplete")
	default:
		return p.newErr(errors.NewLineExpected, "expected a new line after statement, got %s", p.cur().Type)
	}
}

func (p *Parser) parseStatement() (ast.Statement, *errors.SyntaxError) {
	if p.cur().Type == lexer.LET {
		return p.parseLetStatement()
	}
	if p.cur().Type == lexer.ENUM {
		return p.parseEnumStatement()
	}
	loc := p.cur().Location
	expr, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	return ast.NewExpressionStatement(loc, expr), nil
}

func (p *Parser) parseEnumStatement() (ast.Statement, *errors.SyntaxError) {
	loc := p.cur().Location
	p.ts.Advance() // 'enum'
	nameTok, err := p.expectToken(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expectToken(lexer.LCURLY); err != nil {
		return nil, err
	}
	p.skipNewlines()
	var members []ident.Symbol
	for p.cur().Type == lexer.IDENT {
		members = append(members, ident.New(p.ts.Advance().Literal))
		p.skipNewlines()
		if p.cur().Type == lexer.COMMA {
			p.ts.Advance()
			p.skipNewlines()
		}
	}
	if _, err := p.expectToken(lexer.RCURLY); err != nil {
		return nil, err
	}
	return ast.NewBindEnumStatement(loc, ident.New(nameTok.Literal), members), nil
}
