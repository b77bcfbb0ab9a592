package parser

import "github.com/reactor-lang/reactorc/internal/lexer"

// TokenStream is a random-access, incrementally-fed token cursor: the
// contract the parser consumes. Tokens may be appended after
// construction via Feed, to support feeding a source file's tokens in
// pieces.
type TokenStream struct {
	tokens []lexer.Token
	pos    int
	final  bool
}

// NewTokenStream wraps a fully-tokenized slice (final=true: Current()
// past the end reports EOF, never PENDING).
func NewTokenStream(tokens []lexer.Token) *TokenStream {
	return &TokenStream{tokens: tokens, final: true}
}

// NewIncrementalTokenStream starts an empty, not-yet-final stream.
// Feed appends tokens as they arrive; call MarkFinal once the last
// real EOF token has been fed.
func NewIncrementalTokenStream() *TokenStream {
	return &TokenStream{}
}

// Feed appends newly-available tokens to the stream.
func (ts *TokenStream) Feed(tokens []lexer.Token) {
	ts.tokens = append(ts.tokens, tokens...)
}

// MarkFinal declares that no more tokens will ever be fed: reading
// past the end now means genuine end-of-input, not a pending refill.
func (ts *TokenStream) MarkFinal() { ts.final = true }

// Current returns the token at the cursor. Past the end of a
// non-final stream it returns a PENDING token (more input may still be
// fed); past the end of a final stream it returns EOF.
func (ts *TokenStream) Current() lexer.Token {
	return ts.Peek(0)
}

// Peek returns the token `offset` positions ahead of the cursor
// without consuming anything.
func (ts *TokenStream) Peek(offset int) lexer.Token {
	idx := ts.pos + offset
	if idx < len(ts.tokens) {
		return ts.tokens[idx]
	}
	if ts.final {
		if len(ts.tokens) > 0 {
			return lexer.Token{Type: lexer.EOF, Location: ts.tokens[len(ts.tokens)-1].Location}
		}
		return lexer.Token{Type: lexer.EOF}
	}
	return lexer.Token{Type: lexer.PENDING}
}

// Advance moves the cursor forward by one token and returns the token
// that was current before advancing.
func (ts *TokenStream) Advance() lexer.Token {
	tok := ts.Current()
	if ts.pos < len(ts.tokens) {
		ts.pos++
	}
	return tok
}

// Remaining reports how many tokens remain available (not PENDING) at
// or after the cursor.
func (ts *TokenStream) Remaining() int {
	if len(ts.tokens)-ts.pos < 0 {
		return 0
	}
	return len(ts.tokens) - ts.pos
}

// Mark returns a lightweight position snapshot for backtracking.
func (ts *TokenStream) Mark() int { return ts.pos }

// ResetTo rewinds the cursor to a previously-Marked position.
func (ts *TokenStream) ResetTo(mark int) { ts.pos = mark }
