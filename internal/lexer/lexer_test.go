package lexer

import "testing"

func tokenTypes(toks []Token) []TokenType {
	var out []TokenType
	for _, t := range toks {
		out = append(out, t.Type)
	}
	return out
}

func TestKeywordVersusIdentifier(t *testing.T) {
	if typ, ok := LookupKeyword("let"); !ok || typ != LET {
		t.Errorf("LookupKeyword(\"let\") should be LET")
	}
	if _, ok := LookupKeyword("lets"); ok {
		t.Errorf("LookupKeyword(\"lets\") should not match a keyword")
	}
}

func TestIdentifierStopsAtNonIdentChar(t *testing.T) {
	toks := New("t", "let+").Tokenize()
	if toks[0].Type != LET {
		t.Fatalf("expected LET token for 'let' prefix of 'let+', got %v", toks[0].Type)
	}
	if toks[1].Type != PLUS {
		t.Fatalf("expected PLUS after 'let', got %v", toks[1].Type)
	}
}

func TestBasicProgramTokenizes(t *testing.T) {
	toks := New("t", "let x = 1 + 2").Tokenize()
	want := []TokenType{LET, IDENT, ASSIGN, INT, PLUS, INT, EOF}
	got := tokenTypes(toks)
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFloatRequiresDigitAfterDot(t *testing.T) {
	toks := New("t", "1.5").Tokenize()
	if toks[0].Type != FLOAT || toks[0].Literal != "1.5" {
		t.Errorf("expected FLOAT 1.5, got %v %q", toks[0].Type, toks[0].Literal)
	}
}

func TestStringLiteral(t *testing.T) {
	toks := New("t", `"hello world"`).Tokenize()
	if toks[0].Type != STRING || toks[0].Literal != "hello world" {
		t.Errorf("expected STRING 'hello world', got %v %q", toks[0].Type, toks[0].Literal)
	}
}

func TestBacktickGenericIdent(t *testing.T) {
	toks := New("t", "`T").Tokenize()
	if toks[0].Type != BACKTICK_IDENT || toks[0].Literal != "`T" {
		t.Errorf("expected BACKTICK_IDENT `T, got %v %q", toks[0].Type, toks[0].Literal)
	}
}

func TestNewlineIsSignificantToken(t *testing.T) {
	toks := New("t", "let x = 1\nlet y = 2").Tokenize()
	var sawNewline bool
	for _, tok := range toks {
		if tok.Type == NEWLINE {
			sawNewline = true
		}
	}
	if !sawNewline {
		t.Errorf("expected at least one NEWLINE token")
	}
}

func TestArrowAndComparisonOperators(t *testing.T) {
	toks := New("t", "-> == != <= >=").Tokenize()
	want := []TokenType{ARROW, EQ, NEQ, LE, GE, EOF}
	got := tokenTypes(toks)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPositionTracksLineAndColumn(t *testing.T) {
	toks := New("t", "let x\n  = 1").Tokenize()
	// "=" is on line 2, column 3 (two leading spaces).
	for _, tok := range toks {
		if tok.Type == ASSIGN {
			if tok.Location.Line != 2 || tok.Location.Column != 3 {
				t.Errorf("ASSIGN location = %v, want line 2 column 3", tok.Location)
			}
			return
		}
	}
	t.Fatalf("did not find ASSIGN token")
}
