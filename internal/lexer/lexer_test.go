package lexer

import (
	"reflect"
	"testing"
)

func typesWithoutEOF(tokens []Token) []TokenType {
	end := len(tokens)
	if end > 0 && tokens[end-1].Type == TOKEN_EOF {
		end--
	}
	out := make([]TokenType, 0, end)
	for _, tok := range tokens[:end] {
		out = append(out, tok.Type)
	}
	return out
}

func wantTypes(t *testing.T, src string, want []TokenType) []Token {
	t.Helper()
	got := Tokenize(src)
	gotTypes := typesWithoutEOF(got)
	if !reflect.DeepEqual(gotTypes, want) {
		t.Fatalf("\nsource:\n%s\nwant types:\n%v\ngot types:\n%v\n", src, want, gotTypes)
	}
	return got
}

func TestLexer_Operators(t *testing.T) {
	wantTypes(t, "= == ! != < <= > >= + - * / , ; . ( ) { }", []TokenType{
		TOKEN_ASSIGN, TOKEN_EQ, TOKEN_NOT, TOKEN_NOT_EQ,
		TOKEN_LT, TOKEN_LT_EQ, TOKEN_GT, TOKEN_GT_EQ,
		TOKEN_PLUS, TOKEN_MINUS, TOKEN_ASTERISK, TOKEN_SLASH,
		TOKEN_COMMA, TOKEN_SEMICOLON, TOKEN_DOT,
		TOKEN_LPAREN, TOKEN_RPAREN, TOKEN_LBRACE, TOKEN_RBRACE,
	})
}

func TestLexer_KeywordsAndIdentifiers(t *testing.T) {
	got := wantTypes(t, "var fun_1 = fun; orchid or and_ and", []TokenType{
		TOKEN_VAR, TOKEN_IDENT, TOKEN_ASSIGN, TOKEN_FUN, TOKEN_SEMICOLON,
		TOKEN_IDENT, TOKEN_OR, TOKEN_IDENT, TOKEN_AND,
	})
	if got[1].Literal != "fun_1" || got[5].Literal != "orchid" {
		t.Fatalf("identifier literals: %q %q", got[1].Literal, got[5].Literal)
	}
}

func TestLexer_Numbers(t *testing.T) {
	got := wantTypes(t, "12 3.25 7.", []TokenType{
		TOKEN_NUMBER, TOKEN_NUMBER, TOKEN_NUMBER, TOKEN_DOT,
	})
	if got[0].Literal != "12" || got[1].Literal != "3.25" || got[2].Literal != "7" {
		t.Fatalf("number literals: %q %q %q", got[0].Literal, got[1].Literal, got[2].Literal)
	}
}

func TestLexer_StringKeepsQuotesAndSpansLines(t *testing.T) {
	got := wantTypes(t, "\"a\nb\" x", []TokenType{TOKEN_STRING, TOKEN_IDENT})
	if got[0].Literal != "\"a\nb\"" {
		t.Fatalf("string literal = %q", got[0].Literal)
	}
	if got[1].Line != 2 {
		t.Fatalf("token after multi-line string on line %d, want 2", got[1].Line)
	}
}

func TestLexer_UnterminatedString(t *testing.T) {
	got := wantTypes(t, `print "abc`, []TokenType{TOKEN_PRINT, TOKEN_ILLEGAL})
	if got[1].Literal != `"abc` {
		t.Fatalf("illegal literal = %q", got[1].Literal)
	}
}

func TestLexer_UnexpectedCharacter(t *testing.T) {
	got := wantTypes(t, "a @ b", []TokenType{TOKEN_IDENT, TOKEN_ILLEGAL, TOKEN_IDENT})
	if got[1].Literal != "@" {
		t.Fatalf("illegal literal = %q", got[1].Literal)
	}
}

func TestLexer_CommentsAndPositions(t *testing.T) {
	src := "// header\nvar x = 1; // trailing\n  print x;"
	got := wantTypes(t, src, []TokenType{
		TOKEN_VAR, TOKEN_IDENT, TOKEN_ASSIGN, TOKEN_NUMBER, TOKEN_SEMICOLON,
		TOKEN_PRINT, TOKEN_IDENT, TOKEN_SEMICOLON,
	})
	if got[0].Line != 2 || got[0].Column != 1 {
		t.Fatalf("var at %d:%d, want 2:1", got[0].Line, got[0].Column)
	}
	if got[5].Line != 3 || got[5].Column != 3 {
		t.Fatalf("print at %d:%d, want 3:3", got[5].Line, got[5].Column)
	}
}

func TestLexer_EOFRepeats(t *testing.T) {
	l := New("x")
	l.NextToken()
	for i := 0; i < 3; i++ {
		if tok := l.NextToken(); tok.Type != TOKEN_EOF {
			t.Fatalf("call %d after end: got %v, want EOF", i, tok.Type)
		}
	}
}

func TestSliceSource_AppendsEOF(t *testing.T) {
	src := NewSliceSource([]Token{{Type: TOKEN_IDENT, Literal: "x", Line: 4}})
	if tok := src.NextToken(); tok.Type != TOKEN_IDENT {
		t.Fatalf("first token = %v", tok.Type)
	}
	for i := 0; i < 2; i++ {
		tok := src.NextToken()
		if tok.Type != TOKEN_EOF || tok.Line != 4 {
			t.Fatalf("got %v on line %d, want EOF on line 4", tok.Type, tok.Line)
		}
	}
}

func TestIsStatementStart(t *testing.T) {
	for _, tt := range []TokenType{TOKEN_FUN, TOKEN_VAR, TOKEN_FOR, TOKEN_IF, TOKEN_WHILE, TOKEN_PRINT, TOKEN_RETURN} {
		if !IsStatementStart(tt) {
			t.Errorf("%v should start a statement", tt)
		}
	}
	for _, tt := range []TokenType{TOKEN_IDENT, TOKEN_LBRACE, TOKEN_ELSE, TOKEN_SEMICOLON} {
		if IsStatementStart(tt) {
			t.Errorf("%v should not start a statement", tt)
		}
	}
}
