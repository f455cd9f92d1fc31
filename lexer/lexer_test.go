/*
File    : golox/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func allTokens(src string) []Token {
	l := NewLexer(src)
	var toks []Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == EOF {
			return toks
		}
	}
}

func typesOf(toks []Token) []TokenType {
	types := make([]TokenType, len(toks))
	for i, t := range toks {
		types[i] = t.Type
	}
	return types
}

func TestLexer_Punctuation(t *testing.T) {
	toks := allTokens("(){},.-+;*/")
	assert.Equal(t, []TokenType{
		LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE, COMMA, DOT,
		MINUS, PLUS, SEMICOLON, STAR, SLASH, EOF,
	}, typesOf(toks))
}

func TestLexer_TwoCharOperators(t *testing.T) {
	toks := allTokens("! != = == < <= > >=")
	assert.Equal(t, []TokenType{
		BANG, BANG_EQUAL, EQUAL, EQUAL_EQUAL, LESS, LESS_EQUAL, GREATER, GREATER_EQUAL, EOF,
	}, typesOf(toks))
}

func TestLexer_CommentsAndWhitespaceIgnored(t *testing.T) {
	toks := allTokens("1 // a comment\n+ 2")
	assert.Equal(t, []TokenType{NUMBER, PLUS, NUMBER, EOF}, typesOf(toks))
}

func TestLexer_SlashVsComment(t *testing.T) {
	toks := allTokens("6 / 3")
	assert.Equal(t, []TokenType{NUMBER, SLASH, NUMBER, EOF}, typesOf(toks))
}

func TestLexer_Keywords(t *testing.T) {
	toks := allTokens("and class else false for fun if nil or print return super this true var while")
	assert.Equal(t, []TokenType{
		AND, CLASS, ELSE, FALSE, FOR, FUN, IF, NIL, OR, PRINT, RETURN,
		SUPER, THIS, TRUE, VAR, WHILE, EOF,
	}, typesOf(toks))
}

func TestLexer_Identifier(t *testing.T) {
	toks := allTokens("orchid _foo foo123")
	assert.Equal(t, []TokenType{IDENTIFIER, IDENTIFIER, IDENTIFIER, EOF}, typesOf(toks))
	assert.Equal(t, "orchid", toks[0].Lexeme)
}

func TestLexer_Number(t *testing.T) {
	toks := allTokens("123 3.14")
	assert.Equal(t, []TokenType{NUMBER, NUMBER, EOF}, typesOf(toks))
	assert.Equal(t, float64(123), toks[0].Number)
	assert.Equal(t, 3.14, toks[1].Number)
}

func TestLexer_NumberTrailingDotNotConsumed(t *testing.T) {
	toks := allTokens("123.")
	assert.Equal(t, []TokenType{NUMBER, DOT, EOF}, typesOf(toks))
	assert.Equal(t, float64(123), toks[0].Number)
}

func TestLexer_String(t *testing.T) {
	toks := allTokens(`"hello world"`)
	assert.Equal(t, STRING, toks[0].Type)
	assert.Equal(t, "hello world", toks[0].Lexeme)
}

func TestLexer_StringWithEmbeddedNewlineTracksLine(t *testing.T) {
	toks := allTokens("\"a\nb\" 1")
	assert.Equal(t, STRING, toks[0].Type)
	assert.Equal(t, "a\nb", toks[0].Lexeme)
	assert.Equal(t, 2, toks[0].Line)
	assert.Equal(t, 2, toks[1].Line)
}

func TestLexer_UnterminatedString(t *testing.T) {
	toks := allTokens(`"abc`)
	assert.Equal(t, INVALID, toks[0].Type)
	assert.Contains(t, toks[0].Lexeme, "Unterminated string.")
}

func TestLexer_UnexpectedCharacter(t *testing.T) {
	toks := allTokens("@")
	assert.Equal(t, INVALID, toks[0].Type)
	assert.Contains(t, toks[0].Lexeme, "Unexpected character.")
}

func TestLexer_LineTracking(t *testing.T) {
	toks := allTokens("1\n2\n\n3")
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 2, toks[1].Line)
	assert.Equal(t, 4, toks[2].Line)
}

func TestLexer_UnicodeIdentifier(t *testing.T) {
	toks := allTokens("café")
	assert.Equal(t, IDENTIFIER, toks[0].Type)
	assert.Equal(t, "café", toks[0].Lexeme)
}
