package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tokenTypes(toks []Token) []TokenType {
	types := make([]TokenType, len(toks))
	for i, t := range toks {
		types[i] = t.Type
	}
	return types
}

func TestTokenizeBasicList(t *testing.T) {
	toks := Tokenize("(+ 1 2)")
	assert.Equal(t, []TokenType{LPAREN, SYMBOL, INT, INT, RPAREN, EOF}, tokenTypes(toks))
	assert.Equal(t, "+", toks[1].Value)
	assert.Equal(t, "1", toks[2].Value)
}

func TestTokenizeReaderMacros(t *testing.T) {
	toks := Tokenize("'(1 2) `(a ~b ~@c) @atm ^{:x 1} [1]")
	got := tokenTypes(toks)
	assert.Contains(t, got, QUOTE)
	assert.Contains(t, got, QUASIQUOTE)
	assert.Contains(t, got, UNQUOTE)
	assert.Contains(t, got, SPLICE_UNQUOTE)
	assert.Contains(t, got, DEREF)
	assert.Contains(t, got, CARET)
	assert.Contains(t, got, LBRACKET)
	assert.Contains(t, got, RBRACKET)
}

func TestTokenizeString(t *testing.T) {
	toks := Tokenize(`"hello\nworld"`)
	assert.Equal(t, STRING, toks[0].Type)
	assert.Equal(t, "hello\nworld", toks[0].Value)
}

func TestTokenizeUnterminatedString(t *testing.T) {
	toks := Tokenize(`"abc`)
	assert.Equal(t, ILLEGAL, toks[0].Type)
}

func TestTokenizeComment(t *testing.T) {
	toks := Tokenize("1 ; a comment\n2")
	assert.Equal(t, []TokenType{INT, INT, EOF}, tokenTypes(toks))
}

func TestTokenizeKeywordAndNegativeInt(t *testing.T) {
	toks := Tokenize(":foo -5 -bar")
	assert.Equal(t, SYMBOL, toks[0].Type)
	assert.Equal(t, ":foo", toks[0].Value)
	assert.Equal(t, INT, toks[1].Type)
	assert.Equal(t, "-5", toks[1].Value)
	assert.Equal(t, SYMBOL, toks[2].Type)
	assert.Equal(t, "-bar", toks[2].Value)
}

func TestTokenizeCommaIsWhitespace(t *testing.T) {
	toks := Tokenize("1, 2,3")
	assert.Equal(t, []TokenType{INT, INT, INT, EOF}, tokenTypes(toks))
}
