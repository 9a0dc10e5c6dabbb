package token_test

import (
	"testing"

	"github.com/akashmaji946/golox/token"
	"github.com/stretchr/testify/assert"
)

func TestKeywordsCoverClosedSet(t *testing.T) {
	expected := []string{
		"and", "class", "else", "false", "fun", "for", "if", "nil",
		"or", "print", "return", "super", "this", "true", "var", "while",
	}
	for _, kw := range expected {
		_, ok := token.Keywords[kw]
		assert.Truef(t, ok, "expected %q to be a reserved keyword", kw)
	}
}

func TestEqualIgnoresLine(t *testing.T) {
	a := token.New(token.Plus, "+", 1)
	b := token.New(token.Plus, "+", 42)
	assert.True(t, a.Equal(b))
}

func TestEqualDistinguishesLiteral(t *testing.T) {
	a := token.NewLiteral(token.Number, "1", float64(1), 1)
	b := token.NewLiteral(token.Number, "1", float64(2), 1)
	assert.False(t, a.Equal(b))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "LEFT_PAREN", token.LeftParen.String())
	assert.Equal(t, "EOF", token.Eof.String())
}
