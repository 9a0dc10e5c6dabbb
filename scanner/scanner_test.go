package scanner_test

import (
	"testing"

	"github.com/akashmaji946/golox/scanner"
	"github.com/akashmaji946/golox/token"
	"github.com/stretchr/testify/assert"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func TestScanPunctuationAndOperators(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []token.Kind
	}{
		{"single chars", "(){},.;-+*", []token.Kind{
			token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
			token.Comma, token.Dot, token.Semicolon, token.Minus, token.Plus, token.Star, token.Eof,
		}},
		{"two-char lookahead", "= == ! != < <= > >=", []token.Kind{
			token.Equal, token.EqualEqual, token.Bang, token.BangEqual,
			token.Less, token.LessEqual, token.Greater, token.GreaterEqual, token.Eof,
		}},
		{"line comment consumed", "+ // rest of line\n-", []token.Kind{token.Plus, token.Minus, token.Eof}},
		{"slash not comment", "+ / -", []token.Kind{token.Plus, token.Slash, token.Minus, token.Eof}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scanner.Scan(tt.src)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, kinds(got))
		})
	}
}

func TestScanStringLiteral(t *testing.T) {
	got, err := scanner.Scan(`"hello world"`)
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, token.String, got[0].Kind)
	assert.Equal(t, "hello world", got[0].Literal)
}

func TestScanUnterminatedStringErrors(t *testing.T) {
	_, err := scanner.Scan(`"unterminated`)
	assert.Error(t, err)
	var scanErr *scanner.ScanError
	assert.ErrorAs(t, err, &scanErr)
}

func TestScanNumberLiteral(t *testing.T) {
	got, err := scanner.Scan("123.45")
	assert.NoError(t, err)
	assert.Equal(t, token.Number, got[0].Kind)
	assert.Equal(t, 123.45, got[0].Literal)
}

func TestScanMalformedNumberErrors(t *testing.T) {
	_, err := scanner.Scan("1.2.3")
	assert.Error(t, err)
}

func TestScanIdentifierVsKeyword(t *testing.T) {
	got, err := scanner.Scan("var foo = true;")
	assert.NoError(t, err)
	want := []token.Kind{token.Var, token.Identifier, token.Equal, token.True, token.Semicolon, token.Eof}
	assert.Equal(t, want, kinds(got))
	assert.Equal(t, "foo", got[1].Literal)
}

func TestScanRejectsNonASCII(t *testing.T) {
	_, err := scanner.Scan("var café = 1;")
	assert.Error(t, err)
}

func TestScanTracksLineNumbers(t *testing.T) {
	got, err := scanner.Scan("1\n2\n3")
	assert.NoError(t, err)
	assert.Equal(t, 1, got[0].Line)
	assert.Equal(t, 2, got[1].Line)
	assert.Equal(t, 3, got[2].Line)
}
