package ast_test

import (
	"testing"

	"github.com/akashmaji946/golox/ast"
	"github.com/stretchr/testify/assert"
)

func TestPrintLiterals(t *testing.T) {
	assert.Equal(t, "1", ast.Print(&ast.NumberLit{Value: 1}))
	assert.Equal(t, `"hi"`, ast.Print(&ast.StringLit{Value: "hi"}))
	assert.Equal(t, "true", ast.Print(&ast.TrueLit{}))
	assert.Equal(t, "false", ast.Print(&ast.FalseLit{}))
	assert.Equal(t, "nil", ast.Print(&ast.NilLit{}))
}

func TestPrintBinaryPreservesStructure(t *testing.T) {
	e := &ast.Binary{
		Op:   ast.Add,
		Left: &ast.NumberLit{Value: 1},
		Right: &ast.Binary{
			Op:    ast.Mul,
			Left:  &ast.NumberLit{Value: 2},
			Right: &ast.NumberLit{Value: 3},
		},
	}
	assert.Equal(t, "(+ 1 (* 2 3))", ast.Print(e))
}

func TestPrintCall(t *testing.T) {
	e := &ast.Call{
		Callee: &ast.Variable{Name: "f"},
		Args:   []ast.Expr{&ast.NumberLit{Value: 1}, &ast.NumberLit{Value: 2}},
	}
	assert.Equal(t, "(call f 1 2)", ast.Print(e))
}
