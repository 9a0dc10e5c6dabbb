package resolver_test

import (
	"testing"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/resolver"
	"github.com/akashmaji946/golox/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveSrc(t *testing.T, src string) ([]ast.Stmt, resolver.Distances) {
	t.Helper()
	tokens, err := scanner.Scan(src)
	require.NoError(t, err)
	stmts, err := parser.Parse(tokens)
	require.NoError(t, err)
	d, err := resolver.Resolve(stmts)
	require.NoError(t, err)
	return stmts, d
}

func TestResolverGlobalsUnresolved(t *testing.T) {
	stmts, d := resolveSrc(t, `var a = 1; a;`)
	exprStmt := stmts[1].(*ast.ExprStmt)
	v := exprStmt.Expr.(*ast.Variable)
	_, ok := d[v.ID]
	assert.False(t, ok, "global reference should have no distance entry")
}

func TestResolverInnermostShadowWins(t *testing.T) {
	// the original resolver this is ported from had a bug here: without
	// breaking on the first match, the outer 'a' would overwrite the
	// inner one's distance.
	stmts, d := resolveSrc(t, `{ var a = 1; { var a = 2; a; } }`)
	outer := stmts[0].(*ast.BlockStmt)
	inner := outer.Stmts[1].(*ast.BlockStmt)
	ref := inner.Stmts[1].(*ast.ExprStmt).Expr.(*ast.Variable)
	dist, ok := d[ref.ID]
	require.True(t, ok)
	assert.Equal(t, 0, dist, "innermost 'a' should resolve at distance 0")
}

func TestResolverFunctionParamDistance(t *testing.T) {
	stmts, d := resolveSrc(t, `fun f(x) { x; }`)
	fn := stmts[0].(*ast.FunctionStmt)
	ref := fn.Body.Stmts[0].(*ast.ExprStmt).Expr.(*ast.Variable)
	dist, ok := d[ref.ID]
	require.True(t, ok)
	assert.Equal(t, 0, dist)
}

func TestResolverOwnInitializerErrors(t *testing.T) {
	tokens, err := scanner.Scan(`{ var a = a; }`)
	require.NoError(t, err)
	stmts, err := parser.Parse(tokens)
	require.NoError(t, err)
	_, err = resolver.Resolve(stmts)
	assert.Error(t, err)
	var rerr *resolver.ResolverError
	assert.ErrorAs(t, err, &rerr)
}

func TestResolverIdempotent(t *testing.T) {
	tokens, err := scanner.Scan(`var a = 1; { var b = a; b; }`)
	require.NoError(t, err)
	stmts, err := parser.Parse(tokens)
	require.NoError(t, err)

	d1, err := resolver.Resolve(stmts)
	require.NoError(t, err)
	d2, err := resolver.Resolve(stmts)
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
}

func TestResolverAssignDistance(t *testing.T) {
	stmts, d := resolveSrc(t, `{ var a = 1; a = 2; }`)
	block := stmts[0].(*ast.BlockStmt)
	assign := block.Stmts[1].(*ast.ExprStmt).Expr.(*ast.Assign)
	dist, ok := d[assign.ID]
	require.True(t, ok)
	assert.Equal(t, 0, dist)
}
