package eval_test

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/golox/eval"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/resolver"
	"github.com/akashmaji946/golox/scanner"
	"github.com/akashmaji946/golox/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string, out *bytes.Buffer) (value.Value, error) {
	t.Helper()
	tokens, err := scanner.Scan(src)
	require.NoError(t, err)
	stmts, err := parser.Parse(tokens)
	require.NoError(t, err)
	d, err := resolver.Resolve(stmts)
	require.NoError(t, err)
	ev := eval.New()
	if out != nil {
		ev.SetWriter(out)
	}
	ev.SetDistances(d)
	return ev.Run(stmts)
}

func TestEndToEndScenarios(t *testing.T) {
	t.Run("1+2", func(t *testing.T) {
		v, err := run(t, "1 + 2;", nil)
		require.NoError(t, err)
		assert.Equal(t, value.Number(3), v)
	})
	t.Run("arith precedence", func(t *testing.T) {
		v, err := run(t, "(2 + 3) * (2 * 2);", nil)
		require.NoError(t, err)
		assert.Equal(t, value.Number(20), v)
	})
	t.Run("nil equality", func(t *testing.T) {
		v, err := run(t, "nil == nil;", nil)
		require.NoError(t, err)
		assert.Equal(t, value.Bool(true), v)
	})
	t.Run("string equality", func(t *testing.T) {
		v, err := run(t, `"hi" == "hi";`, nil)
		require.NoError(t, err)
		assert.Equal(t, value.Bool(true), v)
	})
	t.Run("reassignment", func(t *testing.T) {
		v, err := run(t, "var a = 1; a = a + 1; a;", nil)
		require.NoError(t, err)
		assert.Equal(t, value.Number(2), v)
	})
	t.Run("shadowing prints inner then outer", func(t *testing.T) {
		var out bytes.Buffer
		_, err := run(t, `var a = "outer"; { var a = "inner"; print a; } print a;`, &out)
		require.NoError(t, err)
		assert.Equal(t, "inner\nouter\n", out.String())
	})
	t.Run("function call prints sum", func(t *testing.T) {
		var out bytes.Buffer
		_, err := run(t, `fun f(x, y) { print x + y; } f(2, 3);`, &out)
		require.NoError(t, err)
		assert.Equal(t, "5\n", out.String())
	})
}

func TestTruthiness(t *testing.T) {
	assert.False(t, value.Truthy(value.Nil{}))
	assert.False(t, value.Truthy(value.Bool(false)))
	assert.True(t, value.Truthy(value.Bool(true)))
	assert.True(t, value.Truthy(value.Number(0)))
	assert.True(t, value.Truthy(value.Str("")))
}

func TestStringNumberConcatenation(t *testing.T) {
	v, err := run(t, `"n=" + 1;`, nil)
	require.NoError(t, err)
	assert.Equal(t, value.Str("n=1"), v)

	v, err = run(t, `1 + "=n";`, nil)
	require.NoError(t, err)
	assert.Equal(t, value.Str("1=n"), v)
}

func TestDivisionByZeroErrors(t *testing.T) {
	_, err := run(t, `1 / 0;`, nil)
	assert.Error(t, err)
}

func TestUndefinedVariableErrors(t *testing.T) {
	_, err := run(t, `x;`, nil)
	assert.Error(t, err)
}

func TestCallArityMismatchErrors(t *testing.T) {
	_, err := run(t, `fun f(x) { print x; } f(1, 2);`, nil)
	assert.Error(t, err)
}

func TestCallNonCallableErrors(t *testing.T) {
	_, err := run(t, `var x = 1; x();`, nil)
	assert.Error(t, err)
}

func TestShortCircuitOr(t *testing.T) {
	var out bytes.Buffer
	v, err := run(t, `fun sideEffect() { print "called"; } true or sideEffect();`, &out)
	require.NoError(t, err)
	assert.Equal(t, value.Bool(true), v)
	assert.Empty(t, out.String(), "right side of 'or' must not evaluate when left is truthy")
}

func TestValueCellAliasing(t *testing.T) {
	tokens, err := scanner.Scan(`var a = 1;`)
	require.NoError(t, err)
	stmts, err := parser.Parse(tokens)
	require.NoError(t, err)
	d, err := resolver.Resolve(stmts)
	require.NoError(t, err)

	ev := eval.New()
	ev.SetDistances(d)
	_, err = ev.Run(stmts)
	require.NoError(t, err)

	c1, ok := ev.Env().Get("a")
	require.True(t, ok)
	c2, ok := ev.Env().Get("a")
	require.True(t, ok)
	assert.Same(t, c1, c2)

	c1.Value = value.Number(99)
	assert.Equal(t, value.Number(99), c2.Value)
}

func TestScopeBalanceAroundBlock(t *testing.T) {
	tokens, err := scanner.Scan(`{ var a = 1; }`)
	require.NoError(t, err)
	stmts, err := parser.Parse(tokens)
	require.NoError(t, err)
	d, err := resolver.Resolve(stmts)
	require.NoError(t, err)

	ev := eval.New()
	ev.SetDistances(d)
	before := ev.Env().Depth()
	_, err = ev.Run(stmts)
	require.NoError(t, err)
	assert.Equal(t, before, ev.Env().Depth())
}

