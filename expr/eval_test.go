package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libyal/dtfabric-go/expr"
)

type mapResolver map[string]int64

func (m mapResolver) Lookup(path string) (int64, bool) {
	v, ok := m[path]
	return v, ok
}

func TestEvalPrecedence(t *testing.T) {
	e, err := expr.Parse("a + b * c")
	require.NoError(t, err)

	v, err := expr.Eval(e, mapResolver{"a": 1, "b": 2, "c": 3})
	require.NoError(t, err)
	assert.Equal(t, int64(7), v)
}

func TestEvalIntegerDivisionTruncatesTowardZero(t *testing.T) {
	e, err := expr.Parse("a / b")
	require.NoError(t, err)

	v, err := expr.Eval(e, mapResolver{"a": -7, "b": 2})
	require.NoError(t, err)
	assert.Equal(t, int64(-3), v)
}

func TestEvalDivisionByZero(t *testing.T) {
	for _, src := range []string{"a / b", "a % b"} {
		e, err := expr.Parse(src)
		require.NoError(t, err)

		_, err = expr.Eval(e, mapResolver{"a": 7, "b": 0})
		var divzero *expr.DivisionByZeroError
		assert.ErrorAs(t, err, &divzero)
	}
}

func TestEvalUnboundPath(t *testing.T) {
	e, err := expr.Parse("missing")
	require.NoError(t, err)

	_, err = expr.Eval(e, mapResolver{})
	require.Error(t, err)
	var unbound *expr.UnboundPathError
	assert.ErrorAs(t, err, &unbound)
	assert.Equal(t, "missing", unbound.Path)
}

func TestEvalCondition(t *testing.T) {
	c, err := expr.ParseCondition("version > 1")
	require.NoError(t, err)

	ok, err := expr.EvalCondition(c, mapResolver{"version": 2})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = expr.EvalCondition(c, mapResolver{"version": 1})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEvalConditionPropagatesUnboundPath(t *testing.T) {
	c, err := expr.ParseCondition("version > base.minimum")
	require.NoError(t, err)

	_, err = expr.EvalCondition(c, mapResolver{"version": 1})
	assert.Error(t, err)
}
