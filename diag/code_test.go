package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeStringIsStable(t *testing.T) {
	assert.Equal(t, "E_DEFINITION_CYCLE", E_DEFINITION_CYCLE.String())
	assert.Equal(t, "E_BYTE_STREAM_TOO_SMALL", E_BYTE_STREAM_TOO_SMALL.String())
}

func TestCodeCategory(t *testing.T) {
	assert.Equal(t, CategoryResolve, E_DEFINITION_CYCLE.Category())
	assert.Equal(t, CategoryDecode, E_BYTE_STREAM_TOO_SMALL.Category())
	assert.Equal(t, CategoryExpression, E_EXPRESSION_SYNTAX.Category())
	assert.Equal(t, CategorySchema, E_DUPLICATE_NAME.Category())
}

func TestZeroCodeIsZero(t *testing.T) {
	var c Code
	assert.True(t, c.IsZero())
	assert.False(t, E_INTERNAL.IsZero())
}

func TestAllCodesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range AllCodes() {
		assert.False(t, seen[c.String()], "duplicate code %s", c.String())
		seen[c.String()] = true
	}
}

func TestAllCodesCopyIsIndependent(t *testing.T) {
	a := AllCodes()
	a[0] = Code{}
	b := AllCodes()
	assert.NotEqual(t, a[0], b[0])
}

func TestCodesByCategory(t *testing.T) {
	resolveCodes := CodesByCategory(CategoryResolve)
	assert.Contains(t, resolveCodes, E_DEFINITION_CYCLE)
	assert.Contains(t, resolveCodes, E_UNRESOLVED_REFERENCE)
	for _, c := range resolveCodes {
		assert.Equal(t, CategoryResolve, c.Category())
	}
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "decode", CategoryDecode.String())
	assert.Equal(t, "resolve", CategoryResolve.String())
	assert.Equal(t, "unknown", CodeCategory(255).String())
}
