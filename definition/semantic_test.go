package definition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libyal/dtfabric-go/definition"
)

func TestNewConstant(t *testing.T) {
	c := definition.NewConstant(definition.Common{Name: "magic"}, 0x53454422)
	assert.Equal(t, definition.KindConstant, c.Kind())
	assert.Equal(t, int64(0x53454422), c.Value)
}

func TestNewEnumeration(t *testing.T) {
	vdt := definition.NewDefRef("uint32").Resolve(definition.NewInteger(definition.Common{Name: "uint32"},
		definition.FixedSizeAttrs{Size: definition.FixedSize(4)}, definition.IntegerFormatUnsigned))
	e := definition.NewEnumeration(definition.Common{Name: "color_t"}, []definition.EnumerationMember{
		{Name: "RED", Number: 0},
		{Name: "GREEN", Number: 1},
	}, vdt)
	assert.Len(t, e.Members(), 2)
	assert.Equal(t, "uint32", e.ValueDataType().Name())

	m, ok := e.ByNumber(1)
	require.True(t, ok)
	assert.Equal(t, "GREEN", m.Name)

	_, ok = e.ByNumber(99)
	assert.False(t, ok)
}

func TestNewEnumerationPanicsOnDuplicateNumber(t *testing.T) {
	vdt := definition.NewDefRef("uint32")
	assert.Panics(t, func() {
		definition.NewEnumeration(definition.Common{Name: "color_t"}, []definition.EnumerationMember{
			{Name: "RED", Number: 0},
			{Name: "CRIMSON", Number: 0},
		}, vdt)
	})
}

func TestNewEnumerationPanicsWithoutMembers(t *testing.T) {
	vdt := definition.NewDefRef("uint32")
	assert.Panics(t, func() { definition.NewEnumeration(definition.Common{Name: "empty_t"}, nil, vdt) })
}

func TestNewEnumerationPanicsWithoutValueDataType(t *testing.T) {
	assert.Panics(t, func() {
		definition.NewEnumeration(definition.Common{Name: "color_t"}, []definition.EnumerationMember{
			{Name: "RED", Number: 0},
		}, definition.DefRef{})
	})
}
