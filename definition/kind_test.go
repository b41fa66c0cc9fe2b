package definition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/libyal/dtfabric-go/definition"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "integer", definition.KindInteger.String())
	assert.Equal(t, "structure-group", definition.KindStructureGroup.String())
	assert.Equal(t, "unknown", definition.KindUnknown.String())
}

func TestKindIsFixedSize(t *testing.T) {
	assert.True(t, definition.KindBoolean.IsFixedSize())
	assert.True(t, definition.KindUUID.IsFixedSize())
	assert.False(t, definition.KindStructure.IsFixedSize())
}

func TestKindIsVariableSize(t *testing.T) {
	assert.True(t, definition.KindSequence.IsVariableSize())
	assert.True(t, definition.KindPadding.IsVariableSize())
	assert.False(t, definition.KindInteger.IsVariableSize())
}

func TestKindIsComposite(t *testing.T) {
	assert.True(t, definition.KindStructure.IsComposite())
	assert.True(t, definition.KindUnion.IsComposite())
	assert.False(t, definition.KindSequence.IsComposite())
}

func TestKindIsInlineAllowed(t *testing.T) {
	assert.True(t, definition.KindString.IsInlineAllowed())
	assert.False(t, definition.KindStructure.IsInlineAllowed())
	assert.False(t, definition.KindConstant.IsInlineAllowed())
	assert.False(t, definition.KindEnumeration.IsInlineAllowed())
	assert.False(t, definition.KindFormat.IsInlineAllowed())
}
