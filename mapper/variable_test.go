package mapper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libyal/dtfabric-go/definition"
	"github.com/libyal/dtfabric-go/expr"
	"github.com/libyal/dtfabric-go/mapper"
)

func int8Def(name string) *definition.Integer {
	return definition.NewInteger(
		definition.Common{Name: name},
		definition.FixedSizeAttrs{ByteOrder: definition.ByteOrderLittleEndian, Size: definition.FixedSize(1)},
		definition.IntegerFormatUnsigned,
	)
}

func TestSequenceMapNumberOfElements(t *testing.T) {
	elemDef := int32LEDef("int32", definition.IntegerFormatSigned)
	ref := definition.NewDefRef("int32").Resolve(elemDef)

	seq := definition.NewSequence(definition.Common{Name: "seq"}, definition.VariableAttrs{
		ElementDataType:  ref,
		NumberOfElements: expr.IntLit{Value: 2},
	})

	m, err := mapper.NewFactory().Build(seq)
	require.NoError(t, err)

	data := []byte{0x01, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF}
	value, consumed, err := m.MapByteStream(data, 0, mapper.NewMapContext())
	require.NoError(t, err)
	assert.Equal(t, int64(8), consumed)
	assert.Equal(t, []mapper.Value{int64(1), int64(2)}, value)

	size, fixed := m.ByteSize()
	assert.True(t, fixed)
	assert.Equal(t, int64(8), size)
}

func TestSequenceMapElementsDataSize(t *testing.T) {
	elemDef := int32LEDef("int32", definition.IntegerFormatSigned)
	ref := definition.NewDefRef("int32").Resolve(elemDef)

	seq := definition.NewSequence(definition.Common{Name: "seq"}, definition.VariableAttrs{
		ElementDataType:  ref,
		ElementsDataSize: expr.IntLit{Value: 8},
	})
	m, err := mapper.NewFactory().Build(seq)
	require.NoError(t, err)

	data := []byte{0x01, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF}
	value, consumed, err := m.MapByteStream(data, 0, mapper.NewMapContext())
	require.NoError(t, err)
	assert.Equal(t, int64(8), consumed)
	assert.Equal(t, []mapper.Value{int64(1), int64(2)}, value)
}

func TestStreamMapTerminator(t *testing.T) {
	ref := definition.NewDefRef("byte").Resolve(int8Def("byte"))

	stream := definition.NewStream(definition.Common{Name: "cstr"}, definition.VariableAttrs{
		ElementDataType:    ref,
		ElementsTerminator: []byte{0x00},
	})
	m, err := mapper.NewFactory().Build(stream)
	require.NoError(t, err)

	data := []byte{'h', 'i', 0x00, 'X'}
	value, consumed, err := m.MapByteStream(data, 0, mapper.NewMapContext())
	require.NoError(t, err)
	assert.Equal(t, int64(3), consumed) // "hi" + terminator, trailing X excluded
	assert.Equal(t, []byte("hi"), value)
}

func TestStreamMapTerminatorBeatsCount(t *testing.T) {
	ref := definition.NewDefRef("byte").Resolve(int8Def("byte"))

	stream := definition.NewStream(definition.Common{Name: "cstr"}, definition.VariableAttrs{
		ElementDataType:    ref,
		NumberOfElements:   expr.IntLit{Value: 10},
		ElementsTerminator: []byte{0x00},
	})
	m, err := mapper.NewFactory().Build(stream)
	require.NoError(t, err)

	data := []byte{'h', 'i', 0x00, 'X', 'X', 'X', 'X', 'X', 'X', 'X'}
	_, consumed, err := m.MapByteStream(data, 0, mapper.NewMapContext())
	require.NoError(t, err)
	assert.Equal(t, int64(3), consumed)
}

func TestStringMapEncodingUTF8(t *testing.T) {
	charDef := definition.NewCharacter(
		definition.Common{Name: "char8"},
		definition.FixedSizeAttrs{ByteOrder: definition.ByteOrderLittleEndian, Size: definition.FixedSize(1)},
	)
	ref := definition.NewDefRef("char8").Resolve(charDef)

	str := definition.NewString(definition.Common{Name: "text"}, definition.VariableAttrs{
		ElementDataType:  ref,
		NumberOfElements: expr.IntLit{Value: 5},
	}, "utf-8")

	m, err := mapper.NewFactory().Build(str)
	require.NoError(t, err)

	value, consumed, err := m.MapByteStream([]byte("hello"), 0, mapper.NewMapContext())
	require.NoError(t, err)
	assert.Equal(t, int64(5), consumed)
	assert.Equal(t, "hello", value)
}

func TestPaddingMapAdvancesToAlignment(t *testing.T) {
	def := definition.NewPadding(definition.Common{Name: "pad"}, 4)
	m, err := mapper.NewFactory().Build(def)
	require.NoError(t, err)

	data := []byte{0xAA, 0xAA, 0xAA, 0xAA}
	_, consumed, err := m.MapByteStream(data, 3, mapper.NewMapContext())
	require.NoError(t, err)
	assert.Equal(t, int64(1), consumed)

	_, fixed := m.ByteSize()
	assert.False(t, fixed)
}
