package mapper_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libyal/dtfabric-go/definition"
	"github.com/libyal/dtfabric-go/expr"
	"github.com/libyal/dtfabric-go/mapper"
)

func uint16LEDef(name string) *definition.Integer {
	return definition.NewInteger(
		definition.Common{Name: name},
		definition.FixedSizeAttrs{ByteOrder: definition.ByteOrderLittleEndian, Size: definition.FixedSize(2)},
		definition.IntegerFormatUnsigned,
	)
}

func TestEncodeIntegerRoundTrip(t *testing.T) {
	def := definition.NewInteger(
		definition.Common{Name: "int32be"},
		definition.FixedSizeAttrs{ByteOrder: definition.ByteOrderBigEndian, Size: definition.FixedSize(4)},
		definition.IntegerFormatSigned,
	)
	m := buildMap(t, def)

	input := []byte{0xff, 0xff, 0xff, 0xfe}
	v, consumed, err := m.MapByteStream(input, 0, mapper.NewMapContext())
	require.NoError(t, err)
	assert.Equal(t, int64(-2), v)
	assert.Equal(t, int64(4), consumed)

	out, err := mapper.Encode(m, v)
	require.NoError(t, err)
	assert.Equal(t, input, out)
}

func TestEncodeBooleanUsesDeclaredValues(t *testing.T) {
	trueValue := int64(0xff)
	def := definition.NewBoolean(
		definition.Common{Name: "bool8"},
		definition.FixedSizeAttrs{ByteOrder: definition.ByteOrderLittleEndian, Size: definition.FixedSize(1)},
		0, &trueValue,
	)
	m := buildMap(t, def)

	out, err := mapper.Encode(m, true)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff}, out)

	out, err = mapper.Encode(m, false)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00}, out)
}

func TestEncodeFloatingPointRoundTrip(t *testing.T) {
	def := definition.NewFloatingPoint(
		definition.Common{Name: "float32le"},
		definition.FixedSizeAttrs{ByteOrder: definition.ByteOrderLittleEndian, Size: definition.FixedSize(4)},
	)
	m := buildMap(t, def)

	input := []byte{0x00, 0x00, 0x80, 0x3f} // 1.0
	v, _, err := m.MapByteStream(input, 0, mapper.NewMapContext())
	require.NoError(t, err)

	out, err := mapper.Encode(m, v)
	require.NoError(t, err)
	assert.Equal(t, input, out)
}

func TestEncodeUUIDRoundTrip(t *testing.T) {
	def := definition.NewUUID(definition.Common{Name: "guid"}, definition.ByteOrderLittleEndian, definition.UnitsBytes)
	m := buildMap(t, def)

	input := []byte{
		0x33, 0x22, 0x11, 0x00, 0x55, 0x44, 0x77, 0x66,
		0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff,
	}
	v, _, err := m.MapByteStream(input, 0, mapper.NewMapContext())
	require.NoError(t, err)

	out, err := mapper.Encode(m, v)
	require.NoError(t, err)
	assert.Equal(t, input, out)
}

func TestEncodeStreamAppendsSoleTerminator(t *testing.T) {
	byteDef := int8Def("byte")
	def := definition.NewStream(definition.Common{Name: "cstring_data"}, definition.VariableAttrs{
		ElementDataType:    definition.NewDefRef("byte").Resolve(byteDef),
		ElementsTerminator: []byte{0x00},
	})
	m := buildMap(t, def)

	input := []byte{'a', 'b', 'c', 0x00}
	v, consumed, err := m.MapByteStream(input, 0, mapper.NewMapContext())
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), v)
	assert.Equal(t, int64(4), consumed)

	out, err := mapper.Encode(m, v)
	require.NoError(t, err)
	assert.Equal(t, input, out)
}

// TestEncodeExt2GroupDescriptorRoundTrip decodes a 32-byte ext2 group
// descriptor into its declared members, then encodes the value back and
// requires the identical 32 bytes.
func TestEncodeExt2GroupDescriptorRoundTrip(t *testing.T) {
	uint16Def := uint16LEDef("uint16")
	uint32Def := int32LEDef("uint32", definition.IntegerFormatUnsigned)
	uint16Ref := definition.NewDefRef("uint16").Resolve(uint16Def)
	uint32Ref := definition.NewDefRef("uint32").Resolve(uint32Def)

	byteDef := int8Def("byte")
	reserved := definition.NewStream(definition.Common{Name: "reserved12"}, definition.VariableAttrs{
		ElementDataType:  definition.NewDefRef("byte").Resolve(byteDef),
		NumberOfElements: expr.IntLit{Value: 12},
	})

	groupDescriptor := definition.NewStructure(definition.Common{Name: "ext2_group_descriptor"}, []definition.Member{
		member("bg_block_bitmap", uint32Ref),
		member("bg_inode_bitmap", uint32Ref),
		member("bg_inode_table", uint32Ref),
		member("bg_free_blocks_count", uint16Ref),
		member("bg_free_inodes_count", uint16Ref),
		member("bg_used_dirs_count", uint16Ref),
		member("bg_pad", uint16Ref),
		member("bg_reserved", definition.NewDefRef("reserved12").Resolve(reserved)),
	})
	m := buildMap(t, groupDescriptor)

	size, fixed := m.ByteSize()
	require.True(t, fixed)
	assert.Equal(t, int64(32), size)

	input := []byte{
		0x0a, 0x00, 0x00, 0x00, // bg_block_bitmap = 10
		0x0b, 0x00, 0x00, 0x00, // bg_inode_bitmap = 11
		0x0c, 0x00, 0x00, 0x00, // bg_inode_table = 12
		0xe8, 0x03, // bg_free_blocks_count = 1000
		0xd0, 0x07, // bg_free_inodes_count = 2000
		0x2a, 0x00, // bg_used_dirs_count = 42
		0x00, 0x00, // bg_pad
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c,
	}
	require.Len(t, input, 32)

	v, consumed, err := m.MapByteStream(input, 0, mapper.NewMapContext())
	require.NoError(t, err)
	assert.Equal(t, int64(32), consumed)

	sv, ok := v.(*mapper.StructValue)
	require.True(t, ok)
	blockBitmap, _ := sv.Get("bg_block_bitmap")
	assert.Equal(t, int64(10), blockBitmap)
	freeBlocks, _ := sv.Get("bg_free_blocks_count")
	assert.Equal(t, int64(1000), freeBlocks)

	out, err := mapper.Encode(m, v)
	require.NoError(t, err)
	if diff := cmp.Diff(input, out); diff != "" {
		t.Fatalf("round trip mismatch (-decoded +encoded):\n%s", diff)
	}
}

func TestEncodeStructureSkipsAbsentConditionalMember(t *testing.T) {
	uint16Ref := definition.NewDefRef("uint16").Resolve(uint16LEDef("uint16"))

	cond := &expr.Condition{
		Op:    expr.Gt,
		Left:  expr.PathExpr{Segments: []string{"version"}},
		Right: expr.IntLit{Value: 1},
	}
	extraMember := definition.NewMember(definition.MemberParams{
		Name: "extra", DataType: uint16Ref, Condition: cond,
	}, false)

	s := definition.NewStructure(definition.Common{Name: "header"}, []definition.Member{
		member("version", uint16Ref),
		extraMember,
	})
	m := buildMap(t, s)

	input := []byte{0x01, 0x00}
	v, consumed, err := m.MapByteStream(input, 0, mapper.NewMapContext())
	require.NoError(t, err)
	assert.Equal(t, int64(2), consumed)

	out, err := mapper.Encode(m, v)
	require.NoError(t, err)
	assert.Equal(t, input, out)
}

func TestEncodeEnumerationSymbolicName(t *testing.T) {
	storage := uint16LEDef("uint16")
	enum := definition.NewEnumeration(definition.Common{Name: "object_type"}, []definition.EnumerationMember{
		{Name: "file", Number: 1},
		{Name: "directory", Number: 2},
	}, definition.NewDefRef("uint16").Resolve(storage))
	m := buildMap(t, enum)

	out, err := mapper.Encode(m, "directory")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0x00}, out)

	// a raw integer that matched no variant encodes through as-is
	out, err = mapper.Encode(m, int64(9))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x09, 0x00}, out)
}

func TestEncodeUnsupportedKind(t *testing.T) {
	uint16Ref := definition.NewDefRef("uint16").Resolve(uint16LEDef("uint16"))
	base := definition.NewStructure(definition.Common{Name: "token_base"}, []definition.Member{
		member("token_type", uint16Ref),
	})
	fam := definition.NewStructureFamily(definition.Common{Name: "tokens"},
		definition.NewDefRef("token_base").Resolve(base),
		[]definition.DefRef{definition.NewDefRef("token_base").Resolve(base)})
	m := buildMap(t, fam)

	_, err := mapper.Encode(m, int64(1))
	assert.Error(t, err)
}
