package mapper_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/uuid"

	"github.com/libyal/dtfabric-go/definition"
	"github.com/libyal/dtfabric-go/diag"
	"github.com/libyal/dtfabric-go/mapper"
)

func buildMap(t *testing.T, def definition.Definition) mapper.Map {
	t.Helper()
	m, err := mapper.NewFactory().Build(def)
	require.NoError(t, err)
	return m
}

func TestIntegerMapSignedLittleEndian(t *testing.T) {
	def := definition.NewInteger(
		definition.Common{Name: "int32le"},
		definition.FixedSizeAttrs{ByteOrder: definition.ByteOrderLittleEndian, Size: definition.FixedSize(4)},
		definition.IntegerFormatSigned,
	)
	m := buildMap(t, def)

	value, consumed, err := m.MapByteStream([]byte{0xFE, 0xFF, 0xFF, 0xFF}, 0, mapper.NewMapContext())
	require.NoError(t, err)
	assert.Equal(t, int64(4), consumed)
	assert.Equal(t, int64(-2), value)

	n, ok := m.ByteSize()
	assert.True(t, ok)
	assert.Equal(t, int64(4), n)
}

func TestIntegerMapUnsignedBigEndian(t *testing.T) {
	def := definition.NewInteger(
		definition.Common{Name: "uint16be"},
		definition.FixedSizeAttrs{ByteOrder: definition.ByteOrderBigEndian, Size: definition.FixedSize(2)},
		definition.IntegerFormatUnsigned,
	)
	m := buildMap(t, def)

	value, consumed, err := m.MapByteStream([]byte{0x01, 0x00}, 0, mapper.NewMapContext())
	require.NoError(t, err)
	assert.Equal(t, int64(2), consumed)
	assert.Equal(t, int64(256), value)
}

func TestIntegerMapTooSmall(t *testing.T) {
	def := definition.NewInteger(
		definition.Common{Name: "int32le"},
		definition.FixedSizeAttrs{ByteOrder: definition.ByteOrderLittleEndian, Size: definition.FixedSize(4)},
		definition.IntegerFormatSigned,
	)
	m := buildMap(t, def)

	_, _, err := m.MapByteStream([]byte{0x01, 0x02}, 0, mapper.NewMapContext())
	require.Error(t, err)
	var de *mapper.DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, diag.E_BYTE_STREAM_TOO_SMALL, de.Code())
}

func TestBooleanMapFalseAndTrue(t *testing.T) {
	def := definition.NewBoolean(
		definition.Common{Name: "bool32"},
		definition.FixedSizeAttrs{ByteOrder: definition.ByteOrderLittleEndian, Size: definition.FixedSize(4)},
		0, nil,
	)
	m := buildMap(t, def)

	value, _, err := m.MapByteStream([]byte{0, 0, 0, 0}, 0, mapper.NewMapContext())
	require.NoError(t, err)
	assert.Equal(t, false, value)

	value, _, err = m.MapByteStream([]byte{1, 0, 0, 0}, 0, mapper.NewMapContext())
	require.NoError(t, err)
	assert.Equal(t, true, value)
}

func TestBooleanMapExplicitTrueValueRejectsOther(t *testing.T) {
	trueValue := int64(5)
	def := definition.NewBoolean(
		definition.Common{Name: "bool8"},
		definition.FixedSizeAttrs{ByteOrder: definition.ByteOrderLittleEndian, Size: definition.FixedSize(1)},
		0, &trueValue,
	)
	m := buildMap(t, def)

	value, _, err := m.MapByteStream([]byte{5}, 0, mapper.NewMapContext())
	require.NoError(t, err)
	assert.Equal(t, true, value)

	_, _, err = m.MapByteStream([]byte{3}, 0, mapper.NewMapContext())
	require.Error(t, err)
	var de *mapper.DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, diag.E_INVALID_BOOLEAN_ENCODING, de.Code())
}

func TestFloatingPointMap(t *testing.T) {
	def := definition.NewFloatingPoint(
		definition.Common{Name: "float64le"},
		definition.FixedSizeAttrs{ByteOrder: definition.ByteOrderLittleEndian, Size: definition.FixedSize(8)},
	)
	m := buildMap(t, def)

	// 1.5 in binary64 little-endian.
	data := []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xF8, 0x3F}
	value, consumed, err := m.MapByteStream(data, 0, mapper.NewMapContext())
	require.NoError(t, err)
	assert.Equal(t, int64(8), consumed)
	assert.Equal(t, 1.5, value)
}

func TestUUIDMapLittleEndianFieldSwap(t *testing.T) {
	def := definition.NewUUID(definition.Common{Name: "guid"}, definition.ByteOrderLittleEndian, definition.UnitsBytes)
	m := buildMap(t, def)

	data := []byte{
		0x01, 0x02, 0x03, 0x04, // time_low, little-endian on the wire
		0x05, 0x06, // time_mid, little-endian on the wire
		0x07, 0x08, // time_hi_and_version, little-endian on the wire
		0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F, 0x10, // clock_seq + node, unaffected
	}
	value, consumed, err := m.MapByteStream(data, 0, mapper.NewMapContext())
	require.NoError(t, err)
	assert.Equal(t, int64(16), consumed)
	assert.Equal(t, "04030201-0605-0807-090a-0b0c0d0e0f10", value.(uuid.UUID).String())
}

func TestCharacterMap(t *testing.T) {
	def := definition.NewCharacter(
		definition.Common{Name: "char16le"},
		definition.FixedSizeAttrs{ByteOrder: definition.ByteOrderLittleEndian, Size: definition.FixedSize(2)},
	)
	m := buildMap(t, def)

	value, consumed, err := m.MapByteStream([]byte{0x41, 0x00}, 0, mapper.NewMapContext())
	require.NoError(t, err)
	assert.Equal(t, int64(2), consumed)
	assert.Equal(t, int64(0x41), value)
}
