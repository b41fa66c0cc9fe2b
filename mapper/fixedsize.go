package mapper

import (
	"math"

	"github.com/google/uuid"

	"github.com/libyal/dtfabric-go/definition"
	"github.com/libyal/dtfabric-go/diag"
)

// nativeWordSize resolves definition.Size, including the `native` literal,
// against the host's word width.
func nativeWordSize(s definition.Size) int64 {
	return int64(s.Resolve())
}

// IntegerMap decodes the `integer` fixed-size kind.
type IntegerMap struct {
	def *definition.Integer
}

func (m *IntegerMap) size() int64 { return nativeWordSize(m.def.Size) }

func (m *IntegerMap) MapByteStream(data []byte, offset int64, ctx *MapContext) (Value, int64, error) {
	n := m.size()
	if err := requireBytes(data, offset, n, m.def.Name()); err != nil {
		return nil, 0, err
	}
	u := decodeUint(data, offset, byteOrderOf(m.def.ByteOrder), int(n))
	if m.def.Format == definition.IntegerFormatSigned {
		return signExtend(u, int(n)), n, nil
	}
	return int64(u), n, nil
}

func (m *IntegerMap) ByteSize() (int64, bool) { return m.size(), true }

// BooleanMap decodes the `boolean` fixed-size kind.
type BooleanMap struct {
	def *definition.Boolean
}

func (m *BooleanMap) size() int64 { return nativeWordSize(m.def.Size) }

func (m *BooleanMap) MapByteStream(data []byte, offset int64, ctx *MapContext) (Value, int64, error) {
	n := m.size()
	if err := requireBytes(data, offset, n, m.def.Name()); err != nil {
		return nil, 0, err
	}
	u := decodeUint(data, offset, byteOrderOf(m.def.ByteOrder), int(n))
	v := int64(u)
	switch {
	case v == m.def.FalseValue:
		return false, n, nil
	case !m.def.HasTrueValue() || v == m.def.TrueValue:
		return true, n, nil
	default:
		return nil, 0, newDecodeError(diag.E_INVALID_BOOLEAN_ENCODING, m.def.Name(), "", offset,
			"decoded value matches neither false_value nor true_value")
	}
}

func (m *BooleanMap) ByteSize() (int64, bool) { return m.size(), true }

// CharacterMap decodes the `character` fixed-size kind: a single code unit,
// reported as its numeric code point.
type CharacterMap struct {
	def *definition.Character
}

func (m *CharacterMap) size() int64 { return nativeWordSize(m.def.Size) }

func (m *CharacterMap) MapByteStream(data []byte, offset int64, ctx *MapContext) (Value, int64, error) {
	n := m.size()
	if err := requireBytes(data, offset, n, m.def.Name()); err != nil {
		return nil, 0, err
	}
	u := decodeUint(data, offset, byteOrderOf(m.def.ByteOrder), int(n))
	return int64(u), n, nil
}

func (m *CharacterMap) ByteSize() (int64, bool) { return m.size(), true }

// FloatingPointMap decodes the `floating-point` fixed-size kind.
type FloatingPointMap struct {
	def *definition.FloatingPoint
}

func (m *FloatingPointMap) size() int64 { return nativeWordSize(m.def.Size) }

func (m *FloatingPointMap) MapByteStream(data []byte, offset int64, ctx *MapContext) (Value, int64, error) {
	n := m.size()
	if err := requireBytes(data, offset, n, m.def.Name()); err != nil {
		return nil, 0, err
	}
	order := byteOrderOf(m.def.ByteOrder)
	if n == 4 {
		return float64(math.Float32frombits(order.Uint32(data[offset : offset+4]))), n, nil
	}
	return math.Float64frombits(order.Uint64(data[offset : offset+8])), n, nil
}

func (m *FloatingPointMap) ByteSize() (int64, bool) { return m.size(), true }

// UUIDMap decodes the `uuid` fixed-size kind: 16 bytes, with byte_order
// governing the first three fields per the standard GUID field-swap
// convention.
type UUIDMap struct {
	def *definition.UUID
}

func (m *UUIDMap) MapByteStream(data []byte, offset int64, ctx *MapContext) (Value, int64, error) {
	if err := requireBytes(data, offset, 16, m.def.Name()); err != nil {
		return nil, 0, err
	}
	raw := data[offset : offset+16]
	var id uuid.UUID
	copy(id[:], raw)

	if resolveByteOrder(m.def.ByteOrder) == definition.ByteOrderLittleEndian {
		// GUID field-swap: time_low, time_mid, time_hi_and_version are each
		// stored little-endian and must be reversed to RFC 4122 big-endian
		// field order; clock_seq and node are already byte-order-agnostic.
		reverse(id[0:4])
		reverse(id[4:6])
		reverse(id[6:8])
	}
	return id, 16, nil
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

func (m *UUIDMap) ByteSize() (int64, bool) { return 16, true }
