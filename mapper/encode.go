package mapper

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/libyal/dtfabric-go/definition"
)

// Encode computes the wire bytes for v under m's definition: the inverse of
// [Map.MapByteStream] for the kinds whose encoding is deterministic.
//
// Fixed-size kinds, streams, strings, sequences, and structures encode.
// Kinds whose decode is dispatching or caller-driven (union, format,
// structure-family, structure-group) have no single inverse and report an
// error instead.
func Encode(m Map, v Value) ([]byte, error) {
	enc, ok := m.(encoder)
	if !ok {
		return nil, fmt.Errorf("mapper: %T does not support encoding", m)
	}
	return enc.appendValue(nil, v)
}

// encoder is implemented by every Map variant with a deterministic inverse.
// appendValue appends v's wire bytes to buf.
type encoder interface {
	appendValue(buf []byte, v Value) ([]byte, error)
}

func appendUint(buf []byte, u uint64, order definition.ByteOrder, size int) []byte {
	le := resolveByteOrder(order) == definition.ByteOrderLittleEndian
	for i := 0; i < size; i++ {
		shift := uint(i) * 8
		if !le {
			shift = uint(size-1-i) * 8
		}
		buf = append(buf, byte(u>>shift))
	}
	return buf
}

func encodeTypeError(kind string, v Value) error {
	return fmt.Errorf("mapper: cannot encode %T as %s", v, kind)
}

func (m *IntegerMap) appendValue(buf []byte, v Value) ([]byte, error) {
	n, ok := v.(int64)
	if !ok {
		return nil, encodeTypeError("integer", v)
	}
	return appendUint(buf, uint64(n), m.def.ByteOrder, int(m.size())), nil
}

func (m *BooleanMap) appendValue(buf []byte, v Value) ([]byte, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, encodeTypeError("boolean", v)
	}
	enc := m.def.FalseValue
	if b {
		if m.def.HasTrueValue() {
			enc = m.def.TrueValue
		} else {
			enc = m.def.FalseValue + 1
		}
	}
	return appendUint(buf, uint64(enc), m.def.ByteOrder, int(m.size())), nil
}

func (m *CharacterMap) appendValue(buf []byte, v Value) ([]byte, error) {
	n, ok := v.(int64)
	if !ok {
		return nil, encodeTypeError("character", v)
	}
	return appendUint(buf, uint64(n), m.def.ByteOrder, int(m.size())), nil
}

func (m *FloatingPointMap) appendValue(buf []byte, v Value) ([]byte, error) {
	f, ok := v.(float64)
	if !ok {
		return nil, encodeTypeError("floating-point", v)
	}
	if m.size() == 4 {
		return appendUint(buf, uint64(math.Float32bits(float32(f))), m.def.ByteOrder, 4), nil
	}
	return appendUint(buf, math.Float64bits(f), m.def.ByteOrder, 8), nil
}

func (m *UUIDMap) appendValue(buf []byte, v Value) ([]byte, error) {
	id, ok := v.(uuid.UUID)
	if !ok {
		return nil, encodeTypeError("uuid", v)
	}
	raw := id
	if resolveByteOrder(m.def.ByteOrder) == definition.ByteOrderLittleEndian {
		// Invert the decode-time GUID field swap.
		reverse(raw[0:4])
		reverse(raw[4:6])
		reverse(raw[6:8])
	}
	return append(buf, raw[:]...), nil
}

// appendTerminator appends attrs' terminator when it is the run's only end
// condition. A terminator that merely co-exists with a count/size bound is
// not re-emitted: decoding under the bound never read one.
func appendTerminator(buf []byte, attrs definition.VariableAttrs) []byte {
	if attrs.ElementsTerminator != nil && attrs.NumberOfElements == nil && attrs.ElementsDataSize == nil {
		buf = append(buf, attrs.ElementsTerminator...)
	}
	return buf
}

func (m *SequenceMap) appendValue(buf []byte, v Value) ([]byte, error) {
	elements, ok := v.([]Value)
	if !ok {
		return nil, encodeTypeError("sequence", v)
	}
	enc, ok := m.element.(encoder)
	if !ok {
		return nil, fmt.Errorf("mapper: sequence %q element type does not support encoding", m.def.Name())
	}
	var err error
	for _, e := range elements {
		if buf, err = enc.appendValue(buf, e); err != nil {
			return nil, err
		}
	}
	return appendTerminator(buf, m.def.VariableAttrs), nil
}

func (m *StreamMap) appendValue(buf []byte, v Value) ([]byte, error) {
	raw, ok := v.([]byte)
	if !ok {
		return nil, encodeTypeError("stream", v)
	}
	buf = append(buf, raw...)
	return appendTerminator(buf, m.def.VariableAttrs), nil
}

func (m *StringMap) appendValue(buf []byte, v Value) ([]byte, error) {
	text, ok := v.(string)
	if !ok {
		return nil, encodeTypeError("string", v)
	}
	enc, ok := textEncodings[m.def.Encoding]
	if !ok {
		return nil, fmt.Errorf("mapper: unknown text encoding %s", m.def.Encoding)
	}
	raw, err := enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, err
	}
	buf = append(buf, raw...)
	return appendTerminator(buf, m.def.VariableAttrs), nil
}

// appendAligned pads buf to the next alignment boundary, rel being the
// offset of buf's end relative to the containing structure's start. The
// decoded padding bytes are re-emitted verbatim when their length matches;
// zero fill covers a value built without them.
func (m *PaddingMap) appendAligned(buf []byte, rel int64, v Value) []byte {
	align := int64(m.def.AlignmentSize)
	skip := (align - rel%align) % align
	if raw, ok := v.([]byte); ok && int64(len(raw)) == skip {
		return append(buf, raw...)
	}
	return append(buf, make([]byte, skip)...)
}

func (m *StructureMap) appendValue(buf []byte, v Value) ([]byte, error) {
	sv, ok := v.(*StructValue)
	if !ok {
		return nil, encodeTypeError("structure", v)
	}
	start := int64(len(buf))
	for _, mm := range m.members {
		mv, present := sv.Get(mm.member.Name())
		if !present {
			// conditional member whose condition evaluated false
			continue
		}
		if pad, isPad := mm.value.(*PaddingMap); isPad {
			buf = pad.appendAligned(buf, int64(len(buf))-start, mv)
			continue
		}
		enc, ok := mm.value.(encoder)
		if !ok {
			return nil, fmt.Errorf("mapper: structure %q member %q does not support encoding",
				m.def.Name(), mm.member.Name())
		}
		var err error
		if buf, err = enc.appendValue(buf, mv); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

func (m *ConstantMap) appendValue(buf []byte, v Value) ([]byte, error) {
	// constants have no wire representation
	return buf, nil
}

func (m *EnumerationMap) appendValue(buf []byte, v Value) ([]byte, error) {
	enc, ok := m.valueType.(encoder)
	if !ok {
		return nil, fmt.Errorf("mapper: enumeration %q storage type does not support encoding", m.def.Name())
	}
	if name, isName := v.(string); isName {
		for _, member := range m.def.Members() {
			if member.Name == name {
				return enc.appendValue(buf, member.Number)
			}
		}
		return nil, fmt.Errorf("mapper: enumeration %q has no value named %q", m.def.Name(), name)
	}
	return enc.appendValue(buf, v)
}
