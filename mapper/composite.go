package mapper

import (
	"bytes"

	"github.com/libyal/dtfabric-go/definition"
	"github.com/libyal/dtfabric-go/diag"
	"github.com/libyal/dtfabric-go/expr"
)

// memberMap pairs a Structure/Union's declared member with the Map built
// for its data type (named reference or inline), mirroring the Definition
// side's [definition.Member].
type memberMap struct {
	member definition.Member
	value  Map
}

// StructureMap decodes the `structure` composite kind: members in
// declaration order, each gated by its optional condition, each checked
// against its pin if one was declared.
type StructureMap struct {
	def     *definition.Structure
	members []memberMap
}

func (m *StructureMap) MapByteStream(data []byte, offset int64, ctx *MapContext) (Value, int64, error) {
	frame := ctx.Child(m.def.Name(), offset)
	sv := NewStructValue()
	pos := offset

	for _, mm := range m.members {
		n, decoded, ok, err := m.decodeMember(data, pos, frame, mm)
		if err != nil {
			return nil, 0, err
		}
		if !ok {
			continue
		}
		sv.Set(mm.member.Name(), decoded)
		frame.Set(mm.member.Name(), decoded)
		pos += n
	}
	return sv, pos - offset, nil
}

// decodeMember evaluates mm's condition (default true), decodes its value if
// the member is present, and validates any pin. ok is false for a member
// whose condition evaluated false: it contributes nothing to the context or
// the consumed byte count.
func (m *StructureMap) decodeMember(data []byte, pos int64, frame *MapContext, mm memberMap) (int64, Value, bool, error) {
	if cond := mm.member.Condition(); cond != nil {
		present, err := expr.EvalCondition(cond, frame)
		if err != nil {
			return 0, nil, false, newDecodeError(diag.E_EVAL_ERROR, m.def.Name(), mm.member.Name(), pos, err.Error())
		}
		if !present {
			return 0, nil, false, nil
		}
	}

	value, n, err := mm.value.MapByteStream(data, pos, frame)
	if err != nil {
		return 0, nil, false, err
	}

	if err := checkPin(data, pos, n, mm.member, m.def.Name()); err != nil {
		return 0, nil, false, err
	}
	return n, value, true, nil
}

// checkPin reports E_CONSTANT_MISMATCH if member pins a value/values and the
// raw bytes just decoded (data[pos:pos+n]) match none of them. Pins compare
// against the member's raw wire bytes rather than its decoded Value, so the
// comparison needs no knowledge of the member's data type.
func checkPin(data []byte, pos, n int64, member definition.Member, ownerName string) error {
	raw := data[pos : pos+n]
	if single, ok := member.Value(); ok {
		if !bytes.Equal(raw, single) {
			return newDecodeError(diag.E_CONSTANT_MISMATCH, ownerName, member.Name(), pos,
				"decoded bytes do not match pinned value")
		}
		return nil
	}
	if set, ok := member.Values(); ok {
		for _, candidate := range set {
			if bytes.Equal(raw, candidate) {
				return nil
			}
		}
		return newDecodeError(diag.E_CONSTANT_MISMATCH, ownerName, member.Name(), pos,
			"decoded bytes match none of the pinned values")
	}
	return nil
}

func (m *StructureMap) ByteSize() (int64, bool) {
	var total int64
	for _, mm := range m.members {
		if mm.member.Condition() != nil {
			return 0, false
		}
		n, ok := mm.value.ByteSize()
		if !ok {
			return 0, false
		}
		total += n
	}
	return total, true
}

// peekMember decodes m's members in order, starting at offset, just far
// enough to reach the named member, returning that member's raw wire bytes.
// Used by structure-group dispatch to read the discriminant without
// decoding (and discarding) the whole base structure twice.
func (m *StructureMap) peekMember(data []byte, offset int64, ctx *MapContext, name string) ([]byte, error) {
	frame := ctx.Child(m.def.Name(), offset)
	pos := offset
	for _, mm := range m.members {
		n, decoded, ok, err := m.decodeMember(data, pos, frame, mm)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if mm.member.Name() == name {
			return data[pos : pos+n], nil
		}
		frame.Set(mm.member.Name(), decoded)
		pos += n
	}
	return nil, newDecodeError(diag.E_INTERNAL, m.def.Name(), name, offset,
		"base structure does not contain identifier member")
}

// UnionMap decodes the `union` composite kind: every member decoded
// independently at the same starting offset; consumed is the maximum member
// size.
type UnionMap struct {
	def     *definition.Union
	members []memberMap
}

func (m *UnionMap) MapByteStream(data []byte, offset int64, ctx *MapContext) (Value, int64, error) {
	frame := ctx.Child(m.def.Name(), offset)
	uv := NewUnionValue()
	var maxConsumed int64

	for _, mm := range m.members {
		value, n, err := mm.value.MapByteStream(data, offset, frame)
		if err != nil {
			return nil, 0, err
		}
		uv.Set(mm.member.Name(), value)
		if n > maxConsumed {
			maxConsumed = n
		}
	}
	return uv, maxConsumed, nil
}

func (m *UnionMap) ByteSize() (int64, bool) {
	var maxSize int64
	for _, mm := range m.members {
		n, ok := mm.value.ByteSize()
		if !ok {
			return 0, false
		}
		if n > maxSize {
			maxSize = n
		}
	}
	return maxSize, true
}
