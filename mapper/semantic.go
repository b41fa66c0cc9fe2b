package mapper

import "github.com/libyal/dtfabric-go/definition"

// ConstantMap decodes the `constant` semantic kind. A constant is a named
// literal a member may reference by data_type to pin an expected value
// elsewhere; it has no wire representation of its own, so decoding it
// consumes no bytes and simply yields the declared literal.
type ConstantMap struct {
	def *definition.Constant
}

func (m *ConstantMap) MapByteStream(data []byte, offset int64, ctx *MapContext) (Value, int64, error) {
	return m.def.Value, 0, nil
}

func (m *ConstantMap) ByteSize() (int64, bool) { return 0, true }

// EnumerationMap decodes the `enumeration` semantic kind: its underlying
// value_data_type Map supplies the raw integer, which is then mapped to its
// symbolic name, or returned as-is when no variant matches.
type EnumerationMap struct {
	def       *definition.Enumeration
	valueType Map
}

func (m *EnumerationMap) MapByteStream(data []byte, offset int64, ctx *MapContext) (Value, int64, error) {
	raw, n, err := m.valueType.MapByteStream(data, offset, ctx)
	if err != nil {
		return nil, 0, err
	}
	number, ok := raw.(int64)
	if !ok {
		return raw, n, nil
	}
	if member, found := m.def.ByNumber(number); found {
		return member.Name, n, nil
	}
	return number, n, nil
}

func (m *EnumerationMap) ByteSize() (int64, bool) { return m.valueType.ByteSize() }
