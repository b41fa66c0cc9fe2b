// Package mapper builds and runs the DataTypeMap tree. A [Factory] turns a
// resolved [definition.Definition] into a [Map]; a Map
// decodes a byte buffer into a [Value] and reports how many bytes it
// consumed, or computes a fixed encoded size without any bytes at all.
package mapper

// Value is a decoded dtFabric value. The concrete type is always one of int64, float64, bool, string, []byte,
// uuid.UUID, *StructValue, *UnionValue, or []Value: a closed set, matching
// [definition.Definition]'s one-struct-per-kind discipline on the value side
// instead of the schema side.
type Value any

// StructValue is the decoded value of a structure or format: an ordered
// mapping from member name to decoded value. Order matches declaration
// order, not insertion order of some other sort, so re-encoding (where
// supported) round-trips byte-for-byte.
type StructValue struct {
	names  []string
	values map[string]Value
}

// NewStructValue returns an empty StructValue.
func NewStructValue() *StructValue {
	return &StructValue{values: make(map[string]Value)}
}

// Set records name's decoded value, appending name to the declaration order
// the first time it is set.
func (s *StructValue) Set(name string, v Value) {
	if _, exists := s.values[name]; !exists {
		s.names = append(s.names, name)
	}
	s.values[name] = v
}

// Get returns the value stored under name, or (nil, false) if name was never
// set (e.g. a conditional member whose condition evaluated false).
func (s *StructValue) Get(name string) (Value, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Names returns the member names in declaration order.
func (s *StructValue) Names() []string { return append([]string(nil), s.names...) }

// UnionValue is the decoded value of a union: every member decoded
// independently at the same starting offset.
type UnionValue struct {
	names  []string
	values map[string]Value
}

// NewUnionValue returns an empty UnionValue.
func NewUnionValue() *UnionValue {
	return &UnionValue{values: make(map[string]Value)}
}

// Set records member name's decoded value.
func (u *UnionValue) Set(name string, v Value) {
	if _, exists := u.values[name]; !exists {
		u.names = append(u.names, name)
	}
	u.values[name] = v
}

// Get returns the value decoded for member name, or (nil, false) if absent.
func (u *UnionValue) Get(name string) (Value, bool) {
	v, ok := u.values[name]
	return v, ok
}

// Names returns the member names in declaration order.
func (u *UnionValue) Names() []string { return append([]string(nil), u.names...) }
