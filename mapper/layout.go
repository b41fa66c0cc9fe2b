package mapper

import (
	"bytes"

	"github.com/libyal/dtfabric-go/definition"
	"github.com/libyal/dtfabric-go/diag"
)

// layoutEntryMap pairs a Format's declared layout entry with the Map built
// for its data type.
type layoutEntryMap struct {
	name   string
	offset int64
	value  Map
}

// FormatMap decodes the `format` layout kind: entries at their declared
// absolute offsets.
type FormatMap struct {
	def     *definition.Format
	entries []layoutEntryMap
}

func (m *FormatMap) MapByteStream(data []byte, offset int64, ctx *MapContext) (Value, int64, error) {
	return m.mapEntries(data, offset, ctx, nil)
}

// MapEntries decodes only the named subset of layout entries, in
// declaration order, so a caller peeking one field (a structure-group
// discriminant, say) need not decode the entire format. names == nil
// decodes every entry.
func (m *FormatMap) MapEntries(data []byte, offset int64, ctx *MapContext, names []string) (Value, int64, error) {
	return m.mapEntries(data, offset, ctx, names)
}

func (m *FormatMap) mapEntries(data []byte, base int64, ctx *MapContext, names []string) (Value, int64, error) {
	sv := NewStructValue()
	var maxEnd int64
	for _, e := range m.entries {
		if names != nil && !contains(names, e.name) {
			continue
		}
		abs := base + e.offset
		value, n, err := e.value.MapByteStream(data, abs, ctx)
		if err != nil {
			return nil, 0, err
		}
		sv.Set(e.name, value)
		ctx.Set(e.name, value)
		if end := abs + n - base; end > maxEnd {
			maxEnd = end
		}
	}
	return sv, maxEnd, nil
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func (m *FormatMap) ByteSize() (int64, bool) {
	var maxEnd int64
	for _, e := range m.entries {
		n, ok := e.value.ByteSize()
		if !ok {
			return 0, false
		}
		if end := e.offset + n; end > maxEnd {
			maxEnd = end
		}
	}
	return maxEnd, true
}

// FamilyMap represents the `structure-family` layout kind: an umbrella over
// variant structure Maps the caller selects from by name. It has no
// MapByteStream of its own; the caller must pre-select a variant by name.
type FamilyMap struct {
	def      *definition.StructureFamily
	base     Map
	variants map[string]Map
	order    []string
}

// Variant returns the Map for the named variant, or (nil, false) if name
// does not name one of the family's declared variants.
func (m *FamilyMap) Variant(name string) (Map, bool) {
	v, ok := m.variants[name]
	return v, ok
}

// Variants returns the family's variant names in declaration order.
func (m *FamilyMap) Variants() []string { return append([]string(nil), m.order...) }

func (m *FamilyMap) MapByteStream(data []byte, offset int64, ctx *MapContext) (Value, int64, error) {
	return nil, 0, newDecodeError(diag.E_INTERNAL, m.def.Name(), "", offset,
		"structure-family requires the caller to select a variant via Variant(name)")
}

func (m *FamilyMap) ByteSize() (int64, bool) { return 0, false }

// GroupMap represents the `structure-group` layout kind: a tagged union
// dispatched by a discriminant member read from the base structure.
type GroupMap struct {
	def        *definition.StructureGroup
	base       *StructureMap
	variants   []groupVariant
	defaultMap Map
}

type groupVariant struct {
	name string
	pin  []byte
	m    Map
}

func (m *GroupMap) MapByteStream(data []byte, offset int64, ctx *MapContext) (Value, int64, error) {
	discriminant, err := m.base.peekMember(data, offset, ctx, m.def.Identifier())
	if err != nil {
		return nil, 0, err
	}

	for _, v := range m.variants {
		if bytes.Equal(discriminant, v.pin) {
			return v.m.MapByteStream(data, offset, ctx)
		}
	}
	if m.defaultMap != nil {
		return m.defaultMap.MapByteStream(data, offset, ctx)
	}
	return nil, 0, newDecodeError(diag.E_UNKNOWN_GROUP_VARIANT, m.def.Name(), m.def.Identifier(), offset,
		"discriminant value matches no variant and no default is declared")
}

func (m *GroupMap) ByteSize() (int64, bool) { return 0, false }
