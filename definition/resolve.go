package definition

// The constructors in this package seal every Definition's name/aliases and
// per-kind attributes at construction time. The handful of fields that start
// life as an unresolved [DefRef] (a member's data_type, a structure-family's
// base/variants, ...) are the one exception: reader.resolve needs to replace
// each of those in place, after all documents have been ingested, without
// reconstructing the owning Definition. The methods below are that narrow
// mutation surface; the only sanctioned mutation is resolution.

// ResolveDataType returns a copy of m with its named data_type reference
// bound to def. Panics if m does not reference a named data type (it may use
// an inline type instead).
func (m Member) ResolveDataType(def Definition) Member {
	if m.dataType.IsZero() {
		panic("definition: member has no named data_type to resolve")
	}
	m.dataType = m.dataType.Resolve(def)
	return m
}

// SetElementDataType overwrites the resolved element type reference of a
// sequence, e.g. once the reader has resolved the named element_data_type.
func (s *Sequence) SetElementDataType(ref DefRef) { s.ElementDataType = ref }

// SetElementDataType overwrites the resolved element type reference of a
// stream.
func (s *Stream) SetElementDataType(ref DefRef) { s.ElementDataType = ref }

// SetElementDataType overwrites the resolved element type reference of a
// string.
func (s *String) SetElementDataType(ref DefRef) { s.ElementDataType = ref }

// SetMembers overwrites s's members, e.g. once the reader has resolved every
// member's data_type reference. Panics if the length does not match s's
// existing member count.
func (s *Structure) SetMembers(members []Member) {
	if len(members) != len(s.members) {
		panic("definition: Structure.SetMembers length mismatch")
	}
	s.members = append([]Member(nil), members...)
}

// SetMembers overwrites u's members. Panics if the length does not match.
func (u *Union) SetMembers(members []Member) {
	if len(members) != len(u.members) {
		panic("definition: Union.SetMembers length mismatch")
	}
	u.members = append([]Member(nil), members...)
}

// SetLayout overwrites f's layout entries, e.g. once the reader has resolved
// each entry's data_type reference. Panics if the length does not match.
func (f *Format) SetLayout(layout []LayoutEntry) {
	if len(layout) != len(f.layout) {
		panic("definition: Format.SetLayout length mismatch")
	}
	f.layout = append([]LayoutEntry(nil), layout...)
}

// SetValueDataType overwrites the enumeration's resolved storage type
// reference.
func (e *Enumeration) SetValueDataType(ref DefRef) { e.valueDataType = ref }

// SetBase overwrites the family's resolved base reference.
func (fam *StructureFamily) SetBase(base DefRef) { fam.base = base }

// SetVariants overwrites the family's resolved variant references. Panics if
// the length does not match.
func (fam *StructureFamily) SetVariants(variants []DefRef) {
	if len(variants) != len(fam.variants) {
		panic("definition: StructureFamily.SetVariants length mismatch")
	}
	fam.variants = append([]DefRef(nil), variants...)
}

// SetBase overwrites the group's resolved base reference.
func (g *StructureGroup) SetBase(base DefRef) { g.base = base }

// SetVariants overwrites the group's resolved variant references. Panics if
// the length does not match.
func (g *StructureGroup) SetVariants(variants []DefRef) {
	if len(variants) != len(g.variants) {
		panic("definition: StructureGroup.SetVariants length mismatch")
	}
	g.variants = append([]DefRef(nil), variants...)
}

// SetDefault overwrites the group's resolved default-variant reference, or
// clears it when def is nil.
func (g *StructureGroup) SetDefault(def *DefRef) {
	if def == nil {
		g.def = nil
		return
	}
	ref := *def
	g.def = &ref
}
