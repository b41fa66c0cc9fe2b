package definition

// LayoutEntry is one `{data_type, offset}` entry of a [Format]'s layout.
type LayoutEntry struct {
	DataType DefRef
	Offset   int64
}

// Format is the `format` layout kind: a top-level format descriptor whose
// entries are decoded at their specified absolute offsets.
type Format struct {
	common
	layout []LayoutEntry
}

func NewFormat(c Common, layout []LayoutEntry) *Format {
	if len(layout) == 0 {
		panic("definition: format requires at least one layout entry")
	}
	return &Format{common: newCommon(KindFormat, c), layout: append([]LayoutEntry(nil), layout...)}
}

// Layout returns the format's entries in declaration order.
func (f *Format) Layout() []LayoutEntry { return append([]LayoutEntry(nil), f.layout...) }

// StructureFamily is the `structure-family` layout kind: an umbrella
// grouping variant structures that share a common base structure. Every
// member-structure must define (at minimum) every member named in the base
// with compatible data types; selection is caller-driven.
type StructureFamily struct {
	common
	base     DefRef
	variants []DefRef
}

func NewStructureFamily(c Common, base DefRef, variants []DefRef) *StructureFamily {
	if base.IsZero() {
		panic("definition: structure-family requires a base")
	}
	if len(variants) == 0 {
		panic("definition: structure-family requires at least one variant")
	}
	return &StructureFamily{
		common:   newCommon(KindStructureFamily, c),
		base:     base,
		variants: append([]DefRef(nil), variants...),
	}
}

func (f *StructureFamily) Base() DefRef { return f.base }

func (f *StructureFamily) Variants() []DefRef { return append([]DefRef(nil), f.variants...) }

// Variant looks up a variant by name.
func (f *StructureFamily) Variant(name string) (DefRef, bool) {
	for _, v := range f.variants {
		if v.Name() == name {
			return v, true
		}
	}
	return DefRef{}, false
}

// StructureGroup is the `structure-group` layout kind: a tagged union of
// structures dispatched by a discriminant member value.
type StructureGroup struct {
	common
	base       DefRef
	identifier string
	variants   []DefRef
	def        *DefRef
}

func NewStructureGroup(c Common, base DefRef, identifier string, variants []DefRef, defaultVariant *DefRef) *StructureGroup {
	if base.IsZero() {
		panic("definition: structure-group requires a base")
	}
	if identifier == "" {
		panic("definition: structure-group requires an identifier member name")
	}
	if len(variants) == 0 {
		panic("definition: structure-group requires at least one variant")
	}
	g := &StructureGroup{
		common:     newCommon(KindStructureGroup, c),
		base:       base,
		identifier: identifier,
		variants:   append([]DefRef(nil), variants...),
	}
	if defaultVariant != nil {
		ref := *defaultVariant
		g.def = &ref
	}
	return g
}

func (g *StructureGroup) Base() DefRef { return g.base }

// Identifier returns the discriminant member's name within the base
// structure.
func (g *StructureGroup) Identifier() string { return g.identifier }

func (g *StructureGroup) Variants() []DefRef { return append([]DefRef(nil), g.variants...) }

// Default returns the fallback variant and true if one was named.
func (g *StructureGroup) Default() (DefRef, bool) {
	if g.def == nil {
		return DefRef{}, false
	}
	return *g.def, true
}
