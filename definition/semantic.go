package definition

// Constant is the `constant` semantic kind: holds a single literal value.
type Constant struct {
	common
	Value int64
}

func NewConstant(c Common, value int64) *Constant {
	return &Constant{common: newCommon(KindConstant, c), Value: value}
}

// EnumerationMember is one `{name, number, description, aliases}` entry of
// an enumeration.
type EnumerationMember struct {
	Name        string
	Number      int64
	Description string
	Aliases     []string
}

// Enumeration is the `enumeration` semantic kind: an ordered list of named
// numeric variants over an underlying integer storage type. A value decodes
// as the symbolic name when it matches a declared variant, otherwise as the
// raw integer.
type Enumeration struct {
	common
	members       []EnumerationMember
	valueDataType DefRef
}

// NewEnumeration constructs an Enumeration. valueDataType names the integer
// definition whose byte_order/size govern how the enumeration's raw value is
// decoded off the wire, mirroring how a libyal dtFabric schema names an
// enumeration's `value_data_type`.
func NewEnumeration(c Common, members []EnumerationMember, valueDataType DefRef) *Enumeration {
	if len(members) == 0 {
		panic("definition: enumeration requires at least one member")
	}
	if valueDataType.IsZero() {
		panic("definition: enumeration requires value_data_type")
	}
	seen := make(map[int64]bool, len(members))
	cloned := make([]EnumerationMember, len(members))
	for i, m := range members {
		if seen[m.Number] {
			panic("definition: enumeration has duplicate number")
		}
		seen[m.Number] = true
		cloned[i] = EnumerationMember{
			Name:        m.Name,
			Number:      m.Number,
			Description: m.Description,
			Aliases:     append([]string(nil), m.Aliases...),
		}
	}
	return &Enumeration{common: newCommon(KindEnumeration, c), members: cloned, valueDataType: valueDataType}
}

// ValueDataType returns the reference to the enumeration's underlying
// integer storage definition.
func (e *Enumeration) ValueDataType() DefRef { return e.valueDataType }

// Members returns the enumeration's variants in declaration order.
func (e *Enumeration) Members() []EnumerationMember {
	return append([]EnumerationMember(nil), e.members...)
}

// ByNumber looks up the variant whose Number matches n.
func (e *Enumeration) ByNumber(n int64) (EnumerationMember, bool) {
	for _, m := range e.members {
		if m.Number == n {
			return m, true
		}
	}
	return EnumerationMember{}, false
}
