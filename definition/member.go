package definition

import "github.com/libyal/dtfabric-go/expr"

// MemberParams constructs a [Member]. Exactly one of DataType or InlineType
// must be set, and Value/Values are mutually exclusive.
type MemberParams struct {
	Name        string
	Aliases     []string
	Description string
	Condition   *expr.Condition
	DataType    DefRef     // named reference; zero value if using InlineType
	InlineType  Definition // anonymous inline definition; nil if using DataType
	Value       []byte     // pinned expected byte pattern; nil if unset
	Values      [][]byte   // pinned accepted set; nil if unset
}

// Member is a member of a [Structure] or [Union].
type Member struct {
	name        string
	aliases     []string
	description string
	condition   *expr.Condition
	dataType    DefRef
	inlineType  Definition
	value       []byte
	values      [][]byte
}

// NewMember validates p and constructs a Member. inUnion
// relaxes the Name requirement, since union members may be anonymous.
func NewMember(p MemberParams, inUnion bool) Member {
	if p.Name == "" && !inUnion {
		panic("definition: member Name is required outside a union")
	}

	hasDataType := !p.DataType.IsZero()
	hasInline := p.InlineType != nil
	if hasDataType == hasInline {
		panic("definition: member requires exactly one of data_type or type")
	}
	if hasInline {
		if !p.InlineType.Kind().IsInlineAllowed() {
			panic("definition: member type " + p.InlineType.Kind().String() + " cannot be declared inline")
		}
	}

	if p.Value != nil && p.Values != nil {
		panic("definition: member value and values are mutually exclusive")
	}

	return Member{
		name:        p.Name,
		aliases:     append([]string(nil), p.Aliases...),
		description: p.Description,
		condition:   p.Condition,
		dataType:    p.DataType,
		inlineType:  p.InlineType,
		value:       append([]byte(nil), p.Value...),
		values:      cloneByteSlices(p.Values),
	}
}

func cloneByteSlices(in [][]byte) [][]byte {
	if in == nil {
		return nil
	}
	out := make([][]byte, len(in))
	for i, v := range in {
		out[i] = append([]byte(nil), v...)
	}
	return out
}

func (m Member) Name() string { return m.name }

func (m Member) Aliases() []string { return append([]string(nil), m.aliases...) }

func (m Member) Description() string { return m.description }

// Condition returns the parsed gating expression, or nil if the member is
// unconditional.
func (m Member) Condition() *expr.Condition { return m.condition }

// DataType returns the named reference and true, or (zero, false) if this
// member uses an inline type.
func (m Member) DataType() (DefRef, bool) {
	if m.dataType.IsZero() {
		return DefRef{}, false
	}
	return m.dataType, true
}

// InlineType returns the anonymous inline definition and true, or (nil,
// false) if this member references a named type.
func (m Member) InlineType() (Definition, bool) {
	return m.inlineType, m.inlineType != nil
}

// Value returns the pinned expected byte pattern, or (nil, false) if unset.
func (m Member) Value() ([]byte, bool) {
	if m.value == nil {
		return nil, false
	}
	return append([]byte(nil), m.value...), true
}

// Values returns the pinned accepted set, or (nil, false) if unset.
func (m Member) Values() ([][]byte, bool) {
	if m.values == nil {
		return nil, false
	}
	return cloneByteSlices(m.values), true
}

// HasPin reports whether Value or Values was set.
func (m Member) HasPin() bool {
	return m.value != nil || m.values != nil
}
