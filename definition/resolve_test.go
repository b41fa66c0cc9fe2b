package definition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libyal/dtfabric-go/definition"
)

func TestMemberResolveDataType(t *testing.T) {
	target := definition.NewInteger(
		definition.Common{Name: "int32_t"},
		definition.FixedSizeAttrs{ByteOrder: definition.ByteOrderLittleEndian, Size: definition.FixedSize(4)},
		definition.IntegerFormatSigned,
	)
	m := definition.NewMember(definition.MemberParams{Name: "x", DataType: definition.NewDefRef("int32_t")}, false)

	resolved := m.ResolveDataType(target)
	ref, ok := resolved.DataType()
	require.True(t, ok)
	assert.True(t, ref.IsResolved())
	got, ok := ref.Resolved()
	require.True(t, ok)
	assert.Same(t, target, got)

	// the original value is untouched (Member is a value type).
	origRef, _ := m.DataType()
	assert.False(t, origRef.IsResolved())
}

func TestMemberResolveDataTypePanicsOnInlineType(t *testing.T) {
	m := definition.NewMember(definition.MemberParams{
		Name:       "pad",
		InlineType: definition.NewPadding(definition.Common{}, 4),
	}, false)
	assert.Panics(t, func() {
		m.ResolveDataType(definition.NewPadding(definition.Common{}, 4))
	})
}

func TestStructureSetMembers(t *testing.T) {
	target := definition.NewInteger(
		definition.Common{Name: "int32_t"},
		definition.FixedSizeAttrs{ByteOrder: definition.ByteOrderLittleEndian, Size: definition.FixedSize(4)},
		definition.IntegerFormatSigned,
	)
	m := definition.NewMember(definition.MemberParams{Name: "x", DataType: definition.NewDefRef("int32_t")}, false)
	s := definition.NewStructure(definition.Common{Name: "point_t"}, []definition.Member{m})

	s.SetMembers([]definition.Member{m.ResolveDataType(target)})

	got, ok := s.Member("x")
	require.True(t, ok)
	ref, _ := got.DataType()
	assert.True(t, ref.IsResolved())
}

func TestStructureSetMembersPanicsOnLengthMismatch(t *testing.T) {
	m := definition.NewMember(definition.MemberParams{Name: "x", DataType: definition.NewDefRef("int32_t")}, false)
	s := definition.NewStructure(definition.Common{Name: "point_t"}, []definition.Member{m})
	assert.Panics(t, func() {
		s.SetMembers(nil)
	})
}

func TestStructureFamilySetBaseAndVariants(t *testing.T) {
	base := definition.NewStructure(definition.Common{Name: "base_t"}, []definition.Member{
		definition.NewMember(definition.MemberParams{Name: "x", DataType: definition.NewDefRef("int32_t")}, false),
	})
	variant := definition.NewStructure(definition.Common{Name: "variant_t"}, []definition.Member{
		definition.NewMember(definition.MemberParams{Name: "x", DataType: definition.NewDefRef("int32_t")}, false),
	})
	fam := definition.NewStructureFamily(
		definition.Common{Name: "family_t"},
		definition.NewDefRef("base_t"),
		[]definition.DefRef{definition.NewDefRef("variant_t")},
	)

	fam.SetBase(fam.Base().Resolve(base))
	fam.SetVariants([]definition.DefRef{fam.Variants()[0].Resolve(variant)})

	assert.True(t, fam.Base().IsResolved())
	assert.True(t, fam.Variants()[0].IsResolved())
}

func TestStructureGroupSetDefault(t *testing.T) {
	variant := definition.NewStructure(definition.Common{Name: "variant_t"}, []definition.Member{
		definition.NewMember(definition.MemberParams{Name: "x", DataType: definition.NewDefRef("int32_t")}, false),
	})
	g := definition.NewStructureGroup(
		definition.Common{Name: "group_t"},
		definition.NewDefRef("base_t"),
		"token_type",
		[]definition.DefRef{definition.NewDefRef("variant_t")},
		nil,
	)

	_, ok := g.Default()
	assert.False(t, ok)

	resolved := g.Variants()[0].Resolve(variant)
	g.SetDefault(&resolved)

	def, ok := g.Default()
	require.True(t, ok)
	assert.True(t, def.IsResolved())

	g.SetDefault(nil)
	_, ok = g.Default()
	assert.False(t, ok)
}
