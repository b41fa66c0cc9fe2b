package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libyal/dtfabric-go/definition"
	"github.com/libyal/dtfabric-go/registry"
)

func int32Def(name string, aliases ...string) *definition.Integer {
	return definition.NewInteger(
		definition.Common{Name: name, Aliases: aliases},
		definition.FixedSizeAttrs{ByteOrder: definition.ByteOrderLittleEndian, Size: definition.FixedSize(4)},
		definition.IntegerFormatSigned,
	)
}

func TestRegisterAndLookup(t *testing.T) {
	r := registry.New()
	def := int32Def("int32_t")
	require.NoError(t, r.Register(def))

	got, ok := r.Lookup("int32_t")
	require.True(t, ok)
	assert.Same(t, def, got)
}

func TestRegisterByAlias(t *testing.T) {
	r := registry.New()
	def := int32Def("int32_t", "int32le_t")
	require.NoError(t, r.Register(def))

	got, ok := r.Lookup("int32le_t")
	require.True(t, ok)
	assert.Same(t, def, got)
}

func TestRegisterDuplicateNameFails(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.Register(int32Def("int32_t")))

	err := r.Register(int32Def("int32_t"))
	require.Error(t, err)
	assert.ErrorIs(t, err, registry.ErrDuplicateName)
}

func TestRegisterDuplicateAliasFails(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.Register(int32Def("a", "shared")))

	err := r.Register(int32Def("b", "shared"))
	require.Error(t, err)
	assert.ErrorIs(t, err, registry.ErrDuplicateName)

	// the colliding definition must not be partially registered.
	_, ok := r.Lookup("b")
	assert.False(t, ok)
}

func TestRegisterDuplicateReportsExisting(t *testing.T) {
	r := registry.New()
	first := int32Def("int32_t")
	require.NoError(t, r.Register(first))

	err := r.Register(int32Def("int32_t"))
	var dup *registry.DuplicateNameError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "int32_t", dup.Key)
	assert.Same(t, first, dup.Existing)
}

func TestRegisterDuplicateIsOrderIndependent(t *testing.T) {
	for _, order := range [][2]string{{"a", "b"}, {"b", "a"}} {
		r := registry.New()
		require.NoError(t, r.Register(int32Def(order[0])))
		err := r.Register(int32Def(order[0]))
		require.Error(t, err)
	}
}

func TestResolveUnresolvedReference(t *testing.T) {
	r := registry.New()
	_, err := r.Resolve("missing_t")
	require.Error(t, err)
	assert.ErrorIs(t, err, registry.ErrUnresolvedReference)
}

func TestRegisterPanicsOnEmptyName(t *testing.T) {
	r := registry.New()
	assert.Panics(t, func() {
		_ = r.Register(definition.NewPadding(definition.Common{}, 4))
	})
}

func TestAllIsDeterministicallySorted(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.Register(int32Def("zebra_t")))
	require.NoError(t, r.Register(int32Def("apple_t")))
	require.NoError(t, r.Register(int32Def("mango_t")))

	all := r.All()
	require.Len(t, all, 3)
	assert.Equal(t, "apple_t", all[0].Name())
	assert.Equal(t, "mango_t", all[1].Name())
	assert.Equal(t, "zebra_t", all[2].Name())
}

func TestAllDoesNotDuplicateAliasedEntries(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.Register(int32Def("int32_t", "int32le_t", "l_int32_t")))

	assert.Len(t, r.All(), 1)
	assert.Equal(t, 1, r.Len())
}

func TestLenCounts(t *testing.T) {
	r := registry.New()
	assert.Equal(t, 0, r.Len())
	require.NoError(t, r.Register(int32Def("a")))
	require.NoError(t, r.Register(int32Def("b")))
	assert.Equal(t, 2, r.Len())
}
