package mapper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libyal/dtfabric-go/definition"
	"github.com/libyal/dtfabric-go/expr"
	"github.com/libyal/dtfabric-go/mapper"
)

func TestFactoryBuildCachesByDefinitionIdentity(t *testing.T) {
	def := int32LEDef("int32", definition.IntegerFormatSigned)
	f := mapper.NewFactory()

	m1, err := f.Build(def)
	require.NoError(t, err)
	m2, err := f.Build(def)
	require.NoError(t, err)
	assert.Same(t, m1, m2)
}

// buildTriangleSchema constructs the point3d/triangle3d definitions shared
// by the sphere3d and box3d tests.
func buildTriangleSchema() (point3dRef, triangle3dRef definition.DefRef) {
	int32Def := int32LEDef("int32", definition.IntegerFormatSigned)
	int32Ref := definition.NewDefRef("int32").Resolve(int32Def)

	point3d := definition.NewStructure(definition.Common{Name: "point3d"}, []definition.Member{
		member("x", int32Ref),
		member("y", int32Ref),
		member("z", int32Ref),
	})
	point3dRef = definition.NewDefRef("point3d").Resolve(point3d)

	triangle3d := definition.NewStructure(definition.Common{Name: "triangle3d"}, []definition.Member{
		member("p0", point3dRef),
		member("p1", point3dRef),
		member("p2", point3dRef),
	})
	triangle3dRef = definition.NewDefRef("triangle3d").Resolve(triangle3d)
	return point3dRef, triangle3dRef
}

func onePoint() []byte {
	return []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
}

func oneTriangle() []byte {
	var b []byte
	for i := 0; i < 3; i++ {
		b = append(b, onePoint()...)
	}
	return b
}

// TestSphere3dVariableDecode decodes a sphere3d structure where a leading
// int32 triangle count gates a sequence of that many 36-byte triangles.
func TestSphere3dVariableDecode(t *testing.T) {
	_, triangle3dRef := buildTriangleSchema()

	int32Def := int32LEDef("int32", definition.IntegerFormatSigned)
	int32Ref := definition.NewDefRef("int32").Resolve(int32Def)

	trianglesMember := definition.NewMember(definition.MemberParams{
		Name: "triangles",
		InlineType: definition.NewSequence(definition.Common{}, definition.VariableAttrs{
			ElementDataType:  triangle3dRef,
			NumberOfElements: expr.PathExpr{Segments: []string{"number_of_triangles"}},
		}),
	}, false)

	sphere3d := definition.NewStructure(definition.Common{Name: "sphere3d"}, []definition.Member{
		member("number_of_triangles", int32Ref),
		trianglesMember,
	})

	m, err := mapper.NewFactory().Build(sphere3d)
	require.NoError(t, err)

	data := append([]byte{0x02, 0x00, 0x00, 0x00}, append(oneTriangle(), oneTriangle()...)...)
	value, consumed, err := m.MapByteStream(data, 0, mapper.NewMapContext())
	require.NoError(t, err)
	assert.Equal(t, int64(4+72), consumed)

	sv := value.(*mapper.StructValue)
	triangles, ok := sv.Get("triangles")
	require.True(t, ok)
	assert.Len(t, triangles.([]mapper.Value), 2)
}

// TestBox3dSize checks ByteSize of a 12-element fixed-count sequence of
// 36-byte triangles: 432.
func TestBox3dSize(t *testing.T) {
	_, triangle3dRef := buildTriangleSchema()

	trianglesMember := definition.NewMember(definition.MemberParams{
		Name: "triangles",
		InlineType: definition.NewSequence(definition.Common{}, definition.VariableAttrs{
			ElementDataType:  triangle3dRef,
			NumberOfElements: expr.IntLit{Value: 12},
		}),
	}, false)

	box3d := definition.NewStructure(definition.Common{Name: "box3d"}, []definition.Member{trianglesMember})

	m, err := mapper.NewFactory().Build(box3d)
	require.NoError(t, err)

	size, fixed := m.ByteSize()
	require.True(t, fixed)
	assert.Equal(t, int64(432), size)
}
