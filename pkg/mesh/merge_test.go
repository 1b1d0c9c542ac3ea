package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gomesh/internal/testmesh"
	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
)

func TestMerge(t *testing.T) {
	a := testmesh.Cube()
	b := testmesh.Tetrahedron()
	b.Translate(geometry.NewVector3(5, 0, 0))

	aVertices, aTriangles := a.VertexCount(), a.TriangleCount()
	bVertices, bTriangles := b.VertexCount(), b.TriangleCount()
	bVertexData, bTriangleData := b.Vertices(), b.Triangles()

	require.NoError(t, a.Merge(b))

	assert.Equal(t, aVertices+bVertices, a.VertexCount())
	assert.Equal(t, aTriangles+bTriangles, a.TriangleCount())

	merged := a.Triangles()
	for i, tri := range bTriangleData {
		got := merged[aTriangles+i]
		for j := range tri {
			assert.Equal(t, tri[j]+aVertices, got[j])
		}
	}
	assert.Equal(t, bVertexData, a.Vertices()[aVertices:])

	assert.True(t, b.IsEmpty())
	assert.Zero(t, b.TriangleCount())
}

func TestMergeVolumeAdds(t *testing.T) {
	a := testmesh.Cube()
	b := testmesh.Cube()
	b.Translate(geometry.NewVector3(3, 0, 0))

	require.NoError(t, a.Merge(b))

	volume, err := a.Volume()
	require.NoError(t, err)
	assert.InDelta(t, 2.0, volume, 1e-9)
}

func TestMergeSelf(t *testing.T) {
	m := testmesh.Cube()
	assert.ErrorIs(t, m.Merge(m), mesh.ErrSelfMerge)
	assert.Equal(t, 12, m.TriangleCount())
}

func TestMergeNil(t *testing.T) {
	m := testmesh.Cube()
	require.NoError(t, m.Merge(nil))
	assert.Equal(t, 36, m.VertexCount())
}

func TestCopyToPoint(t *testing.T) {
	m := testmesh.Cube()
	original := m.Vertices()
	delta := geometry.NewVector3(2, 0, 0)

	m.CopyToPoint(delta)

	require.Equal(t, 72, m.VertexCount())
	require.Equal(t, 24, m.TriangleCount())

	vertices := m.Vertices()
	// the first half is the translated original, the second half the untouched copy
	for i, v := range original {
		assert.Equal(t, v.Add(delta), vertices[i])
		assert.Equal(t, v, vertices[len(original)+i])
	}

	bbox, err := m.AABB()
	require.NoError(t, err)
	assert.Equal(t, geometry.NewVector3(0, 0, 0), bbox.Min)
	assert.Equal(t, geometry.NewVector3(3, 1, 1), bbox.Max)
}
