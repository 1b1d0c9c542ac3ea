package mesh_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gomesh/internal/testmesh"
	"github.com/philipparndt/gomesh/pkg/geometry"
)

func assertVerticesNear(t *testing.T, expected, actual []geometry.Vector3, tol float64) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for i := range expected {
		assert.True(t, expected[i].ApproxEqual(actual[i], tol),
			"vertex %d: expected %v, got %v", i, expected[i], actual[i])
	}
}

func TestRotateIdentity(t *testing.T) {
	m := testmesh.Tetrahedron()
	before := m.Vertices()

	m.Rotate(mgl64.Ident3())
	assertVerticesNear(t, before, m.Vertices(), 1e-12)
}

func TestTranslateRoundTrip(t *testing.T) {
	m := testmesh.Cube()
	before := m.Vertices()
	delta := geometry.NewVector3(3.25, -7.5, 1e4)

	m.Translate(delta)
	assert.Equal(t, before[5].Add(delta), m.Vertices()[5])

	m.Translate(delta.Negate())
	assertVerticesNear(t, before, m.Vertices(), 1e-9)
}

func TestRotateAboutOrigin(t *testing.T) {
	m := testmesh.Cube()
	m.Rotate(geometry.EulerRotation(0, 0, math.Pi/2))

	bbox, err := m.AABB()
	require.NoError(t, err)
	assert.True(t, bbox.Min.ApproxEqual(geometry.NewVector3(-1, 0, 0), 1e-12), "min %v", bbox.Min)
	assert.True(t, bbox.Max.ApproxEqual(geometry.NewVector3(0, 1, 1), 1e-12), "max %v", bbox.Max)

	volume, err := m.Volume()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, volume, 1e-9)
}

func TestScale(t *testing.T) {
	m := testmesh.Cube()
	m.Scale(geometry.NewVector3(2, 3, 4))

	dims, err := m.Dimensions()
	require.NoError(t, err)
	assert.Equal(t, geometry.NewVector3(2, 3, 4), dims)

	volume, err := m.Volume()
	require.NoError(t, err)
	assert.InDelta(t, 24.0, volume, 1e-9)
}

func TestTransformOrder(t *testing.T) {
	tr := geometry.Identity()
	tr.Scale = geometry.NewVector3(2, 1, 1)
	tr.Rotation = geometry.EulerRotation(0, 0, math.Pi/2)
	tr.Translation = geometry.NewVector3(0, 0, 5)

	m := testmesh.Cube()
	m.Transform(tr)

	// x-extent 2 becomes y-extent 2 after the rotation, then lifted by 5
	bbox, err := m.AABB()
	require.NoError(t, err)
	assert.True(t, bbox.Min.ApproxEqual(geometry.NewVector3(-1, 0, 5), 1e-12), "min %v", bbox.Min)
	assert.True(t, bbox.Max.ApproxEqual(geometry.NewVector3(0, 2, 6), 1e-12), "max %v", bbox.Max)
}

func TestTransformIdentity(t *testing.T) {
	m := testmesh.Cube()
	before := m.Vertices()

	m.Transform(geometry.Identity())
	assert.Equal(t, before, m.Vertices())
}
