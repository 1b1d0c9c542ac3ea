// Package testmesh builds small closed meshes with known volume and area for tests.
package testmesh

import (
	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
)

func v(x, y, z float64) geometry.Vector3 {
	return geometry.NewVector3(x, y, z)
}

// CubeFacets is the unit cube at the origin as 12 outward, counter-clockwise facets
var CubeFacets = [12][3]geometry.Vector3{
	// z = 0
	{v(0, 0, 0), v(0, 1, 0), v(1, 1, 0)},
	{v(0, 0, 0), v(1, 1, 0), v(1, 0, 0)},
	// z = 1
	{v(0, 0, 1), v(1, 0, 1), v(1, 1, 1)},
	{v(0, 0, 1), v(1, 1, 1), v(0, 1, 1)},
	// y = 0
	{v(0, 0, 0), v(1, 0, 0), v(1, 0, 1)},
	{v(0, 0, 0), v(1, 0, 1), v(0, 0, 1)},
	// y = 1
	{v(0, 1, 0), v(0, 1, 1), v(1, 1, 1)},
	{v(0, 1, 0), v(1, 1, 1), v(1, 1, 0)},
	// x = 0
	{v(0, 0, 0), v(0, 0, 1), v(0, 1, 1)},
	{v(0, 0, 0), v(0, 1, 1), v(0, 1, 0)},
	// x = 1
	{v(1, 0, 0), v(1, 1, 0), v(1, 1, 1)},
	{v(1, 0, 0), v(1, 1, 1), v(1, 0, 1)},
}

// TetrahedronFacets spans the origin and the three unit axis points
var TetrahedronFacets = [4][3]geometry.Vector3{
	{v(0, 0, 0), v(0, 1, 0), v(1, 0, 0)},
	{v(0, 0, 0), v(1, 0, 0), v(0, 0, 1)},
	{v(0, 0, 0), v(0, 0, 1), v(0, 1, 0)},
	{v(1, 0, 0), v(0, 1, 0), v(0, 0, 1)},
}

// FromFacets builds a mesh with three fresh vertices per facet, as an STL import does
func FromFacets(facets [][3]geometry.Vector3) *mesh.Mesh {
	m := mesh.NewEmpty()
	for _, f := range facets {
		a := m.AddVertex(f[0])
		b := m.AddVertex(f[1])
		c := m.AddVertex(f[2])
		if err := m.AddTriangle(a, b, c); err != nil {
			panic(err)
		}
	}
	return m
}

// Cube returns the unit cube: 12 triangles over 36 vertices
func Cube() *mesh.Mesh {
	return FromFacets(CubeFacets[:])
}

// Tetrahedron returns the corner tetrahedron with volume 1/6
func Tetrahedron() *mesh.Mesh {
	return FromFacets(TetrahedronFacets[:])
}
