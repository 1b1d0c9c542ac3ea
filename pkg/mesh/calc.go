package mesh

import "github.com/philipparndt/gomesh/pkg/geometry"

// Volume returns the enclosed volume as a sum of signed tetrahedra, one per
// triangle, each spanned by the triangle and the origin:
//
//	V = Σ (v0 × v1) · v2 / 6
//
// The result equals the enclosed volume only for a closed mesh with
// consistent outward winding. Neither property is checked; an open or
// inconsistently wound mesh yields a meaningless number, negative for an
// inward-wound solid.
func (m *Mesh) Volume() (float64, error) {
	if len(m.triangles) == 0 {
		return 0, ErrEmptyMesh
	}

	volume := 0.0
	for _, tri := range m.TriangleInfo() {
		v := tri.Vertices
		volume += v[0].Cross(v[1]).Dot(v[2]) / 6.0
	}
	return volume, nil
}

// SurfaceArea returns the summed area of all triangles. Closedness is not required.
func (m *Mesh) SurfaceArea() (float64, error) {
	if len(m.triangles) == 0 {
		return 0, ErrEmptyMesh
	}

	area := 0.0
	for _, tri := range m.TriangleInfo() {
		area += TriangleArea(tri)
	}
	return area, nil
}

// TriangleArea returns |ab × ac| / 2
func TriangleArea(t geometry.Triangle) float64 {
	return t.Area()
}
