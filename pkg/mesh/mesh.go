// Package mesh holds an indexed triangle mesh together with the geometric
// queries, transforms and merge operations defined on it.
//
// A Mesh is not safe for concurrent use; callers serialize access.
package mesh

import (
	"github.com/philipparndt/gomesh/pkg/geometry"
)

// Mesh is an indexed triangle mesh. Vertices are identified by their position
// in the vertex buffer and every triangle index is kept within that buffer.
type Mesh struct {
	vertices  []geometry.Vector3
	triangles [][3]int
}

// NewEmpty creates a mesh with no vertices and no triangles
func NewEmpty() *Mesh {
	return &Mesh{
		vertices:  make([]geometry.Vector3, 0),
		triangles: make([][3]int, 0),
	}
}

// New creates a mesh from a vertex list and a flat list of triangle indices,
// read as consecutive triples. Both slices are copied.
func New(vertices []geometry.Vector3, flat []int) (*Mesh, error) {
	if len(flat)%3 != 0 {
		return nil, ErrIndexCount
	}

	m := &Mesh{
		vertices:  append(make([]geometry.Vector3, 0, len(vertices)), vertices...),
		triangles: make([][3]int, 0, len(flat)/3),
	}
	for i := 0; i < len(flat); i += 3 {
		if err := m.AddTriangle(flat[i], flat[i+1], flat[i+2]); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// AddVertex appends a vertex and returns its index
func (m *Mesh) AddVertex(v geometry.Vector3) int {
	m.vertices = append(m.vertices, v)
	return len(m.vertices) - 1
}

// AddTriangle appends a triangle over existing vertices
func (m *Mesh) AddTriangle(a, b, c int) error {
	for _, idx := range [3]int{a, b, c} {
		if idx < 0 || idx >= len(m.vertices) {
			return &IndexError{Buffer: "vertex", Index: idx, Len: len(m.vertices)}
		}
	}
	m.triangles = append(m.triangles, [3]int{a, b, c})
	return nil
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.triangles)
}

// IsEmpty returns true if the mesh has no vertices.
func (m *Mesh) IsEmpty() bool {
	return len(m.vertices) == 0
}

// Vertices returns a copy of the vertex buffer
func (m *Mesh) Vertices() []geometry.Vector3 {
	return append([]geometry.Vector3(nil), m.vertices...)
}

// Triangles returns a copy of the triangle buffer
func (m *Mesh) Triangles() [][3]int {
	return append([][3]int(nil), m.triangles...)
}

// FlatTriangles returns the triangle indices as one flat list, the form New accepts
func (m *Mesh) FlatTriangles() []int {
	flat := make([]int, 0, len(m.triangles)*3)
	for _, tri := range m.triangles {
		flat = append(flat, tri[0], tri[1], tri[2])
	}
	return flat
}

// Clone returns a deep copy of the mesh
func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		vertices:  append(make([]geometry.Vector3, 0, len(m.vertices)), m.vertices...),
		triangles: append(make([][3]int, 0, len(m.triangles)), m.triangles...),
	}
}

// AABB returns the tightest axis-aligned box around all vertices
func (m *Mesh) AABB() (geometry.BoundingBox, error) {
	bbox, ok := geometry.BoundsOf(m.vertices)
	if !ok {
		return geometry.BoundingBox{}, ErrEmptyMesh
	}
	return bbox, nil
}

// Dimensions returns the extent of the AABB along each axis
func (m *Mesh) Dimensions() (geometry.Vector3, error) {
	bbox, err := m.AABB()
	if err != nil {
		return geometry.Vector3{}, err
	}
	return bbox.Size(), nil
}

// TriCoords returns the corner positions of triangle i
func (m *Mesh) TriCoords(i int) ([3]geometry.Vector3, error) {
	if i < 0 || i >= len(m.triangles) {
		return [3]geometry.Vector3{}, &IndexError{Buffer: "triangle", Index: i, Len: len(m.triangles)}
	}
	tri := m.triangles[i]
	return [3]geometry.Vector3{m.vertices[tri[0]], m.vertices[tri[1]], m.vertices[tri[2]]}, nil
}

// TriNormal returns the unit normal of triangle i, (v1-v0) x (v2-v1) normalized.
// A counter-clockwise triangle, seen from outside, gets an outward normal.
func (m *Mesh) TriNormal(i int) (geometry.Vector3, error) {
	corners, err := m.TriCoords(i)
	if err != nil {
		return geometry.Vector3{}, err
	}

	ab := corners[1].Sub(corners[0])
	bc := corners[2].Sub(corners[1])
	return ab.Cross(bc).Unit()
}

// TriangleInfo derives a Triangle snapshot for every triangle, in order.
// The snapshots do not follow later changes to the mesh.
func (m *Mesh) TriangleInfo() []geometry.Triangle {
	triangles := make([]geometry.Triangle, 0, len(m.triangles))
	for _, tri := range m.triangles {
		triangles = append(triangles, geometry.NewTriangle(
			m.vertices[tri[0]],
			m.vertices[tri[1]],
			m.vertices[tri[2]],
		))
	}
	return triangles
}
