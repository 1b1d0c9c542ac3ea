package mesh

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/philipparndt/gomesh/pkg/geometry"
)

// Translate adds delta to every vertex
func (m *Mesh) Translate(delta geometry.Vector3) {
	for i := range m.vertices {
		m.vertices[i] = m.vertices[i].Add(delta)
	}
}

// Rotate multiplies every vertex by r. Rotation is always about the origin;
// translate first and back afterwards to rotate about another pivot.
func (m *Mesh) Rotate(r mgl64.Mat3) {
	for i := range m.vertices {
		m.vertices[i] = geometry.Rotate(r, m.vertices[i])
	}
}

// Scale multiplies every vertex component-wise by factors, about the origin.
// Negative factors mirror the mesh and flip the winding of every triangle.
func (m *Mesh) Scale(factors geometry.Vector3) {
	for i := range m.vertices {
		m.vertices[i] = m.vertices[i].MulElem(factors)
	}
}

// Transform applies t to every vertex: scale, then rotate, then translate.
func (m *Mesh) Transform(t geometry.Transform) {
	m.Scale(t.Scale)
	m.Rotate(t.Rotation)
	m.Translate(t.Translation)
}
