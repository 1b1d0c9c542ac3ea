package mesh

import "github.com/philipparndt/gomesh/pkg/geometry"

// Merge moves the geometry of other into m. Triangles of other are re-indexed
// by m's vertex count before the merge. other is left empty; Clone it first
// to keep its content.
func (m *Mesh) Merge(other *Mesh) error {
	if other == nil {
		return nil
	}
	if other == m {
		return ErrSelfMerge
	}

	offset := len(m.vertices)
	m.vertices = append(m.vertices, other.vertices...)
	for _, tri := range other.triangles {
		m.triangles = append(m.triangles, [3]int{tri[0] + offset, tri[1] + offset, tri[2] + offset})
	}

	other.vertices = make([]geometry.Vector3, 0)
	other.triangles = make([][3]int, 0)
	return nil
}

// CopyToPoint duplicates the mesh: the existing geometry is translated by
// delta, and an untranslated copy of it is appended after it.
func (m *Mesh) CopyToPoint(delta geometry.Vector3) {
	copied := m.Clone()
	m.Translate(delta)
	// copied is a fresh mesh, so this cannot be a self-merge.
	_ = m.Merge(copied)
}
