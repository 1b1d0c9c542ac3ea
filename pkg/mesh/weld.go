package mesh

import (
	"math"

	"github.com/philipparndt/gomesh/pkg/geometry"
)

// Weld returns a new mesh in which vertices at the same position share one
// index. With a finite tolerance > 0 positions are snapped to a grid of that
// spacing before comparison; otherwise only bit-identical positions are
// merged. A coordinate whose grid cell is not finite is compared exactly.
// The first vertex seen in a cell is kept. m itself is not modified.
func (m *Mesh) Weld(tolerance float64) *Mesh {
	type cell [3]uint64

	snap := tolerance > 0 && !math.IsInf(tolerance, 1)
	coord := func(x float64) uint64 {
		if snap {
			if q := math.Round(x / tolerance); !math.IsInf(q, 0) && !math.IsNaN(q) {
				// +0 folds -0 into the same cell
				return math.Float64bits(q + 0)
			}
		}
		return math.Float64bits(x)
	}
	key := func(v geometry.Vector3) cell {
		return cell{coord(v.X), coord(v.Y), coord(v.Z)}
	}

	welded := NewEmpty()
	remap := make([]int, len(m.vertices))
	seen := make(map[cell]int, len(m.vertices))
	for i, v := range m.vertices {
		k := key(v)
		idx, ok := seen[k]
		if !ok {
			idx = welded.AddVertex(v)
			seen[k] = idx
		}
		remap[i] = idx
	}

	for _, tri := range m.triangles {
		welded.triangles = append(welded.triangles, [3]int{remap[tri[0]], remap[tri[1]], remap[tri[2]]})
	}
	return welded
}
