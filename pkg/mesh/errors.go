package mesh

import (
	"errors"
	"fmt"

	"github.com/philipparndt/gomesh/pkg/geometry"
)

var (
	// ErrEmptyMesh is returned by queries that have no meaning without geometry.
	ErrEmptyMesh = errors.New("mesh is empty")

	// ErrDegenerate is returned when a triangle normal has zero length.
	ErrDegenerate = geometry.ErrDegenerate

	// ErrIndexCount is returned when a flat index list is not made of whole triangles.
	ErrIndexCount = errors.New("triangle index count is not a multiple of 3")

	// ErrSelfMerge is returned when a mesh is merged into itself.
	ErrSelfMerge = errors.New("cannot merge a mesh into itself")
)

// IndexError reports an index outside the buffer it addresses
type IndexError struct {
	Buffer string // "vertex" or "triangle"
	Index  int
	Len    int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s index %d out of range [0, %d)", e.Buffer, e.Index, e.Len)
}
