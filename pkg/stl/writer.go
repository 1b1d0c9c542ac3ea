package stl

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
)

// Marshal encodes the mesh as binary STL in memory.
// Coordinates are narrowed to float32. Each facet normal is recomputed from
// the current geometry; a degenerate facet gets a zero normal.
func Marshal(m *mesh.Mesh) ([]byte, error) {
	count := m.TriangleCount()
	if int64(count) > math.MaxUint32 {
		return nil, &WriteError{Err: fmt.Errorf("%d triangles exceed the STL limit", count)}
	}

	buf := make([]byte, dataOffset+count*facetSize)
	binary.LittleEndian.PutUint32(buf[headerSize:dataOffset], uint32(count))

	var f facet
	for i := 0; i < count; i++ {
		corners, err := m.TriCoords(i)
		if err != nil {
			return nil, &WriteError{Err: err}
		}

		normal, err := m.TriNormal(i)
		if errors.Is(err, mesh.ErrDegenerate) {
			normal = geometry.Vector3{}
		} else if err != nil {
			return nil, &WriteError{Err: err}
		}

		f.Normal = normal.Float32()
		for j, corner := range corners {
			f.Vertices[j] = corner.Float32()
		}

		start := dataOffset + i*facetSize
		f.put(buf[start : start+facetSize])
	}

	return buf, nil
}

// Encode writes the mesh to w with a single Write call
func Encode(w io.Writer, m *mesh.Mesh) error {
	data, err := Marshal(m)
	if err != nil {
		return err
	}

	n, err := w.Write(data)
	if err != nil {
		return &WriteError{Err: err}
	}
	if n != len(data) {
		return &WriteError{Err: io.ErrShortWrite}
	}
	return nil
}

// WriteFile exports the mesh to filename. The data goes to a temporary file
// in the same directory which then replaces filename, so a failed export
// never leaves a partial file behind nor touches an existing one.
func WriteFile(filename string, m *mesh.Mesh) error {
	data, err := Marshal(m)
	if err != nil {
		var writeErr *WriteError
		if errors.As(err, &writeErr) {
			writeErr.Path = filename
		}
		return err
	}
	return replaceFile(filename, data)
}
