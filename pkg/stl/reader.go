package stl

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
)

// ReadFile loads a whole binary STL file and decodes it into a mesh
func ReadFile(filename string) (*mesh.Mesh, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, &FileError{Path: filename, Err: err}
	}

	m, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return m, nil
}

// Decode parses binary STL data. Every facet adds three new vertices and one
// triangle over them; coincident vertices of neighboring facets are not shared.
// Bytes after the last declared facet are ignored.
func Decode(data []byte) (*mesh.Mesh, error) {
	if len(data) < headerSize {
		return nil, &ParseError{
			Offset: int64(len(data)),
			Msg:    fmt.Sprintf("header is %d bytes, want %d", len(data), headerSize),
			Err:    io.ErrUnexpectedEOF,
		}
	}
	if len(data) < dataOffset {
		return nil, &ParseError{Offset: int64(len(data)), Msg: "missing triangle count", Err: io.ErrUnexpectedEOF}
	}

	count := binary.LittleEndian.Uint32(data[headerSize:dataOffset])
	available := uint64(len(data)-dataOffset) / facetSize
	if uint64(count) > available {
		offset := int64(dataOffset) + int64(available)*facetSize
		return nil, &ParseError{
			Offset: offset,
			Msg:    fmt.Sprintf("triangle %d of %d is incomplete", available+1, count),
			Err:    io.ErrUnexpectedEOF,
		}
	}

	m := mesh.NewEmpty()
	var f facet
	for i := 0; i < int(count); i++ {
		start := dataOffset + i*facetSize
		f.get(data[start : start+facetSize])

		a := m.AddVertex(vertexFromFloat32(f.Vertices[0]))
		b := m.AddVertex(vertexFromFloat32(f.Vertices[1]))
		c := m.AddVertex(vertexFromFloat32(f.Vertices[2]))
		if err := m.AddTriangle(a, b, c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func vertexFromFloat32(v [3]float32) geometry.Vector3 {
	return geometry.NewVector3(float64(v[0]), float64(v[1]), float64(v[2]))
}
