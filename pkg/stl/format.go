// Package stl reads and writes meshes in the binary STL format.
//
// Layout, all little-endian:
//
//	0        80 byte header (ignored on read, zeros on write)
//	80       uint32 triangle count N
//	84+50k   facet k: normal 3×float32, vertices 3×3×float32, uint16 attribute count
//
// Stored normals are never trusted: they are skipped on read and recomputed
// from the geometry on write.
package stl

import (
	"encoding/binary"
	"math"
)

const (
	headerSize = 80
	countSize  = 4
	facetSize  = 50
	dataOffset = headerSize + countSize
)

// facet is one 50-byte triangle record
type facet struct {
	Normal   [3]float32
	Vertices [3][3]float32
}

func (f *facet) put(b []byte) {
	_ = b[facetSize-1] // early bounds check
	put3F32(b, f.Normal)
	put3F32(b[12:], f.Vertices[0])
	put3F32(b[24:], f.Vertices[1])
	put3F32(b[36:], f.Vertices[2])
	binary.LittleEndian.PutUint16(b[48:], 0)
}

func (f *facet) get(b []byte) {
	_ = b[facetSize-1] // early bounds check
	get3F32(b, &f.Normal)
	get3F32(b[12:], &f.Vertices[0])
	get3F32(b[24:], &f.Vertices[1])
	get3F32(b[36:], &f.Vertices[2])
	// attribute byte count is not kept
}

func put3F32(b []byte, f [3]float32) {
	_ = b[11] // early bounds check
	binary.LittleEndian.PutUint32(b, math.Float32bits(f[0]))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(f[1]))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(f[2]))
}

func get3F32(b []byte, f *[3]float32) {
	_ = b[11] // early bounds check
	f[0] = math.Float32frombits(binary.LittleEndian.Uint32(b))
	f[1] = math.Float32frombits(binary.LittleEndian.Uint32(b[4:]))
	f[2] = math.Float32frombits(binary.LittleEndian.Uint32(b[8:]))
}
