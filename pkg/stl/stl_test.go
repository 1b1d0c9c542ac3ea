package stl

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gomesh/internal/testmesh"
	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
)

// rawSTL builds a binary STL by hand with the given stored normal on every facet
func rawSTL(t *testing.T, normal [3]float32, facets ...[3][3]float32) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.Write(make([]byte, 80))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(len(facets))))
	for _, f := range facets {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, normal))
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, f))
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint16(0xBEEF)))
	}
	return buf.Bytes()
}

var unitFacet = [3][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}

func TestDecode(t *testing.T) {
	second := [3][3]float32{{1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	data := rawSTL(t, [3]float32{0, 0, 1}, unitFacet, second)

	m, err := Decode(data)
	require.NoError(t, err)

	assert.Equal(t, 6, m.VertexCount(), "no vertex sharing between facets")
	assert.Equal(t, [][3]int{{0, 1, 2}, {3, 4, 5}}, m.Triangles())
	assert.Equal(t, geometry.NewVector3(1, 1, 0), m.Vertices()[4])
}

func TestDecodeEmptyModel(t *testing.T) {
	m, err := Decode(rawSTL(t, [3]float32{}))
	require.NoError(t, err)
	assert.True(t, m.IsEmpty())
}

func TestDecodeTrailingBytes(t *testing.T) {
	data := append(rawSTL(t, [3]float32{}, unitFacet), 1, 2, 3)

	m, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, 1, m.TriangleCount())
}

func TestDecodeErrors(t *testing.T) {
	valid := rawSTL(t, [3]float32{}, unitFacet, unitFacet)

	tests := []struct {
		name   string
		data   []byte
		offset int64
	}{
		{"empty", nil, 0},
		{"short header", make([]byte, 79), 79},
		{"missing count", make([]byte, 82), 82},
		{"truncated first facet", valid[:84+49], 84},
		{"truncated second facet", valid[:84+50+10], 134},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Decode(tt.data)
			assert.Nil(t, m)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.offset, parseErr.Offset)
			assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
		})
	}
}

func TestMarshalLayout(t *testing.T) {
	m := testmesh.Cube()

	data, err := Marshal(m)
	require.NoError(t, err)
	require.Len(t, data, 84+12*50)

	assert.Equal(t, make([]byte, 80), data[:80], "header must be zeros")
	assert.Equal(t, uint32(12), binary.LittleEndian.Uint32(data[80:84]))

	for i := 0; i < 12; i++ {
		record := data[84+i*50 : 84+(i+1)*50]

		normal, err := m.TriNormal(i)
		require.NoError(t, err)
		corners, err := m.TriCoords(i)
		require.NoError(t, err)

		assert.Equal(t, normal.Float32(), readF32(record[0:12]), "normal of facet %d", i)
		for j := 0; j < 3; j++ {
			assert.Equal(t, corners[j].Float32(), readF32(record[12+12*j:24+12*j]), "vertex %d of facet %d", j, i)
		}
		assert.Equal(t, uint16(0), binary.LittleEndian.Uint16(record[48:50]))
	}
}

func readF32(b []byte) [3]float32 {
	return [3]float32{
		math.Float32frombits(binary.LittleEndian.Uint32(b)),
		math.Float32frombits(binary.LittleEndian.Uint32(b[4:])),
		math.Float32frombits(binary.LittleEndian.Uint32(b[8:])),
	}
}

func TestStoredNormalIsRecomputed(t *testing.T) {
	// the stored normal is nonsense and the attribute count is set
	m, err := Decode(rawSTL(t, [3]float32{7, 7, 7}, unitFacet))
	require.NoError(t, err)

	data, err := Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, [3]float32{0, 0, 1}, readF32(data[84:96]))
	assert.Equal(t, uint16(0), binary.LittleEndian.Uint16(data[132:134]))
}

func TestMarshalDegenerateFacet(t *testing.T) {
	m, err := mesh.New([]geometry.Vector3{{}, {X: 1}, {X: 2}}, []int{0, 1, 2})
	require.NoError(t, err)

	data, err := Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, [3]float32{}, readF32(data[84:96]))
}

func TestMarshalNarrowsToFloat32(t *testing.T) {
	m, err := mesh.New([]geometry.Vector3{{X: 0.1}, {X: 1, Y: 1e-9}, {Y: 1, Z: math.Pi}}, []int{0, 1, 2})
	require.NoError(t, err)

	data, err := Marshal(m)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, float64(float32(0.1)), decoded.Vertices()[0].X)
	assert.Equal(t, float64(float32(math.Pi)), decoded.Vertices()[2].Z)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestEncodeFailingWriter(t *testing.T) {
	err := Encode(failingWriter{}, testmesh.Cube())

	var writeErr *WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Contains(t, err.Error(), "disk full")
}

func TestRoundTrip(t *testing.T) {
	m := testmesh.Cube()
	m.Transform(geometry.RotationDegrees(12.5, -40, 73))
	m.Translate(geometry.NewVector3(0.1, 100.3, -7.77))

	path := filepath.Join(t.TempDir(), "cube.stl")
	require.NoError(t, WriteFile(path, m))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(84+12*50), info.Size())

	loaded, err := ReadFile(path)
	require.NoError(t, err)

	require.Equal(t, m.TriangleCount(), loaded.TriangleCount())
	require.Equal(t, m.VertexCount(), loaded.VertexCount())
	original := m.Vertices()
	for i, v := range loaded.Vertices() {
		assert.True(t, v.ApproxEqual(original[i], 1e-4), "vertex %d: %v vs %v", i, v, original[i])
	}

	volume, err := loaded.Volume()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, volume, 1e-3)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.stl"))

	var fileErr *FileError
	require.ErrorAs(t, err, &fileErr)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestReadFileTruncated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.stl")
	require.NoError(t, os.WriteFile(path, make([]byte, 40), 0o644))

	_, err := ReadFile(path)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestWriteFileMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "out.stl")

	err := WriteFile(path, testmesh.Cube())

	var fileErr *FileError
	require.ErrorAs(t, err, &fileErr)
	_, statErr := os.Stat(path)
	assert.ErrorIs(t, statErr, fs.ErrNotExist)
}

func TestWriteFileReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.stl")
	require.NoError(t, os.WriteFile(path, []byte("old content"), 0o644))

	require.NoError(t, WriteFile(path, testmesh.Tetrahedron()))

	loaded, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, loaded.TriangleCount())
}

func TestWriteFileFailureLeavesNoTrace(t *testing.T) {
	dir := t.TempDir()
	// a non-empty directory in the way makes the final rename fail
	target := filepath.Join(dir, "out.stl")
	require.NoError(t, os.MkdirAll(filepath.Join(target, "keep"), 0o755))

	err := WriteFile(target, testmesh.Cube())

	var writeErr *WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, target, writeErr.Path)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary file must be cleaned up")
	assert.True(t, entries[0].IsDir())

	_, err = os.Stat(filepath.Join(target, "keep"))
	assert.NoError(t, err)
}

func TestWriteFileLeavesOnlyTarget(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.stl")

	require.NoError(t, WriteFile(path, testmesh.Cube()))
	require.NoError(t, WriteFile(path, testmesh.Tetrahedron()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.stl", entries[0].Name())
}
