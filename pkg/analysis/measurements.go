package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
)

// EdgeInfo contains information about an edge in the mesh
type EdgeInfo struct {
	Start      geometry.Vector3
	End        geometry.Vector3
	Length     float64
	TriangleID int
}

// MeasurementResult contains various measurements of a mesh
type MeasurementResult struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	Volume        float64
	SurfaceArea   float64
	VertexCount   int
	TriangleCount int
	// DegenerateCount is the number of triangles without a defined normal
	DegenerateCount int
	EdgeCount       int
	MinEdgeLength   float64
	MaxEdgeLength   float64
	AvgEdgeLength   float64
	AllEdges        []EdgeInfo
}

// AnalyzeMesh measures a mesh. Edges are collected per triangle, so an edge
// shared by two triangles is listed twice.
func AnalyzeMesh(m *mesh.Mesh) (*MeasurementResult, error) {
	bbox, err := m.AABB()
	if err != nil {
		return nil, err
	}
	volume, err := m.Volume()
	if err != nil {
		return nil, err
	}
	area, err := m.SurfaceArea()
	if err != nil {
		return nil, err
	}

	result := &MeasurementResult{
		BoundingBox:   bbox,
		Dimensions:    bbox.Size(),
		Volume:        volume,
		SurfaceArea:   area,
		VertexCount:   m.VertexCount(),
		TriangleCount: m.TriangleCount(),
		AllEdges:      make([]EdgeInfo, 0, m.TriangleCount()*3),
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for i, tri := range m.TriangleInfo() {
		if tri.Degenerate() {
			result.DegenerateCount++
		}

		for j, edge := range tri.Edges {
			length := edge.Length()
			result.AllEdges = append(result.AllEdges, EdgeInfo{
				Start:      tri.Vertices[j],
				End:        tri.Vertices[(j+1)%3],
				Length:     length,
				TriangleID: i,
			})

			totalLength += length
			minLength = math.Min(minLength, length)
			maxLength = math.Max(maxLength, length)
		}
	}

	result.EdgeCount = len(result.AllEdges)
	result.MinEdgeLength = minLength
	result.MaxEdgeLength = maxLength
	result.AvgEdgeLength = totalLength / float64(result.EdgeCount)

	return result, nil
}

// FindEdgesByLength finds all edges within a length range
func FindEdgesByLength(result *MeasurementResult, minLength, maxLength float64) []EdgeInfo {
	var edges []EdgeInfo
	for _, edge := range result.AllEdges {
		if edge.Length >= minLength && edge.Length <= maxLength {
			edges = append(edges, edge)
		}
	}
	return edges
}

// FindLongestEdges returns the N longest edges in the mesh
func FindLongestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b EdgeInfo) bool { return a.Length > b.Length })
}

// FindShortestEdges returns the N shortest edges in the mesh
func FindShortestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b EdgeInfo) bool { return a.Length < b.Length })
}

func sortedEdges(result *MeasurementResult, count int, less func(a, b EdgeInfo) bool) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.SliceStable(edges, func(i, j int) bool {
		return less(edges[i], edges[j])
	})

	count = max(0, min(count, len(edges)))
	return edges[:count]
}

// FindNearestVertex finds the vertex in the mesh nearest to a given point
func FindNearestVertex(m *mesh.Mesh, point geometry.Vector3) (geometry.Vector3, float64, error) {
	if m.IsEmpty() {
		return geometry.Vector3{}, 0, mesh.ErrEmptyMesh
	}

	var nearestVertex geometry.Vector3
	minDistance := math.MaxFloat64
	for _, vertex := range m.Vertices() {
		if distance := point.Distance(vertex); distance < minDistance {
			minDistance = distance
			nearestVertex = vertex
		}
	}
	return nearestVertex, minDistance, nil
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
