package main

import (
	"fmt"
	"math"
	"sort"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gomesh/pkg/analysis"
	"github.com/philipparndt/gomesh/pkg/mesh"
)

var (
	triCount    int
	triLargest  bool
	triSmallest bool
)

type triangleRow struct {
	Index     int
	Area      float64
	Perimeter float64
	Normal    string
	Vertices  string
}

var trianglesCmd = &cobra.Command{
	Use:   "triangles [file]",
	Short: "Analyze triangles in an STL file",
	Long:  "Display information about triangles including area, perimeter, normal and vertex positions.",
	Args:  cobra.ExactArgs(1),
	RunE:  runTriangles,
}

func init() {
	rootCmd.AddCommand(trianglesCmd)

	trianglesCmd.Flags().IntVarP(&triCount, "count", "n", 10, "Number of triangles to display")
	trianglesCmd.Flags().BoolVarP(&triLargest, "largest", "l", false, "Show largest triangles by area")
	trianglesCmd.Flags().BoolVarP(&triSmallest, "smallest", "s", false, "Show smallest triangles by area")

	trianglesCmd.MarkFlagsMutuallyExclusive("largest", "smallest")
}

func runTriangles(cmd *cobra.Command, args []string) error {
	if triCount < 0 {
		return fmt.Errorf("--count must not be negative, got %d", triCount)
	}

	m, err := loadMesh(args[0])
	if err != nil {
		return err
	}
	if m.TriangleCount() == 0 {
		return mesh.ErrEmptyMesh
	}

	rows := make([]triangleRow, 0, m.TriangleCount())
	totalArea := 0.0
	minArea := math.MaxFloat64
	maxArea := 0.0

	for i, tri := range m.TriangleInfo() {
		area := mesh.TriangleArea(tri)

		normal := "degenerate"
		if n, err := m.TriNormal(i); err == nil {
			normal = analysis.FormatVector(n)
		}

		rows = append(rows, triangleRow{
			Index:     i,
			Area:      area,
			Perimeter: tri.Perimeter(),
			Normal:    normal,
			Vertices: fmt.Sprintf("%s, %s, %s",
				analysis.FormatVector(tri.Vertices[0]),
				analysis.FormatVector(tri.Vertices[1]),
				analysis.FormatVector(tri.Vertices[2])),
		})

		totalArea += area
		minArea = math.Min(minArea, area)
		maxArea = math.Max(maxArea, area)
	}

	var title string
	switch {
	case triLargest:
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Area > rows[j].Area })
		title = fmt.Sprintf("Top %d Largest Triangles", triCount)
	case triSmallest:
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Area < rows[j].Area })
		title = fmt.Sprintf("Top %d Smallest Triangles", triCount)
	default:
		title = fmt.Sprintf("First %d Triangles", triCount)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, "====================")
	fmt.Fprintf(out, "Total triangles: %d\n", len(rows))
	fmt.Fprintf(out, "Total surface area: %.6f square units\n", totalArea)
	fmt.Fprintf(out, "Min triangle area: %.6f square units\n", minArea)
	fmt.Fprintf(out, "Max triangle area: %.6f square units\n", maxArea)
	fmt.Fprintf(out, "Avg triangle area: %.6f square units\n\n", totalArea/float64(len(rows)))

	for _, row := range rows[:min(triCount, len(rows))] {
		fmt.Fprintf(out, "Triangle #%d:\n", row.Index)
		fmt.Fprintf(out, "  Area: %.6f square units\n", row.Area)
		fmt.Fprintf(out, "  Perimeter: %.6f units\n", row.Perimeter)
		fmt.Fprintf(out, "  Normal: %s\n", row.Normal)
		fmt.Fprintf(out, "  Vertices: %s\n\n", row.Vertices)
	}
	return nil
}
