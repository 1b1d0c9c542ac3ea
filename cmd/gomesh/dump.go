package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	dumpVertices  bool
	dumpTriangles bool
)

var dumpCmd = &cobra.Command{
	Use:   "dump [file]",
	Short: "Print the raw vertex and triangle buffers of an STL file",
	Long: `Print the mesh buffers, one entry per line:

  v <x> <y> <z>     one line per vertex, in index order
  f <a> <b> <c>     one line per triangle, as zero-based vertex indices

Without flags both buffers are printed.`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)

	dumpCmd.Flags().BoolVar(&dumpVertices, "vertices", false, "Print the vertex buffer")
	dumpCmd.Flags().BoolVar(&dumpTriangles, "triangles", false, "Print the triangle index buffer")
}

func runDump(cmd *cobra.Command, args []string) error {
	m, err := loadMesh(args[0])
	if err != nil {
		return err
	}

	all := !dumpVertices && !dumpTriangles
	out := cmd.OutOrStdout()

	if all || dumpVertices {
		for _, v := range m.Vertices() {
			fmt.Fprintf(out, "v %g %g %g\n", v.X, v.Y, v.Z)
		}
	}
	if all || dumpTriangles {
		for _, tri := range m.Triangles() {
			fmt.Fprintf(out, "f %d %d %d\n", tri[0], tri[1], tri[2])
		}
	}
	return nil
}
