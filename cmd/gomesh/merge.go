package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gomesh/pkg/mesh"
)

var mergeCmd = &cobra.Command{
	Use:   "merge [output] [input]...",
	Short: "Combine several STL files into one",
	Long:  "Merge the meshes of all inputs, in order, into a single mesh and write it as binary STL.",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	output, inputs := args[0], args[1:]

	combined := mesh.NewEmpty()
	for _, input := range inputs {
		m, err := loadMesh(input)
		if err != nil {
			return err
		}
		if err := combined.Merge(m); err != nil {
			return fmt.Errorf("failed to merge %s: %w", input, err)
		}
	}

	if err := saveMesh(output, combined); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s: %d triangles from %d files\n",
		output, combined.TriangleCount(), len(inputs))
	return nil
}
