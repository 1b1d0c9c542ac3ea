package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var copyOffset []float64

var copyCmd = &cobra.Command{
	Use:   "copy [input] [output]",
	Short: "Duplicate a mesh at an offset",
	Long: `Write a mesh containing the input twice: once moved by --offset and
once at its original position.`,
	Example: "  gomesh copy bracket.stl pair.stl --offset 40,0,0",
	Args:    cobra.ExactArgs(2),
	RunE:    runCopy,
}

func init() {
	rootCmd.AddCommand(copyCmd)

	copyCmd.Flags().Float64SliceVar(&copyOffset, "offset", nil, "Offset x,y,z of the moved copy")
	_ = copyCmd.MarkFlagRequired("offset")
}

func runCopy(cmd *cobra.Command, args []string) error {
	offset, err := vectorFlag("offset", copyOffset)
	if err != nil {
		return err
	}

	m, err := loadMesh(args[0])
	if err != nil {
		return err
	}

	m.CopyToPoint(offset)

	if err := saveMesh(args[1], m); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s: %d triangles\n", args[1], m.TriangleCount())
	return nil
}
