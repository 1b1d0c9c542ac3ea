package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gomesh/version"
)

var rootCmd = &cobra.Command{
	Use:   "gomesh",
	Short: "Measure, transform and combine binary STL meshes",
	Long: `gomesh loads binary STL files into an indexed triangle mesh and reports
bounding box, dimensions, volume and surface area. Meshes can be scaled,
rotated, translated, duplicated and merged, and written back as binary STL.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
