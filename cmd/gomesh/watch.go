package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gomesh/pkg/analysis"
	"github.com/philipparndt/gomesh/pkg/watcher"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch [file]...",
	Short: "Re-measure STL files whenever they change",
	Long:  "Print volume, surface area and dimensions of each file, and again every time a file is rewritten. Stop with Ctrl+C.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond, "Quiet period before a change is measured")
}

// summarize prints a one-line measurement of a file
func summarize(out io.Writer, filename string) {
	m, err := loadMesh(filename)
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", filename, err)
		return
	}

	result, err := analysis.AnalyzeMesh(m)
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", filename, err)
		return
	}
	volume, area, dims := result.Volume, result.SurfaceArea, result.Dimensions

	fmt.Fprintf(out, "%s: %d triangles, volume %.6f, area %.6f, dimensions %.6f x %.6f x %.6f\n",
		filename, m.TriangleCount(), volume, area, dims.X, dims.Y, dims.Z)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watchFiles(ctx, cmd.OutOrStdout(), args)
}

func watchFiles(ctx context.Context, out io.Writer, files []string) error {
	var mu sync.Mutex
	report := func(path string) {
		mu.Lock()
		defer mu.Unlock()
		summarize(out, path)
	}
	reportError := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintf(out, "Watcher error: %v\n", err)
	}

	w, err := watcher.New(watchDebounce, report, reportError)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(files...); err != nil {
		return err
	}

	for _, file := range files {
		report(file)
	}

	w.Run(ctx)
	return nil
}
