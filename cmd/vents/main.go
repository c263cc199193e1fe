// Command vents rasterises hydrothermal vent lines onto a grid and prints
// how many cells are covered by at least the configured number of lines.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/banshee-data/gridpuzzles/internal/config"
	"github.com/banshee-data/gridpuzzles/internal/fsutil"
	"github.com/banshee-data/gridpuzzles/internal/monitoring"
	"github.com/banshee-data/gridpuzzles/internal/parse"
	"github.com/banshee-data/gridpuzzles/internal/plotting"
	"github.com/banshee-data/gridpuzzles/internal/raster"
	"github.com/banshee-data/gridpuzzles/internal/version"
)

type options struct {
	input   string
	config  string
	heatmap string
}

func main() {
	var o options
	flag.StringVar(&o.input, "input", "", "Path to the vent line segments (required)")
	flag.StringVar(&o.config, "config", "", "Optional JSON or YAML puzzle config")
	flag.StringVar(&o.heatmap, "heatmap", "", "Write an HTML occupancy heatmap to this path")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String("vents"))
		return
	}
	if o.input == "" {
		log.Fatalf("-input is required")
	}

	id := monitoring.StartRun("vents")
	log.Printf("run %s: input=%s", id, o.input)
	if err := run(fsutil.OSFileSystem{}, o, os.Stdout); err != nil {
		log.Fatalf("vents: %v", err)
	}
}

func run(fsys fsutil.FileSystem, o options, stdout io.Writer) error {
	cfg, err := config.LoadOrDefault(fsys, o.config)
	if err != nil {
		return err
	}
	lines, err := fsutil.ReadLines(fsys, o.input)
	if err != nil {
		return err
	}
	segs, err := parse.Segments(lines)
	if err != nil {
		return err
	}

	occ, err := raster.Overlay(segs, raster.Options{SkipDiagonals: !cfg.GetIncludeDiagonals()})
	if err != nil {
		return err
	}
	threshold := uint(cfg.GetOccupancyThreshold())
	fmt.Fprintln(stdout, occ.CountAtLeast(threshold))

	if o.heatmap == "" {
		return nil
	}
	err = fsutil.WriteWith(fsys, o.heatmap, func(w io.Writer) error {
		return plotting.WriteOccupancyHeatmap(w, "vents", occ, threshold)
	})
	if err != nil {
		return fmt.Errorf("heatmap: %w", err)
	}
	log.Printf("wrote %s", o.heatmap)
	return nil
}
