// Command beacons reads blocks of scanner reports and lists every pair of
// scanners whose beacon fingerprints suggest they see the same region.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/banshee-data/gridpuzzles/internal/config"
	"github.com/banshee-data/gridpuzzles/internal/fsutil"
	"github.com/banshee-data/gridpuzzles/internal/geom"
	"github.com/banshee-data/gridpuzzles/internal/monitoring"
	"github.com/banshee-data/gridpuzzles/internal/parse"
	"github.com/banshee-data/gridpuzzles/internal/plotting"
	"github.com/banshee-data/gridpuzzles/internal/scanner"
	"github.com/banshee-data/gridpuzzles/internal/version"
)

type options struct {
	input  string
	config string
	plot   string
}

func main() {
	var o options
	flag.StringVar(&o.input, "input", "", "Path to the scanner reports (required)")
	flag.StringVar(&o.config, "config", "", "Optional JSON or YAML puzzle config")
	flag.StringVar(&o.plot, "plot", "", "Write a PNG of each scanner's beacons projected onto x,y")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String("beacons"))
		return
	}
	if o.input == "" {
		log.Fatalf("-input is required")
	}

	id := monitoring.StartRun("beacons")
	log.Printf("run %s: input=%s", id, o.input)
	if err := run(fsutil.OSFileSystem{}, o, os.Stdout); err != nil {
		log.Fatalf("beacons: %v", err)
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
	reports, err := parse.Scanners(lines)
	if err != nil {
		return err
	}

	scanners := make([]*scanner.Scanner, len(reports))
	for i, r := range reports {
		scanners[i] = scanner.New(r.ID, r.Points)
		monitoring.Logf("scanner %d: %d beacons, %d fingerprints", r.ID, len(scanners[i].Points), scanners[i].Len())
	}
	for _, ov := range scanner.FindOverlaps(scanners, cfg.GetOverlapThreshold()) {
		fmt.Fprintf(stdout, "Overlap %d %d\n", ov.A, ov.B)
	}

	if o.plot == "" {
		return nil
	}
	series := make([]plotting.Series, len(scanners))
	for i, s := range scanners {
		series[i] = plotting.Series{Label: fmt.Sprintf("scanner %d", s.ID), Points: projectXY(s.Points)}
	}
	err = fsutil.WriteWith(fsys, o.plot, func(w io.Writer) error {
		return plotting.WriteScatterPNG(w, plotting.ScatterOptions{Title: "beacons", XLabel: "x", YLabel: "-y"}, series...)
	})
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	log.Printf("wrote %s", o.plot)
	return nil
}

// projectXY drops z. Points come out in Set3D.Sorted order.
func projectXY(pts geom.Set3D) []geom.Point2D {
	out := make([]geom.Point2D, 0, len(pts))
	for _, p := range pts.Sorted() {
		out = append(out, geom.Pt(p.X, p.Y))
	}
	return out
}
