// Command fold folds a sheet of transparent paper marked with dots and
// prints the dot count after the first fold followed by the final pattern.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/banshee-data/gridpuzzles/internal/config"
	"github.com/banshee-data/gridpuzzles/internal/fold"
	"github.com/banshee-data/gridpuzzles/internal/fsutil"
	"github.com/banshee-data/gridpuzzles/internal/monitoring"
	"github.com/banshee-data/gridpuzzles/internal/parse"
	"github.com/banshee-data/gridpuzzles/internal/plotting"
	"github.com/banshee-data/gridpuzzles/internal/render"
	"github.com/banshee-data/gridpuzzles/internal/version"
)

type options struct {
	input  string
	config string
	plot   string
}

func main() {
	var o options
	flag.StringVar(&o.input, "input", "", "Path to the dots and fold instructions (required)")
	flag.StringVar(&o.config, "config", "", "Optional JSON or YAML puzzle config")
	flag.StringVar(&o.plot, "plot", "", "Write a PNG scatter of the sheet before and after folding")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String("fold"))
		return
	}
	if o.input == "" {
		log.Fatalf("-input is required")
	}

	id := monitoring.StartRun("fold")
	log.Printf("run %s: input=%s", id, o.input)
	if err := run(fsutil.OSFileSystem{}, o, os.Stdout); err != nil {
		log.Fatalf("fold: %v", err)
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
	origami, err := parse.ParseOrigami(lines)
	if err != nil {
		return err
	}

	sheet := fold.NewSheet(origami.Points, origami.Folds)
	res := sheet.Run()
	rows, err := render.Grid(res.Final, cfg.Marks())
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, res.AfterFirst)
	for _, row := range rows {
		fmt.Fprintln(stdout, row)
	}

	if o.plot == "" {
		return nil
	}
	err = fsutil.WriteWith(fsys, o.plot, func(w io.Writer) error {
		return plotting.WriteScatterPNG(w, plotting.ScatterOptions{Title: "fold", XLabel: "x", YLabel: "-y"},
			plotting.Series{Label: "unfolded", Points: sheet.Dots.Sorted()},
			plotting.Series{Label: "folded", Points: res.Final.Sorted()},
		)
	})
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	log.Printf("wrote %s", o.plot)
	return nil
}
