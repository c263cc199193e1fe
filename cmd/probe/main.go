// Command probe reads a target area and prints the highest apex a hitting
// launch can reach, then the number of distinct hitting launch velocities.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/banshee-data/gridpuzzles/internal/fsutil"
	"github.com/banshee-data/gridpuzzles/internal/monitoring"
	"github.com/banshee-data/gridpuzzles/internal/parse"
	"github.com/banshee-data/gridpuzzles/internal/probe"
	"github.com/banshee-data/gridpuzzles/internal/version"
)

func main() {
	input := flag.String("input", "", "Path to the target area description (required)")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String("probe"))
		return
	}
	if *input == "" {
		log.Fatalf("-input is required")
	}

	id := monitoring.StartRun("probe")
	log.Printf("run %s: input=%s", id, *input)
	if err := run(fsutil.OSFileSystem{}, *input, os.Stdout); err != nil {
		log.Fatalf("probe: %v", err)
	}
}

func run(fsys fsutil.FileSystem, input string, stdout io.Writer) error {
	lines, err := fsutil.ReadLines(fsys, input)
	if err != nil {
		return err
	}
	x, y, err := parse.TargetArea(lines)
	if err != nil {
		return err
	}
	t := probe.Target{MinX: x.Min, MaxX: x.Max, MinY: y.Min, MaxY: y.Max}

	fmt.Fprintln(stdout, probe.HighestApex(t))
	fmt.Fprintln(stdout, len(probe.ValidVelocities(t)))
	return nil
}
