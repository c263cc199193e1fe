package parse

import (
	"fmt"
	"strings"

	"github.com/banshee-data/gridpuzzles/internal/geom"
)

// each applies fn to every non-blank line of b, stamping line numbers on
// failures.
func each[T any](b Block, fn func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(b.Lines))
	for i, l := range b.Lines {
		if isBlank(l) {
			continue
		}
		v, err := fn(l)
		if err != nil {
			return nil, atLine(err, b.Start+i)
		}
		out = append(out, v)
	}
	return out, nil
}

// Points2D parses one point per line.
func Points2D(b Block) ([]geom.Point2D, error) { return each(b, Point2D) }

// Folds parses one fold instruction per line.
func Folds(b Block) ([]geom.Fold, error) { return each(b, Fold) }

// Segments parses one segment per non-blank line.
func Segments(lines []string) ([]geom.Segment, error) {
	return each(Block{Start: 1, Lines: lines}, Segment)
}

// Origami is the fold puzzle input: dots, then fold instructions.
type Origami struct {
	Points []geom.Point2D
	Folds  []geom.Fold
}

// ParseOrigami splits lines at the first blank line and parses both halves.
func ParseOrigami(lines []string) (Origami, error) {
	head, tail, err := SplitAtBlank(lines)
	if err != nil {
		return Origami{}, err
	}
	pts, err := Points2D(head)
	if err != nil {
		return Origami{}, fmt.Errorf("points: %w", err)
	}
	folds, err := Folds(tail)
	if err != nil {
		return Origami{}, fmt.Errorf("folds: %w", err)
	}
	return Origami{Points: pts, Folds: folds}, nil
}

// ScannerReport is one scanner block: an id and the beacons it saw.
type ScannerReport struct {
	ID     int
	Points []geom.Point3D
}

// Scanners parses blank-line separated scanner blocks. A block may start
// with a "--- scanner N ---" header; otherwise its position is its id.
func Scanners(lines []string) ([]ScannerReport, error) {
	blocks := Blocks(lines)
	out := make([]ScannerReport, 0, len(blocks))
	for i, b := range blocks {
		rep := ScannerReport{ID: i}
		if strings.HasPrefix(strings.TrimSpace(b.Lines[0]), "---") {
			id, err := ScannerHeader(b.Lines[0])
			if err != nil {
				return nil, atLine(err, b.Start)
			}
			rep.ID = id
			b = Block{Start: b.Start + 1, Lines: b.Lines[1:]}
		}
		pts, err := each(b, Point3D)
		if err != nil {
			return nil, fmt.Errorf("scanner %d: %w", rep.ID, err)
		}
		rep.Points = pts
		out = append(out, rep)
	}
	return out, nil
}

// TargetArea parses the first non-blank line as a target description.
func TargetArea(lines []string) (x, y Range, err error) {
	for i, l := range lines {
		if isBlank(l) {
			continue
		}
		x, y, err = Target(l)
		return x, y, atLine(err, i+1)
	}
	return x, y, &ParseError{Reason: "no target area line"}
}
