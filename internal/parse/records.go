package parse

import (
	"strconv"
	"strings"

	"github.com/banshee-data/gridpuzzles/internal/geom"
)

const (
	foldPrefix   = "fold along "
	targetPrefix = "target area:"
)

// Point2D parses "x,y".
func Point2D(s string) (geom.Point2D, error) {
	v, err := ints(s, ",", 2)
	if err != nil {
		return geom.Point2D{}, err
	}
	return geom.Pt(v[0], v[1]), nil
}

// Point3D parses "x,y,z".
func Point3D(s string) (geom.Point3D, error) {
	v, err := ints(s, ",", 3)
	if err != nil {
		return geom.Point3D{}, err
	}
	return geom.Pt3(v[0], v[1], v[2]), nil
}

// Fold parses "fold along x=5". An x fold is Vertical, a y fold Horizontal.
func Fold(s string) (geom.Fold, error) {
	line := strings.TrimSpace(s)
	if !strings.HasPrefix(line, foldPrefix) {
		return geom.Fold{}, errorf(s, nil, "missing %q prefix", strings.TrimSpace(foldPrefix))
	}
	letter, value, ok := strings.Cut(strings.TrimPrefix(line, foldPrefix), "=")
	if !ok {
		return geom.Fold{}, errorf(s, nil, "missing '='")
	}
	var axis geom.Axis
	switch strings.TrimSpace(letter) {
	case "x":
		axis = geom.Vertical
	case "y":
		axis = geom.Horizontal
	default:
		return geom.Fold{}, errorf(s, nil, "unknown axis %q", letter)
	}
	v, err := integer(s, value)
	if err != nil {
		return geom.Fold{}, err
	}
	return geom.Fold{Axis: axis, Value: v}, nil
}

// Segment parses "x1,y1 -> x2,y2". Whitespace anywhere is ignored and
// coordinates must be non-negative.
func Segment(s string) (geom.Segment, error) {
	compact := strings.Join(strings.Fields(s), "")
	start, end, ok := strings.Cut(compact, "->")
	if !ok {
		return geom.Segment{}, errorf(s, nil, "missing '->'")
	}
	a, err := gridPoint(s, start)
	if err != nil {
		return geom.Segment{}, err
	}
	b, err := gridPoint(s, end)
	if err != nil {
		return geom.Segment{}, err
	}
	return geom.Segment{Start: a, End: b}, nil
}

func gridPoint(input, s string) (geom.Point2D, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 2 {
		return geom.Point2D{}, errorf(input, nil, "want 2 coordinates in %q, got %d", s, len(fields))
	}
	var xy [2]int
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 32)
		if err != nil {
			return geom.Point2D{}, errorf(input, err, "bad grid coordinate %q", f)
		}
		xy[i] = int(v)
	}
	return geom.Pt(xy[0], xy[1]), nil
}

// ScannerHeader parses "--- scanner 3 ---" and returns the scanner id.
func ScannerHeader(s string) (int, error) {
	line := strings.TrimSpace(s)
	if !strings.HasPrefix(line, "---") || !strings.HasSuffix(line, "---") || len(line) < 6 {
		return 0, errorf(s, nil, "not a scanner header")
	}
	fields := strings.Fields(strings.Trim(line, "- "))
	if len(fields) != 2 || fields[0] != "scanner" {
		return 0, errorf(s, nil, "want \"scanner <id>\"")
	}
	return integer(s, fields[1])
}

// Range is an inclusive integer interval read from "a..b".
type Range struct {
	Min, Max int
}

// Target parses "target area: x=20..30, y=-10..-5" into its x and y ranges.
// Bounds given in descending order are swapped.
func Target(s string) (x, y Range, err error) {
	line := strings.TrimSpace(s)
	if !strings.HasPrefix(line, targetPrefix) {
		return x, y, errorf(s, nil, "missing %q prefix", targetPrefix)
	}
	parts := strings.Split(strings.TrimPrefix(line, targetPrefix), ",")
	if len(parts) != 2 {
		return x, y, errorf(s, nil, "want x and y ranges, got %d parts", len(parts))
	}
	if x, err = axisRange(s, parts[0], "x"); err != nil {
		return x, y, err
	}
	if y, err = axisRange(s, parts[1], "y"); err != nil {
		return x, y, err
	}
	return x, y, nil
}

func axisRange(input, part, axis string) (Range, error) {
	name, bounds, ok := strings.Cut(strings.TrimSpace(part), "=")
	if !ok || name != axis {
		return Range{}, errorf(input, nil, "want %s=<min>..<max>", axis)
	}
	lo, hi, ok := strings.Cut(bounds, "..")
	if !ok {
		return Range{}, errorf(input, nil, "missing '..' in %s range", axis)
	}
	a, err := integer(input, lo)
	if err != nil {
		return Range{}, err
	}
	b, err := integer(input, hi)
	if err != nil {
		return Range{}, err
	}
	if a > b {
		a, b = b, a
	}
	return Range{Min: a, Max: b}, nil
}
