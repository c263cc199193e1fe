package geom

import (
	"fmt"
	"strconv"
)

// Axis names the coordinate a fold line constrains.
type Axis int

const (
	// Horizontal folds run along y = value and reflect Y.
	Horizontal Axis = iota
	// Vertical folds run along x = value and reflect X.
	Vertical
)

// Letter returns the coordinate letter used in fold instructions.
func (a Axis) Letter() string {
	switch a {
	case Horizontal:
		return "y"
	case Vertical:
		return "x"
	}
	return "?"
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Fold is an axis-aligned fold line.
type Fold struct {
	Axis  Axis
	Value int
}

// Coord returns the coordinate of p that this fold compares against Value.
func (f Fold) Coord(p Point2D) int {
	if f.Axis == Vertical {
		return p.X
	}
	return p.Y
}

// String returns the fold as an instruction, e.g. "fold along y=7".
func (f Fold) String() string {
	return "fold along " + f.Axis.Letter() + "=" + strconv.Itoa(f.Value)
}

// Segment is a straight run of grid cells between two inclusive endpoints.
type Segment struct {
	Start, End Point2D
}

// Seg is shorthand for a segment from (x1,y1) to (x2,y2).
func Seg(x1, y1, x2, y2 int) Segment {
	return Segment{Start: Pt(x1, y1), End: Pt(x2, y2)}
}

// String returns the segment as "x1,y1 -> x2,y2".
func (s Segment) String() string {
	return s.Start.String() + " -> " + s.End.String()
}

// IsVertical reports whether both endpoints share an X.
func (s Segment) IsVertical() bool { return s.Start.X == s.End.X }

// IsHorizontal reports whether both endpoints share a Y.
func (s Segment) IsHorizontal() bool { return s.Start.Y == s.End.Y }

// IsDiagonal reports whether the segment has slope exactly +1 or -1.
// A single-cell segment is not diagonal.
func (s Segment) IsDiagonal() bool {
	dx := AbsDiff(s.Start.X, s.End.X)
	return dx != 0 && dx == AbsDiff(s.Start.Y, s.End.Y)
}

// Bounds is an inclusive bounding box.
type Bounds struct {
	Min, Max Point2D
}

// Width returns the number of columns covered.
func (b Bounds) Width() int { return b.Max.X - b.Min.X + 1 }

// Height returns the number of rows covered.
func (b Bounds) Height() int { return b.Max.Y - b.Min.Y + 1 }

// Contains reports whether p lies inside the box.
func (b Bounds) Contains(p Point2D) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// ExpandTo returns the box grown to include p.
func (b Bounds) ExpandTo(p Point2D) Bounds {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	return b
}

// BoundsOf returns the bounding box of s. ok is false when s is empty.
func BoundsOf(s Set2D) (b Bounds, ok bool) {
	for p := range s {
		if !ok {
			b = Bounds{Min: p, Max: p}
			ok = true
			continue
		}
		b = b.ExpandTo(p)
	}
	return b, ok
}
