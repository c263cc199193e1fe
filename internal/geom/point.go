package geom

import (
	"sort"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Point2D is a cell on an integer grid. Y grows downwards when rendered.
type Point2D struct {
	X, Y int
}

// Pt is shorthand for Point2D{x, y}.
func Pt(x, y int) Point2D { return Point2D{X: x, Y: y} }

// String returns the point as "x,y".
func (p Point2D) String() string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

// Add returns p translated by d.
func (p Point2D) Add(d Point2D) Point2D { return Point2D{p.X + d.X, p.Y + d.Y} }

// Point3D is a beacon position relative to a scanner.
type Point3D struct {
	X, Y, Z int
}

// Pt3 is shorthand for Point3D{x, y, z}.
func Pt3(x, y, z int) Point3D { return Point3D{X: x, Y: y, Z: z} }

// String returns the point as "x,y,z".
func (p Point3D) String() string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y) + "," + strconv.Itoa(p.Z)
}

// SquaredDistance returns the squared Euclidean distance between p and q.
// It is invariant under rotation and translation of the shared frame.
func (p Point3D) SquaredDistance(q Point3D) int {
	dx := p.X - q.X
	dy := p.Y - q.Y
	dz := p.Z - q.Z
	return dx*dx + dy*dy + dz*dz
}

// Abs returns |v|.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// AbsDiff returns |a - b|.
func AbsDiff[T constraints.Signed](a, b T) T {
	return Abs(a - b)
}

// Sign returns -1, 0 or 1 according to the sign of v.
func Sign[T constraints.Signed](v T) T {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// Set2D is a set of grid points.
type Set2D map[Point2D]struct{}

// NewSet2D returns a set holding pts. Duplicates collapse.
func NewSet2D(pts ...Point2D) Set2D {
	s := make(Set2D, len(pts))
	for _, p := range pts {
		s[p] = struct{}{}
	}
	return s
}

// Add inserts p.
func (s Set2D) Add(p Point2D) { s[p] = struct{}{} }

// Contains reports whether p is in the set.
func (s Set2D) Contains(p Point2D) bool {
	_, ok := s[p]
	return ok
}

// Len returns the number of distinct points.
func (s Set2D) Len() int { return len(s) }

// Sorted returns the points ordered by row then column.
func (s Set2D) Sorted() []Point2D {
	out := make([]Point2D, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Set3D is a set of 3-D points.
type Set3D map[Point3D]struct{}

// NewSet3D returns a set holding pts. Duplicates collapse.
func NewSet3D(pts ...Point3D) Set3D {
	s := make(Set3D, len(pts))
	for _, p := range pts {
		s[p] = struct{}{}
	}
	return s
}

// Add inserts p.
func (s Set3D) Add(p Point3D) { s[p] = struct{}{} }

// Contains reports whether p is in the set.
func (s Set3D) Contains(p Point3D) bool {
	_, ok := s[p]
	return ok
}

// Sorted returns the points in x, y, z order.
func (s Set3D) Sorted() []Point3D {
	out := make([]Point3D, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.Z < b.Z
	})
	return out
}
