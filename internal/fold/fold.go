// Package fold simulates folding transparent paper marked with dots.
//
// A fold reflects every dot on or past the fold line onto the near side.
// Dots that land on an existing dot merge, which is the only way a fold
// reduces the dot count; Set2D's map semantics carry that.
package fold

import (
	"github.com/banshee-data/gridpuzzles/internal/geom"
	"github.com/banshee-data/gridpuzzles/internal/monitoring"
)

// Reflect mirrors p across f. Horizontal folds map y to 2v-y, vertical
// folds map x to 2v-x. Results may be negative; nothing is clamped.
func Reflect(p geom.Point2D, f geom.Fold) geom.Point2D {
	switch f.Axis {
	case geom.Horizontal:
		return geom.Pt(p.X, 2*f.Value-p.Y)
	case geom.Vertical:
		return geom.Pt(2*f.Value-p.X, p.Y)
	}
	return p
}

// Point returns p unchanged when it lies strictly before the fold line and
// its reflection otherwise.
func Point(p geom.Point2D, f geom.Fold) geom.Point2D {
	if f.Coord(p) < f.Value {
		return p
	}
	return Reflect(p, f)
}

// Once applies a single fold and returns the new dot set. The input set is
// not modified.
func Once(dots geom.Set2D, f geom.Fold) geom.Set2D {
	out := make(geom.Set2D, len(dots))
	for p := range dots {
		out.Add(Point(p, f))
	}
	return out
}

// Steps applies folds in order and returns the dot set after each one.
// Steps(dots, folds)[0] is the sheet after the first fold.
func Steps(dots geom.Set2D, folds []geom.Fold) []geom.Set2D {
	out := make([]geom.Set2D, 0, len(folds))
	cur := dots
	for i, f := range folds {
		next := Once(cur, f)
		monitoring.Logf("fold %d/%d %s: %d -> %d dots", i+1, len(folds), f, len(cur), len(next))
		out = append(out, next)
		cur = next
	}
	return out
}

// All applies every fold and returns the final dot set. With no folds the
// result is a copy of dots.
func All(dots geom.Set2D, folds []geom.Fold) geom.Set2D {
	steps := Steps(dots, folds)
	if len(steps) == 0 {
		return geom.NewSet2D(dots.Sorted()...)
	}
	return steps[len(steps)-1]
}

// Sheet is a parsed fold puzzle ready to run.
type Sheet struct {
	Dots  geom.Set2D
	Folds []geom.Fold
}

// NewSheet collects pts into a set. Duplicate dots in the input collapse.
func NewSheet(pts []geom.Point2D, folds []geom.Fold) *Sheet {
	return &Sheet{Dots: geom.NewSet2D(pts...), Folds: folds}
}

// Result holds the two observable outputs of a fold run.
type Result struct {
	// AfterFirst is the number of dots visible after the first fold, or
	// the starting count when there are no folds.
	AfterFirst int
	// Final is the dot pattern after every fold.
	Final geom.Set2D
}

// Run folds the sheet through every instruction.
func (s *Sheet) Run() Result {
	steps := Steps(s.Dots, s.Folds)
	if len(steps) == 0 {
		return Result{AfterFirst: s.Dots.Len(), Final: s.Dots}
	}
	return Result{AfterFirst: steps[0].Len(), Final: steps[len(steps)-1]}
}
