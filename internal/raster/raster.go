// Package raster expands line segments into grid cells and tallies how many
// segments cover each cell.
package raster

import (
	"errors"
	"fmt"

	"github.com/banshee-data/gridpuzzles/internal/geom"
	"github.com/banshee-data/gridpuzzles/internal/monitoring"
)

// DefaultThreshold is the occupancy at which a cell counts as an overlap.
const DefaultThreshold = 2

// ErrUnsupportedSlope is returned for a segment that is not horizontal,
// vertical or at exactly 45 degrees.
var ErrUnsupportedSlope = errors.New("segment is not horizontal, vertical or 45° diagonal")

// Cells returns every grid cell seg passes through, endpoints included.
func Cells(seg geom.Segment) (geom.Set2D, error) {
	a, b := seg.Start, seg.End
	switch {
	case seg.IsVertical():
		lo, hi := minmax(a.Y, b.Y)
		cells := make(geom.Set2D, hi-lo+1)
		for y := lo; y <= hi; y++ {
			cells.Add(geom.Pt(a.X, y))
		}
		return cells, nil
	case seg.IsHorizontal():
		lo, hi := minmax(a.X, b.X)
		cells := make(geom.Set2D, hi-lo+1)
		for x := lo; x <= hi; x++ {
			cells.Add(geom.Pt(x, a.Y))
		}
		return cells, nil
	case seg.IsDiagonal():
		// x and y advance in lockstep toward End.
		step := geom.Pt(geom.Sign(b.X-a.X), geom.Sign(b.Y-a.Y))
		n := geom.AbsDiff(a.X, b.X) + 1
		cells := make(geom.Set2D, n)
		p := a
		for i := 0; i < n; i++ {
			cells.Add(p)
			p = p.Add(step)
		}
		return cells, nil
	}
	return nil, fmt.Errorf("%s: %w", seg, ErrUnsupportedSlope)
}

func minmax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

// OccupancyMap counts, per cell, the segments covering it.
type OccupancyMap map[geom.Point2D]uint

// Add increments the count of every cell in cells by one.
func (m OccupancyMap) Add(cells geom.Set2D) {
	for p := range cells {
		m[p]++
	}
}

// CountAtLeast returns the number of cells covered by at least threshold
// segments.
func (m OccupancyMap) CountAtLeast(threshold uint) int {
	n := 0
	for _, c := range m {
		if c >= threshold {
			n++
		}
	}
	return n
}

// Max returns the highest occupancy in the map, 0 when empty.
func (m OccupancyMap) Max() uint {
	var hi uint
	for _, c := range m {
		if c > hi {
			hi = c
		}
	}
	return hi
}

// Options controls which segments Overlay draws.
type Options struct {
	// SkipDiagonals ignores 45° segments, counting only horizontal and
	// vertical ones.
	SkipDiagonals bool
}

// Overlay rasterises every segment and stacks them into one map. The first
// segment with an unsupported slope aborts the overlay.
func Overlay(segs []geom.Segment, opts Options) (OccupancyMap, error) {
	m := make(OccupancyMap)
	skipped := 0
	for i, s := range segs {
		if opts.SkipDiagonals && s.IsDiagonal() {
			skipped++
			continue
		}
		cells, err := Cells(s)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i+1, err)
		}
		m.Add(cells)
	}
	monitoring.Logf("overlaid %d segments (%d diagonals skipped) onto %d cells", len(segs)-skipped, skipped, len(m))
	return m, nil
}
