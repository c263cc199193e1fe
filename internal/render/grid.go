// Package render draws point sets as character grids.
package render

import (
	"strings"

	"github.com/banshee-data/gridpuzzles/internal/geom"
)

// Marks are the glyphs for occupied and empty cells.
type Marks struct {
	Filled rune
	Empty  rune
}

// DefaultMarks draws '#' for a point and '.' for empty space.
var DefaultMarks = Marks{Filled: '#', Empty: '.'}

// EmptyInputError is returned when there is nothing to draw; the bounding
// box of an empty set is undefined.
type EmptyInputError struct {
	What string
}

func (e *EmptyInputError) Error() string {
	if e.What == "" {
		return "render: empty point set"
	}
	return "render: empty " + e.What
}

// Grid renders pts over their bounding box, one string per row from the
// smallest y to the largest. Column i of a row is pts' x = min_x + i.
func Grid(pts geom.Set2D, m Marks) ([]string, error) {
	b, ok := geom.BoundsOf(pts)
	if !ok {
		return nil, &EmptyInputError{What: "point set"}
	}
	rows := make([]string, 0, b.Height())
	var sb strings.Builder
	for y := b.Min.Y; y <= b.Max.Y; y++ {
		sb.Reset()
		for x := b.Min.X; x <= b.Max.X; x++ {
			if pts.Contains(geom.Pt(x, y)) {
				sb.WriteRune(m.Filled)
			} else {
				sb.WriteRune(m.Empty)
			}
		}
		rows = append(rows, sb.String())
	}
	return rows, nil
}

// String renders pts with DefaultMarks as newline-joined rows.
func String(pts geom.Set2D) (string, error) {
	rows, err := Grid(pts, DefaultMarks)
	if err != nil {
		return "", err
	}
	return strings.Join(rows, "\n"), nil
}
