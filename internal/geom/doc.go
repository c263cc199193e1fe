// Package geom holds the integer value types shared by the puzzle solvers:
// grid points in two and three dimensions, fold lines, line segments and
// bounding boxes.
//
// Every type here is a comparable value so it can key a map. Sets of points
// are plain maps with empty-struct values; set semantics (coincident points
// collapse on insert) are relied on by the fold engine.
//
// Parsing lives in internal/parse. The String methods in this package emit
// the same grammar the parser accepts.
package geom
