package parse

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/gridpuzzles/internal/geom"
)

func TestPoint2D(t *testing.T) {
	tests := []struct {
		in   string
		want geom.Point2D
	}{
		{"1,2", geom.Pt(1, 2)},
		{"02,1", geom.Pt(2, 1)},
		{"02, 1", geom.Pt(2, 1)},
		{"-4,10", geom.Pt(-4, 10)},
	}
	for _, tt := range tests {
		got, err := Point2D(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestPoint2DErrors(t *testing.T) {
	for _, in := range []string{"", "1", "1,2,3", "a,2", "1,", "1.5,2"} {
		_, err := Point2D(in)
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("Point2D(%q) err = %v, want *ParseError", in, err)
		}
	}
}

func TestPoint2DWrapsStrconv(t *testing.T) {
	_, err := Point2D("x,1")
	assert.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestPoint3D(t *testing.T) {
	p, err := Point3D("404,-588,-901")
	require.NoError(t, err)
	assert.Equal(t, geom.Pt3(404, -588, -901), p)

	_, err = Point3D("1,2")
	assert.Error(t, err)
}

func TestFold(t *testing.T) {
	f, err := Fold("fold along y=7")
	require.NoError(t, err)
	assert.Equal(t, geom.Fold{Axis: geom.Horizontal, Value: 7}, f)

	f, err = Fold("fold along x=5")
	require.NoError(t, err)
	assert.Equal(t, geom.Fold{Axis: geom.Vertical, Value: 5}, f)

	for _, bad := range []string{"fold along z=3", "fold along x5", "fold at x=5", "fold along y=q"} {
		_, err := Fold(bad)
		assert.Error(t, err, bad)
	}
}

func TestSegmentToleratesWhitespace(t *testing.T) {
	s, err := Segment("1,2 -> 4, 3")
	require.NoError(t, err)
	assert.Equal(t, geom.Seg(1, 2, 4, 3), s)

	s, err = Segment("  0 ,9->5,9 ")
	require.NoError(t, err)
	assert.Equal(t, geom.Seg(0, 9, 5, 9), s)
}

func TestSegmentErrors(t *testing.T) {
	for _, bad := range []string{"1,2 4,3", "1,2 -> 4", "-1,2 -> 4,3", "1,2 -> 4,x", "1,2,3 -> 4,5"} {
		_, err := Segment(bad)
		assert.Error(t, err, bad)
	}
}

func TestRoundTrip(t *testing.T) {
	seg := geom.Seg(8, 0, 0, 8)
	got, err := Segment(seg.String())
	require.NoError(t, err)
	assert.Equal(t, seg, got)

	p := geom.Pt(-3, 14)
	gotP, err := Point2D(p.String())
	require.NoError(t, err)
	assert.Equal(t, p, gotP)

	p3 := geom.Pt3(-618, -824, -621)
	gotP3, err := Point3D(p3.String())
	require.NoError(t, err)
	assert.Equal(t, p3, gotP3)

	f := geom.Fold{Axis: geom.Vertical, Value: 655}
	gotF, err := Fold(f.String())
	require.NoError(t, err)
	assert.Equal(t, f, gotF)
}

func TestBlocks(t *testing.T) {
	lines := []string{"a", "b", "", "", "c", "  ", "d", "e"}
	got := Blocks(lines)
	want := []Block{
		{Start: 1, Lines: []string{"a", "b"}},
		{Start: 5, Lines: []string{"c"}},
		{Start: 7, Lines: []string{"d", "e"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Blocks mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, Blocks(nil))
}

func TestSplitAtBlank(t *testing.T) {
	head, tail, err := SplitAtBlank([]string{"1,1", "", "fold along x=1", "", "fold along y=2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1,1"}, head.Lines)
	assert.Equal(t, 3, tail.Start)
	assert.Equal(t, []string{"fold along x=1", "", "fold along y=2"}, tail.Lines)

	folds, err := Folds(tail)
	require.NoError(t, err)
	assert.Len(t, folds, 2)

	_, _, err = SplitAtBlank([]string{"1,1"})
	assert.Error(t, err)
}

func TestParseOrigamiLineNumbers(t *testing.T) {
	_, err := ParseOrigami([]string{"1,1", "2,2", "", "fold along x=1", "fold along w=2"})
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 5, pe.Line)
	assert.Contains(t, err.Error(), "line 5")
}

func TestScanners(t *testing.T) {
	lines := []string{
		"--- scanner 0 ---",
		"1,2,3",
		"-1,-2,-3",
		"",
		"--- scanner 7 ---",
		"4,5,6",
	}
	got, err := Scanners(lines)
	require.NoError(t, err)
	want := []ScannerReport{
		{ID: 0, Points: []geom.Point3D{geom.Pt3(1, 2, 3), geom.Pt3(-1, -2, -3)}},
		{ID: 7, Points: []geom.Point3D{geom.Pt3(4, 5, 6)}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Scanners mismatch (-want +got):\n%s", diff)
	}
}

func TestScannersWithoutHeaders(t *testing.T) {
	got, err := Scanners([]string{"1,1,1", "", "2,2,2"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0].ID)
	assert.Equal(t, 1, got[1].ID)
}

func TestScannersBadHeader(t *testing.T) {
	_, err := Scanners([]string{"--- beacon 0 ---", "1,1,1"})
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 1, pe.Line)
}

func TestTarget(t *testing.T) {
	x, y, err := Target("target area: x=20..30, y=-10..-5")
	require.NoError(t, err)
	assert.Equal(t, Range{20, 30}, x)
	assert.Equal(t, Range{-10, -5}, y)

	x, _, err = Target("target area: x=30..20, y=-10..-5")
	require.NoError(t, err)
	assert.Equal(t, Range{20, 30}, x)

	for _, bad := range []string{"area: x=1..2, y=3..4", "target area: x=1..2", "target area: y=1..2, x=3..4", "target area: x=1-2, y=3..4"} {
		_, _, err := Target(bad)
		assert.Error(t, err, bad)
	}
}

func TestTargetArea(t *testing.T) {
	x, y, err := TargetArea([]string{"", "target area: x=185..221, y=-122..-74"})
	require.NoError(t, err)
	assert.Equal(t, Range{185, 221}, x)
	assert.Equal(t, Range{-122, -74}, y)

	_, _, err = TargetArea(nil)
	assert.Error(t, err)
}
