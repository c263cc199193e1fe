package fold

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/gridpuzzles/internal/geom"
	"github.com/banshee-data/gridpuzzles/internal/monitoring"
	"github.com/banshee-data/gridpuzzles/internal/parse"
)

func TestMain(m *testing.M) {
	monitoring.SetLogger(nil)
	os.Exit(m.Run())
}

func TestReflect(t *testing.T) {
	tests := []struct {
		name string
		p    geom.Point2D
		f    geom.Fold
		want geom.Point2D
	}{
		{"horizontal", geom.Pt(1, 2), geom.Fold{Axis: geom.Horizontal, Value: 4}, geom.Pt(1, 6)},
		{"horizontal negative input", geom.Pt(1, -2), geom.Fold{Axis: geom.Horizontal, Value: 1}, geom.Pt(1, 4)},
		{"vertical on the line", geom.Pt(1, -2), geom.Fold{Axis: geom.Vertical, Value: 1}, geom.Pt(1, -2)},
		{"vertical negative fold", geom.Pt(3, -2), geom.Fold{Axis: geom.Vertical, Value: -1}, geom.Pt(-5, -2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reflect(tt.p, tt.f))
		})
	}
}

func TestReflectIsInvolution(t *testing.T) {
	folds := []geom.Fold{
		{Axis: geom.Horizontal, Value: 0},
		{Axis: geom.Horizontal, Value: 7},
		{Axis: geom.Vertical, Value: -3},
		{Axis: geom.Vertical, Value: 655},
	}
	for x := -5; x <= 5; x++ {
		for y := -5; y <= 5; y++ {
			p := geom.Pt(x, y)
			for _, f := range folds {
				if got := Reflect(Reflect(p, f), f); got != p {
					t.Errorf("Reflect twice %v across %v = %v", p, f, got)
				}
			}
		}
	}
}

func TestOnceKeepsPointsBeforeLine(t *testing.T) {
	f := geom.Fold{Axis: geom.Vertical, Value: 5}
	p := geom.Pt(4, 100)
	assert.Equal(t, geom.NewSet2D(p), Once(geom.NewSet2D(p), f))
}

func TestOnceMergesCoincidentDots(t *testing.T) {
	f := geom.Fold{Axis: geom.Horizontal, Value: 3}
	dots := geom.NewSet2D(geom.Pt(0, 1), geom.Pt(0, 5), geom.Pt(2, 3))
	got := Once(dots, f)
	assert.Equal(t, geom.NewSet2D(geom.Pt(0, 1), geom.Pt(2, 3)), got)
	assert.Len(t, dots, 3, "input set must not be modified")
}

func TestOnceNeverGrows(t *testing.T) {
	dots := geom.NewSet2D()
	for i := 0; i < 40; i++ {
		dots.Add(geom.Pt((i*7)%13, (i*5)%11))
	}
	for _, f := range []geom.Fold{
		{Axis: geom.Horizontal, Value: 5},
		{Axis: geom.Vertical, Value: 6},
		{Axis: geom.Vertical, Value: 0},
		{Axis: geom.Horizontal, Value: 20},
	} {
		assert.LessOrEqual(t, Once(dots, f).Len(), dots.Len(), f.String())
	}
}

func loadSample(t *testing.T) *Sheet {
	t.Helper()
	data, err := os.ReadFile("testdata/sample.txt")
	require.NoError(t, err)
	in, err := parse.ParseOrigami(strings.Split(strings.TrimRight(string(data), "\n"), "\n"))
	require.NoError(t, err)
	return NewSheet(in.Points, in.Folds)
}

func TestSheetRunSample(t *testing.T) {
	sheet := loadSample(t)
	require.Equal(t, 18, sheet.Dots.Len())

	res := sheet.Run()
	assert.Equal(t, 17, res.AfterFirst)

	want := geom.NewSet2D()
	for i := 0; i <= 4; i++ {
		want.Add(geom.Pt(i, 0))
		want.Add(geom.Pt(i, 4))
		want.Add(geom.Pt(0, i))
		want.Add(geom.Pt(4, i))
	}
	assert.Equal(t, want, res.Final)
}

func TestStepsMatchAll(t *testing.T) {
	sheet := loadSample(t)
	steps := Steps(sheet.Dots, sheet.Folds)
	require.Len(t, steps, 2)
	assert.Equal(t, steps[1], All(sheet.Dots, sheet.Folds))
}

func TestNoFolds(t *testing.T) {
	dots := geom.NewSet2D(geom.Pt(1, 1), geom.Pt(2, 2))
	assert.Equal(t, dots, All(dots, nil))

	res := NewSheet([]geom.Point2D{geom.Pt(1, 1), geom.Pt(1, 1)}, nil).Run()
	assert.Equal(t, 1, res.AfterFirst)
	assert.Equal(t, geom.NewSet2D(geom.Pt(1, 1)), res.Final)
}
