package plotting

import (
	"fmt"
	"io"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/gridpuzzles/internal/geom"
	"github.com/banshee-data/gridpuzzles/internal/raster"
)

var viridis = []string{"#440154", "#482777", "#3e4989", "#31688e", "#26828e", "#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"}

// WriteOccupancyHeatmap renders m as an HTML page holding a coloured scatter
// chart, one square per occupied cell, coloured by how many segments cover
// it. The subtitle counts cells covered at least threshold times. Rows are
// negated so the chart reads top-down like the puzzle grid.
func WriteOccupancyHeatmap(w io.Writer, title string, m raster.OccupancyMap, threshold uint) error {
	if len(m) == 0 {
		return fmt.Errorf("heatmap %q: occupancy map is empty", title)
	}
	cells := make([]geom.Point2D, 0, len(m))
	for p := range m {
		cells = append(cells, p)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})

	data := make([]opts.ScatterData, 0, len(cells))
	for _, p := range cells {
		data = append(data, opts.ScatterData{Value: []interface{}{p.X, -p.Y, m[p]}})
	}

	maxSeen := m.Max()
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Theme: "dark", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("cells=%d max=%d threshold=%d overlaps=%d", len(cells), maxSeen, threshold, m.CountAtLeast(threshold))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "x", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: "-y", NameLocation: "middle", NameGap: 30}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        1,
			Max:        float32(maxSeen),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: viridis},
		}),
	)
	scatter.AddSeries("occupancy", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 4}))

	if err := scatter.Render(w); err != nil {
		return fmt.Errorf("render heatmap: %w", err)
	}
	return nil
}
