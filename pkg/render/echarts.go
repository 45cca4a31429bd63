package render

import (
	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/voronoi"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	sitesSeries    = "Точки"
	delaunaySeries = "Делоне"
	voronoiSeries  = "Вороной"
)

func prepareScatter(scatter *charts.Scatter, title string) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "580px",
			Width:  "1020px",
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: "white",
			},
			Right: "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                title,
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "Ширина",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Высота",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

// Отрезок как отдельная линия поверх scatter
func overlapSegment(scatter *charts.Scatter, series, color string, width float32, a, b geom.Point) {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
	)

	line.AddSeries(series, []opts.LineData{
		{Value: []float64{a.X, a.Y}},
		{Value: []float64{b.X, b.Y}},
	}).SetSeriesOptions(
		charts.WithLineStyleOpts(opts.LineStyle{
			Width: width,
			Color: color,
		}),
	)

	scatter.Overlap(line)
}

// Chart строит echarts-диаграмму: точки, ребра Делоне и ребра Вороного, обрезанные bbox.
// d может быть nil, тогда рисуется только триангуляция.
func Chart(tri *delaunay.Triangulation, d *voronoi.Diagram, bbox geom.BoundingBox, title string) *charts.Scatter {
	scatter := charts.NewScatter()

	points := make([]opts.ScatterData, 0)
	for _, p := range tri.Points() {
		points = append(points, opts.ScatterData{
			Value: []float64{p.X, p.Y},
		})
	}

	// Дизайним скаттер
	prepareScatter(scatter, title)

	scatter.AddSeries(sitesSeries, points).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "lightgreen",
			}),
		)

	for _, e := range tri.Edges() {
		overlapSegment(scatter, delaunaySeries, "gray", 1, e.P, e.Q)
	}

	if d != nil {
		for _, e := range d.ClippedEdges(bbox) {
			overlapSegment(scatter, voronoiSeries, "orange", 2, e.Va, e.Vb)
		}
	}

	return scatter
}
