// SPDX-License-Identifier: MIT

package sweep

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderHTML writes pts as a line chart: one series per variant plus the
// lossiness gap, code length on the x axis.
func RenderHTML(w io.Writer, title string, pts []Point) error {
	if len(pts) == 0 {
		return ErrNoLengths
	}
	var (
		labels = make([]string, len(pts))
		gap    = make([]opts.LineData, len(pts))
		series = make([][]opts.LineData, len(pts[0].Levels))
	)
	for i := range series {
		series[i] = make([]opts.LineData, len(pts))
	}
	for i, pt := range pts {
		labels[i] = strconv.Itoa(pt.Params.N)
		gap[i] = opts.LineData{Value: pt.GapBits}
		for j := range series {
			series[j][i] = opts.LineData{Value: pt.Levels[j].Bits}
		}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("n = %d … %d", pts[0].Params.N, pts[len(pts)-1].Params.N),
		}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "code length n"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "bits"}),
	)
	line.SetXAxis(labels)
	for j := range series {
		line.AddSeries(pts[0].Levels[j].Variant.String(), series[j])
	}
	line.AddSeries("lossiness gap", gap)

	return line.Render(w)
}
