package chart

import (
	"fmt"

	"github.com/tomvill/f1-analytics/pkg/analysis"
	"github.com/tomvill/f1-analytics/pkg/style"
)

// Telemetry renders the multi-driver channel overlay of the comparison page.
func Telemetry(cmp *analysis.TelemetryComparison) *Figure {
	fig := &Figure{
		Layout: darkLayout(fmt.Sprintf("Fastest Lap %s Comparison", cmp.Metric.Label())),
	}
	fig.Layout.XAxis = gridAxis("Distance [m]")
	fig.Layout.YAxis = gridAxis(cmp.Metric.Label())
	fig.Layout.HoverMode = "x unified"
	for i, series := range cmp.Series {
		fig.Data = append(fig.Data, Trace{
			Type: "scatter",
			Mode: "lines",
			Name: fmt.Sprintf("%s (lap %d)", series.FullName, series.LapNumber),
			X:    series.Distance,
			Y:    series.Values,
			Line: &Line{
				Color: style.DriverColor(series.Color, i),
				Width: 2,
				Dash:  series.Dash,
			},
		})
	}
	return fig
}
