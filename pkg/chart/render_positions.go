package chart

import (
	"math"

	"github.com/tomvill/f1-analytics/pkg/analysis"
	"github.com/tomvill/f1-analytics/pkg/style"
)

// Progression renders the lap-by-lap positions of the top finishers with the
// position axis reversed so first place sits on top.
func Progression(insights *analysis.RaceInsights) *Figure {
	fig := &Figure{Layout: darkLayout("Position Progression")}
	fig.Layout.XAxis = gridAxis("Lap")
	fig.Layout.YAxis = gridAxis("Position")
	fig.Layout.YAxis.AutoRange = "reversed"
	ticks := make([]float64, 0, insights.FieldSize)
	for p := 1; p <= insights.FieldSize; p++ {
		ticks = append(ticks, float64(p))
	}
	fig.Layout.YAxis.TickVals = ticks

	for i, series := range insights.Progression {
		laps := make([]float64, len(series.Laps))
		positions := make([]float64, len(series.Positions))
		for j := range series.Laps {
			laps[j] = float64(series.Laps[j])
			positions[j] = float64(series.Positions[j])
		}
		fig.Data = append(fig.Data, Trace{
			Type: "scatter",
			Mode: "lines",
			Name: series.FullName,
			X:    laps,
			Y:    positions,
			Line: &Line{
				Color: style.DriverColor(series.Color, i),
				Width: 2,
				Dash:  series.Dash,
			},
		})
	}
	return fig
}

// InsightScatter plots overtakes against positions gained, one marker per
// driver. Coincident markers are jittered apart so nobody disappears behind
// a teammate.
func InsightScatter(insights *analysis.RaceInsights) *Figure {
	xs := make([]float64, 0, len(insights.Drivers))
	ys := make([]float64, 0, len(insights.Drivers))
	labels := make([]string, 0, len(insights.Drivers))
	colors := make([]string, 0, len(insights.Drivers))
	for i, d := range insights.Drivers {
		xs = append(xs, float64(d.Overtakes))
		ys = append(ys, float64(d.PositionsGained))
		labels = append(labels, d.Driver)
		colors = append(colors, style.DriverColor(d.Color, i))
	}
	jx, jy := analysis.JitterPoints(xs, ys)

	fig := &Figure{Layout: darkLayout("Overtakes vs Positions Gained")}
	fig.Layout.XAxis = gridAxis("Overtakes")
	fig.Layout.YAxis = gridAxis("Positions Gained")
	fig.Layout.ShowLegend = boolPtr(false)
	fig.Data = append(fig.Data, Trace{
		Type:          "scatter",
		Mode:          "markers+text",
		X:             jx,
		Y:             jy,
		Text:          labels,
		Marker:        &Marker{Colors: colors, Size: 12},
		HoverTemplate: "%{text}: %{x:.0f} overtakes<extra></extra>",
	})
	// round jittered extremes back so the axes keep integer ranges
	padAxis(fig.Layout.XAxis, jx)
	padAxis(fig.Layout.YAxis, jy)
	return fig
}

func padAxis(axis *Axis, values []float64) {
	if len(values) == 0 {
		return
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	axis.TickVals = nil
	for v := math.Floor(lo); v <= math.Ceil(hi); v++ {
		axis.TickVals = append(axis.TickVals, v)
	}
}
