package chart

import (
	"github.com/tomvill/f1-analytics/pkg/analysis"
	"github.com/tomvill/f1-analytics/pkg/style"
)

// Stints renders the tyre strategy timeline as stacked horizontal bars, one
// row per driver, one bar per stint. Compounds share one legend entry each.
func Stints(strategy *analysis.Strategy) *Figure {
	fig := &Figure{Layout: darkLayout("Tyre Strategy")}
	fig.Layout.BarMode = "stack"
	fig.Layout.XAxis = gridAxis("Lap")
	fig.Layout.YAxis = &Axis{AutoRange: "reversed"}
	fig.Layout.Height = 120 + 30*len(strategy.DriverOrder)

	legendDone := make(map[string]bool)
	for _, stint := range strategy.Stints {
		show := !legendDone[stint.Compound]
		legendDone[stint.Compound] = true
		fig.Data = append(fig.Data, Trace{
			Type:        "bar",
			Orientation: "h",
			Name:        stint.Compound,
			LegendGroup: stint.Compound,
			ShowLegend:  &show,
			X:           []float64{float64(stint.Length)},
			Base:        []float64{float64(stint.StartLap)},
			YLabels:     []string{stint.Driver},
			Marker: &Marker{
				Color: style.CompoundColor(stint.Compound),
			},
			HoverTemplate: stint.Compound + ", %{x} laps<extra>" + stint.Driver + "</extra>",
		})
	}
	return fig
}
