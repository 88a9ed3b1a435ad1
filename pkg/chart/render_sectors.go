package chart

import (
	"fmt"

	"github.com/tomvill/f1-analytics/pkg/analysis"
	"github.com/tomvill/f1-analytics/pkg/style"
)

// SectorHeatmap renders the lap-by-sector delta grid of one driver. Cells
// carry the log transformed delta; the hover text keeps the raw seconds.
func SectorHeatmap(sa *analysis.SectorAnalysis) *Figure {
	deltas := make([][3]float64, 0, len(sa.Rows))
	for _, row := range sa.Rows {
		deltas = append(deltas, row.Deltas)
	}
	scale := DeltaScale(deltas)

	z := make([][]float64, 3)
	hover := make([]string, 0, len(sa.Rows))
	laps := make([]float64, 0, len(sa.Rows))
	for sec := 0; sec < 3; sec++ {
		z[sec] = make([]float64, 0, len(sa.Rows))
	}
	for _, row := range sa.Rows {
		laps = append(laps, float64(row.LapNumber))
		hover = append(hover, fmt.Sprintf("Lap %d", row.LapNumber))
		for sec := 0; sec < 3; sec++ {
			z[sec] = append(z[sec], logDelta(row.Deltas[sec]))
		}
	}

	fig := &Figure{
		Layout: darkLayout(fmt.Sprintf("Sector Time Deltas to Personal Best (%s)", sa.Driver)),
	}
	fig.Layout.XAxis = gridAxis("Lap")
	fig.Layout.YAxis = &Axis{
		TickVals: []float64{0, 1, 2},
		TickText: []string{"Sector 1", "Sector 2", "Sector 3"},
	}
	fig.Data = append(fig.Data, Trace{
		Type:       "heatmap",
		X:          laps,
		Z:          z,
		ZMin:       &scale.ZMin,
		ZMax:       &scale.ZMax,
		HoverText:  hover,
		Colorscale: style.Plasma.Scale(),
		Colorbar: &Colorbar{
			Title:    "Delta",
			TickVals: scale.TickVals,
			TickText: scale.TickText,
		},
	})
	return fig
}
