package chart

import (
	"github.com/tomvill/f1-analytics/pkg/analysis"
	"github.com/tomvill/f1-analytics/pkg/style"
)

// LapWeather renders the filtered lap time trends with rain spans shaded
// behind the traces.
func LapWeather(data *analysis.LapWeather) *Figure {
	fig := &Figure{Layout: darkLayout("Lap Time Trend")}
	fig.Layout.XAxis = gridAxis("Lap")
	fig.Layout.YAxis = gridAxis("Lap Time [s]")
	fig.Layout.HoverMode = "x unified"

	for i, series := range data.Series {
		laps := make([]float64, len(series.LapNumbers))
		for j, n := range series.LapNumbers {
			laps[j] = float64(n)
		}
		fig.Data = append(fig.Data, Trace{
			Type: "scatter",
			Mode: "lines+markers",
			Name: series.FullName,
			X:    laps,
			Y:    series.LapTimes,
			Line: &Line{
				Color: style.DriverColor(series.Color, i),
				Width: 2,
				Dash:  series.Dash,
			},
			Marker: &Marker{Size: 5},
		})
	}
	for _, rain := range data.Rain {
		fig.Layout.Shapes = append(fig.Layout.Shapes, Shape{
			Type:      "rect",
			XRef:      "x",
			YRef:      "paper",
			X0:        rain.StartLap,
			X1:        rain.EndLap,
			Y0:        0,
			Y1:        1,
			FillColor: style.RainColor,
			Opacity:   0.25,
			Layer:     "below",
			Line:      &Line{Width: 0},
		})
	}
	return fig
}
