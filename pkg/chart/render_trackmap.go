package chart

import (
	"fmt"
	"math"

	"github.com/tomvill/f1-analytics/pkg/analysis"
	"github.com/tomvill/f1-analytics/pkg/style"
)

// TrackMap renders the circuit outline of a fastest lap, one line segment per
// telemetry step colored by the metric. Spans without positional data are
// bridged with a dashed neutral segment. Corner numbers go in as annotations.
func TrackMap(tm *analysis.TrackMap) *Figure {
	fig := &Figure{
		Layout: darkLayout(fmt.Sprintf("%s Fastest Lap, %s",
			tm.Driver.FullName, tm.Metric.Label())),
	}
	hidden := boolPtr(false)
	fig.Layout.XAxis = &Axis{Visible: hidden}
	fig.Layout.YAxis = &Axis{Visible: hidden, ScaleWith: "x", ScaleRatio: 1}
	fig.Layout.ShowLegend = boolPtr(false)
	fig.Layout.Height = 600

	lo, hi := valueRange(tm.Segments)
	for _, seg := range tm.Segments {
		line := Line{Width: 4}
		hover := ""
		switch {
		case seg.Gap:
			line.Color = style.GapColor
			line.Dash = "dash"
			line.Width = 2
			hover = "no data"
		case tm.Metric.Discrete():
			line.Color = style.Set1[int(seg.Value)%len(style.Set1)]
			hover = fmt.Sprintf("%s: %.0f", tm.Metric.Label(), seg.Value)
		default:
			t := 0.0
			if hi > lo {
				t = (seg.Value - lo) / (hi - lo)
			}
			line.Color = colormapFor(tm.Metric).Sample(t)
			hover = fmt.Sprintf("%s: %.0f", tm.Metric.Label(), seg.Value)
		}
		fig.Data = append(fig.Data, Trace{
			Type:          "scatter",
			Mode:          "lines",
			X:             []float64{seg.X0, seg.X1},
			Y:             []float64{seg.Y0, seg.Y1},
			Line:          &line,
			HoverTemplate: hover + "<extra></extra>",
		})
	}
	for _, c := range tm.Corners {
		fig.Layout.Annotations = append(fig.Layout.Annotations, Annotation{
			X:    c.X,
			Y:    c.Y,
			Text: fmt.Sprintf("%d", c.Number),
			Font: &Font{Color: style.TextColor},
		})
	}
	return fig
}

func colormapFor(metric analysis.Metric) style.Colormap {
	if metric == analysis.MetricThrottle {
		return style.Greens
	}
	return style.Plasma
}

func valueRange(segments []analysis.TrackSegment) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, seg := range segments {
		if seg.Gap || math.IsNaN(seg.Value) {
			continue
		}
		lo = math.Min(lo, seg.Value)
		hi = math.Max(hi, seg.Value)
	}
	return lo, hi
}
