package chart

import (
	"fmt"
	"math"
	"sort"
)

// epsilon keeps the log transform defined for zero deltas.
const epsilon = 0.001

// HeatmapScale is the color axis of the sector delta heatmap. Deltas are
// log transformed so small differences stay visible next to outliers; the
// colorbar ticks are placed at the quartiles of the non-zero deltas and
// labeled with the untransformed seconds.
type HeatmapScale struct {
	ZMin     float64
	ZMax     float64
	TickVals []float64
	TickText []string
}

// logDelta is the transform applied to every heatmap cell.
func logDelta(v float64) float64 {
	return math.Log10(v + epsilon)
}

// DeltaScale derives the color axis from the delta grid. The axis tops out
// at the 95th percentile so a single bad lap does not wash out the scale.
func DeltaScale(rows [][3]float64) HeatmapScale {
	ret := HeatmapScale{
		ZMin:     logDelta(0),
		ZMax:     logDelta(0),
		TickVals: []float64{logDelta(0)},
		TickText: []string{"0s"},
	}
	nonZero := make([]float64, 0, len(rows)*3)
	for _, row := range rows {
		for _, v := range row {
			if !math.IsNaN(v) && v > 0 {
				nonZero = append(nonZero, v)
			}
		}
	}
	if len(nonZero) == 0 {
		return ret
	}
	sort.Float64s(nonZero)
	for _, p := range []float64{25, 50, 75} {
		v := percentile(nonZero, p)
		ret.TickVals = append(ret.TickVals, logDelta(v))
		ret.TickText = append(ret.TickText, fmt.Sprintf("%.2fs", v))
	}
	ret.ZMax = logDelta(percentile(nonZero, 95))
	return ret
}

// percentile on sorted values, with linear interpolation between ranks.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	f := pos - float64(lo)
	return sorted[lo] + f*(sorted[hi]-sorted[lo])
}
