package style

import (
	"fmt"
	"math"
)

// Set1 is the categorical palette used for discrete series without an
// inherent color, such as gear numbers.
var Set1 = []string{
	"#e41a1c", "#377eb8", "#4daf4a", "#984ea3",
	"#ff7f00", "#ffff33", "#a65628", "#f781bf", "#999999",
}

type rgb struct{ r, g, b uint8 }

// Colormap is a sequential gradient sampled on [0, 1].
type Colormap struct {
	name  string
	stops []rgb
}

func (cm Colormap) Name() string { return cm.name }

// Sample interpolates the gradient at t, clamped to [0, 1].
func (cm Colormap) Sample(t float64) string {
	if math.IsNaN(t) {
		return GapColor
	}
	t = math.Min(1, math.Max(0, t))
	pos := t * float64(len(cm.stops)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	f := pos - float64(lo)
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + f*(float64(b)-float64(a))))
	}
	c := rgb{
		r: mix(cm.stops[lo].r, cm.stops[hi].r),
		g: mix(cm.stops[lo].g, cm.stops[hi].g),
		b: mix(cm.stops[lo].b, cm.stops[hi].b),
	}
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

// Scale returns plotly colorscale entries, one per stop.
func (cm Colormap) Scale() [][2]any {
	ret := make([][2]any, 0, len(cm.stops))
	for i, c := range cm.stops {
		ret = append(ret, [2]any{
			float64(i) / float64(len(cm.stops)-1),
			fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b),
		})
	}
	return ret
}

// Plasma is the default gradient for continuous telemetry channels.
var Plasma = Colormap{name: "plasma", stops: []rgb{
	{13, 8, 135}, {84, 2, 163}, {139, 10, 165}, {185, 50, 137},
	{219, 92, 104}, {244, 136, 73}, {254, 188, 43}, {240, 249, 33},
}}

// Greens shades the throttle channel.
var Greens = Colormap{name: "greens", stops: []rgb{
	{247, 252, 245}, {199, 233, 192}, {116, 196, 118},
	{35, 139, 69}, {0, 68, 27},
}}

// Purples shades the sector delta heatmap.
var Purples = Colormap{name: "purples", stops: []rgb{
	{252, 251, 253}, {218, 218, 235}, {158, 154, 200},
	{106, 81, 163}, {63, 0, 125},
}}
