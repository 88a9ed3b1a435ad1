package style

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColormapSample(t *testing.T) {
	assert.Equal(t, "#0d0887", Plasma.Sample(0))
	assert.Equal(t, "#f0f921", Plasma.Sample(1))
	// out of range clamps, NaN falls back to the gap color
	assert.Equal(t, "#0d0887", Plasma.Sample(-2))
	assert.Equal(t, "#f0f921", Plasma.Sample(5))
	assert.Equal(t, GapColor, Plasma.Sample(math.NaN()))
}

func TestColormapScale(t *testing.T) {
	scale := Greens.Scale()
	assert.Len(t, scale, 5)
	assert.Equal(t, 0.0, scale[0][0])
	assert.Equal(t, 1.0, scale[len(scale)-1][0])
	assert.Equal(t, "#f7fcf5", scale[0][1])
}

func TestCompoundColor(t *testing.T) {
	assert.Equal(t, "#da291c", CompoundColor("SOFT"))
	assert.Equal(t, "#da291c", CompoundColor("soft"))
	assert.Equal(t, GapColor, CompoundColor("UNKNOWN"))
}

func TestDriverColor(t *testing.T) {
	assert.Equal(t, "#E10600", DriverColor("#E10600", 0))
	assert.Equal(t, Set1[1], DriverColor("", 1))
	assert.Equal(t, Set1[1], DriverColor("", 1+len(Set1)))
}
