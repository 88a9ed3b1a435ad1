package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomvill/f1-analytics/testsupport/basedata"
)

func TestBuildRaceInsights(t *testing.T) {
	got := BuildRaceInsights(basedata.SampleSession())
	require.Len(t, got.Drivers, 2)
	assert.Empty(t, got.Missing)
	assert.Equal(t, 2, got.FieldSize)

	aaa := got.Drivers[0]
	assert.Equal(t, "AAA", aaa.Driver)
	// positions 2,2,1,2,1: two improvements, net one place gained
	assert.Equal(t, 2, aaa.Overtakes)
	assert.Equal(t, 1, aaa.PositionsGained)
	assert.Equal(t, 314.0, aaa.MaxSpeed)
	assert.Equal(t, 98.5, aaa.BestLap)
	assert.Equal(t, 1, aaa.FinishPosition)
	assert.False(t, aaa.DNF)

	bbb := got.Drivers[1]
	// positions 1,1,2,1,2: one improvement, net loss floors at zero
	assert.Equal(t, 1, bbb.Overtakes)
	assert.Equal(t, 0, bbb.PositionsGained)
	// one lap is untimed and excluded from the average
	assert.InDelta(t, (100.5+101.5+100.2+100.9)/4, bbb.AvgLap, 1e-9)

	assert.Equal(t, 3, got.TotalOvertakes)
	assert.Equal(t, 1, got.TotalGained)
}

func TestBuildRaceInsights_Progression(t *testing.T) {
	got := BuildRaceInsights(basedata.SampleSession())
	require.Len(t, got.Progression, 2)
	// winner first
	assert.Equal(t, "AAA", got.Progression[0].Driver)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got.Progression[0].Laps)
	assert.Equal(t, []int{2, 2, 1, 2, 1}, got.Progression[0].Positions)
}

func TestJitterPoints(t *testing.T) {
	xs := []float64{2, 2, 5}
	ys := []float64{1, 1, 3}
	jx, jy := JitterPoints(xs, ys)

	// the unique point stays put
	assert.Equal(t, 5.0, jx[2])
	assert.Equal(t, 3.0, jy[2])

	// coincident points split apart onto the jitter circle
	assert.False(t, jx[0] == jx[1] && jy[0] == jy[1])
	for _, i := range []int{0, 1} {
		r := math.Hypot(jx[i]-2, jy[i]-1)
		assert.InDelta(t, jitterRadius, r, 1e-9)
	}
}
