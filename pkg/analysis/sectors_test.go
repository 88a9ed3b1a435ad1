package analysis

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomvill/f1-analytics/pkg/model"
	"github.com/tomvill/f1-analytics/testsupport/basedata"
)

func TestSectorDeltas(t *testing.T) {
	s := &model.Session{
		Laps: []model.Lap{
			{Driver: "AAA", LapNumber: 1, LapTime: 100, Sector1: 30, Sector2: 40, Sector3: 30},
			{Driver: "AAA", LapNumber: 2, LapTime: 101, Sector1: 29, Sector2: 41, Sector3: 31},
			{Driver: "AAA", LapNumber: 3, LapTime: 99, Sector1: 31, Sector2: 39, Sector3: 29},
		},
	}
	got, err := SectorDeltas(s, "AAA")
	require.NoError(t, err)

	assert.Equal(t, [3]float64{29, 39, 29}, got.Minima)
	assert.InDelta(t, 97.0, got.TheoreticalBest, 1e-9)
	assert.Equal(t, 99.0, got.BestLapTime)
	assert.Equal(t, 3, got.BestLapNumber)

	wantDeltas := [][3]float64{{1, 1, 1}, {0, 2, 2}, {2, 0, 0}}
	for i, row := range got.Rows {
		if diff := cmp.Diff(wantDeltas[i], row.Deltas); diff != "" {
			t.Errorf("lap %d deltas mismatch (-want +got):\n%s", row.LapNumber, diff)
		}
	}
}

// every sector column must contain at least one zero delta
func TestSectorDeltas_ZeroPerColumn(t *testing.T) {
	s := basedata.SampleSession()
	got, err := SectorDeltas(s, "AAA")
	require.NoError(t, err)
	assert.LessOrEqual(t, got.TheoreticalBest, got.BestLapTime)
	for sec := 0; sec < 3; sec++ {
		found := false
		for _, row := range got.Rows {
			if row.Deltas[sec] == 0 {
				found = true
			}
			assert.GreaterOrEqual(t, row.Deltas[sec], 0.0)
		}
		assert.True(t, found, "sector %d has no zero delta", sec+1)
	}
}

func TestSectorDeltas_DropsIncompleteLaps(t *testing.T) {
	s := basedata.SampleSession()
	got, err := SectorDeltas(s, "BBB")
	require.NoError(t, err)
	// lap 3 misses sector 2 and must not appear in the grid
	for _, row := range got.Rows {
		assert.NotEqual(t, 3, row.LapNumber)
	}
	assert.Len(t, got.Rows, 4)
}

func TestSectorDeltas_NoUsableLaps(t *testing.T) {
	nan := math.NaN()
	s := &model.Session{
		Laps: []model.Lap{
			{Driver: "CCC", LapNumber: 1, Sector1: 30, Sector2: nan, Sector3: 30},
		},
	}
	_, err := SectorDeltas(s, "CCC")
	assert.ErrorIs(t, err, ErrNoLaps)
}

func TestSectorDeltas_TopSectors(t *testing.T) {
	s := basedata.SampleSession()
	got, err := SectorDeltas(s, "AAA")
	require.NoError(t, err)
	for sec := 0; sec < 3; sec++ {
		require.Len(t, got.TopSectors[sec], 3)
		assert.Equal(t, got.Minima[sec], got.TopSectors[sec][0].Seconds)
		assert.LessOrEqual(t, got.TopSectors[sec][0].Seconds, got.TopSectors[sec][1].Seconds)
		assert.LessOrEqual(t, got.TopSectors[sec][1].Seconds, got.TopSectors[sec][2].Seconds)
	}
}
