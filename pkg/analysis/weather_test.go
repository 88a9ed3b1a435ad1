package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomvill/f1-analytics/pkg/model"
	"github.com/tomvill/f1-analytics/testsupport/basedata"
)

func TestBuildLapWeather(t *testing.T) {
	got := BuildLapWeather(basedata.SampleSession(), []string{"AAA", "BBB"})
	require.Len(t, got.Series, 2)
	assert.Empty(t, got.Missing)

	// AAA: laps 1, 3 and 4 touch the pit lane and are dropped; the two
	// remaining flying laps are renumbered from one
	aaa := got.Series[0]
	assert.Equal(t, []int{1, 2}, aaa.LapNumbers)
	assert.Equal(t, []float64{100.0, 98.5}, aaa.LapTimes)

	// BBB: only the untimed lap 3 is dropped
	bbb := got.Series[1]
	assert.Equal(t, []int{1, 2, 3, 4}, bbb.LapNumbers)
}

func TestBuildLapWeather_SlowLapFilter(t *testing.T) {
	s := basedata.SampleSession()
	s.Laps = append(s.Laps, model.Lap{
		Driver: "BBB", LapNumber: 6, LapTime: 412.0,
		Sector1: 130, Sector2: 140, Sector3: 142,
	})
	got := BuildLapWeather(s, []string{"BBB"})
	require.Len(t, got.Series, 1)
	assert.Len(t, got.Series[0].LapTimes, 4)
}

func TestRainPeriods(t *testing.T) {
	got := RainPeriods(basedata.SampleSession().Weather, 5)
	require.Len(t, got, 1)
	// samples 1 and 2 of 5 report rain, mapped onto the 5 lap axis
	assert.InDelta(t, 2.0, got[0].StartLap, 1e-9)
	assert.InDelta(t, 4.0, got[0].EndLap, 1e-9)
}

func TestRainPeriods_OpenEnded(t *testing.T) {
	weather := []model.WeatherRow{
		{Time: 0}, {Time: 60, Rainfall: true}, {Time: 120, Rainfall: true},
	}
	got := RainPeriods(weather, 30)
	require.Len(t, got, 1)
	// rain until the last sample closes the band at the final lap
	assert.InDelta(t, 11.0, got[0].StartLap, 1e-9)
	assert.InDelta(t, 30.0, got[0].EndLap, 1e-9)
}

func TestSummarizeWeather(t *testing.T) {
	got := SummarizeWeather(basedata.SampleSession().Weather)
	assert.True(t, got.Available)
	assert.True(t, got.Rain)
	assert.InDelta(t, 20.0, got.AirTemp.Min, 1e-9)
	assert.InDelta(t, 21.5, got.AirTemp.Max, 1e-9)
	assert.InDelta(t, 20.6, got.AirTemp.Mean, 1e-9)
	assert.InDelta(t, 9.6, got.WindSpeedMean, 1e-9)
	assert.InDelta(t, 11.0, got.WindSpeedMax, 1e-9)
	assert.Equal(t, "E", got.Cardinal)
}

func TestSummarizeWeather_Empty(t *testing.T) {
	got := SummarizeWeather(nil)
	assert.False(t, got.Available)
}

func TestCardinal(t *testing.T) {
	tests := []struct {
		degrees float64
		want    string
	}{
		{0, "N"},
		{45, "NE"},
		{90, "E"},
		{180, "S"},
		{270, "W"},
		{350, "N"},
		{359, "N"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Cardinal(tc.degrees), "degrees %v", tc.degrees)
	}
}
