package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomvill/f1-analytics/pkg/model"
	"github.com/tomvill/f1-analytics/testsupport/basedata"
)

func TestStintTimeline(t *testing.T) {
	got := StintTimeline(basedata.SampleSession())

	assert.Equal(t, []string{"AAA", "BBB"}, got.DriverOrder)
	assert.Equal(t, "Alice Alpha", got.Names["AAA"])
	assert.Equal(t, []string{"SOFT", "HARD", "MEDIUM"}, got.Compounds)

	require.Len(t, got.Stints, 3)
	assert.Equal(t, Stint{Driver: "AAA", Number: 1, Compound: "SOFT", Length: 3, StartLap: 0}, got.Stints[0])
	assert.Equal(t, Stint{Driver: "AAA", Number: 2, Compound: "HARD", Length: 2, StartLap: 3}, got.Stints[1])
	assert.Equal(t, Stint{Driver: "BBB", Number: 1, Compound: "MEDIUM", Length: 5, StartLap: 0}, got.Stints[2])
}

func TestStintTimeline_OrderByTotalLaps(t *testing.T) {
	s := &model.Session{
		Laps: []model.Lap{
			{Driver: "AAA", LapNumber: 1, Stint: 1, Compound: "SOFT"},
			{Driver: "BBB", LapNumber: 1, Stint: 1, Compound: "HARD"},
			{Driver: "BBB", LapNumber: 2, Stint: 1, Compound: "HARD"},
		},
	}
	got := StintTimeline(s)
	// BBB completed more laps and renders first
	assert.Equal(t, []string{"BBB", "AAA"}, got.DriverOrder)
}
