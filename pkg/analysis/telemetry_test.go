package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomvill/f1-analytics/pkg/model"
	"github.com/tomvill/f1-analytics/testsupport/basedata"
)

type fakeProvider struct {
	rows map[string][]model.TelemetryRow
	err  error
}

func (f *fakeProvider) Telemetry(
	_ context.Context, _ *model.Session, driver string, _ int,
) ([]model.TelemetryRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows[driver], nil
}

func TestCompareTelemetry(t *testing.T) {
	s := basedata.SampleSession()
	provider := &fakeProvider{rows: map[string][]model.TelemetryRow{
		"AAA": basedata.SampleTelemetry(),
		"BBB": basedata.SampleTelemetry(),
	}}

	got := CompareTelemetry(context.Background(), provider, s,
		[]string{"AAA", "BBB"}, MetricSpeed)
	require.Len(t, got.Series, 2)
	assert.Empty(t, got.Missing)

	aaa := got.Series[0]
	assert.Equal(t, "AAA", aaa.Driver)
	assert.Equal(t, "Alice Alpha", aaa.FullName)
	assert.Equal(t, "#E10600", aaa.Color)
	assert.Equal(t, 5, aaa.LapNumber) // fastest lap of AAA
	// the NaN speed sample at distance 300 is dropped
	assert.Len(t, aaa.Distance, 5)
	assert.NotContains(t, aaa.Distance, 300.0)
}

func TestCompareTelemetry_SecondTeamCarDashed(t *testing.T) {
	s := basedata.SampleSession()
	for i := range s.Results {
		s.Results[i].TeamName = "Team Red"
	}
	provider := &fakeProvider{rows: map[string][]model.TelemetryRow{
		"AAA": basedata.SampleTelemetry(),
		"BBB": basedata.SampleTelemetry(),
	}}

	got := CompareTelemetry(context.Background(), provider, s,
		[]string{"AAA", "BBB"}, MetricSpeed)
	require.Len(t, got.Series, 2)
	assert.Equal(t, "", got.Series[0].Dash)
	assert.Equal(t, "dash", got.Series[1].Dash)
}

func TestCompareTelemetry_MissingDrivers(t *testing.T) {
	s := basedata.SampleSession()
	provider := &fakeProvider{err: errors.New("upstream down")}

	got := CompareTelemetry(context.Background(), provider, s,
		[]string{"AAA", "ZZZ"}, MetricSpeed)
	assert.Empty(t, got.Series)
	// AAA fails on the fetch, ZZZ already has no laps
	assert.Equal(t, []string{"AAA", "ZZZ"}, got.Missing)
}
