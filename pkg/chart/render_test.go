package chart

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomvill/f1-analytics/pkg/analysis"
	"github.com/tomvill/f1-analytics/pkg/model"
	"github.com/tomvill/f1-analytics/testsupport/basedata"
)

type stubProvider struct{}

func (stubProvider) Telemetry(
	_ context.Context, _ *model.Session, _ string, _ int,
) ([]model.TelemetryRow, error) {
	return basedata.SampleTelemetry(), nil
}

// every renderer must emit a spec that survives a JSON round trip
func assertValidFigure(t *testing.T, fig *Figure) map[string]any {
	t.Helper()
	buf, err := fig.JSON()
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(buf), &decoded))
	require.Contains(t, decoded, "data")
	require.Contains(t, decoded, "layout")
	return decoded
}

func TestTelemetryFigure(t *testing.T) {
	s := basedata.SampleSession()
	cmp := analysis.CompareTelemetry(context.Background(), stubProvider{}, s,
		[]string{"AAA", "BBB"}, analysis.MetricSpeed)
	fig := Telemetry(cmp)
	assertValidFigure(t, fig)
	require.Len(t, fig.Data, 2)
	assert.Equal(t, "#E10600", fig.Data[0].Line.Color)
}

func TestSectorHeatmapFigure(t *testing.T) {
	s := basedata.SampleSession()
	sa, err := analysis.SectorDeltas(s, "AAA")
	require.NoError(t, err)
	fig := SectorHeatmap(sa)
	assertValidFigure(t, fig)
	require.Len(t, fig.Data, 1)
	// one z row per sector, one column per usable lap
	require.Len(t, fig.Data[0].Z, 3)
	assert.Len(t, fig.Data[0].Z[0], len(sa.Rows))
	assert.NotNil(t, fig.Data[0].ZMax)
}

func TestStintsFigure(t *testing.T) {
	fig := Stints(analysis.StintTimeline(basedata.SampleSession()))
	assertValidFigure(t, fig)
	require.Len(t, fig.Data, 3)
	// each compound appears exactly once in the legend
	shown := 0
	for _, tr := range fig.Data {
		if tr.ShowLegend != nil && *tr.ShowLegend {
			shown++
		}
	}
	assert.Equal(t, 3, shown)
	assert.Equal(t, []float64{3}, fig.Data[1].Base)
}

func TestProgressionFigure(t *testing.T) {
	fig := Progression(analysis.BuildRaceInsights(basedata.SampleSession()))
	assertValidFigure(t, fig)
	require.Len(t, fig.Data, 2)
	assert.Equal(t, "reversed", fig.Layout.YAxis.AutoRange)
}

func TestInsightScatterFigure(t *testing.T) {
	fig := InsightScatter(analysis.BuildRaceInsights(basedata.SampleSession()))
	assertValidFigure(t, fig)
	require.Len(t, fig.Data, 1)
	assert.Len(t, fig.Data[0].X, 2)
	assert.Len(t, fig.Data[0].Marker.Colors, 2)
}

func TestLapWeatherFigure(t *testing.T) {
	data := analysis.BuildLapWeather(basedata.SampleSession(), []string{"AAA", "BBB"})
	fig := LapWeather(data)
	assertValidFigure(t, fig)
	require.Len(t, fig.Data, 2)
	// one shaded band for the rain spell
	require.Len(t, fig.Layout.Shapes, 1)
	assert.Equal(t, "rect", fig.Layout.Shapes[0].Type)
}

func TestTrackMapFigure(t *testing.T) {
	tm, err := analysis.BuildTrackMap(context.Background(), stubProvider{},
		basedata.SampleSession(), "AAA", analysis.MetricSpeed)
	require.NoError(t, err)
	fig := TrackMap(tm)
	assertValidFigure(t, fig)
	require.Len(t, fig.Data, 4)
	assert.Equal(t, "dash", fig.Data[2].Line.Dash)
	assert.Len(t, fig.Layout.Annotations, 2)
}

func TestTraceMarshal_YLabels(t *testing.T) {
	buf, err := json.Marshal(Trace{Type: "bar", YLabels: []string{"AAA"}})
	require.NoError(t, err)
	assert.Contains(t, string(buf), `"y":["AAA"]`)
}
