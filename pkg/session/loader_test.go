package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomvill/f1-analytics/pkg/api"
	"github.com/tomvill/f1-analytics/pkg/model"
	"github.com/tomvill/f1-analytics/testsupport/fakeapi"
)

func newTestLoader(t *testing.T) (*Loader, *fakeapi.Upstream) {
	t.Helper()
	upstream := fakeapi.New()
	t.Cleanup(upstream.Close)
	client := api.NewClient(api.WithBaseURL(upstream.URL()))
	return NewLoader(WithClient(client)), upstream
}

func TestAvailableYears(t *testing.T) {
	ldr, _ := newTestLoader(t)
	years := ldr.AvailableYears()
	assert.Equal(t, 2024, years[0])
	assert.Equal(t, 2018, years[len(years)-1])
	assert.Len(t, years, 7)
}

func TestLoad(t *testing.T) {
	ldr, _ := newTestLoader(t)
	sess, err := ldr.Load(context.Background(), 2024, 5, model.KindRace)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "Testland Grand Prix", sess.Event.Name)
	assert.Len(t, sess.Laps, 10)
	assert.Len(t, sess.Results, 2)
	assert.Len(t, sess.Weather, 5)
	assert.Len(t, sess.Corners, 2)
}

// within the TTL window every page gets the same in-memory instance
func TestLoad_Memoized(t *testing.T) {
	ldr, upstream := newTestLoader(t)
	first, err := ldr.Load(context.Background(), 2024, 5, model.KindRace)
	require.NoError(t, err)
	hits := upstream.Requests.Load()

	second, err := ldr.Load(context.Background(), 2024, 5, model.KindRace)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, hits, upstream.Requests.Load())
}

// a selection without data yields nil without error
func TestLoad_NoData(t *testing.T) {
	ldr, _ := newTestLoader(t)
	sess, err := ldr.Load(context.Background(), 2024, 99, model.KindRace)
	assert.NoError(t, err)
	assert.Nil(t, sess)
}

func TestLoadByName(t *testing.T) {
	ldr, _ := newTestLoader(t)
	sess, err := ldr.LoadByName(
		context.Background(), 2024, "Testland Grand Prix", model.KindRace)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, 5, sess.Event.Round)

	_, err = ldr.LoadByName(
		context.Background(), 2024, "Nowhere Grand Prix", model.KindRace)
	assert.ErrorIs(t, err, ErrUnknownEvent)
}

func TestSchedule_ExcludesTestingFromRaceEvents(t *testing.T) {
	ldr, _ := newTestLoader(t)
	schedule, err := ldr.Schedule(context.Background(), 2024)
	require.NoError(t, err)
	assert.Len(t, schedule.Events, 2)
	require.Len(t, schedule.RaceEvents(), 1)
	assert.Equal(t, "Testland Grand Prix", schedule.RaceEvents()[0].Name)
}

func TestTelemetry(t *testing.T) {
	ldr, _ := newTestLoader(t)
	sess, err := ldr.Load(context.Background(), 2024, 5, model.KindRace)
	require.NoError(t, err)
	rows, err := ldr.Telemetry(context.Background(), sess, "AAA", 5)
	require.NoError(t, err)
	assert.Len(t, rows, 6)
}
