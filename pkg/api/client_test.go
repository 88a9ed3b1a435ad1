package api

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Schedule(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/schedule/2024", r.URL.Path)
			_, _ = w.Write([]byte(`{"year":2024,"events":[
				{"round":1,"eventName":"Testing","eventFormat":"testing","circuitName":"A","eventDate":"2024-02-20"},
				{"round":2,"eventName":"First GP","eventFormat":"conventional","circuitName":"B","eventDate":"2024-03-03"}
			]}`))
		}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	got, err := c.Schedule(context.Background(), 2024)
	require.NoError(t, err)
	assert.Len(t, got.Events, 2)
	assert.Len(t, got.RaceEvents(), 1)
	assert.Equal(t, "First GP", got.Events[1].Name)
	assert.Equal(t, 2024, got.Events[1].Year)
}

func TestClient_Laps_NullHandling(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[
				{"driver":"AAA","lapNumber":1,"position":3,"lapTime":100.5,
				 "sector1Time":30.1,"sector2Time":null,"sector3Time":30.4,
				 "pitInTime":null,"pitOutTime":12.5,
				 "stint":1,"compound":"SOFT","tyreLife":1,"speedST":301.0}
			]`))
		}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	got, err := c.Laps(context.Background(), 2024, 5, "R")
	require.NoError(t, err)
	require.Len(t, got, 1)
	lap := got[0]
	assert.Equal(t, 3, lap.Position)
	assert.True(t, math.IsNaN(lap.Sector2))
	assert.False(t, lap.HasAllSectors())
	assert.Nil(t, lap.PitInTime)
	require.NotNil(t, lap.PitOutTime)
	assert.Equal(t, 12.5, *lap.PitOutTime)
	// absent speed traps decode to NaN
	assert.True(t, math.IsNaN(lap.SpeedI1))
}

func TestClient_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	_, err := c.Laps(context.Background(), 2024, 99, "R")
	assert.ErrorIs(t, err, ErrNoData)
}

func TestClient_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	_, err := c.Laps(context.Background(), 2024, 5, "R")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoData)
}

func TestClient_DiskCacheServesAfterUpstreamGone(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			hits++
			_, _ = w.Write([]byte(`[{"number":1,"x":10,"y":20}]`))
		}))

	cache, err := NewDiskCache(t.TempDir())
	require.NoError(t, err)
	c := NewClient(WithBaseURL(srv.URL), WithDiskCache(cache))

	first, err := c.Circuit(context.Background(), 2024, 5, "R")
	require.NoError(t, err)
	assert.Equal(t, 1, hits)

	// a fresh client on the same cache dir answers without the upstream
	srv.Close()
	c2 := NewClient(WithBaseURL(srv.URL), WithDiskCache(cache))
	second, err := c2.Circuit(context.Background(), 2024, 5, "R")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, hits)
}
