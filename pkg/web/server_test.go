package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomvill/f1-analytics/pkg/api"
	"github.com/tomvill/f1-analytics/pkg/session"
	"github.com/tomvill/f1-analytics/testsupport/fakeapi"
)

func newTestServer(t *testing.T) (*httptest.Server, *fakeapi.Upstream) {
	t.Helper()
	upstream := fakeapi.New()
	t.Cleanup(upstream.Close)

	cache, err := api.NewDiskCache(t.TempDir())
	require.NoError(t, err)
	client := api.NewClient(api.WithBaseURL(upstream.URL()))
	loader := session.NewLoader(session.WithClient(client))
	srv := NewServer(WithLoader(loader), WithDiskCache(cache))
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, upstream
}

func get(t *testing.T, rawURL string) (int, string) {
	t.Helper()
	resp, err := http.Get(rawURL) //nolint:gosec // test server url
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func eventQuery() string {
	v := url.Values{}
	v.Set("year", "2024")
	v.Set("event", "Testland Grand Prix")
	v.Set("kind", "R")
	return v.Encode()
}

func TestHomePage(t *testing.T) {
	ts, _ := newTestServer(t)
	status, body := get(t, ts.URL+"/")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Testland Grand Prix")
	// testing events never show up in the picker
	assert.NotContains(t, body, "Preseason Testing")
}

func TestChartPages(t *testing.T) {
	ts, _ := newTestServer(t)
	for _, page := range []string{
		"/telemetry", "/sectors", "/strategy", "/race", "/weather", "/trackmap",
	} {
		status, body := get(t, ts.URL+page+"?"+eventQuery())
		assert.Equal(t, http.StatusOK, status, page)
		assert.Contains(t, body, "Plotly.newPlot", page)
	}
}

func TestChartPage_NoEventSelected(t *testing.T) {
	ts, _ := newTestServer(t)
	status, body := get(t, ts.URL+"/race")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Choose an event")
	assert.NotContains(t, body, "Plotly.newPlot")
}

func TestRacePage_Stats(t *testing.T) {
	ts, _ := newTestServer(t)
	_, body := get(t, ts.URL+"/race?"+eventQuery())
	assert.Contains(t, body, "Overtakes")
	assert.Contains(t, body, "Alice Alpha")
	// progression plus the overtakes scatter
	assert.Contains(t, body, `"chart2"`)
}

func TestSessionMemoized(t *testing.T) {
	ts, upstream := newTestServer(t)
	_, _ = get(t, ts.URL+"/race?"+eventQuery())
	first := upstream.Requests.Load()
	_, _ = get(t, ts.URL+"/strategy?"+eventQuery())
	// the second page reuses the loaded session, no further upstream hits
	assert.Equal(t, first, upstream.Requests.Load())
}

func TestAPIYears(t *testing.T) {
	ts, _ := newTestServer(t)
	status, body := get(t, ts.URL+"/api/years")
	assert.Equal(t, http.StatusOK, status)
	var decoded struct{ Years []int }
	require.NoError(t, json.Unmarshal([]byte(body), &decoded))
	assert.Equal(t, 2024, decoded.Years[0])
	assert.Equal(t, 2018, decoded.Years[len(decoded.Years)-1])
}

func TestAPIFigure(t *testing.T) {
	ts, _ := newTestServer(t)
	status, body := get(t, ts.URL+"/api/figure/strategy?"+eventQuery())
	assert.Equal(t, http.StatusOK, status)
	var decoded struct {
		Figure struct {
			Data []map[string]any `json:"data"`
		} `json:"figure"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &decoded))
	assert.Len(t, decoded.Figure.Data, 3)
}

func TestAPIFigure_Errors(t *testing.T) {
	ts, _ := newTestServer(t)

	status, _ := get(t, ts.URL+"/api/figure/race")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = get(t, ts.URL+"/api/figure/nosuchpage?"+eventQuery())
	assert.Equal(t, http.StatusNotFound, status)

	v := url.Values{}
	v.Set("year", "2024")
	v.Set("event", "Nowhere Grand Prix")
	status, _ = get(t, ts.URL+"/api/figure/race?"+v.Encode())
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRequestIDHeader(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}

func TestCachePageAndClear(t *testing.T) {
	ts, _ := newTestServer(t)
	status, body := get(t, ts.URL+"/cache")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Clear cache")

	resp, err := http.Post(ts.URL+"/cache/clear", "", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	// redirect back to the cache page
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/cache", resp.Request.URL.Path)
}
