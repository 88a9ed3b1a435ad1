// Package api implements the read-only client for the upstream motorsport
// timing API. Responses are JSON; every document fetched once is persisted
// in the disk cache so later runs do not hit the upstream again.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/tomvill/f1-analytics/log"
	"github.com/tomvill/f1-analytics/pkg/model"
)

// ErrNoData marks a valid request for which the upstream has no document
// (unknown event, session not yet run). Callers render this as an
// informational "no data" state, not as a failure.
var ErrNoData = errors.New("no data available")

type (
	Option func(*Client)
	Client struct {
		baseURL string
		hc      *http.Client
		cache   *DiskCache
		l       *log.Logger
	}
)

func WithBaseURL(arg string) Option {
	return func(c *Client) { c.baseURL = arg }
}

func WithTimeout(arg time.Duration) Option {
	return func(c *Client) { c.hc.Timeout = arg }
}

func WithDiskCache(arg *DiskCache) Option {
	return func(c *Client) { c.cache = arg }
}

func WithLogger(arg *log.Logger) Option {
	return func(c *Client) { c.l = arg }
}

func NewClient(opts ...Option) *Client {
	ret := &Client{
		hc: &http.Client{Timeout: 30 * time.Second},
		l:  log.Default().Named("api"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// get fetches path relative to the base URL, consulting the disk cache first.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	if c.cache != nil {
		if data, ok := c.cache.Get(path); ok {
			c.l.Debug("cache hit", log.String("path", path))
			return data, nil
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request %s: %w", path, err)
	}
	defer resp.Body.Close()
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%s: %w", path, ErrNoData)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("upstream request %s: unexpected status %s",
			path, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("upstream request %s: %w", path, err)
	}
	if c.cache != nil {
		if err := c.cache.Put(path, data); err != nil {
			c.l.Warn("could not cache response",
				log.String("path", path), log.ErrorField(err))
		}
	}
	return data, nil
}

func (c *Client) getJSON(ctx context.Context, path string, target any) error {
	data, err := c.get(ctx, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// Schedule fetches the event schedule of a year, including testing events.
func (c *Client) Schedule(ctx context.Context, year int) (*model.Schedule, error) {
	var dto scheduleDTO
	path := fmt.Sprintf("/schedule/%d", year)
	if err := c.getJSON(ctx, path, &dto); err != nil {
		return nil, err
	}
	ret := &model.Schedule{Year: year, Events: make([]model.Event, 0, len(dto.Events))}
	for _, e := range dto.Events {
		ret.Events = append(ret.Events, model.Event{
			Year:        year,
			Round:       e.Round,
			Name:        e.Name,
			Format:      e.Format,
			CircuitName: e.Circuit,
			Date:        e.Date,
		})
	}
	return ret, nil
}

func (c *Client) Laps(
	ctx context.Context, year, round int, kind model.SessionKind,
) ([]model.Lap, error) {
	var dto []lapDTO
	path := fmt.Sprintf("/session/%d/%d/%s/laps", year, round, kind)
	if err := c.getJSON(ctx, path, &dto); err != nil {
		return nil, err
	}
	ret := make([]model.Lap, 0, len(dto))
	for i := range dto {
		ret = append(ret, dto[i].toModel())
	}
	return ret, nil
}

func (c *Client) Results(
	ctx context.Context, year, round int, kind model.SessionKind,
) ([]model.ResultRow, error) {
	var dto []resultDTO
	path := fmt.Sprintf("/session/%d/%d/%s/results", year, round, kind)
	if err := c.getJSON(ctx, path, &dto); err != nil {
		return nil, err
	}
	ret := make([]model.ResultRow, 0, len(dto))
	for i := range dto {
		ret = append(ret, dto[i].toModel())
	}
	return ret, nil
}

func (c *Client) Weather(
	ctx context.Context, year, round int, kind model.SessionKind,
) ([]model.WeatherRow, error) {
	var dto []weatherDTO
	path := fmt.Sprintf("/session/%d/%d/%s/weather", year, round, kind)
	if err := c.getJSON(ctx, path, &dto); err != nil {
		return nil, err
	}
	ret := make([]model.WeatherRow, 0, len(dto))
	for i := range dto {
		ret = append(ret, model.WeatherRow{
			Time:          dto[i].Time,
			AirTemp:       dto[i].AirTemp,
			TrackTemp:     dto[i].TrackTemp,
			Humidity:      dto[i].Humidity,
			WindSpeed:     dto[i].WindSpeed,
			WindDirection: dto[i].WindDirection,
			Rainfall:      dto[i].Rainfall,
		})
	}
	return ret, nil
}

func (c *Client) Circuit(
	ctx context.Context, year, round int, kind model.SessionKind,
) ([]model.Corner, error) {
	var dto []cornerDTO
	path := fmt.Sprintf("/session/%d/%d/%s/circuit", year, round, kind)
	if err := c.getJSON(ctx, path, &dto); err != nil {
		return nil, err
	}
	ret := make([]model.Corner, 0, len(dto))
	for i := range dto {
		ret = append(ret, model.Corner{Number: dto[i].Number, X: dto[i].X, Y: dto[i].Y})
	}
	return ret, nil
}

// Telemetry fetches the sensor series of one lap. This is the expensive call
// of the API; it is only issued for laps actually displayed.
func (c *Client) Telemetry(
	ctx context.Context, year, round int, kind model.SessionKind,
	driver string, lap int,
) ([]model.TelemetryRow, error) {
	var dto []telemetryDTO
	path := fmt.Sprintf("/session/%d/%d/%s/telemetry/%s/%d", year, round, kind, driver, lap)
	if err := c.getJSON(ctx, path, &dto); err != nil {
		return nil, err
	}
	ret := make([]model.TelemetryRow, 0, len(dto))
	for i := range dto {
		ret = append(ret, dto[i].toModel())
	}
	return ret, nil
}

// seconds converts an optional wire value to the NaN-based model convention.
func seconds(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}
