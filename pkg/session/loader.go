// Package session resolves user selections (year, event, session kind) into
// fully loaded sessions. All pages share one Loader; a session is fetched at
// most once per TTL window and handed out as the same in-memory instance.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/tomvill/f1-analytics/log"
	"github.com/tomvill/f1-analytics/pkg/api"
	"github.com/tomvill/f1-analytics/pkg/model"
	"github.com/tomvill/f1-analytics/pkg/utils/cache"
	"github.com/tomvill/f1-analytics/pkg/utils/cache/loadercache"
)

// years with data coverage on the upstream API, newest first
const (
	firstYear  = 2018
	latestYear = 2024
)

// ErrUnknownEvent is returned when an event name cannot be resolved against
// the year's schedule.
var ErrUnknownEvent = errors.New("unknown event")

type sessionKey struct {
	Year  int
	Round int
	Kind  model.SessionKind
}

type (
	Option func(*Loader)
	Loader struct {
		client    *api.Client
		ttl       time.Duration
		sessions  cache.Cache[sessionKey, model.Session]
		schedules cache.Cache[int, model.Schedule]
		l         *log.Logger
	}
)

func WithClient(arg *api.Client) Option {
	return func(ldr *Loader) { ldr.client = arg }
}

func WithTTL(arg time.Duration) Option {
	return func(ldr *Loader) { ldr.ttl = arg }
}

func WithLogger(arg *log.Logger) Option {
	return func(ldr *Loader) { ldr.l = arg }
}

func NewLoader(opts ...Option) *Loader {
	ret := &Loader{
		ttl: 24 * time.Hour,
		l:   log.Default().Named("session"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	ret.sessions = loadercache.New(
		loadercache.WithExpiration[sessionKey, model.Session](ret.ttl),
		loadercache.WithLoader(ret.fetchSession),
		loadercache.WithLogger[sessionKey, model.Session](ret.l))
	ret.schedules = loadercache.New(
		loadercache.WithExpiration[int, model.Schedule](ret.ttl),
		loadercache.WithLoader(ret.fetchSchedule),
		loadercache.WithLogger[int, model.Schedule](ret.l))
	return ret
}

// AvailableYears lists the selectable seasons, newest first.
func (ldr *Loader) AvailableYears() []int {
	ret := make([]int, 0, latestYear-firstYear+1)
	for y := latestYear; y >= firstYear; y-- {
		ret = append(ret, y)
	}
	return ret
}

// Schedule returns the memoized event schedule of a year.
func (ldr *Loader) Schedule(ctx context.Context, year int) (*model.Schedule, error) {
	return ldr.schedules.Get(ctx, year)
}

// Load returns the session for (year, round, kind). The result is nil without
// error when the upstream has no data for the selection. Upstream failures
// are reported once; there is no retry.
func (ldr *Loader) Load(
	ctx context.Context, year, round int, kind model.SessionKind,
) (*model.Session, error) {
	ret, err := ldr.sessions.Get(ctx, sessionKey{Year: year, Round: round, Kind: kind})
	if err != nil {
		if errors.Is(err, api.ErrNoData) {
			ldr.l.Warn("no data for session",
				log.Int("year", year), log.Int("round", round),
				log.String("kind", string(kind)))
			return nil, nil
		}
		return nil, err
	}
	return ret, nil
}

// LoadByName resolves the event name against the year's schedule and loads
// the session. Testing events are not resolvable.
func (ldr *Loader) LoadByName(
	ctx context.Context, year int, eventName string, kind model.SessionKind,
) (*model.Session, error) {
	schedule, err := ldr.Schedule(ctx, year)
	if err != nil {
		return nil, err
	}
	event, ok := schedule.EventByName(eventName)
	if !ok {
		return nil, ErrUnknownEvent
	}
	return ldr.Load(ctx, year, event.Round, kind)
}

func (ldr *Loader) fetchSchedule(ctx context.Context, year int) (*model.Schedule, error) {
	return ldr.client.Schedule(ctx, year)
}

// fetchSession pulls the lap, result and weather tables in one go. Laps are
// mandatory; the other tables are optional extras of a session.
func (ldr *Loader) fetchSession(
	ctx context.Context, key sessionKey,
) (*model.Session, error) {
	laps, err := ldr.client.Laps(ctx, key.Year, key.Round, key.Kind)
	if err != nil {
		return nil, err
	}
	if len(laps) == 0 {
		return nil, api.ErrNoData
	}
	ret := &model.Session{
		Kind: key.Kind,
		Laps: laps,
	}
	if schedule, err := ldr.Schedule(ctx, key.Year); err == nil {
		for _, e := range schedule.Events {
			if e.Round == key.Round {
				ret.Event = e
				break
			}
		}
	}
	if ret.Results, err = ldr.client.Results(
		ctx, key.Year, key.Round, key.Kind); err != nil {
		ldr.l.Warn("results unavailable", log.ErrorField(err))
		ret.Results = nil
	}
	if ret.Weather, err = ldr.client.Weather(
		ctx, key.Year, key.Round, key.Kind); err != nil {
		ldr.l.Warn("weather unavailable", log.ErrorField(err))
		ret.Weather = nil
	}
	if ret.Corners, err = ldr.client.Circuit(
		ctx, key.Year, key.Round, key.Kind); err != nil {
		ldr.l.Debug("circuit info unavailable", log.ErrorField(err))
		ret.Corners = nil
	}
	return ret, nil
}

// Telemetry fetches the sensor series of one lap. Telemetry is not part of
// the session object; it is expensive and only needed for displayed laps.
func (ldr *Loader) Telemetry(
	ctx context.Context, s *model.Session, driver string, lap int,
) ([]model.TelemetryRow, error) {
	return ldr.client.Telemetry(
		ctx, s.Event.Year, s.Event.Round, s.Kind, driver, lap)
}
