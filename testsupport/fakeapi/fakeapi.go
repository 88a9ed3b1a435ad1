// Package fakeapi runs an in-process upstream serving the basedata fixtures
// in the wire format of the real timing API.
package fakeapi

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"sync/atomic"

	"github.com/tomvill/f1-analytics/pkg/model"
	"github.com/tomvill/f1-analytics/testsupport/basedata"
)

// Upstream is a fake timing API. Requests counts the served upstream hits so
// cache tests can assert that memoization works.
type Upstream struct {
	Server   *httptest.Server
	Requests atomic.Int64
}

func New() *Upstream {
	ret := &Upstream{}
	mux := http.NewServeMux()
	mux.HandleFunc("/schedule/2024", ret.handle(schedule()))
	s := basedata.SampleSession()
	mux.HandleFunc("/session/2024/5/R/laps", ret.handle(laps(s)))
	mux.HandleFunc("/session/2024/5/R/results", ret.handle(results(s)))
	mux.HandleFunc("/session/2024/5/R/weather", ret.handle(weather(s)))
	mux.HandleFunc("/session/2024/5/R/circuit", ret.handle(circuit(s)))
	mux.HandleFunc("/session/2024/5/R/telemetry/", ret.handle(telemetry()))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		ret.Requests.Add(1)
		http.NotFound(w, r)
	})
	ret.Server = httptest.NewServer(mux)
	return ret
}

func (u *Upstream) Close() { u.Server.Close() }

func (u *Upstream) URL() string { return u.Server.URL }

func (u *Upstream) handle(payload any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u.Requests.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func opt(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

func schedule() map[string]any {
	e := basedata.SampleEvent()
	return map[string]any{
		"year": e.Year,
		"events": []map[string]any{
			{
				"round": 1, "eventName": "Preseason Testing",
				"eventFormat": "testing", "circuitName": "Testring",
				"eventDate": "2024-02-20",
			},
			{
				"round": e.Round, "eventName": e.Name,
				"eventFormat": e.Format, "circuitName": e.CircuitName,
				"eventDate": e.Date,
			},
		},
	}
}

func laps(s *model.Session) []map[string]any {
	ret := make([]map[string]any, 0, len(s.Laps))
	for _, l := range s.Laps {
		pos := l.Position
		ret = append(ret, map[string]any{
			"driver": l.Driver, "lapNumber": l.LapNumber, "position": pos,
			"lapTime": opt(l.LapTime),
			"sector1Time": opt(l.Sector1), "sector2Time": opt(l.Sector2),
			"sector3Time": opt(l.Sector3),
			"pitInTime": l.PitInTime, "pitOutTime": l.PitOutTime,
			"stint": l.Stint, "compound": l.Compound, "tyreLife": l.TyreLife,
			"speedI1": opt(l.SpeedI1), "speedI2": opt(l.SpeedI2),
			"speedFL": opt(l.SpeedFL), "speedST": opt(l.SpeedST),
		})
	}
	return ret
}

func results(s *model.Session) []map[string]any {
	ret := make([]map[string]any, 0, len(s.Results))
	for _, row := range s.Results {
		ret = append(ret, map[string]any{
			"abbreviation": row.Abbreviation, "driverNumber": row.DriverNumber,
			"firstName": row.FirstName, "lastName": row.LastName,
			"fullName": row.FullName, "teamName": row.TeamName,
			"teamColor": row.TeamColor, "headshotUrl": row.HeadshotURL,
			"countryCode": row.CountryCode, "position": opt(row.Position),
			"classifiedPosition": row.ClassifiedPosition, "status": row.Status,
		})
	}
	return ret
}

func weather(s *model.Session) []map[string]any {
	ret := make([]map[string]any, 0, len(s.Weather))
	for _, row := range s.Weather {
		ret = append(ret, map[string]any{
			"time": row.Time, "airTemp": row.AirTemp, "trackTemp": row.TrackTemp,
			"humidity": row.Humidity, "windSpeed": row.WindSpeed,
			"windDirection": row.WindDirection, "rainfall": row.Rainfall,
		})
	}
	return ret
}

func circuit(s *model.Session) []map[string]any {
	ret := make([]map[string]any, 0, len(s.Corners))
	for _, c := range s.Corners {
		ret = append(ret, map[string]any{"number": c.Number, "x": c.X, "y": c.Y})
	}
	return ret
}

func telemetry() []map[string]any {
	rows := basedata.SampleTelemetry()
	ret := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		ret = append(ret, map[string]any{
			"distance": row.Distance, "time": row.Time,
			"speed": opt(row.Speed), "rpm": opt(row.RPM), "nGear": opt(row.Gear),
			"throttle": opt(row.Throttle), "brake": opt(row.Brake),
			"x": opt(row.X), "y": opt(row.Y),
		})
	}
	return ret
}
