// Package model holds the domain types shared by the loader, the dataset
// builders and the chart renderers. Timing values are seconds; a missing
// duration is NaN so delta math can rely on standard float semantics.
package model

import "math"

type SessionKind string

const (
	KindRace       SessionKind = "R"
	KindQualifying SessionKind = "Q"
	KindPractice1  SessionKind = "FP1"
	KindPractice2  SessionKind = "FP2"
	KindPractice3  SessionKind = "FP3"
	KindSprint     SessionKind = "S"
)

type Event struct {
	Year        int
	Round       int
	Name        string
	Format      string // "conventional", "sprint_qualifying", "testing", ...
	CircuitName string
	Date        string // ISO date, informational only
}

// IsTesting reports whether the event is pre-season testing. Testing events
// are excluded from the dashboard selectors.
func (e Event) IsTesting() bool { return e.Format == "testing" }

type Schedule struct {
	Year   int
	Events []Event
}

// RaceEvents returns the schedule without testing events, in round order.
func (s Schedule) RaceEvents() []Event {
	ret := make([]Event, 0, len(s.Events))
	for _, e := range s.Events {
		if !e.IsTesting() {
			ret = append(ret, e)
		}
	}
	return ret
}

// EventByName returns the first non-testing event with the given name.
func (s Schedule) EventByName(name string) (Event, bool) {
	for _, e := range s.RaceEvents() {
		if e.Name == name {
			return e, true
		}
	}
	return Event{}, false
}

// Lap is one row of the session lap table. Immutable once loaded.
type Lap struct {
	Driver    string // abbreviation, e.g. "VER"
	LapNumber int
	Position  int // 0 if unknown

	// timing values in seconds, NaN if missing
	LapTime float64
	Sector1 float64
	Sector2 float64
	Sector3 float64

	// pit timestamps (session time seconds), nil when the lap is neither
	// an in-lap nor an out-lap
	PitInTime  *float64
	PitOutTime *float64

	Stint    int
	Compound string
	TyreLife int

	// speed trap values in km/h, NaN if missing
	SpeedI1 float64
	SpeedI2 float64
	SpeedFL float64
	SpeedST float64
}

// HasAllSectors reports whether all three sector times are present.
func (l Lap) HasAllSectors() bool {
	return !math.IsNaN(l.Sector1) && !math.IsNaN(l.Sector2) && !math.IsNaN(l.Sector3)
}

// TelemetryRow is one sample of the high frequency per-lap sensor series.
type TelemetryRow struct {
	Distance float64 // meters from lap start
	Time     float64 // seconds from lap start
	Speed    float64 // km/h
	RPM      float64
	Gear     float64 // nGear, integral but kept float for NaN
	Throttle float64 // percent
	Brake    float64 // 0 or 1
	X        float64 // track position, NaN if unavailable
	Y        float64
}

// ResultRow is one row of the session results table.
type ResultRow struct {
	Abbreviation       string
	DriverNumber       string
	FirstName          string
	LastName           string
	FullName           string
	TeamName           string
	TeamColor          string // hex without leading '#'
	HeadshotURL        string
	CountryCode        string
	Position           float64 // NaN when unclassified
	ClassifiedPosition string  // numeric or R/D/E/W
	Status             string
}

type WeatherRow struct {
	Time          float64 // session time seconds
	AirTemp       float64
	TrackTemp     float64
	Humidity      float64
	WindSpeed     float64
	WindDirection float64
	Rainfall      bool
}

// Corner is a circuit corner marker used by the track map.
type Corner struct {
	Number int
	X      float64
	Y      float64
}

// Session is one loaded timed on-track activity. All slices are read-only
// after loading; the loader hands out the same instance to all pages.
type Session struct {
	Event   Event
	Kind    SessionKind
	Laps    []Lap
	Results []ResultRow
	Weather []WeatherRow
	Corners []Corner
}

// Drivers returns the distinct driver abbreviations in lap-table order.
func (s *Session) Drivers() []string {
	seen := make(map[string]struct{})
	ret := make([]string, 0, len(s.Results))
	for i := range s.Laps {
		if _, ok := seen[s.Laps[i].Driver]; !ok {
			seen[s.Laps[i].Driver] = struct{}{}
			ret = append(ret, s.Laps[i].Driver)
		}
	}
	return ret
}

// DriverLaps returns the laps of one driver in lap order.
func (s *Session) DriverLaps(driver string) []Lap {
	ret := make([]Lap, 0, len(s.Laps))
	for i := range s.Laps {
		if s.Laps[i].Driver == driver {
			ret = append(ret, s.Laps[i])
		}
	}
	return ret
}

// FastestLap returns the lap with the lowest valid lap time for the driver.
// ok is false when the driver has no timed lap.
func (s *Session) FastestLap(driver string) (Lap, bool) {
	best := Lap{LapTime: math.NaN()}
	ok := false
	for _, l := range s.DriverLaps(driver) {
		if math.IsNaN(l.LapTime) {
			continue
		}
		if !ok || l.LapTime < best.LapTime {
			best = l
			ok = true
		}
	}
	return best, ok
}

// TotalLaps returns the highest lap number recorded in the session.
func (s *Session) TotalLaps() int {
	maxLap := 0
	for i := range s.Laps {
		if s.Laps[i].LapNumber > maxLap {
			maxLap = s.Laps[i].LapNumber
		}
	}
	return maxLap
}
