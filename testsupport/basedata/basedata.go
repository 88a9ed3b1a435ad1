// Package basedata provides session fixtures shared by tests.
package basedata

import (
	"math"

	"github.com/tomvill/f1-analytics/pkg/model"
)

func ptr(v float64) *float64 { return &v }

func SampleEvent() model.Event {
	return model.Event{
		Year:        2024,
		Round:       5,
		Name:        "Testland Grand Prix",
		Format:      "conventional",
		CircuitName: "Testring",
		Date:        "2024-04-28",
	}
}

// SampleSession is a two driver race with enough texture for the builders:
// pit laps, a missing sector, position swaps and a short rain spell.
func SampleSession() *model.Session {
	nan := math.NaN()
	return &model.Session{
		Event: SampleEvent(),
		Kind:  model.KindRace,
		Laps: []model.Lap{
			// AAA: steady run, one stop after lap 3
			{Driver: "AAA", LapNumber: 1, Position: 2, LapTime: 101.0, Sector1: 30, Sector2: 40, Sector3: 31, Stint: 1, Compound: "SOFT", TyreLife: 1, PitOutTime: ptr(10.0), SpeedST: 310},
			{Driver: "AAA", LapNumber: 2, Position: 2, LapTime: 100.0, Sector1: 30, Sector2: 40, Sector3: 30, Stint: 1, Compound: "SOFT", TyreLife: 2, SpeedST: 312},
			{Driver: "AAA", LapNumber: 3, Position: 1, LapTime: 101.0, Sector1: 29, Sector2: 41, Sector3: 31, Stint: 1, Compound: "SOFT", TyreLife: 3, PitInTime: ptr(315.0), SpeedST: 308},
			{Driver: "AAA", LapNumber: 4, Position: 2, LapTime: 99.0, Sector1: 31, Sector2: 39, Sector3: 29, Stint: 2, Compound: "HARD", TyreLife: 1, PitOutTime: ptr(330.0), SpeedST: 305},
			{Driver: "AAA", LapNumber: 5, Position: 1, LapTime: 98.5, Sector1: 29.5, Sector2: 39.5, Sector3: 29.5, Stint: 2, Compound: "HARD", TyreLife: 2, SpeedST: 314},
			// BBB: loses the lead, one lap lacks a sector time
			{Driver: "BBB", LapNumber: 1, Position: 1, LapTime: 100.5, Sector1: 30.5, Sector2: 39.5, Sector3: 30.5, Stint: 1, Compound: "MEDIUM", TyreLife: 1, SpeedST: 309},
			{Driver: "BBB", LapNumber: 2, Position: 1, LapTime: 101.5, Sector1: 31, Sector2: 40, Sector3: 30.5, Stint: 1, Compound: "MEDIUM", TyreLife: 2, SpeedST: 307},
			{Driver: "BBB", LapNumber: 3, Position: 2, LapTime: nan, Sector1: 31, Sector2: nan, Sector3: 30.5, Stint: 1, Compound: "MEDIUM", TyreLife: 3},
			{Driver: "BBB", LapNumber: 4, Position: 1, LapTime: 100.2, Sector1: 30.7, Sector2: 39.0, Sector3: 30.5, Stint: 1, Compound: "MEDIUM", TyreLife: 4, SpeedST: 311},
			{Driver: "BBB", LapNumber: 5, Position: 2, LapTime: 100.9, Sector1: 30.9, Sector2: 39.4, Sector3: 30.6, Stint: 1, Compound: "MEDIUM", TyreLife: 5, SpeedST: 306},
		},
		Results: []model.ResultRow{
			{
				Abbreviation: "AAA", DriverNumber: "11",
				FirstName: "Alice", LastName: "Alpha", FullName: "Alice Alpha",
				TeamName: "Team Red", TeamColor: "E10600",
				HeadshotURL: "https://example.com/aaa.png", CountryCode: "NED",
				Position: 1, ClassifiedPosition: "1", Status: "Finished",
			},
			{
				Abbreviation: "BBB", DriverNumber: "22",
				FirstName: "Bob", LastName: "Beta",
				TeamName: "Team Blue", TeamColor: "0600EF",
				Position: 2, ClassifiedPosition: "2", Status: "Finished",
			},
		},
		Weather: []model.WeatherRow{
			{Time: 0, AirTemp: 21, TrackTemp: 31, Humidity: 50, WindSpeed: 8, WindDirection: 90},
			{Time: 120, AirTemp: 21.5, TrackTemp: 32, Humidity: 52, WindSpeed: 9, WindDirection: 95, Rainfall: true},
			{Time: 240, AirTemp: 20.5, TrackTemp: 30, Humidity: 60, WindSpeed: 10, WindDirection: 100, Rainfall: true},
			{Time: 360, AirTemp: 20, TrackTemp: 29, Humidity: 61, WindSpeed: 10, WindDirection: 100},
			{Time: 480, AirTemp: 20, TrackTemp: 29, Humidity: 61, WindSpeed: 11, WindDirection: 105},
		},
		Corners: []model.Corner{
			{Number: 1, X: 100, Y: 50},
			{Number: 2, X: 300, Y: 80},
		},
	}
}

// SampleTelemetry is a short lap with a positioning gap in the middle.
func SampleTelemetry() []model.TelemetryRow {
	nan := math.NaN()
	return []model.TelemetryRow{
		{Distance: 0, Time: 0, Speed: 280, RPM: 11000, Gear: 7, Throttle: 100, Brake: 0, X: 0, Y: 0},
		{Distance: 100, Time: 1.3, Speed: 310, RPM: 11800, Gear: 8, Throttle: 100, Brake: 0, X: 90, Y: 10},
		{Distance: 200, Time: 2.5, Speed: 150, RPM: 9000, Gear: 3, Throttle: 0, Brake: 1, X: 170, Y: 40},
		{Distance: 300, Time: 4.1, Speed: nan, RPM: 8800, Gear: 3, Throttle: 20, Brake: 0, X: nan, Y: nan},
		{Distance: 400, Time: 5.6, Speed: 210, RPM: 10500, Gear: 5, Throttle: 80, Brake: 0, X: 300, Y: 110},
		{Distance: 500, Time: 6.8, Speed: 260, RPM: 11200, Gear: 6, Throttle: 100, Brake: 0, X: 380, Y: 120},
	}
}
