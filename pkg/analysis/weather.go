package analysis

import (
	"math"

	"github.com/tomvill/f1-analytics/pkg/model"
	"github.com/tomvill/f1-analytics/pkg/session"
)

// maxSaneLapTime filters out red flag and parked laps from the pace trend.
const maxSaneLapTime = 300.0

// LapSeries is one driver's filtered lap time trend. Pit in/out laps and
// implausibly slow laps are dropped and the remaining laps renumbered 1..n,
// so the trend reflects flying laps only.
type LapSeries struct {
	Driver     string
	FullName   string
	Color      string
	Dash       string
	LapNumbers []int
	LapTimes   []float64
}

// RainPeriod is a span of race laps with rainfall, derived by mapping the
// weather sample index onto the lap axis.
type RainPeriod struct {
	StartLap float64
	EndLap   float64
}

// MinMeanMax summarizes one weather channel.
type MinMeanMax struct {
	Min  float64
	Mean float64
	Max  float64
}

// WeatherStats aggregates the session weather table.
type WeatherStats struct {
	Available     bool
	AirTemp       MinMeanMax
	TrackTemp     MinMeanMax
	Humidity      MinMeanMax
	WindSpeedMean float64
	WindSpeedMax  float64
	WindDirection float64 // mean, degrees
	Cardinal      string
	Rain          bool
}

// LapWeather is the pace and conditions dataset of the weather page.
type LapWeather struct {
	Series  []LapSeries
	Rain    []RainPeriod
	Stats   WeatherStats
	Missing []string // drivers with no flying laps after filtering
}

// BuildLapWeather assembles the lap time trends of the selected drivers
// together with the session's rain spans and weather summary.
func BuildLapWeather(s *model.Session, drivers []string) *LapWeather {
	ret := &LapWeather{
		Rain:  RainPeriods(s.Weather, s.TotalLaps()),
		Stats: SummarizeWeather(s.Weather),
	}
	teamSeen := make(map[string]int)
	for _, driver := range drivers {
		series := LapSeries{Driver: driver}
		for _, l := range s.DriverLaps(driver) {
			if l.PitInTime != nil || l.PitOutTime != nil {
				continue
			}
			if math.IsNaN(l.LapTime) || l.LapTime >= maxSaneLapTime {
				continue
			}
			series.LapNumbers = append(series.LapNumbers, len(series.LapNumbers)+1)
			series.LapTimes = append(series.LapTimes, l.LapTime)
		}
		if len(series.LapNumbers) == 0 {
			ret.Missing = append(ret.Missing, driver)
			continue
		}
		d := session.Resolve(s, driver)
		series.FullName = d.FullName
		series.Color = d.TeamColor
		if teamSeen[d.TeamName] > 0 {
			series.Dash = "dash"
		}
		teamSeen[d.TeamName]++
		ret.Series = append(ret.Series, series)
	}
	return ret
}

// RainPeriods maps contiguous rainfall runs in the weather samples onto the
// lap axis. Sample i of n covers lap position 1 + i/n * totalLaps.
func RainPeriods(weather []model.WeatherRow, totalLaps int) []RainPeriod {
	if len(weather) == 0 || totalLaps == 0 {
		return nil
	}
	lapPos := func(i int) float64 {
		return 1 + float64(i)/float64(len(weather))*float64(totalLaps)
	}
	ret := make([]RainPeriod, 0)
	start := -1
	for i, w := range weather {
		switch {
		case w.Rainfall && start < 0:
			start = i
		case !w.Rainfall && start >= 0:
			ret = append(ret, RainPeriod{StartLap: lapPos(start), EndLap: lapPos(i)})
			start = -1
		}
	}
	if start >= 0 {
		ret = append(ret, RainPeriod{
			StartLap: lapPos(start),
			EndLap:   float64(totalLaps),
		})
	}
	return ret
}

// SummarizeWeather aggregates the weather table. Available is false when the
// table is empty; callers then hide the weather panel.
func SummarizeWeather(weather []model.WeatherRow) WeatherStats {
	if len(weather) == 0 {
		return WeatherStats{}
	}
	ret := WeatherStats{Available: true}
	air := make([]float64, 0, len(weather))
	track := make([]float64, 0, len(weather))
	humidity := make([]float64, 0, len(weather))
	dirSum := 0.0
	for _, w := range weather {
		air = append(air, w.AirTemp)
		track = append(track, w.TrackTemp)
		humidity = append(humidity, w.Humidity)
		ret.WindSpeedMean += w.WindSpeed
		if w.WindSpeed > ret.WindSpeedMax {
			ret.WindSpeedMax = w.WindSpeed
		}
		dirSum += w.WindDirection
		ret.Rain = ret.Rain || w.Rainfall
	}
	ret.AirTemp = summarize(air)
	ret.TrackTemp = summarize(track)
	ret.Humidity = summarize(humidity)
	ret.WindSpeedMean /= float64(len(weather))
	ret.WindDirection = dirSum / float64(len(weather))
	ret.Cardinal = Cardinal(ret.WindDirection)
	return ret
}

func summarize(values []float64) MinMeanMax {
	ret := MinMeanMax{Min: values[0], Max: values[0]}
	sum := 0.0
	for _, v := range values {
		sum += v
		ret.Min = math.Min(ret.Min, v)
		ret.Max = math.Max(ret.Max, v)
	}
	ret.Mean = sum / float64(len(values))
	return ret
}

var cardinals = []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Cardinal converts wind direction degrees to an eight point compass label.
func Cardinal(degrees float64) string {
	idx := int(math.Round(math.Mod(degrees, 360)/45)) % len(cardinals)
	if idx < 0 {
		idx += len(cardinals)
	}
	return cardinals[idx]
}
