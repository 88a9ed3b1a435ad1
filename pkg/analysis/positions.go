package analysis

import (
	"math"
	"sort"

	"github.com/tomvill/f1-analytics/pkg/model"
	"github.com/tomvill/f1-analytics/pkg/session"
)

// jitterRadius displaces coincident scatter points so every driver marker
// stays visible.
const jitterRadius = 0.15

// DriverRaceStats is one driver's aggregate over a race.
type DriverRaceStats struct {
	Driver          string
	FullName        string
	TeamName        string
	Color           string
	Overtakes       int // strict position improvements lap to lap
	PositionsGained int // first lap position minus final, floored at zero
	MaxSpeed        float64
	BestLap         float64
	AvgLap          float64
	TotalLaps       int
	FinishPosition  int
	DNF             bool
}

// ProgressionSeries is the lap-by-lap position trace of one driver.
type ProgressionSeries struct {
	Driver    string
	FullName  string
	Color     string
	Dash      string
	Laps      []int
	Positions []int
}

// RaceInsights is the race overview dataset: per-driver aggregates, a
// position progression of the top finishers, and session totals.
type RaceInsights struct {
	Drivers        []DriverRaceStats
	TotalOvertakes int
	TotalGained    int
	Progression    []ProgressionSeries
	FieldSize      int
	Missing        []string // drivers without any position data
}

// BuildRaceInsights computes the race overview. The progression covers the
// ten best classified drivers; the aggregates cover everyone.
func BuildRaceInsights(s *model.Session) *RaceInsights {
	ret := &RaceInsights{}
	for _, driver := range s.Drivers() {
		laps := s.DriverLaps(driver)
		positions := positionTrace(laps)
		if len(positions) == 0 {
			ret.Missing = append(ret.Missing, driver)
			continue
		}
		d := session.Resolve(s, driver)
		stats := DriverRaceStats{
			Driver:         driver,
			FullName:       d.FullName,
			TeamName:       d.TeamName,
			Color:          d.TeamColor,
			MaxSpeed:       maxTrapSpeed(laps),
			BestLap:        math.NaN(),
			TotalLaps:      len(laps),
			FinishPosition: d.Position,
			DNF:            d.DNF,
		}
		for i := 1; i < len(positions); i++ {
			if positions[i] < positions[i-1] {
				stats.Overtakes++
			}
		}
		if gained := positions[0] - positions[len(positions)-1]; gained > 0 {
			stats.PositionsGained = gained
		}
		sum, timed := 0.0, 0
		for _, l := range laps {
			if math.IsNaN(l.LapTime) {
				continue
			}
			sum += l.LapTime
			timed++
			if math.IsNaN(stats.BestLap) || l.LapTime < stats.BestLap {
				stats.BestLap = l.LapTime
			}
		}
		stats.AvgLap = math.NaN()
		if timed > 0 {
			stats.AvgLap = sum / float64(timed)
		}
		ret.Drivers = append(ret.Drivers, stats)
		ret.TotalOvertakes += stats.Overtakes
		ret.TotalGained += stats.PositionsGained
	}
	ret.FieldSize = len(ret.Drivers) + len(ret.Missing)
	ret.Progression = buildProgression(s)
	return ret
}

func positionTrace(laps []model.Lap) []int {
	ret := make([]int, 0, len(laps))
	for _, l := range laps {
		if l.Position > 0 {
			ret = append(ret, l.Position)
		}
	}
	return ret
}

func maxTrapSpeed(laps []model.Lap) float64 {
	best := math.NaN()
	for _, l := range laps {
		for _, v := range []float64{l.SpeedI1, l.SpeedI2, l.SpeedFL, l.SpeedST} {
			if math.IsNaN(v) {
				continue
			}
			if math.IsNaN(best) || v > best {
				best = v
			}
		}
	}
	return best
}

// buildProgression selects the ten best classified drivers and emits their
// lap-by-lap position traces. The second car of a team gets a dashed line.
func buildProgression(s *model.Session) []ProgressionSeries {
	type ranked struct {
		driver string
		pos    int
	}
	candidates := make([]ranked, 0)
	for _, driver := range s.Drivers() {
		d := session.Resolve(s, driver)
		pos := d.Position
		if pos == 0 {
			pos = math.MaxInt32
		}
		candidates = append(candidates, ranked{driver: driver, pos: pos})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].pos < candidates[j].pos
	})
	if len(candidates) > 10 {
		candidates = candidates[:10]
	}

	teamSeen := make(map[string]int)
	ret := make([]ProgressionSeries, 0, len(candidates))
	for _, c := range candidates {
		d := session.Resolve(s, c.driver)
		series := ProgressionSeries{
			Driver:   c.driver,
			FullName: d.FullName,
			Color:    d.TeamColor,
		}
		if teamSeen[d.TeamName] > 0 {
			series.Dash = "dash"
		}
		teamSeen[d.TeamName]++
		for _, l := range s.DriverLaps(c.driver) {
			if l.Position > 0 {
				series.Laps = append(series.Laps, l.LapNumber)
				series.Positions = append(series.Positions, l.Position)
			}
		}
		if len(series.Laps) > 0 {
			ret = append(ret, series)
		}
	}
	return ret
}

// JitterPoints displaces coincident (x, y) pairs onto a small circle with
// equally spaced angles, leaving unique points untouched.
func JitterPoints(xs, ys []float64) ([]float64, []float64) {
	type point struct{ x, y float64 }
	groups := make(map[point][]int)
	for i := range xs {
		p := point{x: xs[i], y: ys[i]}
		groups[p] = append(groups[p], i)
	}
	jx := make([]float64, len(xs))
	jy := make([]float64, len(ys))
	copy(jx, xs)
	copy(jy, ys)
	for p, idx := range groups {
		if len(idx) < 2 {
			continue
		}
		for n, i := range idx {
			angle := 2 * math.Pi * float64(n) / float64(len(idx))
			jx[i] = p.x + jitterRadius*math.Cos(angle)
			jy[i] = p.y + jitterRadius*math.Sin(angle)
		}
	}
	return jx, jy
}
