package analysis

import (
	"math"
	"sort"

	"github.com/tomvill/f1-analytics/pkg/model"
)

// SectorRow is one lap of the delta grid. Deltas are against the driver's
// personal best in each sector, so every column contains at least one zero.
type SectorRow struct {
	LapNumber int
	Times     [3]float64
	Deltas    [3]float64
}

// SectorRank is one entry of a per-sector top list.
type SectorRank struct {
	LapNumber int
	Seconds   float64
}

// SectorAnalysis is the per-driver sector consistency dataset. Laps missing
// any sector time are dropped before the minima are taken.
type SectorAnalysis struct {
	Driver          string
	Rows            []SectorRow
	Minima          [3]float64
	TheoreticalBest float64 // sum of the three sector minima
	BestLapTime     float64 // NaN when no timed lap exists
	BestLapNumber   int
	TopSectors      [3][]SectorRank // up to 3 fastest laps per sector
}

// SectorDeltas builds the sector grid of one driver. ErrNoLaps is returned
// when the driver has no lap with all three sectors.
func SectorDeltas(s *model.Session, driver string) (*SectorAnalysis, error) {
	laps := make([]model.Lap, 0)
	for _, l := range s.DriverLaps(driver) {
		if l.HasAllSectors() {
			laps = append(laps, l)
		}
	}
	if len(laps) == 0 {
		return nil, ErrNoLaps
	}

	ret := &SectorAnalysis{
		Driver:      driver,
		Minima:      [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)},
		BestLapTime: math.NaN(),
	}
	for _, l := range laps {
		for sec, v := range sectorTimes(l) {
			if v < ret.Minima[sec] {
				ret.Minima[sec] = v
			}
		}
	}
	ret.TheoreticalBest = ret.Minima[0] + ret.Minima[1] + ret.Minima[2]

	for _, l := range laps {
		row := SectorRow{LapNumber: l.LapNumber, Times: sectorTimes(l)}
		for sec := range row.Times {
			row.Deltas[sec] = row.Times[sec] - ret.Minima[sec]
		}
		ret.Rows = append(ret.Rows, row)
		if !math.IsNaN(l.LapTime) &&
			(math.IsNaN(ret.BestLapTime) || l.LapTime < ret.BestLapTime) {
			ret.BestLapTime = l.LapTime
			ret.BestLapNumber = l.LapNumber
		}
	}

	for sec := 0; sec < 3; sec++ {
		ranks := make([]SectorRank, 0, len(laps))
		for _, l := range laps {
			ranks = append(ranks, SectorRank{
				LapNumber: l.LapNumber,
				Seconds:   sectorTimes(l)[sec],
			})
		}
		sort.SliceStable(ranks, func(i, j int) bool {
			return ranks[i].Seconds < ranks[j].Seconds
		})
		if len(ranks) > 3 {
			ranks = ranks[:3]
		}
		ret.TopSectors[sec] = ranks
	}
	return ret, nil
}

func sectorTimes(l model.Lap) [3]float64 {
	return [3]float64{l.Sector1, l.Sector2, l.Sector3}
}
