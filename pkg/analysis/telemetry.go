package analysis

import (
	"context"
	"math"

	"github.com/tomvill/f1-analytics/pkg/model"
	"github.com/tomvill/f1-analytics/pkg/session"
)

// TelemetryProvider fetches the sensor series of one lap. Satisfied by
// session.Loader.
type TelemetryProvider interface {
	Telemetry(ctx context.Context, s *model.Session, driver string, lap int,
	) ([]model.TelemetryRow, error)
}

// TelemetrySeries is the distance-aligned channel of one driver's fastest lap.
type TelemetrySeries struct {
	Driver    string
	FullName  string
	TeamName  string
	Color     string
	Dash      string // "" solid, "dash" for the second car of a team
	LapNumber int
	LapTime   float64
	Distance  []float64
	Values    []float64
}

// TelemetryComparison overlays one metric across the selected drivers.
type TelemetryComparison struct {
	Metric  Metric
	Series  []TelemetrySeries
	Missing []string // drivers without usable telemetry for the metric
}

// CompareTelemetry builds the overlay dataset for the selected drivers. Each
// driver contributes the series of their fastest lap; drivers whose telemetry
// cannot be fetched, or who never report the metric, land in Missing instead
// of failing the comparison.
func CompareTelemetry(
	ctx context.Context,
	provider TelemetryProvider,
	s *model.Session,
	drivers []string,
	metric Metric,
) *TelemetryComparison {
	ret := &TelemetryComparison{Metric: metric}
	teamSeen := make(map[string]int)
	for _, driver := range drivers {
		lap, ok := s.FastestLap(driver)
		if !ok {
			ret.Missing = append(ret.Missing, driver)
			continue
		}
		rows, err := provider.Telemetry(ctx, s, driver, lap.LapNumber)
		if err != nil || len(rows) == 0 || !metric.available(rows) {
			ret.Missing = append(ret.Missing, driver)
			continue
		}
		d := session.Resolve(s, driver)
		dash := ""
		if teamSeen[d.TeamName] > 0 {
			dash = "dash"
		}
		teamSeen[d.TeamName]++
		series := TelemetrySeries{
			Driver:    driver,
			FullName:  d.FullName,
			TeamName:  d.TeamName,
			Color:     d.TeamColor,
			Dash:      dash,
			LapNumber: lap.LapNumber,
			LapTime:   lap.LapTime,
			Distance:  make([]float64, 0, len(rows)),
			Values:    make([]float64, 0, len(rows)),
		}
		for i := range rows {
			v := metric.Value(rows[i])
			if math.IsNaN(rows[i].Distance) || math.IsNaN(v) {
				continue
			}
			series.Distance = append(series.Distance, rows[i].Distance)
			series.Values = append(series.Values, v)
		}
		ret.Series = append(ret.Series, series)
	}
	return ret
}
