package analysis

import (
	"context"
	"fmt"
	"math"

	"github.com/tomvill/f1-analytics/pkg/model"
	"github.com/tomvill/f1-analytics/pkg/session"
)

// TrackSegment is one piece of the track outline between two telemetry
// samples. Gap segments bridge spans without positional data and are drawn
// neutral instead of metric colored.
type TrackSegment struct {
	X0, Y0 float64
	X1, Y1 float64
	Value  float64 // metric value at the segment start, NaN for gaps
	Gap    bool
}

// LapStats summarizes the driven lap shown on the map.
type LapStats struct {
	MaxSpeed    float64
	AvgSpeed    float64
	MaxRPM      float64
	AvgThrottle float64
	BrakeShare  float64 // fraction of samples with the brake applied
}

// TrackMap is the metric-colored circuit outline of one driver's fastest lap.
type TrackMap struct {
	Driver    session.Descriptor
	Metric    Metric
	LapNumber int
	LapTime   float64
	Segments  []TrackSegment
	Corners   []model.Corner
	Stats     LapStats
}

// BuildTrackMap renders one driver's fastest lap onto the circuit outline.
// ErrNoLaps is returned when the driver has no timed lap; a telemetry fetch
// failure is returned as is.
func BuildTrackMap(
	ctx context.Context,
	provider TelemetryProvider,
	s *model.Session,
	driver string,
	metric Metric,
) (*TrackMap, error) {
	lap, ok := s.FastestLap(driver)
	if !ok {
		return nil, ErrNoLaps
	}
	rows, err := provider.Telemetry(ctx, s, driver, lap.LapNumber)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no telemetry for %s lap %d: %w",
			driver, lap.LapNumber, ErrNoLaps)
	}
	ret := &TrackMap{
		Driver:    session.Resolve(s, driver),
		Metric:    metric,
		LapNumber: lap.LapNumber,
		LapTime:   lap.LapTime,
		Segments:  buildSegments(rows, metric),
		Corners:   s.Corners,
		Stats:     lapStats(rows),
	}
	return ret, nil
}

// buildSegments connects consecutive positioned samples. A span of samples
// without coordinates collapses into one gap segment between the surrounding
// known points; a missing metric value also degrades the segment to a gap.
func buildSegments(rows []model.TelemetryRow, metric Metric) []TrackSegment {
	ret := make([]TrackSegment, 0, len(rows))
	prev := -1
	for i := range rows {
		if math.IsNaN(rows[i].X) || math.IsNaN(rows[i].Y) {
			continue
		}
		if prev >= 0 {
			seg := TrackSegment{
				X0: rows[prev].X, Y0: rows[prev].Y,
				X1: rows[i].X, Y1: rows[i].Y,
				Value: metric.Value(rows[prev]),
			}
			if i-prev > 1 || math.IsNaN(seg.Value) {
				seg.Gap = true
				seg.Value = math.NaN()
			}
			ret = append(ret, seg)
		}
		prev = i
	}
	return ret
}

func lapStats(rows []model.TelemetryRow) LapStats {
	ret := LapStats{MaxSpeed: math.NaN(), MaxRPM: math.NaN()}
	speedSum, speedN := 0.0, 0
	throttleSum, throttleN := 0.0, 0
	brakeOn, brakeN := 0, 0
	for _, r := range rows {
		if !math.IsNaN(r.Speed) {
			speedSum += r.Speed
			speedN++
			if math.IsNaN(ret.MaxSpeed) || r.Speed > ret.MaxSpeed {
				ret.MaxSpeed = r.Speed
			}
		}
		if !math.IsNaN(r.RPM) &&
			(math.IsNaN(ret.MaxRPM) || r.RPM > ret.MaxRPM) {
			ret.MaxRPM = r.RPM
		}
		if !math.IsNaN(r.Throttle) {
			throttleSum += r.Throttle
			throttleN++
		}
		if !math.IsNaN(r.Brake) {
			brakeN++
			if r.Brake > 0 {
				brakeOn++
			}
		}
	}
	ret.AvgSpeed = math.NaN()
	if speedN > 0 {
		ret.AvgSpeed = speedSum / float64(speedN)
	}
	ret.AvgThrottle = math.NaN()
	if throttleN > 0 {
		ret.AvgThrottle = throttleSum / float64(throttleN)
	}
	ret.BrakeShare = math.NaN()
	if brakeN > 0 {
		ret.BrakeShare = float64(brakeOn) / float64(brakeN)
	}
	return ret
}
