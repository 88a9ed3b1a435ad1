// Package analysis contains the per-page dataset builders. Each builder is a
// pure reshaping of a loaded session; failures of single drivers or laps are
// collected into a Missing list and never abort the whole dataset.
package analysis

import (
	"errors"
	"math"

	"github.com/tomvill/f1-analytics/pkg/model"
)

// ErrNoLaps is returned by single-driver builders when the selection has no
// usable laps at all.
var ErrNoLaps = errors.New("no usable laps")

// Metric selects one telemetry channel.
type Metric string

const (
	MetricSpeed    Metric = "speed"
	MetricRPM      Metric = "rpm"
	MetricGear     Metric = "gear"
	MetricThrottle Metric = "throttle"
	MetricBrake    Metric = "brake"
)

func Metrics() []Metric {
	return []Metric{MetricSpeed, MetricRPM, MetricGear, MetricThrottle, MetricBrake}
}

func (m Metric) Valid() bool {
	switch m {
	case MetricSpeed, MetricRPM, MetricGear, MetricThrottle, MetricBrake:
		return true
	}
	return false
}

// Discrete reports whether the metric has a small fixed value set and is
// rendered with a discrete palette instead of a gradient.
func (m Metric) Discrete() bool {
	return m == MetricGear || m == MetricBrake
}

func (m Metric) Label() string {
	switch m {
	case MetricSpeed:
		return "Speed [km/h]"
	case MetricRPM:
		return "RPM"
	case MetricGear:
		return "Gear Number"
	case MetricThrottle:
		return "Throttle [%]"
	case MetricBrake:
		return "Brake"
	}
	return string(m)
}

// Value extracts the metric's channel from a telemetry row.
func (m Metric) Value(row model.TelemetryRow) float64 {
	switch m {
	case MetricSpeed:
		return row.Speed
	case MetricRPM:
		return row.RPM
	case MetricGear:
		return row.Gear
	case MetricThrottle:
		return row.Throttle
	case MetricBrake:
		return row.Brake
	}
	return math.NaN()
}

// available reports whether the metric carries at least one value in the
// series. A metric entirely absent counts as missing data for the driver.
func (m Metric) available(rows []model.TelemetryRow) bool {
	for i := range rows {
		if !math.IsNaN(m.Value(rows[i])) {
			return true
		}
	}
	return false
}
