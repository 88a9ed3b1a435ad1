package analysis

import (
	"sort"

	"github.com/samber/lo"

	"github.com/tomvill/f1-analytics/pkg/model"
	"github.com/tomvill/f1-analytics/pkg/session"
)

// Stint is one contiguous run on a tyre set.
type Stint struct {
	Driver   string
	Number   int
	Compound string
	Length   int // laps in the stint
	StartLap int // laps completed before the stint, for bar stacking
}

// Strategy is the session-wide tyre strategy dataset. Drivers are ordered by
// total lap count descending, so the longest race runs render on top.
type Strategy struct {
	DriverOrder []string
	Names       map[string]string // abbreviation to full name
	Stints      []Stint           // grouped per driver, stint order
	Compounds   []string          // compounds in order of first appearance
}

type stintKey struct {
	driver   string
	number   int
	compound string
}

// StintTimeline groups the lap table into stints per driver.
func StintTimeline(s *model.Session) *Strategy {
	counts := make(map[stintKey]int)
	totals := make(map[string]int)
	order := make([]stintKey, 0)
	for i := range s.Laps {
		l := s.Laps[i]
		key := stintKey{driver: l.Driver, number: l.Stint, compound: l.Compound}
		if _, ok := counts[key]; !ok {
			order = append(order, key)
		}
		counts[key]++
		totals[l.Driver]++
	}

	ret := &Strategy{
		DriverOrder: s.Drivers(),
		Names:       make(map[string]string),
	}
	sort.SliceStable(ret.DriverOrder, func(i, j int) bool {
		return totals[ret.DriverOrder[i]] > totals[ret.DriverOrder[j]]
	})
	for _, driver := range ret.DriverOrder {
		ret.Names[driver] = session.Resolve(s, driver).FullName
		start := 0
		keys := lo.Filter(order, func(k stintKey, _ int) bool {
			return k.driver == driver
		})
		sort.SliceStable(keys, func(i, j int) bool {
			return keys[i].number < keys[j].number
		})
		for _, k := range keys {
			ret.Stints = append(ret.Stints, Stint{
				Driver:   driver,
				Number:   k.number,
				Compound: k.compound,
				Length:   counts[k],
				StartLap: start,
			})
			start += counts[k]
			if !lo.Contains(ret.Compounds, k.compound) {
				ret.Compounds = append(ret.Compounds, k.compound)
			}
		}
	}
	return ret
}
