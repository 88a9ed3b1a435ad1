package session

import (
	"math"
	"sort"
	"strings"

	"github.com/tomvill/f1-analytics/pkg/model"
)

// Descriptor is the display record of one driver, derived from the results
// table. A failed lookup yields a descriptor carrying just the raw
// identifier; callers fall back to showing that.
type Descriptor struct {
	Abbreviation string
	FullName     string
	TeamName     string
	TeamColor    string // '#' prefixed, empty if unknown
	DriverNumber string
	HeadshotURL  string
	CountryCode  string
	Position     int // finishing position, 0 if unclassified
	DNF          bool
}

// dnfStatusWords in the freetext status field mark a non-finisher.
var dnfStatusWords = []string{"DNF", "RETIRED", "ACCIDENT"}

// Resolve looks up a driver by abbreviation or car number. It never fails;
// unknown identifiers produce an empty descriptor.
func Resolve(s *model.Session, identifier string) Descriptor {
	row, ok := findResult(s, identifier)
	if !ok {
		return Descriptor{Abbreviation: identifier}
	}
	pos := 0
	if !math.IsNaN(row.Position) {
		pos = int(row.Position)
	}
	return Descriptor{
		Abbreviation: row.Abbreviation,
		FullName:     fullName(row),
		TeamName:     row.TeamName,
		TeamColor:    teamColor(row),
		DriverNumber: row.DriverNumber,
		HeadshotURL:  row.HeadshotURL,
		CountryCode:  row.CountryCode,
		Position:     pos,
		DNF:          isDNF(row),
	}
}

func findResult(s *model.Session, identifier string) (model.ResultRow, bool) {
	for i := range s.Results {
		if strings.EqualFold(s.Results[i].Abbreviation, identifier) {
			return s.Results[i], true
		}
	}
	for i := range s.Results {
		if s.Results[i].DriverNumber == identifier {
			return s.Results[i], true
		}
	}
	return model.ResultRow{}, false
}

// fullName resolution order: explicit full name, first+last concatenation,
// abbreviation fallback.
func fullName(row model.ResultRow) string {
	if strings.TrimSpace(row.FullName) != "" {
		return row.FullName
	}
	if row.FirstName != "" || row.LastName != "" {
		return strings.TrimSpace(row.FirstName + " " + row.LastName)
	}
	return row.Abbreviation
}

func teamColor(row model.ResultRow) string {
	if row.TeamColor == "" {
		return ""
	}
	if strings.HasPrefix(row.TeamColor, "#") {
		return row.TeamColor
	}
	return "#" + row.TeamColor
}

// isDNF infers "did not finish" from the classification code, the status
// string and a missing finishing position. This is a best-effort heuristic,
// not an authoritative field.
func isDNF(row model.ResultRow) bool {
	switch strings.ToUpper(row.ClassifiedPosition) {
	case "R", "D", "E", "W": // retired, disqualified, excluded, withdrawn
		return true
	}
	status := strings.ToUpper(row.Status)
	for _, w := range dnfStatusWords {
		if strings.Contains(status, w) {
			return true
		}
	}
	if math.IsNaN(row.Position) && row.Abbreviation != "" {
		return true
	}
	return false
}

// DriverSelection is the filter widget content: abbreviations with display
// names, sorted by full name.
type DriverSelection struct {
	Abbreviation string
	FullName     string
	TeamName     string
}

// DriverChoices builds the selectable driver list of a session. Drivers
// without a results row still appear, identified by their abbreviation.
func DriverChoices(s *model.Session) []DriverSelection {
	ret := make([]DriverSelection, 0, len(s.Results))
	for _, abbr := range s.Drivers() {
		d := Resolve(s, abbr)
		name := d.FullName
		if name == "" {
			name = abbr
		}
		ret = append(ret, DriverSelection{
			Abbreviation: abbr,
			FullName:     name,
			TeamName:     d.TeamName,
		})
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].FullName < ret[j].FullName })
	return ret
}

// TeamDrivers groups the session's drivers by team name.
func TeamDrivers(s *model.Session) map[string][]string {
	ret := make(map[string][]string)
	for _, abbr := range s.Drivers() {
		d := Resolve(s, abbr)
		team := d.TeamName
		ret[team] = append(ret[team], abbr)
	}
	return ret
}
