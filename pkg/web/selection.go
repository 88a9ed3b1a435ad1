package web

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/samber/lo"

	"github.com/tomvill/f1-analytics/pkg/analysis"
	"github.com/tomvill/f1-analytics/pkg/model"
)

// selection is the parsed filter state of a page request.
type selection struct {
	Year    int
	Event   string
	Kind    model.SessionKind
	Drivers []string
	Driver  string
	Metric  analysis.Metric
}

func (sel selection) HasDriver(abbr string) bool {
	return lo.Contains(sel.Drivers, abbr)
}

// Query re-encodes the shared filter state so the nav links keep the current
// selection when switching pages.
func (sel selection) Query() string {
	v := url.Values{}
	v.Set("year", strconv.Itoa(sel.Year))
	if sel.Event != "" {
		v.Set("event", sel.Event)
	}
	v.Set("kind", string(sel.Kind))
	return "?" + v.Encode()
}

type kindOption struct {
	Value model.SessionKind
	Label string
}

func sessionKinds() []kindOption {
	return []kindOption{
		{Value: model.KindRace, Label: "Race"},
		{Value: model.KindQualifying, Label: "Qualifying"},
		{Value: model.KindSprint, Label: "Sprint"},
		{Value: model.KindPractice1, Label: "Practice 1"},
		{Value: model.KindPractice2, Label: "Practice 2"},
		{Value: model.KindPractice3, Label: "Practice 3"},
	}
}

func (s *Server) parseSelection(r *http.Request) selection {
	q := r.URL.Query()
	ret := selection{
		Year:    s.loader.AvailableYears()[0],
		Event:   q.Get("event"),
		Kind:    model.KindRace,
		Drivers: q["drivers"],
		Driver:  q.Get("driver"),
		Metric:  analysis.MetricSpeed,
	}
	if y, err := strconv.Atoi(q.Get("year")); err == nil {
		ret.Year = y
	}
	if kind := model.SessionKind(q.Get("kind")); kind != "" {
		ret.Kind = kind
	}
	if m := analysis.Metric(q.Get("metric")); m.Valid() {
		ret.Metric = m
	}
	return ret
}
