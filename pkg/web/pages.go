package web

import (
	"fmt"
	"html/template"
	"math"
	"net/http"

	"github.com/tomvill/f1-analytics/log"
	"github.com/tomvill/f1-analytics/pkg/analysis"
	"github.com/tomvill/f1-analytics/pkg/chart"
	"github.com/tomvill/f1-analytics/pkg/model"
	"github.com/tomvill/f1-analytics/pkg/session"
)

type statItem struct {
	Label string
	Value string
}

type cacheView struct {
	FileCount int
	HumanSize string
	Dir       string
}

// pageData is the template context shared by all pages.
type pageData struct {
	Title        string
	Active       string
	Query        string
	Years        []int
	Events       []model.Event
	Kinds        []kindOption
	Drivers      []session.DriverSelection
	Metrics      []analysis.Metric
	DriverMulti  bool
	DriverSingle bool
	Sel          selection
	Figure       template.JS
	Figure2      template.JS
	Warning      string
	Notes        []string
	Stats        []statItem
	Cache        cacheView
}

func (s *Server) basePage(r *http.Request, title, active string) pageData {
	sel := s.parseSelection(r)
	ret := pageData{
		Title:  title,
		Active: active,
		Query:  sel.Query(),
		Years:  s.loader.AvailableYears(),
		Kinds:  sessionKinds(),
		Sel:    sel,
	}
	schedule, err := s.loader.Schedule(r.Context(), sel.Year)
	if err != nil {
		log.GetFromContext(r.Context()).Error("schedule unavailable",
			log.Int("year", sel.Year), log.ErrorField(err))
		ret.Warning = "The event schedule could not be loaded. Try again later."
		return ret
	}
	ret.Events = schedule.RaceEvents()
	return ret
}

// loadSelected resolves the selection into a session. A nil session with an
// empty warning means no event was chosen yet.
func (s *Server) loadSelected(r *http.Request, data *pageData) *model.Session {
	if data.Sel.Event == "" {
		data.Notes = append(data.Notes, "Choose an event to load data.")
		return nil
	}
	sess, err := s.loader.LoadByName(
		r.Context(), data.Sel.Year, data.Sel.Event, data.Sel.Kind)
	if err != nil {
		log.GetFromContext(r.Context()).Error("session load failed",
			log.String("event", data.Sel.Event), log.ErrorField(err))
		data.Warning = "Could not load data from the upstream service."
		return nil
	}
	if sess == nil {
		data.Warning = "No data is available for this session."
		return nil
	}
	data.Drivers = session.DriverChoices(sess)
	return sess
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, page string, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.pages[page].ExecuteTemplate(w, "layout", data); err != nil {
		log.GetFromContext(r.Context()).Error("template render failed",
			log.String("page", page), log.ErrorField(err))
	}
}

func (s *Server) setFigure(data *pageData, fig *chart.Figure) {
	buf, err := fig.JSON()
	if err != nil {
		data.Warning = "The chart could not be rendered."
		return
	}
	data.Figure = template.JS(buf) //nolint:gosec // marshaled json, not user input
}

func missingNote(missing []string) string {
	if len(missing) == 0 {
		return ""
	}
	return fmt.Sprintf("No data for: %v", missing)
}

func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	data := s.basePage(r, "Overview", "home")
	s.render(w, r, "home.html", data)
}

func (s *Server) telemetryPage(w http.ResponseWriter, r *http.Request) {
	data := s.basePage(r, "Telemetry Comparison", "telemetry")
	data.DriverMulti = true
	data.Metrics = analysis.Metrics()
	sess := s.loadSelected(r, &data)
	if sess == nil {
		s.render(w, r, "chart.html", data)
		return
	}
	if len(data.Sel.Drivers) == 0 {
		// preselect the first two entries so the page is never empty
		for i, d := range data.Drivers {
			if i >= 2 {
				break
			}
			data.Sel.Drivers = append(data.Sel.Drivers, d.Abbreviation)
		}
	}
	cmp := analysis.CompareTelemetry(
		r.Context(), s.loader, sess, data.Sel.Drivers, data.Sel.Metric)
	if note := missingNote(cmp.Missing); note != "" {
		data.Notes = append(data.Notes, note)
	}
	if len(cmp.Series) > 0 {
		s.setFigure(&data, chart.Telemetry(cmp))
	}
	s.render(w, r, "chart.html", data)
}

func (s *Server) sectorsPage(w http.ResponseWriter, r *http.Request) {
	data := s.basePage(r, "Sector Consistency", "sectors")
	data.DriverSingle = true
	sess := s.loadSelected(r, &data)
	if sess == nil {
		s.render(w, r, "chart.html", data)
		return
	}
	driver := s.singleDriver(&data)
	sa, err := analysis.SectorDeltas(sess, driver)
	if err != nil {
		data.Warning = fmt.Sprintf("No complete laps for %s.", driver)
		s.render(w, r, "chart.html", data)
		return
	}
	data.Stats = []statItem{
		{Label: "Best Lap", Value: fmtSeconds(sa.BestLapTime)},
		{Label: "Theoretical Best", Value: fmtSeconds(sa.TheoreticalBest)},
		{Label: "Best S1", Value: fmtSeconds(sa.Minima[0])},
		{Label: "Best S2", Value: fmtSeconds(sa.Minima[1])},
		{Label: "Best S3", Value: fmtSeconds(sa.Minima[2])},
	}
	s.setFigure(&data, chart.SectorHeatmap(sa))
	s.render(w, r, "chart.html", data)
}

func (s *Server) strategyPage(w http.ResponseWriter, r *http.Request) {
	data := s.basePage(r, "Tyre Strategy", "strategy")
	sess := s.loadSelected(r, &data)
	if sess == nil {
		s.render(w, r, "chart.html", data)
		return
	}
	strategy := analysis.StintTimeline(sess)
	s.setFigure(&data, chart.Stints(strategy))
	s.render(w, r, "chart.html", data)
}

func (s *Server) racePage(w http.ResponseWriter, r *http.Request) {
	data := s.basePage(r, "Race Insights", "race")
	sess := s.loadSelected(r, &data)
	if sess == nil {
		s.render(w, r, "chart.html", data)
		return
	}
	insights := analysis.BuildRaceInsights(sess)
	if note := missingNote(insights.Missing); note != "" {
		data.Notes = append(data.Notes, note)
	}
	data.Stats = []statItem{
		{Label: "Overtakes", Value: fmt.Sprintf("%d", insights.TotalOvertakes)},
		{Label: "Positions Gained", Value: fmt.Sprintf("%d", insights.TotalGained)},
		{Label: "Field Size", Value: fmt.Sprintf("%d", insights.FieldSize)},
		{Label: "Top Speed", Value: fmtUnit(topSpeed(insights), "km/h")},
	}
	s.setFigure(&data, chart.Progression(insights))
	if fig2, err := chart.InsightScatter(insights).JSON(); err == nil {
		data.Figure2 = template.JS(fig2) //nolint:gosec // marshaled json
	}
	s.render(w, r, "chart.html", data)
}

func (s *Server) weatherPage(w http.ResponseWriter, r *http.Request) {
	data := s.basePage(r, "Lap Times and Weather", "weather")
	data.DriverMulti = true
	sess := s.loadSelected(r, &data)
	if sess == nil {
		s.render(w, r, "chart.html", data)
		return
	}
	if len(data.Sel.Drivers) == 0 {
		for _, d := range data.Drivers {
			data.Sel.Drivers = append(data.Sel.Drivers, d.Abbreviation)
		}
	}
	lw := analysis.BuildLapWeather(sess, data.Sel.Drivers)
	if note := missingNote(lw.Missing); note != "" {
		data.Notes = append(data.Notes, note)
	}
	if lw.Stats.Available {
		data.Stats = []statItem{
			{Label: "Air Temp", Value: fmtRange(lw.Stats.AirTemp, "°C")},
			{Label: "Track Temp", Value: fmtRange(lw.Stats.TrackTemp, "°C")},
			{Label: "Humidity", Value: fmtRange(lw.Stats.Humidity, "%")},
			{Label: "Wind", Value: fmt.Sprintf("%.1f m/s %s",
				lw.Stats.WindSpeedMean, lw.Stats.Cardinal)},
			{Label: "Rain", Value: yesNo(lw.Stats.Rain)},
		}
	} else {
		data.Notes = append(data.Notes, "Weather data is not available for this session.")
	}
	if len(lw.Series) > 0 {
		s.setFigure(&data, chart.LapWeather(lw))
	}
	s.render(w, r, "chart.html", data)
}

func (s *Server) trackMapPage(w http.ResponseWriter, r *http.Request) {
	data := s.basePage(r, "Track Map", "trackmap")
	data.DriverSingle = true
	data.Metrics = analysis.Metrics()
	sess := s.loadSelected(r, &data)
	if sess == nil {
		s.render(w, r, "chart.html", data)
		return
	}
	driver := s.singleDriver(&data)
	tm, err := analysis.BuildTrackMap(
		r.Context(), s.loader, sess, driver, data.Sel.Metric)
	if err != nil {
		data.Warning = fmt.Sprintf("No telemetry available for %s.", driver)
		s.render(w, r, "chart.html", data)
		return
	}
	data.Stats = []statItem{
		{Label: "Lap Time", Value: fmtSeconds(tm.LapTime)},
		{Label: "Max Speed", Value: fmtUnit(tm.Stats.MaxSpeed, "km/h")},
		{Label: "Avg Speed", Value: fmtUnit(tm.Stats.AvgSpeed, "km/h")},
		{Label: "Avg Throttle", Value: fmtUnit(tm.Stats.AvgThrottle, "%")},
		{Label: "Braking", Value: fmtPercent(tm.Stats.BrakeShare)},
	}
	s.setFigure(&data, chart.TrackMap(tm))
	s.render(w, r, "chart.html", data)
}

func (s *Server) cachePage(w http.ResponseWriter, r *http.Request) {
	data := s.basePage(r, "Cache", "cache")
	info := s.cache.Info()
	data.Cache = cacheView{
		FileCount: info.FileCount,
		HumanSize: humanBytes(info.SizeBytes),
		Dir:       s.cache.Dir(),
	}
	s.render(w, r, "cache.html", data)
}

func (s *Server) cacheClear(w http.ResponseWriter, r *http.Request) {
	if err := s.cache.Clear(); err != nil {
		log.GetFromContext(r.Context()).Error("cache clear failed", log.ErrorField(err))
	}
	http.Redirect(w, r, "/cache", http.StatusSeeOther)
}

// singleDriver picks the requested driver or falls back to the first choice.
func (s *Server) singleDriver(data *pageData) string {
	if data.Sel.Driver != "" {
		return data.Sel.Driver
	}
	if len(data.Drivers) > 0 {
		data.Sel.Driver = data.Drivers[0].Abbreviation
		return data.Sel.Driver
	}
	return ""
}

func topSpeed(insights *analysis.RaceInsights) float64 {
	best := math.NaN()
	for _, d := range insights.Drivers {
		if math.IsNaN(d.MaxSpeed) {
			continue
		}
		if math.IsNaN(best) || d.MaxSpeed > best {
			best = d.MaxSpeed
		}
	}
	return best
}

func fmtSeconds(v float64) string {
	if math.IsNaN(v) {
		return "N/A"
	}
	minutes := int(v) / 60
	return fmt.Sprintf("%d:%06.3f", minutes, v-float64(minutes*60))
}

func fmtUnit(v float64, unit string) string {
	if math.IsNaN(v) {
		return "N/A"
	}
	return fmt.Sprintf("%.1f %s", v, unit)
}

func fmtPercent(v float64) string {
	if math.IsNaN(v) {
		return "N/A"
	}
	return fmt.Sprintf("%.0f%%", v*100)
}

func fmtRange(v analysis.MinMeanMax, unit string) string {
	return fmt.Sprintf("%.1f / %.1f / %.1f %s", v.Min, v.Mean, v.Max, unit)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func humanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMG"[exp])
}
