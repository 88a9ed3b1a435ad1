package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tomvill/f1-analytics/log"
	"github.com/tomvill/f1-analytics/pkg/analysis"
	"github.com/tomvill/f1-analytics/pkg/chart"
	"github.com/tomvill/f1-analytics/pkg/model"
	"github.com/tomvill/f1-analytics/pkg/session"
)

var errNoSelection = errors.New("no event selected")

func respondJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.GetFromContext(r.Context()).Error("json encode failed", log.ErrorField(err))
	}
}

func respondError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	respondJSON(w, r, status, map[string]string{"error": msg})
}

func (s *Server) apiYears(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]any{
		"years": s.loader.AvailableYears(),
	})
}

func (s *Server) apiSchedule(w http.ResponseWriter, r *http.Request) {
	year, _ := strconv.Atoi(mux.Vars(r)["year"])
	schedule, err := s.loader.Schedule(r.Context(), year)
	if err != nil {
		respondError(w, r, http.StatusBadGateway, "schedule unavailable")
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{
		"year":   year,
		"events": schedule.RaceEvents(),
	})
}

func (s *Server) apiDrivers(w http.ResponseWriter, r *http.Request) {
	sess, err := s.loadForAPI(r)
	if err != nil {
		s.apiLoadError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{
		"drivers": session.DriverChoices(sess),
	})
}

// apiFigure exposes the page figures as raw plotly specs, addressed by the
// page name with the same query parameters as the HTML pages.
func (s *Server) apiFigure(w http.ResponseWriter, r *http.Request) {
	sess, err := s.loadForAPI(r)
	if err != nil {
		s.apiLoadError(w, r, err)
		return
	}
	sel := s.parseSelection(r)
	if len(sel.Drivers) == 0 {
		sel.Drivers = sess.Drivers()
	}
	if sel.Driver == "" && len(sess.Drivers()) > 0 {
		sel.Driver = sess.Drivers()[0]
	}

	var fig *chart.Figure
	var notes []string
	switch page := mux.Vars(r)["page"]; page {
	case "telemetry":
		cmp := analysis.CompareTelemetry(r.Context(), s.loader, sess, sel.Drivers, sel.Metric)
		fig, notes = chart.Telemetry(cmp), []string{missingNote(cmp.Missing)}
	case "sectors":
		sa, err := analysis.SectorDeltas(sess, sel.Driver)
		if err != nil {
			respondError(w, r, http.StatusNotFound, fmt.Sprintf("no complete laps for %s", sel.Driver))
			return
		}
		fig = chart.SectorHeatmap(sa)
	case "strategy":
		fig = chart.Stints(analysis.StintTimeline(sess))
	case "race":
		insights := analysis.BuildRaceInsights(sess)
		fig, notes = chart.Progression(insights), []string{missingNote(insights.Missing)}
	case "scatter":
		fig = chart.InsightScatter(analysis.BuildRaceInsights(sess))
	case "weather":
		lw := analysis.BuildLapWeather(sess, sel.Drivers)
		fig, notes = chart.LapWeather(lw), []string{missingNote(lw.Missing)}
	case "trackmap":
		tm, err := analysis.BuildTrackMap(r.Context(), s.loader, sess, sel.Driver, sel.Metric)
		if err != nil {
			respondError(w, r, http.StatusNotFound, fmt.Sprintf("no telemetry for %s", sel.Driver))
			return
		}
		fig = chart.TrackMap(tm)
	default:
		respondError(w, r, http.StatusNotFound, "unknown page "+page)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{
		"figure": fig,
		"notes":  nonEmpty(notes),
	})
}

func (s *Server) loadForAPI(r *http.Request) (*model.Session, error) {
	sel := s.parseSelection(r)
	if sel.Event == "" {
		return nil, errNoSelection
	}
	sess, err := s.loader.LoadByName(r.Context(), sel.Year, sel.Event, sel.Kind)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, session.ErrUnknownEvent
	}
	return sess, nil
}

func (s *Server) apiLoadError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, errNoSelection):
		respondError(w, r, http.StatusBadRequest, "event parameter is required")
	case errors.Is(err, session.ErrUnknownEvent):
		respondError(w, r, http.StatusNotFound, "no data for this selection")
	default:
		log.GetFromContext(r.Context()).Error("api load failed", log.ErrorField(err))
		respondError(w, r, http.StatusBadGateway, "upstream unavailable")
	}
}

func nonEmpty(notes []string) []string {
	ret := make([]string, 0, len(notes))
	for _, n := range notes {
		if n != "" {
			ret = append(ret, n)
		}
	}
	return ret
}
