// Package web serves the dashboard: HTML pages with embedded plotly figure
// specs plus a small JSON API for the same datasets.
package web

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/tomvill/f1-analytics/log"
	"github.com/tomvill/f1-analytics/pkg/api"
	"github.com/tomvill/f1-analytics/pkg/session"
)

//go:embed templates
var templateFS embed.FS

type (
	Option func(*Server)
	Server struct {
		loader *session.Loader
		cache  *api.DiskCache
		l      *log.Logger
		addr   string
		pages  map[string]*template.Template
		srv    *http.Server
	}
)

func WithLoader(arg *session.Loader) Option {
	return func(s *Server) { s.loader = arg }
}

func WithDiskCache(arg *api.DiskCache) Option {
	return func(s *Server) { s.cache = arg }
}

func WithLogger(arg *log.Logger) Option {
	return func(s *Server) { s.l = arg }
}

func WithListenAddr(arg string) Option {
	return func(s *Server) { s.addr = arg }
}

func NewServer(opts ...Option) *Server {
	ret := &Server{
		addr:  "localhost:8600",
		l:     log.Default().Named("web"),
		pages: make(map[string]*template.Template),
	}
	for _, opt := range opts {
		opt(ret)
	}
	for _, name := range []string{"home.html", "chart.html", "cache.html"} {
		ret.pages[name] = template.Must(template.ParseFS(
			templateFS, "templates/layout.html", "templates/"+name))
	}
	return ret
}

// Handler builds the routing table. Exposed for tests.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.requestID, s.logRequests, s.recoverPanics)

	r.HandleFunc("/", s.home).Methods(http.MethodGet)
	r.HandleFunc("/telemetry", s.telemetryPage).Methods(http.MethodGet)
	r.HandleFunc("/sectors", s.sectorsPage).Methods(http.MethodGet)
	r.HandleFunc("/strategy", s.strategyPage).Methods(http.MethodGet)
	r.HandleFunc("/race", s.racePage).Methods(http.MethodGet)
	r.HandleFunc("/weather", s.weatherPage).Methods(http.MethodGet)
	r.HandleFunc("/trackmap", s.trackMapPage).Methods(http.MethodGet)
	r.HandleFunc("/cache", s.cachePage).Methods(http.MethodGet)
	r.HandleFunc("/cache/clear", s.cacheClear).Methods(http.MethodPost)

	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.HandleFunc("/years", s.apiYears).Methods(http.MethodGet)
	apiRouter.HandleFunc("/schedule/{year:[0-9]+}", s.apiSchedule).Methods(http.MethodGet)
	apiRouter.HandleFunc("/drivers", s.apiDrivers).Methods(http.MethodGet)
	apiRouter.HandleFunc("/figure/{page}", s.apiFigure).Methods(http.MethodGet)

	return newCORS().Handler(r)
}

// Start serves until the context is canceled, then drains with a short
// shutdown grace period.
func (s *Server) Start(ctx context.Context) error {
	s.srv = &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errChan := make(chan error, 1)
	go func() {
		s.l.Info("dashboard listening", log.String("addr", s.addr))
		errChan <- s.srv.ListenAndServe()
	}()
	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.srv.Shutdown(shutdownCtx)
	}
}

func newCORS() *cors.Cors {
	return cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
		},
		AllowOriginFunc: func(origin string) bool {
			return true
		},
		AllowedHeaders: []string{"*"},
		MaxAge:         int(2 * time.Hour / time.Second),
	})
}
