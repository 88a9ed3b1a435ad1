package server

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // profiling is opt-in via flag
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	otlpruntime "go.opentelemetry.io/contrib/instrumentation/runtime"

	"github.com/tomvill/f1-analytics/log"
	"github.com/tomvill/f1-analytics/pkg/api"
	"github.com/tomvill/f1-analytics/pkg/config"
	"github.com/tomvill/f1-analytics/pkg/session"
	"github.com/tomvill/f1-analytics/pkg/web"
)

func NewServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "starts the dashboard web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return startServer()
		},
	}
	cmd.Flags().StringVarP(&config.ListenAddr,
		"listen-addr",
		"a",
		"localhost:8600",
		"dashboard listen address")
	cmd.Flags().StringVar(&config.LogLevel,
		"log-level",
		"info",
		"controls the log level (debug, info, warn, error, fatal)")
	cmd.Flags().StringVar(&config.LogFormat,
		"log-format",
		"json",
		"controls the log output format")
	cmd.Flags().StringVar(&config.LogConfig,
		"log-config",
		"",
		"log filter rules file")
	cmd.Flags().StringVar(&config.UpstreamTimeout,
		"upstream-timeout",
		"30s",
		"timeout for a single upstream API request")
	cmd.Flags().BoolVar(&config.EnableTelemetry,
		"enable-telemetry",
		false,
		"enables telemetry")
	cmd.Flags().StringVar(&config.TelemetryEndpoint,
		"telemetry-endpoint",
		"localhost:4317",
		"Endpoint that receives open telemetry data")
	cmd.Flags().IntVar(&config.ProfilingPort,
		"profiling-port",
		0,
		"port to use for providing profiling data")
	return cmd
}

func parseLogLevel(l string, defaultVal log.Level) log.Level {
	level, err := log.ParseLevel(l)
	if err != nil {
		return defaultVal
	}
	return level
}

func setupLogger() *log.Logger {
	var logger *log.Logger
	switch config.LogFormat {
	case "json":
		logger = log.New(
			os.Stderr,
			parseLogLevel(config.LogLevel, log.InfoLevel),
			log.WithCaller(true),
			log.AddCallerSkip(1))
	default:
		logger = log.DevLogger(
			os.Stderr,
			parseLogLevel(config.LogLevel, log.DebugLevel),
			log.WithCaller(true),
			log.AddCallerSkip(1))
	}
	if config.LogConfig != "" {
		logCfg, err := log.LoadConfig(config.LogConfig)
		if err != nil {
			logger.Warn("could not load log config", log.ErrorField(err))
			return logger
		}
		if filtered, err := log.NewWithFilters(logger, logCfg.Filters); err == nil {
			logger = filtered
		}
	}
	return logger
}

//nolint:funlen // wiring
func startServer() error {
	logger := setupLogger()
	log.ResetDefault(logger)

	var telemetry *config.Telemetry
	if config.EnableTelemetry {
		log.Info("Enabling telemetry")
		var err error
		if telemetry, err = config.SetupTelemetry(context.Background()); err != nil {
			log.Warn("Could not setup telemetry", log.ErrorField(err))
		}
		err = otlpruntime.Start(otlpruntime.WithMinimumReadMemStatsInterval(time.Second))
		if err != nil {
			log.Warn("Could not start runtime metrics", log.ErrorField(err))
		}
	}

	if config.ProfilingPort > 0 {
		log.Info("Starting profiling server on port", log.Int("port", config.ProfilingPort))
		go func() {
			//nolint:gosec // localhost only
			err := http.ListenAndServe(
				fmt.Sprintf("localhost:%d", config.ProfilingPort),
				nil)
			if err != nil {
				log.Error("Profiling server stopped", log.ErrorField(err))
			}
		}()
	}

	cache, err := api.NewDiskCache(config.CacheDir)
	if err != nil {
		return fmt.Errorf("init cache dir %s: %w", config.CacheDir, err)
	}
	upstreamTimeout, err := time.ParseDuration(config.UpstreamTimeout)
	if err != nil {
		log.Warn("Invalid upstream timeout. Using 30s", log.ErrorField(err))
		upstreamTimeout = 30 * time.Second
	}
	ttl, err := time.ParseDuration(config.CacheTTL)
	if err != nil {
		log.Warn("Invalid cache ttl. Using 24h", log.ErrorField(err))
		ttl = 24 * time.Hour
	}

	client := api.NewClient(
		api.WithBaseURL(config.APIURL),
		api.WithTimeout(upstreamTimeout),
		api.WithDiskCache(cache),
		api.WithLogger(logger.Named("api")))
	loader := session.NewLoader(
		session.WithClient(client),
		session.WithTTL(ttl),
		session.WithLogger(logger.Named("session")))
	srv := web.NewServer(
		web.WithLoader(loader),
		web.WithDiskCache(cache),
		web.WithListenAddr(config.ListenAddr),
		web.WithLogger(logger.Named("web")))

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = srv.Start(ctx)
	if telemetry != nil {
		telemetry.Shutdown()
	}
	if err != nil && err != http.ErrServerClosed {
		log.Error("server terminated", log.ErrorField(err))
		return err
	}
	log.Info("Server terminated")
	return nil
}
