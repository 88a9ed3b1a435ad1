package config

// this holds the resolved configuration values from CLI
var (
	APIURL            string // base URL of the motorsport data API
	CacheDir          string // directory used to persist upstream API responses
	CacheTTL          string // duration for which loaded sessions are memoized
	LogLevel          string // sets the log level (zap log level values)
	LogFormat         string // text vs json
	LogConfig         string // path to log config file
	ListenAddr        string // listen addr for the dashboard server
	EnableTelemetry   bool   // enable telemetry
	TelemetryEndpoint string // endpoint for telemetry
	ProfilingPort     int    // port for profiling
	UpstreamTimeout   string // timeout for a single upstream API request
)
