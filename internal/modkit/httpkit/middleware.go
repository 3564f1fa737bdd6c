package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"commlog/internal/platform/config"
	"commlog/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack; zero values fall back to defaults
type StackOptions struct {
	CORSOrigins []string
	Timeout     time.Duration
	SlowRequest time.Duration
	// Metrics turns on request counters and latency histograms
	Metrics bool
}

// StackFromConfig reads stack options from cfg
func StackFromConfig(cfg config.Conf) StackOptions {
	return StackOptions{
		CORSOrigins: cfg.MayCSV("CORS_ORIGINS", []string{"*"}),
		Timeout:     cfg.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
		SlowRequest: cfg.MayDuration("SLOW_REQUEST", 2*time.Second),
		Metrics:     cfg.MayBool("METRICS", false),
	}
}

// CommonStack returns the baseline middleware slice for the api scope
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	stack := []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.SlowRequest}),
	}
	if o.Metrics {
		stack = append(stack, middleware.Metrics())
	}
	return append(stack,
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Timeout(timeout),
	)
}
