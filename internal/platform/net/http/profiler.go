// Package http hosts server adapters. Profiler mounts pprof endpoints when enabled
package http

import (
	stdhttp "net/http"
	"strings"

	mw "github.com/go-chi/chi/v5/middleware"

	"commlog/internal/platform/logger"
)

// MountProfiler mounts pprof and expvar under prefix, e.g. "/debug"
// it is never part of the api stack so it bypasses CORS and timeouts
func MountProfiler(r Router, prefix string, enabled bool) {
	if !enabled {
		return
	}
	prefix = "/" + strings.Trim(prefix, "/")
	h := stdhttp.StripPrefix(prefix, mw.Profiler()).ServeHTTP

	r.Get(prefix, h)
	r.Get(prefix+"/*", h)
	logger.Named("http").Warn().Str("prefix", prefix).Msg("profiler exposed")
}
