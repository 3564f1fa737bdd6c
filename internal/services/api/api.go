// Package api provides the HTTP API for the application
package api

import (
	"time"

	"commlog/internal/platform/config"
	"commlog/internal/platform/logger"
	"commlog/internal/platform/metrics"
	phttp "commlog/internal/platform/net/http"
	ptime "commlog/internal/platform/time"

	"commlog/internal/modkit"
	"commlog/internal/modkit/httpkit"
	"commlog/internal/modkit/module"
	"commlog/internal/modkit/swaggerkit"

	"commlog/internal/services/api/events/domain"

	calendarsmod "commlog/internal/services/api/calendars/module"
	eventsmod "commlog/internal/services/api/events/module"
	metamod "commlog/internal/services/api/meta/module"
)

// Base is the scope every module mounts under
const Base = "/api"

// Options are the API options
type Options struct {
	// Config is the CORE_API_ scoped view
	Config   config.Conf
	Provider domain.Provider
	Location *time.Location
	Logger   *logger.Logger
	Clock    ptime.Clock

	EnableSwagger  bool
	EnableProfiler bool
	EnableMetrics  bool
}

// OptionsFromConfig fills the feature toggles from cfg
func OptionsFromConfig(cfg config.Conf) Options {
	return Options{
		Config:         cfg,
		EnableSwagger:  cfg.MayBool("SWAGGER", false),
		EnableProfiler: cfg.MayBool("PROFILER", false),
		EnableMetrics:  cfg.MayBool("METRICS", false),
	}
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Log:      opt.Logger,
		Cfg:      opt.Config,
		Provider: opt.Provider,
		Location: opt.Location,
		Clock:    opt.Clock,
	}

	// events owns the service, calendars reuses it through its port
	events := eventsmod.New(deps)
	calendars := calendarsmod.New(
		deps,
		modkit.WithPorts(calendarsmod.Ports{
			Service: module.MustPortsOf[domain.ServicePort](events),
		}),
	)

	mods := []module.Module{
		metamod.New(deps),
		events,
		calendars,
	}

	stack := httpkit.StackFromConfig(opt.Config)
	stack.Metrics = opt.EnableMetrics

	var ops []swaggerkit.Operation
	httpkit.MountAPI(r, Base, httpkit.CommonStack(stack), func(api httpkit.Router) {
		for _, m := range mods {
			// mount module routes under its Prefix()
			m.MountRoutes(api)
			ops = append(ops, m.Docs()...)
		}
	})

	// Swagger, metrics and profiler live outside the api stack
	swaggerkit.Mount(r, opt.EnableSwagger, ops)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	if opt.EnableMetrics {
		r.Handle("/metrics", metrics.Handler())
	}
}
