// Package module wires the events API into HTTP via modkit
package module

import (
	"net/http"

	"commlog/internal/modkit"
	"commlog/internal/modkit/httpkit"
	"commlog/internal/modkit/swaggerkit"
	"commlog/internal/platform/strings"
	"commlog/internal/services/api/events/domain"

	eventshttp "commlog/internal/services/api/events/http"
	"commlog/internal/services/api/events/service"
)

// Ports exposes the service port for cross-module lookups
type Ports struct {
	Service domain.ServicePort
}

// Module implements the events module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports Ports
	docs  []swaggerkit.Operation

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc *service.Service
}

// New constructs the events module; deps.Provider is required
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("events"), modkit.WithPrefix("/events")}, opts...)...)

	svc := service.New(deps.Provider, deps.Loc(), deps.Now())

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		docs:      b.Docs,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Service: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		eventshttp.Register(r, m.svc)
		external(r)
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.Prefix(), m.mws, func(rr httpkit.Router) {
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name is the module name
func (m *Module) Name() string { return strings.MustString(m.name, "module name") }

// Prefix is the module route prefix
func (m *Module) Prefix() string { return strings.MustPrefix(m.prefix) }

// Middlewares is the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Docs describes the module routes for the OpenAPI document
func (m *Module) Docs() []swaggerkit.Operation {
	return append(eventshttp.Docs(m.Prefix()), m.docs...)
}
