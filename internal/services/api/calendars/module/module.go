// Package module wires the calendars endpoint; it reuses the events service port
package module

import (
	"net/http"

	"commlog/internal/modkit"
	"commlog/internal/modkit/httpkit"
	"commlog/internal/modkit/swaggerkit"
	"commlog/internal/platform/strings"
	"commlog/internal/services/api/events/domain"

	calhttp "commlog/internal/services/api/calendars/http"
)

// Ports are the ports this module consumes, injected with modkit.WithPorts
type Ports struct {
	Service domain.ServicePort
}

// Module implements the calendars module
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	svc      domain.ServicePort
	register func(httpkit.Router)
	docs     []swaggerkit.Operation
}

// New constructs the calendars module; it panics without an injected events service
func New(_ modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("calendars"), modkit.WithPrefix("/calendars")}, opts...)...)

	in, ok := b.Ports.(Ports)
	if !ok || in.Service == nil {
		panic("calendars module requires Ports{Service} via modkit.WithPorts")
	}

	m := &Module{name: b.Name, prefix: b.Prefix, mws: b.Mw, svc: in.Service, docs: b.Docs}
	external := b.Register
	m.register = func(r httpkit.Router) {
		calhttp.Register(b.Subrouter(r), m.svc)
		external(r)
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.Prefix(), m.mws, m.register)
}

// Name is the module name
func (m *Module) Name() string { return strings.MustString(m.name, "module name") }

// Prefix is the module route prefix
func (m *Module) Prefix() string { return strings.MustPrefix(m.prefix) }

// Ports returns nil; the module only consumes ports
func (m *Module) Ports() any { return nil }

// Docs describes the module routes for the OpenAPI document
func (m *Module) Docs() []swaggerkit.Operation { return append(calhttp.Docs(m.Prefix()), m.docs...) }
