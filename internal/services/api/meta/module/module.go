// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"net/http"
	"strings"
	"time"

	modkit "commlog/internal/modkit"
	"commlog/internal/modkit/httpkit"
	"commlog/internal/modkit/swaggerkit"
	str "commlog/internal/platform/strings"

	metahttp "commlog/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	startedAt time.Time
	docs      []swaggerkit.Operation
}

// New constructs a meta module; it mounts at the scope root unless a prefix is given
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
	}, opts...)...)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		startedAt: deps.Now()(),
		docs:      b.Docs,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		d := metahttp.Deps{
			StartedAt: m.startedAt,
			Provider:  deps.Provider,
			Now:       deps.Now(),
		}
		metahttp.Register(r, d)
		external(r)
	}

	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.Prefix(), m.mws, func(rr httpkit.Router) {
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		m.register(rr)
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "meta") }

// Prefix is the route prefix, "" when mounted at the scope root
func (m *Module) Prefix() string {
	if strings.Trim(m.prefix, " /") == "" {
		return ""
	}
	return str.MustPrefix(m.prefix)
}

// Middlewares implements the modkit.Module interface
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }

// Docs describes the module routes for the OpenAPI document
func (m *Module) Docs() []swaggerkit.Operation { return append(metahttp.Docs(m.Prefix()), m.docs...) }
