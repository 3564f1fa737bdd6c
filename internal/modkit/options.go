package modkit

import (
	"net/http"

	"commlog/internal/modkit/swaggerkit"
	phttp "commlog/internal/platform/net/http"
)

// Option mutates build configuration for a module
type Option func(*buildCfg)

// buildCfg is internal wiring state for options
type buildCfg struct {
	name      string
	prefix    string
	mw        []func(http.Handler) http.Handler
	ports     any
	docs      []swaggerkit.Operation
	subrouter func(phttp.Router) phttp.Router
	register  []func(phttp.Router)
}

// WithName sets a module name used in logs and port lookups
func WithName(name string) Option {
	return func(c *buildCfg) { c.name = name }
}

// WithPrefix mounts a module under a path prefix relative to /api
func WithPrefix(prefix string) Option {
	return func(c *buildCfg) { c.prefix = prefix }
}

// WithMiddlewares attaches per module middleware in order
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(c *buildCfg) { c.mw = append(c.mw, mw...) }
}

// WithPorts injects cross module ports declared by another module
// the concrete type is owned by the importing module
func WithPorts[T any](p T) Option {
	return func(c *buildCfg) { c.ports = p }
}

// WithDocs documents extra routes, paths are relative to the module prefix
// pair it with WithRegister so hand mounted routes show up in /api/docs
func WithDocs(ops ...swaggerkit.Operation) Option {
	return func(c *buildCfg) { c.docs = append(c.docs, ops...) }
}

// WithSubrouter lets a caller provide a subrouter factory using the platform seam
func WithSubrouter(fn func(phttp.Router) phttp.Router) Option {
	return func(c *buildCfg) { c.subrouter = fn }
}

// WithRegister adds a function that attaches endpoints to the module router
// repeated calls run in the order given, after the module's own routes
func WithRegister(fn func(phttp.Router)) Option {
	return func(c *buildCfg) {
		if fn != nil {
			c.register = append(c.register, fn)
		}
	}
}
