// Package modkit provides module wiring and core deps
package modkit

import (
	"commlog/internal/modkit/module"
)

// Module is the common surface for API modules
// it aliases module.Module so builders and the api root agree on one contract
type Module = module.Module

// Builder constructs a Module from shared deps and options
// modules expose New(deps Deps, opts ...Option) Module and match this shape
type Builder func(Deps, ...Option) Module
