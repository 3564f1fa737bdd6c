// Package module defines the minimal contract for a modkit module
package module

import (
	"commlog/internal/modkit/swaggerkit"
	phttp "commlog/internal/platform/net/http"
)

// Module defines the minimal contract used by modkit
// keep this sibling to avoid import knots when a module also exports its own ports type
type Module interface {
	// MountRoutes mounts HTTP routes under the provided router seam
	MountRoutes(r phttp.Router)
	// Ports returns a module specific port set for cross wiring, or nil
	Ports() any
	Name() string
	// Docs describes the GET routes the module mounts, paths include its prefix
	Docs() []swaggerkit.Operation
}
