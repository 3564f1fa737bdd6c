package modkit

import (
	"net/http"
	"strings"

	"commlog/internal/modkit/httpkit"
	"commlog/internal/modkit/swaggerkit"
)

// Built is a plain struct with the fields modules care about
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any

	// Docs are the extra operations given via WithDocs, already joined with Prefix
	Docs []swaggerkit.Operation

	// router hooks set via options and exposed to modules
	Subrouter func(httpkit.Router) httpkit.Router
	Register  func(httpkit.Router)
}

// Build applies Option funcs to an internal buildCfg and returns a plain struct
// later options win for scalar fields, slices accumulate
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}

	sub := c.subrouter
	if sub == nil {
		sub = func(r httpkit.Router) httpkit.Router { return r }
	}
	regs := c.register
	register := func(r httpkit.Router) {
		for _, fn := range regs {
			fn(r)
		}
	}

	base := ""
	if p := strings.Trim(c.prefix, " /"); p != "" {
		base = "/" + p
	}
	docs := make([]swaggerkit.Operation, 0, len(c.docs))
	for _, op := range c.docs {
		switch rel := strings.Trim(op.Path, "/"); {
		case rel != "":
			op.Path = base + "/" + rel
		case base != "":
			op.Path = base
		default:
			op.Path = "/"
		}
		docs = append(docs, op)
	}

	return Built{
		Name:      c.name,
		Prefix:    c.prefix,
		Mw:        append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:     c.ports,
		Docs:      docs,
		Subrouter: sub,
		Register:  register,
	}
}
