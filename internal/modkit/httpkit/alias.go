// Package httpkit provides handler and routing helpers that alias the platform http package
// use these from modules so they do not import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "commlog/internal/platform/net/http"
)

type (
	// Response is the HTTP response type
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is a re-export of the platform router seam
	Router = phttp.Router
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// NoContent returns a 204 response
func NoContent() Response { return phttp.NoContent() }

// Error returns a response that maps an error to status and error body
func Error(err error) Response { return phttp.Error(err) }

// URLParam reads a path parameter captured by the router
func URLParam(r *http.Request, name string) string { return phttp.URLParam(r, name) }

// Query binds and validates the query string into T before calling fn
func Query[T any](fn func(*http.Request, T) (any, error)) Handler { return phttp.QueryHandler(fn) }

// Call adapts a return-style handler; a returned Response is written as is
func Call(fn func(*http.Request) (any, error)) Handler { return phttp.Call(fn) }

// Handle lets you directly adapt a Response-returning function if you prefer
func Handle(fn func(*http.Request) Response) Handler { return phttp.Handle(fn) }
