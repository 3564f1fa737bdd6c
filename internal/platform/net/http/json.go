package http

import (
	"net/http"

	"commlog/internal/platform/net/http/bind"
)

// Call adapts a return-style handler
// a returned Response is written as is, anything else becomes a 200 body
func Call(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		out, err := fn(r)
		if err != nil {
			return Error(err)
		}
		if resp, ok := out.(Response); ok {
			return resp
		}
		return OK(out)
	})
}

// QueryHandler binds and validates the query string into T before calling fn
// fn never runs when binding fails
func QueryHandler[T any](fn func(*http.Request, T) (any, error)) Handler {
	return Call(func(r *http.Request) (any, error) {
		in, err := bind.ParseQuery[T](r)
		if err != nil {
			return nil, err
		}
		return fn(r, in)
	})
}
