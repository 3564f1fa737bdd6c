package http

import "net/http"

// GetJSON mounts a no-input return-style handler under GET
func GetJSON(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}

// GetQuery mounts a GET handler whose query string is bound into T
func GetQuery[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Get(path, QueryHandler(h))
}
