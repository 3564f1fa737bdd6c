package httpkit

import (
	"net/http"

	phttp "commlog/internal/platform/net/http"
)

// Get registers a no-input handler under GET
func Get(r Router, path string, h func(*http.Request) (any, error)) { phttp.GetJSON(r, path, h) }

// GetQuery registers a GET handler whose query string is bound into T
func GetQuery[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	phttp.GetQuery(r, path, h)
}
