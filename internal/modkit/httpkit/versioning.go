package httpkit

import (
	"net/http"
	"strings"
)

// MountAPI mounts a subrouter under /{base}, applies any per-scope middleware,
// then invokes mount to register routes on that scoped router
//
// example:
//
//	httpkit.MountAPI(r, "api", httpkit.CommonStack(opts), func(api httpkit.Router) {
//	  events.MountRoutes(api)
//	})
func MountAPI(r Router, base string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	prefix := "/" + strings.Trim(base, "/")
	MountUnder(r, prefix, mw, mount)
}
