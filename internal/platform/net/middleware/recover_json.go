package middleware

import (
	stdjson "encoding/json"
	stdhttp "net/http"
	"runtime/debug"
	"strings"

	perr "commlog/internal/platform/errors"
	"commlog/internal/platform/logger"
	pnet "commlog/internal/platform/net"
)

// RecoverJSON converts panics into a JSON 500 and logs stack with request id
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == stdhttp.ErrAbortHandler {
				panic(v)
			}
			reqID := pnet.RequestID(r.Context())

			// format stack like chi recover
			raw := debug.Stack()
			lines := strings.Split(string(raw), "\n")
			stack := strings.Join(lines, "\n\t")

			logger.C(r.Context()).Error().
				Interface("panic", v).
				Msgf("panic recovered\n%s", stack)

			if reqID != "" {
				w.Header().Set(RequestIDHeader, reqID)
			}

			status, body := pnet.Error(perr.PanicErrf("Internal server error"), reqID)
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(status)
			_ = stdjson.NewEncoder(w).Encode(body)
		}()
		next.ServeHTTP(w, r)
	})
}
