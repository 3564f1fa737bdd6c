package middleware

import (
	"net/http"
	"strings"

	pnet "commlog/internal/platform/net"

	"github.com/google/uuid"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

// maxRequestIDLen bounds ids accepted from clients
const maxRequestIDLen = 128

// RequestID propagates X-Request-ID or mints a uuid, stores it on the context
// for chimw.GetReqID and logger.C, and echoes it on the response
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(RequestIDHeader))
			if id == "" || len(id) > maxRequestIDLen {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(pnet.WithRequest(r.Context(), id, "")))
		})
	}
}
