package middleware

import (
	"net"
	"net/http"
	"time"

	"housepricing/internal/platform/logger"
	pnet "housepricing/internal/platform/net"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestLogger stores a logger tagged with the request id and client ip on
// the request context. It expects RequestID and RealIP to have run
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := r.RemoteAddr
		if host, _, err := net.SplitHostPort(ip); err == nil {
			ip = host
		}
		ctx := logger.WithRequest(r.Context(), pnet.RequestID(r.Context()), ip)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AccessLog writes one line per request through the request logger. 5xx
// responses log at error and requests taking slow or longer at warn
func AccessLog(slow time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			elapsed := time.Since(start)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			log := logger.C(r.Context())
			evt := log.Info()
			if status >= http.StatusInternalServerError {
				evt = log.Error()
			} else if slow > 0 && elapsed >= slow {
				evt = log.Warn()
			}
			evt.Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("query", r.URL.RawQuery).
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Dur("elapsed", elapsed).
				Msg("request done")
		})
	}
}
