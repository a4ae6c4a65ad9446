package middleware

import (
	"net/http"
	"runtime/debug"

	perr "housepricing/internal/platform/errors"
	"housepricing/internal/platform/logger"
	pnet "housepricing/internal/platform/net"
)

// RecoverJSON turns a panic into a 500 panic envelope and logs the stack.
// http.ErrAbortHandler is re-raised so net/http can drop the connection
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")
			pnet.Write(w, pnet.Failure(perr.PanicErrf("panic recovered"), pnet.RequestID(r.Context())))
		}()
		next.ServeHTTP(w, r)
	})
}
