// Package middleware assembles the chi middleware stack every API route runs
// behind, plus the few handlers chi does not ship
package middleware

import (
	"compress/flate"
	"net/http"
	"time"

	pstrings "housepricing/internal/platform/strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// CORSOptions is the subset of go-chi/cors the API configures. Empty lists
// take the defaults below
type CORSOptions struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// CORS builds a go-chi/cors handler. Defaults allow any origin to GET and
// POST JSON and read X-Request-ID
func CORS(o CORSOptions) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   pstrings.IfEmpty(o.AllowedOrigins, []string{"*"}),
		AllowedMethods:   pstrings.IfEmpty(o.AllowedMethods, []string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		AllowedHeaders:   pstrings.IfEmpty(o.AllowedHeaders, []string{"Accept", "Content-Type", chimw.RequestIDHeader}),
		ExposedHeaders:   pstrings.IfEmpty(o.ExposedHeaders, []string{chimw.RequestIDHeader}),
		AllowCredentials: o.AllowCredentials,
		MaxAge:           o.MaxAge,
	})
}

// Throttle caps in flight requests; extra requests wait, then get 429
func Throttle(limit int) func(http.Handler) http.Handler { return chimw.Throttle(limit) }

// StackOptions tunes Defaults
type StackOptions struct {
	CORS CORSOptions
	// Timeout cancels the request context; zero means 30s
	Timeout time.Duration
	// Slow logs requests at or over this duration at warn; zero disables
	Slow time.Duration
}

// Defaults returns the shared stack, outermost first. Request ids and the
// request logger come before recovery so a panic log carries both
func Defaults(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	return []func(http.Handler) http.Handler{
		chimw.RequestID,
		chimw.RealIP,
		RequestLogger,
		RecoverJSON,
		chimw.NoCache,
		AccessLog(o.Slow),
		CORS(o.CORS),
		chimw.Compress(flate.BestSpeed),
		chimw.StripSlashes,
		chimw.Timeout(o.Timeout),
	}
}
