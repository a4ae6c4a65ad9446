package httpkit

import (
	"net/http"

	"housepricing/internal/platform/net/middleware"
)

// StackOptions re-exports the middleware bundle options
type StackOptions = middleware.StackOptions

// CORSOptions re-exports the cors options
type CORSOptions = middleware.CORSOptions

// CommonStack returns the baseline middleware slice for the versioned API
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	return middleware.Defaults(o)
}

// Throttle caps concurrent requests on a module's routes
func Throttle(limit int) func(http.Handler) http.Handler {
	return middleware.Throttle(limit)
}
